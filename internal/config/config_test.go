package config

import "testing"

func TestLoad(t *testing.T) {
	t.Setenv("TOKEN", "test-token")
	t.Setenv("DB_DSN", "postgres://localhost/bdays")
	t.Setenv("OPERATOR_CHAT_ID", "12345")
	t.Setenv("SCHEDULE_TZ", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Token != "test-token" {
		t.Fatalf("unexpected token: %q", cfg.Token)
	}
	if cfg.OperatorChatID != 12345 {
		t.Fatalf("unexpected operator chat: %d", cfg.OperatorChatID)
	}
	if cfg.Location.String() != "Asia/Yekaterinburg" {
		t.Fatalf("unexpected default timezone: %v", cfg.Location)
	}
}

func TestLoadMissingToken(t *testing.T) {
	t.Setenv("TOKEN", "")
	t.Setenv("DB_DSN", "postgres://localhost/bdays")
	t.Setenv("OPERATOR_CHAT_ID", "12345")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing TOKEN")
	}
}

func TestLoadInvalidOperatorChat(t *testing.T) {
	t.Setenv("TOKEN", "test-token")
	t.Setenv("DB_DSN", "postgres://localhost/bdays")
	t.Setenv("OPERATOR_CHAT_ID", "not-a-number")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid OPERATOR_CHAT_ID")
	}
}
