package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration values.
type Config struct {
	Token          string
	DatabaseDSN    string
	OperatorChatID int64
	Location       *time.Location
}

const (
	tokenKey        = "TOKEN"
	databaseDSNKey  = "DB_DSN"
	operatorChatKey = "OPERATOR_CHAT_ID"
	timezoneKey     = "SCHEDULE_TZ"

	defaultTimezone = "Asia/Yekaterinburg"
)

// Load reads configuration from the environment. Token, DSN and the
// operator chat are required; the schedule timezone has a default.
func Load() (Config, error) {
	token := os.Getenv(tokenKey)
	if token == "" {
		return Config{}, fmt.Errorf("%s is required", tokenKey)
	}

	dsn := os.Getenv(databaseDSNKey)
	if dsn == "" {
		return Config{}, fmt.Errorf("%s is required", databaseDSNKey)
	}

	rawOperator := os.Getenv(operatorChatKey)
	if rawOperator == "" {
		return Config{}, fmt.Errorf("%s is required", operatorChatKey)
	}
	operatorChatID, err := strconv.ParseInt(rawOperator, 10, 64)
	if err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", operatorChatKey, err)
	}

	tz := os.Getenv(timezoneKey)
	if tz == "" {
		tz = defaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", timezoneKey, err)
	}

	return Config{
		Token:          token,
		DatabaseDSN:    dsn,
		OperatorChatID: operatorChatID,
		Location:       loc,
	}, nil
}
