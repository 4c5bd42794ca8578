package dates

import (
	"testing"
	"time"
)

func TestIsValidDayMonth(t *testing.T) {
	t.Parallel()

	cases := []struct {
		day, month int
		want       bool
	}{
		{1, 1, true},
		{31, 12, true},
		{15, 6, true},
		{31, 2, true}, // day and month checked independently
		{0, 5, false},
		{32, 5, false},
		{10, 0, false},
		{10, 13, false},
		{-1, -1, false},
	}

	for _, c := range cases {
		if got := IsValidDayMonth(c.day, c.month); got != c.want {
			t.Errorf("IsValidDayMonth(%d, %d) = %v, want %v", c.day, c.month, got, c.want)
		}
	}
}

func TestNextOccurrence(t *testing.T) {
	t.Parallel()

	ref := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	got := NextOccurrence(25, 12, ref)
	want := time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("NextOccurrence(25, 12, %v) = %v, want %v", ref, got, want)
	}

	ref = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	got = NextOccurrence(1, 1, ref)
	want = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("NextOccurrence(1, 1, %v) = %v, want %v", ref, got, want)
	}
}

func TestNextOccurrenceSameDay(t *testing.T) {
	t.Parallel()

	// Time of day on the reference must not push today's birthday a year out.
	ref := time.Date(2024, 7, 11, 18, 30, 0, 0, time.UTC)
	got := NextOccurrence(11, 7, ref)
	want := time.Date(2024, 7, 11, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("NextOccurrence(11, 7, %v) = %v, want %v", ref, got, want)
	}
}

func TestDaysUntil(t *testing.T) {
	t.Parallel()

	ref := time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC)
	target := time.Date(2024, 3, 17, 0, 1, 0, 0, time.UTC)
	if got := DaysUntil(target, ref); got != 7 {
		t.Errorf("DaysUntil = %d, want 7", got)
	}
	if got := DaysUntil(target, ref); got != 7 {
		t.Errorf("DaysUntil second call = %d, want 7", got)
	}
	if got := DaysUntil(ref, target); got != -7 {
		t.Errorf("DaysUntil reversed = %d, want -7", got)
	}
	if got := DaysUntil(ref, ref); got != 0 {
		t.Errorf("DaysUntil same day = %d, want 0", got)
	}
}

func TestPluralizeRu(t *testing.T) {
	t.Parallel()

	forms := [3]string{"день", "дня", "дней"}

	cases := []struct {
		n    int
		want string
	}{
		{1, "день"},
		{2, "дня"},
		{3, "дня"},
		{4, "дня"},
		{5, "дней"},
		{7, "дней"},
		{10, "дней"},
		{11, "дней"},
		{12, "дней"},
		{14, "дней"},
		{21, "день"},
		{22, "дня"},
		{25, "дней"},
		{111, "дней"},
		{121, "день"},
	}

	for _, c := range cases {
		if got := PluralizeRu(c.n, forms); got != c.want {
			t.Errorf("PluralizeRu(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}
