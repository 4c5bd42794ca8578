// Package dates holds the calendar arithmetic behind reminders: next
// occurrence of a yearly date, whole-day differences and Russian
// numeral agreement for the generated texts.
package dates

import (
	"math"
	"time"
)

// IsValidDayMonth reports whether day and month are inside the generic
// calendar ranges. Day and month are checked independently, so pairs
// like 31.02 pass on purpose.
func IsValidDayMonth(day, month int) bool {
	if day < 1 || day > 31 {
		return false
	}
	if month < 1 || month > 12 {
		return false
	}
	return true
}

// NextOccurrence returns the next date on which the (day, month)
// anniversary falls, relative to ref. If this year's date is already in
// the past, the same day and month next year is returned.
func NextOccurrence(day, month int, ref time.Time) time.Time {
	occ := time.Date(ref.Year(), time.Month(month), day, 0, 0, 0, 0, ref.Location())
	if occ.Before(truncateToDay(ref)) {
		occ = time.Date(ref.Year()+1, time.Month(month), day, 0, 0, 0, 0, ref.Location())
	}
	return occ
}

// DaysUntil returns the number of whole calendar days from ref to
// target, ignoring the time of day on both sides. Negative when target
// is in the past.
func DaysUntil(target, ref time.Time) int {
	t := truncateToDay(target)
	r := truncateToDay(ref)
	// Rounding absorbs the off-by-an-hour midnights DST zones produce.
	return int(math.Round(t.Sub(r).Hours() / 24))
}

// PluralizeRu picks the grammatically correct noun form for n.
// The forms are [singular, paucal, plural], e.g. ["день", "дня", "дней"]:
// 1 день, 3 дня, 11 дней, 21 день.
func PluralizeRu(n int, forms [3]string) string {
	last := n % 10
	if last == 1 && n%100 != 11 {
		return forms[0]
	}
	if last >= 2 && last <= 4 && (n%100 < 10 || n%100 >= 20) {
		return forms[1]
	}
	return forms[2]
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
