// Package notify contains the reminder engine: bucketing birthdays by
// days until their next occurrence, rendering the reminder texts and
// broadcasting them to subscribers on a cron schedule.
package notify

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"birthdaybot/internal/dates"
	"birthdaybot/internal/flow"
	"birthdaybot/internal/models"
)

const (
	// Appended to the 7-day reminder so there is still time to order a gift.
	giftSuffix = " Самое время заказать подарок на WB."

	msgEmptyList  = "Список дней рождения пуст."
	msgListHeader = "Список грядущих дней рождения:"
)

var dayForms = [3]string{"день", "дня", "дней"}

// ClassifyAll renders one reminder line per birthday that falls into
// one of the notification buckets (today, tomorrow, in 3 days, in 7
// days). The output keeps the iteration order of the input.
func ClassifyAll(bdays []models.Birthday, now time.Time) []string {
	var messages []string
	for _, b := range bdays {
		occ := dates.NextOccurrence(b.Day, b.Month, now)
		diff := dates.DaysUntil(occ, now)

		switch diff {
		case 0:
			messages = append(messages, fmt.Sprintf("Сегодня день рождения отмечает %s! Поздравьте его/ее! 🎉", b.Name))
		case 1:
			messages = append(messages, fmt.Sprintf("%s завтра отмечает День Рождения!", b.Name))
		case 3, 7:
			msg := fmt.Sprintf("%s будет отмечать День Рождения через %d %s.", b.Name, diff, dates.PluralizeRu(diff, dayForms))
			if diff == 7 {
				msg += giftSuffix
			}
			messages = append(messages, msg)
		}
	}
	return messages
}

// UpcomingList renders the on-demand list of all birthdays sorted by
// how soon they occur, nearest first.
func UpcomingList(bdays []models.Birthday, now time.Time) string {
	if len(bdays) == 0 {
		return msgEmptyList
	}

	type upcoming struct {
		b    models.Birthday
		date time.Time
	}
	sorted := make([]upcoming, 0, len(bdays))
	for _, b := range bdays {
		sorted = append(sorted, upcoming{b: b, date: dates.NextOccurrence(b.Day, b.Month, now)})
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].date.Before(sorted[j].date) })

	var sb strings.Builder
	sb.WriteString(msgListHeader)
	sb.WriteString("\n\n")
	for i, u := range sorted {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(fmt.Sprintf("%s — %s", u.b.Name, flow.FormatDate(u.b.Day, u.b.Month, nil)))
	}
	return sb.String()
}
