// Package flow implements birthday entry: the two-step guided
// conversation and the one-line /add command share the parsing and
// validation here.
package flow

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"birthdaybot/internal/dates"
	"birthdaybot/internal/models"
	"birthdaybot/internal/session"
)

const (
	MsgAskName     = "Введите имя человека, чей день рождения хотите добавить:"
	MsgAskDate     = "Введите дату рождения в формате ДД.ММ.ГГГГ (год можно не указывать):"
	MsgInvalidDate = "Некорректная дата. Используйте формат ДД.ММ.ГГГГ, например 25.05 или 25.05.2024."
	MsgGeneral     = "Произошла ошибка. Пожалуйста, попробуйте еще раз."

	MsgAddTooltip = "Напишите /add [имя] [день].[месяц].[год(необязательно)] Например, \"/add Мария 25.05.2024\" или \"/add Мария 25.5\""
)

var dateRe = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})(?:\.(\d{4}))?$`)

// ParseDate parses a D.M or D.M.YYYY token. Year is nil when omitted.
func ParseDate(s string) (day, month int, year *int, ok bool) {
	m := dateRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, 0, nil, false
	}
	day, _ = strconv.Atoi(m[1])
	month, _ = strconv.Atoi(m[2])
	if m[3] != "" {
		y, _ := strconv.Atoi(m[3])
		year = &y
	}
	return day, month, year, true
}

// FormatDate renders day and month zero-padded, with the year appended
// only when it is known.
func FormatDate(day, month int, year *int) string {
	s := fmt.Sprintf("%02d.%02d", day, month)
	if year != nil {
		s += fmt.Sprintf(".%d", *year)
	}
	return s
}

// BirthdayCreator is the slice of the repository the flow needs.
type BirthdayCreator interface {
	Create(ctx context.Context, name string, day, month int, year *int) (models.Birthday, error)
}

// Controller drives the guided add-birthday conversation.
type Controller struct {
	sessions  *session.Store
	birthdays BirthdayCreator
	now       func() time.Time
}

func NewController(sessions *session.Store, birthdays BirthdayCreator, now func() time.Time) *Controller {
	if now == nil {
		now = time.Now
	}
	return &Controller{sessions: sessions, birthdays: birthdays, now: now}
}

// Start opens a new session for the chat and returns the name prompt.
// Any previous session for the chat is replaced.
func (c *Controller) Start(chatID int64) string {
	c.sessions.Set(chatID, session.Session{Step: session.AwaitingName})
	return MsgAskName
}

// Cancel drops the chat's session, if any.
func (c *Controller) Cancel(chatID int64) {
	c.sessions.Delete(chatID)
}

// HandleText feeds one free-text message into the conversation.
// handled is false when the chat has no active session; such messages
// are ignored by the caller.
func (c *Controller) HandleText(ctx context.Context, chatID int64, text string) (reply string, handled bool) {
	sess, ok := c.sessions.Get(chatID)
	if !ok {
		return "", false
	}

	switch sess.Step {
	case session.AwaitingName:
		// The name is taken verbatim, only trimmed.
		c.sessions.Set(chatID, session.Session{Step: session.AwaitingDate, Name: strings.TrimSpace(text)})
		return MsgAskDate, true

	case session.AwaitingDate:
		day, month, year, ok := ParseDate(text)
		if !ok || !dates.IsValidDayMonth(day, month) {
			// Session stays, the user may retry.
			return MsgInvalidDate, true
		}

		storedYear := c.now().Year()
		if year != nil {
			storedYear = *year
		}
		_, err := c.birthdays.Create(ctx, sess.Name, day, month, &storedYear)
		if err != nil {
			log.Printf("add flow: create birthday for chat %d: %v", chatID, err)
			c.sessions.Delete(chatID)
			return MsgGeneral, true
		}

		c.sessions.Delete(chatID)
		return confirmAdded(sess.Name, day, month, year), true
	}

	// Unknown step, drop the session rather than loop on it.
	c.sessions.Delete(chatID)
	return MsgGeneral, true
}

// HandleAddCommand handles the one-line `/add <name> <D.M[.YYYY]>`
// path. It applies the same validation and default-year rule as the
// guided flow and persists directly, bypassing the session store.
func (c *Controller) HandleAddCommand(ctx context.Context, chatID int64, args string) string {
	name, dateToken, ok := splitAddArgs(args)
	if !ok {
		return MsgAddTooltip
	}

	day, month, year, ok := ParseDate(dateToken)
	if !ok {
		return MsgAddTooltip
	}
	if !dates.IsValidDayMonth(day, month) {
		return MsgInvalidDate
	}

	storedYear := c.now().Year()
	if year != nil {
		storedYear = *year
	}
	b, err := c.birthdays.Create(ctx, name, day, month, &storedYear)
	if err != nil {
		log.Printf("add command: create birthday for chat %d: %v", chatID, err)
		return MsgGeneral
	}

	return confirmAdded(b.Name, day, month, year)
}

func confirmAdded(name string, day, month int, year *int) string {
	return fmt.Sprintf("Успешно добавлен %s с днем рождения %s 🎂", name, FormatDate(day, month, year))
}

// splitAddArgs splits "/add" arguments into a name and a trailing date
// token. The name may contain spaces.
func splitAddArgs(args string) (name, date string, ok bool) {
	args = strings.TrimSpace(args)
	i := strings.LastIndexByte(args, ' ')
	if i < 0 {
		return "", "", false
	}
	name = strings.TrimSpace(args[:i])
	date = args[i+1:]
	if name == "" || date == "" {
		return "", "", false
	}
	return name, date, true
}
