package notify

import (
	"context"
	"log"
	"strings"
	"time"

	"birthdaybot/internal/models"
)

const (
	msgHeartbeat   = "Все нормально, я в деле!"
	msgUnsubscribe = "Напоминание: отмените подписку в Окко!"
)

// BirthdayLister is the read side of the birthday repository.
type BirthdayLister interface {
	FindAll(ctx context.Context) ([]models.Birthday, error)
}

// SubscriberLister is the read side of the subscriber repository.
type SubscriberLister interface {
	FindAll(ctx context.Context) ([]models.Subscriber, error)
}

// MessageSender delivers a text to a chat.
type MessageSender interface {
	SendMessage(chatID int64, text string) error
}

// Service runs the scheduled reminder cycles.
type Service struct {
	birthdays      BirthdayLister
	subscribers    SubscriberLister
	sender         MessageSender
	operatorChatID int64
	now            func() time.Time
}

func NewService(birthdays BirthdayLister, subscribers SubscriberLister, sender MessageSender, operatorChatID int64, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		birthdays:      birthdays,
		subscribers:    subscribers,
		sender:         sender,
		operatorChatID: operatorChatID,
		now:            now,
	}
}

// SendBirthdayReminders runs one daily cycle: classify every stored
// birthday and broadcast the result. With nothing to report a single
// heartbeat line goes to the operator chat instead.
func (s *Service) SendBirthdayReminders(ctx context.Context) {
	bdays, err := s.birthdays.FindAll(ctx)
	if err != nil {
		log.Printf("reminders: load birthdays: %v", err)
		return
	}

	messages := ClassifyAll(bdays, s.now())
	if len(messages) == 0 {
		if err := s.sender.SendMessage(s.operatorChatID, msgHeartbeat); err != nil {
			log.Printf("reminders: heartbeat to %d: %v", s.operatorChatID, err)
		}
		return
	}

	s.broadcast(ctx, strings.Join(messages, "\n"))
}

// SendUnsubscribeReminder runs the yearly cycle: the fixed
// cancel-your-subscription text to every subscriber.
func (s *Service) SendUnsubscribeReminder(ctx context.Context) {
	s.broadcast(ctx, msgUnsubscribe)
}

// broadcast fans the text out to every subscriber. A failed send is
// logged and skipped so one unreachable chat never blocks the rest.
func (s *Service) broadcast(ctx context.Context, text string) {
	subs, err := s.subscribers.FindAll(ctx)
	if err != nil {
		log.Printf("broadcast: load subscribers: %v", err)
		return
	}

	for _, sub := range subs {
		if err := s.sender.SendMessage(sub.ChatID, text); err != nil {
			log.Printf("broadcast: send to %d: %v", sub.ChatID, err)
		}
	}
}

// Upcoming renders the sorted list of all stored birthdays for the
// /list command.
func (s *Service) Upcoming(ctx context.Context) (string, error) {
	bdays, err := s.birthdays.FindAll(ctx)
	if err != nil {
		return "", err
	}
	return UpcomingList(bdays, s.now()), nil
}
