// Package bot wires the Telegram transport to the flow and notify
// components.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	tele "gopkg.in/telebot.v4"

	"birthdaybot/internal/flow"
	"birthdaybot/internal/models"
	"birthdaybot/internal/notify"
	"birthdaybot/internal/repository"
)

const (
	msgGreeting = "Привет! Я — бот, который помогает не забыть дни рождения ваших близких. Выберите одну из команд:"

	msgHelp = `Команды:
/add [имя] [ДД.ММ.ГГГГ] — добавить день рождения (год необязателен)
/add — добавить день рождения по шагам
/delete [имя] — удалить день рождения
/search [имя] — найти день рождения по имени
/list — список грядущих дней рождения
/cancel — прервать ввод
/help — показать это сообщение`

	msgDeleteUsage = "Пожалуйста, укажите имя для удаления. Пример: /delete [имя]"
	msgSearchUsage = "Пожалуйста, укажите имя для Поиска. Пример: /search [имя]"
	msgCancelled   = "Ввод отменен."
	msgMakingList  = "Формирую список дней рождения..."

	btnAdd  = "Добавить ДР"
	btnList = "Показать список ДР"
	btnHelp = "Список команд"
)

// BirthdayFinder is the lookup/delete slice of the birthday repository.
type BirthdayFinder interface {
	FindByNameExact(ctx context.Context, name string) (models.Birthday, error)
	FindByNameContains(ctx context.Context, substr string) ([]models.Birthday, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// SubscriberRegistrar records chats that started the bot.
type SubscriberRegistrar interface {
	FindByChatID(ctx context.Context, chatID int64) (models.Subscriber, error)
	Create(ctx context.Context, chatID int64) (models.Subscriber, error)
}

// Handler registers all command and text handlers on a telebot bot.
type Handler struct {
	birthdays   BirthdayFinder
	subscribers SubscriberRegistrar
	flow        *flow.Controller
	notify      *notify.Service
}

func NewHandler(birthdays BirthdayFinder, subscribers SubscriberRegistrar, fl *flow.Controller, nt *notify.Service) *Handler {
	return &Handler{
		birthdays:   birthdays,
		subscribers: subscribers,
		flow:        fl,
		notify:      nt,
	}
}

// Register attaches every handler to the bot.
func (h *Handler) Register(b *tele.Bot) {
	b.Handle("/start", h.onStart)
	b.Handle("/help", h.onHelp)
	b.Handle("/add", h.onAdd)
	b.Handle("/delete", h.onDelete)
	b.Handle("/search", h.onSearch)
	b.Handle("/list", h.onList)
	b.Handle("/cancel", h.onCancel)
	b.Handle(tele.OnText, h.onText)
}

func (h *Handler) onStart(c tele.Context) error {
	ctx := context.Background()
	chatID := c.Chat().ID

	// First contact makes the chat a broadcast subscriber.
	_, err := h.subscribers.FindByChatID(ctx, chatID)
	if errors.Is(err, repository.ErrNotFound) {
		_, err = h.subscribers.Create(ctx, chatID)
	}
	if err != nil {
		log.Printf("start: register subscriber %d: %v", chatID, err)
		return c.Send(flow.MsgGeneral)
	}

	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(
		menu.Row(menu.Text(btnAdd)),
		menu.Row(menu.Text(btnList), menu.Text(btnHelp)),
	)
	return c.Send(msgGreeting, menu)
}

func (h *Handler) onHelp(c tele.Context) error {
	return c.Send(msgHelp)
}

func (h *Handler) onAdd(c tele.Context) error {
	args := c.Message().Payload
	if args == "" {
		// Bare /add opens the guided conversation.
		return c.Send(h.flow.Start(c.Chat().ID))
	}
	return c.Send(h.flow.HandleAddCommand(context.Background(), c.Chat().ID, args))
}

func (h *Handler) onDelete(c tele.Context) error {
	name := c.Message().Payload
	if name == "" {
		return c.Send(msgDeleteUsage)
	}

	ctx := context.Background()
	b, err := h.birthdays.FindByNameExact(ctx, name)
	if errors.Is(err, repository.ErrNotFound) {
		return c.Send(fmt.Sprintf("Не найдено дня рождения для имени \"%s\".", name))
	}
	if err != nil {
		log.Printf("delete: find %q for chat %d: %v", name, c.Chat().ID, err)
		return c.Send(flow.MsgGeneral)
	}

	if err := h.birthdays.DeleteByID(ctx, b.ID); err != nil {
		log.Printf("delete: remove %q for chat %d: %v", name, c.Chat().ID, err)
		return c.Send(flow.MsgGeneral)
	}
	return c.Send(fmt.Sprintf("День рождения для \"%s\" успешно удален.", name))
}

func (h *Handler) onSearch(c tele.Context) error {
	name := c.Message().Payload
	if name == "" {
		return c.Send(msgSearchUsage)
	}

	matches, err := h.birthdays.FindByNameContains(context.Background(), name)
	if err != nil {
		log.Printf("search: find %q for chat %d: %v", name, c.Chat().ID, err)
		return c.Send(flow.MsgGeneral)
	}
	if len(matches) == 0 {
		return c.Send(fmt.Sprintf("Не найдено дня рождения для имени \"%s\".", name))
	}

	// One message per match, sent in repository order.
	for _, b := range matches {
		msg := fmt.Sprintf("День рождения для \"%s\" состоится %s", b.Name, flow.FormatDate(b.Day, b.Month, nil))
		if err := c.Send(msg); err != nil {
			return err
		}
	}
	return nil
}

func (h *Handler) onList(c tele.Context) error {
	text, err := h.notify.Upcoming(context.Background())
	if err != nil {
		log.Printf("list: load birthdays for chat %d: %v", c.Chat().ID, err)
		return c.Send(flow.MsgGeneral)
	}
	return c.Send(text)
}

func (h *Handler) onCancel(c tele.Context) error {
	h.flow.Cancel(c.Chat().ID)
	return c.Send(msgCancelled)
}

func (h *Handler) onText(c tele.Context) error {
	switch c.Text() {
	case btnAdd:
		return c.Send(flow.MsgAddTooltip)
	case btnList:
		if err := c.Send(msgMakingList); err != nil {
			return err
		}
		return h.onList(c)
	case btnHelp:
		return c.Send(msgHelp)
	}

	reply, handled := h.flow.HandleText(context.Background(), c.Chat().ID, c.Text())
	if !handled {
		// No active session, free text is ignored.
		return nil
	}
	return c.Send(reply)
}
