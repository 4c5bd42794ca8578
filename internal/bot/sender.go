package bot

import (
	tele "gopkg.in/telebot.v4"
)

// Sender adapts a telebot bot to the notify.MessageSender interface.
type Sender struct {
	bot *tele.Bot
}

func NewSender(b *tele.Bot) *Sender {
	return &Sender{bot: b}
}

func (s *Sender) SendMessage(chatID int64, text string) error {
	_, err := s.bot.Send(tele.ChatID(chatID), text)
	return err
}
