package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"birthdaybot/internal/models"
)

// SubscriberRepository stores the chats that receive broadcasts.
type SubscriberRepository struct {
	db *bun.DB
}

func NewSubscriberRepository(db *bun.DB) *SubscriberRepository {
	return &SubscriberRepository{db: db}
}

// FindByChatID returns the subscriber record for a chat, or
// ErrNotFound if the chat never started the bot.
func (r *SubscriberRepository) FindByChatID(ctx context.Context, chatID int64) (models.Subscriber, error) {
	var sub models.Subscriber
	err := r.db.NewSelect().
		Model(&sub).
		Where("chat_id = ?", chatID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Subscriber{}, ErrNotFound
	}
	if err != nil {
		return models.Subscriber{}, err
	}
	return sub, nil
}

// Create registers a chat as a subscriber. Re-registering an existing
// chat is a no-op.
func (r *SubscriberRepository) Create(ctx context.Context, chatID int64) (models.Subscriber, error) {
	sub := models.Subscriber{ChatID: chatID}
	_, err := r.db.NewInsert().
		Model(&sub).
		On("CONFLICT (chat_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return models.Subscriber{}, err
	}
	return sub, nil
}

// FindAll returns every subscriber.
func (r *SubscriberRepository) FindAll(ctx context.Context) ([]models.Subscriber, error) {
	var subs []models.Subscriber
	err := r.db.NewSelect().
		Model(&subs).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return subs, nil
}
