package models

import (
	"time"

	"github.com/google/uuid"
)

// Birthday is a single stored birthday. Year may be nil when the user
// entered only a day and month.
type Birthday struct {
	ID        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	Name      string    `bun:"name,notnull"`
	Day       int       `bun:"day,notnull"`
	Month     int       `bun:"month,notnull"`
	Year      *int      `bun:"year"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// Subscriber is a chat that has talked to the bot at least once and
// receives the scheduled broadcasts.
type Subscriber struct {
	ChatID    int64     `bun:"chat_id,pk"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
