package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	tele "gopkg.in/telebot.v4"

	"birthdaybot/internal/bot"
	"birthdaybot/internal/config"
	"birthdaybot/internal/flow"
	"birthdaybot/internal/models"
	"birthdaybot/internal/notify"
	"birthdaybot/internal/repository"
	"birthdaybot/internal/session"
)

func createSchema(ctx context.Context, db *bun.DB) error {
	tables := []interface{}{
		(*models.Birthday)(nil),
		(*models.Subscriber)(nil),
	}

	for _, table := range tables {
		_, err := db.NewCreateTable().
			Model(table).
			IfNotExists().
			Exec(ctx)
		if err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment as-is")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.DatabaseDSN)))
	db := bun.NewDB(sqldb, pgdialect.New())

	ctx := context.Background()
	if err := createSchema(ctx, db); err != nil {
		log.Fatalf("create database schema: %v", err)
	}

	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}
	b, err := tele.NewBot(pref)
	if err != nil {
		log.Fatalf("create bot: %v", err)
	}

	birthdays := repository.NewBirthdayRepository(db)
	subscribers := repository.NewSubscriberRepository(db)
	sessions := session.NewStore()

	controller := flow.NewController(sessions, birthdays, time.Now)
	reminders := notify.NewService(birthdays, subscribers, bot.NewSender(b), cfg.OperatorChatID, time.Now)

	handler := bot.NewHandler(birthdays, subscribers, controller, reminders)
	handler.Register(b)

	scheduler, err := notify.NewScheduler(reminders, cfg.Location)
	if err != nil {
		log.Fatalf("schedule cron jobs: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	log.Println("Bot is starting and Database is connected...")
	b.Start()
}
