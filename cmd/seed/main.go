// Seeds the database with a starter set of birthdays. Existing names
// are left untouched.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"birthdaybot/internal/repository"
)

type seedEntry struct {
	name  string
	day   int
	month int
	year  int
}

var seeds = []seedEntry{
	{name: "Миша Фомин", day: 11, month: 7, year: 1995},
	{name: "Мария Фомина", day: 23, month: 7, year: 1993},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment as-is")
	}

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN is required")
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())

	ctx := context.Background()
	birthdays := repository.NewBirthdayRepository(db)

	for _, s := range seeds {
		_, err := birthdays.FindByNameExact(ctx, s.name)
		if err == nil {
			log.Printf("%s already exists, skipping", s.name)
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			log.Fatalf("lookup %s: %v", s.name, err)
		}

		year := s.year
		if _, err := birthdays.Create(ctx, s.name, s.day, s.month, &year); err != nil {
			log.Fatalf("create %s: %v", s.name, err)
		}
		log.Printf("added %s (%02d.%02d.%d)", s.name, s.day, s.month, s.year)
	}

	log.Println("Сиды успешно добавлены")
}
