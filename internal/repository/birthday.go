// Package repository provides the Postgres persistence layer for
// birthdays and subscribers on top of bun.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"birthdaybot/internal/models"
)

// ErrNotFound is returned by lookups that match no record.
var ErrNotFound = errors.New("not found")

// BirthdayRepository stores birthdays.
type BirthdayRepository struct {
	db *bun.DB
}

func NewBirthdayRepository(db *bun.DB) *BirthdayRepository {
	return &BirthdayRepository{db: db}
}

// Create inserts a birthday. A nil year means the year is unknown.
func (r *BirthdayRepository) Create(ctx context.Context, name string, day, month int, year *int) (models.Birthday, error) {
	b := models.Birthday{
		Name:  name,
		Day:   day,
		Month: month,
		Year:  year,
	}
	_, err := r.db.NewInsert().
		Model(&b).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return models.Birthday{}, err
	}
	return b, nil
}

// FindAll returns every stored birthday in insertion order.
func (r *BirthdayRepository) FindAll(ctx context.Context) ([]models.Birthday, error) {
	var bdays []models.Birthday
	err := r.db.NewSelect().
		Model(&bdays).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return bdays, nil
}

// FindByNameExact returns the first birthday whose name equals name,
// case-insensitively. ErrNotFound when there is no match.
func (r *BirthdayRepository) FindByNameExact(ctx context.Context, name string) (models.Birthday, error) {
	var b models.Birthday
	err := r.db.NewSelect().
		Model(&b).
		Where("lower(name) = lower(?)", name).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Birthday{}, ErrNotFound
	}
	if err != nil {
		return models.Birthday{}, err
	}
	return b, nil
}

// FindByNameContains returns every birthday whose name contains the
// substring, case-insensitively.
func (r *BirthdayRepository) FindByNameContains(ctx context.Context, substr string) ([]models.Birthday, error) {
	var bdays []models.Birthday
	err := r.db.NewSelect().
		Model(&bdays).
		Where("name ILIKE ?", "%"+substr+"%").
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return bdays, nil
}

// DeleteByID removes a birthday by primary key.
func (r *BirthdayRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.NewDelete().
		Model((*models.Birthday)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
