package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"enlace/internal/auth"
	"enlace/internal/feedback"
	"enlace/internal/store"
)

func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}

func AutoMigrateAndIndexes(gdb *gorm.DB) error {
	// Server-assigned uuid identities for every collection row.
	if err := gdb.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		return err
	}

	if err := gdb.AutoMigrate(
		&auth.User{},
		&store.WeddingRow{},
		&store.GuestRow{},
		&store.TaskRow{},
		&store.BudgetItemRow{},
		&store.SongRow{},
		&store.GiftRow{},
		&store.SeatingTableRow{},
		&feedback.Row{},
	); err != nil {
		return err
	}

	// Every child query is scoped by the parent identity; the per-table
	// wedding_id indexes come from the model tags. Extras below.
	stmts := []string{
		`create index if not exists idx_guests_wedding_rsvp on guests(wedding_id, rsvp_status);`,
		`create index if not exists idx_tasks_wedding_status on tasks(wedding_id, status);`,
		`create index if not exists idx_gifts_wedding_status on gifts(wedding_id, status);`,
	}
	for _, s := range stmts {
		if err := gdb.Exec(s).Error; err != nil {
			return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
		}
	}

	return nil
}
