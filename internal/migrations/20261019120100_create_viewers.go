package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateViewers, downCreateViewers)
}

func upCreateViewers(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS viewers (
		email             TEXT PRIMARY KEY,
		name              TEXT NOT NULL DEFAULT '',
		followed_curators TEXT[] NOT NULL DEFAULT '{}',
		saved_item_ids    TEXT[] NOT NULL DEFAULT '{}',
		created_at        TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
		updated_at        TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	);
	`)
	return err
}

func downCreateViewers(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS viewers;`)
	return err
}
