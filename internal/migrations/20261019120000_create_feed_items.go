package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateFeedItems, downCreateFeedItems)
}

func upCreateFeedItems(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS feed_items (
		id              TEXT PRIMARY KEY,
		title           TEXT NOT NULL,
		description     TEXT NOT NULL DEFAULT '',
		source          TEXT NOT NULL,
		status          TEXT NOT NULL DEFAULT 'active',
		date            TIMESTAMP WITH TIME ZONE,
		posted_at       TIMESTAMP WITH TIME ZONE,
		organizer_email TEXT NOT NULL DEFAULT '',
		organizer_name  TEXT NOT NULL DEFAULT '',
		category        TEXT NOT NULL DEFAULT '',
		scene_tags      TEXT[] NOT NULL DEFAULT '{}',
		privacy_level   TEXT NOT NULL DEFAULT 'public',
		is_promotional  BOOLEAN NOT NULL DEFAULT FALSE,
		latitude        DOUBLE PRECISION,
		longitude       DOUBLE PRECISION,
		location        TEXT NOT NULL DEFAULT '',
		venue_name      TEXT NOT NULL DEFAULT '',
		created_at      TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS feed_items_source_idx ON feed_items (source);
	CREATE INDEX IF NOT EXISTS feed_items_organizer_email_idx ON feed_items (organizer_email);
	CREATE INDEX IF NOT EXISTS feed_items_date_idx ON feed_items (date DESC);
	`)
	return err
}

func downCreateFeedItems(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS feed_items;`)
	return err
}
