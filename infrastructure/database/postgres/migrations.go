package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS cafes (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		address     TEXT NOT NULL DEFAULT '',
		phone       TEXT NOT NULL DEFAULT '',
		email       TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'inactive')),
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS ads_reports (
		id          TEXT PRIMARY KEY,
		cafe_id     TEXT NOT NULL,
		month       INTEGER NOT NULL CHECK (month BETWEEN 1 AND 12),
		year        INTEGER NOT NULL CHECK (year BETWEEN 1000 AND 9999),
		platform    TEXT NOT NULL,
		impressions BIGINT NOT NULL DEFAULT 0,
		clicks      BIGINT NOT NULL DEFAULT 0,
		ctr         DOUBLE PRECISION NOT NULL DEFAULT 0,
		cpc         BIGINT NOT NULL DEFAULT 0,
		conversions BIGINT NOT NULL DEFAULT 0,
		roas        DOUBLE PRECISION NOT NULL DEFAULT 0,
		budget      BIGINT NOT NULL DEFAULT 0,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_ads_reports_period ON ads_reports (cafe_id, year, month)`,
	`CREATE TABLE IF NOT EXISTS content_reports (
		id          TEXT PRIMARY KEY,
		cafe_id     TEXT NOT NULL,
		month       INTEGER NOT NULL CHECK (month BETWEEN 1 AND 12),
		year        INTEGER NOT NULL CHECK (year BETWEEN 1000 AND 9999),
		post_date   DATE NOT NULL,
		caption     TEXT NOT NULL DEFAULT '',
		platform    TEXT NOT NULL,
		status      TEXT NOT NULL CHECK (status IN ('Draft', 'Published', 'Scheduled')),
		media_type  TEXT NOT NULL CHECK (media_type IN ('image', 'video', 'carousel')),
		media_url   TEXT,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_content_reports_period ON content_reports (cafe_id, year, month)`,
}

// Migrate cria as tabelas que ainda não existem. Pode ser executado várias vezes.
func (c *Connection) Migrate(ctx context.Context) error {
	return c.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, stmt := range migrations {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("migration %d: %w", i+1, err)
			}
		}

		logrus.WithField("statements", len(migrations)).Info("postgres: migrações aplicadas")
		return nil
	})
}
