package infra_pg_init

import (
	"context"
	"fmt"
	"log"

	"github.com/dxmate/dxmate-bot/internal/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS match_history (
	id          UUID PRIMARY KEY,
	report_id   TEXT NOT NULL UNIQUE,
	room_id     TEXT NOT NULL,
	match_mode  TEXT NOT NULL,
	outcome     TEXT NOT NULL,
	winners     TEXT[] NOT NULL DEFAULT '{}',
	losers      TEXT[] NOT NULL DEFAULT '{}',
	settled_at  TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS match_history_settled_at_idx ON match_history (settled_at DESC);
`

func MustEstablishConn(cfg config.Postgres) *sqlx.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.DBName,
		cfg.SSLMode,
	)
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		log.Fatal(err)
	}

	if err := Migrate(context.Background(), db); err != nil {
		log.Fatal(err)
	}

	return db
}

func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
