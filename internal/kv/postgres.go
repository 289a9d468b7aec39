package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "embed"

	_ "github.com/lib/pq"
)

//go:embed schema.sql
var schemaSQL string

// Postgres stores keys in the kv table of a PostgreSQL database.
type Postgres struct {
	DB *sql.DB
}

// NewPostgres opens the database at url, verifies the connection and
// applies the schema.
func NewPostgres(ctx context.Context, url string) (*Postgres, error) {
	if url == "" {
		return nil, errors.New("DATABASE_URL must be set for the postgres driver")
	}
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Postgres{DB: db}, nil
}

// Migrate applies the schema.  The statements are idempotent.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schemaSQL)
	return err
}

func (p *Postgres) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := p.DB.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (p *Postgres) Set(ctx context.Context, key, value string) error {
	_, err := p.DB.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at)
         VALUES ($1, $2, NOW())
         ON CONFLICT (key) DO UPDATE
         SET value = EXCLUDED.value, updated_at = NOW()`,
		key, value,
	)
	return err
}

func (p *Postgres) Delete(ctx context.Context, key string) error {
	_, err := p.DB.ExecContext(ctx, `DELETE FROM kv WHERE key = $1`, key)
	return err
}

func (p *Postgres) Ping(ctx context.Context) error { return p.DB.PingContext(ctx) }

func (p *Postgres) Close() error { return p.DB.Close() }
