package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
)

// InitDB opens the connection pool and verifies connectivity.
func InitDB(connStr string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Println("Connection to database successfully!")
	return db, nil
}

// EnsureSchema creates the three tables if they do not exist. It never
// alters existing schemas.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			username      TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			email         TEXT,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS quiz_progress (
			id           BIGSERIAL PRIMARY KEY,
			user_id      UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			quiz_name    TEXT NOT NULL,
			attempts     INTEGER NOT NULL DEFAULT 0,
			passes       INTEGER NOT NULL DEFAULT 0,
			last_updated TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (user_id, quiz_name)
		)`,
		`CREATE TABLE IF NOT EXISTS quiz_attempts (
			id              BIGSERIAL PRIMARY KEY,
			user_id         UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			quiz_name       TEXT NOT NULL,
			score           INTEGER NOT NULL,
			total_questions INTEGER NOT NULL,
			passed          BOOLEAN NOT NULL,
			attempt_date    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	log.Println("Database schema ready")
	return nil
}
