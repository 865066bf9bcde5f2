// Package store provides session storage backends for coldcalc.
//
// This file implements the PostgreSQL-backed session store for multi-node
// deployments sharing one database.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	_ "embed"

	"github.com/frigosoft/coldcalc/internal/models"
	_ "github.com/lib/pq"
)

//go:embed migrations_postgres.sql
var postgresMigrations string

// PostgresStore persists sessions in a PostgreSQL database.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new PostgreSQL session store from a connection
// string and runs migrations.
func NewPostgresStore(opts ...Option) (*PostgresStore, error) {
	var cfg Opts
	for _, opt := range opts {
		opt(&cfg)
	}
	slog.Debug("NewPostgresStore invoked", "DSN_set", cfg.DSN != "")

	if cfg.DSN == "" {
		slog.Error("PostgresStore DSN not set")
		return nil, fmt.Errorf("database DSN not set")
	}

	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		slog.Error("Failed to open PostgreSQL connection", "error", err)
		return nil, err
	}
	if err := db.Ping(); err != nil {
		slog.Error("PostgreSQL ping failed", "error", err)
		return nil, err
	}
	if _, err := db.Exec(postgresMigrations); err != nil {
		slog.Error("Failed to run PostgreSQL migrations", "error", err)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	slog.Debug("PostgreSQL session store ready")

	return &PostgresStore{db: db}, nil
}

// GetSession retrieves the session for a user, or (nil, nil) when absent.
func (s *PostgresStore) GetSession(userID string) (*models.Session, error) {
	query := `SELECT user_id, language, active, catalog, current_step, answers, started_at, updated_at
			  FROM sessions WHERE user_id = $1`

	var session models.Session
	var answersJSON sql.NullString
	err := s.db.QueryRow(query, userID).Scan(
		&session.UserID, &session.Language, &session.Active, &session.CatalogName,
		&session.CurrentStep, &answersJSON, &session.StartedAt, &session.UpdatedAt)
	if err == sql.ErrNoRows {
		slog.Debug("PostgresStore GetSession not found", "userID", userID)
		return nil, nil
	}
	if err != nil {
		slog.Error("PostgresStore GetSession failed", "error", err, "userID", userID)
		return nil, fmt.Errorf("failed to query session for %s: %w", userID, err)
	}

	if answersJSON.Valid && answersJSON.String != "" {
		session.Answers = make(map[string]models.Answer)
		if err := json.Unmarshal([]byte(answersJSON.String), &session.Answers); err != nil {
			slog.Error("PostgresStore GetSession answers unmarshal failed", "error", err, "userID", userID)
			return nil, fmt.Errorf("failed to decode answers for %s: %w", userID, err)
		}
	}

	slog.Debug("PostgresStore GetSession found", "userID", userID, "step", session.CurrentStep)
	return &session, nil
}

// SaveSession stores or replaces the session for a user.
func (s *PostgresStore) SaveSession(session models.Session) error {
	answersJSON, err := encodeAnswers(session.Answers)
	if err != nil {
		slog.Error("PostgresStore SaveSession answers marshal failed", "error", err, "userID", session.UserID)
		return err
	}

	query := `INSERT INTO sessions (user_id, language, active, catalog, current_step, answers, started_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, '')::jsonb, $7, $8)
		ON CONFLICT (user_id) DO UPDATE SET
			language = EXCLUDED.language,
			active = EXCLUDED.active,
			catalog = EXCLUDED.catalog,
			current_step = EXCLUDED.current_step,
			answers = EXCLUDED.answers,
			updated_at = EXCLUDED.updated_at`
	_, err = s.db.Exec(query, session.UserID, session.Language, session.Active,
		session.CatalogName, session.CurrentStep, answersJSON, session.StartedAt, session.UpdatedAt)
	if err != nil {
		slog.Error("PostgresStore SaveSession failed", "error", err, "userID", session.UserID)
		return fmt.Errorf("failed to save session for %s: %w", session.UserID, err)
	}
	slog.Debug("PostgresStore SaveSession succeeded", "userID", session.UserID, "step", session.CurrentStep)
	return nil
}

// DeleteSession removes the session for a user.
func (s *PostgresStore) DeleteSession(userID string) error {
	_, err := s.db.Exec(`DELETE FROM sessions WHERE user_id = $1`, userID)
	if err != nil {
		slog.Error("PostgresStore DeleteSession failed", "error", err, "userID", userID)
		return fmt.Errorf("failed to delete session for %s: %w", userID, err)
	}
	slog.Debug("PostgresStore DeleteSession succeeded", "userID", userID)
	return nil
}

// Close closes the PostgreSQL connection pool.
func (s *PostgresStore) Close() error {
	slog.Debug("Closing PostgreSQL session store")
	return s.db.Close()
}
