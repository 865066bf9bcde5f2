// Package store provides session storage backends for coldcalc.
//
// This file implements the SQLite-backed session store, the default
// persistence for single-node deployments.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "embed"

	"github.com/frigosoft/coldcalc/internal/models"
	_ "github.com/mattn/go-sqlite3"
)

// DefaultDirPermissions defines the permissions for database directories.
const DefaultDirPermissions = 0755

//go:embed migrations_sqlite.sql
var sqliteMigrations string

// SQLiteStore persists sessions in a single SQLite database file.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite session store. The DSN is a file path
// to the database file; missing parent directories are created.
func NewSQLiteStore(opts ...Option) (*SQLiteStore, error) {
	var cfg Opts
	for _, opt := range opts {
		opt(&cfg)
	}
	slog.Debug("NewSQLiteStore invoked", "DSN_set", cfg.DSN != "")

	if cfg.DSN == "" {
		slog.Error("SQLiteStore DSN not set")
		return nil, fmt.Errorf("database DSN not set")
	}

	dir := filepath.Dir(cfg.DSN)
	if err := os.MkdirAll(dir, DefaultDirPermissions); err != nil {
		slog.Error("Failed to create database directory", "error", err, "dir", dir)
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		slog.Error("Failed to open SQLite connection", "error", err)
		return nil, err
	}
	if err := db.Ping(); err != nil {
		slog.Error("SQLite ping failed", "error", err)
		return nil, err
	}
	if _, err := db.Exec(sqliteMigrations); err != nil {
		slog.Error("Failed to run SQLite migrations", "error", err)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	slog.Debug("SQLite session store ready", "dsn", cfg.DSN)

	return &SQLiteStore{db: db}, nil
}

// GetSession retrieves the session for a user, or (nil, nil) when absent.
func (s *SQLiteStore) GetSession(userID string) (*models.Session, error) {
	query := `SELECT user_id, language, active, catalog, current_step, answers, started_at, updated_at
			  FROM sessions WHERE user_id = ?`

	var session models.Session
	var answersJSON sql.NullString
	err := s.db.QueryRow(query, userID).Scan(
		&session.UserID, &session.Language, &session.Active, &session.CatalogName,
		&session.CurrentStep, &answersJSON, &session.StartedAt, &session.UpdatedAt)
	if err == sql.ErrNoRows {
		slog.Debug("SQLiteStore GetSession not found", "userID", userID)
		return nil, nil
	}
	if err != nil {
		slog.Error("SQLiteStore GetSession failed", "error", err, "userID", userID)
		return nil, fmt.Errorf("failed to query session for %s: %w", userID, err)
	}

	if answersJSON.Valid && answersJSON.String != "" {
		session.Answers = make(map[string]models.Answer)
		if err := json.Unmarshal([]byte(answersJSON.String), &session.Answers); err != nil {
			slog.Error("SQLiteStore GetSession answers unmarshal failed", "error", err, "userID", userID)
			return nil, fmt.Errorf("failed to decode answers for %s: %w", userID, err)
		}
	}

	slog.Debug("SQLiteStore GetSession found", "userID", userID, "step", session.CurrentStep)
	return &session, nil
}

// SaveSession stores or replaces the session for a user.
func (s *SQLiteStore) SaveSession(session models.Session) error {
	answersJSON, err := encodeAnswers(session.Answers)
	if err != nil {
		slog.Error("SQLiteStore SaveSession answers marshal failed", "error", err, "userID", session.UserID)
		return err
	}

	query := `INSERT OR REPLACE INTO sessions
		(user_id, language, active, catalog, current_step, answers, started_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = s.db.Exec(query, session.UserID, session.Language, session.Active,
		session.CatalogName, session.CurrentStep, answersJSON, session.StartedAt, session.UpdatedAt)
	if err != nil {
		slog.Error("SQLiteStore SaveSession failed", "error", err, "userID", session.UserID)
		return fmt.Errorf("failed to save session for %s: %w", session.UserID, err)
	}
	slog.Debug("SQLiteStore SaveSession succeeded", "userID", session.UserID, "step", session.CurrentStep)
	return nil
}

// DeleteSession removes the session for a user.
func (s *SQLiteStore) DeleteSession(userID string) error {
	_, err := s.db.Exec(`DELETE FROM sessions WHERE user_id = ?`, userID)
	if err != nil {
		slog.Error("SQLiteStore DeleteSession failed", "error", err, "userID", userID)
		return fmt.Errorf("failed to delete session for %s: %w", userID, err)
	}
	slog.Debug("SQLiteStore DeleteSession succeeded", "userID", userID)
	return nil
}

// Close closes the SQLite database connection.
func (s *SQLiteStore) Close() error {
	slog.Debug("Closing SQLite session store")
	return s.db.Close()
}

func encodeAnswers(answers map[string]models.Answer) (string, error) {
	if len(answers) == 0 {
		return "", nil
	}
	b, err := json.Marshal(answers)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
