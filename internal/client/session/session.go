// Package session persists the client's auth state between runs, the way a
// browser keeps a token in local storage. Backed by a small sqlite key/value
// table under the user's home directory.
package session

import (
	"context"
	"database/sql"
	"errors"

	_ "modernc.org/sqlite"
)

var ErrNoSession = errors.New("no saved session")

type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS session (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
)`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO session(key, value) VALUES(?, ?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value`, key, value)
	return err
}

func (s *Store) get(ctx context.Context, key string) (string, error) {
	var v string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM session WHERE key=?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNoSession
	}
	return v, err
}

// Save stores the token pair and role issued at login.
func (s *Store) Save(ctx context.Context, token, refreshToken, role string) error {
	if err := s.set(ctx, "token", token); err != nil {
		return err
	}
	if err := s.set(ctx, "refresh_token", refreshToken); err != nil {
		return err
	}
	return s.set(ctx, "role", role)
}

func (s *Store) Token(ctx context.Context) (string, error) { return s.get(ctx, "token") }

func (s *Store) RefreshToken(ctx context.Context) (string, error) {
	return s.get(ctx, "refresh_token")
}

func (s *Store) Role(ctx context.Context) (string, error) { return s.get(ctx, "role") }

func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session`)
	return err
}
