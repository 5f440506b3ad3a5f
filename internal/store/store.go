// Package store persists the engine's state in SQLite through ent. It
// implements the repository boundaries of the competency, spacedrep and
// practice packages, keeps the attempt ledger append-only under a global
// sequence, and round-trips decimal columns as strings.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/certready/certready/ent"
	"github.com/certready/certready/ent/attemptevent"
	"github.com/certready/certready/ent/competencyrecord"
	"github.com/certready/certready/ent/examsession"
	"github.com/certready/certready/ent/reviewcard"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the ent client and provides access to repositories.
type Store struct {
	db     *sql.DB
	client *ent.Client
	seq    *sequenceCounter
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and runs auto-migration.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		client.Close()
		return nil, err
	}

	return &Store{db: db, client: client, seq: seq}, nil
}

// Client returns the underlying ent client.
func (s *Store) Client() *ent.Client {
	return s.client
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// Records returns the competency record repository.
func (s *Store) Records() *RecordRepo {
	return &RecordRepo{client: s.client}
}

// Cards returns the review card repository.
func (s *Store) Cards() *CardRepo {
	return &CardRepo{client: s.client}
}

// Attempts returns the append-only attempt ledger.
func (s *Store) Attempts() *AttemptRepo {
	return &AttemptRepo{client: s.client, seq: s.seq}
}

// Sessions returns the session repository.
func (s *Store) Sessions() *SessionRepo {
	return &SessionRepo{client: s.client}
}

// ResetUser deletes every row belonging to userID across all tables.
// This is the one sanctioned breach of the ledger's append-only rule,
// reserved for the operator reset command.
func (s *Store) ResetUser(ctx context.Context, userID string) error {
	if _, err := s.client.AttemptEvent.Delete().
		Where(attemptevent.UserID(userID)).Exec(ctx); err != nil {
		return fmt.Errorf("reset attempts: %w", err)
	}
	if _, err := s.client.CompetencyRecord.Delete().
		Where(competencyrecord.UserID(userID)).Exec(ctx); err != nil {
		return fmt.Errorf("reset competency records: %w", err)
	}
	if _, err := s.client.ReviewCard.Delete().
		Where(reviewcard.UserID(userID)).Exec(ctx); err != nil {
		return fmt.Errorf("reset review cards: %w", err)
	}
	if _, err := s.client.ExamSession.Delete().
		Where(examsession.UserID(userID)).Exec(ctx); err != nil {
		return fmt.Errorf("reset sessions: %w", err)
	}
	return nil
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. CERTREADY_DB environment variable
// 2. $XDG_DATA_HOME/certready/certready.db
// 3. ~/.local/share/certready/certready.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("CERTREADY_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "certready", "certready.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
