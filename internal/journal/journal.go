// Package journal keeps a SQLite log of session status transitions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite connection.
type Store struct {
	db *sql.DB
}

// Entry is one recorded transition.
type Entry struct {
	ID      int64
	Session string
	Game    string
	From    string
	To      string
	At      time.Time
}

// Open creates or opens a journal at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("journal: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("journal: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("journal: cannot open database: %w", err)
	}
	// Sessions write from several goroutines; serialise on one connection.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("journal: cannot connect to database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("journal: migration failed: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS transitions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session TEXT NOT NULL,
			game TEXT NOT NULL,
			from_status TEXT NOT NULL,
			to_status TEXT NOT NULL,
			at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_transitions_session ON transitions(session);
		CREATE INDEX IF NOT EXISTS idx_transitions_game ON transitions(game, to_status);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Add records one transition and returns its ID.
func (s *Store) Add(e Entry) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO transitions (session, game, from_status, to_status, at) VALUES (?, ?, ?, ?, ?)",
		e.Session, e.Game, e.From, e.To, e.At.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("journal: cannot record transition: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("journal: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// Recent returns the latest transitions, newest first. An empty session
// matches every session.
func (s *Store) Recent(session string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, session, game, from_status, to_status, at
		 FROM transitions
		 WHERE ? = '' OR session = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		session, session, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("journal: cannot query transitions: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var at string
		if err := rows.Scan(&e.ID, &e.Session, &e.Game, &e.From, &e.To, &at); err != nil {
			return nil, fmt.Errorf("journal: cannot scan row: %w", err)
		}
		if parsed, err := time.Parse(time.RFC3339Nano, at); err == nil {
			e.At = parsed
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("journal: row iteration error: %w", err)
	}
	return entries, nil
}

// Plays counts how many times each game entered the given status.
func (s *Store) Plays(status string) (map[string]int, error) {
	rows, err := s.db.Query(
		`SELECT game, COUNT(*) FROM transitions WHERE to_status = ? GROUP BY game`,
		status,
	)
	if err != nil {
		return nil, fmt.Errorf("journal: cannot count plays: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var game string
		var n int
		if err := rows.Scan(&game, &n); err != nil {
			return nil, fmt.Errorf("journal: cannot scan row: %w", err)
		}
		counts[game] = n
	}
	return counts, rows.Err()
}

// Session binds the store to one session id.
func (s *Store) Session(id string) *Recorder {
	return &Recorder{store: s, session: id}
}

// Recorder writes the transitions of one session.
type Recorder struct {
	store   *Store
	session string
}

// Record stores a transition for the bound session.
func (r *Recorder) Record(game, from, to string, at time.Time) error {
	_, err := r.store.Add(Entry{Session: r.session, Game: game, From: from, To: to, At: at})
	return err
}
