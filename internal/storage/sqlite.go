// Package storage keeps the history of finished runs for the lifetime of the process.
// It uses an in-memory database through the pure-Go modernc.org/sqlite driver;
// nothing is ever written to disk.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// timeLayout is how ended_at is stored.
const timeLayout = "2006-01-02 15:04:05.000"

// Store manages the in-memory run history.
type Store struct {
	db *sql.DB
}

// Run is one finished run.
type Run struct {
	ID        int64
	Score     int
	Ticks     uint64
	Bonuses   int
	LivesLost int
	HighScore int // Session high score right after this run
	EndedAt   time.Time
}

// Stats aggregates every run in the store.
type Stats struct {
	Runs         int
	BestScore    int
	AvgScore     float64
	TotalBonuses int
	TotalTicks   int64
}

// Open creates an empty in-memory store and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database: keep exactly one alive
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			bonuses INTEGER NOT NULL DEFAULT 0,
			lives_lost INTEGER NOT NULL DEFAULT 0,
			high_score INTEGER NOT NULL DEFAULT 0,
			ended_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_score ON runs(score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database. The history is gone afterwards.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run and returns its ID.
// A zero EndedAt is replaced by the current time.
func (s *Store) SaveRun(r Run) (int64, error) {
	if r.Score < 0 {
		return 0, fmt.Errorf("storage: cannot save run with negative score %d", r.Score)
	}
	if r.EndedAt.IsZero() {
		r.EndedAt = time.Now()
	}

	result, err := s.db.Exec(
		`INSERT INTO runs (score, ticks, bonuses, lives_lost, high_score, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.Score, int64(r.Ticks), r.Bonuses, r.LivesLost, r.HighScore,
		r.EndedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns returns up to limit runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT id, score, ticks, bonuses, lives_lost, high_score, ended_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

// TopRuns returns up to limit runs ordered by score descending.
// Equal scores keep the order they were played in.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, score, ticks, bonuses, lives_lost, high_score, ended_at
		 FROM runs
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
}

// Best returns the highest scoring run. The boolean is false when no run was recorded.
func (s *Store) Best() (Run, bool, error) {
	runs, err := s.TopRuns(1)
	if err != nil {
		return Run{}, false, err
	}
	if len(runs) == 0 {
		return Run{}, false, nil
	}
	return runs[0], true, nil
}

// Count returns the number of recorded runs.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return n, nil
}

// Stats aggregates every recorded run.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(bonuses), 0), COALESCE(SUM(ticks), 0)
		 FROM runs`,
	).Scan(&st.Runs, &st.BestScore, &st.AvgScore, &st.TotalBonuses, &st.TotalTicks)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	return st, nil
}

// Clear deletes every recorded run.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var ticks int64
		var endedAt any
		if err := rows.Scan(&r.ID, &r.Score, &ticks, &r.Bonuses, &r.LivesLost, &r.HighScore, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.EndedAt = parseTime(endedAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// parseTime handles both time.Time and string values returned by the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
