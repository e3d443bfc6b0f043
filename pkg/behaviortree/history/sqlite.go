package history

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore persists tick records to SQLite.
// It is suitable for single-process production use.
type SQLiteStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// NewSQLiteStore opens (or creates) a SQLite history database.
// The path should be a file path (e.g., "./ticks.db") or ":memory:" for testing.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// A single connection keeps ":memory:" databases shared and serializes writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS ticks (
			tree TEXT NOT NULL,
			sequence INTEGER NOT NULL,
			tick_id TEXT NOT NULL,
			status TEXT NOT NULL,
			duration_ns INTEGER NOT NULL,
			error TEXT NOT NULL,
			timestamp TEXT NOT NULL,
			version INTEGER NOT NULL,
			PRIMARY KEY (tree, sequence)
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Append implements Store.
func (s *SQLiteStore) Append(rec Record) (Record, error) {
	if rec.Tree == "" {
		return Record{}, ErrTreeRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return Record{}, ErrStoreClosed
	}

	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}
	if rec.Version == 0 {
		rec.Version = Version
	}

	err := s.db.QueryRow(`
		INSERT INTO ticks (tree, sequence, tick_id, status, duration_ns, error, timestamp, version)
		VALUES (
			?,
			COALESCE((SELECT MAX(sequence) FROM ticks WHERE tree = ?), 0) + 1,
			?, ?, ?, ?, ?, ?
		)
		RETURNING sequence
	`, rec.Tree, rec.Tree, rec.TickID, rec.Status, int64(rec.Duration), rec.Error,
		rec.Timestamp.Format(time.RFC3339Nano), rec.Version).Scan(&rec.Sequence)
	if err != nil {
		return Record{}, fmt.Errorf("append tick record: %w", err)
	}
	return rec, nil
}

// Latest implements Store.
func (s *SQLiteStore) Latest(tree string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return Record{}, ErrStoreClosed
	}

	row := s.db.QueryRow(`
		SELECT tree, sequence, tick_id, status, duration_ns, error, timestamp, version
		FROM ticks
		WHERE tree = ?
		ORDER BY sequence DESC
		LIMIT 1
	`, tree)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("load latest tick record: %w", err)
	}
	return rec, nil
}

// List implements Store.
func (s *SQLiteStore) List(tree string) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	rows, err := s.db.Query(`
		SELECT tree, sequence, tick_id, status, duration_ns, error, timestamp, version
		FROM ticks
		WHERE tree = ?
		ORDER BY sequence
	`, tree)
	if err != nil {
		return nil, fmt.Errorf("list tick records: %w", err)
	}
	defer rows.Close()

	recs := []Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tick record: %w", err)
		}
		recs = append(recs, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tick records: %w", err)
	}
	return recs, nil
}

// Counts implements Store.
func (s *SQLiteStore) Counts(tree string) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	rows, err := s.db.Query(`
		SELECT status, COUNT(*)
		FROM ticks
		WHERE tree = ?
		GROUP BY status
	`, tree)
	if err != nil {
		return nil, fmt.Errorf("count tick records: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan tick count: %w", err)
		}
		counts[status] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tick counts: %w", err)
	}
	return counts, nil
}

// DeleteTree implements Store.
func (s *SQLiteStore) DeleteTree(tree string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	if _, err := s.db.Exec(`DELETE FROM ticks WHERE tree = ?`, tree); err != nil {
		return fmt.Errorf("delete tick records: %w", err)
	}
	return nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true
	return s.db.Close()
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (Record, error) {
	var rec Record
	var durationNs int64
	var timestamp string
	if err := sc.Scan(&rec.Tree, &rec.Sequence, &rec.TickID, &rec.Status,
		&durationNs, &rec.Error, &timestamp, &rec.Version); err != nil {
		return Record{}, err
	}
	rec.Duration = time.Duration(durationNs)
	rec.Timestamp, _ = time.Parse(time.RFC3339Nano, timestamp)
	return rec, nil
}
