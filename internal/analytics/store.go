// Package analytics keeps privacy-conscious visitor statistics.
//
// Visits live in an in-memory SQLite database and disappear with the
// process. IP addresses are never stored; only a salted, truncated hash.
package analytics

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// ErrStore wraps every database failure from this package.
var ErrStore = errors.New("analytics store")

// Visit is one recorded page view.
type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// Stats summarizes recorded visits.
type Stats struct {
	TotalVisitors    int64   `json:"total_visitors"`
	UniqueVisitors   int64   `json:"unique_visitors"`
	VisitorsToday    int64   `json:"visitors_today"`
	VisitorsThisWeek int64   `json:"visitors_this_week"`
	RecentVisitors   []Visit `json:"recent_visitors"`
}

// Store records visits.
type Store struct {
	db   *sql.DB
	salt string
	now  func() time.Time
}

const schema = `
CREATE TABLE IF NOT EXISTS visitors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT,
	path TEXT,
	timestamp INTEGER NOT NULL -- unix nanoseconds
);
CREATE INDEX IF NOT EXISTS visitors_timestamp ON visitors(timestamp);
`

// OpenMemory creates an empty in-memory store with a fresh hashing salt.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %v", ErrStore, err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: creating schema: %v", ErrStore, err)
	}

	salt, err := randomHex(32)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, salt: salt, now: time.Now}, nil
}

// Close releases the database.
func (s *Store) Close() error { return s.db.Close() }

// HashIP returns the salted hash stored in place of ip. It is stable for
// the lifetime of the store.
func (s *Store) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + s.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// Record stores a visit.
func (s *Store) Record(ctx context.Context, ip, userAgent, path string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visitors (hashed_ip, user_agent, path, timestamp) VALUES (?, ?, ?, ?)`,
		s.HashIP(ip), userAgent, path, s.now().UnixNano())
	if err != nil {
		return fmt.Errorf("%w: recording visit: %v", ErrStore, err)
	}
	return nil
}

// Stats returns the current summary with up to recent latest visits.
func (s *Store) Stats(ctx context.Context, recent int) (*Stats, error) {
	now := s.now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	stats := &Stats{}
	queries := []struct {
		dest  *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{startOfDay.UnixNano()}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{now.Add(-7 * 24 * time.Hour).UnixNano()}},
	}
	for _, q := range queries {
		if err := s.db.QueryRowContext(ctx, q.query, q.args...).Scan(q.dest); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStore, err)
		}
	}

	visits, err := s.Recent(ctx, recent)
	if err != nil {
		return nil, err
	}
	stats.RecentVisitors = visits
	return stats, nil
}

// Recent returns up to limit visits, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Visit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, user_agent, path, timestamp
		FROM visitors
		ORDER BY timestamp DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: listing visits: %v", ErrStore, err)
	}
	defer rows.Close()

	var visits []Visit
	for rows.Next() {
		var v Visit
		var ts int64
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			return nil, fmt.Errorf("%w: scanning visit: %v", ErrStore, err)
		}
		v.Timestamp = time.Unix(0, ts).UTC()
		visits = append(visits, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return visits, nil
}

// Cleanup deletes visits older than retention and returns how many went.
func (s *Store) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM visitors WHERE timestamp < ?`, s.now().Add(-retention).UnixNano())
	if err != nil {
		return 0, fmt.Errorf("%w: cleanup: %v", ErrStore, err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating random token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// NewToken returns a random hex token, used for admin sessions.
func NewToken() (string, error) { return randomHex(32) }
