// Package store persists privacy-hashed page visits and web-vitals samples in
// SQLite. Raw client IPs never reach the database.
package store

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Retention is how long visits are kept before Cleanup removes them.
const Retention = 365 * 24 * time.Hour

const schema = `
CREATE TABLE IF NOT EXISTS visits (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT,
	path TEXT NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_visits_created_at ON visits(created_at);
CREATE TABLE IF NOT EXISTS metrics (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	value REAL NOT NULL,
	rating TEXT,
	path TEXT,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_metrics_name ON metrics(name);
`

// Store wraps the SQLite handle.
type Store struct {
	db     *sql.DB
	salt   string
	logger *zap.Logger
	now    func() time.Time

	wg sync.WaitGroup
}

// Open opens (creating if needed) the database at path and applies the schema.
// Use ":memory:" for a throwaway database.
func Open(ctx context.Context, path string, logger *zap.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// One connection keeps ":memory:" databases shared and serializes writers.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	salt, err := randomHex(32)
	if err != nil {
		db.Close()
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{db: db, salt: salt, logger: logger, now: time.Now}, nil
}

// Close waits for pending background writes and closes the database.
func (s *Store) Close() error {
	s.wg.Wait()
	return s.db.Close()
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// HashIP returns a salted, truncated hash of ip. The salt lives for the
// process lifetime, so hashes are stable per run and unlinkable across runs.
func (s *Store) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + s.salt))
	return hex.EncodeToString(sum[:])[:16]
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}
