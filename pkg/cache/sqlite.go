package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure Go SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS feed_cache (
	key        TEXT PRIMARY KEY,
	fetched_at INTEGER NOT NULL,
	raw_text   TEXT NOT NULL
)`

// errCritical stops write retries for errors other than lock contention
var errCritical = errors.New("critical cache error")

// SQLite is a persistent cache shared by every process using the same database file
type SQLite struct {
	db  *sqlx.DB
	ttl time.Duration
	now func() time.Time
}

// NewSQLite opens the database at dsn and prepares the cache table
func NewSQLite(ctx context.Context, dsn string, ttl time.Duration) (*SQLite, error) {
	if dsn == "" {
		dsn = "file:feeds-cache.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &SQLite{db: db, ttl: ttl, now: time.Now}, nil
}

// Get returns cached text for url if present and not expired
func (s *SQLite) Get(ctx context.Context, url string) (string, bool) {
	var row struct {
		FetchedAt int64  `db:"fetched_at"`
		RawText   string `db:"raw_text"`
	}
	err := s.db.GetContext(ctx, &row, "SELECT fetched_at, raw_text FROM feed_cache WHERE key = ?", Key(url))
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			lgr.Printf("[WARN] cache read for %s failed: %v", url, err)
		}
		return "", false
	}

	e := Entry{FetchedAt: time.UnixMilli(row.FetchedAt), RawText: row.RawText}
	if e.expired(s.now(), s.ttl) {
		lgr.Printf("[DEBUG] cache entry for %s expired", url)
		return "", false
	}
	return e.RawText, true
}

// Put stores text for url, replacing any previous entry. Failures are logged only.
// Only local lock contention is retried, any other storage error gives up at once.
func (s *SQLite) Put(ctx context.Context, url, text string) {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		_, err := s.db.ExecContext(ctx,
			"INSERT OR REPLACE INTO feed_cache (key, fetched_at, raw_text) VALUES (?, ?, ?)",
			Key(url), s.now().UnixMilli(), text)
		if err != nil && !isLockError(err) {
			return fmt.Errorf("%w: %w", errCritical, err)
		}
		return err
	}, errCritical)
	if err != nil {
		lgr.Printf("[WARN] cache write for %s failed: %v", url, err)
	}
}

// Close closes the database connection
func (s *SQLite) Close() error {
	return s.db.Close()
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}
