// internal/dashboard/prefs.go
package dashboard

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Preference keys.
const (
	prefTheme    = "theme"
	prefLastView = "last_view"
)

// Prefs is a best-effort local key-value store for session preferences
// (theme mode, last active view). Reads and writes never fail the caller;
// a broken prefs file degrades to in-session defaults.
type Prefs struct {
	db  *sql.DB
	log *zap.Logger
}

// OpenPrefs opens (or creates) the preference store under dataDir.
func OpenPrefs(dataDir string, logger *zap.Logger) (*Prefs, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, "prefs.db")
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)")
	if err != nil {
		return nil, fmt.Errorf("open prefs db: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS prefs (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create prefs table: %w", err)
	}

	return &Prefs{db: db, log: logger}, nil
}

// Get returns the stored value for key, if any.
func (p *Prefs) Get(key string) (string, bool) {
	var value string
	err := p.db.QueryRow(`SELECT value FROM prefs WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false
	}
	if err != nil {
		p.log.Warn("preference read failed", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return value, true
}

// Set stores a value for key, replacing any previous value. Failures are
// logged and swallowed.
func (p *Prefs) Set(key, value string) {
	_, err := p.db.Exec(
		`INSERT INTO prefs (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		p.log.Warn("preference write failed", zap.String("key", key), zap.Error(err))
	}
}

// Close releases the underlying database.
func (p *Prefs) Close() error {
	return p.db.Close()
}
