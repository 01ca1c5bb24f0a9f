package recorder

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/guttosm/cryptopulse/internal/logger"
)

// SQLite persists upload audit entries to a local SQLite database.
type SQLite struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLite opens (or creates) the database at dbPath and runs migrations.
// Parent directories are created as needed.
func NewSQLite(dbPath string) (*SQLite, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create audit dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL keeps readers unblocked while uploads write.
	if _, err := db.Exec(`PRAGMA journal_mode=WAL`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLite{db: db}
	if err := r.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	logger.L().Info().Str("path", dbPath).Msg("sqlite audit recorder opened")
	return r, nil
}

func (r *SQLite) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS upload_log (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			received_at INTEGER NOT NULL,
			symbol      TEXT NOT NULL,
			filename    TEXT NOT NULL,
			rows        INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_upload_symbol ON upload_log(symbol)`,
		`CREATE INDEX IF NOT EXISTS idx_upload_received ON upload_log(received_at)`,
	}
	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:32], err)
		}
	}
	return nil
}

// RecordUpload appends one audit entry.
func (r *SQLite) RecordUpload(e UploadEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(
		`INSERT INTO upload_log (received_at, symbol, filename, rows) VALUES (?,?,?,?)`,
		e.ReceivedAt.Unix(), e.Symbol, e.Filename, e.Rows,
	)
	return err
}

func (r *SQLite) Ping() error { return r.db.Ping() }

func (r *SQLite) Close() error {
	logger.L().Info().Msg("closing sqlite audit recorder")
	return r.db.Close()
}
