// internal/journal/sqlite.go
//
// SQLite-backed Journal.
// Responsibilities:
//   - Opening the database with safe defaults (busy timeout, foreign keys).
//   - Applying embedded migrations from schema/*.sql (idempotent, recorded in _migrations).
//   - Recording and reading back session entries.
//
// The default DSN is ":memory:", so the journal never outlives the process.

package journal

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// DefaultDSN keeps the journal in process memory.
const DefaultDSN = ":memory:"

//go:embed schema/*.sql
var schemaFS embed.FS

type sqliteJournal struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if missing) a SQLite journal and migrates it.
func OpenSQLite(dsn string) (Journal, error) {
	if dsn == "" {
		dsn = DefaultDSN
	}
	db, err := openDB(dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &sqliteJournal{db: db}, nil
}

// openDB opens a SQLite database.
//
// - Ensures parent directory exists for file DSNs (e.g. ./data/journal.db).
// - Configures busy timeout and enforces foreign keys.
// - Pins the pool to one connection so ":memory:" is a single database.
func openDB(dsn string) (*sql.DB, error) {
	if dsn != DefaultDSN {
		dir := filepath.Dir(dsn)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("mkdir %s: %w", dir, err)
			}
		}
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	db, err := sql.Open("sqlite3", dsn+sep+"_busy_timeout=5000")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// migrate applies embedded schema files in lexical order, each in its own
// transaction, skipping files already recorded in _migrations.
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	var files []string
	if err := fs.WalkDir(schemaFS, "schema", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".sql") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("walk schema: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := schemaFS.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Debug().Str("migration", f).Msg("applied")
	}
	return nil
}

// Record inserts one entry. A duplicate (session_id, seq) is an error.
func (j *sqliteJournal) Record(ctx context.Context, e Entry) error {
	var guess sql.NullInt64
	if e.Guess != nil {
		guess = sql.NullInt64{Int64: *e.Guess, Valid: true}
	}
	_, err := j.db.ExecContext(ctx, `
        INSERT INTO journal_entries
            (session_id, seq, raw, guess, outcome, created_at)
        VALUES (?, ?, ?, ?, ?, ?)`,
		e.SessionID, e.Seq, e.Raw, guess, e.Outcome, e.At.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert journal entry: %w", err)
	}
	return nil
}

// Entries reads a session back ordered by seq.
func (j *sqliteJournal) Entries(ctx context.Context, sessionID string) ([]Entry, error) {
	rows, err := j.db.QueryContext(ctx, `
        SELECT seq, raw, guess, outcome, created_at
        FROM journal_entries
        WHERE session_id=?
        ORDER BY seq ASC`, sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("query journal entries: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e     = Entry{SessionID: sessionID}
			guess sql.NullInt64
			at    string
		)
		if err := rows.Scan(&e.Seq, &e.Raw, &guess, &e.Outcome, &at); err != nil {
			return nil, err
		}
		if guess.Valid {
			g := guess.Int64
			e.Guess = &g
		}
		if e.At, err = time.Parse(time.RFC3339Nano, at); err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", at, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Close closes the database; a ":memory:" journal is discarded.
func (j *sqliteJournal) Close() error { return j.db.Close() }
