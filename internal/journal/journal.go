// internal/journal/journal.go
//
// Session journal: an append-only record of every line a session evaluated.
// Used to replay the guess history when a session is won.
//
// Backends:
//   - memory: map keyed by session ID (default).
//   - sqlite: database/sql over mattn/go-sqlite3, ":memory:" unless a DSN is set.
//
// Entries are scoped to one session ID; nothing reads another session back.

package journal

import (
	"context"
	"fmt"
	"time"
)

// Entry is one evaluated input line.
type Entry struct {
	SessionID string
	Seq       int       // 1-based position within the session
	Raw       string    // line as typed, terminator trimmed
	Guess     *int64    // nil when the line was rejected
	Outcome   string    // verdict name or "rejected"
	At        time.Time // UTC
}

// Rejected is the Outcome recorded for lines that failed to parse.
const Rejected = "rejected"

// Journal defines the persistence interface for session entries.
type Journal interface {
	// Record appends an entry.
	Record(ctx context.Context, e Entry) error

	// Entries returns a session's entries ordered by Seq.
	Entries(ctx context.Context, sessionID string) ([]Entry, error)

	// Close releases backend resources.
	Close() error
}

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Open constructs the named backend.
func Open(backend, dsn string) (Journal, error) {
	switch backend {
	case "", BackendMemory:
		return NewMemory(), nil
	case BackendSQLite:
		return OpenSQLite(dsn)
	}
	return nil, fmt.Errorf("journal: unknown backend %q", backend)
}

// Guesses extracts the evaluated guesses from entries, skipping rejections.
func Guesses(entries []Entry) []int64 {
	out := make([]int64, 0, len(entries))
	for _, e := range entries {
		if e.Guess != nil {
			out = append(out, *e.Guess)
		}
	}
	return out
}
