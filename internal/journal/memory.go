// internal/journal/memory.go
//
// In-memory implementation of the Journal interface.
//
// Characteristics:
//   - Stores entries per session ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits.

package journal

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// ErrClosed is returned by a journal used after Close.
var ErrClosed = errors.New("journal: closed")

// memory is an in-memory map-based Journal implementation.
type memory struct {
	mu       sync.RWMutex       // guards sessions
	sessions map[string][]Entry // keyed by Entry.SessionID
}

// NewMemory constructs a new in-memory Journal.
func NewMemory() Journal {
	return &memory{sessions: make(map[string][]Entry)}
}

// Record appends the entry under its session.
func (m *memory) Record(ctx context.Context, e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sessions == nil {
		return ErrClosed
	}
	m.sessions[e.SessionID] = append(m.sessions[e.SessionID], e)
	return nil
}

// Entries returns a copy of the session's entries ordered by Seq.
func (m *memory) Entries(ctx context.Context, sessionID string) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.sessions == nil {
		return nil, ErrClosed
	}
	out := append([]Entry(nil), m.sessions[sessionID]...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out, nil
}

// Close drops all entries.
func (m *memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions = nil
	return nil
}
