package repository

import (
	"context"
	"sync"

	"github.com/nobuchiyo/studylens/internal/domain/model"
)

// MemoryStore is an in-memory Store for tests and local development.
// Appends land under the canonical column headers.
type MemoryStore struct {
	mu   sync.RWMutex
	rows []model.RawRow

	loadErr   error
	appendErr error
}

// MemoryOption applies a configuration option to the MemoryStore.
type MemoryOption func(*MemoryStore)

// WithSeedRows preloads raw rows into the store.
func WithSeedRows(rows ...model.RawRow) MemoryOption {
	return func(s *MemoryStore) {
		s.rows = append(s.rows, rows...)
	}
}

// WithLoadFailure makes every Load fail with err.
func WithLoadFailure(err error) MemoryOption {
	return func(s *MemoryStore) {
		s.loadErr = err
	}
}

// WithAppendFailure makes every Append fail with err.
func WithAppendFailure(err error) MemoryOption {
	return func(s *MemoryStore) {
		s.appendErr = err
	}
}

// NewMemoryStore creates a new in-memory store with configuration options.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns a copy of the current rows.
func (s *MemoryStore) Load(ctx context.Context) ([]model.RawRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	out := make([]model.RawRow, len(s.rows))
	copy(out, s.rows)
	return out, nil
}

// Append adds one record under the canonical column headers.
func (s *MemoryStore) Append(ctx context.Context, rec model.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.appendErr != nil {
		return s.appendErr
	}
	cells := Cells(rec)
	row := make(model.RawRow, len(Columns))
	for i, col := range Columns {
		row[col] = cells[i]
	}
	s.rows = append(s.rows, row)
	return nil
}

// Len returns the number of stored rows.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}
