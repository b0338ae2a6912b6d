package view

import (
	"context"
	"sync"
)

// ListState tracks the data-loading lifecycle of one list page instance:
// the item set, the loading flag, the last error, per-row pending markers,
// and a monotonic load sequence used to discard stale mutation results.
//
// The zero value is ready to use.
type ListState[T any] struct {
	mu      sync.Mutex
	items   []T
	loading bool
	errMsg  string
	pending map[string]bool
	loadSeq uint64
}

// Snapshot is a consistent copy of the list state for rendering.
type Snapshot[T any] struct {
	Items        []T
	Loading      bool
	ErrorMessage string
	Pending      map[string]bool
}

// Load runs fetch and replaces the item set on success. The loading flag is
// true for exactly the duration of the fetch. On failure the previous items
// are kept and ErrorMessage is set. Each Load bumps the load sequence, which
// invalidates mutation results started against older data.
func (s *ListState[T]) Load(ctx context.Context, fetch func(context.Context) ([]T, error)) error {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.loadSeq++
	seq := s.loadSeq
	s.mu.Unlock()

	items, err := fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq == s.loadSeq {
		s.loading = false
		if err != nil {
			s.errMsg = errorMessageFor(err)
			return err
		}
		s.items = items
	}
	return err
}

// Mutate runs op with the row marked pending, then applies the in-memory
// update on success. The pending marker covers exactly the call duration and
// is cleared on both outcomes. A result arriving after a newer Load began is
// discarded rather than patching stale state.
func (s *ListState[T]) Mutate(ctx context.Context, p MutationParams[T]) error {
	s.mu.Lock()
	if s.pending == nil {
		s.pending = make(map[string]bool)
	}
	s.pending[p.ID] = true
	seq := s.loadSeq
	s.mu.Unlock()

	err := p.Op(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, p.ID)
	if err != nil {
		s.errMsg = errorMessageFor(err)
		return err
	}
	if seq != s.loadSeq {
		// A newer load owns the item set now; drop this result.
		return nil
	}
	if p.Apply != nil {
		s.items = p.Apply(s.items)
	}
	return nil
}

// MutationParams groups the inputs of Mutate.
type MutationParams[T any] struct {
	// ID identifies the affected row; only this row is marked pending.
	ID string
	// Op performs the remote mutation.
	Op func(context.Context) error
	// Apply transforms the item set after a non-stale success. Optional.
	Apply func([]T) []T
}

// Pending reports whether the given row has an in-flight mutation.
func (s *ListState[T]) Pending(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending[id]
}

// Loading reports whether a load is in flight.
func (s *ListState[T]) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Items returns the current item set.
func (s *ListState[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items
}

// ErrorMessage returns the last error message, or "".
func (s *ListState[T]) ErrorMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// ClearError resets the error message, typically before a retry.
func (s *ListState[T]) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = ""
}

// Snapshot returns a consistent copy for rendering.
func (s *ListState[T]) Snapshot() Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]T, len(s.items))
	copy(items, s.items)
	pending := make(map[string]bool, len(s.pending))
	for k, v := range s.pending {
		if v {
			pending[k] = true
		}
	}
	return Snapshot[T]{
		Items:        items,
		Loading:      s.loading,
		ErrorMessage: s.errMsg,
		Pending:      pending,
	}
}

// RemoveByID returns an Apply function that drops the row with the given id.
func RemoveByID[T any](id string, idOf func(T) string) func([]T) []T {
	return func(items []T) []T {
		out := items[:0:0]
		for _, it := range items {
			if idOf(it) != id {
				out = append(out, it)
			}
		}
		return out
	}
}

// ReplaceByID returns an Apply function that swaps the row with the given id.
func ReplaceByID[T any](id string, replacement T, idOf func(T) string) func([]T) []T {
	return func(items []T) []T {
		out := make([]T, len(items))
		copy(out, items)
		for i, it := range out {
			if idOf(it) == id {
				out[i] = replacement
			}
		}
		return out
	}
}

func errorMessageFor(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
