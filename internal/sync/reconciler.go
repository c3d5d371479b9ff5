// Package sync keeps client-held entity lists consistent with the backend.
// Every mutation converges by refetching the full list rather than patching
// in place: the backend assigns ids, media URLs, and ordering, so an
// optimistic local splice could not reproduce the server's view.
package sync

import (
	"context"
	stdsync "sync"
)

// Status is the reconciler's tri-state.
type Status int

const (
	Loading Status = iota
	Ready
	Failed
)

func (s Status) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Snapshot is one observable state of a reconciled list. A failed fetch
// leaves Items empty rather than showing stale data.
type Snapshot[T any] struct {
	Status Status
	Items  []T
	Err    error
}

// FetchFunc loads the authoritative list from the backend.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// List reconciles one entity list with the backend. At most one fetch is in
// flight; a newer Refresh supersedes a pending one and the stale result is
// discarded when it lands (late-arrival suppression). Mutations are
// serialized per instance so rapid admin actions cannot interleave with the
// refetch that follows each of them.
type List[T any] struct {
	fetch    FetchFunc[T]
	onChange func(Snapshot[T])

	mu     stdsync.Mutex
	seq    uint64
	cancel context.CancelFunc
	snap   Snapshot[T]

	mutations stdsync.Mutex
}

// Option configures a List.
type Option[T any] func(*List[T])

// WithOnChange registers a callback observing every snapshot transition.
func WithOnChange[T any](fn func(Snapshot[T])) Option[T] {
	return func(l *List[T]) { l.onChange = fn }
}

// NewList creates a reconciler over the given fetch function.
func NewList[T any](fetch FetchFunc[T], opts ...Option[T]) *List[T] {
	l := &List[T]{
		fetch: fetch,
		snap:  Snapshot[T]{Status: Loading, Items: []T{}},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Snapshot returns the current list state.
func (l *List[T]) Snapshot() Snapshot[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snap
}

// Refresh fetches the list and settles into Ready or Failed. A concurrent
// newer Refresh wins: this call's result is dropped if it was superseded
// while in flight, and the superseded request's context is cancelled.
func (l *List[T]) Refresh(ctx context.Context) Snapshot[T] {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.seq++
	seq := l.seq
	l.snap = Snapshot[T]{Status: Loading, Items: []T{}}
	l.mu.Unlock()
	l.notify()

	items, err := l.fetch(fetchCtx)
	cancel()

	l.mu.Lock()
	if l.seq != seq {
		// A newer Refresh superseded this one while it was in flight.
		snap := l.snap
		l.mu.Unlock()
		return snap
	}
	if err != nil {
		l.snap = Snapshot[T]{Status: Failed, Items: []T{}, Err: err}
	} else {
		if items == nil {
			items = []T{}
		}
		l.snap = Snapshot[T]{Status: Ready, Items: items}
	}
	snap := l.snap
	l.mu.Unlock()
	l.notify()
	return snap
}

// Mutate runs one create/update/delete operation, then refetches the list so
// the local state reflects every backend-computed field. Mutations on the
// same List never run concurrently.
func (l *List[T]) Mutate(ctx context.Context, op func(ctx context.Context) error) (Snapshot[T], error) {
	l.mutations.Lock()
	defer l.mutations.Unlock()

	if err := op(ctx); err != nil {
		return l.Snapshot(), err
	}
	return l.Refresh(ctx), nil
}

func (l *List[T]) notify() {
	if l.onChange == nil {
		return
	}
	l.onChange(l.Snapshot())
}
