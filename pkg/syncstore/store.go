// Package syncstore keeps in-memory mirrors of server-owned entities.
// The server is the single source of truth: mutations dispatch first and
// the mirror only changes once the server acknowledges with a canonical
// entity. A failed call leaves the mirror exactly as it was.
//
// Stores are meant to back a single UI loop and are not safe for
// concurrent use.
package syncstore

import (
	"context"
)

// Backend is the remote side of a Collection. Every call returns either
// canonical server state or a classified client.Error.
type Backend[T any, C any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, input C) (*T, error)
	Delete(ctx context.Context, id int64) error
}

// CollectionConfig wires a Collection to its backend and domain hooks.
type CollectionConfig[T any, C any] struct {
	Backend Backend[T, C]

	// ID extracts the server identity of an entity.
	ID func(T) int64

	// Validate runs before Create dispatches. A non-nil error aborts the
	// call without touching the network; it should be a client validation
	// error so callers can render it inline.
	Validate func(C) error

	// Confirm runs before Remove dispatches. Returning false cancels the
	// removal with no network call and no error.
	Confirm func(T) bool

	// OnChange fires after every successful mutation of the mirror with
	// the new snapshot.
	OnChange func([]T)
}

// Collection mirrors a server-owned list of entities.
type Collection[T any, C any] struct {
	cfg    CollectionConfig[T, C]
	items  []T
	loaded bool
}

// NewCollection builds an empty, unloaded Collection.
func NewCollection[T any, C any](cfg CollectionConfig[T, C]) *Collection[T, C] {
	return &Collection[T, C]{cfg: cfg}
}

// Load replaces the mirror with the server's current list. On failure the
// previous contents are kept untouched.
func (s *Collection[T, C]) Load(ctx context.Context) error {
	items, err := s.cfg.Backend.List(ctx)
	if err != nil {
		return err
	}
	if items == nil {
		items = []T{}
	}
	s.items = items
	s.loaded = true
	s.notify()
	return nil
}

// Create validates the input, dispatches it, and appends the canonical
// entity the server returns. There is no optimistic insert: the mirror
// changes only after the server acknowledges.
func (s *Collection[T, C]) Create(ctx context.Context, input C) (*T, error) {
	if s.cfg.Validate != nil {
		if err := s.cfg.Validate(input); err != nil {
			return nil, err
		}
	}
	created, err := s.cfg.Backend.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	s.items = append(s.items, *created)
	s.notify()
	return created, nil
}

// Update replaces the mirrored entity matching item's identity with the
// given canonical server object. Entities not present are ignored.
func (s *Collection[T, C]) Update(item T) {
	id := s.cfg.ID(item)
	for i := range s.items {
		if s.cfg.ID(s.items[i]) == id {
			s.items[i] = item
			s.notify()
			return
		}
	}
}

// Remove asks for confirmation, dispatches the delete, and drops the
// entity from the mirror only once the server acknowledges. It reports
// whether the entity was removed; a declined confirmation returns
// (false, nil).
func (s *Collection[T, C]) Remove(ctx context.Context, id int64) (bool, error) {
	idx := -1
	for i := range s.items {
		if s.cfg.ID(s.items[i]) == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}
	if s.cfg.Confirm != nil && !s.cfg.Confirm(s.items[idx]) {
		return false, nil
	}
	if err := s.cfg.Backend.Delete(ctx, id); err != nil {
		return false, err
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	s.notify()
	return true, nil
}

// Get returns the mirrored entity with the given identity.
func (s *Collection[T, C]) Get(id int64) (T, bool) {
	for i := range s.items {
		if s.cfg.ID(s.items[i]) == id {
			return s.items[i], true
		}
	}
	var zero T
	return zero, false
}

// Snapshot returns a copy of the mirror's contents in server order.
func (s *Collection[T, C]) Snapshot() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Len reports how many entities the mirror holds.
func (s *Collection[T, C]) Len() int {
	return len(s.items)
}

// Loaded reports whether Load has succeeded at least once.
func (s *Collection[T, C]) Loaded() bool {
	return s.loaded
}

func (s *Collection[T, C]) notify() {
	if s.cfg.OnChange != nil {
		s.cfg.OnChange(s.Snapshot())
	}
}

// SingletonBackend is the remote side of a Singleton.
type SingletonBackend[T any, P any] interface {
	Get(ctx context.Context) (*T, error)
	Update(ctx context.Context, patch P) (*T, error)
}

// Singleton mirrors a single server-owned entity, such as the signed-in
// teacher's profile.
type Singleton[T any, P any] struct {
	backend  SingletonBackend[T, P]
	onChange func(T)
	value    T
	loaded   bool
}

// NewSingleton builds an empty, unloaded Singleton. onChange may be nil.
func NewSingleton[T any, P any](backend SingletonBackend[T, P], onChange func(T)) *Singleton[T, P] {
	return &Singleton[T, P]{backend: backend, onChange: onChange}
}

// Load replaces the mirrored value with the server's. On failure the
// previous value is kept.
func (s *Singleton[T, P]) Load(ctx context.Context) error {
	v, err := s.backend.Get(ctx)
	if err != nil {
		return err
	}
	s.set(*v)
	return nil
}

// Update dispatches a partial update and stores the canonical entity the
// server returns. The mirror is untouched on failure.
func (s *Singleton[T, P]) Update(ctx context.Context, patch P) (*T, error) {
	v, err := s.backend.Update(ctx, patch)
	if err != nil {
		return nil, err
	}
	s.set(*v)
	return v, nil
}

// Replace overwrites the mirror with a canonical entity obtained out of
// band, for example from a login response.
func (s *Singleton[T, P]) Replace(v T) {
	s.set(v)
}

// Value returns the mirrored entity and whether it has been loaded.
func (s *Singleton[T, P]) Value() (T, bool) {
	return s.value, s.loaded
}

func (s *Singleton[T, P]) set(v T) {
	s.value = v
	s.loaded = true
	if s.onChange != nil {
		s.onChange(v)
	}
}
