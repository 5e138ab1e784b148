package inmemory

import (
	"sort"
	"sync"

	"ordertrack/internal/core/domain/model/kernel"
)

// entry pairs a stored value with its insertion sequence number so listings
// are stable across calls.
type entry[T any] struct {
	value T
	seq   uint64
}

// store is a mutex-guarded map keyed by aggregate id. All repositories in
// this package are thin typed wrappers around it.
type store[T any] struct {
	mu    sync.RWMutex
	items map[kernel.UUID]entry[T]
	seq   uint64
}

func newStore[T any]() *store[T] {
	return &store[T]{items: map[kernel.UUID]entry[T]{}}
}

// add inserts a new value. Reports false when the id is already taken.
func (s *store[T]) add(id kernel.UUID, value T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; exists {
		return false
	}
	s.seq++
	s.items[id] = entry[T]{value: value, seq: s.seq}
	return true
}

// update replaces an existing value under the lock. The callback receives the
// current value and returns the replacement; returning an error aborts the
// update and leaves the store untouched. Reports found=false when the id does
// not exist, in which case the callback never runs.
func (s *store[T]) update(id kernel.UUID, fn func(current T) (T, error)) (found bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, exists := s.items[id]
	if !exists {
		return false, nil
	}

	next, err := fn(current.value)
	if err != nil {
		return true, err
	}
	s.items[id] = entry[T]{value: next, seq: current.seq}
	return true, nil
}

// get retrieves a value by id.
func (s *store[T]) get(id kernel.UUID) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.items[id]
	return e.value, ok
}

// all returns every value in insertion order.
func (s *store[T]) all() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshotLocked()
}

// paged returns one page of values in insertion order plus the total count.
func (s *store[T]) paged(page, pageSize int) ([]T, int64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	values := s.snapshotLocked()
	total := int64(len(values))

	start := (page - 1) * pageSize
	if start >= len(values) {
		return []T{}, total
	}
	end := start + pageSize
	if end > len(values) {
		end = len(values)
	}
	return values[start:end], total
}

// delete removes a value by id. Absent ids are ignored.
func (s *store[T]) delete(id kernel.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, id)
}

// find returns all values matching the predicate, in insertion order.
func (s *store[T]) find(pred func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0)
	for _, v := range s.snapshotLocked() {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

func (s *store[T]) snapshotLocked() []T {
	entries := make([]entry[T], 0, len(s.items))
	for _, e := range s.items {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	values := make([]T, len(entries))
	for i, e := range entries {
		values[i] = e.value
	}
	return values
}
