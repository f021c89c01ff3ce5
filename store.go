package lwwset

import (
	"iter"

	"github.com/DobryySoul/lwwset/internal/storage"
)

// Entry is a value paired with the logical timestamp it was written at.
type Entry[V any] = storage.Entry[V]

// NewEntry builds an Entry from a value and a timestamp.
func NewEntry[V any](value V, timestamp int64) Entry[V] {
	return Entry[V]{Value: value, Timestamp: timestamp}
}

// Store is a last-write-wins element set mapping keys to entries.
//
// A Store has no internal synchronization. Callers that share one across
// goroutines must guard it themselves, or use Replica.
type Store[K ~string, V any] struct {
	m *storage.Map[K, V]
}

// NewStore returns an empty Store.
// K must be provided explicitly because it cannot be inferred from arguments.
func NewStore[K ~string, V any]() *Store[K, V] {
	return &Store[K, V]{m: storage.NewMap[K, V]()}
}

// Set writes entry under key. An existing entry is replaced only when the
// incoming timestamp is strictly greater; on equal timestamps the existing
// entry is kept, which makes repeated Sets of the same entry idempotent.
func (s *Store[K, V]) Set(key K, entry Entry[V]) {
	s.m.Set(key, entry)
}

// Get returns the value stored under key.
// It returns a *KeyNotFoundError if the key does not exist.
func (s *Store[K, V]) Get(key K) (V, error) {
	entry, err := s.GetEntry(key)
	if err != nil {
		var zero V
		return zero, err
	}
	return entry.Value, nil
}

// GetEntry returns the current entry stored under key.
// It returns a *KeyNotFoundError if the key does not exist.
func (s *Store[K, V]) GetEntry(key K) (Entry[V], error) {
	entry, ok := s.m.Get(key)
	if !ok {
		return Entry[V]{}, keyNotFound(key)
	}
	return entry, nil
}

// Has reports whether key is present.
func (s *Store[K, V]) Has(key K) bool {
	_, ok := s.m.Get(key)
	return ok
}

// Remove deletes key locally. Removing an absent key is a no-op.
// Removal does not replicate: merging from a store that still holds the key
// brings it back.
func (s *Store[K, V]) Remove(key K) {
	s.m.Delete(key)
}

// Entries iterates over all (key, entry) pairs in unspecified order.
func (s *Store[K, V]) Entries() iter.Seq2[K, Entry[V]] {
	return s.m.All()
}

// Len returns the number of keys held.
func (s *Store[K, V]) Len() int {
	return s.m.Len()
}

// Clone returns an independent copy of s. Values are copied shallowly.
func (s *Store[K, V]) Clone() *Store[K, V] {
	return &Store[K, V]{m: s.m.Clone()}
}
