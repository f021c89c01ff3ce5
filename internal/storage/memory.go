package storage

import "iter"

// Map is an unsynchronized key to Entry mapping with last-write-wins Set.
// Callers serialize access themselves.
type Map[K ~string, V any] struct {
	values map[K]Entry[V]
}

func NewMap[K ~string, V any]() *Map[K, V] {
	return &Map[K, V]{
		values: make(map[K]Entry[V]),
	}
}

// Set inserts entry when key is absent, otherwise keeps Resolve(current, entry).
// It reports whether the stored entry changed.
func (m *Map[K, V]) Set(key K, entry Entry[V]) bool {
	current, ok := m.values[key]
	if ok && !Supersedes(current, entry) {
		return false
	}
	m.values[key] = entry
	return true
}

func (m *Map[K, V]) Get(key K) (Entry[V], bool) {
	entry, ok := m.values[key]
	return entry, ok
}

// Delete drops key outright. No tombstone is kept.
func (m *Map[K, V]) Delete(key K) bool {
	if _, ok := m.values[key]; !ok {
		return false
	}
	delete(m.values, key)
	return true
}

func (m *Map[K, V]) Len() int {
	return len(m.values)
}

// All yields every (key, entry) pair in unspecified order.
// Set may be called from the loop body only for keys that are already present.
func (m *Map[K, V]) All() iter.Seq2[K, Entry[V]] {
	return func(yield func(K, Entry[V]) bool) {
		for key, entry := range m.values {
			if !yield(key, entry) {
				return
			}
		}
	}
}

// Clone returns a copy of the mapping. Values are copied shallowly.
func (m *Map[K, V]) Clone() *Map[K, V] {
	out := make(map[K]Entry[V], len(m.values))
	for key, entry := range m.values {
		out[key] = entry
	}
	return &Map[K, V]{values: out}
}

// MaxTimestamp returns the highest timestamp held, or false when empty.
func (m *Map[K, V]) MaxTimestamp() (int64, bool) {
	var (
		highest int64
		found   bool
	)
	for _, entry := range m.values {
		if !found || entry.Timestamp > highest {
			highest = entry.Timestamp
			found = true
		}
	}
	return highest, found
}
