package lwwset

// Merge sets every entry of source into s and returns s.
//
// Per key the entry with the higher timestamp survives and s keeps its own
// entry on a tie. Merging s into itself or merging a nil or empty source
// leaves s unchanged. source must not be mutated while the merge runs.
func (s *Store[K, V]) Merge(source *Store[K, V]) *Store[K, V] {
	s.merge(source)
	return s
}

// merge reports how many keys of s took the entry from source.
func (s *Store[K, V]) merge(source *Store[K, V]) int {
	if source == nil || source == s {
		return 0
	}
	changed := 0
	for key, entry := range source.m.All() {
		if s.m.Set(key, entry) {
			changed++
		}
	}
	return changed
}

// Merge merges source into target and returns target.
func Merge[K ~string, V any](target, source *Store[K, V]) *Store[K, V] {
	return target.Merge(source)
}

// MergeAll folds others into first from left to right and returns first.
func MergeAll[K ~string, V any](first *Store[K, V], others ...*Store[K, V]) *Store[K, V] {
	for _, other := range others {
		first.Merge(other)
	}
	return first
}
