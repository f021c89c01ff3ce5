package storage

// Entry is a timestamped value stored under a key.
// The value is opaque: only Timestamp takes part in conflict resolution.
type Entry[V any] struct {
	Value     V
	Timestamp int64
}

// Supersedes returns true if incoming should replace existing.
// Only a strictly greater timestamp wins; on a tie the existing entry stays.
func Supersedes[V any](existing, incoming Entry[V]) bool {
	return existing.Timestamp < incoming.Timestamp
}

// Resolve picks the surviving entry out of two competing entries for one key.
func Resolve[V any](existing, incoming Entry[V]) Entry[V] {
	if Supersedes(existing, incoming) {
		return incoming
	}
	return existing
}
