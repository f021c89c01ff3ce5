// Package lwwset provides a last-write-wins element set: a conflict-free
// replicated map from string keys to timestamped values.
//
// # Data model
//
// Every key holds exactly one Entry, a value paired with an int64 timestamp.
// Values are opaque; only timestamps decide which write survives. A write
// replaces the current entry only when its timestamp is strictly greater, so
// on a tie the entry that was there first is kept. This makes Set idempotent
// and lets replicas merge in any order, any number of times, and converge.
//
// # Merging
//
// Store.Merge sets every entry of another store into the receiver and
// returns the receiver, so merges chain. MergeAll folds several stores into
// the first one.
//
// # Removal
//
// Remove deletes a key locally without leaving a tombstone. Merging from a
// replica that still holds the key brings it back.
//
// # Concurrency
//
// Store is not synchronized. Replica wraps a Store with a lock, a Clock for
// stamping local writes, go-kit logging and metrics.
//
// Example
//
//	a := lwwset.NewStore[string, string]()
//	b := lwwset.NewStore[string, string]()
//	a.Set("k", lwwset.NewEntry("old", 100))
//	b.Set("k", lwwset.NewEntry("new", 200))
//	v, _ := a.Merge(b).Get("k") // "new"
package lwwset
