package lwwset

import (
	"context"
	"errors"
	"sync"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
)

// Replica is one copy of a replicated last-write-wins set.
// It is safe for concurrent use by multiple goroutines.
// K must be a string or a type with underlying string.
type Replica[K ~string, V any] struct {
	cfg     Config
	logger  log.Logger
	metrics *Metrics
	mu      sync.RWMutex
	store   *Store[K, V]
	closed  bool
}

// NewReplica creates an empty replica with the provided options.
// K must be provided explicitly because it cannot be inferred from arguments.
func NewReplica[K ~string, V any](opts ...Option) (*Replica[K, V], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.finalize(); err != nil {
		return nil, err
	}
	return &Replica[K, V]{
		cfg:     cfg,
		logger:  log.With(cfg.Logger, "replica", cfg.ReplicaID),
		metrics: cfg.Metrics,
		store:   NewStore[K, V](),
	}, nil
}

// ID returns the replica identifier.
func (r *Replica[K, V]) ID() string {
	return r.cfg.ReplicaID
}

// Put stamps value with the replica clock and stores it under key.
// It returns the entry that was written.
func (r *Replica[K, V]) Put(ctx context.Context, key K, value V) (Entry[V], error) {
	if err := mapContextErr(ctx); err != nil {
		return Entry[V]{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return Entry[V]{}, ErrClosed
	}
	entry := NewEntry(value, r.cfg.Clock.Now())
	r.set(key, entry)
	return entry, nil
}

// Apply stores an entry that already carries a timestamp, for example one
// produced by another replica. The replica clock observes the timestamp.
func (r *Replica[K, V]) Apply(ctx context.Context, key K, entry Entry[V]) error {
	if err := mapContextErr(ctx); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	r.cfg.Clock.Observe(entry.Timestamp)
	r.set(key, entry)
	return nil
}

func (r *Replica[K, V]) set(key K, entry Entry[V]) {
	changed := r.store.m.Set(key, entry)
	if changed {
		r.metrics.Writes.Add(1)
	}
	level.Debug(r.logger).Log(
		"msg", "set",
		"key", string(key),
		"ts", entry.Timestamp,
		"changed", changed,
	)
}

// Get returns the value for the given key.
// It returns an error matching ErrKeyNotFound if the key does not exist.
func (r *Replica[K, V]) Get(ctx context.Context, key K) (V, error) {
	entry, err := r.GetEntry(ctx, key)
	if err != nil {
		var zero V
		return zero, err
	}
	return entry.Value, nil
}

// GetEntry returns the current entry for the given key.
func (r *Replica[K, V]) GetEntry(ctx context.Context, key K) (Entry[V], error) {
	if err := mapContextErr(ctx); err != nil {
		return Entry[V]{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return Entry[V]{}, ErrClosed
	}
	return r.store.GetEntry(key)
}

// Delete removes key from this replica only. Deleting an absent key is a
// no-op. A later merge from a replica still holding the key restores it.
func (r *Replica[K, V]) Delete(ctx context.Context, key K) error {
	if err := mapContextErr(ctx); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	r.store.Remove(key)
	return nil
}

// Len returns the number of keys held.
func (r *Replica[K, V]) Len(ctx context.Context) (int, error) {
	if err := mapContextErr(ctx); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return 0, ErrClosed
	}
	return r.store.Len(), nil
}

// Snapshot returns a point-in-time copy of the replica state.
// The copy is owned by the caller.
func (r *Replica[K, V]) Snapshot(ctx context.Context) (*Store[K, V], error) {
	if err := mapContextErr(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return nil, ErrClosed
	}
	return r.store.Clone(), nil
}

// Merge pulls the state of other into r. other is read from a snapshot, so
// the two replicas are never locked at the same time. Merging a replica
// into itself is a no-op.
func (r *Replica[K, V]) Merge(ctx context.Context, other *Replica[K, V]) error {
	if other == nil || other == r {
		return r.check(ctx)
	}
	source, err := other.Snapshot(ctx)
	if err != nil {
		return err
	}
	return r.MergeStore(ctx, source)
}

// MergeStore merges source into r. source must not be mutated while the
// merge runs.
func (r *Replica[K, V]) MergeStore(ctx context.Context, source *Store[K, V]) error {
	if err := mapContextErr(ctx); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	if source == nil {
		return nil
	}
	if ts, ok := source.m.MaxTimestamp(); ok {
		r.cfg.Clock.Observe(ts)
	}
	changed := r.store.merge(source)
	r.metrics.Merges.Add(1)
	r.metrics.Overwrites.Add(float64(changed))
	level.Debug(r.logger).Log(
		"msg", "merge",
		"source_keys", source.Len(),
		"changed", changed,
	)
	return nil
}

// Close marks the replica as closed.
// Further operations will return ErrClosed.
func (r *Replica[K, V]) Close(ctx context.Context) error {
	if err := mapContextErr(ctx); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	r.closed = true
	level.Info(r.logger).Log("msg", "replica closed", "keys", r.store.Len())
	return nil
}

func (r *Replica[K, V]) check(ctx context.Context) error {
	if err := mapContextErr(ctx); err != nil {
		return err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return ErrClosed
	}
	return nil
}

func mapContextErr(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrTimeout
		}
		if errors.Is(err, context.Canceled) {
			return ErrCanceled
		}
		return err
	}
	return nil
}
