package lwwset

import (
	"maps"
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func snapshotOf(s *Store[string, string]) map[string]Entry[string] {
	return maps.Collect(s.Entries())
}

// randomStore fills a store over a small key space. When distinct is set,
// timestamps come from *next so no two generated entries share one.
func randomStore(rng *rand.Rand, next *int64, distinct bool) *Store[string, string] {
	s := NewStore[string, string]()
	for range rng.IntN(20) {
		key := "k" + strconv.Itoa(rng.IntN(10))
		var ts int64
		if distinct {
			*next++
			ts = *next
		} else {
			ts = rng.Int64N(5)
		}
		s.Set(key, NewEntry("v"+strconv.Itoa(rng.IntN(1000)), ts))
	}
	return s
}

func TestMerge_Property_Monotonicity(t *testing.T) {
	a := NewEntry("a", 1)
	b := NewEntry("b", 2)

	forward := NewStore[string, string]()
	forward.Set("k", a)
	forward.Set("k", b)

	backward := NewStore[string, string]()
	backward.Set("k", b)
	backward.Set("k", a)

	for _, s := range []*Store[string, string]{forward, backward} {
		value, err := s.Get("k")
		require.NoError(t, err)
		require.Equal(t, "b", value)
	}
}

func TestMerge_Property_TieKeepsFirstWrite(t *testing.T) {
	s := NewStore[string, string]()
	s.Set("k", NewEntry("first", 10))
	s.Set("k", NewEntry("second", 10))
	s.Set("k", NewEntry("first", 10))
	s.Set("k", NewEntry("third", 10))

	entry, err := s.GetEntry("k")
	require.NoError(t, err)
	require.Equal(t, NewEntry("first", 10), entry)
}

func TestMerge_Property_SetIsIdempotent(t *testing.T) {
	e := NewEntry("v", 5)

	once := NewStore[string, string]()
	once.Set("k", e)

	twice := NewStore[string, string]()
	twice.Set("k", e)
	twice.Set("k", e)

	require.Equal(t, snapshotOf(once), snapshotOf(twice))
}

func TestMerge_Property_AbsorbsNewerData(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	var next int64
	for range 200 {
		a := randomStore(rng, &next, false)
		b := randomStore(rng, &next, false)
		before := snapshotOf(a)

		a.Merge(b)

		for key, bEntry := range b.Entries() {
			got, err := a.GetEntry(key)
			require.NoError(t, err)
			aEntry, ok := before[key]
			switch {
			case !ok:
				require.Equal(t, bEntry, got)
			case aEntry.Timestamp < bEntry.Timestamp:
				require.Equal(t, bEntry, got)
			default:
				require.Equal(t, aEntry, got, "tie or older source must keep target entry")
			}
		}
		for key, aEntry := range before {
			if !b.Has(key) {
				got, err := a.GetEntry(key)
				require.NoError(t, err)
				require.Equal(t, aEntry, got)
			}
		}
	}
}

func TestMerge_Property_SelfMergeIsNoop(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	var next int64
	for range 50 {
		a := randomStore(rng, &next, false)
		before := snapshotOf(a)
		require.Same(t, a, a.Merge(a))
		require.Equal(t, before, snapshotOf(a))
	}
}

func TestMerge_Property_EmptyIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	var next int64
	for range 50 {
		a := randomStore(rng, &next, false)
		before := snapshotOf(a)

		a.Merge(NewStore[string, string]())
		require.Equal(t, before, snapshotOf(a))

		empty := NewStore[string, string]()
		empty.Merge(a)
		require.Equal(t, before, snapshotOf(empty))
	}
}

func TestMerge_Property_CommutativeWithDistinctTimestamps(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	var next int64
	for range 100 {
		a := randomStore(rng, &next, true)
		b := randomStore(rng, &next, true)

		ab := a.Clone().Merge(b)
		ba := b.Clone().Merge(a)
		require.Equal(t, snapshotOf(ab), snapshotOf(ba))
	}
}

func TestMerge_Property_Associative(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 10))
	var next int64
	for range 100 {
		a := randomStore(rng, &next, false)
		b := randomStore(rng, &next, false)
		c := randomStore(rng, &next, false)

		left := a.Clone().Merge(b).Merge(c)
		right := a.Clone().Merge(b.Clone().Merge(c))
		require.Equal(t, snapshotOf(left), snapshotOf(right))
	}
}

func TestMerge_Property_MergeIsIdempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	var next int64
	for range 100 {
		a := randomStore(rng, &next, false)
		b := randomStore(rng, &next, false)

		a.Merge(b)
		once := snapshotOf(a)
		a.Merge(b)
		require.Equal(t, once, snapshotOf(a))
	}
}

func TestMergeAll_Property_OrderIndependentWithDistinctTimestamps(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 14))
	var next int64
	for range 50 {
		stores := []*Store[string, string]{
			randomStore(rng, &next, true),
			randomStore(rng, &next, true),
			randomStore(rng, &next, true),
		}

		want := make(map[string]Entry[string])
		for _, s := range stores {
			for key, entry := range s.Entries() {
				if cur, ok := want[key]; !ok || cur.Timestamp < entry.Timestamp {
					want[key] = entry
				}
			}
		}

		orders := [][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
		for _, order := range orders {
			first := stores[order[0]].Clone()
			got := MergeAll(first, stores[order[1]], stores[order[2]])
			require.Same(t, first, got)
			require.Equal(t, want, snapshotOf(got), "order %v", order)
		}
	}
}
