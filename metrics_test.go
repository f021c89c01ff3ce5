package lwwset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrometheusMetricsWiring(t *testing.T) {
	m := NewPrometheusMetrics("lwwset_test")
	require.NotNil(t, m.Writes)
	require.NotNil(t, m.Merges)
	require.NotNil(t, m.Overwrites)

	r := newTestReplica(t, "prom", WithMetrics(m))
	_, err := r.Put(context.Background(), "k", "v")
	require.NoError(t, err)
	require.NoError(t, r.MergeStore(context.Background(), NewStore[string, string]()))
}

func TestDiscardMetrics(t *testing.T) {
	m := NewDiscardMetrics()
	m.Writes.Add(1)
	m.Merges.Add(1)
	m.Overwrites.Add(3)
}
