// SPDX-License-Identifier: MIT

package metrics_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wugraph/core"
	"github.com/katalvlaran/wugraph/hashtable"
	"github.com/katalvlaran/wugraph/metrics"
)

// fixedSource returns canned stats.
type fixedSource struct{ st core.Stats }

func (f fixedSource) Stats() core.Stats { return f.st }

// countingLocker records Lock calls.
type countingLocker struct {
	sync.Mutex
	locks int
}

func (l *countingLocker) Lock() {
	l.Mutex.Lock()
	l.locks++
}

func TestNewCollector_NilSource(t *testing.T) {
	_, err := metrics.NewCollector(nil)
	require.ErrorIs(t, err, metrics.ErrNilSource)
}

func TestCollector_ExportsStats(t *testing.T) {
	src := fixedSource{st: core.Stats{
		Vertices:    3,
		Edges:       2,
		VertexIndex: hashtable.Stats{Len: 3, Buckets: 17, LoadFactor: 0.25, LongestChain: 1, Resizes: 0},
		EdgeIndex:   hashtable.Stats{Len: 2, Buckets: 17, LoadFactor: 0.5, LongestChain: 2, Resizes: 1},
	}}
	c, err := metrics.NewCollector(src, metrics.WithConstLabels(prometheus.Labels{"graph": "test"}))
	require.NoError(t, err)

	expected := `
# HELP wugraph_edges Number of distinct edges in the graph.
# TYPE wugraph_edges gauge
wugraph_edges{graph="test"} 2
# HELP wugraph_index_load_factor Entries per bucket of a graph hash index.
# TYPE wugraph_index_load_factor gauge
wugraph_index_load_factor{graph="test",index="edge"} 0.5
wugraph_index_load_factor{graph="test",index="vertex"} 0.25
# HELP wugraph_index_longest_chain Entries in the fullest bucket of a graph hash index.
# TYPE wugraph_index_longest_chain gauge
wugraph_index_longest_chain{graph="test",index="edge"} 2
wugraph_index_longest_chain{graph="test",index="vertex"} 1
# HELP wugraph_vertices Number of vertices in the graph.
# TYPE wugraph_vertices gauge
wugraph_vertices{graph="test"} 3
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected),
		"wugraph_vertices", "wugraph_edges", "wugraph_index_load_factor", "wugraph_index_longest_chain"))
	require.Equal(t, 12, testutil.CollectAndCount(c))
}

func TestCollector_LiveGraphWithLocker(t *testing.T) {
	g := core.NewGraph[string]()
	var mu countingLocker
	c, err := metrics.NewCollector(g, metrics.WithLocker(&mu), metrics.WithNamespace("roads"))
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(c))

	mu.Lock()
	g.AddVertex("a")
	g.AddVertex("b")
	g.AddEdge("a", "b", 3)
	mu.Unlock()

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Equal(t, 2, mu.locks, "one lock for the mutation, one for the scrape")

	got := map[string]float64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if len(m.GetLabel()) == 0 {
				got[mf.GetName()] = m.GetGauge().GetValue()
			}
		}
	}
	require.Equal(t, 2.0, got["roads_vertices"])
	require.Equal(t, 1.0, got["roads_edges"])
}
