// SPDX-License-Identifier: MIT

// Package metrics exports the size of a core.Graph and the shape of its two
// hash indexes as Prometheus metrics.
//
// Exported series (default namespace "wugraph"):
//
//	wugraph_vertices                             gauge
//	wugraph_edges                                gauge
//	wugraph_index_entries{index="vertex|edge"}       gauge
//	wugraph_index_buckets{index}                     gauge
//	wugraph_index_load_factor{index}                 gauge
//	wugraph_index_longest_chain{index}               gauge
//	wugraph_index_resizes{index}                     gauge (reset by Graph.Clear)
//
// A Graph is not safe for concurrent use and Prometheus scrapes run on their
// own goroutine. Pass the mutex that already guards the graph with
// WithLocker so each scrape reads Stats under it.
package metrics

import (
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/wugraph/core"
	"github.com/katalvlaran/wugraph/hashtable"
)

// ErrNilSource is returned by NewCollector when src is nil.
var ErrNilSource = errors.New("metrics: nil stats source")

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "wugraph"

// Index label values.
const (
	IndexVertex = "vertex"
	IndexEdge   = "edge"
)

// StatsSource is implemented by *core.Graph[K] for every K.
type StatsSource interface {
	Stats() core.Stats
}

type config struct {
	namespace   string
	constLabels prometheus.Labels
	locker      sync.Locker
}

// Option configures a Collector.
type Option func(*config)

// WithNamespace replaces DefaultNamespace.
func WithNamespace(ns string) Option {
	return func(c *config) { c.namespace = ns }
}

// WithConstLabels attaches fixed labels, e.g. {"graph": "roads"}, so several
// graphs can be registered side by side.
func WithConstLabels(l prometheus.Labels) Option {
	return func(c *config) { c.constLabels = l }
}

// WithLocker makes every Collect call hold l while reading Stats.
func WithLocker(l sync.Locker) Option {
	return func(c *config) { c.locker = l }
}

// Collector is a prometheus.Collector over a StatsSource.
type Collector struct {
	src    StatsSource
	locker sync.Locker

	vertices     *prometheus.Desc
	edges        *prometheus.Desc
	entries      *prometheus.Desc
	buckets      *prometheus.Desc
	loadFactor   *prometheus.Desc
	longestChain *prometheus.Desc
	resizes      *prometheus.Desc
}

// NewCollector returns a Collector reading from src.
func NewCollector(src StatsSource, opts ...Option) (*Collector, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	cfg := config{namespace: DefaultNamespace}
	for _, opt := range opts {
		opt(&cfg)
	}

	desc := func(name, help string, labels ...string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(cfg.namespace, "", name), help, labels, cfg.constLabels)
	}

	return &Collector{
		src:          src,
		locker:       cfg.locker,
		vertices:     desc("vertices", "Number of vertices in the graph."),
		edges:        desc("edges", "Number of distinct edges in the graph."),
		entries:      desc("index_entries", "Entries stored in a graph hash index.", "index"),
		buckets:      desc("index_buckets", "Bucket count of a graph hash index.", "index"),
		loadFactor:   desc("index_load_factor", "Entries per bucket of a graph hash index.", "index"),
		longestChain: desc("index_longest_chain", "Entries in the fullest bucket of a graph hash index.", "index"),
		resizes:      desc("index_resizes", "Growth events of a graph hash index since construction or Clear.", "index"),
	}, nil
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.vertices
	ch <- c.edges
	ch <- c.entries
	ch <- c.buckets
	ch <- c.loadFactor
	ch <- c.longestChain
	ch <- c.resizes
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	st := c.snapshot()

	ch <- prometheus.MustNewConstMetric(c.vertices, prometheus.GaugeValue, float64(st.Vertices))
	ch <- prometheus.MustNewConstMetric(c.edges, prometheus.GaugeValue, float64(st.Edges))
	c.collectIndex(ch, IndexVertex, st.VertexIndex)
	c.collectIndex(ch, IndexEdge, st.EdgeIndex)
}

func (c *Collector) snapshot() core.Stats {
	if c.locker != nil {
		c.locker.Lock()
		defer c.locker.Unlock()
	}

	return c.src.Stats()
}

func (c *Collector) collectIndex(ch chan<- prometheus.Metric, index string, st hashtable.Stats) {
	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(st.Len), index)
	ch <- prometheus.MustNewConstMetric(c.buckets, prometheus.GaugeValue, float64(st.Buckets), index)
	ch <- prometheus.MustNewConstMetric(c.loadFactor, prometheus.GaugeValue, st.LoadFactor, index)
	ch <- prometheus.MustNewConstMetric(c.longestChain, prometheus.GaugeValue, float64(st.LongestChain), index)
	ch <- prometheus.MustNewConstMetric(c.resizes, prometheus.GaugeValue, float64(st.Resizes), index)
}
