// Package metrics exports table occupancy to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/theflywheel/fhash"
)

// StatsSource is any table that can summarise its buckets
type StatsSource interface {
	Stats() fhash.Stats
}

var (
	bucketsDesc = prometheus.NewDesc("fhash_buckets",
		"Number of addressed buckets", []string{"table"}, nil)
	entriesDesc = prometheus.NewDesc("fhash_entries",
		"Number of stored keys or set flags", []string{"table"}, nil)
	occupiedDesc = prometheus.NewDesc("fhash_occupied_buckets",
		"Number of buckets holding at least one key", []string{"table"}, nil)
	longestDesc = prometheus.NewDesc("fhash_longest_chain",
		"Length of the longest bucket chain", []string{"table"}, nil)
	loadDesc = prometheus.NewDesc("fhash_load_factor",
		"Entries per addressed bucket", []string{"table"}, nil)
)

// Collector reads a table's Stats on every scrape.
// The source must be safe to call from the scraping goroutine; wrap plain
// tables in fhash.SyncChainTable or fhash.SyncFlagTable when they are
// mutated concurrently.
type Collector struct {
	table string
	src   StatsSource
}

// NewCollector labels every sample with table
func NewCollector(table string, src StatsSource) *Collector {
	return &Collector{table: table, src: src}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- bucketsDesc
	ch <- entriesDesc
	ch <- occupiedDesc
	ch <- longestDesc
	ch <- loadDesc
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	st := c.src.Stats()
	ch <- prometheus.MustNewConstMetric(bucketsDesc, prometheus.GaugeValue, float64(st.Buckets), c.table)
	ch <- prometheus.MustNewConstMetric(entriesDesc, prometheus.GaugeValue, float64(st.Entries), c.table)
	ch <- prometheus.MustNewConstMetric(occupiedDesc, prometheus.GaugeValue, float64(st.Occupied), c.table)
	ch <- prometheus.MustNewConstMetric(longestDesc, prometheus.GaugeValue, float64(st.LongestChain), c.table)
	ch <- prometheus.MustNewConstMetric(loadDesc, prometheus.GaugeValue, st.LoadFactor, c.table)
}
