package tagarena

import "github.com/prometheus/client_golang/prometheus"

var _ prometheus.Collector = &collector{}

// Collector returns a prometheus.Collector exposing per-tag arena stats.
// Collecting reads the arena's chains, so it must be serialized with
// allocation like every other arena operation.
func Collector(a *TaggedArena) prometheus.Collector {
	return &collector{
		arena: a,
		blocks: prometheus.NewDesc(
			"tagarena_blocks",
			"Number of blocks currently held by each tag.",
			[]string{"tag"}, nil),
		capacityBytes: prometheus.NewDesc(
			"tagarena_capacity_bytes",
			"Bytes of block storage reserved for each tag.",
			[]string{"tag"}, nil),
		usedBytes: prometheus.NewDesc(
			"tagarena_used_bytes",
			"Bytes claimed by allocations under each tag, padding included.",
			[]string{"tag"}, nil),
		paddingBytes: prometheus.NewDesc(
			"tagarena_padding_bytes",
			"Bytes lost to alignment padding under each tag.",
			[]string{"tag"}, nil),
		frees: prometheus.NewDesc(
			"tagarena_frees_total",
			"Number of bulk frees performed per tag.",
			[]string{"tag"}, nil),
	}
}

type collector struct {
	arena *TaggedArena

	blocks        *prometheus.Desc
	capacityBytes *prometheus.Desc
	usedBytes     *prometheus.Desc
	paddingBytes  *prometheus.Desc
	frees         *prometheus.Desc
}

func (c *collector) Describe(descs chan<- *prometheus.Desc) {
	descs <- c.blocks
	descs <- c.capacityBytes
	descs <- c.usedBytes
	descs <- c.paddingBytes
	descs <- c.frees
}

func (c *collector) Collect(metrics chan<- prometheus.Metric) {
	stats := c.arena.Stats()
	for _, ts := range stats.Tags {
		tag := ts.Tag.String()
		metrics <- prometheus.MustNewConstMetric(c.blocks,
			prometheus.GaugeValue, float64(ts.Blocks), tag)
		metrics <- prometheus.MustNewConstMetric(c.capacityBytes,
			prometheus.GaugeValue, float64(ts.Capacity), tag)
		metrics <- prometheus.MustNewConstMetric(c.usedBytes,
			prometheus.GaugeValue, float64(ts.Used), tag)
		metrics <- prometheus.MustNewConstMetric(c.paddingBytes,
			prometheus.GaugeValue, float64(ts.Padding), tag)
		metrics <- prometheus.MustNewConstMetric(c.frees,
			prometheus.CounterValue, float64(ts.Frees), tag)
	}
}
