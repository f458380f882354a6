package tabgroup

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordRun is called after each clustering run.
	// duration is the total time taken, err is nil if successful.
	RecordRun(duration time.Duration, err error)

	// RecordDensity is called after the density clustering stage.
	// clusters is the number of groups found, noise the number of
	// unassigned vectors.
	RecordDensity(clusters, noise int, duration time.Duration)

	// RecordFallback is called when density clustering found nothing and
	// centroid-based partitioning ran instead. k is the accepted candidate
	// group count, or 0 if every candidate failed.
	RecordFallback(k int, duration time.Duration)

	// RecordReassign is called after the noise reassignment pass.
	// moved is the number of points recovered into clusters.
	RecordReassign(moved int)

	// RecordSplit is called once per oversized cluster processed.
	// produced is the number of surviving sub-clusters, dropped the
	// number of members lost to undersized fragments.
	RecordSplit(produced, dropped int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRun(time.Duration, error)        {}
func (NoopMetricsCollector) RecordDensity(int, int, time.Duration) {}
func (NoopMetricsCollector) RecordFallback(int, time.Duration)     {}
func (NoopMetricsCollector) RecordReassign(int)                    {}
func (NoopMetricsCollector) RecordSplit(int, int)                  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	RunCount        atomic.Int64
	RunErrors       atomic.Int64
	RunTotalNanos   atomic.Int64
	DensityClusters atomic.Int64
	DensityNoise    atomic.Int64
	FallbackCount   atomic.Int64
	FallbackFailed  atomic.Int64
	ReassignedTotal atomic.Int64
	SplitCount      atomic.Int64
	SplitProduced   atomic.Int64
	SplitDropped    atomic.Int64
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RunErrors.Add(1)
	}
}

// RecordDensity implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDensity(clusters, noise int, duration time.Duration) {
	b.DensityClusters.Add(int64(clusters))
	b.DensityNoise.Add(int64(noise))
}

// RecordFallback implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFallback(k int, duration time.Duration) {
	b.FallbackCount.Add(1)
	if k == 0 {
		b.FallbackFailed.Add(1)
	}
}

// RecordReassign implements MetricsCollector.
func (b *BasicMetricsCollector) RecordReassign(moved int) {
	b.ReassignedTotal.Add(int64(moved))
}

// RecordSplit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSplit(produced, dropped int) {
	b.SplitCount.Add(1)
	b.SplitProduced.Add(int64(produced))
	b.SplitDropped.Add(int64(dropped))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		RunCount:        b.RunCount.Load(),
		RunErrors:       b.RunErrors.Load(),
		RunAvgNanos:     b.getAvgRunNanos(),
		DensityClusters: b.DensityClusters.Load(),
		DensityNoise:    b.DensityNoise.Load(),
		FallbackCount:   b.FallbackCount.Load(),
		FallbackFailed:  b.FallbackFailed.Load(),
		ReassignedTotal: b.ReassignedTotal.Load(),
		SplitCount:      b.SplitCount.Load(),
		SplitProduced:   b.SplitProduced.Load(),
		SplitDropped:    b.SplitDropped.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgRunNanos() int64 {
	count := b.RunCount.Load()
	if count == 0 {
		return 0
	}
	return b.RunTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	RunCount        int64
	RunErrors       int64
	RunAvgNanos     int64
	DensityClusters int64
	DensityNoise    int64
	FallbackCount   int64
	FallbackFailed  int64
	ReassignedTotal int64
	SplitCount      int64
	SplitProduced   int64
	SplitDropped    int64
}
