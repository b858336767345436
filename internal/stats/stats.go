// Package stats tracks recent operation latencies within a rolling
// window, for the server's runtime stats endpoint.
package stats

import (
	"sort"
	"sync"
	"time"
)

type sample struct {
	timestamp  time.Time
	durationUs int64
}

// Snapshot is a point-in-time aggregate of recorded latencies.
type Snapshot struct {
	Count int     `json:"count"`
	MinUs int64   `json:"min_us"`
	MaxUs int64   `json:"max_us"`
	AvgUs float64 `json:"avg_us"`
	P50Us float64 `json:"p50_us"`
	P95Us float64 `json:"p95_us"`
	P99Us float64 `json:"p99_us"`
}

// Recorder tracks operation latencies within a rolling window. Layout
// runs finish in well under a millisecond, so samples are kept in
// microseconds.
type Recorder struct {
	mu      sync.Mutex
	samples []sample
	maxAge  time.Duration
}

func NewRecorder(maxAge time.Duration) *Recorder {
	if maxAge <= 0 {
		maxAge = time.Hour
	}
	return &Recorder{
		samples: make([]sample, 0, 256),
		maxAge:  maxAge,
	}
}

// Record adds one latency sample.
func (r *Recorder) Record(d time.Duration) {
	us := d.Microseconds()
	if us < 0 {
		us = 0
	}
	now := time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.pruneLocked(now)
	r.samples = append(r.samples, sample{
		timestamp:  now,
		durationUs: us,
	})
}

// Snapshot aggregates the samples still inside the window.
func (r *Recorder) Snapshot() Snapshot {
	now := time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.pruneLocked(now)
	if len(r.samples) == 0 {
		return Snapshot{}
	}

	values := make([]int64, 0, len(r.samples))
	var sum int64
	for _, sm := range r.samples {
		values = append(values, sm.durationUs)
		sum += sm.durationUs
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	return Snapshot{
		Count: len(values),
		MinUs: values[0],
		MaxUs: values[len(values)-1],
		AvgUs: float64(sum) / float64(len(values)),
		P50Us: percentile(values, 50),
		P95Us: percentile(values, 95),
		P99Us: percentile(values, 99),
	}
}

func (r *Recorder) pruneLocked(now time.Time) {
	cutoff := now.Add(-r.maxAge)
	writeIdx := 0
	for _, sm := range r.samples {
		if !sm.timestamp.Before(cutoff) {
			r.samples[writeIdx] = sm
			writeIdx++
		}
	}
	r.samples = r.samples[:writeIdx]
}

// percentile interpolates linearly between the two nearest ranks.
func percentile(sortedValues []int64, pct float64) float64 {
	if len(sortedValues) == 0 {
		return 0
	}
	if pct <= 0 {
		return float64(sortedValues[0])
	}
	if pct >= 100 {
		return float64(sortedValues[len(sortedValues)-1])
	}

	index := (float64(len(sortedValues)-1) * pct) / 100.0
	lower := int(index)
	upper := lower + 1
	if upper >= len(sortedValues) {
		return float64(sortedValues[lower])
	}
	weight := index - float64(lower)
	lo := float64(sortedValues[lower])
	hi := float64(sortedValues[upper])
	return lo + ((hi - lo) * weight)
}
