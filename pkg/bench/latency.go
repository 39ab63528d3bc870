package bench

import (
	"time"

	"github.com/elastic/go-hdrhistogram"
)

const (
	minTrackable = int64(1)
	maxTrackable = int64(time.Minute)
	sigFigures   = 3
)

// Latency summarizes the distribution of per-cycle durations.
type Latency struct {
	Count int64
	Min   time.Duration
	Mean  time.Duration
	P50   time.Duration
	P90   time.Duration
	P99   time.Duration
	Max   time.Duration
}

// recorder collects per-cycle durations in nanoseconds. Durations longer
// than a minute are clamped.
type recorder struct {
	h *hdrhistogram.Histogram
}

func newRecorder() *recorder {
	return &recorder{h: hdrhistogram.New(minTrackable, maxTrackable, sigFigures)}
}

func (r *recorder) record(d time.Duration) error {
	return r.h.RecordValue(min(max(int64(d), minTrackable), maxTrackable))
}

func (r *recorder) summary() *Latency {
	return &Latency{
		Count: r.h.TotalCount(),
		Min:   time.Duration(r.h.Min()),
		Mean:  time.Duration(r.h.Mean()),
		P50:   time.Duration(r.h.ValueAtQuantile(50)),
		P90:   time.Duration(r.h.ValueAtQuantile(90)),
		P99:   time.Duration(r.h.ValueAtQuantile(99)),
		Max:   time.Duration(r.h.Max()),
	}
}
