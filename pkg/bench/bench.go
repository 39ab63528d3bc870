// Package bench measures buffer.Stream throughput with repeated write/read
// cycles and checks that every byte comes back in order.
//
// The harness, not the stream, requires each transfer to be complete: a
// write or read that moves fewer bytes than configured aborts the run with a
// TransferError.
package bench

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/haivivi/foam/pkg/buffer"
)

// Default values for Config.
const (
	DefaultCapacity       = 4096
	DefaultCycles         = 1024
	DefaultWriteSize      = 1024
	DefaultWritesPerCycle = 1
	DefaultReadSize       = 1024
	DefaultReadsPerCycle  = 1
)

// Config describes one benchmark run.
type Config struct {
	Capacity       int  `json:"capacity" yaml:"capacity"`
	Cycles         int  `json:"cycles" yaml:"cycles"`
	WriteSize      int  `json:"write_size" yaml:"write_size"`
	WritesPerCycle int  `json:"writes_per_cycle" yaml:"writes_per_cycle"`
	ReadSize       int  `json:"read_size" yaml:"read_size"`
	ReadsPerCycle  int  `json:"reads_per_cycle" yaml:"reads_per_cycle"`
	Histogram      bool `json:"histogram,omitempty" yaml:"histogram,omitempty"`
}

// DefaultConfig returns the configuration used when no option is given.
func DefaultConfig() Config {
	return Config{
		Capacity:       DefaultCapacity,
		Cycles:         DefaultCycles,
		WriteSize:      DefaultWriteSize,
		WritesPerCycle: DefaultWritesPerCycle,
		ReadSize:       DefaultReadSize,
		ReadsPerCycle:  DefaultReadsPerCycle,
	}
}

// Validate reports whether c can be run.
func (c Config) Validate() error {
	for _, f := range []struct {
		name string
		v    int
	}{
		{"capacity", c.Capacity},
		{"cycles", c.Cycles},
		{"write size", c.WriteSize},
		{"writes per cycle", c.WritesPerCycle},
		{"read size", c.ReadSize},
		{"reads per cycle", c.ReadsPerCycle},
	} {
		if f.v < 0 {
			return fmt.Errorf("bench: %s must not be negative, got %d", f.name, f.v)
		}
	}
	if _, ok := product(c.WriteSize, c.WritesPerCycle, c.Cycles); !ok {
		return fmt.Errorf("bench: total write size overflows")
	}
	if _, ok := product(c.ReadSize, c.ReadsPerCycle, c.Cycles); !ok {
		return fmt.Errorf("bench: total read size overflows")
	}
	return nil
}

// WriteTotal returns the number of bytes a run writes.
func (c Config) WriteTotal() int {
	n, _ := product(c.WriteSize, c.WritesPerCycle, c.Cycles)
	return n
}

// ReadTotal returns the number of bytes a run reads.
func (c Config) ReadTotal() int {
	n, _ := product(c.ReadSize, c.ReadsPerCycle, c.Cycles)
	return n
}

func product(vs ...int) (int, bool) {
	p := 1
	for _, v := range vs {
		if v != 0 && p > math.MaxInt/v {
			return 0, false
		}
		p *= v
	}
	return p, true
}

// Result is the outcome of a successful run.
type Result struct {
	ID           string
	Config       Config
	Elapsed      time.Duration
	BytesWritten int64
	BytesRead    int64

	// Latency is set when Config.Histogram is true.
	Latency *Latency
}

// Throughput returns the bytes moved through the stream (written plus read)
// per second of elapsed time. It is zero when nothing was timed.
func (r *Result) Throughput() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.BytesWritten+r.BytesRead) / r.Elapsed.Seconds()
}

// Run executes the benchmark described by cfg against a new buffer.Stream.
//
// Only the write/read cycles are timed. Corpus generation and the
// consistency check run outside the timed section. Cancelling ctx stops the
// run between cycles.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return run(ctx, buffer.NewStream(cfg.Capacity).ReadWriter(), cfg)
}

func run(ctx context.Context, rw io.ReadWriter, cfg Config) (*Result, error) {
	id := uuid.NewString()
	log := slog.With("run", id)
	log.Debug("bench: start",
		"capacity", cfg.Capacity,
		"cycles", cfg.Cycles,
		"write_size", cfg.WriteSize,
		"writes_per_cycle", cfg.WritesPerCycle,
		"read_size", cfg.ReadSize,
		"reads_per_cycle", cfg.ReadsPerCycle,
	)

	corpus := Corpus(cfg.WriteTotal())
	got := make([]byte, cfg.ReadTotal())

	var rec *recorder
	if cfg.Histogram {
		rec = newRecorder()
	}

	start := time.Now()
	for cycle := range cfg.Cycles {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("bench: cycle %d: %w", cycle, err)
		}
		cycleStart := time.Now()

		for w := range cfg.WritesPerCycle {
			off := (cycle*cfg.WritesPerCycle + w) * cfg.WriteSize
			n, err := rw.Write(corpus[off : off+cfg.WriteSize])
			if err != nil {
				log.Debug("bench: write failed", "cycle", cycle, "written", n, "error", err)
				return nil, &TransferError{Op: "write", Cycle: cycle, Want: cfg.WriteSize, Got: n, Err: err}
			}
		}

		for r := range cfg.ReadsPerCycle {
			off := (cycle*cfg.ReadsPerCycle + r) * cfg.ReadSize
			n, err := io.ReadFull(rw, got[off:off+cfg.ReadSize])
			if err != nil {
				log.Debug("bench: read failed", "cycle", cycle, "read", n, "error", err)
				return nil, &TransferError{Op: "read", Cycle: cycle, Want: cfg.ReadSize, Got: n, Err: err}
			}
		}

		if rec != nil {
			if err := rec.record(time.Since(cycleStart)); err != nil {
				return nil, fmt.Errorf("bench: record cycle %d: %w", cycle, err)
			}
		}
	}
	elapsed := time.Since(start)

	if err := verify(got, expected(corpus, len(got))); err != nil {
		log.Debug("bench: verify failed", "error", err)
		return nil, err
	}

	res := &Result{
		ID:           id,
		Config:       cfg,
		Elapsed:      elapsed,
		BytesWritten: int64(len(corpus)),
		BytesRead:    int64(len(got)),
	}
	if rec != nil {
		res.Latency = rec.summary()
	}
	log.Debug("bench: done", "elapsed", elapsed)
	return res, nil
}
