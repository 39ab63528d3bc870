package commands

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/haivivi/foam/pkg/bench"
	"github.com/haivivi/foam/pkg/cli"
)

// sizeValue is a flag value holding a byte count. It accepts plain integers
// as well as sizes with units such as 4KiB.
type sizeValue int

func (v *sizeValue) String() string { return strconv.Itoa(int(*v)) }

func (v *sizeValue) Set(s string) error {
	n, err := cli.ParseSize(s)
	if err != nil {
		return err
	}
	*v = sizeValue(n)
	return nil
}

func (v *sizeValue) Type() string { return "size" }

var (
	bsCapacity       = sizeValue(bench.DefaultCapacity)
	bsCycles         int
	bsWriteSize      = sizeValue(bench.DefaultWriteSize)
	bsWritesPerCycle int
	bsReadSize       = sizeValue(bench.DefaultReadSize)
	bsReadsPerCycle  int
	bsHistogram      bool
	bsProfile        string
	bsSave           bool
)

var byteStreamCmd = &cobra.Command{
	Use:   "byte-stream",
	Short: "Benchmark byte stream implementation",
	Long: `Run write/read cycles against a bounded byte stream and report the
elapsed time.

Each cycle performs --writes-per-cycle writes of --write-size bytes, then
--reads-per-cycle reads of --read-size bytes. Every write and read must move
its full size in one call; a truncated transfer fails the run. After timing,
the bytes read back are compared with the bytes written.

Size options accept plain byte counts or units (4096, 4KiB, 1MB).

Options not given on the command line are taken from --profile, or from the
current profile, and otherwise from the built-in defaults.

Examples:
  foam byte-stream
  foam byte-stream --capacity 8KiB --write-size 1KiB --writes-per-cycle 4 --read-size 512 --reads-per-cycle 8
  foam byte-stream --histogram --format yaml
  foam byte-stream --profile small --save`,
	Args: cobra.NoArgs,
	RunE: runByteStream,
}

func runByteStream(cmd *cobra.Command, args []string) error {
	cfg, err := byteStreamConfig(cmd)
	if err != nil {
		return err
	}

	res, err := bench.Run(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	slog.Debug("byte-stream finished", "run", res.ID, "elapsed", res.Elapsed, "throughput", cli.FormatRate(res.Throughput()))

	rep := newReport(res)
	if bsSave {
		path, err := saveReport(rep)
		if err != nil {
			return err
		}
		slog.Info("result saved", "path", path)
	}

	text := fmt.Sprintf("Elapsed: %v\n", res.Elapsed)
	if isVerbose() {
		text += summarize(res).Render()
	}
	return outputResult(rep, text)
}

// byteStreamConfig merges defaults, the selected profile and explicit flags.
func byteStreamConfig(cmd *cobra.Command) (bench.Config, error) {
	cfg := bench.DefaultConfig()

	var profile *cli.Profile
	if c, err := getConfig(); err == nil {
		if profile, err = c.ResolveProfile(bsProfile); err != nil {
			return cfg, err
		}
	} else if bsProfile != "" {
		return cfg, fmt.Errorf("profile %q: %w", bsProfile, err)
	}
	if profile != nil {
		slog.Debug("using profile", "name", profile.Name)
		applyProfile(&cfg, profile)
	}

	flags := cmd.Flags()
	if flags.Changed("capacity") {
		cfg.Capacity = int(bsCapacity)
	}
	if flags.Changed("cycles") {
		cfg.Cycles = bsCycles
	}
	if flags.Changed("write-size") {
		cfg.WriteSize = int(bsWriteSize)
	}
	if flags.Changed("writes-per-cycle") {
		cfg.WritesPerCycle = bsWritesPerCycle
	}
	if flags.Changed("read-size") {
		cfg.ReadSize = int(bsReadSize)
	}
	if flags.Changed("reads-per-cycle") {
		cfg.ReadsPerCycle = bsReadsPerCycle
	}
	if flags.Changed("histogram") {
		cfg.Histogram = bsHistogram
	}
	return cfg, cfg.Validate()
}

func applyProfile(cfg *bench.Config, p *cli.Profile) {
	set := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	set(&cfg.Capacity, p.Capacity)
	set(&cfg.Cycles, p.Cycles)
	set(&cfg.WriteSize, p.WriteSize)
	set(&cfg.WritesPerCycle, p.WritesPerCycle)
	set(&cfg.ReadSize, p.ReadSize)
	set(&cfg.ReadsPerCycle, p.ReadsPerCycle)
	if p.Histogram != nil {
		cfg.Histogram = *p.Histogram
	}
}

// report is the structured output of a run.
type report struct {
	ID           string         `json:"id" yaml:"id"`
	Config       bench.Config   `json:"config" yaml:"config"`
	Elapsed      string         `json:"elapsed" yaml:"elapsed"`
	ElapsedNS    int64          `json:"elapsed_ns" yaml:"elapsed_ns"`
	BytesWritten int64          `json:"bytes_written" yaml:"bytes_written"`
	BytesRead    int64          `json:"bytes_read" yaml:"bytes_read"`
	Throughput   float64        `json:"throughput_bytes_per_sec" yaml:"throughput_bytes_per_sec"`
	Latency      *latencyReport `json:"latency,omitempty" yaml:"latency,omitempty"`
}

type latencyReport struct {
	Count int64  `json:"count" yaml:"count"`
	Min   string `json:"min" yaml:"min"`
	Mean  string `json:"mean" yaml:"mean"`
	P50   string `json:"p50" yaml:"p50"`
	P90   string `json:"p90" yaml:"p90"`
	P99   string `json:"p99" yaml:"p99"`
	Max   string `json:"max" yaml:"max"`
}

func newReport(res *bench.Result) *report {
	rep := &report{
		ID:           res.ID,
		Config:       res.Config,
		Elapsed:      res.Elapsed.String(),
		ElapsedNS:    res.Elapsed.Nanoseconds(),
		BytesWritten: res.BytesWritten,
		BytesRead:    res.BytesRead,
		Throughput:   res.Throughput(),
	}
	if l := res.Latency; l != nil {
		rep.Latency = &latencyReport{
			Count: l.Count,
			Min:   l.Min.String(),
			Mean:  l.Mean.String(),
			P50:   l.P50.String(),
			P90:   l.P90.String(),
			P99:   l.P99.String(),
			Max:   l.Max.String(),
		}
	}
	return rep
}

func summarize(res *bench.Result) cli.Summary {
	rows := []cli.Row{
		{Label: "run", Value: res.ID},
		{Label: "capacity", Value: cli.FormatBytes(int64(res.Config.Capacity))},
		{Label: "cycles", Value: strconv.Itoa(res.Config.Cycles)},
		{Label: "writes", Value: fmt.Sprintf("%d x %s", res.Config.WritesPerCycle, cli.FormatBytes(int64(res.Config.WriteSize)))},
		{Label: "reads", Value: fmt.Sprintf("%d x %s", res.Config.ReadsPerCycle, cli.FormatBytes(int64(res.Config.ReadSize)))},
		{Label: "moved", Value: cli.FormatBytes(res.BytesWritten + res.BytesRead)},
		{Label: "throughput", Value: cli.FormatRate(res.Throughput())},
	}
	if l := res.Latency; l != nil {
		rows = append(rows,
			cli.Row{Label: "cycle p50", Value: l.P50.String()},
			cli.Row{Label: "cycle p99", Value: l.P99.String()},
			cli.Row{Label: "cycle max", Value: l.Max.String()},
		)
	}
	return cli.Summary{
		Styles: cli.NewStyles(cli.DefaultTheme),
		Title:  "byte-stream",
		Rows:   rows,
	}
}

// saveReport writes rep as JSON under the results directory and returns the
// file path.
func saveReport(rep *report) (string, error) {
	paths, err := cli.NewPaths(appName)
	if err != nil {
		return "", fmt.Errorf("save result: %w", err)
	}
	if err := paths.EnsureResultsDir(); err != nil {
		return "", fmt.Errorf("save result: %w", err)
	}
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", fmt.Errorf("save result: %w", err)
	}
	name := fmt.Sprintf("%s-%s.json", time.Now().UTC().Format("20060102T150405Z"), rep.ID)
	path := paths.ResultPath(name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("save result: %w", err)
	}
	return path, nil
}

func init() {
	f := byteStreamCmd.Flags()
	f.Var(&bsCapacity, "capacity", "capacity of byte stream")
	f.IntVar(&bsCycles, "cycles", bench.DefaultCycles, "number of read/write cycles")
	f.Var(&bsWriteSize, "write-size", "write size")
	f.IntVar(&bsWritesPerCycle, "writes-per-cycle", bench.DefaultWritesPerCycle, "number of writes per cycle")
	f.Var(&bsReadSize, "read-size", "read size")
	f.IntVar(&bsReadsPerCycle, "reads-per-cycle", bench.DefaultReadsPerCycle, "number of reads per cycle")
	f.BoolVar(&bsHistogram, "histogram", false, "record per-cycle latency")
	f.StringVar(&bsProfile, "profile", "", "benchmark profile to take defaults from")
	f.BoolVar(&bsSave, "save", false, "save the JSON result under ~/.foam/foam/results")

	rootCmd.AddCommand(byteStreamCmd)
}
