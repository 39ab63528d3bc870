package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/haivivi/foam/pkg/cli"
)

const appName = "foam"

var (
	// Global flags
	cfgFile      string
	outputFile   string
	formatOutput string
	verbose      bool

	// Global configuration
	globalConfig *cli.Config
)

var rootCmd = &cobra.Command{
	Use:   "foam",
	Short: "Benchmarks for bounded in-memory byte streams",
	Long: `foam - benchmarks for a bounded, non-blocking FIFO byte stream.

The byte stream holds at most a fixed number of bytes. Writes that do not
fit and reads that ask for more than is buffered are truncated. The benchmark
treats any truncated transfer as a failure.

Benchmark profiles are stored in ~/.foam/foam/config.yaml.

Examples:
  # Run with the default options
  foam byte-stream

  # Small stream, many cycles, JSON result
  foam byte-stream --capacity 1KiB --write-size 256 --read-size 256 --cycles 100000 --format json

  # Save options as a profile and reuse them
  foam config set-profile small --capacity 64 --write-size 16 --read-size 16
  foam byte-stream --profile small`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.foam/foam/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
	rootCmd.PersistentFlags().StringVar(&formatOutput, "format", "text", "output format: text, yaml, json")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func initConfig() {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	var err error
	globalConfig, err = cli.LoadConfigWithPath(appName, cfgFile)
	if err != nil {
		// Commands that need the config report it via getConfig.
		slog.Warn("config unavailable", "app", appName, "error", err)
	}
}

// getConfig returns the global configuration.
func getConfig() (*cli.Config, error) {
	if globalConfig == nil {
		return nil, fmt.Errorf("configuration not initialized")
	}
	return globalConfig, nil
}

// isVerbose returns whether verbose mode is enabled.
func isVerbose() bool {
	return verbose
}

// outputResult writes result in the selected format. Text output uses text
// as is; structured formats encode result.
func outputResult(result any, text string) error {
	format, err := cli.ParseOutputFormat(formatOutput)
	if err != nil {
		return err
	}
	if format == cli.FormatText {
		result = text
	}
	return cli.Output(result, cli.OutputOptions{
		Format: format,
		File:   outputFile,
	})
}
