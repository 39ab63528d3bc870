package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/haivivi/foam/pkg/cli"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Benchmark profile management",
	Long: `Manage foam benchmark profiles.

Profiles are stored in ~/.foam/foam/config.yaml. A profile holds any subset of
the byte-stream options; options it does not set keep their defaults.`,
}

var (
	profCapacity       sizeValue
	profCycles         int
	profWriteSize      sizeValue
	profWritesPerCycle int
	profReadSize       sizeValue
	profReadsPerCycle  int
	profHistogram      bool
)

var configSetProfileCmd = &cobra.Command{
	Use:   "set-profile <name>",
	Short: "Create or replace a profile",
	Long: `Create or replace a profile from the given options.

Examples:
  foam config set-profile small --capacity 64 --write-size 16 --read-size 16
  foam config set-profile long --cycles 1000000 --histogram`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfig()
		if err != nil {
			return err
		}

		p := &cli.Profile{}
		flags := cmd.Flags()
		setInt := func(name string, v int) *int {
			if !flags.Changed(name) {
				return nil
			}
			return &v
		}
		p.Capacity = setInt("capacity", int(profCapacity))
		p.Cycles = setInt("cycles", profCycles)
		p.WriteSize = setInt("write-size", int(profWriteSize))
		p.WritesPerCycle = setInt("writes-per-cycle", profWritesPerCycle)
		p.ReadSize = setInt("read-size", int(profReadSize))
		p.ReadsPerCycle = setInt("reads-per-cycle", profReadsPerCycle)
		if flags.Changed("histogram") {
			h := profHistogram
			p.Histogram = &h
		}
		for name, v := range map[string]*int{
			"cycles":           p.Cycles,
			"writes-per-cycle": p.WritesPerCycle,
			"reads-per-cycle":  p.ReadsPerCycle,
		} {
			if v != nil && *v < 0 {
				return fmt.Errorf("--%s must not be negative", name)
			}
		}

		if err := cfg.SetProfile(args[0], p); err != nil {
			return err
		}
		cli.PrintSuccess("Profile '%s' saved", args[0])
		return nil
	},
}

var configDeleteProfileCmd = &cobra.Command{
	Use:   "delete-profile <name>",
	Short: "Delete a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfig()
		if err != nil {
			return err
		}
		if err := cfg.DeleteProfile(args[0]); err != nil {
			return err
		}
		cli.PrintSuccess("Profile '%s' deleted", args[0])
		return nil
	},
}

var configUseProfileCmd = &cobra.Command{
	Use:   "use-profile <name>",
	Short: "Set the default profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfig()
		if err != nil {
			return err
		}
		if err := cfg.UseProfile(args[0]); err != nil {
			return err
		}
		cli.PrintSuccess("Switched to profile '%s'", args[0])
		return nil
	},
}

var configListProfilesCmd = &cobra.Command{
	Use:   "list-profiles",
	Short: "List all profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfig()
		if err != nil {
			return err
		}

		var text strings.Builder
		names := cfg.ListProfiles()
		if len(names) == 0 {
			text.WriteString("No profiles configured.\n")
		}
		profiles := make([]*cli.Profile, 0, len(names))
		for _, name := range names {
			marker := "  "
			if name == cfg.CurrentProfile {
				marker = "* "
			}
			text.WriteString(marker + name + "\n")
			profiles = append(profiles, cfg.Profiles[name])
		}
		return outputResult(profiles, text.String())
	},
}

func init() {
	f := configSetProfileCmd.Flags()
	f.Var(&profCapacity, "capacity", "capacity of byte stream")
	f.IntVar(&profCycles, "cycles", 0, "number of read/write cycles")
	f.Var(&profWriteSize, "write-size", "write size")
	f.IntVar(&profWritesPerCycle, "writes-per-cycle", 0, "number of writes per cycle")
	f.Var(&profReadSize, "read-size", "read size")
	f.IntVar(&profReadsPerCycle, "reads-per-cycle", 0, "number of reads per cycle")
	f.BoolVar(&profHistogram, "histogram", false, "record per-cycle latency")

	configCmd.AddCommand(configSetProfileCmd)
	configCmd.AddCommand(configDeleteProfileCmd)
	configCmd.AddCommand(configUseProfileCmd)
	configCmd.AddCommand(configListProfilesCmd)
	rootCmd.AddCommand(configCmd)
}
