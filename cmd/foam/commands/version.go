package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haivivi/foam/cmd/foam/internal/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		text := build.String() + "\n"
		if isVerbose() {
			info := build.Get()
			text += fmt.Sprintf("  go:     %s\n", info.Go)
			if cfg, err := getConfig(); err == nil {
				text += fmt.Sprintf("  config: %s\n", cfg.Path())
			} else {
				text += fmt.Sprintf("  config: (unavailable: %v)\n", err)
			}
		}
		return outputResult(build.Get(), text)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
