// Package cli provides common CLI utilities for foam command-line tools.
//
// This package includes:
//   - Configuration management (named benchmark profiles)
//   - Output formatting (text, JSON, YAML)
//   - Byte size parsing and human-readable sizes and rates
//   - Styled terminal summaries
//
// Configuration is stored in ~/.foam/<app>/config.yaml.
//
// Example usage:
//
//	cfg, err := cli.LoadConfig("foam")
//
//	// Pick the named profile, or the current one
//	p, err := cfg.ResolveProfile(name)
//
//	// Output result
//	cli.Output(result, cli.OutputOptions{
//	    Format: cli.FormatJSON,
//	    File:   outputPath,
//	})
package cli
