package config

import (
	"flag"
	"fmt"
	"io"
)

// parseFlags parses the loader flags from args.
//
// Flags:
//
//	-e/-env-file path of the KEY=VALUE source file
//	-debug       human-readable debug logging
func parseFlags(args []string) (*Bootstrap, error) {
	var envFile string
	var debug bool

	flags := flag.NewFlagSet("progphil-bot", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.StringVar(&envFile, "e", "", "Configuration source file path")
	flags.StringVar(&envFile, "env-file", "", "Configuration source file path (alias)")
	flags.BoolVar(&debug, "debug", false, "Human-readable debug logging")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &Bootstrap{
		EnvFile: envFile,
		Debug:   debug,
	}, nil
}
