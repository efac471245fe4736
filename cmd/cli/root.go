// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"string-sorter/internal/config"
	"string-sorter/internal/logger"
	"string-sorter/internal/sorter"
	"string-sorter/internal/sortkey"
)

var (
	errorColor      = color.New(color.FgRed)
	successColor    = color.New(color.FgGreen)
	identifierColor = color.New(color.FgBlue)
	dimColor        = color.New(color.Faint)
)

// rootOptions holds the flag values shared by every command.
type rootOptions struct {
	configPath string
	key        string
	logLevel   string
	logFile    string
	quiet      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "ssort <input_file> <output_file>",
		Short: "Sort lines of a file in natural numeric order",
		Long: `Reads newline-separated strings from input_file, sorts them and writes the
result to output_file.

Lines starting with digits come first, ordered by the value of the leading
number; the text following that number breaks ties. Lines without leading
digits follow in byte order. The parent directory of output_file is created
when it does not exist.

Settings may be kept in ~/.config/string-sorter/config.yaml (or a .toml file
passed with --config).`,
		Example:           "  ssort data/example-list.txt out/sorted.txt\n  ssort --key lexical in.txt out.txt",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: fileCompletionFunc,
		SilenceErrors:     true,
		SilenceUsage:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(cmd, opts, args[0], args[1])
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "configuration file (YAML, or TOML with a .toml extension)")
	flags.StringVar(&opts.key, "key", "", fmt.Sprintf("sort key policy: %v", sortkey.Names()))
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&opts.logFile, "log-file", "", "also write logs to this file")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress console logs and the summary line")

	registerFlagCompletions(rootCmd)

	rootCmd.AddCommand(newKeyCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	return rootCmd
}

// RunCLI executes the command tree and exits non-zero on failure.
func RunCLI() {
	if err := newRootCmd().Execute(); err != nil {
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration file and applies flag overrides.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (config.Config, error) {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("key") {
		cfg.Key = opts.key
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = opts.logFile
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runSort(cmd *cobra.Command, opts *rootOptions, input, output string) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	keyFn, err := sortkey.Lookup(cfg.Key)
	if err != nil {
		return err
	}

	logOpts, err := cfg.LoggerOptions()
	if err != nil {
		return err
	}
	if !opts.quiet {
		logOpts.Stderr = cmd.ErrOrStderr()
	}
	log, closeLog, err := logger.New(logOpts)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer closeLog()

	res, err := sorter.New(log, keyFn).Execute(input, output)
	if err != nil {
		return err
	}

	if !opts.quiet {
		out := cmd.OutOrStdout()
		if res.CreatedDir != "" {
			dimColor.Fprintf(out, "Created directory %s\n", res.CreatedDir)
		}
		successColor.Fprintf(out, "Sorted %d lines into %s\n", res.Lines, identifierColor.Sprint(res.Output))
	}
	return nil
}
