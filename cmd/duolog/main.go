// Package main provides the duolog command - logs a message at every
// level through a logger built from a config file and flags.
//
// Usage:
//
//	duolog [flags] [message...]
//
// Flags:
//
//	-c, --config string       YAML config file
//	    --file string         Log file path (overrides file.path)
//	    --mode string         append, truncate or rename (overrides file.mode)
//	    --compression string  gzip or brotli archives for rename mode
//	-l, --label string        Logger label (overrides label)
//	    --debug               Show Debug lines
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/philipp01105/duolog/config"
	"github.com/philipp01105/duolog/handler/consolehandler"
	"github.com/philipp01105/duolog/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type runOptions struct {
	configPath  string
	file        string
	mode        string
	compression string
	label       string
	debug       bool
	debugSet    bool
}

func newRootCmd() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "duolog [message...]",
		Short: "Log a message at every level",
		Long: `Log a message at every level, to the console and optionally to a file.

Settings come from the config file, then DUOLOG_* environment variables
(e.g. DUOLOG_FILE_PATH), then flags.

Examples:
  duolog "hello"                                 # console only
  duolog --file logs/app.log --mode rename hi    # archive the previous file
  duolog -c duolog.yaml --debug                  # include Debug`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.debugSet = cmd.Flags().Changed("debug")
			msg := "hello from duolog"
			if len(args) > 0 {
				msg = strings.Join(args, " ")
			}
			return run(cmd, opts, msg)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	cmd.Flags().StringVar(&opts.file, "file", "", "Log file path")
	cmd.Flags().StringVar(&opts.mode, "mode", "", "Write stream mode: append, truncate or rename")
	cmd.Flags().StringVar(&opts.compression, "compression", "", "Archive compression: gzip or brotli")
	cmd.Flags().StringVarP(&opts.label, "label", "l", "", "Logger label")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Show Debug lines")

	return cmd
}

func run(cmd *cobra.Command, opts runOptions, msg string) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.file != "" {
		cfg.File.Path = opts.file
	}
	if opts.mode != "" {
		cfg.File.Mode = opts.mode
	}
	if opts.compression != "" {
		cfg.File.Compression = opts.compression
	}
	if opts.label != "" {
		cfg.Label = opts.label
	}
	if opts.debugSet {
		cfg.Debug.Enabled = &opts.debug
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	b := logger.NewBuilder().WithConsole(consolehandler.New(consolehandler.Config{
		Error: cmd.ErrOrStderr(),
		Warn:  cmd.ErrOrStderr(),
		Info:  cmd.OutOrStdout(),
	}))
	log, err := config.NewLogger(ctx, cfg, b)
	if err != nil {
		return err
	}
	return logEveryLevel(log, msg)
}

// logEveryLevel logs msg once per level and closes the write stream,
// reporting a failed flush or close
func logEveryLevel(log *logger.Logger, msg string) (err error) {
	defer func() {
		if closeErr := log.CloseFileWriteStream(); closeErr != nil && err == nil {
			err = fmt.Errorf("close log file: %w", closeErr)
		}
	}()

	log.Debug(msg)
	log.Info(msg)
	log.Warn(msg)
	log.Error(msg)
	log.Fatal(msg)
	return nil
}
