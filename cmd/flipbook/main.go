// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/flipbook/flipbook"
	"github.com/bureau-foundation/flipbook/lib/cli"
	"github.com/bureau-foundation/flipbook/lib/config"
	"github.com/bureau-foundation/flipbook/lib/process"
	"github.com/bureau-foundation/flipbook/lib/version"
)

func main() {
	process.Exit(run(os.Args[1:]))
}

func run(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newCommand(ctx, os.Stdout, os.Stderr).Execute(args)
}

type options struct {
	configPath  string
	columns     int
	lines       int
	term        string
	interval    time.Duration
	poll        time.Duration
	output      string
	verbose     bool
	showVersion bool
}

func (o *options) flagSet() *pflag.FlagSet {
	defaults := config.Default()
	flagSet := pflag.NewFlagSet("flipbook", pflag.ContinueOnError)
	flagSet.StringVar(&o.configPath, "config", "", "YAML configuration file (default $"+config.EnvironmentVariable+")")
	flagSet.IntVar(&o.columns, "columns", defaults.Columns, "terminal width in columns")
	flagSet.IntVar(&o.lines, "lines", defaults.Lines, "terminal height in lines")
	flagSet.StringVar(&o.term, "term", defaults.Term, "TERM value for the recorded program")
	flagSet.DurationVar(&o.interval, "interval", defaults.Interval, "minimum time between frames")
	flagSet.DurationVar(&o.poll, "poll", defaults.PollInterval, "how long to wait for output before re-checking the screen")
	flagSet.StringVarP(&o.output, "output", "o", defaults.Output, "frame destination: - for stdout, a path, or a .zst path for compressed output")
	flagSet.BoolVarP(&o.verbose, "verbose", "v", false, "log debug detail to stderr")
	flagSet.BoolVar(&o.showVersion, "version", false, "print version information and exit")
	return flagSet
}

// resolve layers the config file and explicitly set flags over the
// defaults.
func (o *options) resolve(flags *pflag.FlagSet) (config.Recording, error) {
	recording := config.Default()
	if path := config.Path(o.configPath); path != "" {
		loaded, err := config.LoadFile(path, recording)
		if err != nil {
			return config.Recording{}, err
		}
		recording = loaded
	}

	if flags.Changed("columns") {
		recording.Columns = o.columns
	}
	if flags.Changed("lines") {
		recording.Lines = o.lines
	}
	if flags.Changed("term") {
		recording.Term = o.term
	}
	if flags.Changed("interval") {
		recording.Interval = o.interval
	}
	if flags.Changed("poll") {
		recording.PollInterval = o.poll
	}
	if flags.Changed("output") {
		recording.Output = o.output
	}

	if err := recording.Validate(); err != nil {
		return config.Recording{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return recording, nil
}

func newCommand(ctx context.Context, stdout, stderr io.Writer) *cli.Command {
	var opts options
	command := &cli.Command{
		Name:    "flipbook",
		Summary: "Record a terminal program as a sequence of text frames",
		Description: `Run a terminal program on a fixed-size pty and write what its screen
shows as a sequence of text frames, at most one per interval, for use as
diffable test fixtures. A frame is only written when the screen changed,
and a blank screen is never the first or the last frame.`,
		Usage: "flipbook [flags] <command> [args...]",
		Examples: []cli.Example{
			{
				Description: "Record a program at the default 90x20 geometry",
				Command:     "flipbook ./bin/dashboard --demo",
			},
			{
				Description: "Record into a compressed fixture with a wider terminal",
				Command:     "flipbook --columns 132 -o testdata/top.txt.zst top -b",
			},
		},
		Flags:  opts.flagSet,
		Output: stderr,
	}
	command.Run = func(flags *pflag.FlagSet, args []string) error {
		if opts.showVersion {
			fmt.Fprintln(stdout, version.Full("flipbook"))
			return nil
		}
		if len(args) == 0 {
			return command.UsageError("no command to record")
		}

		recording, err := opts.resolve(flags)
		if err != nil {
			return err
		}
		logger := cli.NewCommandLogger(cli.LogLevel(opts.verbose))

		output, err := flipbook.OpenOutput(recording.Output, stdout)
		if err != nil {
			return err
		}

		recordErr := flipbook.Record(ctx, recording, args, output, logger)
		if closeErr := output.Close(); closeErr != nil {
			closeErr = fmt.Errorf("close output %s: %w", recording.Output, closeErr)
			return errors.Join(recordErr, closeErr)
		}
		return recordErr
	}
	return command
}
