// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
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
	term        string
	poll        time.Duration
	verbose     bool
	showVersion bool
}

func (o *options) flagSet() *pflag.FlagSet {
	defaults := config.HeadlessDefault()
	flagSet := pflag.NewFlagSet("flipbook-headless", pflag.ContinueOnError)
	flagSet.StringVar(&o.configPath, "config", "", "YAML configuration file (default $"+config.EnvironmentVariable+")")
	flagSet.StringVar(&o.term, "term", defaults.Term, "TERM value for the program")
	flagSet.DurationVar(&o.poll, "poll", defaults.PollInterval, "how long to wait for output per poll")
	flagSet.BoolVarP(&o.verbose, "verbose", "v", false, "log debug detail to stderr")
	flagSet.BoolVar(&o.showVersion, "version", false, "print version information and exit")
	return flagSet
}

func (o *options) resolve(flags *pflag.FlagSet) (config.Recording, error) {
	recording := config.HeadlessDefault()
	if path := config.Path(o.configPath); path != "" {
		loaded, err := config.LoadFile(path, recording)
		if err != nil {
			return config.Recording{}, err
		}
		recording = loaded
	}
	if flags.Changed("term") {
		recording.Term = o.term
	}
	if flags.Changed("poll") {
		recording.PollInterval = o.poll
	}
	if err := recording.Validate(); err != nil {
		return config.Recording{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return recording, nil
}

func newCommand(ctx context.Context, stdout, stderr io.Writer) *cli.Command {
	var opts options
	return &cli.Command{
		Name:    "flipbook-headless",
		Summary: "Run a terminal program on a pty and discard its output",
		Description: `Run a terminal program on a pty and discard everything it prints until
it exits or flipbook-headless is interrupted, then terminate it. Nothing
is rendered or recorded.`,
		Usage: "flipbook-headless [flags] <command> [args...]",
		Examples: []cli.Example{
			{
				Description: "Check that a TUI starts and quits on a real terminal",
				Command:     "flipbook-headless ./bin/dashboard --exit-after 2s",
			},
		},
		Flags:  opts.flagSet,
		Output: stderr,
		Run: func(flags *pflag.FlagSet, args []string) error {
			if opts.showVersion {
				fmt.Fprintln(stdout, version.Full("flipbook-headless"))
				return nil
			}
			if len(args) == 0 {
				return nil
			}
			recording, err := opts.resolve(flags)
			if err != nil {
				return err
			}
			return flipbook.Drain(ctx, recording, args, cli.NewCommandLogger(cli.LogLevel(opts.verbose)))
		},
	}
}
