// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

// Command represents a CLI command.
type Command struct {
	// Name is the program name shown in usage and error messages.
	Name string

	// Summary is a one-line description, shown when Description is empty.
	Summary string

	// Description is a detailed multi-line description shown in the
	// command's help output.
	Description string

	// Usage is the usage string (e.g., "flipbook [flags] <command> [args...]").
	// If empty, it is synthesized from Name.
	Usage string

	// Examples are shown in the help output after the flags.
	Examples []Example

	// Flags returns a configured *pflag.FlagSet for this command. It is
	// called once per Execute and once per help rendering, so it must
	// return a fresh set each time. If nil, the command accepts no flags.
	Flags func() *pflag.FlagSet

	// Run executes the command with the parsed flags and the remaining
	// positional arguments. flags is never nil: commands without Flags
	// receive an empty set, so Run can always consult flags.Changed.
	Run func(flags *pflag.FlagSet, args []string) error

	// Output receives help text and usage errors. Nil means os.Stderr.
	Output io.Writer
}

// Example is a usage example shown in help output.
type Example struct {
	// Description explains what the example does.
	Description string
	// Command is the literal command line.
	Command string
}

// Execute parses args and calls Run. Flag parsing stops at the first
// positional argument or at "--"; everything from there on is passed to
// Run verbatim.
//
// -h and --help print help and return nil. A flag error prints the error
// and a pointer to --help, then returns an ExitError with ExitUsage.
func (c *Command) Execute(args []string) error {
	output := c.output()

	flagSet := c.newFlagSet()
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			c.PrintHelp(output)
			return nil
		}
		message := err.Error()
		if strings.Contains(message, "unknown") {
			if suggestion := suggestFlag(args, c.newFlagSet()); suggestion != "" {
				message = fmt.Sprintf("%s (did you mean %s?)", message, suggestion)
			}
		}
		fmt.Fprintf(output, "%s: %s\n\nRun '%s --help' for usage.\n", c.Name, message, c.Name)
		return &ExitError{Code: ExitUsage}
	}

	if c.Run == nil {
		c.PrintHelp(output)
		return fmt.Errorf("no action defined for %q", c.Name)
	}
	return c.Run(flagSet, flagSet.Args())
}

// UsageError prints message followed by the usage line and returns the
// ExitError for a usage failure. Run functions use it for argument
// errors that flag parsing cannot catch, such as a missing command.
func (c *Command) UsageError(message string) error {
	fmt.Fprintf(c.output(), "%s: %s\n%s", c.Name, message, c.usageLine())
	return &ExitError{Code: ExitUsage}
}

// PrintHelp writes structured help output to w.
func (c *Command) PrintHelp(w io.Writer) {
	if c.Description != "" {
		fmt.Fprintf(w, "%s\n\n", c.Description)
	} else if c.Summary != "" {
		fmt.Fprintf(w, "%s\n\n", c.Summary)
	}

	fmt.Fprint(w, c.usageLine())

	if c.Flags != nil {
		var flagHelp strings.Builder
		flagSet := c.Flags()
		flagSet.SetOutput(&flagHelp)
		flagSet.PrintDefaults()
		if flagHelp.Len() > 0 {
			fmt.Fprintf(w, "\nFlags:\n%s", flagHelp.String())
		}
	}

	if len(c.Examples) > 0 {
		fmt.Fprintf(w, "\nExamples:\n")
		for _, example := range c.Examples {
			if example.Description != "" {
				fmt.Fprintf(w, "  # %s\n", example.Description)
			}
			fmt.Fprintf(w, "  %s\n", example.Command)
			if example.Description != "" {
				fmt.Fprintln(w)
			}
		}
	}
}

func (c *Command) usageLine() string {
	if c.Usage != "" {
		return fmt.Sprintf("Usage:\n  %s\n", c.Usage)
	}
	return fmt.Sprintf("Usage:\n  %s [flags] [args...]\n", c.Name)
}

// newFlagSet returns a fresh flag set configured for Execute: errors are
// returned rather than printed, and parsing stops at the first
// positional argument.
func (c *Command) newFlagSet() *pflag.FlagSet {
	var flagSet *pflag.FlagSet
	if c.Flags != nil {
		flagSet = c.Flags()
	} else {
		flagSet = pflag.NewFlagSet(c.Name, pflag.ContinueOnError)
	}
	flagSet.Init(c.Name, pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.SetInterspersed(false)
	return flagSet
}

func (c *Command) output() io.Writer {
	if c.Output != nil {
		return c.Output
	}
	return os.Stderr
}
