package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// Process exit codes.
const (
	exitBalanced  = 0
	exitImbalance = 1
	exitError     = 2
)

// ErrImbalance is returned by a command whose scan found unclosed tags,
// stray closers, negative balances or unmatched fragments. It maps to exit
// code 1.
var ErrImbalance = errors.New("imbalance detected")

// UsageError reports a command invoked with the wrong arguments or flags.
type UsageError struct {
	// Command is the full command path, such as "tagbalance divs".
	Command string

	// Message describes what was wrong.
	Message string
}

// Error implements the error interface.
func (e *UsageError) Error() string {
	return e.Message
}

// exitCode maps the error returned by the root command to a process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitBalanced
	case errors.Is(err, ErrImbalance):
		return exitImbalance
	default:
		return exitError
	}
}

// exactArgs is cobra.ExactArgs returning a *UsageError.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return &UsageError{
				Command: cmd.CommandPath(),
				Message: fmt.Sprintf("%s requires exactly %d file argument(s), got %d", cmd.Name(), n, len(args)),
			}
		}
		return nil
	}
}

// maximumArgs is cobra.MaximumNArgs returning a *UsageError.
func maximumArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > n {
			return &UsageError{
				Command: cmd.CommandPath(),
				Message: fmt.Sprintf("%s accepts at most %d file argument(s), got %d", cmd.Name(), n, len(args)),
			}
		}
		return nil
	}
}
