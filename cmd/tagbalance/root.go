package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for tagbalance.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tagbalance",
		Short: "Find unbalanced markup tags in JSX, TSX and HTML files",
		Long: `tagbalance audits component sources for unbalanced markup tags.

It works line by line with pattern matching rather than a full parser, so it
is fast and tolerant of code mixed into markup:
- audit tracks a stack of open tags and reports those never closed
- divs keeps a running count of one tag and reports where it goes negative
- fragments lists the lines holding JSX fragments (<> and </>)

Exit status: 0 balanced, 1 imbalance found, 2 usage or I/O error.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().String("log-format", logFormatText, "Log output format: text or json")

	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		format, err := c.Flags().GetString("log-format")
		if err != nil {
			return err
		}
		if format != logFormatText && format != logFormatJSON {
			return &UsageError{
				Command: c.CommandPath(),
				Message: fmt.Sprintf("invalid log format %q (use text or json)", format),
			}
		}
		return nil
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &UsageError{Command: c.CommandPath(), Message: err.Error()}
	})

	// Add subcommands
	cmd.AddCommand(NewAuditCmd())
	cmd.AddCommand(NewDivsCmd())
	cmd.AddCommand(NewFragmentsCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command and exits with the status described in
// the package documentation.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the CLI with args and returns the process exit code.
// Reports go to stdout and errors to stderr. An imbalance is not printed as
// an error because the report already describes it.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, ErrImbalance) {
		fmt.Fprintln(stderr, "Error:", err)
		var usageErr *UsageError
		if errors.As(err, &usageErr) && usageErr.Command != "" {
			fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", usageErr.Command)
		}
	}
	return exitCode(err)
}
