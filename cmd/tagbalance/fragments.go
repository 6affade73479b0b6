package main

import (
	"fmt"

	"github.com/nao1215/tagbalance/internal/balance"
	"github.com/nao1215/tagbalance/internal/config"
	"github.com/nao1215/tagbalance/internal/report"
	"github.com/spf13/cobra"
)

// NewFragmentsCmd creates the fragments command.
func NewFragmentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fragments [path]",
		Short: "List lines holding JSX fragments",
		Long: `Fragments prints every line that contains a JSX fragment opener (<>) or
closer (</>):
  OPEN at L12: <>
  CLOSE at L30: </>

The exit status is 1 when the numbers of openers and closers differ.
With no path, the configured default target (App.tsx) is used.`,
		Args: maximumArgs(1),
		RunE: runFragmentsCmd,
	}

	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .tagbalance.yaml in current, XDG config or home directory)")
	addReportFlags(cmd)

	return cmd
}

// runFragmentsCmd executes the fragments command.
func runFragmentsCmd(cmd *cobra.Command, args []string) error {
	cfg := config.NewConfig()
	if err := loadConfigFile(cmd, cfg); err != nil {
		return err
	}
	cfg.Targets = args
	cfg.Verbose = getVerboseFlag(cmd)
	if err := applyReportFlags(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd, cfg.Verbose)
	path := cfg.AuditTargets()[0]
	logger.Debug("listing fragments", "path", path)

	result, err := balance.Fragments(cmd.Context(), path)
	if err != nil {
		return err
	}

	err = withReportWriter(cmd, cfg, func(w report.Writer) error {
		_, err := w.WriteFragments(result)
		return err
	})
	if err != nil {
		return err
	}

	if result.HasImbalance() {
		return ErrImbalance
	}
	return nil
}
