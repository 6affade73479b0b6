package main

import (
	"fmt"

	"github.com/nao1215/tagbalance/internal/balance"
	"github.com/nao1215/tagbalance/internal/config"
	"github.com/nao1215/tagbalance/internal/model"
	"github.com/nao1215/tagbalance/internal/report"
	"github.com/spf13/cobra"
)

// NewDivsCmd creates the divs command.
func NewDivsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "divs <path>",
		Short: "Count one tag and report where its balance goes negative",
		Long: `Divs keeps a running count of one tag (div by default): +1 for every
opener, -1 for every closer or self-closing tag. String literals, JSX block
comments and // comments are stripped first, keeping line numbers intact.

Whenever the count drops below zero the line is printed and the count is
reset to zero, unless --no-reset is given:
  Line 42: </div>
  Negative balance! Count: -1
  Final balance: 0

Examples:
  # Check div balance of a component
  tagbalance divs src/App.tsx

  # Count section tags and keep negative counts
  tagbalance divs --tag section --no-reset src/App.tsx`,
		Args: exactArgs(1),
		RunE: runDivsCmd,
	}

	cmd.Flags().String("tag", config.DefaultCountedTag,
		"Tag name to count")
	cmd.Flags().Bool("no-reset", false,
		"Keep a negative count instead of resetting it to zero")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .tagbalance.yaml in current, XDG config or home directory)")
	addReportFlags(cmd)

	return cmd
}

// runDivsCmd executes the divs command.
func runDivsCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildDivsConfig(cmd, args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd, cfg.Verbose)

	policy := balance.NegativeResetToZero
	if cfg.KeepNegative {
		policy = balance.NegativeKeep
	}

	result, err := balance.Check(cmd.Context(), cfg.Targets[0],
		balance.WithCountedTag(model.TagName(cfg.CountedTag)),
		balance.WithNegativePolicy(policy),
		balance.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	err = withReportWriter(cmd, cfg, func(w report.Writer) error {
		_, err := w.WriteBalance(result)
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

// buildDivsConfig creates a Config from defaults, the configuration file
// and the divs command flags.
func buildDivsConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	if err := loadConfigFile(cmd, cfg); err != nil {
		return nil, err
	}

	cfg.Targets = args
	cfg.Verbose = getVerboseFlag(cmd)

	flags := cmd.Flags()
	var err error
	if flags.Changed("tag") {
		if cfg.CountedTag, err = flags.GetString("tag"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("no-reset") {
		if cfg.KeepNegative, err = flags.GetBool("no-reset"); err != nil {
			return nil, err
		}
	}
	if err := applyReportFlags(cmd, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
