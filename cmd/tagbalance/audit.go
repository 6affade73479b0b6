package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nao1215/tagbalance/internal/balance"
	"github.com/nao1215/tagbalance/internal/batch"
	"github.com/nao1215/tagbalance/internal/config"
	"github.com/nao1215/tagbalance/internal/lexer"
	"github.com/nao1215/tagbalance/internal/model"
	"github.com/nao1215/tagbalance/internal/report"
	"github.com/spf13/cobra"
)

// NewAuditCmd creates the audit command.
func NewAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit [path...]",
		Short: "Report tags that are never closed",
		Long: `Audit scans each file line by line and keeps a stack of the tracked tags
that were opened. A closing tag pops its opener; when it matches an opener
further down the stack, everything above it is treated as closed implicitly.

At the end of each file the remaining stack is printed:
  Remaining Stack Size: 1
  Unclosed div from L3

Closing tags that match nothing are reported as stray closers unless
--no-report-stray is given. Text after "//" on a line is ignored.

With no path, the configured default target (App.tsx) is audited. Several
paths are scanned concurrently and reported in the order given.

Examples:
  # Audit App.tsx in the current directory
  tagbalance audit

  # Audit several files, tracking only div and span
  tagbalance audit --tags div,span src/App.tsx src/Modal.tsx

  # Never truncate the stack on a mismatched closer
  tagbalance audit --strict src/App.tsx

  # Markdown report for a pull request
  tagbalance audit --markdown -o report.md src/App.tsx`,
		Args: cobra.ArbitraryArgs,
		RunE: runAuditCmd,
	}

	cmd.Flags().StringSlice("tags", nil,
		"Comma-separated tag names to track (default: div,form,section,main)")
	cmd.Flags().String("lexer", config.DefaultLexer,
		"Tag matcher to use: "+strings.Join(lexer.Names(), ", "))
	cmd.Flags().Bool("strict", false,
		"Treat closers that do not match the innermost open tag as stray instead of truncating the stack")
	cmd.Flags().Bool("no-report-stray", false,
		"Silently ignore closing tags that match no open tag")
	cmd.Flags().IntP("jobs", "j", config.DefaultJobs,
		"Number of files audited concurrently")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .tagbalance.yaml in current, XDG config or home directory)")
	addReportFlags(cmd)

	return cmd
}

// runAuditCmd executes the audit command.
func runAuditCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildAuditConfig(cmd, args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd, cfg.Verbose)

	opts, err := auditOptions(cfg)
	if err != nil {
		return err
	}
	opts = append(opts, balance.WithLogger(logger))

	proc := batch.NewProcessor(
		func(ctx context.Context, path string) (*model.AuditReport, error) {
			return balance.Audit(ctx, path, opts...)
		},
		batch.WithConcurrency(cfg.Jobs),
		batch.WithLogger(logger),
	)

	targets := cfg.AuditTargets()
	logger.Debug("auditing files", "files", len(targets), "jobs", proc.Concurrency())

	results, err := proc.Process(cmd.Context(), targets)
	if err != nil {
		return err
	}

	var (
		reports    []*model.AuditReport
		scanErrs   []error
		imbalanced bool
	)
	for _, r := range results {
		if r.Err != nil {
			scanErrs = append(scanErrs, r.Err)
			continue
		}
		reports = append(reports, r.Value)
		imbalanced = imbalanced || r.Value.HasImbalance()
	}

	if len(reports) > 0 {
		err := withReportWriter(cmd, cfg, func(w report.Writer) error {
			_, err := w.WriteAudit(reports...)
			return err
		})
		if err != nil {
			return err
		}
	}

	if len(scanErrs) > 0 {
		return errors.Join(scanErrs...)
	}
	if imbalanced {
		return ErrImbalance
	}
	return nil
}

// buildAuditConfig creates a Config from defaults, the configuration file
// and the audit command flags, in that order of precedence.
func buildAuditConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	if err := loadConfigFile(cmd, cfg); err != nil {
		return nil, err
	}

	cfg.Targets = args
	cfg.Verbose = getVerboseFlag(cmd)

	flags := cmd.Flags()
	var err error
	if flags.Changed("tags") {
		if cfg.TrackedTags, err = flags.GetStringSlice("tags"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("lexer") {
		if cfg.Lexer, err = flags.GetString("lexer"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("strict") {
		if cfg.Strict, err = flags.GetBool("strict"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("no-report-stray") {
		noReport, err := flags.GetBool("no-report-stray")
		if err != nil {
			return nil, err
		}
		cfg.ReportUnmatchedClosers = !noReport
	}
	if flags.Changed("jobs") {
		if cfg.Jobs, err = flags.GetInt("jobs"); err != nil {
			return nil, err
		}
	}
	if err := applyReportFlags(cmd, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// auditOptions translates cfg into stack scanner options.
func auditOptions(cfg *config.Config) ([]balance.Option, error) {
	tags := cfg.TagSet()
	lx, err := lexer.New(cfg.Lexer, tags)
	if err != nil {
		return nil, err
	}

	recovery := balance.RecoveryTruncateOnMismatch
	if cfg.Strict {
		recovery = balance.RecoveryStrict
	}

	return []balance.Option{
		balance.WithTags(tags),
		balance.WithLexer(lx),
		balance.WithRecovery(recovery),
		balance.WithReportUnmatchedClosers(cfg.ReportUnmatchedClosers),
	}, nil
}
