package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nao1215/tagbalance/internal/config"
	"github.com/nao1215/tagbalance/internal/log"
	"github.com/nao1215/tagbalance/internal/report"
	"github.com/spf13/cobra"
)

// addReportFlags registers the flags shared by every command that prints a report.
func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().Bool("markdown", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().Bool("color", false,
		"Colorize the text report")
}

// applyReportFlags copies the report flags into cfg. Flags left at their
// default do not override the configuration file.
func applyReportFlags(cmd *cobra.Command, cfg *config.Config) error {
	var err error
	if cfg.JSONReport, err = cmd.Flags().GetBool("json"); err != nil {
		return err
	}
	if cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown"); err != nil {
		return err
	}
	if cfg.ReportFile, err = cmd.Flags().GetString("output"); err != nil {
		return err
	}
	if cmd.Flags().Changed("color") {
		if cfg.Color, err = cmd.Flags().GetBool("color"); err != nil {
			return err
		}
	}
	return nil
}

// loadConfigFile overlays the configuration file selected with --config, or
// found by config.FindConfigFile, onto cfg.
func loadConfigFile(cmd *cobra.Command, cfg *config.Config) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	cfg.ConfigFilePath = path
	if err := config.Load(cfg); err != nil {
		return fmt.Errorf("failed to load config file: %w", err)
	}
	return nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// Log formats accepted by --log-format.
const (
	logFormatText = "text"
	logFormatJSON = "json"
)

// getLogFormatFlag retrieves the log format from the command or its parent.
func getLogFormatFlag(cmd *cobra.Command) string {
	format, err := cmd.Flags().GetString("log-format")
	if err != nil {
		format, err = cmd.Root().PersistentFlags().GetString("log-format")
		if err != nil {
			return logFormatText
		}
	}
	return format
}

// setupLogger creates the logger for a command. Logs go to the command's
// stderr so reports on stdout stay machine readable.
func setupLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	if getLogFormatFlag(cmd) == logFormatJSON {
		return log.NewJSONLogger(cmd.ErrOrStderr(), verbose)
	}
	return log.NewLogger(cmd.ErrOrStderr(), verbose)
}

// reportFormat returns the format selected in cfg.
func reportFormat(cfg *config.Config) report.Format {
	switch {
	case cfg.JSONReport:
		return report.FormatJSON
	case cfg.MarkdownReport:
		return report.FormatMarkdown
	default:
		return report.FormatText
	}
}

// withReportWriter opens the report destination, builds the writer for the
// configured format and passes it to fn. The destination is closed after fn
// returns.
func withReportWriter(cmd *cobra.Command, cfg *config.Config, fn func(report.Writer) error) (err error) {
	var output io.Writer = cmd.OutOrStdout()
	if cfg.ReportFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, openErr := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if openErr != nil {
			return fmt.Errorf("failed to create output file: %w", openErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("failed to close output file: %w", cerr)
			}
		}()
		output = f
	}

	w, err := report.New(output, reportFormat(cfg), report.Options{
		Color:   cfg.Color,
		Verbose: cfg.Verbose,
		Version: getVersion(),
	})
	if err != nil {
		return err
	}
	if err := fn(w); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
