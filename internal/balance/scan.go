package balance

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/nao1215/tagbalance/internal/lexer"
	"github.com/nao1215/tagbalance/internal/model"
)

// ReadSource reads path into a Source. The file is closed before
// ReadSource returns, whether or not reading succeeded.
func ReadSource(path string) (*model.Source, error) {
	f, err := os.Open(path) //nolint:gosec // Scanning user-provided paths is the purpose of the tool
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return model.NewSource(path, string(data)), nil
}

// Audit scans the file at path with the stack scanner.
// Only I/O problems are returned as errors; imbalance is reported in the
// returned AuditReport.
func Audit(ctx context.Context, path string, opts ...Option) (*model.AuditReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	src, err := ReadSource(path)
	if err != nil {
		return nil, err
	}
	return AuditSource(src, opts...), nil
}

// AuditSource scans an in-memory source with the stack scanner.
func AuditSource(src *model.Source, opts ...Option) *model.AuditReport {
	o := newOptions(opts)

	report := model.NewAuditReport(src.Path)
	report.Lexer = o.lexer.Name()
	report.TrackedTags = o.tags.Names()

	scanner := NewStackScanner(opts...)
	scanner.Scan(o.lexer.Lex(src), report)
	report.DateScanned = time.Now()

	o.logger.Debug("audit complete",
		"path", src.Path,
		"lexer", report.Lexer,
		"remaining", len(report.Remaining),
		"strayClosers", report.StrayClosers,
	)
	return report
}

// Check scans the file at path with the counting scanner.
func Check(ctx context.Context, path string, opts ...Option) (*model.BalanceReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	src, err := ReadSource(path)
	if err != nil {
		return nil, err
	}
	return CheckSource(src, opts...), nil
}

// CheckSource scans an in-memory source with the counting scanner.
func CheckSource(src *model.Source, opts ...Option) *model.BalanceReport {
	o := newOptions(opts)

	report := model.NewBalanceReport(src.Path, o.countedTag)
	scanner := NewCounterScanner(opts...)
	scanner.Scan(lexer.NewCountingLexer(o.countedTag).Lex(src), report)
	report.DateScanned = time.Now()

	o.logger.Debug("check complete",
		"path", src.Path,
		"tag", report.Tag,
		"finalBalance", report.FinalBalance,
		"negativeEvents", len(report.Diagnostics),
	)
	return report
}

// Fragments lists the JSX fragment markers of the file at path.
func Fragments(ctx context.Context, path string) (*model.FragmentReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	src, err := ReadSource(path)
	if err != nil {
		return nil, err
	}
	return FragmentsSource(src), nil
}

// FragmentsSource lists the JSX fragment markers of an in-memory source.
func FragmentsSource(src *model.Source) *model.FragmentReport {
	report := &model.FragmentReport{Path: src.Path, Markers: make([]model.FragmentMarker, 0)}
	for ev := range lexer.NewFragmentLexer().Lex(src) {
		report.Markers = append(report.Markers, model.FragmentMarker{Kind: ev.Kind, Line: ev.Line, Text: ev.Text})
	}
	return report
}
