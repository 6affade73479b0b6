package balance

import (
	"iter"
	"log/slog"

	"github.com/nao1215/tagbalance/internal/model"
)

// StackScanner tracks open tags on a stack.
type StackScanner struct {
	recovery        RecoveryPolicy
	reportUnmatched bool
	logger          *slog.Logger
}

// NewStackScanner creates a StackScanner. Only WithRecovery,
// WithReportUnmatchedClosers and WithLogger affect it.
func NewStackScanner(opts ...Option) *StackScanner {
	o := newOptions(opts)
	return &StackScanner{
		recovery:        o.recovery,
		reportUnmatched: o.reportUnmatched,
		logger:          o.logger,
	}
}

// Scan consumes events and records the outcome in report.
//
// Openers are pushed in event order. A closer pops the top of the stack when
// it matches; otherwise the recovery policy decides. Self-closing events
// never touch the stack. Entries left on the stack at the end are reported
// as unclosed, bottom of the stack first.
func (s *StackScanner) Scan(events iter.Seq[model.TagEvent], report *model.AuditReport) {
	report.Recovery = s.recovery.String()

	var stack []model.StackEntry
	for ev := range events {
		switch ev.Kind {
		case model.EventOpen:
			report.Opened++
			stack = append(stack, model.StackEntry{Tag: ev.Name, Line: ev.Line})
			s.logger.Debug("tag opened", "tag", ev.Name, "line", ev.Line, "depth", len(stack))
		case model.EventClose:
			report.Closed++
			stack = s.close(stack, ev, report)
		case model.EventSelfClose:
			s.logger.Debug("self-closing tag skipped", "tag", ev.Name, "line", ev.Line)
		}
	}

	report.Remaining = append(report.Remaining[:0], stack...)
	for _, entry := range stack {
		report.Diagnostics = append(report.Diagnostics,
			model.NewDiagnostic(model.DiagnosticUnclosed, entry.Tag, entry.Line,
				"Unclosed %s from L%d", entry.Tag, entry.Line))
	}
}

// close applies one closer to the stack and returns the new stack.
func (s *StackScanner) close(stack []model.StackEntry, ev model.TagEvent, report *model.AuditReport) []model.StackEntry {
	if n := len(stack); n > 0 && stack[n-1].Tag == ev.Name {
		s.logger.Debug("tag closed", "tag", ev.Name, "line", ev.Line, "openedAt", stack[n-1].Line)
		return stack[:n-1]
	}

	idx := lastIndexOf(stack, ev.Name)
	if idx >= 0 && s.recovery == RecoveryTruncateOnMismatch {
		for _, dropped := range stack[idx+1:] {
			report.ImplicitCloses++
			report.Diagnostics = append(report.Diagnostics,
				model.NewDiagnostic(model.DiagnosticImplicitClose, dropped.Tag, dropped.Line,
					"%s from L%d closed implicitly by </%s> at L%d", dropped.Tag, dropped.Line, ev.Name, ev.Line).
					WithText(ev.Text))
		}
		s.logger.Debug("stack truncated", "tag", ev.Name, "line", ev.Line, "dropped", len(stack)-idx-1)
		return stack[:idx]
	}

	if !s.reportUnmatched {
		s.logger.Debug("stray closer ignored", "tag", ev.Name, "line", ev.Line)
		return stack
	}

	report.StrayClosers++
	var diag model.Diagnostic
	if idx >= 0 {
		top := stack[len(stack)-1]
		diag = model.NewDiagnostic(model.DiagnosticStrayCloser, ev.Name, ev.Line,
			"Mismatched </%s> at L%d while %s from L%d is open", ev.Name, ev.Line, top.Tag, top.Line)
	} else {
		diag = model.NewDiagnostic(model.DiagnosticStrayCloser, ev.Name, ev.Line,
			"Stray </%s> at L%d", ev.Name, ev.Line)
	}
	report.Diagnostics = append(report.Diagnostics, diag.WithText(ev.Text))
	return stack
}

// lastIndexOf returns the position of the entry for tag nearest to the top
// of the stack, or -1.
func lastIndexOf(stack []model.StackEntry, tag model.TagName) int {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].Tag == tag {
			return i
		}
	}
	return -1
}
