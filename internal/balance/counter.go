package balance

import (
	"iter"
	"log/slog"

	"github.com/nao1215/tagbalance/internal/model"
)

// CounterScanner keeps a signed running balance of one tag.
type CounterScanner struct {
	negative NegativePolicy
	logger   *slog.Logger
}

// NewCounterScanner creates a CounterScanner. Only WithNegativePolicy and
// WithLogger affect it.
func NewCounterScanner(opts ...Option) *CounterScanner {
	o := newOptions(opts)
	return &CounterScanner{
		negative: o.negative,
		logger:   o.logger,
	}
}

// lineDelta accumulates the events of one line.
type lineDelta struct {
	line  int
	text  string
	delta int
}

// Scan consumes events and records the outcome in report.
//
// Events are grouped by line. For every line the balance changes by
// opens - selfClosed - closes. Whenever a line lowers the balance below
// zero a negative-balance diagnostic is recorded and the negative policy is
// applied.
func (s *CounterScanner) Scan(events iter.Seq[model.TagEvent], report *model.BalanceReport) {
	report.Recovery = s.negative.String()

	balance := 0
	var cur *lineDelta
	flush := func() {
		if cur == nil || cur.delta == 0 {
			return
		}
		balance += cur.delta
		if balance < 0 && cur.delta < 0 {
			report.Diagnostics = append(report.Diagnostics,
				model.NewDiagnostic(model.DiagnosticNegativeBalance, report.Tag, cur.line,
					"Negative balance! Count: %d", balance).WithText(cur.text))
			s.logger.Debug("negative balance", "line", cur.line, "balance", balance, "text", cur.text)
			if s.negative == NegativeResetToZero {
				balance = 0
			}
		}
	}

	for ev := range events {
		if cur == nil || cur.line != ev.Line {
			flush()
			cur = &lineDelta{line: ev.Line, text: ev.Text}
		}
		switch ev.Kind {
		case model.EventOpen:
			report.Opened++
			cur.delta++
		case model.EventSelfClose:
			report.SelfClosed++
			cur.delta--
		case model.EventClose:
			report.Closed++
			cur.delta--
		}
	}
	flush()

	report.FinalBalance = balance
}
