package model

import "testing"

func TestAuditReportHasImbalance(t *testing.T) {
	t.Parallel()

	t.Run("empty report is balanced", func(t *testing.T) {
		t.Parallel()
		if NewAuditReport("a.tsx").HasImbalance() {
			t.Error("expected balanced report")
		}
	})

	t.Run("remaining entries are an imbalance", func(t *testing.T) {
		t.Parallel()
		r := NewAuditReport("a.tsx")
		r.Remaining = append(r.Remaining, StackEntry{Tag: "div", Line: 1})
		if !r.HasImbalance() {
			t.Error("expected imbalance")
		}
	})

	t.Run("diagnostics are an imbalance", func(t *testing.T) {
		t.Parallel()
		r := NewAuditReport("a.tsx")
		r.Diagnostics = append(r.Diagnostics, NewDiagnostic(DiagnosticStrayCloser, "div", 2, "Stray </div> at L2"))
		if !r.HasImbalance() {
			t.Error("expected imbalance")
		}
	})
}

func TestBalanceReportHasImbalance(t *testing.T) {
	t.Parallel()

	r := NewBalanceReport("a.tsx", "div")
	if r.HasImbalance() {
		t.Error("expected balanced report")
	}
	r.FinalBalance = 2
	if !r.HasImbalance() {
		t.Error("expected imbalance for non-zero final balance")
	}
}

func TestFragmentReport(t *testing.T) {
	t.Parallel()

	r := &FragmentReport{Markers: []FragmentMarker{
		{Kind: EventOpen, Line: 1},
		{Kind: EventOpen, Line: 2},
		{Kind: EventClose, Line: 3},
	}}
	if r.Count(EventOpen) != 2 || r.Count(EventClose) != 1 {
		t.Errorf("unexpected counts: %d open, %d close", r.Count(EventOpen), r.Count(EventClose))
	}
	if !r.HasImbalance() {
		t.Error("expected imbalance")
	}
}

func TestNewDiagnostic(t *testing.T) {
	t.Parallel()

	d := NewDiagnostic(DiagnosticUnclosed, "form", 4, "Unclosed %s from L%d", "form", 4).WithText("<form>")
	if d.Message != "Unclosed form from L4" {
		t.Errorf("unexpected message: %s", d.Message)
	}
	if d.Severity != SeverityHigh || d.Line != 4 || d.Tag != "form" || d.Text != "<form>" {
		t.Errorf("unexpected diagnostic: %+v", d)
	}
}

func TestSortedBySeverity(t *testing.T) {
	t.Parallel()

	diags := []Diagnostic{
		NewDiagnostic(DiagnosticImplicitClose, "div", 1, "a"),
		NewDiagnostic(DiagnosticUnclosed, "div", 9, "b"),
		NewDiagnostic(DiagnosticStrayCloser, "div", 5, "c"),
		NewDiagnostic(DiagnosticUnclosed, "form", 2, "d"),
	}
	got := SortedBySeverity(diags)

	wantOrder := []string{"d", "b", "c", "a"}
	for i, want := range wantOrder {
		if got[i].Message != want {
			t.Errorf("position %d: got %s, want %s", i, got[i].Message, want)
		}
	}
	if diags[0].Message != "a" {
		t.Error("SortedBySeverity modified its input")
	}

	counts := SeverityCounts(diags)
	if counts[SeverityHigh] != 2 || counts[SeverityMedium] != 1 || counts[SeverityLow] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}
}
