// Package report folds host reports into a run summary and renders
// the report body.
package report

import (
	"fmt"
	"strings"

	"github.com/hostpatrol/hostpatrol/pkg/evaluate"
)

// Summary is the outcome of one full run.
type Summary struct {
	// RunID identifies this run in logs and delivery.
	RunID string

	// Reports in configuration order.
	Reports []evaluate.HostReport

	// Failed is true iff any host report failed.
	Failed bool

	// Body is the rendered report text.
	Body string
}

// Aggregate combines all host reports into a summary. Rendering is
// deterministic: identical reports yield a byte-identical body.
func Aggregate(runID string, reports []evaluate.HostReport) Summary {
	s := Summary{
		RunID:   runID,
		Reports: reports,
	}
	for _, r := range reports {
		s.Failed = s.Failed || r.Failed
	}
	s.Body = render(reports)
	return s
}

// ShouldPost decides whether the report is delivered: always in full
// mode, otherwise only when something failed.
func ShouldPost(failed, full bool) bool {
	return failed || full
}

// render produces the report body. Hosts and checks appear exactly
// once, in configuration order. Each check renders as a glyph, the
// check name and its detail; multi-line details continue on their own
// lines.
func render(reports []evaluate.HostReport) string {
	var b strings.Builder

	for i, r := range reports {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "*%s* (`%s`)\n", r.Name, r.Host)

		for _, res := range r.Results {
			detail := res.Detail
			if first, rest, multi := strings.Cut(detail, "\n"); multi {
				fmt.Fprintf(&b, "%s %s: %s\n%s\n", res.Status.Glyph(), res.Check, first, rest)
			} else {
				fmt.Fprintf(&b, "%s %s: %s\n", res.Status.Glyph(), res.Check, detail)
			}
		}
	}

	return b.String()
}
