package check

import "strings"

// Status is the outcome of a single check.
type Status int

const (
	// Pass means the check succeeded.
	Pass Status = iota

	// Fail means the check ran and its condition was not met.
	Fail

	// Indeterminate means the output could not be interpreted.
	// It counts as a failure for reporting purposes; unreadable
	// output is never promoted to a pass.
	Indeterminate
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Pass:
		return "pass"
	case Fail:
		return "fail"
	case Indeterminate:
		return "indeterminate"
	default:
		return "unknown"
	}
}

// Glyph returns the marker used in rendered reports.
func (s Status) Glyph() string {
	switch s {
	case Pass:
		return "✅"
	case Fail:
		return "❌"
	case Indeterminate:
		return "⚠️"
	default:
		return "⚠️"
	}
}

// Result is the outcome of one check against one host.
// It is immutable once produced.
type Result struct {
	// Check is the kind of check that produced this result.
	Check string

	// Status is the pass/fail outcome.
	Status Status

	// Detail is free text for the report. May span multiple lines
	// (e.g. command output blocks, directory listings).
	Detail string
}

// Failed reports whether this result counts as a failure.
// Indeterminate results are failures: we could not prove health.
func (r Result) Failed() bool {
	return r.Status != Pass
}

// snippet condenses raw remote output for inclusion in a detail
// message: collapsed to one line and truncated.
func snippet(raw string) string {
	s := strings.Join(strings.Fields(raw), " ")
	if len(s) > 120 {
		s = s[:120] + "..."
	}
	if s == "" {
		return "(empty output)"
	}
	return s
}
