package match

import (
	"fmt"
	"strings"
	"time"
)

// FailureMessage renders the diagnostic for a failed positive assertion:
// the job type, one labeled line per active constraint, and the observed
// count. The actual argument exists for Gomega compatibility and is ignored.
func (m *Matcher) FailureMessage(_ any) string {
	return m.describe("expected an enqueued")
}

// NegatedFailureMessage renders the diagnostic for a failed negated
// assertion.
func (m *Matcher) NegatedFailureMessage(_ any) string {
	return m.describe("expected no enqueued")
}

func (m *Matcher) describe(header string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s job\n", header, m.jobType)

	if m.hasArgs || m.argsFn != nil {
		if m.argsResolved {
			fmt.Fprintf(&b, "  arguments: %v\n", m.resolvedArgs)
		} else {
			b.WriteString("  arguments: (computed from the block result)\n")
		}
	}
	if m.at != nil {
		if at, ok := m.at.(time.Time); ok {
			fmt.Fprintf(&b, "  at: %s\n", at.Format(time.RFC3339))
		} else {
			fmt.Fprintf(&b, "  at: %v\n", m.at)
		}
	}
	if m.in != nil {
		fmt.Fprintf(&b, "  in: %s\n", *m.in)
	}
	if m.count > 0 {
		fmt.Fprintf(&b, "  count: %d\n", m.count)
	}

	fmt.Fprintf(&b, "found %d matching among %d newly enqueued", m.observed, m.fresh)
	return b.String()
}
