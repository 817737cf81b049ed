package match

import (
	gomegatypes "github.com/onsi/gomega/types"
)

// TestingT is the slice of *testing.T the assertion entry point needs.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
}

// Assertion pairs a test handle with the block under assertion. Obtain one
// via Expect and finish it with To or NotTo.
type Assertion struct {
	t     TestingT
	block any
}

// Expect starts a block assertion:
//
//	match.Expect(t, func() { svc.Register(user) }).
//		To(match.Enqueue(q, "WelcomeEmail").With(user.ID))
//
// The block must be func() or func() any; the return value of the latter
// feeds WithResult.
func Expect(t TestingT, block any) *Assertion {
	return &Assertion{t: t, block: block}
}

// To evaluates the positive assertion and fails the test with the matcher's
// diagnostic when it does not hold.
func (a *Assertion) To(m *Matcher) {
	a.t.Helper()
	ok, err := m.Matches(a.block)
	if err != nil {
		a.t.Fatalf("jobwatch: %v", err)
		return
	}
	if !ok {
		a.t.Fatalf("%s", m.FailureMessage(nil))
	}
}

// NotTo evaluates the negated assertion: it holds when no newly enqueued job
// satisfies the matcher's constraints. Count constraints are rejected here.
func (a *Assertion) NotTo(m *Matcher) {
	a.t.Helper()
	ok, err := m.DoesNotMatch(a.block)
	if err != nil {
		a.t.Fatalf("jobwatch: %v", err)
		return
	}
	if !ok {
		a.t.Fatalf("%s", m.NegatedFailureMessage(nil))
	}
}

// Matcher doubles as a Gomega matcher for positive assertions, so it can be
// used as Expect(block).To(match.Enqueue(q, "SendEmail")). Gomega's ToNot
// only inverts Match and cannot express "no matching job regardless of
// count"; use Expect(t, block).NotTo for negation.
var _ gomegatypes.GomegaMatcher = &Matcher{}

// Match implements the Gomega matcher contract. The actual value must be
// the block; anything else is a configuration error.
func (m *Matcher) Match(actual any) (bool, error) {
	return m.Matches(actual)
}
