package match

import (
	"fmt"
	"time"

	"github.com/jobwatch/jobwatch/queue"
	gomegatypes "github.com/onsi/gomega/types"
)

// Matcher asserts that a block of code enqueued (or did not enqueue) jobs of
// one job type, optionally constrained by arguments, scheduled time, and
// occurrence count. A Matcher is configured through its fluent methods and
// evaluated at most once; create a fresh one per assertion.
type Matcher struct {
	queue   queue.Lister
	jobType string
	clock   Clock

	args    []any
	hasArgs bool
	argsFn  func(result any) any

	at any
	in *time.Duration

	count int

	err       error
	evaluated bool

	resolvedArgs []any
	argsResolved bool
	fresh        int
	observed     int
}

// Enqueue binds a new Matcher to the given queue and job type. Without
// further configuration a positive assertion requires exactly one newly
// enqueued job of that type.
func Enqueue(q queue.Lister, jobType string) *Matcher {
	return &Matcher{
		queue:   q,
		jobType: jobType,
		clock:   NewRealClock(),
	}
}

// With sets the expected argument sequence. Each position may be a literal
// value or a Gomega matcher. A trailing map argument is normalized to string
// keys before comparison.
func (m *Matcher) With(args ...any) *Matcher {
	if m.argsFn != nil {
		return m.fail("With cannot be combined with WithResult")
	}
	m.args = normalizeArgs(args)
	m.hasArgs = true
	m.resolvedArgs = m.args
	m.argsResolved = true
	return m
}

// WithResult sets a deferred argument expectation: fn is invoked after the
// asserted block runs, with the block's return value, and must produce an
// ordered sequence of expected arguments.
func (m *Matcher) WithResult(fn func(result any) any) *Matcher {
	if m.hasArgs {
		return m.fail("WithResult cannot be combined with With")
	}
	if fn == nil {
		return m.fail("WithResult expects a function")
	}
	m.argsFn = fn
	return m
}

// At sets the absolute time the job must be scheduled for: a time.Time
// (compared at whole-second resolution) or a Gomega matcher.
func (m *Matcher) At(v any) *Matcher {
	if m.in != nil {
		return m.fail("At cannot be combined with In")
	}
	switch v.(type) {
	case time.Time, gomegatypes.GomegaMatcher:
		m.at = v
	default:
		return m.fail(fmt.Sprintf("At expects a time.Time or a Gomega matcher, got %T", v))
	}
	return m
}

// In sets the relative time the job must be scheduled for, measured from the
// clock's "now" at filter time.
func (m *Matcher) In(d time.Duration) *Matcher {
	if m.at != nil {
		return m.fail("In cannot be combined with At")
	}
	m.in = &d
	return m
}

// Exactly sets the required occurrence count. The last count call wins.
// Counts cannot be combined with a negated assertion.
func (m *Matcher) Exactly(n int) *Matcher {
	if n < 1 {
		return m.fail(fmt.Sprintf("Exactly expects a positive count, got %d", n))
	}
	m.count = n
	return m
}

func (m *Matcher) Once() *Matcher { return m.Exactly(1) }

func (m *Matcher) Twice() *Matcher { return m.Exactly(2) }

// WithClock replaces the time source used by In. Intended for tests.
func (m *Matcher) WithClock(c Clock) *Matcher {
	m.clock = c
	return m
}

// Matches evaluates the positive assertion: block must be func() or
// func() any, and after it runs the newly enqueued jobs satisfying every
// active constraint must number exactly the configured count (default one).
// A false return with a nil error is an assertion failure; the error return
// carries configuration and contract violations.
func (m *Matcher) Matches(block any) (bool, error) {
	ok, err := m.evaluate(block, false)
	if err != nil {
		return false, err
	}
	return ok, nil
}

// DoesNotMatch evaluates the negated assertion: no newly enqueued job may
// satisfy the active constraints. Count constraints are rejected.
func (m *Matcher) DoesNotMatch(block any) (bool, error) {
	ok, err := m.evaluate(block, true)
	if err != nil {
		return false, err
	}
	return ok, nil
}

func (m *Matcher) evaluate(block any, negated bool) (bool, error) {
	// Configuration errors surface before the block executes.
	if m.err != nil {
		return false, m.err
	}
	if m.evaluated {
		return false, fmt.Errorf("%w: matcher already evaluated, create a fresh one per assertion", ErrConfiguration)
	}
	if negated && m.count != 0 {
		return false, fmt.Errorf("%w: a count cannot be combined with a negated assertion", ErrConfiguration)
	}
	run, err := asBlock(block)
	if err != nil {
		return false, err
	}
	m.evaluated = true

	before := m.queue.ListJobs(m.jobType)
	result := run()

	if m.argsFn != nil {
		produced := m.argsFn(result)
		args, err := asSequence(produced)
		if err != nil {
			return false, err
		}
		m.resolvedArgs = normalizeArgs(args)
		m.argsResolved = true
		m.hasArgs = true
		m.args = m.resolvedArgs
	}

	after := m.queue.ListJobs(m.jobType)
	enqueued := subtract(after, before)
	m.fresh = len(enqueued)
	m.observed = len(m.filter(enqueued))

	if negated {
		return m.observed == 0, nil
	}

	want := m.count
	if want == 0 {
		want = 1
	}
	return m.observed == want, nil
}

func (m *Matcher) fail(msg string) *Matcher {
	// keep the first misuse, later calls cannot repair it
	if m.err == nil {
		m.err = fmt.Errorf("%w: %s", ErrConfiguration, msg)
	}
	return m
}

func asBlock(block any) (func() any, error) {
	switch fn := block.(type) {
	case func():
		return func() any {
			fn()
			return nil
		}, nil
	case func() any:
		return fn, nil
	default:
		return nil, fmt.Errorf("%w: only block expectations are supported, got %T instead of func() or func() any", ErrConfiguration, block)
	}
}

// subtract returns the records of after that are not in before, by pointer
// identity, preserving relative order.
func subtract(after, before []*queue.Record) []*queue.Record {
	seen := make(map[*queue.Record]struct{}, len(before))
	for _, record := range before {
		seen[record] = struct{}{}
	}

	var fresh []*queue.Record
	for _, record := range after {
		if _, ok := seen[record]; !ok {
			fresh = append(fresh, record)
		}
	}
	return fresh
}
