package match

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jobwatch/jobwatch/queue"
	gomegatypes "github.com/onsi/gomega/types"
)

// filter keeps the records that satisfy every active constraint.
func (m *Matcher) filter(records []*queue.Record) []*queue.Record {
	var kept []*queue.Record
	for _, record := range records {
		if m.argumentsMatch(record) && m.scheduleMatches(record) {
			kept = append(kept, record)
		}
	}
	return kept
}

func (m *Matcher) argumentsMatch(record *queue.Record) bool {
	if !m.hasArgs {
		return true
	}
	if len(record.Args) != len(m.args) {
		return false
	}
	actual := normalizeArgs(record.Args)
	for i, expected := range m.args {
		if !matchValue(expected, actual[i]) {
			return false
		}
	}
	return true
}

func (m *Matcher) scheduleMatches(record *queue.Record) bool {
	if m.at == nil && m.in == nil {
		return true
	}
	// a job without a scheduled time never satisfies At or In
	if record.ScheduledAt == nil {
		return false
	}

	if m.in != nil {
		expected := m.clock.Now().Add(*m.in)
		return sameSecond(*record.ScheduledAt, expected)
	}

	if at, ok := m.at.(time.Time); ok {
		return sameSecond(*record.ScheduledAt, at)
	}
	return matchValue(m.at, *record.ScheduledAt)
}

// sameSecond compares two instants with the sub-second component truncated
// away, tolerating scheduler timestamp imprecision and lossy serialization.
func sameSecond(a, b time.Time) bool {
	return a.Truncate(time.Second).Equal(b.Truncate(time.Second))
}

// matchValue resolves one expectation against one candidate: a Gomega
// matcher is asked directly, anything else is compared by deep equality
// after normalization. Time fields and argument positions share this
// resolution, so predicates compose anywhere.
func matchValue(expected, actual any) bool {
	if predicate, ok := expected.(gomegatypes.GomegaMatcher); ok {
		matched, err := predicate.Match(actual)
		return err == nil && matched
	}
	return cmp.Equal(normalizeValue(expected), normalizeValue(actual))
}

// asSequence validates that a deferred-argument function produced an ordered
// sequence and converts it to []any.
func asSequence(v any) ([]any, error) {
	if args, ok := v.([]any); ok {
		return args, nil
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, fmt.Errorf("%w: block is expected to return an ordered sequence, got %T", ErrContract, v)
	}

	args := make([]any, rv.Len())
	for i := range args {
		args[i] = rv.Index(i).Interface()
	}
	return args, nil
}

// normalizeArgs copies the argument list and canonicalizes a trailing map
// argument (keyword style) to string keys, so differently spelled keys
// compare equal.
func normalizeArgs(args []any) []any {
	out := make([]any, len(args))
	copy(out, args)

	if n := len(out); n > 0 {
		if last := reflect.ValueOf(out[n-1]); last.IsValid() && last.Kind() == reflect.Map {
			out[n-1] = normalizeValue(out[n-1])
		}
	}
	return out
}

// normalizeValue rewrites maps to string keys, recursively through map
// values and sequence elements. Gomega matchers pass through untouched so
// predicate positions keep their behaviour.
func normalizeValue(v any) any {
	if _, ok := v.(gomegatypes.GomegaMatcher); ok {
		return v
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return v
	}

	switch rv.Kind() {
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = normalizeValue(iter.Value().Interface())
		}
		return out
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return v
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = normalizeValue(rv.Index(i).Interface())
		}
		return out
	default:
		return v
	}
}
