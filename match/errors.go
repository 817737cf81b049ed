package match

import "errors"

var (
	// ErrConfiguration marks misuse of the matcher itself: conflicting
	// options, a count combined with a negated assertion, or a non-block
	// actual. Configuration errors surface before the asserted block runs.
	ErrConfiguration = errors.New("matcher configuration error")

	// ErrContract marks a deferred-argument function that produced
	// something other than an ordered sequence.
	ErrContract = errors.New("matcher contract violation")
)
