// Package timemath evaluates relative time expressions such as
// "now()+10d+12h" or "now()-1mon/d" into absolute UTC timestamps. An
// expression is the literal marker now(), followed by zero or more
// signed offsets (units s, m, h, d, mon, y), optionally followed by a
// "/" rounding suffix naming a single unit.
//
// Parsing is total before evaluation begins: a structurally invalid
// expression never produces a timestamp. Evaluation applies the
// offsets in order with calendar-aware arithmetic in UTC and then
// applies the optional rounding step.
package timemath

import (
	"time"

	"github.com/shibukawa/timemath/evaluator"
	"github.com/shibukawa/timemath/tokenizer"
)

type options struct {
	clock  Clock
	now    time.Time
	hasNow bool
}

// Option customizes a Parse call.
type Option func(*options)

// WithNow fixes the base time instead of reading the clock. The zero
// time is a valid base.
func WithNow(now time.Time) Option {
	return func(o *options) {
		o.now = now
		o.hasNow = true
	}
}

// WithClock replaces the system clock used when no base time is given.
func WithClock(clock Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// Parse evaluates a relative time expression and returns the resulting
// absolute UTC timestamp. The base time is read from the clock exactly
// once per call unless WithNow supplies it; everything else is pure.
func Parse(expression string, opts ...Option) (time.Time, error) {
	o := options{clock: systemClock{}}
	for _, opt := range opts {
		opt(&o)
	}

	expr, err := tokenizer.Tokenize(expression)
	if err != nil {
		return time.Time{}, err
	}

	base := o.now
	if !o.hasNow {
		base = o.clock.Now()
	}

	return evaluator.Evaluate(base.UTC(), expr), nil
}
