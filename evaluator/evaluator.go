// Package evaluator applies parsed offset chains and rounding to an
// absolute base time. All arithmetic happens in UTC on immutable
// time.Time values; no input is ever mutated.
package evaluator

import (
	"time"

	"github.com/shibukawa/timemath/tokenizer"
)

// Apply shifts base by each offset in sequence order and returns the
// resulting instant. Second, minute and hour offsets are exact
// durations (UTC has no DST); day, month and year offsets use calendar
// field arithmetic with Go's normalization, so overflowing fields roll
// forward (Jan 31 +1mon lands in early March on non-leap years).
func Apply(base time.Time, offsets []tokenizer.Offset) time.Time {
	t := base.UTC()
	for _, o := range offsets {
		n := o.Sign * o.Magnitude
		switch o.Unit {
		case tokenizer.UnitSecond:
			t = t.Add(time.Duration(n) * time.Second)
		case tokenizer.UnitMinute:
			t = t.Add(time.Duration(n) * time.Minute)
		case tokenizer.UnitHour:
			t = t.Add(time.Duration(n) * time.Hour)
		case tokenizer.UnitDay:
			t = t.AddDate(0, 0, n)
		case tokenizer.UnitMonth:
			t = t.AddDate(0, n, 0)
		case tokenizer.UnitYear:
			t = t.AddDate(n, 0, 0)
		}
	}
	return t
}

// Round snaps t to the nearest boundary of unit: a half-up tie-break
// on the next finer field, then all finer fields zeroed. Overflow
// cascades through time.Date normalization, so rounding Dec 31 up by a
// day rolls into the next year.
func Round(t time.Time, unit tokenizer.Unit) time.Time {
	t = t.UTC()
	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	switch unit {
	case tokenizer.UnitSecond:
		if t.Nanosecond() >= 500_000_000 {
			sec++
		}
		return time.Date(year, month, day, hour, min, sec, 0, time.UTC)
	case tokenizer.UnitMinute:
		if sec >= 30 {
			min++
		}
		return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
	case tokenizer.UnitHour:
		if min >= 30 {
			hour++
		}
		return time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
	case tokenizer.UnitDay:
		if hour >= 12 {
			day++
		}
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	case tokenizer.UnitMonth:
		if day > 15 {
			month++
		}
		return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	case tokenizer.UnitYear:
		if month >= time.July {
			year++
		}
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	return t
}

// Evaluate runs the full pipeline for a parsed expression: offsets in
// order, then the optional rounding step.
func Evaluate(base time.Time, expr *tokenizer.Expression) time.Time {
	t := Apply(base, expr.Offsets)
	if expr.HasRound {
		t = Round(t, expr.RoundTo)
	}
	return t
}
