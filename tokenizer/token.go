package tokenizer

import (
	"errors"
	"strconv"
)

// Sentinel errors
var (
	ErrMissingMarker    = errors.New("expression must start with now()")
	ErrSyntax           = errors.New("malformed offset expression")
	ErrInvalidRounding  = errors.New("invalid rounding unit")
	ErrInvalidMagnitude = errors.New("invalid offset magnitude")
)

// Unit represents a calendar unit used by offsets and rounding.
type Unit int

const (
	UnitSecond Unit = iota
	UnitMinute
	UnitHour
	UnitDay
	UnitMonth
	UnitYear
)

// String returns the string representation of Unit
func (u Unit) String() string {
	switch u {
	case UnitSecond:
		return "second"
	case UnitMinute:
		return "minute"
	case UnitHour:
		return "hour"
	case UnitDay:
		return "day"
	case UnitMonth:
		return "month"
	case UnitYear:
		return "year"
	default:
		return "unknown"
	}
}

// Code returns the expression code for Unit ("s", "m", "h", "d", "mon", "y").
func (u Unit) Code() string {
	switch u {
	case UnitSecond:
		return "s"
	case UnitMinute:
		return "m"
	case UnitHour:
		return "h"
	case UnitDay:
		return "d"
	case UnitMonth:
		return "mon"
	case UnitYear:
		return "y"
	default:
		return "?"
	}
}

// Position represents a byte position inside the expression string.
// Expressions are single-line, so only the offset is tracked.
type Position struct {
	Offset int
}

// Offset is one signed, unit-tagged magnitude extracted from the
// expression tail. Sign is +1 or -1, Magnitude is non-negative.
type Offset struct {
	Sign      int
	Magnitude int
	Unit      Unit
	Position  Position
}

// String returns the canonical code form of the offset (e.g. "+10d").
func (o Offset) String() string {
	sign := "+"
	if o.Sign < 0 {
		sign = "-"
	}
	return sign + strconv.Itoa(o.Magnitude) + o.Unit.Code()
}

// Expression is the parsed form of a relative time expression: an
// ordered offset chain plus an optional rounding unit. Offset order is
// preserved because calendar arithmetic does not commute across month
// and day boundaries.
type Expression struct {
	Offsets  []Offset
	RoundTo  Unit
	HasRound bool
}
