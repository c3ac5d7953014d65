package tokenizer

import (
	"fmt"
	"strconv"
	"strings"
)

// Marker is the mandatory literal prefix of every expression. It is
// matched case-sensitively and takes no arguments.
const Marker = "now()"

// RoundingDelimiter separates the offset chain from the optional
// rounding unit, as in "now()+1d/h".
const RoundingDelimiter = "/"

// unitCodes is tried in order at every scan position. Longer codes come
// first so that "mon" (month) is never consumed as "m" (minute).
var unitCodes = []struct {
	code string
	unit Unit
}{
	{"mon", UnitMonth},
	{"s", UnitSecond},
	{"m", UnitMinute},
	{"h", UnitHour},
	{"d", UnitDay},
	{"y", UnitYear},
}

// LookupUnit resolves a unit code ("s", "m", "h", "d", "mon", "y") to
// its Unit. The second return value reports whether the code is known.
func LookupUnit(code string) (Unit, bool) {
	for _, c := range unitCodes {
		if c.code == code {
			return c.unit, true
		}
	}
	return 0, false
}

// Tokenize validates a relative time expression and extracts its offset
// chain and optional rounding unit. Parsing is total: either the whole
// expression conforms to the grammar or an error is returned and
// nothing else.
func Tokenize(input string) (*Expression, error) {
	expr := strings.TrimSpace(input)

	core := expr
	result := &Expression{}
	if idx := strings.Index(expr, RoundingDelimiter); idx >= 0 {
		core = expr[:idx]
		roundCode := expr[idx+len(RoundingDelimiter):]
		unit, ok := LookupUnit(roundCode)
		if !ok {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidRounding, roundCode, idx+len(RoundingDelimiter))
		}
		result.RoundTo = unit
		result.HasRound = true
	}

	if !strings.HasPrefix(core, Marker) {
		return nil, fmt.Errorf("%w: got %q", ErrMissingMarker, core)
	}

	s := &scanner{input: core, pos: len(Marker)}
	for {
		offset, ok, err := s.scanOffset()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		result.Offsets = append(result.Offsets, offset)
	}

	// The greedy scan stopped before the end: whatever remains does not
	// form a valid offset.
	if s.pos != len(core) {
		return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrSyntax, core[s.pos:], s.pos)
	}

	return result, nil
}

// scanner walks the offset chain of an expression with a byte cursor.
type scanner struct {
	input string
	pos   int
}

// scanOffset attempts to match sign, digits, unit at the cursor. On a
// match the cursor advances past the token; otherwise the cursor is
// left untouched and ok is false.
func (s *scanner) scanOffset() (Offset, bool, error) {
	start := s.pos
	if s.pos >= len(s.input) {
		return Offset{}, false, nil
	}

	sign := 0
	switch s.input[s.pos] {
	case '+':
		sign = 1
	case '-':
		sign = -1
	default:
		return Offset{}, false, nil
	}
	s.pos++

	digitStart := s.pos
	for s.pos < len(s.input) && s.input[s.pos] >= '0' && s.input[s.pos] <= '9' {
		s.pos++
	}
	if s.pos == digitStart {
		s.pos = start
		return Offset{}, false, nil
	}
	digits := s.input[digitStart:s.pos]

	unit, ok := s.scanUnit()
	if !ok {
		s.pos = start
		return Offset{}, false, nil
	}

	magnitude, err := strconv.Atoi(digits)
	if err != nil {
		// Unreachable with a digit-only match, checked anyway.
		return Offset{}, false, fmt.Errorf("%w: %q at offset %d: %w", ErrInvalidMagnitude, digits, digitStart, err)
	}

	return Offset{
		Sign:      sign,
		Magnitude: magnitude,
		Unit:      unit,
		Position:  Position{Offset: start},
	}, true, nil
}

// scanUnit matches the longest unit code at the cursor.
func (s *scanner) scanUnit() (Unit, bool) {
	rest := s.input[s.pos:]
	for _, c := range unitCodes {
		if strings.HasPrefix(rest, c.code) {
			s.pos += len(c.code)
			return c.unit, true
		}
	}
	return 0, false
}
