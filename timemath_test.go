package timemath

import (
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
)

var base = time.Date(2025, time.January, 8, 9, 0, 0, 0, time.UTC)

func TestParseScenarios(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Time
	}{
		{input: "now()", expected: base},
		{input: "now()+1d", expected: time.Date(2025, time.January, 9, 9, 0, 0, 0, time.UTC)},
		{input: "now()+10d+12h", expected: time.Date(2025, time.January, 18, 21, 0, 0, 0, time.UTC)},
		{input: "now()-2d+12h", expected: time.Date(2025, time.January, 6, 21, 0, 0, 0, time.UTC)},
		{input: "now()+1mon", expected: time.Date(2025, time.February, 8, 9, 0, 0, 0, time.UTC)},
		{input: "now()+1y", expected: time.Date(2026, time.January, 8, 9, 0, 0, 0, time.UTC)},
		{input: "now()/d", expected: time.Date(2025, time.January, 8, 0, 0, 0, 0, time.UTC)},
		{input: "now()+12h/d", expected: time.Date(2025, time.January, 9, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input, WithNow(base))
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseRejectsInvalidExpressions(t *testing.T) {
	tests := []struct {
		input    string
		expected error
	}{
		{input: "later()+1d", expected: ErrMissingMarker},
		{input: "now()+1dXYZ", expected: ErrSyntax},
		{input: "now()+1d/", expected: ErrInvalidRounding},
		{input: "now()1d", expected: ErrSyntax},
		{input: "", expected: ErrMissingMarker},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input, WithNow(base))
			assert.IsError(t, err, tt.expected)
			assert.True(t, got.IsZero())
		})
	}
}

func TestParseResidueNamedInError(t *testing.T) {
	_, err := Parse("now()+1dXYZ", WithNow(base))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `"XYZ"`)
}

func TestParseIsDeterministic(t *testing.T) {
	first, err := Parse("now()+3mon-10d+4h/m", WithNow(base))
	assert.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := Parse("now()+3mon-10d+4h/m", WithNow(base))
		assert.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestParseNoOpPreservesResolution(t *testing.T) {
	withNanos := base.Add(123456789 * time.Nanosecond)
	got, err := Parse("now()", WithNow(withNanos))
	assert.NoError(t, err)
	assert.Equal(t, withNanos, got)
}

func TestParseWithClock(t *testing.T) {
	clock := FixedClock{Time: base}
	got, err := Parse("now()+1d", WithClock(clock))
	assert.NoError(t, err)
	assert.Equal(t, base.AddDate(0, 0, 1), got)
}

func TestParseWithNowOverridesClock(t *testing.T) {
	clock := FixedClock{Time: base.AddDate(1, 0, 0)}
	got, err := Parse("now()", WithNow(base), WithClock(clock))
	assert.NoError(t, err)
	assert.Equal(t, base, got)
}

func TestParseNormalizesBaseToUTC(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	local := time.Date(2025, time.January, 8, 18, 0, 0, 0, tokyo)

	got, err := Parse("now()", WithNow(local))
	assert.NoError(t, err)
	assert.Equal(t, time.UTC, got.Location())
	assert.True(t, got.Equal(local))
}

func TestParseDayRoundTrip(t *testing.T) {
	got, err := Parse("now()+37d-37d", WithNow(base))
	assert.NoError(t, err)
	assert.Equal(t, base, got)
}
