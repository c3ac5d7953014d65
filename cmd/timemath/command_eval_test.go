package main

import (
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"

	"github.com/shibukawa/timemath"
)

func TestFormatResult(t *testing.T) {
	ts := time.Date(2025, time.January, 8, 9, 0, 0, 500_000_000, time.UTC)

	tests := []struct {
		name     string
		format   string
		expected string
	}{
		{name: "rfc3339", format: timemath.FormatRFC3339, expected: "2025-01-08T09:00:00Z"},
		{name: "rfc3339nano", format: timemath.FormatRFC3339Nano, expected: "2025-01-08T09:00:00.5Z"},
		{name: "unix", format: timemath.FormatUnix, expected: "1736326800"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatResult(ts, tt.format)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatResultUnknownFormat(t *testing.T) {
	_, err := formatResult(time.Now(), "sundial")
	assert.IsError(t, err, ErrUnknownFormat)
}

func TestParseOptionsFlagWinsOverConfig(t *testing.T) {
	cmd := &EvalCmd{Now: "2030-06-01T00:00:00Z"}
	config := &timemath.Config{Now: "2025-01-08T09:00:00Z"}

	opts, err := cmd.parseOptions(config)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(opts))

	got, err := timemath.Parse("now()", opts...)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2030, time.June, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestParseOptionsUsesConfigBase(t *testing.T) {
	cmd := &EvalCmd{}
	config := &timemath.Config{Now: "2025-01-08T09:00:00Z"}

	opts, err := cmd.parseOptions(config)
	assert.NoError(t, err)

	got, err := timemath.Parse("now()+1d", opts...)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.January, 9, 9, 0, 0, 0, time.UTC), got)
}

func TestParseOptionsRejectsBadFlag(t *testing.T) {
	cmd := &EvalCmd{Now: "yesterday"}

	_, err := cmd.parseOptions(&timemath.Config{})
	assert.IsError(t, err, timemath.ErrInvalidBaseTime)
}

func TestParseOptionsEmptyMeansClock(t *testing.T) {
	cmd := &EvalCmd{}

	opts, err := cmd.parseOptions(&timemath.Config{})
	assert.NoError(t, err)
	assert.Equal(t, 0, len(opts))
}
