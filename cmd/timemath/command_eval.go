package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"

	"github.com/shibukawa/timemath"
)

// ErrUnknownFormat indicates an unsupported output format name.
var ErrUnknownFormat = errors.New("unknown output format")

// EvalCmd represents the eval command
type EvalCmd struct {
	Expression string `arg:"" help:"Relative time expression, e.g. 'now()+10d+12h/h'"`
	Now        string `help:"Fixed base time in RFC 3339 (overrides config)" short:"n"`
	Format     string `help:"Output format: rfc3339, rfc3339nano, unix (overrides config)" short:"f"`
}

// Run executes the eval command
func (cmd *EvalCmd) Run(ctx *Context) error {
	config, err := timemath.LoadConfig(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	opts, err := cmd.parseOptions(config)
	if err != nil {
		return err
	}

	format := config.Output.Format
	if cmd.Format != "" {
		format = cmd.Format
	}

	if ctx.Verbose {
		color.Blue("Evaluating %s", cmd.Expression)
	}

	result, err := timemath.Parse(cmd.Expression, opts...)
	if err != nil {
		return fmt.Errorf("failed to evaluate expression: %w", err)
	}

	line, err := formatResult(result, format)
	if err != nil {
		return err
	}

	fmt.Println(line)

	if ctx.Verbose {
		color.Green("Evaluation completed successfully")
	}

	return nil
}

// parseOptions resolves the base time: the --now flag wins over the
// configured base, which wins over the system clock.
func (cmd *EvalCmd) parseOptions(config *timemath.Config) ([]timemath.Option, error) {
	if cmd.Now != "" {
		base, err := time.Parse(time.RFC3339, cmd.Now)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not RFC 3339: %w", timemath.ErrInvalidBaseTime, cmd.Now, err)
		}
		return []timemath.Option{timemath.WithNow(base.UTC())}, nil
	}

	base, ok, err := config.BaseTime()
	if err != nil {
		return nil, err
	}
	if ok {
		return []timemath.Option{timemath.WithNow(base)}, nil
	}

	return nil, nil
}

// formatResult renders the evaluated timestamp in the requested format.
func formatResult(t time.Time, format string) (string, error) {
	switch format {
	case timemath.FormatRFC3339:
		return t.Format(time.RFC3339), nil
	case timemath.FormatRFC3339Nano:
		return t.Format(time.RFC3339Nano), nil
	case timemath.FormatUnix:
		return strconv.FormatInt(t.Unix(), 10), nil
	default:
		return "", fmt.Errorf("%w: %q: must be one of rfc3339, rfc3339nano, unix", ErrUnknownFormat, format)
	}
}
