package calculator

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	calcerrors "calc/internal/errors"
)

// Recorder receives the outcome of each calculation.
type Recorder interface {
	ObserveEvaluation(operator, outcome string, d time.Duration)
}

// Config controls how results are written.
type Config struct {
	Precision int  // significant digits, -1 for shortest
	Newline   bool // terminate the output line with '\n'
}

// DefaultConfig returns the settings used when no configuration is given.
func DefaultConfig() Config {
	return Config{Precision: DefaultPrecision, Newline: true}
}

// Result describes one Run.
type Result struct {
	Request Request
	Value   float64
	Err     error // calculation failure, already reported as ErrorText
	Output  string
}

// Calculator reads one request, evaluates it and writes exactly one line.
type Calculator struct {
	cfg      Config
	logger   *slog.Logger
	recorder Recorder
}

// New creates a Calculator. A nil logger uses slog.Default; a nil recorder
// disables metrics.
func New(cfg Config, logger *slog.Logger, recorder Recorder) *Calculator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Calculator{
		cfg:      cfg,
		logger:   logger,
		recorder: recorder,
	}
}

// Run performs Read, Evaluate and Write. Calculation failures are written as
// ErrorText and returned in Result.Err; the returned error is set only when
// writing to w fails.
func (c *Calculator) Run(r io.Reader, w io.Writer) (Result, error) {
	start := time.Now()
	res := c.compute(r)

	outcome := calcerrors.Outcome(res.Err)
	if res.Err != nil {
		c.logger.Debug("calculation failed", "outcome", outcome, "error", res.Err)
		res.Output = ErrorText
	} else {
		res.Output = FormatResult(res.Value, c.cfg.Precision)
	}

	if c.recorder != nil {
		c.recorder.ObserveEvaluation(res.Request.Op.Label(), outcome, time.Since(start))
	}

	line := res.Output
	if c.cfg.Newline {
		line += "\n"
	}
	if _, err := io.WriteString(w, line); err != nil {
		return res, fmt.Errorf("failed to write result: %w", err)
	}
	return res, nil
}

func (c *Calculator) compute(r io.Reader) Result {
	req, err := Read(r)
	res := Result{Request: req}
	if err != nil {
		res.Err = err
		return res
	}
	c.logger.Debug("evaluating", "op", req.Op.String(), "left", req.Left, "right", req.Right)

	res.Value, res.Err = Evaluate(req.Op, req.Left, req.Right)
	return res
}
