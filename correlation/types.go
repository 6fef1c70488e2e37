// SPDX-License-Identifier: MIT

package correlation

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"
)

var (
	// ErrTooFewSeries indicates fewer than two series.
	ErrTooFewSeries = errors.New("correlation: need at least two series")

	// ErrDuplicateSymbol indicates an empty or repeated Series.Symbol.
	ErrDuplicateSymbol = errors.New("correlation: empty or duplicate symbol")

	// ErrLengthMismatch indicates series of different lengths.
	ErrLengthMismatch = errors.New("correlation: series lengths differ")

	// ErrTooFewObservations indicates too short series for the chosen mode.
	ErrTooFewObservations = errors.New("correlation: too few observations")

	// ErrNonFinite indicates a NaN or ±Inf price.
	ErrNonFinite = errors.New("correlation: non-finite price")

	// ErrNonPositivePrice indicates a price ≤ 0 in returns mode.
	ErrNonPositivePrice = errors.New("correlation: non-positive price")

	// ErrUnknownSymbol indicates a query for a symbol not in the result.
	ErrUnknownSymbol = errors.New("correlation: unknown symbol")

	// ErrInvalidThreshold indicates a negative, NaN or ≥ 1 network threshold.
	ErrInvalidThreshold = errors.New("correlation: threshold must be in [0, 1)")
)

const (
	// DefaultReturns correlates price levels.
	DefaultReturns = false

	panicLoggerNil = "correlation: WithLogger: logger must not be nil"
)

// Series is one named price path. Observations are aligned by position.
type Series struct {
	Symbol string
	Prices []float64
}

// Options configures Pairwise.
type Options struct {
	Returns bool
	Logger  logrus.FieldLogger
}

// Option is a functional option for Pairwise.
type Option func(*Options)

// DefaultOptions returns levels mode with a discarding logger.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{Returns: DefaultReturns, Logger: l}
}

// WithReturns correlates simple returns instead of price levels.
func WithReturns() Option {
	return func(o *Options) { o.Returns = true }
}

// WithLogger routes debug traces to l. Panics if l is nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.Logger = l }
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Pair is one off-diagonal entry of a Result.
type Pair struct {
	A, B string
	Rho  float64
}
