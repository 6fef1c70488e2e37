// SPDX-License-Identifier: MIT

package resistance

import (
	"errors"
	"io"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/kirchhoff/matrix"
)

// Sentinel errors returned by the resistance package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("resistance: graph is nil")

	// ErrEmptyGraph indicates a graph without vertices; no Laplacian exists.
	ErrEmptyGraph = errors.New("resistance: graph has no vertices")

	// ErrDisconnected indicates more than one connected component while
	// the computation runs in strict mode (the default).
	ErrDisconnected = errors.New("resistance: graph is not connected")

	// ErrNilResult indicates a nil or incomplete *KirchhoffResult.
	ErrNilResult = errors.New("resistance: nil Kirchhoff result")

	// ErrDimensionMismatch indicates that the graph's vertex set no longer
	// matches the vertex order of the result it is combined with.
	ErrDimensionMismatch = errors.New("resistance: graph does not match result dimensions")

	// ErrVertexNotFound indicates that a queried vertex is not indexed by the result.
	ErrVertexNotFound = errors.New("resistance: vertex not found")
)

// Defaults.
const (
	// DefaultTolerance is the relative singular-value cutoff of the pseudoinverse.
	DefaultTolerance = matrix.DefaultTolerance

	// DefaultEpsilon is the structural tolerance of Laplacian checks.
	DefaultEpsilon = matrix.DefaultEpsilon

	// DefaultAllowDisconnected keeps strict connectivity validation on.
	DefaultAllowDisconnected = false
)

const (
	panicToleranceInvalid = "resistance: WithTolerance: rcond must be finite, non-negative"
	panicEpsilonInvalid   = "resistance: WithEpsilon: eps must be finite, non-negative"
	panicLoggerNil        = "resistance: WithLogger: logger must not be nil"
)

// Options configures Kirchhoff and Analyze.
//
// Tolerance         – relative singular-value cutoff rcond (≥ 0).
// Epsilon           – structural tolerance for Laplacian validation (≥ 0).
// AllowDisconnected – compute on disconnected graphs; Kf then has no
//
//	resistance-distance meaning (blocks do not see each other).
//
// Logger            – debug sink; discards by default.
type Options struct {
	Tolerance         float64
	Epsilon           float64
	AllowDisconnected bool
	Logger            logrus.FieldLogger
}

// Option represents a functional option for configuring the computations.
type Option func(*Options)

// DefaultOptions returns the documented defaults with a discarding logger.
func DefaultOptions() Options {
	return Options{
		Tolerance:         DefaultTolerance,
		Epsilon:           DefaultEpsilon,
		AllowDisconnected: DefaultAllowDisconnected,
		Logger:            discardLogger(),
	}
}

// WithTolerance sets the pseudoinverse cutoff rcond.
// Panics if rcond is negative, NaN or ±Inf.
func WithTolerance(rcond float64) Option {
	if math.IsNaN(rcond) || math.IsInf(rcond, 0) || rcond < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.Tolerance = rcond }
}

// WithEpsilon sets the structural tolerance of the Laplacian checks.
// Panics if eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.Epsilon = eps }
}

// WithAllowDisconnected switches off the connectivity precondition.
func WithAllowDisconnected() Option {
	return func(o *Options) { o.AllowDisconnected = true }
}

// WithLogger routes debug traces to l (e.g. a *logrus.Entry carrying request fields).
// Panics if l is nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.Logger = l }
}

// gatherOptions applies opts on top of DefaultOptions, last writer wins.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// matrixOptions translates the numeric knobs for the matrix package.
func (o Options) matrixOptions() []matrix.Option {
	return []matrix.Option{
		matrix.WithTolerance(o.Tolerance),
		matrix.WithEpsilon(o.Epsilon),
	}
}

// discardLogger returns a logrus logger writing nowhere.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// KirchhoffResult bundles the Kirchhoff index with the matrices it was
// derived from. All fields are freshly allocated per call.
type KirchhoffResult struct {
	// Index is Kf = n · trace(L⁺).
	Index float64

	// Laplacian is L with its vertex index (graph insertion order).
	Laplacian *matrix.LaplacianMatrix

	// Pseudoinverse is L⁺, indexed like Laplacian.
	Pseudoinverse *matrix.Dense

	// Rank is the numerical rank of L (n − components on exact input).
	Rank int

	// Components is the number of connected components of the source graph.
	Components int
}

// Analysis extends KirchhoffResult with the hitting-time matrix and volume.
type Analysis struct {
	*KirchhoffResult

	// Hitting is H with H[i,j] = Vol·(L⁺[j,j] − L⁺[i,j]) and zero diagonal.
	Hitting *matrix.Dense

	// Volume is Vol(G), the sum of weighted degrees.
	Volume float64
}
