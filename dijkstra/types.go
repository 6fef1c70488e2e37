// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/kirchhoff/core"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrEmptySource indicates that the source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadLength indicates a length function result that is ≤ 0, NaN or ±Inf.
	ErrBadLength = errors.New("dijkstra: edge length must be positive and finite")

	// ErrBadMaxDistance indicates a negative or NaN distance cap.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// LengthFn maps an edge to its traversal length.
type LengthFn func(e *core.Edge) float64

// ResistanceLength is the default LengthFn: 1/conductance.
func ResistanceLength(e *core.Edge) float64 { return 1 / e.Weight }

// WeightLength uses the edge weight itself as its length.
func WeightLength(e *core.Edge) float64 { return e.Weight }

// Options configures Dijkstra.
//
// Source      – starting vertex ID (non-empty and present in the graph).
// ReturnPath  – if true, the predecessor map is returned; otherwise nil.
// MaxDistance – vertices farther than this are left at +Inf. Default +Inf.
// Length      – edge length; ResistanceLength by default.
type Options struct {
	Source      string
	ReturnPath  bool
	MaxDistance float64
	Length      LengthFn
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// WithReturnPath enables the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance caps exploration. Panics on negative or NaN max.
func WithMaxDistance(max float64) Option {
	if math.IsNaN(max) || max < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) { o.MaxDistance = max }
}

// WithLength replaces the edge length function. Panics on nil fn.
func WithLength(fn LengthFn) Option {
	if fn == nil {
		panic("dijkstra: WithLength: fn must be non-nil")
	}

	return func(o *Options) { o.Length = fn }
}

// DefaultOptions returns defaults for the given source: no path, no cap,
// resistance lengths.
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		MaxDistance: math.Inf(1),
		Length:      ResistanceLength,
	}
}
