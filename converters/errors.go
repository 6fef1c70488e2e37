// SPDX-License-Identifier: MIT

package converters

import (
	"errors"
	"fmt"
)

var (
	// ErrNilGraph indicates a nil source or target graph.
	ErrNilGraph = errors.New("converters: graph is nil")

	// ErrDecode indicates malformed input (YAML or DOT syntax).
	ErrDecode = errors.New("converters: cannot decode input")

	// ErrInvalidDocument indicates well-formed input that does not describe
	// a valid graph (bad weight, loop, duplicate edge in a simple graph, ...).
	ErrInvalidDocument = errors.New("converters: invalid graph document")
)

// convErrorf prefixes err with the operation tag, keeping errors.Is working.
func convErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
