// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce the numeric policy (optional rejection of NaN/Inf) from one flag per instance.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Diag: O(n).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxApply = "Apply" // method tag used in error wrappers
	ctxRows  = "NewDenseFromRows"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps a sentinel with the Dense method name and coordinates:
// "Dense.<method>(row,col): <sentinel>".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set and Apply.
type Dense struct {
	r, c           int       // row and column counts (zero only via internal constructors)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and set the default numeric policy.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// NewDenseFromRows builds a Dense from a rectangular slice of rows (copying).
//
// Errors:
//   - ErrInvalidDimensions for an empty input or an empty first row.
//   - ErrDimensionMismatch for ragged rows.
//   - ErrNaNInf for non-finite values (default policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxRows, ErrInvalidDimensions)
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxRows, err)
	}

	var i, j int
	for i = 0; i < m.r; i++ {
		if len(rows[i]) != m.c {
			return nil, fmt.Errorf("%s: row %d: %w", ctxRows, i, ErrDimensionMismatch)
		}
		for j = 0; j < m.c; j++ {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, fmt.Errorf("%s: %w", ctxRows, err)
			}
		}
	}

	return m, nil
}

// newDenseZeroOK is an internal constructor that allows rows==0 or cols==0
// (the Laplacian of an empty graph is a legal 0×0 matrix).
func newDenseZeroOK(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// newDenseWithPolicy constructs Dense with strict shape validation and an
// explicit numeric policy.
func newDenseWithPolicy(rows, cols int, validateNaNInf bool) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	m.validateNaNInf = validateNaNInf

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf bounds-checks (row,col) and returns the row-major offset.
// The sentinel is returned bare; At/Set add method context.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange for invalid indices.
//   - ErrNaNInf for NaN/±Inf when the numeric policy is enabled.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// Diag returns a copy of the main diagonal (length min(r,c)).
// Complexity: O(min(r,c)).
func (m *Dense) Diag() []float64 {
	n := m.r
	if m.c < n {
		n = m.c
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = m.data[i*m.c+i]
	}

	return out
}

// RawRow returns a copy of row i, or nil when i is out of range.
func (m *Dense) RawRow(i int) []float64 {
	if i < 0 || i >= m.r {
		return nil
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out
}

// String renders one bracketed, comma-separated line per row (%g).
// Intended for logs and debugging, not hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Visiting stops early when f returns false.
// Complexity: O(r*c), no allocations.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in place, row-major.
//
// Behavior highlights:
//   - Respects validateNaNInf; the first non-finite result aborts with
//     ErrNaNInf and elements written before it stay updated.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && (math.IsNaN(nv) || math.IsInf(nv, 0)) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}
