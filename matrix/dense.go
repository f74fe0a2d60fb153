// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major), lifecycle & safe accessors.
//
// Purpose:
//   - Provide an exclusively owned row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Ref return errors instead of panicking.
//   - Resize in place (SetRows/SetCols) by reallocating and copying the overlapping region.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Ref: O(1); Clone: O(r*c); Move: O(1);
//     SetRows/SetCols: O(r*c) for the new shape.

package matrix

import (
	"fmt"
	"strings"
)

// Default shape produced by NewDefault.
const (
	DefaultRows = 3
	DefaultCols = 3
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is a concrete row-major matrix of float64 values.
//   - r,c hold dimensions (rows, cols); both are >= 1 for every live instance.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A Dense owns its buffer exclusively: Clone and Assign deep-copy, Move transfers.
// A single Dense must not be mutated from several goroutines at once; distinct
// instances share nothing and may be used concurrently.
type Dense struct {
	r, c int       // row and column counts (0 only after Move)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Public constructor forbids empty dimensions to avoid accidental 0×0 matrices.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", opNew, rows, cols, ErrInvalidDimensions)
	}

	return newDense(rows, cols), nil
}

// newDense allocates without validation; callers guarantee rows, cols >= 1.
func newDense(rows, cols int) *Dense {
	// make() zero-fills the buffer deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
}

// NewDefault returns the 3×3 zero matrix.
func NewDefault() *Dense {
	return newDense(DefaultRows, DefaultCols)
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set/Ref) wrap the sentinel with coordinates and method name.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
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

// Set stores v at (row, col) or returns ErrOutOfRange.
// Any float64 is accepted, including NaN and ±Inf.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Ref returns a pointer to the element at (row, col) for in-place mutation.
// MAIN DESCRIPTION:
//   - Read/write handle onto a single cell of the owned buffer.
//
// Behavior highlights:
//   - The pointer stays valid until the buffer is replaced (SetRows, SetCols,
//     Mul, Assign or Move); writes after that go to the discarded buffer.
//
// Errors:
//   - ErrOutOfRange when out of bounds.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Ref(row, col int) (*float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return nil, denseErrorf(ctxRef, row, col, err)
	}

	return &m.data[off], nil
}

// Clone returns a deep copy; mutations on either side never affect the other.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Move transfers the buffer and dimensions to a new Dense in O(1).
// The receiver is left 0×0 with no buffer; further use of it is out of
// contract (element access reports ErrOutOfRange, Determinant reports ErrNonSquare).
func (m *Dense) Move() *Dense {
	out := &Dense{r: m.r, c: m.c, data: m.data}
	m.r, m.c, m.data = 0, 0, nil

	return out
}

// Assign replaces the receiver's shape and contents with a deep copy of src.
// Self-assignment is a no-op.
func (m *Dense) Assign(src *Dense) error {
	if src == nil {
		return matrixErrorf("Dense.Assign", ErrNilMatrix)
	}
	if m == src {
		return nil
	}
	cp := make([]float64, len(src.data))
	copy(cp, src.data)
	m.r, m.c, m.data = src.r, src.c, cp

	return nil
}

// SetRows changes the row count, keeping the overlapping region.
// MAIN DESCRIPTION:
//   - Resize along the row axis into a fresh zero-filled buffer.
//
// Implementation:
//   - Stage 1: validate n > 0 and a non-empty receiver; else ErrInvalidDimensions
//     (receiver untouched).
//   - Stage 2: allocate n*c zeros and copy min(r,n) full rows.
//
// Behavior highlights:
//   - Rows added at the bottom are zero; rows beyond n are discarded.
//   - Never aliases the prior buffer.
//
// Complexity:
//   - Time O(n*c), Space O(n*c).
func (m *Dense) SetRows(n int) error {
	if n <= 0 || m.c == 0 {
		return fmt.Errorf("%s(%d) on %dx%d: %w", opSetRows, n, m.r, m.c, ErrInvalidDimensions)
	}
	m.resize(n, m.c)

	return nil
}

// SetCols changes the column count, keeping the overlapping region.
// Columns added on the right are zero; columns beyond n are discarded.
// A moved-from (0×0) receiver fails with ErrInvalidDimensions.
// Complexity: Time O(r*n), Space O(r*n).
func (m *Dense) SetCols(n int) error {
	if n <= 0 || m.r == 0 {
		return fmt.Errorf("%s(%d) on %dx%d: %w", opSetCols, n, m.r, m.c, ErrInvalidDimensions)
	}
	m.resize(m.r, n)

	return nil
}

// resize swaps in a zero-filled rows×cols buffer holding the overlap of the old one.
func (m *Dense) resize(rows, cols int) {
	buf := make([]float64, rows*cols)
	keepR, keepC := min(m.r, rows), min(m.c, cols)
	for i := 0; i < keepR; i++ {
		copy(buf[i*cols:i*cols+keepC], m.data[i*m.c:i*m.c+keepC])
	}
	m.r, m.c, m.data = rows, cols, buf
}

// String provides a readable row-wise dump for diagnostics.
// Format: one "[a, b, ...]" line per row, values printed with %g.
// Complexity: Time O(r*c).
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
