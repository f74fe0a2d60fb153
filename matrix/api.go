// SPDX-License-Identifier: MIT
// Package matrix - public constructors and operator-style facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for building matrices.
//   - Map the conventional operator set onto named methods:
//
//	a + b   → a.Plus(b)          a += b → a.Add(b)
//	a - b   → a.Minus(b)         a -= b → a.Sub(b)
//	a * f   → a.ScaledBy(f)      a *= f → a.Scale(f)
//	f * a   → ScaleBy(f, a)
//	a * b   → a.Times(b)         a *= b → a.Mul(b)
//	a == b  → a.Equal(b)         a = b  → a.Assign(b)
//	a(i,j)  → a.Ref(i,j), a.At(i,j), a.Set(i,j,v)

package matrix

import "fmt"

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%s(%d): %w", opIdentity, n, ErrInvalidDimensions)
	}
	I := newDense(n, n)
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// NewFromRows builds a Dense from a slice of equally long rows.
// MAIN DESCRIPTION:
//   - Literal constructor used by fixtures and worksheet input.
//
// Implementation:
//   - Stage 1: reject empty input (ErrInvalidDimensions).
//   - Stage 2: reject ragged rows (ErrDimensionMismatch).
//   - Stage 3: copy values row by row into a fresh buffer.
//
// Behavior highlights:
//   - The input slices are never retained.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m := newDense(r, c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", opFromRows, i, len(row), c, ErrDimensionMismatch)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// ToRows returns the contents as a freshly allocated slice of rows.
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}
