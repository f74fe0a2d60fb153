// SPDX-License-Identifier: MIT
// Package matrix - matrix product, transpose, minors, determinant,
// complements (cofactors) and inverse on Dense.
//
// Purpose:
//   - Keep every kernel on the flat row-major buffer (offset = i*c + j).
//   - Follow the textbook definitions: cofactor expansion for the determinant
//     and adjugate/determinant for the inverse.
//
// Notes:
//   - Determinant is O(n!) by construction (recursive Laplace expansion).
//     It is exact for small integer-valued inputs, which is what the
//     equality-based contracts of this package rely on.
//   - Singularity is detected with an exact det == 0 comparison.

package matrix

// ZeroSum is the initial value for dot-product and determinant accumulation.
const ZeroSum = 0.0

// product computes a·b into a freshly allocated a.r×b.c matrix.
// Callers guarantee a.c == b.r. Loop order i→j→k; each cell sums k ascending.
// Complexity: Time O(a.r*a.c*b.c), Space O(a.r*b.c).
func product(a, b *Dense) *Dense {
	res := newDense(a.r, b.c)
	var (
		i, j, k    int
		rowA, rowR int
		sum        float64
	)
	for i = 0; i < a.r; i++ {
		rowA = i * a.c
		rowR = i * b.c
		for j = 0; j < b.c; j++ {
			sum = ZeroSum
			for k = 0; k < a.c; k++ {
				sum += a.data[rowA+k] * b.data[k*b.c+j]
			}
			res.data[rowR+j] = sum
		}
	}

	return res
}

// Mul replaces m with the product m·other (m *= other).
// MAIN DESCRIPTION:
//   - In-place matrix product; the receiver takes shape m.Rows()×other.Cols().
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(m, other).
//   - Stage 2: compute the product into a fresh buffer.
//   - Stage 3: swap the fresh buffer and shape into the receiver.
//
// Behavior highlights:
//   - All-or-nothing: the receiver is only touched after the product is complete.
//   - m.Mul(m) on a square matrix squares it.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (m.Cols() != other.Rows()).
//
// Complexity:
//   - Time O(r*c*other.c), Space O(r*other.c).
func (m *Dense) Mul(other *Dense) error {
	if err := ValidateMulCompatible(m, other); err != nil {
		return matrixErrorf(opMul, err)
	}
	res := product(m, other)
	m.r, m.c, m.data = res.r, res.c, res.data

	return nil
}

// Times returns m·other as a new matrix; neither operand is modified.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Dense) Times(other *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(m, other); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return product(m, other), nil
}

// Transpose returns a new c×r matrix with out(j,i) = m(i,j).
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Transpose() *Dense {
	res := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	var i, j, baseSrc int
	for i = 0; i < m.r; i++ {
		baseSrc = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[baseSrc+j]
		}
	}

	return res
}

// minor returns the (r-1)×(c-1) matrix obtained by deleting row and col.
// Precondition (guaranteed by callers): m is at least 2×2 and row/col are in range.
// Complexity: Time O(r*c), Space O((r-1)*(c-1)).
func (m *Dense) minor(row, col int) *Dense {
	res := newDense(m.r-1, m.c-1)
	dst := 0
	for i := 0; i < m.r; i++ {
		if i == row {
			continue
		}
		base := i * m.c
		for j := 0; j < m.c; j++ {
			if j == col {
				continue
			}
			res.data[dst] = m.data[base+j]
			dst++
		}
	}

	return res
}

// cofactorSign returns (-1)^(i+j).
func cofactorSign(i, j int) float64 {
	if (i+j)%2 == 0 {
		return 1
	}

	return -1
}

// Determinant returns det(m) by cofactor expansion along the first column.
// MAIN DESCRIPTION:
//   - 1×1 → the single element; 2×2 → ad − bc;
//     n>2 → Σ_i m(i,0)·(−1)^i·det(minor(i,0)).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (r != c, or the 0×0 shape left by Move).
//
// Complexity:
//   - Time O(n!), Space O(n^2) per recursion level.
func (m *Dense) Determinant() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return m.det(), nil
}

// det is the recursive kernel behind Determinant; m is square and non-empty.
func (m *Dense) det() float64 {
	switch m.r {
	case 1:
		return m.data[0]
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	}
	result := ZeroSum
	for i := 0; i < m.r; i++ {
		result += m.data[i*m.c] * cofactorSign(i, 0) * m.minor(i, 0).det()
	}

	return result
}

// Complements returns the matrix of cofactors: out(i,j) = (−1)^(i+j)·det(minor(i,j)).
// A 1×1 input yields [[1]], the cofactor of an empty minor.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: Time O(n^2 · (n-1)!), Space O(n^2).
func (m *Dense) Complements() (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opComplements, err)
	}

	return m.complements(), nil
}

// complements is the kernel behind Complements; m is square and non-empty.
func (m *Dense) complements() *Dense {
	n := m.r
	res := newDense(n, n)
	if n == 1 {
		res.data[0] = 1

		return res
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			res.data[i*n+j] = cofactorSign(i, j) * m.minor(i, j).det()
		}
	}

	return res
}

// Inverse returns m⁻¹ = adj(m) / det(m), where adj is the transposed cofactor matrix.
// MAIN DESCRIPTION:
//   - Exact-arithmetic textbook inverse; no pivoting.
//
// Implementation:
//   - Stage 1: ValidateSquare(m).
//   - Stage 2: det == 0 → ErrSingular (exact comparison).
//   - Stage 3: transpose the complements and scale by 1/det.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n^2 · (n-1)!), Space O(n^2).
func (m *Dense) Inverse() (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	d := m.det()
	if d == 0 {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}
	res := m.complements().Transpose()
	res.Scale(1.0 / d)

	return res, nil
}
