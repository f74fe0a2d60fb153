// SPDX-License-Identifier: MIT
// Package matrix - elementwise and scalar operations on Dense.
//
// Purpose:
//   - In-place kernels (Add/Sub/Scale) that mutate only the receiver.
//   - Non-mutating counterparts (Plus/Minus/ScaledBy/ScaleBy) built as
//     "clone the receiver, then apply the in-place kernel".
//
// Contract:
//   - Shape checks run before the first write; on error the receiver is untouched.
//   - Equality is exact (==) per element, with no epsilon tolerance.
//   - Scaling never fails; NaN/±Inf propagate under IEEE-754 rules.

package matrix

// Equal reports whether other has the same shape and exactly equal elements.
// Returns false immediately on shape mismatch or a nil operand.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense) Equal(other *Dense) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for idx := range m.data {
		if m.data[idx] != other.data[idx] {
			return false
		}
	}

	return true
}

// addSub computes m = m + sign*other elementwise for sign ∈ {+1, -1}.
// MAIN DESCRIPTION:
//   - Shared in-place kernel behind Add and Sub.
//
// Implementation:
//   - Stage 1: ValidateSameShape(m, other).
//   - Stage 2: single flat loop 0..n-1 over both buffers.
//
// Behavior highlights:
//   - other is only read; m == other is legal (m.Add(m) doubles every element).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opTag).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) addSub(other *Dense, sign float64, opTag string) error {
	if err := ValidateSameShape(m, other); err != nil {
		return matrixErrorf(opTag, err)
	}
	for idx := range m.data {
		m.data[idx] += sign * other.data[idx]
	}

	return nil
}

// Add performs m += other in place.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Dense) Add(other *Dense) error { return m.addSub(other, +1, opAdd) }

// Sub performs m -= other in place.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Dense) Sub(other *Dense) error { return m.addSub(other, -1, opSub) }

// Scale multiplies every element by f in place (m *= f).
// Complexity: Time O(r*c), Space O(1).
func (m *Dense) Scale(f float64) {
	for idx := range m.data {
		m.data[idx] *= f
	}
}

// Plus returns m + other as a new matrix; neither operand is modified.
func (m *Dense) Plus(other *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	res := m.Clone()
	if err := res.Add(other); err != nil {
		return nil, err
	}

	return res, nil
}

// Minus returns m - other as a new matrix; neither operand is modified.
func (m *Dense) Minus(other *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	res := m.Clone()
	if err := res.Sub(other); err != nil {
		return nil, err
	}

	return res, nil
}

// ScaledBy returns m * f as a new matrix.
func (m *Dense) ScaledBy(f float64) *Dense {
	res := m.Clone()
	res.Scale(f)

	return res
}

// ScaleBy returns f * m as a new matrix. Scalar multiplication commutes, so
// ScaleBy(f, m) always equals m.ScaledBy(f).
func ScaleBy(f float64, m *Dense) *Dense {
	return m.ScaledBy(f)
}
