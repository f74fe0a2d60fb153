// SPDX-License-Identifier: MIT
// Package matrix - interop with gonum.org/v1/gonum/mat.
//
// Both sides use row-major float64 storage, so conversion is a single copy.
// The copy keeps the exclusive-ownership rule of Dense intact.

package matrix

import (
	"fmt"
	"reflect"

	"gonum.org/v1/gonum/mat"
)

// ToGonum returns a *mat.Dense holding a copy of m.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//   - ErrInvalidDimensions when m has a zero dimension (moved-from).
//
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) ToGonum() (*mat.Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opToGonum, ErrNilMatrix)
	}
	if m.r == 0 || m.c == 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", opToGonum, m.r, m.c, ErrInvalidDimensions)
	}
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return mat.NewDense(m.r, m.c, cp), nil
}

// FromGonum copies any gonum matrix into a new Dense.
//
// Errors:
//   - ErrNilMatrix when src is nil, including a typed nil pointer.
//   - ErrInvalidDimensions when src has a zero dimension.
//
// Complexity: Time O(r*c), Space O(r*c).
func FromGonum(src mat.Matrix) (*Dense, error) {
	if src == nil || isNilPointer(src) {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := src.Dims()
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", opFromGonum, r, c, ErrInvalidDimensions)
	}
	res := newDense(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			res.data[i*c+j] = src.At(i, j)
		}
	}

	return res, nil
}

// isNilPointer reports whether src wraps a nil pointer, e.g. (*mat.Dense)(nil).
func isNilPointer(src mat.Matrix) bool {
	v := reflect.ValueOf(src)

	return v.Kind() == reflect.Pointer && v.IsNil()
}
