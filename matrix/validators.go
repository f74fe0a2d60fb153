// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for precondition checks.
//  - Keep operations minimal by delegating nil/shape/squareness checks here.
//  - Every check runs before any mutation, so a failing operation leaves all
//    operands exactly as they were.
//
// Determinism & Performance:
//  - All checks are pure, deterministic, O(1) and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return matrixErrorf(tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols() == b.Rows() for the product a·b.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square and non-empty.
// A 0×0 shape only exists after Move and is rejected as well.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c || m.r == 0 {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}
