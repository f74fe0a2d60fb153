// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every operation returns one of these sentinels (possibly wrapped with
// operation context) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Operations wrap the sentinel with their tag,
// e.g. "Dense.Mul: matrix: dimension mismatch"; callers match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> shape/index -> dimension mismatch -> squareness -> singularity.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	// Returned by NewDense, SetRows and SetCols before any allocation happens.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Ref) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square, non-empty matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by Inverse when the determinant is exactly zero.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
// Keep it as an alias so errors.Is(err, ErrIndexOutOfBounds) remains true.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNew         = "NewDense"
	opFromRows    = "NewFromRows"
	opIdentity    = "NewIdentity"
	opSetRows     = "Dense.SetRows"
	opSetCols     = "Dense.SetCols"
	opAdd         = "Dense.Add"
	opSub         = "Dense.Sub"
	opMul         = "Dense.Mul"
	opDeterminant = "Dense.Determinant"
	opComplements = "Dense.Complements"
	opInverse     = "Dense.Inverse"
	opFromGonum   = "FromGonum"
	opToGonum     = "Dense.ToGonum"
)

// Method tags used by denseErrorf for element access.
const (
	ctxAt  = "At"
	ctxSet = "Set"
	ctxRef = "Ref"
)

// matrixErrorf wraps err with an operation tag, keeping err matchable via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
