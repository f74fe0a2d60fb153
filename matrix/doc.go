// Package matrix provides Dense, a small row-major float64 matrix value type.
//
// The matrix package provides:
//
//   - Construction and lifecycle: NewDense, NewDefault (3×3 zeros), NewIdentity,
//     NewFromRows, Clone (deep copy), Move (O(1) transfer), Assign.
//   - In-place resizing with data preservation: SetRows, SetCols.
//   - Bounds-checked element access: At, Set and Ref (a pointer handle).
//   - Arithmetic in two flavours: in-place (Add, Sub, Scale, Mul) and
//     non-mutating (Plus, Minus, ScaledBy, ScaleBy, Times).
//   - Linear algebra: Transpose, Determinant (cofactor expansion),
//     Complements (cofactor matrix) and Inverse (adjugate / determinant).
//   - Conversion to and from gonum's mat package.
//
// Every failure is reported as a wrapped sentinel (ErrInvalidDimensions,
// ErrOutOfRange, ErrDimensionMismatch, ErrNonSquare, ErrSingular, ErrNilMatrix)
// that callers match with errors.Is. Preconditions are checked before any
// mutation, so a failed call leaves all operands unchanged.
//
// Equality and the singularity test are exact floating-point comparisons.
//
// See the examples in this package for usage patterns.
package matrix
