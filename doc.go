// Package lvmatrix is a small, pure-Go dense matrix library.
//
// What is inside?
//
//	matrix/              - Dense: row-major float64 matrix with resize, arithmetic,
//	                       transpose, determinant, cofactors and inverse
//	internal/log/        - zerolog setup shared by the tools
//	internal/worksheet/  - YAML worksheets: named matrices + a list of operations
//	cmd/matrixcalc/      - CLI that evaluates a worksheet and prints YAML results
//
// Quick example:
//
//	m, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
//	d, _ := m.Determinant() // -2
//
// Errors are sentinels (matrix.ErrNonSquare, matrix.ErrSingular, ...) matched
// with errors.Is; no operation panics on bad input.
//
//	go get github.com/katalvlaran/lvmatrix/matrix
package lvmatrix
