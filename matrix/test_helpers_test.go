// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for the Dense kernels.
//   • Keep all fixtures integer-valued so exact equality holds after arithmetic.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// seq3 is the 3×3 fixture 1..9 used throughout the suite.
var seq3 = [][]float64{
	{1, 2, 3},
	{4, 5, 6},
	{7, 8, 9},
}

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustRows BUILDS a *Dense from literal rows or fails the test.
func MustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		t.Fatalf("NewFromRows(%v): %v", rows, err)
	}

	return m
}

// IdentityDense RETURNS an n×n identity or fails the test.
func IdentityDense(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	I, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return I
}

// fillSeq writes 1, 2, 3, ... in row-major order.
func fillSeq(t testing.TB, m *matrix.Dense) {
	t.Helper()
	v := 1.0
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if err := m.Set(i, j, v); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
			v++
		}
	}
}
