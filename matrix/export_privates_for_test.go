// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private kernels.
//
// Purpose:
//   - Expose UNEXPORTED helpers to matrix_test ONLY, without widening the prod API.
//   - File name ends in _test.go, so it never ships in production builds.

var (
	// ExportedMinor exposes Dense.minor for white-box tests.
	ExportedMinor = (*Dense).minor
	// ExportedCofactorSign exposes cofactorSign for white-box tests.
	ExportedCofactorSign = cofactorSign
)

// RawData returns the backing buffer itself (not a copy) so tests can assert
// ownership and aliasing rules.
func RawData(m *Dense) []float64 { return m.data }
