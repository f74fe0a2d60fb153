// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmatrix/internal/worksheet"
)

func writeWorksheet(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ws.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRunSuccess(t *testing.T) {
	path := writeWorksheet(t, `
matrices:
  A: [[1, 2], [3, 4]]
steps:
  - {op: determinant, args: [A]}
  - {op: transpose, args: [A]}
`)
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-f", path}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	var got []worksheet.Result
	require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &got))
	require.Len(t, got, 2)
	require.Equal(t, -2.0, *got[0].Scalar)
	require.Equal(t, [][]float64{{1, 3}, {2, 4}}, got[1].Matrix)
}

func TestRunStepFailure(t *testing.T) {
	path := writeWorksheet(t, `
matrices:
  A: [[1, 2], [2, 4]]
steps:
  - {op: determinant, args: [A]}
  - {op: inverse, args: [A]}
`)
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"--file", path}, &stdout, &stderr)
	require.Equal(t, 1, code)
	require.Contains(t, stdout.String(), "determinant", "results before the failure are printed")
}

func TestRunUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 2, run(context.Background(), nil, &stdout, &stderr))
	require.Contains(t, stderr.String(), "--file is required")

	stdout.Reset()
	require.Equal(t, 0, run(context.Background(), []string{"-version"}, &stdout, &stderr))
	require.Equal(t, Version+"\n", stdout.String())

	require.Equal(t, 1, run(context.Background(), []string{"-f", "missing.yaml"}, &stdout, &stderr))
}
