// SPDX-License-Identifier: MIT

// Package worksheet loads and evaluates YAML worksheets: a set of named
// matrices followed by a sequence of matrix operations.
//
// Example:
//
//	matrices:
//	  A: [[1, -2, 3], [4, 0, 6], [-7, 8, 9]]
//	steps:
//	  - {op: determinant, args: [A]}
//	  - {op: inverse, args: [A], into: Ainv}
//	  - {op: times, args: [A, Ainv]}
package worksheet

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for worksheet structure problems.
var (
	ErrEmptyWorksheet = errors.New("worksheet: no steps")
	ErrUnknownOp      = errors.New("worksheet: unknown operation")
	ErrUnknownMatrix  = errors.New("worksheet: unknown matrix")
	ErrArity          = errors.New("worksheet: wrong number of arguments")
	ErrMissingParam   = errors.New("worksheet: missing parameter")
	ErrBadMatrix      = errors.New("worksheet: invalid matrix literal")
	ErrBadInto        = errors.New("worksheet: into on an operation without a matrix result")
)

// Worksheet is the decoded YAML document.
type Worksheet struct {
	Matrices map[string][][]float64 `yaml:"matrices"`
	Steps    []Step                 `yaml:"steps"`
}

// Step is one operation. Args name matrices; Into stores a matrix result
// under a new (or existing) name for later steps. Into is rejected on
// determinant and equal.
type Step struct {
	Op     string   `yaml:"op"`
	Args   []string `yaml:"args"`
	Into   string   `yaml:"into,omitempty"`
	Factor *float64 `yaml:"factor,omitempty"` // scale
	Size   int      `yaml:"size,omitempty"`   // set_rows, set_cols
}

// Load reads and strictly decodes a worksheet file (.yaml or .yml).
func Load(path string) (*Worksheet, error) {
	path = filepath.Clean(path)

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("unsupported worksheet format: %s (only YAML supported)", ext)
	}

	// #nosec G304 -- worksheet paths are provided by the operator via CLI
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return Parse(data)
}

// Parse strictly decodes a worksheet and validates it.
// Unknown keys and trailing documents are rejected.
func Parse(data []byte) (*Worksheet, error) {
	var ws Worksheet
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&ws); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyWorksheet
		}
		return nil, fmt.Errorf("strict worksheet parse error: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("worksheet contains multiple documents or trailing content")
	}

	if err := ws.Validate(); err != nil {
		return nil, err
	}

	return &ws, nil
}

// Validate checks operations, arities, parameters and name references
// without evaluating anything. Names introduced by Into are visible to
// subsequent steps only.
func (ws *Worksheet) Validate() error {
	if len(ws.Steps) == 0 {
		return ErrEmptyWorksheet
	}

	known := make(map[string]bool, len(ws.Matrices))
	for _, name := range ws.matrixNames() {
		rows := ws.Matrices[name]
		if len(rows) == 0 || len(rows[0]) == 0 {
			return fmt.Errorf("matrix %q: %w", name, ErrBadMatrix)
		}
		for i, row := range rows {
			if len(row) != len(rows[0]) {
				return fmt.Errorf("matrix %q row %d: %w", name, i, ErrBadMatrix)
			}
		}
		known[name] = true
	}

	for i, st := range ws.Steps {
		spec, ok := ops[st.Op]
		if !ok {
			return stepErrorf(i, st.Op, fmt.Errorf("%w: %q", ErrUnknownOp, st.Op))
		}
		if len(st.Args) != spec.arity {
			return stepErrorf(i, st.Op, fmt.Errorf("%w: got %d, want %d", ErrArity, len(st.Args), spec.arity))
		}
		for _, name := range st.Args {
			if !known[name] {
				return stepErrorf(i, st.Op, fmt.Errorf("%w: %q", ErrUnknownMatrix, name))
			}
		}
		if spec.needsFactor && st.Factor == nil {
			return stepErrorf(i, st.Op, fmt.Errorf("%w: factor", ErrMissingParam))
		}
		if spec.needsSize && st.Size == 0 {
			return stepErrorf(i, st.Op, fmt.Errorf("%w: size", ErrMissingParam))
		}
		if st.Into != "" {
			if spec.scalar {
				return stepErrorf(i, st.Op, fmt.Errorf("%w: %q", ErrBadInto, st.Into))
			}
			known[st.Into] = true
		}
	}

	return nil
}

// matrixNames returns the declared names in sorted order for deterministic errors.
func (ws *Worksheet) matrixNames() []string {
	names := make([]string, 0, len(ws.Matrices))
	for name := range ws.Matrices {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func stepErrorf(i int, op string, err error) error {
	return fmt.Errorf("step %d (%s): %w", i, op, err)
}
