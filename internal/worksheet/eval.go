// SPDX-License-Identifier: MIT

package worksheet

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// Result is the outcome of one step. Exactly one of Matrix, Scalar, Bool is set.
type Result struct {
	Step   int         `yaml:"step"`
	Op     string      `yaml:"op"`
	Into   string      `yaml:"into,omitempty"`
	Matrix [][]float64 `yaml:"matrix,omitempty,flow"`
	Scalar *float64    `yaml:"scalar,omitempty"`
	Bool   *bool       `yaml:"bool,omitempty"`
}

// value is what an operation hands back before it becomes a Result.
type value struct {
	m *matrix.Dense
	f *float64
	b *bool
}

// opSpec describes one worksheet operation.
type opSpec struct {
	arity       int
	needsFactor bool
	needsSize   bool
	// inPlace ops mutate Args[0] in the environment.
	inPlace bool
	// scalar ops produce a number or a bool and cannot be stored with Into.
	scalar bool
	run     func(st Step, args []*matrix.Dense) (value, error)
}

var ops = map[string]opSpec{
	"plus":  {arity: 2, run: binary((*matrix.Dense).Plus)},
	"minus": {arity: 2, run: binary((*matrix.Dense).Minus)},
	"times": {arity: 2, run: binary((*matrix.Dense).Times)},
	"add":   {arity: 2, inPlace: true, run: inPlace((*matrix.Dense).Add)},
	"sub":   {arity: 2, inPlace: true, run: inPlace((*matrix.Dense).Sub)},
	"mul":   {arity: 2, inPlace: true, run: inPlace((*matrix.Dense).Mul)},
	"equal": {arity: 2, scalar: true, run: func(_ Step, a []*matrix.Dense) (value, error) {
		eq := a[0].Equal(a[1])
		return value{b: &eq}, nil
	}},
	"scale": {arity: 1, needsFactor: true, run: func(st Step, a []*matrix.Dense) (value, error) {
		return value{m: a[0].ScaledBy(*st.Factor)}, nil
	}},
	"transpose": {arity: 1, run: func(_ Step, a []*matrix.Dense) (value, error) {
		return value{m: a[0].Transpose()}, nil
	}},
	"determinant": {arity: 1, scalar: true, run: func(_ Step, a []*matrix.Dense) (value, error) {
		d, err := a[0].Determinant()
		if err != nil {
			return value{}, err
		}
		return value{f: &d}, nil
	}},
	"complements": {arity: 1, run: unary((*matrix.Dense).Complements)},
	"inverse":     {arity: 1, run: unary((*matrix.Dense).Inverse)},
	"set_rows": {arity: 1, needsSize: true, inPlace: true, run: func(st Step, a []*matrix.Dense) (value, error) {
		if err := a[0].SetRows(st.Size); err != nil {
			return value{}, err
		}
		return value{m: a[0]}, nil
	}},
	"set_cols": {arity: 1, needsSize: true, inPlace: true, run: func(st Step, a []*matrix.Dense) (value, error) {
		if err := a[0].SetCols(st.Size); err != nil {
			return value{}, err
		}
		return value{m: a[0]}, nil
	}},
}

func binary(f func(*matrix.Dense, *matrix.Dense) (*matrix.Dense, error)) func(Step, []*matrix.Dense) (value, error) {
	return func(_ Step, a []*matrix.Dense) (value, error) {
		m, err := f(a[0], a[1])
		if err != nil {
			return value{}, err
		}
		return value{m: m}, nil
	}
}

func unary(f func(*matrix.Dense) (*matrix.Dense, error)) func(Step, []*matrix.Dense) (value, error) {
	return func(_ Step, a []*matrix.Dense) (value, error) {
		m, err := f(a[0])
		if err != nil {
			return value{}, err
		}
		return value{m: m}, nil
	}
}

func inPlace(f func(*matrix.Dense, *matrix.Dense) error) func(Step, []*matrix.Dense) (value, error) {
	return func(_ Step, a []*matrix.Dense) (value, error) {
		if err := f(a[0], a[1]); err != nil {
			return value{}, err
		}
		return value{m: a[0]}, nil
	}
}

// Run evaluates every step in order and returns one Result per step.
// ctx is checked before each step. The first failing step aborts the run;
// its matrix error stays reachable through errors.Is.
func (ws *Worksheet) Run(ctx context.Context, logger zerolog.Logger) ([]Result, error) {
	if err := ws.Validate(); err != nil {
		return nil, err
	}

	env := make(map[string]*matrix.Dense, len(ws.Matrices))
	for _, name := range ws.matrixNames() {
		m, err := matrix.NewFromRows(ws.Matrices[name])
		if err != nil {
			return nil, fmt.Errorf("matrix %q: %w", name, err)
		}
		env[name] = m
	}

	results := make([]Result, 0, len(ws.Steps))
	for i, st := range ws.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		spec := ops[st.Op]
		args := make([]*matrix.Dense, len(st.Args))
		for k, name := range st.Args {
			args[k] = env[name]
		}

		v, err := spec.run(st, args)
		if err != nil {
			logger.Warn().Int("step", i).Str("op", st.Op).Err(err).Msg("step failed")
			return results, stepErrorf(i, st.Op, err)
		}

		res := Result{Step: i, Op: st.Op, Into: st.Into, Scalar: v.f, Bool: v.b}
		if v.m != nil {
			res.Matrix = v.m.ToRows()
			if st.Into != "" {
				// In-place results alias Args[0]; store a copy so later
				// in-place steps on either name stay independent.
				if spec.inPlace {
					env[st.Into] = v.m.Clone()
				} else {
					env[st.Into] = v.m
				}
			}
		}
		logger.Debug().Int("step", i).Str("op", st.Op).Strs("args", st.Args).Msg("step done")
		results = append(results, res)
	}

	return results, nil
}
