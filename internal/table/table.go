// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table reads special-value tables: YAML documents listing the
// literal result expected from an operation for each set of operands.
//
//	op: mul
//	cases:
//	- args: ["(+Inf+0i)", "(0+4i)"]
//	  want: "(0+Infi)"
//
// Values are written in the syntax accepted by cmplx.Parse. Results are
// compared with cmplx.Equal unless the table sets a positive tolerance,
// in which case finite components need only agree to within it.
package table

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"math"
	"os"

	"gonum.org/v1/gonum/floats"
	"sigs.k8s.io/yaml"

	"github.com/ieee754/cmplx"
	"github.com/ieee754/cmplx/internal/opset"
)

// A Case is one row of a table.
type Case struct {
	Args []string `json:"args"`
	Want string   `json:"want"`
}

// A Table is the set of expected results of one operation.
type Table struct {
	Op        string  `json:"op"`
	Tolerance float64 `json:"tolerance,omitempty"`
	Cases     []Case  `json:"cases"`
}

// A Mismatch records a case whose result differs from the expectation.
type Mismatch struct {
	Index int
	Case  Case
	Got   cmplx.Complex
	Want  cmplx.Complex
}

func (m Mismatch) String() string {
	return fmt.Sprintf("case %d: %v = %v, want %v", m.Index, m.Case.Args, m.Got, m.Want)
}

// Load decodes a table from r.
func Load(r io.Reader) (*Table, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	t := new(Table)
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("decoding table: %w", err)
	}
	if t.Op == "" {
		return nil, errors.New("decoding table: missing op")
	}
	return t, nil
}

// LoadFile decodes the table stored in the named file.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Check evaluates every case and returns those whose result does not
// match. The error is non-nil if the operation is unknown or a case is
// malformed; no cases are evaluated in that event.
func (t *Table) Check() ([]Mismatch, error) {
	op, err := opset.Lookup(t.Op)
	if err != nil {
		return nil, err
	}
	type parsed struct {
		args []cmplx.Complex
		want cmplx.Complex
	}
	rows := make([]parsed, len(t.Cases))
	for i, c := range t.Cases {
		if len(c.Args) != op.Arity {
			return nil, fmt.Errorf("case %d: %w: got %d, want %d", i, opset.ErrArity, len(c.Args), op.Arity)
		}
		rows[i].args = make([]cmplx.Complex, len(c.Args))
		for j, s := range c.Args {
			if rows[i].args[j], err = cmplx.Parse(s); err != nil {
				return nil, fmt.Errorf("case %d: %w", i, err)
			}
		}
		if rows[i].want, err = cmplx.Parse(c.Want); err != nil {
			return nil, fmt.Errorf("case %d: %w", i, err)
		}
	}

	var bad []Mismatch
	for i, row := range rows {
		got, err := op.Apply(row.args...)
		if err != nil {
			return nil, fmt.Errorf("case %d: %w", i, err)
		}
		if !t.match(got, row.want) {
			bad = append(bad, Mismatch{Index: i, Case: t.Cases[i], Got: got, Want: row.want})
		}
	}
	return bad, nil
}

func (t *Table) match(got, want cmplx.Complex) bool {
	if t.Tolerance <= 0 {
		return cmplx.Equal(got, want)
	}
	return near(got.Real(), want.Real(), t.Tolerance) && near(got.Imag(), want.Imag(), t.Tolerance)
}

// near reports whether x and y agree to within tol. Special values
// must match exactly.
func near(x, y, tol float64) bool {
	switch {
	case math.IsNaN(x) || math.IsNaN(y):
		return math.IsNaN(x) && math.IsNaN(y)
	case math.IsInf(x, 0) || math.IsInf(y, 0):
		return x == y
	}
	return floats.EqualWithinAbsOrRel(x, y, tol, tol)
}
