// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package opset names the operations of package cmplx so that they can
// be selected at run time, by the cmplxcalc command and by special-value
// tables.
package opset

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ieee754/cmplx"
)

var (
	// ErrUnknown is returned by Lookup for a name with no operation.
	ErrUnknown = errors.New("unknown operation")
	// ErrArity is returned by Apply when given the wrong number of operands.
	ErrArity = errors.New("wrong number of operands")
)

// An Op is a named operation taking Arity complex operands.
type Op struct {
	Name  string
	Arity int
	Doc   string
	fn    func(z []cmplx.Complex) cmplx.Complex
}

// Apply evaluates op on args.
func (op *Op) Apply(args ...cmplx.Complex) (cmplx.Complex, error) {
	if len(args) != op.Arity {
		return cmplx.Complex{}, fmt.Errorf("%s: %w: got %d, want %d", op.Name, ErrArity, len(args), op.Arity)
	}
	return op.fn(args), nil
}

func unary(name, doc string, f func(cmplx.Complex) cmplx.Complex) *Op {
	return &Op{Name: name, Arity: 1, Doc: doc, fn: func(z []cmplx.Complex) cmplx.Complex { return f(z[0]) }}
}

func binary(name, doc string, f func(x, y cmplx.Complex) cmplx.Complex) *Op {
	return &Op{Name: name, Arity: 2, Doc: doc, fn: func(z []cmplx.Complex) cmplx.Complex { return f(z[0], z[1]) }}
}

var ops = map[string]*Op{}

func init() {
	for _, op := range []*Op{
		// Constructors read their scalar operands from the real parts.
		unary("real", "x+0i from the real part of x", func(x cmplx.Complex) cmplx.Complex {
			return cmplx.Real(x.Real())
		}),
		unary("imag", "0+yi from the real part of y", func(y cmplx.Complex) cmplx.Complex {
			return cmplx.Imaginary(y.Real())
		}),
		binary("cartesian", "x+yi from the real parts of x and y", func(x, y cmplx.Complex) cmplx.Complex {
			return cmplx.Cartesian(x.Real(), y.Real())
		}),
		binary("polar", "r*e**θi from the real parts of r and θ", func(r, θ cmplx.Complex) cmplx.Complex {
			return cmplx.Polar(r.Real(), θ.Real())
		}),
		unary("re", "real part", cmplx.Re),
		unary("im", "imaginary part", cmplx.Im),
		unary("abs", "absolute value", cmplx.Mag),
		unary("arg", "phase", cmplx.Arg),
		unary("neg", "negation", cmplx.Neg),
		unary("conj", "complex conjugate", cmplx.Conj),
		binary("add", "sum", cmplx.Add),
		binary("sub", "difference", cmplx.Sub),
		binary("mul", "product", cmplx.Mul),
		binary("div", "quotient", cmplx.Div),
		unary("inv", "reciprocal", cmplx.Inv),
		unary("sqrt", "principal square root", cmplx.Sqrt),
		unary("log", "natural logarithm", cmplx.Log),
		unary("log10", "decimal logarithm", cmplx.Log10),
		unary("exp", "base-e exponential", cmplx.Exp),
		binary("pow", "x**y", cmplx.Pow),
		unary("sin", "sine", cmplx.Sin),
		unary("cos", "cosine", cmplx.Cos),
		unary("sinh", "hyperbolic sine", cmplx.Sinh),
		unary("cosh", "hyperbolic cosine", cmplx.Cosh),
		unary("asin", "inverse sine", cmplx.Asin),
		unary("acos", "inverse cosine", cmplx.Acos),
		unary("atan", "inverse tangent", cmplx.Atan),
		unary("asinh", "inverse hyperbolic sine", cmplx.Asinh),
		unary("acosh", "inverse hyperbolic cosine", cmplx.Acosh),
		unary("atanh", "inverse hyperbolic tangent", cmplx.Atanh),
	} {
		ops[op.Name] = op
	}
}

// Lookup returns the operation called name.
func Lookup(name string) (*Op, error) {
	op, ok := ops[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknown, name)
	}
	return op, nil
}

// Names returns the names of all operations in sorted order.
func Names() []string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
