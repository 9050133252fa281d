// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmplx_test

import (
	"math"
	"math/rand"
	"testing"

	fuzz "github.com/google/gofuzz"

	"github.com/ieee754/cmplx"
)

const iterations = 2000

var specials = []float64{
	0, math.Copysign(0, -1),
	1, -1, 0.5, -2,
	math.Inf(1), math.Inf(-1), math.NaN(),
	math.MaxFloat64, -math.MaxFloat64,
	math.SmallestNonzeroFloat64, -math.SmallestNonzeroFloat64,
}

// component returns a special value half of the time and a finite value
// of random magnitude otherwise.
func component(c fuzz.Continue) float64 {
	if c.Intn(2) == 0 {
		return specials[c.Intn(len(specials))]
	}
	return c.NormFloat64() * math.Pow(10, float64(c.Intn(41)-20))
}

func newFuzzer(seed int64) *fuzz.Fuzzer {
	return fuzz.New().NilChance(0).RandSource(rand.NewSource(seed)).Funcs(
		func(z *cmplx.Complex, c fuzz.Continue) {
			*z = cmplx.Cartesian(component(c), component(c))
		},
	)
}

func finite(z cmplx.Complex) bool {
	return !cmplx.IsInf(z) && !cmplx.IsNaN(z)
}

func TestCommutative(t *testing.T) {
	f := newFuzzer(1)
	var x, y cmplx.Complex
	for i := 0; i < iterations; i++ {
		f.Fuzz(&x)
		f.Fuzz(&y)
		if a, b := cmplx.Add(x, y), cmplx.Add(y, x); !cmplx.Equal(a, b) {
			t.Errorf("Add(%v, %v) = %v, Add(%v, %v) = %v", x, y, a, y, x, b)
		}
		if a, b := cmplx.Mul(x, y), cmplx.Mul(y, x); !cmplx.Equal(a, b) {
			t.Errorf("Mul(%v, %v) = %v, Mul(%v, %v) = %v", x, y, a, y, x, b)
		}
	}
}

func TestInvolution(t *testing.T) {
	f := newFuzzer(2)
	var x cmplx.Complex
	for i := 0; i < iterations; i++ {
		f.Fuzz(&x)
		if got := cmplx.Neg(cmplx.Neg(x)); !cmplx.Equal(got, x) {
			t.Errorf("Neg(Neg(%v)) = %v", x, got)
		}
		if got := cmplx.Conj(cmplx.Conj(x)); !cmplx.Equal(got, x) {
			t.Errorf("Conj(Conj(%v)) = %v", x, got)
		}
		if !cmplx.Equal(x, x) {
			t.Errorf("Equal(%v, %v) = false", x, x)
		}
	}
}

func TestConjDistributes(t *testing.T) {
	f := newFuzzer(3)
	var x, y cmplx.Complex
	for i := 0; i < iterations; i++ {
		f.Fuzz(&x)
		f.Fuzz(&y)
		if !finite(x) || !finite(y) {
			continue
		}
		a := cmplx.Conj(cmplx.Add(x, y))
		b := cmplx.Add(cmplx.Conj(x), cmplx.Conj(y))
		if x.Imag()+y.Imag() == 0 {
			// A zero sum is +0 whichever way it is formed, so only
			// the values agree.
			if a.Real() != b.Real() || a.Imag() != b.Imag() {
				t.Errorf("Conj(%v + %v) = %v, want %v", x, y, a, b)
			}
			continue
		}
		if !cmplx.Equal(a, b) {
			t.Errorf("Conj(%v + %v) = %v, want %v", x, y, a, b)
		}
	}

	// Imaginary parts that are zeros of opposite sign.
	x, y = cmplx.Real(1), cmplx.Cartesian(1, math.Copysign(0, -1))
	if got := cmplx.Conj(cmplx.Add(x, y)); !math.Signbit(got.Imag()) {
		t.Errorf("Conj(%v + %v) = %v, want imaginary part -0", x, y, got)
	}
	if got := cmplx.Add(cmplx.Conj(x), cmplx.Conj(y)); math.Signbit(got.Imag()) {
		t.Errorf("Conj(%v) + Conj(%v) = %v, want imaginary part +0", x, y, got)
	}
}

// sameValue reports whether x and y agree as values: zeros of either sign
// match, and NaN matches NaN.
func sameValue(x, y cmplx.Complex) bool {
	eq := func(a, b float64) bool {
		return a == b || math.IsNaN(a) && math.IsNaN(b)
	}
	return eq(x.Real(), y.Real()) && eq(x.Imag(), y.Imag())
}

func TestDivReciprocal(t *testing.T) {
	f := newFuzzer(8)
	var x cmplx.Complex
	for i := 0; i < iterations; i++ {
		f.Fuzz(&x)
		// Dividing by a power of two is exact, as is multiplying by
		// its reciprocal.
		d := math.Ldexp(1, i%17-8)
		if i%2 == 1 {
			d = -d
		}
		q := cmplx.Div(x, cmplx.Real(d))
		p := cmplx.Mul(x, cmplx.Real(1/d))
		if !sameValue(q, p) {
			t.Errorf("Div(%v, %v) = %v, Mul(%v, %v) = %v", x, d, q, x, 1/d, p)
		}
	}
}

func TestPowZeroExponent(t *testing.T) {
	negz := math.Copysign(0, -1)
	zeros := []cmplx.Complex{
		cmplx.Cartesian(0, 0), cmplx.Cartesian(negz, 0),
		cmplx.Cartesian(0, negz), cmplx.Cartesian(negz, negz),
	}
	one := cmplx.Real(1)
	f := newFuzzer(4)
	var x cmplx.Complex
	for i := 0; i < iterations; i++ {
		f.Fuzz(&x)
		y := zeros[i%len(zeros)]
		if got := cmplx.Pow(x, y); !cmplx.Equal(got, one) {
			t.Errorf("Pow(%v, %v) = %v, want %v", x, y, got, one)
		}
	}
}

func TestAbsDominance(t *testing.T) {
	f := newFuzzer(5)
	var x cmplx.Complex
	for i := 0; i < iterations; i++ {
		f.Fuzz(&x)
		r := cmplx.Abs(x)
		switch {
		case cmplx.IsInf(x):
			if !math.IsInf(r, 1) {
				t.Errorf("Abs(%v) = %v, want +Inf", x, r)
			}
		case cmplx.IsNaN(x):
			if !math.IsNaN(r) {
				t.Errorf("Abs(%v) = %v, want NaN", x, r)
			}
		case r < 0 || math.IsNaN(r):
			t.Errorf("Abs(%v) = %v", x, r)
		}
	}
}

func TestSqrtHalfPlane(t *testing.T) {
	f := newFuzzer(6)
	var x cmplx.Complex
	for i := 0; i < iterations; i++ {
		f.Fuzz(&x)
		if math.IsNaN(x.Real()) || math.IsNaN(x.Imag()) {
			continue
		}
		z := cmplx.Sqrt(x)
		if math.Signbit(z.Real()) || math.IsNaN(z.Real()) {
			t.Errorf("Sqrt(%v) = %v, want nonnegative real part", x, z)
		}
		if math.Signbit(z.Imag()) != math.Signbit(x.Imag()) {
			t.Errorf("Sqrt(%v) = %v, want imaginary sign of %v", x, z, x.Imag())
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	f := newFuzzer(7)
	var x cmplx.Complex
	for i := 0; i < iterations; i++ {
		f.Fuzz(&x)
		s := x.String()
		got, err := cmplx.Parse(s)
		if err != nil {
			t.Errorf("Parse(%q): %v", s, err)
			continue
		}
		if !cmplx.Equal(got, x) {
			t.Errorf("Parse(%q) = %v", s, got)
		}
	}
}
