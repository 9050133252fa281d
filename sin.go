// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmplx

import "math"

// The formulas below are from
// http://netlib.sandia.gov/cephes/c9x-complex/csin.c, csinh.c, ccos.c
// and ccosh.c, Cephes Math Library Release 2.8,
// Copyright 1984, 1987, 1989, 1992, 2000 by Stephen L. Moshier.
// Products pass through mul so that real arguments give real results.

// Complex circular sine
//
//	z = x + iy
//	w = sin x cosh y + i cos x sinh y

// 复数的正弦
//
//	z = x + iy
//	w = sin x cosh y + i cos x sinh y

// Sin returns the sine of x.
// A zero factor times an infinite one contributes a signed zero,
// as in Mul.

// Sin 返回 x 的正弦值。
// 与 Mul 一样，零因子乘以无穷大因子得到带符号的零。
func Sin(x Complex) Complex {
	s, c := math.Sincos(x.re)
	sh, ch := sinhcosh(x.im)
	return Complex{mul(s, ch), mul(c, sh)}
}

// Complex hyperbolic sine
//
//	w = sinh x cos y + i cosh x sin y

// 复数的双曲正弦
//
//	w = sinh x cos y + i cosh x sin y

// Sinh returns the hyperbolic sine of x.

// Sinh 返回 x 的双曲正弦值。
func Sinh(x Complex) Complex {
	s, c := math.Sincos(x.im)
	sh, ch := sinhcosh(x.re)
	return Complex{mul(c, sh), mul(s, ch)}
}

// Complex circular cosine
//
//	w = cos x cosh y - i sin x sinh y

// 复数的余弦
//
//	w = cos x cosh y - i sin x sinh y

// Cos returns the cosine of x.

// Cos 返回 x 的余弦值。
func Cos(x Complex) Complex {
	s, c := math.Sincos(x.re)
	sh, ch := sinhcosh(x.im)
	return Complex{mul(c, ch), -mul(s, sh)}
}

// Complex hyperbolic cosine
//
//	w = cosh x cos y + i sinh x sin y

// 复数的双曲余弦
//
//	w = cosh x cos y + i sinh x sin y

// Cosh returns the hyperbolic cosine of x.

// Cosh 返回 x 的双曲余弦值。
func Cosh(x Complex) Complex {
	s, c := math.Sincos(x.im)
	sh, ch := sinhcosh(x.re)
	return Complex{mul(c, ch), mul(s, sh)}
}

// sinhcosh returns the hyperbolic sine and cosine of x.

// sinhcosh 返回 x 的双曲正弦和双曲余弦值。
func sinhcosh(x float64) (sh, ch float64) {
	if math.Abs(x) <= 0.5 {
		return math.Sinh(x), math.Cosh(x)
	}
	e := math.Exp(x)
	ei := 0.5 / e
	e *= 0.5
	return e - ei, e + ei
}
