// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmplx

import "math"

// The algorithms below are simplified versions of those in
// http://netlib.sandia.gov/cephes/c9x-complex/casin.c,
// cacos.c and catan.c, Cephes Math Library Release 2.8,
// Copyright 1984, 1987, 1989, 1992, 2000 by Stephen L. Moshier.

// Complex circular arc sine
//
//	w = -i clog( iz + csqrt( 1 - z**2 ) )
//	casin(z) = -i casinh(iz)

// 复数的反正弦
//
//	w = -i clog( iz + csqrt( 1 - z**2 ) )
//	casin(z) = -i casinh(iz)

// Asin returns the inverse sine of x.
// A real x in [-1, 1] gives a real result keeping the sign of imag(x).

// Asin 返回 x 的反正弦值。
// 若 x 为 [-1, 1] 中的实数，则结果为实数，且保留 imag(x) 的符号。
func Asin(x Complex) Complex {
	if x.im == 0 && math.Abs(x.re) <= 1 {
		return Complex{math.Asin(x.re), x.im}
	}
	ct := Complex{-x.im, x.re} // i * x
	xx := Mul(x, x)
	x1 := Complex{1 - xx.re, -xx.im} // 1 - x*x
	w := Log(Add(ct, Sqrt(x1)))
	return Complex{w.im, -w.re} // -i * w
}

// Asinh returns the inverse hyperbolic sine of x.

// Asinh 返回 x 的反双曲正弦值。
func Asinh(x Complex) Complex {
	if x.im == 0 {
		return Complex{math.Asinh(x.re), x.im}
	}
	xx := Mul(x, x)
	x1 := Complex{1 + xx.re, xx.im} // 1 + x*x
	return Log(Add(x, Sqrt(x1)))
}

// Complex circular arc cosine
//
//	w = arccos z  =  PI/2 - arcsin z

// 复数的反余弦
//
//	w = arccos z  =  PI/2 - arcsin z

// Acos returns the inverse cosine of x.

// Acos 返回 x 的反余弦值。
func Acos(x Complex) Complex {
	w := Asin(x)
	return Complex{math.Pi/2 - w.re, -w.im}
}

// Acosh returns the inverse hyperbolic cosine of x.
// The real part of the result is never negative.

// Acosh 返回 x 的反双曲余弦值。
// 其结果的实部永远不为负。
func Acosh(x Complex) Complex {
	w := Acos(x)
	if w.im <= 0 {
		return Complex{-w.im, w.re} // i * w
	}
	return Complex{w.im, -w.re} // -i * w
}

// Complex circular arc tangent
//
// If z = x + iy, then
//
//	Re w = 1/2 arctan( 2x / (1 - x**2 - y**2) ) + k PI
//	Im w = 1/4 log( (x**2 + (y+1)**2) / (x**2 + (y-1)**2) )
//
// where k is chosen so that Re w lies in [-PI/2, PI/2].
//
//	catan(z) = -i catanh(iz)

// 复数的反正切
//
// 若 z = x + iy，则
//
//	Re w = 1/2 arctan( 2x / (1 - x**2 - y**2) ) + k PI
//	Im w = 1/4 log( (x**2 + (y+1)**2) / (x**2 + (y-1)**2) )
//
// 其中 k 的选取使得 Re w 位于 [-PI/2, PI/2] 中。
//
//	catan(z) = -i catanh(iz)

// Atan returns the inverse tangent of x.
//
// Special cases are:
//	Atan(±i) = 0±Infi
//	Atan(x) = ±Pi/2±0i if x has an infinite component and real(x) is not NaN,
//	    signed by real(x) and imag(x)
//	Atan(x) = NaN±0i if real(x) is NaN and imag(x) is infinite
//	Atan(x) = NaN+NaNi for any other x with a NaN component

// Atan 返回 x 的反正切值。
//
// 特殊情况为：
//	Atan(±i) = 0±Infi
//	若 x 含有无穷大分量且 real(x) 不为 NaN，则 Atan(x) = ±Pi/2±0i，
//	    其符号分别与 real(x) 和 imag(x) 相同
//	若 real(x) 为 NaN 且 imag(x) 为无穷大，则 Atan(x) = NaN±0i
//	对于任何其它含有 NaN 分量的 x，Atan(x) = NaN+NaNi
func Atan(x Complex) Complex {
	re, im := x.re, x.im
	switch {
	case im == 0:
		return Complex{math.Atan(re), im}
	case re == 0 && math.Abs(im) <= 1:
		return Complex{re, math.Atanh(im)}
	case math.IsInf(im, 0) || math.IsInf(re, 0):
		if math.IsNaN(re) {
			return Complex{re, math.Copysign(0, im)}
		}
		return Complex{math.Copysign(math.Pi/2, re), math.Copysign(0, im)}
	case math.IsNaN(re) || math.IsNaN(im):
		return NaN()
	}

	// 0.5*atan2 already lies in [-Pi/2, Pi/2], so no multiple of Pi
	// needs removing; its sign follows re on the cut |im| > 1.
	x2 := re * re
	a := 1 - x2 - im*im
	w := 0.5 * math.Atan2(2*re, a)

	t := im - 1
	b := x2 + t*t
	if b == 0 {
		return NaN()
	}
	t = im + 1
	c := (x2 + t*t) / b
	return Complex{w, 0.25 * math.Log(c)}
}

// Atanh returns the inverse hyperbolic tangent of x.

// Atanh 返回 x 的反双曲正切值。
func Atanh(x Complex) Complex {
	z := Complex{-x.im, x.re} // z = i * x
	z = Atan(z)
	return Complex{z.im, -z.re} // z = -i * z
}
