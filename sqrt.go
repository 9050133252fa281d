// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmplx

import "math"

// The algorithm below is a simplified version of
// http://netlib.sandia.gov/cephes/c9x-complex/csqrt.c, Cephes Math
// Library Release 2.8, Copyright 1984, 1987, 1989, 1992, 2000 by
// Stephen L. Moshier.

// Complex square root
//
// If z = x + iy, r = |z|, then
//
//	Re w = [ (r + x)/2 ]**1/2
//	Im w = [ (r - x)/2 ]**1/2
//
// Cancellation error in r-x or r+x is avoided by using the
// identity 2 Re w Im w = y.

// 复数的平方根
//
// 若 z = x + iy，r = |z|，则
//
//	Re w = [ (r + x)/2 ]**1/2
//	Im w = [ (r - x)/2 ]**1/2
//
// 通过恒等式 2 Re w Im w = y 来避免 r-x 或 r+x 中的消去误差。

// Sqrt returns the square root of x.
// The result r is chosen so that real(r) ≥ 0 and imag(r) has the same
// sign as imag(x), including when imag(x) is a signed zero.
//
// Special cases are:
//	Sqrt(x±Infi) = +Inf±Infi for any x, including NaN
//	Sqrt(-Inf±yi) = +0±Infi for finite y
//	Sqrt(-Inf+NaNi) = NaN+Infi
//	Sqrt(+Inf±yi) = +Inf±0i for finite y
//	Sqrt(+Inf+NaNi) = +Inf+NaNi
//	Sqrt(x) = NaN+NaNi for any other x with a NaN component

// Sqrt 返回 x 的平方根。
// 其结果 r 的选取使得 real(r) ≥ 0，且 imag(r) 与 imag(x) 同号，
// 包括 imag(x) 为带符号零的情况。
//
// 特殊情况为：
//	对于任何 x，包括 NaN，Sqrt(x±Infi) = +Inf±Infi
//	对于有限的 y，Sqrt(-Inf±yi) = +0±Infi
//	Sqrt(-Inf+NaNi) = NaN+Infi
//	对于有限的 y，Sqrt(+Inf±yi) = +Inf±0i
//	Sqrt(+Inf+NaNi) = +Inf+NaNi
//	对于任何其它含有 NaN 分量的 x，Sqrt(x) = NaN+NaNi
func Sqrt(x Complex) Complex {
	re, im := x.re, x.im
	switch {
	case math.IsInf(im, 0):
		return Complex{math.Inf(1), im}
	case math.IsInf(re, -1):
		if math.IsNaN(im) {
			return Complex{im, math.Inf(1)}
		}
		return Complex{0, math.Copysign(math.Inf(1), im)}
	case math.IsInf(re, 1):
		if math.IsNaN(im) {
			return Complex{re, im}
		}
		return Complex{re, math.Copysign(0, im)}
	case math.IsNaN(re) || math.IsNaN(im):
		return NaN()
	case im == 0:
		// Ensure that imag(r) has the same sign as imag(x).
		if re == 0 {
			return Complex{0, im}
		}
		if re < 0 {
			return Complex{0, math.Copysign(math.Sqrt(-re), im)}
		}
		return Complex{math.Sqrt(re), im}
	case re == 0:
		a := math.Abs(im)
		var r float64
		if a < 0x1p-1021 {
			// Halving a subnormal would round away its low bit.
			r = math.Sqrt(a*9007199254740992) * 7.450580596923828125e-9 // 2**53, 2**-27
		} else {
			r = math.Sqrt(0.5 * a)
		}
		return Complex{r, math.Copysign(r, im)}
	}

	a, b := re, im
	var scale float64
	// Rescale to avoid internal overflow or underflow.
	if math.Abs(a) > 4 || math.Abs(b) > 4 {
		a *= 0.25
		b *= 0.25
		scale = 2
	} else {
		a *= 1.8014398509481984e16 // 2**54
		b *= 1.8014398509481984e16
		scale = 7.450580596923828125e-9 // 2**-27
	}
	r := Abs(Complex{a, b})
	var t float64
	if a > 0 {
		t = math.Sqrt(0.5*r + 0.5*a)
		r = scale * math.Abs((0.5*b)/t)
		t *= scale
	} else {
		r = math.Sqrt(0.5*r - 0.5*a)
		t = scale * math.Abs((0.5*b)/r)
		r *= scale
	}
	if b < 0 {
		return Complex{t, -r}
	}
	return Complex{t, r}
}
