// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmplx

import "math"

// Div returns the quotient x/y.
//
// The quotient is computed with Smith's algorithm, dividing through by
// the larger component of y so that large divisors do not overflow
// (Robert L. Smith: Algorithm 116: Complex division.
// Commun. ACM 5(8): 435 (1962)).
//
// Special cases are:
//	Div(x, ±0±0i) = NaN+NaNi if x is zero or has a NaN component
//	Div(x, ±0±0i) = each nonzero component of x becomes an infinity,
//	    signed by its own sign times the sign of real(y); each zero
//	    component becomes +0
//	Div(x, y) = signed infinities for infinite x and finite y
//	Div(x, y) = signed zeros for finite x and infinite y
//	a component computing 0/0 or Inf/Inf is NaN

// Div 返回商 x/y。
//
// 商通过 Smith 算法计算：以 y 中较大的分量作除数，使得较大的除数不会向上溢出
// （Robert L. Smith：Algorithm 116: Complex division.
// Commun. ACM 5(8): 435 (1962)）。
//
// 特殊情况为：
//	若 x 为零或含有 NaN 分量，则 Div(x, ±0±0i) = NaN+NaNi
//	Div(x, ±0±0i) = x 的每个非零分量变为无穷大，其符号为该分量的符号乘以
//	    real(y) 的符号；每个零分量变为 +0
//	对于无穷大的 x 和有限的 y，Div(x, y) 为带符号的无穷大
//	对于有限的 x 和无穷大的 y，Div(x, y) 为带符号的零
//	计算 0/0 或 Inf/Inf 的分量为 NaN
func Div(x, y Complex) Complex {
	a, b, c, d := x.re, x.im, y.re, y.im
	if y.isZero() {
		return divZero(x, y)
	}

	var e, f float64
	if math.Abs(c) >= math.Abs(d) {
		ratio := d / c
		denom := c + float64(mul(ratio, d))
		e = (a + float64(mul(b, ratio))) / denom
		f = (b - float64(mul(a, ratio))) / denom
	} else {
		ratio := c / d
		denom := d + float64(mul(ratio, c))
		e = (float64(mul(a, ratio)) + b) / denom
		f = (float64(mul(b, ratio)) - a) / denom
	}

	if math.IsNaN(e) && math.IsNaN(f) {
		// Recover infinities and zeros that the scaled formula lost,
		// as in C99 G.5.1.
		switch {
		case (math.IsInf(a, 0) || math.IsInf(b, 0)) && isFinite(c) && isFinite(d):
			a = math.Copysign(unit(math.IsInf(a, 0)), a)
			b = math.Copysign(unit(math.IsInf(b, 0)), b)
			inf := math.Inf(1)
			e = inf * (a*c + b*d)
			f = inf * (b*c - a*d)
		case (math.IsInf(c, 0) || math.IsInf(d, 0)) && isFinite(a) && isFinite(b):
			c = math.Copysign(unit(math.IsInf(c, 0)), c)
			d = math.Copysign(unit(math.IsInf(d, 0)), d)
			e = 0 * (a*c + b*d)
			f = 0 * (b*c - a*d)
		default:
			return NaN()
		}
	}
	return Complex{e, f}
}

// Inv returns the reciprocal 1/x.

// Inv 返回倒数 1/x。
func Inv(x Complex) Complex { return Div(Real(1), x) }

// divZero divides x by a zero y.
func divZero(x, y Complex) Complex {
	a, b := x.re, x.im
	if math.IsNaN(a) || math.IsNaN(b) || x.isZero() {
		return NaN()
	}
	s := math.Copysign(math.Inf(1), y.re)
	return Complex{overZero(a, s), overZero(b, s)}
}

// overZero returns x divided by a zero whose reciprocal is s.
func overZero(x, s float64) float64 {
	if x == 0 {
		return 0
	}
	return x * s
}

func isFinite(x float64) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

func unit(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
