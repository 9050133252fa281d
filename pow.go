// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmplx

import "math"

// The definition below is from
// http://netlib.sandia.gov/cephes/c9x-complex/cpow.c, Cephes Math
// Library Release 2.8, Copyright 1984, 1987, 1989, 1992, 2000 by
// Stephen L. Moshier.

// Complex power function
//
// Raises complex A to the complex Zth power.
// Definition is per AMS55 # 4.2.8,
// analytically equivalent to cpow(a,z) = cexp(z clog(a)).
// The error grows with |z clog(a)|.

// 复数的幂函数
//
// 求出复数 A 的复数 Z 次幂。
// 定义遵循 AMS55 # 4.2.8，
// 解析式等价于 cpow(a,z) = cexp(z clog(a))。
// 其误差随 |z clog(a)| 增大。

// Pow returns x**y, the base-x exponential of y, computed as
// Exp(Mul(y, Log(x))) outside the special cases.
//
// Special cases are (in order):
//	Pow(x, ±0±0i) = 1+0i for any x, including zero, infinite and NaN x
//	Pow(a+0i, b+0i) = math.Pow(a, b)+0i whenever math.Pow defines it,
//	    so that Pow(-2, 3) = -8+0i exactly
//	Pow(1±0i, y) = 1+0i
//	Pow(±0±0i, y) = 0+0i for real(y) > 0
//	Pow(±0±0i, y) = Inf+Infi for real(y) < 0
//	Pow(±0±0i, y) = NaN+NaNi otherwise

// Pow 返回 x**y，即以 x 为底的 y 次幂；在特殊情况之外，
// 以 Exp(Mul(y, Log(x))) 的方式计算。
//
// 特殊情况为（按顺序）：
//	对于任何 x，包括零、无穷大和 NaN，Pow(x, ±0±0i) = 1+0i
//	只要 math.Pow 有定义，Pow(a+0i, b+0i) = math.Pow(a, b)+0i，
//	    因此 Pow(-2, 3) 精确等于 -8+0i
//	Pow(1±0i, y) = 1+0i
//	对于 real(y) > 0，Pow(±0±0i, y) = 0+0i
//	对于 real(y) < 0，Pow(±0±0i, y) = Inf+Infi
//	其它情况下 Pow(±0±0i, y) = NaN+NaNi
func Pow(x, y Complex) Complex {
	if y.isZero() {
		return Complex{1, 0}
	}
	if x.isReal() && y.isReal() {
		a, b := x.re, y.re
		if v := math.Pow(a, b); !math.IsNaN(v) || math.IsNaN(a) || math.IsNaN(b) {
			return Real(v)
		}
	}
	if x.re == 1 && x.im == 0 {
		return Complex{1, 0}
	}
	if x.isZero() {
		// The rotation imag(y)*Log(0) is unbounded, so only the
		// magnitude, decided by real(y), survives.
		switch r := y.re; {
		case r > 0:
			return Complex{}
		case r < 0:
			return Inf()
		}
		return NaN()
	}
	return Exp(Mul(y, Log(x)))
}
