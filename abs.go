// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmplx

import "math"

// Abs returns the absolute value (also called the modulus) of x,
// taking care to avoid unnecessary overflow and underflow.
//
// Special cases are:
//	Abs(x) = +Inf if real(x) or imag(x) is infinite, even if the other is NaN
//	Abs(x) = NaN if real(x) or imag(x) is NaN and neither is infinite

// Abs 返回 x 的绝对值（亦称为模），小心避免不必要的向上溢出和向下溢出。
//
// 特殊情况为：
//	若 real(x) 或 imag(x) 为无穷大，即使另一个为 NaN，Abs(x) = +Inf
//	若 real(x) 或 imag(x) 为 NaN 且两者都不为无穷大，Abs(x) = NaN
func Abs(x Complex) float64 {
	p, q := x.re, x.im
	switch {
	case math.IsInf(p, 0) || math.IsInf(q, 0):
		return math.Inf(1)
	case math.IsNaN(p) || math.IsNaN(q):
		return math.NaN()
	}
	p, q = math.Abs(p), math.Abs(q)
	if p < q {
		p, q = q, p
	}
	if p == 0 {
		return 0
	}
	q = q / p
	return p * math.Sqrt(1+q*q)
}
