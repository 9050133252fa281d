// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmplx

import "math"

// Exp returns e**x, the base-e exponential of x, computed as
// exp(real(x))*cos(imag(x)) + exp(real(x))*sin(imag(x))i so that each
// component overflows or underflows on its own.
//
// Special cases are (in order):
//	Exp(x±Infi) = NaN+NaNi for any x, including -Inf
//	Exp(x+NaNi) = NaN+NaNi for any x
//	Exp(+Inf+yi) = Inf*cos(y) + Inf*sin(y)i, with Inf*0 = ±0
//	Exp(-Inf+yi) = ±0±0i, signed by cos(y) and sin(y)

// Exp 返回 e**x，即以 e 为底的 x 次幂，以
// exp(real(x))*cos(imag(x)) + exp(real(x))*sin(imag(x))i 的方式计算，
// 使得每个分量各自向上溢出或向下溢出。
//
// 特殊情况为（按顺序）：
//	对于任何 x，包括 -Inf，Exp(x±Infi) = NaN+NaNi
//	对于任何 x，Exp(x+NaNi) = NaN+NaNi
//	Exp(+Inf+yi) = Inf*cos(y) + Inf*sin(y)i，其中 Inf*0 = ±0
//	Exp(-Inf+yi) = ±0±0i，其符号由 cos(y) 和 sin(y) 决定
func Exp(x Complex) Complex {
	if math.IsInf(x.im, 0) || math.IsNaN(x.im) {
		return NaN()
	}
	r := math.Exp(x.re)
	s, c := math.Sincos(x.im)
	return Complex{mul(r, c), mul(r, s)}
}
