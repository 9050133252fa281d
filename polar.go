// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmplx

import "math"

// Polar returns the complex number r * e**θi, computed as
// r*cos(θ) + r*sin(θ)i. Neither r nor θ is normalized, so a negative
// r with θ = 0 gives -r-0i.
//
// Special cases are:
//	Polar(r, ±Inf) = NaN+NaNi
//	Polar(r, NaN) = NaN+NaNi

// Polar 返回复数 r * e**θi，即 r*cos(θ) + r*sin(θ)i。r 和 θ 都不会被规范化，
// 因此负数 r 与 θ = 0 将得到 -r-0i。
//
// 特殊情况为：
//	Polar(r, ±Inf) = NaN+NaNi
//	Polar(r, NaN) = NaN+NaNi
func Polar(r, θ float64) Complex {
	if math.IsInf(θ, 0) || math.IsNaN(θ) {
		return NaN()
	}
	s, c := math.Sincos(θ)
	return Complex{r * c, r * s}
}

// ToPolar returns the absolute value r and phase θ of x,
// such that x = r * e**θi.
// The phase is in the range [-Pi, Pi].

// ToPolar 返回 x 的绝对值 r 和相位 θ，使得 x = r * e**θi。
// 其相位在区间 [-Pi, Pi] 内。
func ToPolar(x Complex) (r, θ float64) {
	return Abs(x), Phase(x)
}
