// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmplx

import "math"

// The definition below is from
// http://netlib.sandia.gov/cephes/c9x-complex/clog.c, Cephes Math
// Library Release 2.8, Copyright 1984, 1987, 1989, 1992, 2000 by
// Stephen L. Moshier.

// Complex natural logarithm
//
//	z = x + iy, r = sqrt( x**2 + y**2 )
//	w = log(r) + i arctan(y/x)
//
// The arctangent ranges from -PI to +PI.

// 复数的自然对数
//
//	z = x + iy, r = sqrt( x**2 + y**2 )
//	w = log(r) + i arctan(y/x)
//
// 其反正切范围从 -Pi 至 +Pi。

// Log returns the natural logarithm of x, Log(Abs(x)) + Phase(x)i.
//
// Special cases follow from Abs and Phase:
//	Log(±0±0i) = -Inf + Phase(x)i, e.g. Log(-0+0i) = -Inf+Pii
//	Log(x) = +Inf+NaNi if one component is infinite and the other NaN

// Log 返回 x 的自然对数，即 Log(Abs(x)) + Phase(x)i。
//
// 特殊情况由 Abs 和 Phase 决定：
//	Log(±0±0i) = -Inf + Phase(x)i，例如 Log(-0+0i) = -Inf+Pii
//	若一个分量为无穷大且另一个为 NaN，则 Log(x) = +Inf+NaNi
func Log(x Complex) Complex {
	return Complex{math.Log(Abs(x)), Phase(x)}
}

// Log10 returns the decimal logarithm of x.

// Log10 返回 x 的十进制对数。
func Log10(x Complex) Complex {
	z := Log(x)
	return Complex{math.Log10E * z.re, math.Log10E * z.im}
}
