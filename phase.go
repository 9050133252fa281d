// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmplx

import "math"

// Phase returns the phase (also called the argument) of x.
// The returned value is in the range [-Pi, Pi], and follows the
// signed-zero conventions of math.Atan2:
//	Phase(-0-0i) = -Pi
//	Phase(-0+0i) = +Pi
//	Phase(+0-0i) = -0
// Phase returns NaN if either component is NaN.

// Phase 返回 x 的相位（亦称为辐角）。
// 其返回值在区间 [-Pi, Pi] 内，并遵循 math.Atan2 对带符号零的约定：
//	Phase(-0-0i) = -Pi
//	Phase(-0+0i) = +Pi
//	Phase(+0-0i) = -0
// 若任一分量为 NaN，Phase 返回 NaN。
func Phase(x Complex) float64 { return math.Atan2(x.im, x.re) }
