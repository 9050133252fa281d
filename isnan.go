// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmplx

import "math"

// IsNaN returns true if either real(x) or imag(x) is NaN
// and neither is an infinity.

// IsNaN 在 real(x) 或 imag(x) 其中之一为 NaN 且另一个不为无限大值时返回 true。
func IsNaN(x Complex) bool {
	switch {
	case math.IsInf(x.re, 0) || math.IsInf(x.im, 0):
		return false
	case math.IsNaN(x.re) || math.IsNaN(x.im):
		return true
	}
	return false
}

// NaN returns a complex ``not-a-number'' value.

// NaN 返回一个复数的“非数值”。
func NaN() Complex {
	nan := math.NaN()
	return Complex{nan, nan}
}

// IsInf returns true if either real(x) or imag(x) is an infinity.

// IsInf 在 real(x) 或 imag(x) 其中之一为无限大值时返回 true。
func IsInf(x Complex) bool {
	return math.IsInf(x.re, 0) || math.IsInf(x.im, 0)
}

// Inf returns a complex infinity, complex(+Inf, +Inf).

// Inf 返回一个复数的无穷大值 complex(+Inf, +Inf)。
func Inf() Complex {
	inf := math.Inf(1)
	return Complex{inf, inf}
}
