// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmplx

import "math"

// Equal reports whether x and y have the same components.
// Unlike ==, Equal tells +0 from -0 and treats a NaN component as equal
// to any other NaN component.

// Equal 报告 x 和 y 的分量是否相同。
// 与 == 不同，Equal 会区分 +0 和 -0，并将 NaN 分量视为与任何其它 NaN 分量相等。
func Equal(x, y Complex) bool {
	return same(x.re, y.re) && same(x.im, y.im)
}

func same(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return a == b && math.Signbit(a) == math.Signbit(b)
}
