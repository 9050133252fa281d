// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmplx

import "math"

// Complex multiplication
//
// The textbook formula
//
//	(a+bi)(c+di) = (ac-bd) + (ad+bc)i
//
// is exact in its signed zeros for finite operands, but gives NaN as soon
// as one of the four partial products is 0*Inf, even though the product
// of a zero component and an infinite operand is well defined. For
// example (Inf+0i)(0+4i) would yield NaN+Infi instead of 0+Infi.
// When an operand has an infinite component the partial products are
// recomputed with 0*Inf taken as a signed zero, as in C99 Annex G.

// 复数乘法
//
// 教科书公式
//
//	(a+bi)(c+di) = (ac-bd) + (ad+bc)i
//
// 对有限操作数而言，其带符号零的结果是精确的；然而一旦四个部分积中有一个为
// 0*Inf，它就会得到 NaN，尽管零分量与无穷大操作数之积是有明确定义的。
// 例如 (Inf+0i)(0+4i) 将得到 NaN+Infi 而非 0+Infi。
// 当某个操作数含有无穷大分量时，部分积会以带符号零代替 0*Inf 重新计算，
// 与 C99 附录 G 一致。

// Mul returns the product x*y.
//
// Special cases are:
//	a zero component times an infinite component contributes a signed zero
//	if both components of the product are NaN and an operand is infinite,
//	    the infinite operand's parts become ±1 or ±0, NaN parts of the
//	    other operand become ±0, and the product is recomputed scaled by +Inf

// Mul 返回积 x*y。
//
// 特殊情况为：
//	零分量乘以无穷大分量的部分积为带符号的零
//	若积的两个分量均为 NaN 且某个操作数为无穷大，则该操作数的分量变为 ±1 或 ±0，
//	    另一操作数的 NaN 分量变为 ±0，并以 +Inf 为比例重新计算积
func Mul(x, y Complex) Complex {
	a, b, c, d := x.re, x.im, y.re, y.im
	if !IsInf(x) && !IsInf(y) {
		// Explicit conversions keep the products from fusing.
		return Complex{float64(a*c) - float64(b*d), float64(a*d) + float64(b*c)}
	}
	re := float64(mul(a, c)) - float64(mul(b, d))
	im := float64(mul(a, d)) + float64(mul(b, c))
	if math.IsNaN(re) && math.IsNaN(im) {
		// Recover the infinities, as in C99 G.5.1.
		if IsInf(x) {
			a = math.Copysign(unit(math.IsInf(a, 0)), a)
			b = math.Copysign(unit(math.IsInf(b, 0)), b)
			c, d = nanToZero(c), nanToZero(d)
		}
		if IsInf(y) {
			c = math.Copysign(unit(math.IsInf(c, 0)), c)
			d = math.Copysign(unit(math.IsInf(d, 0)), d)
			a, b = nanToZero(a), nanToZero(b)
		}
		inf := math.Inf(1)
		re = inf * (float64(a*c) - float64(b*d))
		im = inf * (float64(a*d) + float64(b*c))
	}
	return Complex{re, im}
}

// nanToZero returns x, or a zero with the sign of x if x is NaN.
func nanToZero(x float64) float64 {
	if math.IsNaN(x) {
		return math.Copysign(0, x)
	}
	return x
}
