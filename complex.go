// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmplx provides a complex number type and the arithmetic and
// transcendental functions on it, with the special values of IEEE-754
// (signed zeros, infinities and NaNs) handled the way C99 Annex G
// prescribes.
//
// A Complex never changes after it is built: every function takes its
// operands by value and returns a new Complex. No function returns an
// error or panics; an undefined result is reported through NaN or
// infinite components, exactly as with float64 arithmetic.

// cmplx 包提供了复数类型及其算术函数和超越函数，并按照 C99 附录 G 的规定
// 处理 IEEE-754 的特殊值（带符号的零、无穷大和非数值）。
//
// Complex 一经构造便不再改变：所有函数均按值接受操作数并返回新的 Complex。
// 任何函数都不会返回错误或引发恐慌；未定义的结果通过 NaN 或无穷大分量来表示，
// 这与 float64 算术完全相同。
package cmplx

import "math"

// A Complex is a pair of float64 components, the real part and the
// imaginary part. The sign of a zero component is preserved exactly as
// supplied. The zero value is 0+0i.

// Complex 是由两个 float64 分量（实部和虚部）组成的对。零分量的符号会按照
// 提供时的样子精确保留。其零值为 0+0i。
type Complex struct {
	re, im float64
}

// Real returns the complex number x+0i.
// The imaginary part is always positive zero.

// Real 返回复数 x+0i。其虚部总是正零。
func Real(x float64) Complex { return Complex{x, 0} }

// Imaginary returns the complex number 0+yi.
// The real part is always positive zero, whatever the sign of y.

// Imaginary 返回复数 0+yi。无论 y 的符号如何，其实部总是正零。
func Imaginary(y float64) Complex { return Complex{0, y} }

// Cartesian returns the complex number x+yi, storing both
// components verbatim.

// Cartesian 返回复数 x+yi，两个分量均原样保存。
func Cartesian(x, y float64) Complex { return Complex{x, y} }

// FromComplex128 converts a builtin complex128 to a Complex.

// FromComplex128 将内建的 complex128 转换为 Complex。
func FromComplex128(c complex128) Complex { return Complex{real(c), imag(c)} }

// Real returns the real part of z.

// Real 返回 z 的实部。
func (z Complex) Real() float64 { return z.re }

// Imag returns the imaginary part of z.

// Imag 返回 z 的虚部。
func (z Complex) Imag() float64 { return z.im }

// Complex128 converts z to the builtin complex128 type.

// Complex128 将 z 转换为内建的 complex128 类型。
func (z Complex) Complex128() complex128 { return complex(z.re, z.im) }

// isZero reports whether both components are zero, of either sign.
func (z Complex) isZero() bool { return z.re == 0 && z.im == 0 }

// isReal reports whether the imaginary part is zero, of either sign.
func (z Complex) isReal() bool { return z.im == 0 }

// Re returns the real part of z as the complex number Re(z)+0i.

// Re 以复数 Re(z)+0i 的形式返回 z 的实部。
func Re(z Complex) Complex { return Real(z.re) }

// Im returns the imaginary part of z as the complex number Im(z)+0i.

// Im 以复数 Im(z)+0i 的形式返回 z 的虚部。
func Im(z Complex) Complex { return Real(z.im) }

// Mag returns the absolute value of z as the complex number Abs(z)+0i.

// Mag 以复数 Abs(z)+0i 的形式返回 z 的绝对值。
func Mag(z Complex) Complex { return Real(Abs(z)) }

// Arg returns the phase of z as the complex number Phase(z)+0i.

// Arg 以复数 Phase(z)+0i 的形式返回 z 的相位。
func Arg(z Complex) Complex { return Real(Phase(z)) }

// mul returns x*y, except that zero times an infinity yields a zero
// whose sign is the product of the operand signs instead of NaN.
func mul(x, y float64) float64 {
	if (x == 0 && math.IsInf(y, 0)) || (y == 0 && math.IsInf(x, 0)) {
		if math.Signbit(x) != math.Signbit(y) {
			return math.Copysign(0, -1)
		}
		return 0
	}
	return x * y
}
