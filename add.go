// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmplx

// Add returns the sum x+y, computed component by component.

// Add 返回和 x+y，按分量计算。
func Add(x, y Complex) Complex { return Complex{x.re + y.re, x.im + y.im} }

// Sub returns the difference x-y, computed as Add(x, Neg(y)).

// Sub 返回差 x-y，以 Add(x, Neg(y)) 的方式计算。
func Sub(x, y Complex) Complex { return Add(x, Neg(y)) }

// Neg returns -x. Both signs are flipped, so Neg(0+0i) is -0-0i
// and Neg(Neg(x)) is x.

// Neg 返回 -x。两个分量的符号都会翻转，因此 Neg(0+0i) 为 -0-0i，
// 而 Neg(Neg(x)) 即为 x。
func Neg(x Complex) Complex { return Complex{-x.re, -x.im} }
