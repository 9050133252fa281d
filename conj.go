// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmplx

// Conj returns the complex conjugate of x.
// Conj(Conj(x)) is x, including the sign of a zero imaginary part.
// Conj does not always distribute over Add: when the imaginary parts are
// zeros of opposite sign, Conj(Add(a, b)) has imaginary part -0 while
// Add(Conj(a), Conj(b)) has +0.

// Conj 返回 x 的复数共轭。
// Conj(Conj(x)) 即为 x，包括零虚部的符号。
// Conj 对 Add 并不总是满足分配律：当两个虚部为符号相反的零时，
// Conj(Add(a, b)) 的虚部为 -0，而 Add(Conj(a), Conj(b)) 的虚部为 +0。
func Conj(x Complex) Complex { return Complex{x.re, -x.im} }
