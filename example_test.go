// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmplx_test

import (
	"fmt"
	"math"

	"github.com/ieee754/cmplx"
)

func ExampleMul() {
	// A zero component times an infinity is a zero, not NaN.
	// 零分量乘以无穷大得到零，而非 NaN。
	x := cmplx.Real(math.Inf(1))
	y := cmplx.Imaginary(4)
	fmt.Println(cmplx.Mul(x, y))
	// Output: (0+Infi)
}

func ExampleDiv() {
	negz := math.Copysign(0, -1)
	fmt.Println(cmplx.Div(cmplx.Real(1), cmplx.Real(0)))
	fmt.Println(cmplx.Div(cmplx.Real(1), cmplx.Real(negz)))
	fmt.Println(cmplx.Div(cmplx.Real(0), cmplx.Real(0)))
	// Output:
	// (+Inf+0i)
	// (-Inf+0i)
	// (NaN+NaNi)
}

func ExampleSqrt() {
	negz := math.Copysign(0, -1)
	fmt.Println(cmplx.Sqrt(cmplx.Real(-4)))
	fmt.Println(cmplx.Sqrt(cmplx.Cartesian(-4, negz)))
	// Output:
	// (0+2i)
	// (0-2i)
}

func ExamplePow() {
	fmt.Println(cmplx.Pow(cmplx.Real(0), cmplx.Real(0)))
	fmt.Println(cmplx.Pow(cmplx.Real(-2), cmplx.Real(3)))
	fmt.Println(cmplx.Pow(cmplx.Real(0), cmplx.Cartesian(0, 3)))
	// Output:
	// (1+0i)
	// (-8+0i)
	// (NaN+NaNi)
}

func ExampleEqual() {
	negz := math.Copysign(0, -1)
	fmt.Println(cmplx.Real(0) == cmplx.Real(negz), cmplx.Equal(cmplx.Real(0), cmplx.Real(negz)))
	fmt.Println(cmplx.NaN() == cmplx.NaN(), cmplx.Equal(cmplx.NaN(), cmplx.NaN()))
	// Output:
	// true false
	// false true
}

func ExampleParse() {
	z, err := cmplx.Parse("(-0+Infi)")
	fmt.Println(z, err)
	_, err = cmplx.Parse("1+2j")
	fmt.Println(err)
	// Output:
	// (-0+Infi) <nil>
	// cmplx.Parse: parsing "1+2j": invalid syntax
}

func ExampleComplex_Format() {
	z := cmplx.Cartesian(math.Pi, -math.E)
	fmt.Printf("%v\n", z)
	fmt.Printf("%.2f\n", z)
	fmt.Printf("%.3e\n", z)
	// Output:
	// (3.141592653589793-2.718281828459045i)
	// (3.14-2.72i)
	// (3.142e+00-2.718e+00i)
}
