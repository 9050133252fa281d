// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmplx

import (
	"errors"
	"strconv"
	"strings"
)

// ErrSyntax indicates that a value does not have the right syntax for a complex number.

// ErrSyntax 表示值不符合复数的正确格式。
var ErrSyntax = errors.New("invalid syntax")

// ErrRange indicates that a component is out of range for a float64.

// ErrRange 表示某个分量超过了 float64 的范围。
var ErrRange = errors.New("value out of range")

// A ParseError records a failed conversion.

// ParseError 用来记录失败的转换。
type ParseError struct {
	Func  string // the failing function (Parse, UnmarshalText)
	Input string // the input
	Err   error  // the reason the conversion failed (ErrRange, ErrSyntax)
}

// Error returns the message of e, naming the function and the input.

// Error 返回 e 的信息，其中包括函数名和输入。
func (e *ParseError) Error() string {
	return "cmplx." + e.Func + ": " + "parsing " + strconv.Quote(e.Input) + ": " + e.Err.Error()
}

// Unwrap returns the reason the conversion failed.

// Unwrap 返回转换失败的原因。
func (e *ParseError) Unwrap() error { return e.Err }

// Parse converts the string s to a Complex. It accepts the forms
// produced by String, with or without the parentheses:
//	"3"       = 3+0i
//	"2i"      = 0+2i
//	"1-2.5i"  = 1-2.5i
//	"(-0+0i)" = -0+0i
//	"(+Inf+NaNi)"
// Each component is read by strconv.ParseFloat, so Inf, Infinity and NaN
// are accepted in any case and a sign may precede NaN. A lone real
// component gets a +0 imaginary part and a lone imaginary component a +0
// real part, as with Real and Imaginary.
//
// The errors that Parse returns have concrete type *ParseError.

// Parse 将字符串 s 转换为 Complex。它接受 String 产生的形式，
// 带或不带圆括号均可：
//	"3"       = 3+0i
//	"2i"      = 0+2i
//	"1-2.5i"  = 1-2.5i
//	"(-0+0i)" = -0+0i
//	"(+Inf+NaNi)"
// 每个分量由 strconv.ParseFloat 读取，因此 Inf、Infinity 和 NaN 不区分大小写，
// 且 NaN 之前可以带有符号。单独的实部会得到 +0 虚部，单独的虚部会得到 +0 实部，
// 与 Real 和 Imaginary 一样。
//
// Parse 返回的错误具有具体类型 *ParseError。
func Parse(s string) (Complex, error) {
	return parse("Parse", s)
}

func parse(fn, s string) (Complex, error) {
	body := s
	if len(body) >= 2 && body[0] == '(' && body[len(body)-1] == ')' {
		body = body[1 : len(body)-1]
	}
	if body == "" {
		return Complex{}, &ParseError{fn, s, ErrSyntax}
	}

	if body[len(body)-1] != 'i' {
		re, err := component(body)
		if err != nil {
			return Complex{}, &ParseError{fn, s, err}
		}
		return Real(re), nil
	}
	body = body[:len(body)-1]

	// The imaginary part starts at the last sign that is not part of
	// an exponent.
	split := -1
	for i := len(body) - 1; i > 0; i-- {
		if c := body[i]; c == '+' || c == '-' {
			switch body[i-1] {
			case 'e', 'E', 'p', 'P':
				continue
			}
			split = i
			break
		}
	}
	if split < 0 {
		im, err := component(body)
		if err != nil {
			return Complex{}, &ParseError{fn, s, err}
		}
		return Imaginary(im), nil
	}
	re, err := component(body[:split])
	if err != nil {
		return Complex{}, &ParseError{fn, s, err}
	}
	im, err := component(body[split:])
	if err != nil {
		return Complex{}, &ParseError{fn, s, err}
	}
	return Complex{re, im}, nil
}

// component parses a single float64 component.
func component(s string) (float64, error) {
	t := strings.TrimLeft(s, "+-")
	if len(s)-len(t) > 1 {
		return 0, ErrSyntax
	}
	if strings.EqualFold(t, "nan") {
		s = t
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, ErrRange
		}
		return 0, ErrSyntax
	}
	return f, nil
}
