// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmplx

import (
	"fmt"
	"io"
	"strconv"
)

// String returns z in the form (re+imi), with each component formatted
// by strconv.FormatFloat(f, 'g', -1, 64). Signed zeros and special values
// are spelled out: (-0-0i), (+Inf+NaNi).

// String 以 (re+imi) 的形式返回 z，其每个分量由
// strconv.FormatFloat(f, 'g', -1, 64) 格式化。带符号的零和特殊值会被明确写出：
// (-0-0i)、(+Inf+NaNi)。
func (z Complex) String() string { return z.format('g', -1) }

// Format implements fmt.Formatter. The verbs %b %e %E %f %F %g %G %x %X
// format each component as for a float64, honoring the precision;
// %v and %s are %g.

// Format 实现了 fmt.Formatter 接口。动词 %b %e %E %f %F %g %G %x %X
// 按照 float64 的方式格式化每个分量，并遵循其精度；%v 和 %s 即为 %g。
func (z Complex) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		verb = 'g'
	case 'F':
		verb = 'f'
	case 'b', 'e', 'E', 'f', 'g', 'G', 'x', 'X':
	default:
		fmt.Fprintf(f, "%%!%c(cmplx.Complex=%s)", verb, z.String())
		return
	}
	prec := -1
	if p, ok := f.Precision(); ok {
		prec = p
	}
	io.WriteString(f, z.format(byte(verb), prec))
}

func (z Complex) format(verb byte, prec int) string {
	im := strconv.FormatFloat(z.im, verb, prec, 64)
	if im[0] != '+' && im[0] != '-' {
		im = "+" + im
	}
	return "(" + strconv.FormatFloat(z.re, verb, prec, 64) + im + "i)"
}

// MarshalText implements encoding.TextMarshaler using String.

// MarshalText 使用 String 实现了 encoding.TextMarshaler 接口。
func (z Complex) MarshalText() ([]byte, error) {
	return []byte(z.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.

// UnmarshalText 使用 Parse 实现了 encoding.TextUnmarshaler 接口。
func (z *Complex) UnmarshalText(text []byte) error {
	v, err := parse("UnmarshalText", string(text))
	if err != nil {
		return err
	}
	*z = v
	return nil
}
