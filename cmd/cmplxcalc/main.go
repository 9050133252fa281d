// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Cmplxcalc evaluates complex-number operations from the command line
// and checks special-value tables.
//
// Usage:
//
//	cmplxcalc [flags] OP ARG...
//	cmplxcalc ops
//	cmplxcalc check FILE...
//
// Operands use the syntax of cmplx.Parse. An operand starting with a
// minus sign must be parenthesized, or follow "--", so that it is not
// taken for a flag:
//
//	cmplxcalc mul '(-1+2i)' 3-4i
//	cmplxcalc -o yaml div 1 '(-0)'
package main

import (
	"os"

	"k8s.io/klog"
)

func main() {
	cmd := NewCommand(os.Stdout, os.Stderr)
	err := cmd.Execute()
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
