// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	goflag "flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"k8s.io/klog"
	"sigs.k8s.io/yaml"

	"github.com/ieee754/cmplx"
	"github.com/ieee754/cmplx/internal/opset"
	"github.com/ieee754/cmplx/internal/table"
)

type options struct {
	out       io.Writer
	output    string
	format    string
	precision int
}

// result is the structured form of an evaluation, printed by -o json
// and -o yaml. Components are strings so that NaN and infinities survive.
type result struct {
	Op     string   `json:"op"`
	Args   []string `json:"args"`
	Result string   `json:"result"`
	Class  string   `json:"class"`
}

// NewCommand returns the cmplxcalc command tree, writing results to out
// and diagnostics to errOut.
func NewCommand(out, errOut io.Writer) *cobra.Command {
	o := &options{out: out}
	root := &cobra.Command{
		Use:   "cmplxcalc",
		Short: "Evaluate complex arithmetic with IEEE-754 special values",
		Long: "cmplxcalc applies one complex operation to its operands and prints the result.\n" +
			"Operands use the syntax (re+imi); parenthesize operands that start with '-'.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.validate()
		},
	}
	root.SetOutput(errOut)

	flags := root.PersistentFlags()
	flags.StringVarP(&o.output, "output", "o", "text", "Output format: text, json or yaml.")
	flags.StringVarP(&o.format, "format", "f", "g", "Component format: g, e or f.")
	flags.IntVarP(&o.precision, "precision", "p", -1, "Digits of precision for -f; -1 prints the shortest exact form.")

	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	flags.AddGoFlagSet(klogFlags)

	for _, name := range opset.Names() {
		op, _ := opset.Lookup(name)
		root.AddCommand(o.opCommand(op))
	}
	root.AddCommand(o.opsCommand(), o.checkCommand())
	return root
}

func (o *options) validate() error {
	switch o.output {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unknown output format %q", o.output)
	}
	switch o.format {
	case "g", "e", "f":
	default:
		return fmt.Errorf("unknown component format %q", o.format)
	}
	return nil
}

func (o *options) opCommand(op *opset.Op) *cobra.Command {
	operands := make([]string, op.Arity)
	for i := range operands {
		operands[i] = fmt.Sprintf("Z%d", i+1)
	}
	return &cobra.Command{
		Use:   op.Name + " " + strings.Join(operands, " "),
		Short: op.Doc,
		Args:  cobra.ExactArgs(op.Arity),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.eval(op, args)
		},
	}
}

func (o *options) eval(op *opset.Op, args []string) error {
	z := make([]cmplx.Complex, len(args))
	for i, s := range args {
		v, err := cmplx.Parse(s)
		if err != nil {
			return err
		}
		z[i] = v
	}
	got, err := op.Apply(z...)
	if err != nil {
		return err
	}
	klog.V(2).Infof("%s %v = %v", op.Name, z, got)

	r := result{Op: op.Name, Result: o.sprint(got), Class: class(got)}
	for _, v := range z {
		r.Args = append(r.Args, o.sprint(v))
	}
	return o.print(r)
}

func (o *options) sprint(z cmplx.Complex) string {
	return fmt.Sprintf("%.*"+o.format, o.precision, z)
}

func (o *options) print(r result) error {
	switch o.output {
	case "json":
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(o.out, "%s\n", data)
		return err
	case "yaml":
		data, err := yaml.Marshal(r)
		if err != nil {
			return err
		}
		_, err = o.out.Write(data)
		return err
	}
	_, err := fmt.Fprintln(o.out, r.Result)
	return err
}

// class names the kind of value z is.
func class(z cmplx.Complex) string {
	switch {
	case cmplx.IsInf(z):
		return "infinite"
	case cmplx.IsNaN(z):
		return "nan"
	case z.Real() == 0 && z.Imag() == 0:
		return "zero"
	}
	return "finite"
}

func (o *options) opsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List the available operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(o.out, 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tOPERANDS\tDESCRIPTION")
			for _, name := range opset.Names() {
				op, _ := opset.Lookup(name)
				fmt.Fprintf(w, "%s\t%d\t%s\n", op.Name, op.Arity, op.Doc)
			}
			return w.Flush()
		},
	}
}

func (o *options) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Check special-value tables",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.check(args)
		},
	}
}

func (o *options) check(paths []string) error {
	failed := 0
	for _, path := range paths {
		t, err := table.LoadFile(path)
		if err != nil {
			return err
		}
		bad, err := t.Check()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		klog.V(1).Infof("%s: %s: %d cases, %d mismatches", path, t.Op, len(t.Cases), len(bad))
		for _, m := range bad {
			fmt.Fprintf(o.out, "FAIL\t%s\t%s %v\n", path, t.Op, m)
		}
		if len(bad) == 0 {
			fmt.Fprintf(o.out, "ok\t%s\t%d cases\n", path, len(t.Cases))
		}
		failed += len(bad)
	}
	if failed > 0 {
		return fmt.Errorf("%d mismatches", failed)
	}
	return nil
}
