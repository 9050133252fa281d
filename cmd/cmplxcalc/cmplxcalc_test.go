// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"
)

func run(args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	cmd := NewCommand(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestEval(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"mul", "(+Inf+0i)", "(0+4i)"}, "(0+Infi)\n"},
		{[]string{"div", "1", "(-0)"}, "(-Inf+0i)\n"},
		{[]string{"sqrt", "(-4-0i)"}, "(0-2i)\n"},
		{[]string{"pow", "0", "0"}, "(1+0i)\n"},
		{[]string{"neg", "0"}, "(-0-0i)\n"},
		{[]string{"polar", "1", "(+Inf)"}, "(NaN+NaNi)\n"},
		{[]string{"-f", "f", "-p", "2", "exp", "1"}, "(2.72+0.00i)\n"},
		{[]string{"--format=e", "--precision=1", "add", "1", "2i"}, "(1.0e+00+2.0e+00i)\n"},
	}
	for _, tt := range tests {
		out, _, err := run(tt.args...)
		require.NoError(t, err, "%v", tt.args)
		assert.Equal(t, tt.want, out, "%v", tt.args)
	}
}

func TestEvalJSON(t *testing.T) {
	out, _, err := run("-o", "json", "div", "1", "(-0)")
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"op": "div",
		"args": ["(1+0i)", "(-0+0i)"],
		"result": "(-Inf+0i)",
		"class": "infinite"
	}`, out)
}

func TestEvalYAML(t *testing.T) {
	out, _, err := run("-o", "yaml", "sqrt", "(-4)")
	require.NoError(t, err)
	var r result
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, result{Op: "sqrt", Args: []string{"(-4+0i)"}, Result: "(0+2i)", Class: "finite"}, r)
}

func TestClass(t *testing.T) {
	for args, want := range map[string]string{
		"(0+0i)":      "zero",
		"(-0-0i)":     "zero",
		"(1+2i)":      "finite",
		"(NaN+1i)":    "nan",
		"(+Inf+NaNi)": "infinite",
	} {
		out, _, err := run("-o", "json", "conj", args)
		require.NoError(t, err)
		assert.Contains(t, out, `"class": "`+want+`"`, args)
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		args []string
		err  string
	}{
		{[]string{"-o", "xml", "neg", "1"}, `unknown output format "xml"`},
		{[]string{"-f", "x", "neg", "1"}, `unknown component format "x"`},
		{[]string{"neg", "1+"}, `cmplx.Parse: parsing "1+": invalid syntax`},
		{[]string{"add", "1"}, "accepts 2 arg(s), received 1"},
	}
	for _, tt := range tests {
		out, errOut, err := run(tt.args...)
		require.Error(t, err, "%v", tt.args)
		assert.EqualError(t, err, tt.err)
		assert.Empty(t, out)
		assert.Contains(t, errOut, tt.err)
	}
}

func TestOps(t *testing.T) {
	out, _, err := run("ops")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, []string{"NAME", "OPERANDS", "DESCRIPTION"}, strings.Fields(lines[0]))
	assert.Contains(t, out, "principal square root")
	var found bool
	for _, line := range lines[1:] {
		if f := strings.Fields(line); len(f) > 1 && f[0] == "pow" {
			assert.Equal(t, "2", f[1])
			found = true
		}
	}
	assert.True(t, found, "pow not listed")
}

func TestCheck(t *testing.T) {
	dir, err := ioutil.TempDir("", "cmplxcalc")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, ioutil.WriteFile(good, []byte(`op: neg
cases:
- args: ["0"]
  want: "(-0-0i)"
`), 0644))
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, ioutil.WriteFile(bad, []byte(`op: neg
cases:
- args: ["0"]
  want: "(0+0i)"
- args: ["1"]
  want: "(-1-0i)"
`), 0644))

	out, _, err := run("check", good)
	require.NoError(t, err)
	assert.Equal(t, "ok\t"+good+"\t1 cases\n", out)

	out, _, err = run("check", good, bad)
	assert.EqualError(t, err, "1 mismatches")
	assert.Contains(t, out, "ok\t"+good)
	assert.Contains(t, out, "FAIL\t"+bad+"\tneg case 0: [0] = (-0-0i), want (0+0i)\n")

	_, _, err = run("check")
	assert.Error(t, err)
}

func TestCheckTestdata(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("..", "..", "testdata", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, files)
	out, _, err := run(append([]string{"check"}, files...)...)
	require.NoError(t, err, out)
	assert.NotContains(t, out, "FAIL")
}
