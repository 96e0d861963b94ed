package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func writeCurve(t *testing.T, src string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "curve.yaml")
	require.NoError(t, os.WriteFile(name, []byte(src), 0o666))
	return name
}

func TestRun(t *testing.T) {
	file := writeCurve(t, `
kind: bspline
degree: 1
points: [[0], [10]]
knots: [0, 0, 1, 1]
samples: 3
`)
	var buf bytes.Buffer
	require.NoError(t, run(&buf, zaptest.NewLogger(t), file, options{}))
	assert.Equal(t, "t,x0\n0,0\n0.5,5\n1,10\n", buf.String())
}

func TestRunClampRange(t *testing.T) {
	file := writeCurve(t, `
kind: bspline
degree: 1
points: [[0], [10]]
knots: [0, 0, 1, 1]
extrapolation: clamp
`)
	var buf bytes.Buffer
	opts := options{samples: 2, from: -1, to: 2, hasFrom: true, hasTo: true}
	require.NoError(t, run(&buf, zaptest.NewLogger(t), file, opts))
	assert.Equal(t, "t,x0\n-1,0\n2,10\n", buf.String())
}

func TestRunParams(t *testing.T) {
	file := writeCurve(t, `
kind: bezier
points: [[0, 0], [2, 4]]
extrapolation: strict
params: [0.25, 2, 1]
`)
	var buf bytes.Buffer
	require.NoError(t, run(&buf, zaptest.NewLogger(t), file, options{}))
	// Strict extrapolation skips parameters outside the domain.
	assert.Equal(t, "t,x0,x1\n0.25,0.5,1\n1,2,4\n", buf.String())
}

func TestRunErrors(t *testing.T) {
	var buf bytes.Buffer
	err := run(&buf, zaptest.NewLogger(t), filepath.Join(t.TempDir(), "missing.yaml"), options{})
	require.Error(t, err)

	file := writeCurve(t, "kind: bezier\npoints: []\n")
	require.Error(t, run(&buf, zaptest.NewLogger(t), file, options{}))
	assert.Empty(t, buf.String())
}

func TestRootCmd(t *testing.T) {
	file := writeCurve(t, "kind: linear\npoints: [[1], [3]]\n")
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--samples", "3", file})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "t,x0\n0,1\n0.5,2\n1,3\n", buf.String())
}
