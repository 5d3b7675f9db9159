package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestMultiplyCommand(t *testing.T) {
	out, _, err := run(t, "multiply", "--workers", "4", "--a", "{1 2 3, 4 5 6}", "--b", "{7 8, 9 10, 11 12}")
	require.NoError(t, err)
	assert.Equal(t, "{58 64, 139 154}\n", out)
}

func TestMultiplyCommandSequentialFloat(t *testing.T) {
	out, _, err := run(t, "mul", "--sequential", "--type", "float64", "--a", "{0.5 1}", "--b", "{4, 2}")
	require.NoError(t, err)
	assert.Equal(t, "{4}\n", out)
}

func TestMultiplyCommandMismatch(t *testing.T) {
	_, _, err := run(t, "multiply", "--a", "{1 2 3, 4 5 6}", "--b", "{1 2, 3 4}")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dimension mismatch")
}

func TestMultiplyCommandBadInput(t *testing.T) {
	_, _, err := run(t, "multiply", "--a", "{1 2", "--b", "{1}")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "--a:"), err.Error())

	_, _, err = run(t, "multiply", "--type", "complex", "--a", "{1}", "--b", "{1}")
	assert.ErrorContains(t, err, "unsupported --type")
}

func TestDebugLogging(t *testing.T) {
	_, stderr, err := run(t, "--log-level", "debug", "--log-format", "json", "multiply", "--a", "{1 2}", "--b", "{3, 4}")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"multiply assembled"`)
	assert.Contains(t, stderr, `"run":"`)
}

func TestInvalidLogFlags(t *testing.T) {
	_, _, err := run(t, "--log-format", "xml", "info")
	assert.ErrorContains(t, err, "invalid --log-format")

	_, _, err = run(t, "--log-level", "chatty", "info")
	assert.ErrorContains(t, err, "invalid --log-level")
}

func TestInfoCommand(t *testing.T) {
	out, _, err := run(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "GOARCH:")
	assert.Contains(t, out, "Default workers:")
}

func TestBenchCommand(t *testing.T) {
	out, _, err := run(t, "bench", "--size", "40", "--runs", "1", "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "40 x 40, 1,600 tasks, 2 workers, 1 runs")
	assert.Contains(t, out, "pooled (shared pool)")

	_, _, err = run(t, "bench", "--size", "0")
	assert.Error(t, err)
}
