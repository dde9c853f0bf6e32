package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llxisdsh/parcount"
)

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestHelpExitsWithoutCounting(t *testing.T) {
	code, out, _ := runCLI(t, "-h")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "USAGE:")
	assert.Contains(t, out, "-threadType <winAPI | std | atomic>")
	assert.NotContains(t, out, "Num of elements")
}

func TestRunCountsGeneratedSequence(t *testing.T) {
	for _, tt := range []string{"winAPI", "std", "atomic"} {
		code, out, errOut := runCLI(t, "-n", "5", "-t", "1", "-num", "10", "-seed", "7", "-threadType", tt)
		require.Equal(t, 0, code, errOut)

		cfg := defaultConfig()
		cfg.Length, cfg.Seed = 10, 7
		want := parcount.Reference(generate(cfg), 5)

		assert.Contains(t, out, "Max number: 5")
		assert.Contains(t, out, "Threads num: 1")
		assert.Contains(t, out, "Array length: 10")
		assert.Contains(t, out, "Thread type: "+tt)
		assert.Contains(t, out, "Multi threaded region has finished in ")
		assert.Contains(t, out, fmt.Sprintf("Num of elements greater than 5 is %d\n", want))
	}
}

func TestVerbosityLevels(t *testing.T) {
	_, quiet, _ := runCLI(t, "-num", "6", "-t", "2", "-seed", "3", "-v", "0")
	_, seq, _ := runCLI(t, "-num", "6", "-t", "2", "-seed", "3", "-v", "1")
	_, loud, _ := runCLI(t, "-num", "6", "-t", "2", "-seed", "3", "-v", "2")

	cfg := defaultConfig()
	cfg.Length, cfg.Seed = 6, 3
	var line strings.Builder
	for _, v := range generate(cfg) {
		fmt.Fprintf(&line, "%d ", v)
	}

	assert.NotContains(t, quiet, line.String())
	assert.Contains(t, seq, line.String())
	assert.NotContains(t, seq, "worker is speaking")
	assert.Equal(t, 2, strings.Count(loud, "worker is speaking"))
	assert.Equal(t, 2, strings.Count(loud, "worker finished"))
}

func TestEmptySequenceWithManyWorkers(t *testing.T) {
	code, out, _ := runCLI(t, "-num", "0", "-t", "3", "-threadType", "std")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Num of elements greater than 0 is 0\n")
}

func TestInvalidConfiguration(t *testing.T) {
	cases := [][]string{
		{"-t", "0"},
		{"-t", "-4"},
		{"-num", "-1"},
		{"-min", "5", "-max", "5"},
		{"-num", "3", "-min", "-9223372036854775808", "-max", "9223372036854775807"},
		{"-num", "3", "-min", "-1", "-max", "9223372036854775807"},
	}
	for _, args := range cases {
		code, out, errOut := runCLI(t, args...)
		assert.Equal(t, 1, code, "%v", args)
		assert.Contains(t, errOut, "invalid configuration", "%v", args)
		assert.NotContains(t, out, "Num of elements")
	}
}

func TestMalformedArguments(t *testing.T) {
	cases := [][]string{
		{"-n", "abc"},
		{"-t", "1.5"},
		{"-threadType", "posix"},
		{"-num"},
	}
	for _, args := range cases {
		code, out, errOut := runCLI(t, args...)
		assert.Equal(t, 2, code, "%v", args)
		assert.NotEmpty(t, errOut, "%v", args)
		assert.Contains(t, errOut, "USAGE:", "%v", args)
		assert.NotContains(t, out, "USAGE:", "%v", args)
		assert.NotContains(t, out, "Num of elements", "%v", args)
	}
}

func TestMalformedIntegerReportsParseError(t *testing.T) {
	code, out, errOut := runCLI(t, "-n", "abc")
	assert.Equal(t, 2, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, `invalid value "abc" for flag -n`)
}

func TestConfigFileWithFlagOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
threshold: 3
workers: 4
length: 12
thread_type: atomic
fetch_add: true
seed: 99
verbosity: 0
`), 0o644))

	cfg, err := parseArgs([]string{"-config", path, "-t", "2"}, &bytes.Buffer{}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Threshold)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 12, cfg.Length)
	assert.Equal(t, parcount.Shared, cfg.Discipline)
	assert.True(t, cfg.FetchAdd)
	assert.Equal(t, uint64(99), cfg.Seed)
	assert.Equal(t, 0, cfg.Verbosity)
	assert.Equal(t, 1, cfg.Min)
	assert.Equal(t, 10, cfg.Max)

	code, out, errOut := runCLI(t, "-config", path)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Threads num: 4")
	assert.Contains(t, out, "Thread type: atomic")
}

func TestConfigFileErrors(t *testing.T) {
	code, _, errOut := runCLI(t, "-config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "read config")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("thread_type: posix\n"), 0o644))
	code, _, errOut = runCLI(t, "-config", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unknown discipline")
}

func TestGenerateRange(t *testing.T) {
	cfg := defaultConfig()
	cfg.Length, cfg.Seed, cfg.Min, cfg.Max = 1000, 5, -3, 4
	for _, v := range generate(cfg) {
		assert.GreaterOrEqual(t, v, -3)
		assert.Less(t, v, 4)
	}
	assert.Equal(t, generate(cfg), generate(cfg))
}
