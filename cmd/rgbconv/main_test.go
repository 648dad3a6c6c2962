package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/rgbconv/rgb"
)

// runCLI executes the command with a clean environment and captured output
func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	for _, k := range []string{
		"RGBCONV_COLOR_MODE", "RGBCONV_LOG_LEVEL",
		"RGBCONV_JOBS", "RGBCONV_JOB_INTERVAL", "RGBCONV_POLL_INTERVAL",
	} {
		t.Setenv(k, "")
	}
	var out, errOut bytes.Buffer
	code = run(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_Usage(t *testing.T) {
	code, _, stderr := runCLI(t)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "Usage: rgbconv")

	code, stdout, _ := runCLI(t, "help")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "Commands:")

	code, _, stderr = runCLI(t, "paint")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, `unknown command "paint"`)

	code, _, _ = runCLI(t, "convert", "-h")
	assert.Equal(t, exitOK, code)

	code, _, _ = runCLI(t, "convert", "-bogus")
	assert.Equal(t, exitUsage, code)
}

func TestRun_BadCommonFlags(t *testing.T) {
	code, _, stderr := runCLI(t, "convert", "-color", "16", "1,2,3")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "unknown color mode")

	code, _, stderr = runCLI(t, "convert", "-log-level", "loud", "1,2,3")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "unknown log level")
}

func TestConvert(t *testing.T) {
	code, stdout, stderr := runCLI(t, "convert", "183,65,14", "0, 0, 0")
	assert.Equal(t, exitOK, code)
	assert.Empty(t, stderr)
	assert.Equal(t,
		"183,65,14 -> rgb(183, 65, 14) #b7410e xterm-130\n"+
			"0, 0, 0 -> rgb(0, 0, 0) #000000 xterm-16\n",
		stdout)
}

func TestConvert_Failures(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want string
	}{
		{"Out of range", "256,1000,10000", rgb.ErrOutOfRange.Error()},
		{"Negative", "-1,255,255", rgb.ErrOutOfRange.Error()},
		{"Beyond int16", "70000,0,0", rgb.ErrOutOfRange.Error()},
		{"Too long", "0,0,0,0", rgb.ErrBadLength.Error()},
		{"Too short", "0,0", rgb.ErrBadLength.Error()},
		{"Length before range", "999,999", rgb.ErrBadLength.Error()},
		{"Not a number", "a,b,c", "channel 0"},
		{"Empty", "", "channel 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, "convert", "-log-level", "error", "--", tt.arg)
			assert.Equal(t, exitFailure, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, tt.want)
		})
	}
}

func TestConvert_MixedKeepsGoing(t *testing.T) {
	code, stdout, _ := runCLI(t, "convert", "-log-level", "error", "300,0,0", "1,2,3")
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stdout, "#010203")
}

func TestConvert_Swatch(t *testing.T) {
	code, stdout, _ := runCLI(t, "convert", "-swatch", "-color", "truecolor", "183,65,14")
	assert.Equal(t, exitOK, code)
	assert.True(t, strings.HasPrefix(stdout, "\x1b[48;2;183;65;14m  \x1b[0m 183,65,14 -> "), stdout)
}

func TestConvert_DebugLogsMetrics(t *testing.T) {
	code, _, stderr := runCLI(t, "convert", "-log-level", "debug", "1,2,3", "1,2")
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr, "conversion outcomes")
	assert.Contains(t, stderr, "outcome=bad_length")
	assert.Contains(t, stderr, "outcome=ok")
}

func TestPalette_Builtin(t *testing.T) {
	code, stdout, stderr := runCLI(t, "palette")
	assert.Equal(t, exitOK, code)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, "rgb(183, 65, 14) #b7410e")
	assert.Contains(t, stdout, "white")
}

func TestPalette_FileWithErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[colors]
rust = [183, 65, 14]
huge = [256, 0, 0]
short = [1, 2]
`), 0o644))

	code, stdout, stderr := runCLI(t, "palette", "-log-level", "error", path)
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stdout, "rust rgb(183, 65, 14)")
	assert.NotContains(t, stdout, "huge")
	assert.Contains(t, stderr, `color "huge"`)
	assert.Contains(t, stderr, `color "short"`)
}

func TestPalette_MissingFile(t *testing.T) {
	code, _, stderr := runCLI(t, "palette", filepath.Join(t.TempDir(), "none.toml"))
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr, "open palette")
}

func TestPalette_Export(t *testing.T) {
	code, stdout, _ := runCLI(t, "palette", "-export")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "[colors]")
	assert.Contains(t, stdout, `rust = "#b7410e"`)
}

func TestNearest(t *testing.T) {
	code, stdout, _ := runCLI(t, "nearest", "183,65,14", "254,0,1")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "183,65,14 -> rust (dE 0.00)")
	assert.Contains(t, stdout, "254,0,1 -> red")

	code, _, _ = runCLI(t, "nearest")
	assert.Equal(t, exitUsage, code)

	code, _, stderr := runCLI(t, "nearest", "-log-level", "error", "1,2,3,4")
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr, rgb.ErrBadLength.Error())
}

func TestJobs(t *testing.T) {
	code, stdout, _ := runCLI(t, "jobs", "-n", "3", "-job-interval", "2ms", "-poll-interval", "1ms")

	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "waiting...")
	assert.True(t, strings.HasSuffix(stdout, "3 jobs completed\n"), stdout)
}

func TestJobs_InvalidConfig(t *testing.T) {
	code, _, stderr := runCLI(t, "jobs", "-poll-interval", "0s")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "intervals positive")
}

func TestCLIConfig(t *testing.T) {
	t.Setenv("RGBCONV_COLOR_MODE", "")
	t.Setenv("RGBCONV_LOG_LEVEL", "")
	assert.Equal(t, defaultCLIConfig(), loadCLIConfig())

	t.Setenv("RGBCONV_COLOR_MODE", "256")
	t.Setenv("RGBCONV_LOG_LEVEL", "debug")
	cfg := loadCLIConfig()
	assert.Equal(t, "256", cfg.ColorMode)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseTriple(t *testing.T) {
	vals, err := parseTriple("1, 2 ,3")
	require.NoError(t, err)
	assert.Equal(t, []int16{1, 2, 3}, vals)

	vals, err = parseTriple("-99999,99999")
	require.NoError(t, err)
	assert.Equal(t, []int16{-32768, 32767}, vals)

	_, err = parseTriple("1,,3")
	assert.Error(t, err)
}
