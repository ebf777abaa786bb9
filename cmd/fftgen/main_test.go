package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runMain(args ...string) (code int, stdout, stderr string) {
	var out, errBuf bytes.Buffer
	code = doMain(&out, &errBuf, args)
	return code, out.String(), errBuf.String()
}

func TestDoMainMissingPointsFails(t *testing.T) {
	code, _, stderr := runMain()
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "-n/--points is required")
}

func TestDoMainHelpExitsZeroWithoutGenerating(t *testing.T) {
	code, stdout, _ := runMain("-h")
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "Usage: fftgen")
}

func TestDoMainVersionExitsZero(t *testing.T) {
	code, stdout, _ := runMain("-V")
	require.Equal(t, 0, code)
	require.NotEmpty(t, strings.TrimSpace(stdout))
}

func TestDoMainGeneratesToStdout(t *testing.T) {
	code, stdout, stderr := runMain("-n", "2")
	require.Equal(t, 0, code)
	require.Empty(t, stderr)
	require.Contains(t, stdout, "tr = xr[1];")
}

func TestDoMainRejectsNonPowerOfTwo(t *testing.T) {
	code, _, stderr := runMain("-n", "3")
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "fftgen: n must be a positive power of two")
}

func TestDoMainShorthandBundlingMatchesLongForm(t *testing.T) {
	bundled, bundledOut, _ := runMain("-rsn4")
	longForm, longOut, _ := runMain("-r", "-s", "-n", "4")

	require.Equal(t, 0, bundled)
	require.Equal(t, 0, longForm)
	require.Equal(t, longOut, bundledOut)
}

func TestDoMainVerboseIsRepeatable(t *testing.T) {
	code, _, stderr := runMain("-n", "2", "-vv")
	require.Equal(t, 0, code)
	require.Contains(t, stderr, "generating fragment")
}
