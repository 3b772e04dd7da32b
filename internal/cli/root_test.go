package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmellis/slidetrace/internal/testutil"
)

// runCommand executes the CLI with an isolated config file so the
// machine's real search path never leaks into tests.
func runCommand(t *testing.T, cfgContent string, args ...string) (string, error) {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), "slidetrace.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgContent), 0o644))

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))

	err := cmd.Execute()
	return out.String(), err
}

const defaultTestConfig = "workers: 2\nformat: text\n"

// writeSlide drops fixture markup into a temp file and returns its path.
func writeSlide(t *testing.T, name string, markup []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, markup, 0o644))
	return path
}

func TestRoot_InvalidFormat(t *testing.T) {
	slide := writeSlide(t, "slide1.xml", testutil.NoTimingSlide())

	_, err := runCommand(t, defaultTestConfig, "extract", slide, "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestRoot_InvalidConfigRejected(t *testing.T) {
	slide := writeSlide(t, "slide1.xml", testutil.NoTimingSlide())

	_, err := runCommand(t, "workers: 0\n", "extract", slide)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workers")
}

// An unset --format flag picks up the config file's format.
func TestRoot_FormatFromConfig(t *testing.T) {
	slide := writeSlide(t, "slide1.xml", testutil.NoTimingSlide())

	out, err := runCommand(t, "format: json\n", "extract", slide)
	require.NoError(t, err)
	assert.Contains(t, out, `"run_id"`)
}

// The flag wins over the config file when both are set.
func TestRoot_FormatFlagOverridesConfig(t *testing.T) {
	slide := writeSlide(t, "slide1.xml", testutil.NoTimingSlide())

	out, err := runCommand(t, "format: json\n", "extract", slide, "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "Slide 1:")
	assert.NotContains(t, out, `"run_id"`)
}
