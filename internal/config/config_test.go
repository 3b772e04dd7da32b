package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "slidetrace.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "text", cfg.Format)
	assert.Empty(t, cfg.Database)
	assert.False(t, cfg.FailFast)
}

// A partial file only overrides the keys it names.
func TestLoad_PartialOverride(t *testing.T) {
	cfg, err := Load(writeConfig(t, "format: json\n"))
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, 4, cfg.Workers)
}

func TestLoad_AllFields(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
workers: 8
format: json
database: runs.db
fail_fast: true
`))
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "runs.db", cfg.Database)
	assert.True(t, cfg.FailFast)
}

func TestLoad_MissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	// Run from an empty directory so no ./slidetrace.yaml is found.
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Validation(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"zero workers", "workers: 0\n"},
		{"negative workers", "workers: -2\n"},
		{"bad format", "format: xml\n"},
		{"not yaml", "workers: [unterminated\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content))
			assert.Error(t, err)
		})
	}
}
