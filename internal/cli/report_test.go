package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmellis/slidetrace/internal/store"
)

// archiveDeck extracts the fixture deck into a fresh database and
// returns the database path and the archived run id.
func archiveDeck(t *testing.T) (dbPath, runID string) {
	t.Helper()

	slides, sidecar := writeDeck(t)
	dbPath = filepath.Join(t.TempDir(), "runs.db")

	_, err := runCommand(t, defaultTestConfig,
		"extract", slides[0], slides[1], "--shapes", sidecar, "--db", dbPath)
	require.NoError(t, err)

	st, err := store.Open(dbPath)
	require.NoError(t, err)
	defer st.Close()

	runs, err := st.ListRuns(context.Background())
	require.NoError(t, err)
	require.Len(t, runs, 1)

	return dbPath, runs[0].ID
}

func TestReport_ListRuns(t *testing.T) {
	dbPath, runID := archiveDeck(t)

	out, err := runCommand(t, defaultTestConfig, "report", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, runID)
	assert.Contains(t, out, "2 slide(s)")
}

func TestReport_EmptyArchive(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	st, err := store.Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, st.Close())

	out, err := runCommand(t, defaultTestConfig, "report", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "no archived runs")
}

func TestReport_SingleRun(t *testing.T) {
	dbPath, runID := archiveDeck(t)

	out, err := runCommand(t, defaultTestConfig, "report", "--db", dbPath, runID)
	require.NoError(t, err)
	assert.Contains(t, out, "Slide 1: Welcome - 2 animation(s), entrance")
	assert.Contains(t, out, "[0] Title 1 - Fade (entrance), on click, 500ms")
}

func TestReport_RunNotFound(t *testing.T) {
	dbPath, _ := archiveDeck(t)

	_, err := runCommand(t, defaultTestConfig, "report", "--db", dbPath, "no-such-run")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestReport_NoDatabaseConfigured(t *testing.T) {
	_, err := runCommand(t, defaultTestConfig, "report")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestReport_DatabaseFileMissing(t *testing.T) {
	_, err := runCommand(t, defaultTestConfig,
		"report", "--db", filepath.Join(t.TempDir(), "missing.db"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

// The database path can come from the config file instead of --db.
func TestReport_DatabaseFromConfig(t *testing.T) {
	dbPath, runID := archiveDeck(t)

	out, err := runCommand(t, "database: "+dbPath+"\n", "report")
	require.NoError(t, err)
	assert.Contains(t, out, runID)
}
