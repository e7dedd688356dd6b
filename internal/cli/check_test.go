// Package cli — check_test.go contains unit tests for the preflight check
// helpers behind the "gzlaunch check" command.
package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gz-tools/gzlaunch/internal/model"
)

// writeFile creates a file with the given content under a temp dir and
// returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestCheckIncludeSource verifies the regular-file requirement for
// included launch files.
func TestCheckIncludeSource(t *testing.T) {
	path := writeFile(t, "bridge.launch.yaml", "actions: []")

	result := checkIncludeSource("bridge include source", path)
	assert.Equal(t, checkOK, result.Status)

	result = checkIncludeSource("bridge include source", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, checkFail, result.Status)
	assert.Equal(t, model.ExitPackageNotFound, result.code)

	// A directory at the source path is not a launch file.
	result = checkIncludeSource("bridge include source", t.TempDir())
	assert.Equal(t, checkFail, result.Status)
}

// TestCheckConfigFile covers the unset, valid, missing, and invalid cases.
func TestCheckConfigFile(t *testing.T) {
	t.Run("unset is ok", func(t *testing.T) {
		result := checkConfigFile("")
		assert.Equal(t, checkOK, result.Status)
		assert.Equal(t, "not set", result.Detail)
	})

	t.Run("valid config", func(t *testing.T) {
		path := writeFile(t, "bridge.yaml", `
- topic_name: "clock"
  ros_type_name: "rosgraph_msgs/msg/Clock"
  gz_type_name: "gz.msgs.Clock"
  direction: GZ_TO_ROS
`)
		result := checkConfigFile(path)
		assert.Equal(t, checkOK, result.Status)
		assert.Contains(t, result.Detail, "1 entries")
	})

	t.Run("missing file", func(t *testing.T) {
		result := checkConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Equal(t, checkFail, result.Status)
		assert.Equal(t, model.ExitConfigFileError, result.code)
	})

	t.Run("invalid entries", func(t *testing.T) {
		path := writeFile(t, "bridge.yaml", `
- topic_name: "clock"
  direction: GZ_TO_ROS
`)
		result := checkConfigFile(path)
		assert.Equal(t, checkFail, result.Status)
		assert.Contains(t, result.Detail, "ros_type_name")
	})
}

// TestCheckWorldSources covers the file check and the both-sources warning.
func TestCheckWorldSources(t *testing.T) {
	t.Run("neither set", func(t *testing.T) {
		results := checkWorldSources("", "")
		require.Len(t, results, 1)
		assert.Equal(t, checkOK, results[0].Status)
	})

	t.Run("file exists", func(t *testing.T) {
		path := writeFile(t, "empty.sdf", "<sdf version='1.9'/>")
		results := checkWorldSources(path, "")
		require.Len(t, results, 1)
		assert.Equal(t, checkOK, results[0].Status)
	})

	t.Run("file missing", func(t *testing.T) {
		results := checkWorldSources(filepath.Join(t.TempDir(), "nope.sdf"), "")
		require.Len(t, results, 1)
		assert.Equal(t, checkFail, results[0].Status)
		assert.Equal(t, model.ExitWorldFileError, results[0].code)
	})

	t.Run("inline string only is ok", func(t *testing.T) {
		results := checkWorldSources("", "<sdf version='1.9'/>")
		require.Len(t, results, 1)
		assert.Equal(t, checkOK, results[0].Status)
	})

	t.Run("both set warns but does not fail", func(t *testing.T) {
		path := writeFile(t, "empty.sdf", "<sdf version='1.9'/>")
		results := checkWorldSources(path, "<sdf version='1.9'/>")
		require.Len(t, results, 2)
		assert.Equal(t, checkOK, results[0].Status)
		assert.Equal(t, checkWarn, results[1].Status)
	})
}
