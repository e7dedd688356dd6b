package bridgecfg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gz-tools/gzlaunch/internal/model"
)

// writeConfig writes a bridge config fixture into a temp dir and returns
// its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bridge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// validConfig is a realistic two-entry bridge config exercising both the
// per-side topic names and the topic_name shorthand.
const validConfig = `
- ros_topic_name: "chatter"
  gz_topic_name: "/chatter"
  ros_type_name: "std_msgs/msg/String"
  gz_type_name: "gz.msgs.StringMsg"
  direction: BIDIRECTIONAL
- topic_name: "clock"
  ros_type_name: "rosgraph_msgs/msg/Clock"
  gz_type_name: "gz.msgs.Clock"
  direction: GZ_TO_ROS
  lazy: true
  subscriber_queue: 5
`

// TestLoad_ValidConfig verifies parsing of a well-formed config, including
// the topic_name shorthand and optional fields.
func TestLoad_ValidConfig(t *testing.T) {
	entries, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "chatter", entries[0].RosTopic())
	assert.Equal(t, "/chatter", entries[0].GzTopic())
	assert.Equal(t, "std_msgs/msg/String", entries[0].RosTypeName)

	// Shorthand applies to both sides.
	assert.Equal(t, "clock", entries[1].RosTopic())
	assert.Equal(t, "clock", entries[1].GzTopic())
	assert.True(t, entries[1].Lazy)
	assert.Equal(t, 5, entries[1].SubscriberQueue)

	assert.NoError(t, ValidateEntries(entries))
}

// TestLoad_MissingFile verifies the missing-file case carries the config
// exit code.
func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitConfigFileError, cliErr.Code)
}

// TestLoad_DirectoryRejected verifies that a directory at the config path
// is rejected rather than read.
func TestLoad_DirectoryRejected(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a regular file")
}

// TestLoad_MalformedYAML verifies parse failures carry the config exit code.
func TestLoad_MalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "{not a sequence"))
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitConfigFileError, cliErr.Code)
}

// TestParseDirection covers the enum including the empty-string default.
func TestParseDirection(t *testing.T) {
	tests := []struct {
		input   string
		want    Direction
		wantErr bool
	}{
		{"", DirectionBidirectional, false},
		{"BIDIRECTIONAL", DirectionBidirectional, false},
		{"gz_to_ros", DirectionGzToRos, false},
		{"ROS_TO_GZ", DirectionRosToGz, false},
		{"SIDEWAYS", "", true},
	}

	for _, tt := range tests {
		got, err := ParseDirection(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

// TestValidateEntries_Failures covers the per-entry and cross-entry
// validation rules.
func TestValidateEntries_Failures(t *testing.T) {
	base := Entry{
		TopicName:   "chatter",
		RosTypeName: "std_msgs/msg/String",
		GzTypeName:  "gz.msgs.StringMsg",
	}

	t.Run("empty list", func(t *testing.T) {
		assert.Error(t, ValidateEntries(nil))
	})

	t.Run("missing topic names", func(t *testing.T) {
		e := base
		e.TopicName = ""
		assert.ErrorContains(t, ValidateEntries([]Entry{e}), "topic name")
	})

	t.Run("missing ros type", func(t *testing.T) {
		e := base
		e.RosTypeName = ""
		assert.ErrorContains(t, ValidateEntries([]Entry{e}), "ros_type_name")
	})

	t.Run("missing gz type", func(t *testing.T) {
		e := base
		e.GzTypeName = ""
		assert.ErrorContains(t, ValidateEntries([]Entry{e}), "gz_type_name")
	})

	t.Run("bad direction", func(t *testing.T) {
		e := base
		e.Direction = "SIDEWAYS"
		assert.ErrorContains(t, ValidateEntries([]Entry{e}), "invalid direction")
	})

	t.Run("negative queue", func(t *testing.T) {
		e := base
		e.PublisherQueue = -1
		assert.ErrorContains(t, ValidateEntries([]Entry{e}), "negative")
	})

	t.Run("duplicate ros topic", func(t *testing.T) {
		other := base
		other.GzTopicName = "/other"
		assert.ErrorContains(t, ValidateEntries([]Entry{base, other}), "both bridge")
	})
}
