// config.go defines the bridge configuration entry model and its loader.
package bridgecfg

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gz-tools/gzlaunch/internal/model"
)

// Direction specifies which way messages flow across a bridged topic.
type Direction string

const (
	// DirectionBidirectional bridges messages both ways. This is the
	// default when an entry omits the direction field.
	DirectionBidirectional Direction = "BIDIRECTIONAL"

	// DirectionGzToRos bridges simulator messages into ROS only.
	DirectionGzToRos Direction = "GZ_TO_ROS"

	// DirectionRosToGz bridges ROS messages into the simulator only.
	DirectionRosToGz Direction = "ROS_TO_GZ"
)

// String returns the string representation of Direction.
func (d Direction) String() string {
	return string(d)
}

// IsValid checks whether the Direction value is one of the predefined
// valid directions.
func (d Direction) IsValid() bool {
	switch d {
	case DirectionBidirectional, DirectionGzToRos, DirectionRosToGz:
		return true
	default:
		return false
	}
}

// ParseDirection converts a string to a Direction. The empty string maps
// to DirectionBidirectional, matching the bridge's own default. Any other
// unrecognized value is an error.
func ParseDirection(s string) (Direction, error) {
	if s == "" {
		return DirectionBidirectional, nil
	}
	d := Direction(strings.ToUpper(s))
	if !d.IsValid() {
		return "", fmt.Errorf("invalid direction: %q (valid: BIDIRECTIONAL, GZ_TO_ROS, ROS_TO_GZ)", s)
	}
	return d, nil
}

// Entry describes one bridged topic: the topic names on each side, the
// message types, and the bridging direction. Fields not relevant to
// preflight validation (QoS overrides and the like) are ignored by the
// YAML decoder.
type Entry struct {
	// TopicName is a shorthand that sets both RosTopicName and GzTopicName
	// when the per-side names are omitted.
	TopicName string `yaml:"topic_name,omitempty"`

	// RosTopicName is the topic name on the ROS side.
	RosTopicName string `yaml:"ros_topic_name,omitempty"`

	// GzTopicName is the topic name on the simulator side.
	GzTopicName string `yaml:"gz_topic_name,omitempty"`

	// RosTypeName is the fully qualified ROS message type,
	// e.g. "std_msgs/msg/String". Required.
	RosTypeName string `yaml:"ros_type_name"`

	// GzTypeName is the fully qualified simulator message type,
	// e.g. "gz.msgs.StringMsg". Required.
	GzTypeName string `yaml:"gz_type_name"`

	// Direction controls the message flow. Empty means bidirectional.
	Direction string `yaml:"direction,omitempty"`

	// PublisherQueue is the publisher queue depth. Zero means the bridge
	// default.
	PublisherQueue int `yaml:"publisher_queue,omitempty"`

	// SubscriberQueue is the subscriber queue depth. Zero means the
	// bridge default.
	SubscriberQueue int `yaml:"subscriber_queue,omitempty"`

	// Lazy defers connection setup until the topic has subscribers.
	Lazy bool `yaml:"lazy,omitempty"`
}

// RosTopic returns the effective ROS-side topic name, applying the
// topic_name shorthand.
func (e *Entry) RosTopic() string {
	if e.RosTopicName != "" {
		return e.RosTopicName
	}
	return e.TopicName
}

// GzTopic returns the effective simulator-side topic name, applying the
// topic_name shorthand.
func (e *Entry) GzTopic() string {
	if e.GzTopicName != "" {
		return e.GzTopicName
	}
	return e.TopicName
}

// Validate checks whether the entry is complete enough for the bridge to
// act on it: both sides must end up with a topic name, both type names
// must be present, the direction must parse, and queue depths must not be
// negative.
func (e *Entry) Validate() error {
	if e.RosTopic() == "" {
		return fmt.Errorf("entry is missing a ROS topic name (set topic_name or ros_topic_name)")
	}
	if e.GzTopic() == "" {
		return fmt.Errorf("entry is missing a simulator topic name (set topic_name or gz_topic_name)")
	}
	if e.RosTypeName == "" {
		return fmt.Errorf("entry for topic %q is missing ros_type_name", e.RosTopic())
	}
	if e.GzTypeName == "" {
		return fmt.Errorf("entry for topic %q is missing gz_type_name", e.RosTopic())
	}
	if _, err := ParseDirection(e.Direction); err != nil {
		return fmt.Errorf("entry for topic %q: %w", e.RosTopic(), err)
	}
	if e.PublisherQueue < 0 || e.SubscriberQueue < 0 {
		return fmt.Errorf("entry for topic %q: queue depths must not be negative", e.RosTopic())
	}
	return nil
}

// Load reads a bridge configuration file and parses it into its entry
// list. The file must contain a YAML sequence of entries.
//
// Returns a CLIError with ExitConfigFileError if the file does not exist,
// is not a regular file, or cannot be parsed.
func Load(path string) ([]Entry, error) {
	// Sanity check before reading: the bridge refuses config paths that
	// exist but are not regular files (directories, sockets, ...), so the
	// preflight applies the same rule.
	info, err := os.Stat(path)
	if err != nil {
		return nil, model.WrapCLIError(
			model.ExitConfigFileError,
			fmt.Sprintf("bridge config file not found: %s", path),
			err,
		)
	}
	if !info.Mode().IsRegular() {
		return nil, model.NewCLIError(
			model.ExitConfigFileError,
			fmt.Sprintf("bridge config path %s is not a regular file", path),
		)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, model.WrapCLIError(
			model.ExitConfigFileError,
			fmt.Sprintf("failed to read bridge config file %s", path),
			err,
		)
	}

	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, model.WrapCLIError(
			model.ExitConfigFileError,
			fmt.Sprintf("failed to parse bridge config file %s", path),
			err,
		)
	}

	return entries, nil
}

// ValidateEntries validates every entry and rejects duplicate ROS-side
// topic names, which would make the bridge create conflicting endpoints.
func ValidateEntries(entries []Entry) error {
	if len(entries) == 0 {
		return fmt.Errorf("bridge config contains no entries")
	}

	// Track seen ROS topics to detect duplicates across entries.
	seen := make(map[string]int)

	for i := range entries {
		if err := entries[i].Validate(); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		topic := entries[i].RosTopic()
		if prev, exists := seen[topic]; exists {
			return fmt.Errorf("entries %d and %d both bridge ROS topic %q", prev, i, topic)
		}
		seen[topic] = i
	}
	return nil
}
