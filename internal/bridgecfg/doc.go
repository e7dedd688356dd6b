// Package bridgecfg handles parsing and validation of bridge configuration
// files — the YAML topic-bridging table the ROS↔simulator bridge consumes
// via the config_file launch argument.
//
// The launch description itself forwards config_file unvalidated; this
// package exists for the "gzlaunch check" preflight, which refuses to hand
// the runner a config the bridge would reject at startup.
//
// Key responsibilities:
//   - Load and parse the YAML entry list (gopkg.in/yaml.v3)
//   - Normalize the topic_name shorthand into per-side topic names
//   - Validate required type names and the bridging direction enum
package bridgecfg
