// bringup.go assembles the sim-server + bridge launch description.
package bringup

import (
	"github.com/gz-tools/gzlaunch/internal/launch"
)

// Packages and launch files the bringup includes. The paths are relative
// to each package's share directory; resolution happens at launch time via
// package-share lookup, never against a hardcoded install location.
const (
	// BridgePackage provides the ROS↔simulator bridge launcher.
	BridgePackage = "ros_gz_bridge"

	// BridgeLaunchFile is the bridge launcher, relative to the bridge
	// package's share directory.
	BridgeLaunchFile = "ros_gz_bridge.launch.yaml"

	// ServerPackage provides the simulation server launcher.
	ServerPackage = "ros_gz_sim"

	// ServerLaunchFile is the server launcher, relative to the server
	// package's share directory.
	ServerLaunchFile = "gz_server.launch.yaml"
)

// DefaultContainerName is the shared component container used when
// composition is enabled.
const DefaultContainerName = "ros_gz_container"

// NewDescription builds the bringup launch description: eight argument
// declarations followed by the bridge inclusion and the server inclusion.
//
// The action list is deterministic — declarations first, in a fixed order,
// then the two inclusions. Beyond declare-before-reference there is no
// dependency between the inclusions; the host runner may start them in any
// order or concurrently.
func NewDescription() *launch.Description {
	configFile := launch.Configuration("config_file")
	containerName := launch.Configuration("container_name")
	namespace := launch.Configuration("namespace")
	useComposition := launch.Configuration("use_composition")
	useRespawn := launch.Configuration("use_respawn")
	logLevel := launch.Configuration("log_level")

	worldSdfFile := launch.Configuration("world_sdf_file")
	worldSdfString := launch.Configuration("world_sdf_string")

	d := launch.New()

	// Declare the launch options. Values are unconstrained strings: even
	// the boolean-like arguments are forwarded uninterpreted, and the
	// included descriptions decide what they mean.
	d.Add(launch.DeclareArgument{
		Name: "config_file", Default: launch.Text(""), Description: "YAML config file",
	})
	d.Add(launch.DeclareArgument{
		Name:        "container_name",
		Default:     launch.Text(DefaultContainerName),
		Description: "Name of container that nodes will load in if use composition",
	})
	d.Add(launch.DeclareArgument{
		Name: "namespace", Default: launch.Text(""), Description: "Top-level namespace",
	})
	d.Add(launch.DeclareArgument{
		Name: "use_composition", Default: launch.Text("False"), Description: "Use composed bringup if True",
	})
	d.Add(launch.DeclareArgument{
		Name:        "use_respawn",
		Default:     launch.Text("False"),
		Description: "Whether to respawn if a node crashes. Applied when composition is disabled.",
	})
	d.Add(launch.DeclareArgument{
		Name: "log_level", Default: launch.Text("info"), Description: "log level",
	})
	d.Add(launch.DeclareArgument{
		Name: "world_sdf_file", Default: launch.Text(""), Description: "Path to the SDF world file",
	})
	d.Add(launch.DeclareArgument{
		Name: "world_sdf_string", Default: launch.Text(""), Description: "SDF world string",
	})

	// Bridge inclusion: forwards everything the bridge launcher consumes.
	d.Add(launch.Include{
		Source: []launch.Substitution{
			launch.PathJoin{
				launch.PackageShare(BridgePackage),
				launch.Text("launch"),
				launch.Text(BridgeLaunchFile),
			},
		},
		Arguments: []launch.Binding{
			{Name: "config_file", Value: configFile},
			{Name: "container_name", Value: containerName},
			{Name: "namespace", Value: namespace},
			{Name: "use_composition", Value: useComposition},
			{Name: "use_respawn", Value: useRespawn},
			{Name: "log_level", Value: logLevel},
		},
	})

	// Server inclusion: world source plus the shared composition flag.
	// world_sdf_file and world_sdf_string are forwarded independently —
	// supplying both, or neither, is passed through as-is and left to the
	// server launcher to interpret.
	d.Add(launch.Include{
		Source: []launch.Substitution{
			launch.PathJoin{
				launch.PackageShare(ServerPackage),
				launch.Text("launch"),
				launch.Text(ServerLaunchFile),
			},
		},
		Arguments: []launch.Binding{
			{Name: "world_sdf_file", Value: worldSdfFile},
			{Name: "world_sdf_string", Value: worldSdfString},
			{Name: "use_composition", Value: useComposition},
		},
	})

	return d
}
