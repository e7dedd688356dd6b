// Package bringup builds the launch description for the standard
// simulation bringup: the simulation server and the ROS↔simulator bridge,
// optionally composed into one shared component container.
//
// The description declares eight overridable launch arguments and includes
// two sub-launch descriptions — the bridge launcher (ros_gz_bridge) and
// the server launcher (ros_gz_sim) — forwarding the arguments each one
// consumes. The builder performs no validation and spawns nothing: it
// emits a static composition graph for a host launch runner to interpret.
package bringup
