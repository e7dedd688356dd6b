// Package launch implements the launch-description building blocks used by
// gzlaunch: argument declarations, deferred substitutions, and inclusion
// requests, assembled into an ordered, immutable description.
//
// The package follows a two-phase model:
//
//   - Declaration phase: a builder constructs a Description from actions.
//     Substitutions are placeholder tokens at this point — no values are
//     looked up and no filesystem access happens.
//   - Resolution phase: a Context (seeded with caller overrides and,
//     optionally, a package-share resolver) walks the description in order
//     and produces the resolved view. Resolution is the host runner's job;
//     this package only implements enough of it to power inspection
//     front-ends such as "gzlaunch describe" and "gzlaunch check".
//
// Substitutions that cannot be resolved locally (package-share lookups
// without a resolver attached) resolve to their symbolic form, e.g.
// "$(find-pkg-share ros_gz_bridge)", leaving final resolution to the runner.
package launch
