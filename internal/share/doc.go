// Package share implements package-share lookup: resolving an installed
// package's shared resource directory from a prefix search path, so that
// included launch files can be located without hardcoded filesystem paths.
//
// The search path comes from the LAUNCH_PREFIX_PATH environment variable
// (colon-separated install prefixes). A package "pkg" installed under
// prefix "/opt/sim" has its share directory at "/opt/sim/share/pkg".
// The first prefix containing the package wins.
package share
