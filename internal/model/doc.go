// Package model defines the domain types and value objects shared across
// the gzlaunch CLI.
//
// This package contains pure data structures with no external dependencies.
// A launch description is transient — it is rebuilt from scratch on every
// invocation and never persisted, so the types here carry no lifecycle
// state beyond a single command run.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
