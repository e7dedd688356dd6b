// Package model defines the domain types for the gzlaunch CLI.
//
// All entities in this package represent configuration values, not domain
// objects with lifecycle: a launch description is built once per invocation,
// handed to the caller, and discarded on process exit.
package model

import (
	"fmt"
	"regexp"
)

// argNameRegex validates launch argument names: lower_snake_case,
// starting with a letter. This matches the naming convention used by
// every launch description shipped with the toolkit (config_file,
// use_composition, world_sdf_file, ...).
var argNameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// ValidateArgumentName checks if the given name is a valid launch argument
// name. Valid names are lower_snake_case identifiers starting with a letter.
func ValidateArgumentName(name string) error {
	if name == "" {
		return fmt.Errorf("launch argument name must not be empty")
	}
	if !argNameRegex.MatchString(name) {
		return fmt.Errorf("invalid launch argument name %q: must be lower_snake_case and start with a letter", name)
	}
	return nil
}

// ExitCode defines standard CLI exit codes. These codes allow scripts and
// CI systems to programmatically determine the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitInvalidOverride indicates a launch argument override was
	// malformed or referenced an argument the description does not declare.
	ExitInvalidOverride ExitCode = 2

	// ExitPackageNotFound indicates a package-share lookup failed: an
	// included launch description's package could not be located on the
	// prefix search path.
	ExitPackageNotFound ExitCode = 3

	// ExitConfigFileError indicates the bridge configuration file is
	// missing, is not a regular file, or failed validation.
	ExitConfigFileError ExitCode = 4

	// ExitWorldFileError indicates the world SDF file is missing or is
	// not a regular file.
	ExitWorldFileError ExitCode = 5
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
// This follows Go's error wrapping convention introduced in Go 1.13.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
