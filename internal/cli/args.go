// Package cli — args.go implements the "gzlaunch args" command.
//
// The args command lists the launch arguments the bringup description
// declares: name, default value, and description. This is the discovery
// surface users consult before overriding anything with name:=value.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gz-tools/gzlaunch/internal/launch"
)

// NewArgsCommand creates the "args" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewArgsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "args",
		Short: "List the declared launch arguments",
		Long: `List the launch arguments declared by the bringup description, with
their default values and descriptions.

Every argument is overridable at describe/check time with name:=value.

Examples:
  gzlaunch args
  gzlaunch args --json`,

		// No positional arguments are required for the args command.
		Args: cobra.NoArgs,

		// RunE returns an error to the root command's error handler.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArgs()
		},
	}

	return cmd
}

// runArgs resolves the bringup description with no overrides and prints
// the declaration table.
func runArgs() error {
	resolved, err := resolveBringup(nil, nil)
	if err != nil {
		return err
	}
	VerboseLog("Description declares %d argument(s)", len(resolved.Arguments))

	printArgsResult(resolved.Arguments)
	return nil
}

// printArgsResult outputs the argument table in text or JSON format,
// depending on the global --json flag.
func printArgsResult(args []launch.ResolvedArgument) {
	if IsJSONOutput() {
		printArgsResultJSON(args)
	} else {
		printArgsResultText(args)
	}
}

// argJSON is the JSON output structure for a single launch argument in
// the args command.
type argJSON struct {
	Name        string `json:"name"`
	Default     string `json:"default"`
	Description string `json:"description"`
}

// printArgsResultJSON outputs the argument list as structured JSON.
// The top-level key is "arguments" containing an array of argument objects.
func printArgsResultJSON(args []launch.ResolvedArgument) {
	type resultJSON struct {
		Arguments []argJSON `json:"arguments"`
	}

	result := resultJSON{
		// Use an empty slice instead of nil to ensure JSON output shows []
		// instead of null for an argument-free description.
		Arguments: make([]argJSON, 0, len(args)),
	}

	for _, arg := range args {
		result.Arguments = append(result.Arguments, argJSON{
			Name:        arg.Name,
			Default:     arg.Default,
			Description: arg.Description,
		})
	}

	// MarshalIndent produces human-readable JSON with 2-space indentation.
	data, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(data))
}

// printArgsResultText outputs the argument list as a human-readable
// text table with aligned columns.
//
// The table format is:
//
//	NAME              DEFAULT             DESCRIPTION
//	config_file       ""                  YAML config file
//	container_name    "ros_gz_container"  Name of container that nodes will load in if use composition
func printArgsResultText(args []launch.ResolvedArgument) {
	if len(args) == 0 {
		fmt.Println("No launch arguments declared.")
		return
	}

	// Print header row.
	fmt.Printf("%-18s %-20s %s\n", "NAME", "DEFAULT", "DESCRIPTION")

	for _, arg := range args {
		// Defaults are quoted so the empty string reads as "" rather
		// than as a blank column.
		fmt.Printf("%-18s %-20s %s\n", arg.Name, fmt.Sprintf("%q", arg.Default), arg.Description)
	}
}
