// Package cli — describe.go implements the "gzlaunch describe" command.
//
// The describe command builds the bringup launch description, applies the
// caller's overrides, and prints the resolved view: every declared
// argument with its effective value, and both inclusions with the
// arguments forwarded to them. This is the exact artifact a host launch
// runner would receive, minus process startup.
//
// By default include sources stay in their symbolic placeholder form
// ("$(find-pkg-share ...)"); --resolve-paths attaches the package-share
// resolver so sources become real filesystem paths.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gz-tools/gzlaunch/internal/launch"
	"github.com/gz-tools/gzlaunch/internal/share"
)

// describeFlags holds the flag values for the describe command.
// These are bound to cobra flags in NewDescribeCommand.
type describeFlags struct {
	// resolvePaths resolves include sources against LAUNCH_PREFIX_PATH
	// instead of emitting symbolic placeholders.
	resolvePaths bool

	// argsFile is an optional JSONC file of argument overrides, applied
	// before the positional name:=value tokens.
	argsFile string
}

// NewDescribeCommand creates the "describe" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewDescribeCommand() *cobra.Command {
	flags := &describeFlags{}

	cmd := &cobra.Command{
		Use:   "describe [name:=value ...]",
		Short: "Print the resolved launch description",
		Long: `Build the bringup launch description, apply argument overrides, and
print the resolved result: declared arguments with their effective values
and the two inclusions (bridge and simulation server) with the arguments
forwarded to each.

Overrides use the conventional name:=value syntax and may also be loaded
from a JSONC file with --args-file (positional overrides win).

Examples:
  gzlaunch describe
  gzlaunch describe namespace:=robot1 use_composition:=True
  gzlaunch describe --args-file sim-args.jsonc --json
  gzlaunch describe --resolve-paths world_sdf_file:=/worlds/empty.sdf`,

		// ArbitraryArgs: positional arguments are name:=value override
		// tokens, validated during parsing rather than by cobra.
		Args: cobra.ArbitraryArgs,

		// RunE returns an error to the root command's error handler.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(args, flags)
		},
	}

	// Register command-specific flags.
	cmd.Flags().BoolVar(&flags.resolvePaths, "resolve-paths", false,
		"Resolve include sources against LAUNCH_PREFIX_PATH")
	cmd.Flags().StringVar(&flags.argsFile, "args-file", "",
		"JSONC file with argument overrides")

	return cmd
}

// runDescribe is the main logic function for the describe command.
func runDescribe(tokens []string, flags *describeFlags) error {
	// Step 1: Gather the override set (file first, tokens on top).
	overrides, err := collectOverrides(flags.argsFile, tokens)
	if err != nil {
		return err
	}
	VerboseLog("Applying %d override(s)", len(overrides))

	// Step 2: Attach the package-share resolver only when asked to.
	// Without it, source resolution is deferred to the host runner and
	// the symbolic form is shown.
	var shares launch.ShareResolver
	if flags.resolvePaths {
		resolver, err := share.NewResolverFromEnv()
		if err != nil {
			return err
		}
		shares = resolver
		VerboseLog("Resolving include sources against LAUNCH_PREFIX_PATH")
	}

	// Step 3: Resolve the description.
	resolved, err := resolveBringup(overrides, shares)
	if err != nil {
		return err
	}

	// Step 4: Output results in the appropriate format.
	printDescribeResult(resolved)
	return nil
}

// printDescribeResult outputs the resolved description in text or JSON
// format, depending on the global --json flag.
func printDescribeResult(resolved *launch.Resolved) {
	if IsJSONOutput() {
		// The Resolved type carries JSON tags for exactly this purpose —
		// the machine format is the resolved description itself.
		data, _ := json.MarshalIndent(resolved, "", "  ")
		fmt.Println(string(data))
		return
	}
	printDescribeResultText(resolved)
}

// printDescribeResultText outputs the resolved description as two
// human-readable sections: the argument table and the inclusion list.
//
// The format is:
//
//	ARGUMENT           VALUE               OVERRIDDEN
//	config_file        ""                  -
//	use_composition    "True"              yes
//
//	INCLUDE $(find-pkg-share ros_gz_bridge)/launch/ros_gz_bridge.launch.yaml
//	    config_file      := ""
//	    ...
func printDescribeResultText(resolved *launch.Resolved) {
	fmt.Printf("%-18s %-20s %s\n", "ARGUMENT", "VALUE", "OVERRIDDEN")
	for _, arg := range resolved.Arguments {
		overridden := "-"
		if arg.Overridden {
			overridden = "yes"
		}
		fmt.Printf("%-18s %-20s %s\n", arg.Name, fmt.Sprintf("%q", arg.Value), overridden)
	}

	for _, inc := range resolved.Includes {
		fmt.Printf("\nINCLUDE %s\n", inc.Source)
		for _, binding := range inc.Arguments {
			fmt.Printf("    %-16s := %q\n", binding.Name, binding.Value)
		}
	}
}
