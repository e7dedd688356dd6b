// Package cli — check.go implements the "gzlaunch check" command.
//
// The check command is a preflight for the bringup description: it applies
// the same sanity checks the bridge and server perform at startup, so
// configuration mistakes surface before a launch runner ever spawns a
// process. Everything checked here would otherwise fail at runtime as a
// launch-time fatal error aborting the whole invocation.
//
// Checks performed:
//  1. Both include sources resolve via package-share lookup and exist
//  2. config_file, when set, is a regular file and a valid bridge config
//  3. world_sdf_file, when set, is a regular file
//  4. world_sdf_file and world_sdf_string both set → warning only
//     (the description forwards both as-is; exclusivity is the server
//     launcher's concern)
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gz-tools/gzlaunch/internal/bridgecfg"
	"github.com/gz-tools/gzlaunch/internal/launch"
	"github.com/gz-tools/gzlaunch/internal/model"
	"github.com/gz-tools/gzlaunch/internal/share"
)

// checkFlags holds the flag values for the check command.
// These are bound to cobra flags in NewCheckCommand.
type checkFlags struct {
	// argsFile is an optional JSONC file of argument overrides, applied
	// before the positional name:=value tokens.
	argsFile string
}

// checkStatus is the outcome of a single preflight check.
type checkStatus string

const (
	checkOK   checkStatus = "ok"
	checkWarn checkStatus = "warning"
	checkFail checkStatus = "failed"
)

// checkResult records the outcome of one preflight check for reporting.
type checkResult struct {
	// Name identifies the check (e.g., "bridge include source").
	Name string `json:"name"`

	// Status is ok, warning, or failed.
	Status checkStatus `json:"status"`

	// Detail is the human-readable outcome description.
	Detail string `json:"detail"`

	// code carries the exit code for failed checks. Unexported — it is
	// process-exit plumbing, not report content.
	code model.ExitCode
}

// NewCheckCommand creates the "check" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [name:=value ...]",
		Short: "Preflight the launch description against the filesystem",
		Long: `Resolve the bringup launch description with the given overrides and
verify everything it references exists and is well-formed: both included
launch files (located via LAUNCH_PREFIX_PATH), the bridge config file,
and the world SDF file.

Supplying both world_sdf_file and world_sdf_string produces a warning,
not an error — the description forwards both and the server launcher
decides which wins.

Examples:
  gzlaunch check
  gzlaunch check config_file:=/cfg/bridge.yaml
  gzlaunch check world_sdf_file:=/worlds/empty.sdf --json`,

		// ArbitraryArgs: positional arguments are name:=value override
		// tokens, validated during parsing rather than by cobra.
		Args: cobra.ArbitraryArgs,

		// RunE returns an error to the root command's error handler.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.argsFile, "args-file", "",
		"JSONC file with argument overrides")

	return cmd
}

// runCheck is the main logic function for the check command.
// It resolves the description with the share resolver attached, runs every
// preflight check, prints the report, and exits with the code of the first
// failed check.
func runCheck(tokens []string, flags *checkFlags) error {
	// Step 1: Gather the override set (file first, tokens on top).
	overrides, err := collectOverrides(flags.argsFile, tokens)
	if err != nil {
		return err
	}

	// Step 2: Resolve with the package-share resolver attached — check
	// always resolves for real, that is its job.
	resolver, err := share.NewResolverFromEnv()
	if err != nil {
		return err
	}

	resolved, err := resolveBringup(overrides, resolver)
	if err != nil {
		return err
	}
	VerboseLog("Resolved description: %d argument(s), %d include(s)",
		len(resolved.Arguments), len(resolved.Includes))

	// Step 3: Run the preflight checks.
	results := runPreflight(resolved)

	// Step 4: Print the report in the appropriate format.
	printCheckResult(results)

	// Step 5: The first failed check determines the exit code.
	for _, r := range results {
		if r.Status == checkFail {
			return model.NewCLIError(r.code, fmt.Sprintf("preflight failed: %s", r.Name))
		}
	}
	return nil
}

// runPreflight executes every check against the resolved description and
// returns the results in report order.
func runPreflight(resolved *launch.Resolved) []checkResult {
	var results []checkResult

	// Check the include sources. Resolution already succeeded (package
	// share directories exist); the launch files inside them must too.
	names := []string{"bridge include source", "server include source"}
	for i, inc := range resolved.Includes {
		name := fmt.Sprintf("include %d source", i)
		if i < len(names) {
			name = names[i]
		}
		results = append(results, checkIncludeSource(name, inc.Source))
	}

	// Check config_file and the world source arguments.
	values := make(map[string]string, len(resolved.Arguments))
	for _, arg := range resolved.Arguments {
		values[arg.Name] = arg.Value
	}

	results = append(results, checkConfigFile(values["config_file"]))
	results = append(results, checkWorldSources(values["world_sdf_file"], values["world_sdf_string"])...)

	return results
}

// checkIncludeSource verifies an included launch file exists as a regular
// file at its resolved path.
func checkIncludeSource(name, source string) checkResult {
	info, err := os.Stat(source)
	if err != nil || !info.Mode().IsRegular() {
		return checkResult{
			Name:   name,
			Status: checkFail,
			Detail: fmt.Sprintf("launch file not found: %s", source),
			code:   model.ExitPackageNotFound,
		}
	}
	return checkResult{Name: name, Status: checkOK, Detail: source}
}

// checkConfigFile verifies the bridge config file, when one is set: it
// must be a regular file and parse as a valid bridge configuration. An
// empty config_file skips the check — the bridge runs configless.
func checkConfigFile(path string) checkResult {
	if path == "" {
		return checkResult{Name: "bridge config", Status: checkOK, Detail: "not set"}
	}

	entries, err := bridgecfg.Load(path)
	if err != nil {
		return failFrom("bridge config", err, model.ExitConfigFileError)
	}
	if err := bridgecfg.ValidateEntries(entries); err != nil {
		return checkResult{
			Name:   "bridge config",
			Status: checkFail,
			Detail: fmt.Sprintf("%s: %v", path, err),
			code:   model.ExitConfigFileError,
		}
	}

	return checkResult{
		Name:   "bridge config",
		Status: checkOK,
		Detail: fmt.Sprintf("%s (%d entries)", path, len(entries)),
	}
}

// checkWorldSources verifies the world SDF file when set, and warns when
// both world sources are supplied at once.
func checkWorldSources(sdfFile, sdfString string) []checkResult {
	var results []checkResult

	if sdfFile == "" {
		results = append(results, checkResult{Name: "world SDF file", Status: checkOK, Detail: "not set"})
	} else if info, err := os.Stat(sdfFile); err != nil || !info.Mode().IsRegular() {
		results = append(results, checkResult{
			Name:   "world SDF file",
			Status: checkFail,
			Detail: fmt.Sprintf("not a regular file: %s", sdfFile),
			code:   model.ExitWorldFileError,
		})
	} else {
		results = append(results, checkResult{Name: "world SDF file", Status: checkOK, Detail: sdfFile})
	}

	if sdfFile != "" && sdfString != "" {
		results = append(results, checkResult{
			Name:   "world sources",
			Status: checkWarn,
			Detail: "both world_sdf_file and world_sdf_string are set; the server launcher decides which wins",
		})
	}

	return results
}

// failFrom builds a failed checkResult from an error, preserving a
// CLIError's exit code when one is present.
func failFrom(name string, err error, fallback model.ExitCode) checkResult {
	code := fallback
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		code = cliErr.Code
	}
	return checkResult{Name: name, Status: checkFail, Detail: err.Error(), code: code}
}

// printCheckResult outputs the preflight report in text or JSON format,
// depending on the global --json flag.
func printCheckResult(results []checkResult) {
	if IsJSONOutput() {
		printCheckResultJSON(results)
	} else {
		printCheckResultText(results)
	}
}

// printCheckResultJSON outputs the preflight report as structured JSON.
// The top-level key is "checks" containing an array of check objects.
func printCheckResultJSON(results []checkResult) {
	type resultJSON struct {
		Checks []checkResult `json:"checks"`
	}

	data, _ := json.MarshalIndent(resultJSON{Checks: results}, "", "  ")
	fmt.Println(string(data))
}

// printCheckResultText outputs the preflight report as aligned text lines:
//
//	ok       bridge include source   /opt/sim/share/ros_gz_bridge/launch/ros_gz_bridge.launch.yaml
//	failed   bridge config           bridge config file not found: /cfg/bridge.yaml
func printCheckResultText(results []checkResult) {
	for _, r := range results {
		fmt.Printf("%-8s %-22s %s\n", r.Status, r.Name, r.Detail)
	}
}
