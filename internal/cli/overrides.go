// overrides.go implements launch argument override handling: parsing the
// conventional name:=value command-line tokens and loading override sets
// from JSONC files.
//
// Overrides are collected before a description is resolved; after
// resolution, any override naming an argument the description does not
// declare is rejected with a dedicated exit code. Override VALUES are
// never validated — they are unconstrained strings forwarded as-is, and
// interpretation belongs to the included launch descriptions.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/gz-tools/gzlaunch/internal/model"
)

// ParseOverrides parses positional name:=value tokens into an override map.
// Later tokens win over earlier ones for the same name, matching the
// last-one-wins convention of launch runners.
//
// Returns a CLIError with ExitInvalidOverride for tokens that are not in
// name:=value form or that carry an invalid argument name.
func ParseOverrides(tokens []string) (map[string]string, error) {
	overrides := make(map[string]string, len(tokens))

	for _, token := range tokens {
		name, value, ok := strings.Cut(token, ":=")
		if !ok {
			return nil, model.NewCLIError(
				model.ExitInvalidOverride,
				fmt.Sprintf("invalid override %q: expected name:=value", token),
			)
		}
		if err := model.ValidateArgumentName(name); err != nil {
			return nil, model.WrapCLIError(
				model.ExitInvalidOverride,
				fmt.Sprintf("invalid override %q", token),
				err,
			)
		}
		// The value is taken verbatim, empty allowed: "namespace:=" resets
		// an argument to the empty string explicitly.
		overrides[name] = value
	}

	return overrides, nil
}

// LoadOverridesFile reads launch argument overrides from a JSONC file —
// a flat object mapping argument names to values. Comments and trailing
// commas are permitted, so override files can be annotated and checked in.
//
// String values are taken verbatim; numbers and booleans are converted to
// their string form, since launch arguments are string-typed. Nested
// objects or arrays are rejected.
func LoadOverridesFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, model.WrapCLIError(
			model.ExitInvalidOverride,
			fmt.Sprintf("failed to read overrides file %s", path),
			err,
		)
	}

	// Strip JSONC comments and trailing commas before parsing with the
	// standard encoding/json.
	cleanJSON := jsonc.ToJSON(data)

	var raw map[string]interface{}
	if err := json.Unmarshal(cleanJSON, &raw); err != nil {
		return nil, model.WrapCLIError(
			model.ExitInvalidOverride,
			fmt.Sprintf("failed to parse overrides file %s", path),
			err,
		)
	}

	overrides := make(map[string]string, len(raw))
	for name, value := range raw {
		if err := model.ValidateArgumentName(name); err != nil {
			return nil, model.WrapCLIError(
				model.ExitInvalidOverride,
				fmt.Sprintf("overrides file %s", path),
				err,
			)
		}
		switch v := value.(type) {
		case string:
			overrides[name] = v
		case float64:
			// JSON numbers decode as float64; render integers without a
			// trailing ".0" so "log_level": 1 becomes "1".
			overrides[name] = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			// Render with the capitalization the bringup defaults use
			// ("True"/"False") so boolean-like arguments stay consistent.
			if v {
				overrides[name] = "True"
			} else {
				overrides[name] = "False"
			}
		default:
			return nil, model.NewCLIError(
				model.ExitInvalidOverride,
				fmt.Sprintf("overrides file %s: argument %q must be a string, number, or boolean", path, name),
			)
		}
	}

	return overrides, nil
}

// MergeOverrides combines override maps with increasing precedence: maps
// later in the argument list win. Used to layer command-line overrides on
// top of an overrides file.
func MergeOverrides(maps ...map[string]string) map[string]string {
	merged := make(map[string]string)
	for _, m := range maps {
		for name, value := range m {
			merged[name] = value
		}
	}
	return merged
}

// collectOverrides gathers the effective override set for a command:
// the optional overrides file first, then the positional name:=value
// tokens on top.
func collectOverrides(argsFile string, tokens []string) (map[string]string, error) {
	fromTokens, err := ParseOverrides(tokens)
	if err != nil {
		return nil, err
	}

	if argsFile == "" {
		return fromTokens, nil
	}

	fromFile, err := LoadOverridesFile(argsFile)
	if err != nil {
		return nil, err
	}
	VerboseLog("Loaded %d override(s) from %s", len(fromFile), argsFile)

	return MergeOverrides(fromFile, fromTokens), nil
}
