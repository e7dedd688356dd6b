// resolver.go implements the prefix-path walk that backs package-share
// lookups, plus the environment-variable configuration it is seeded from.
package share

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"github.com/gz-tools/gzlaunch/internal/model"
)

// Config holds the environment configuration for package-share resolution.
// It is parsed from the process environment with caarlos0/env.
type Config struct {
	// PrefixPath lists install prefixes searched for package share
	// directories, highest priority first. Populated from the
	// colon-separated LAUNCH_PREFIX_PATH environment variable.
	PrefixPath []string `env:"LAUNCH_PREFIX_PATH" envSeparator:":"`
}

// LoadConfig reads the share-resolution configuration from the process
// environment. An unset LAUNCH_PREFIX_PATH yields an empty prefix list,
// which is valid — every lookup will then fail with a package-not-found
// error carrying its own exit code.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse share resolver environment: %w", err)
	}
	// Drop empty segments produced by leading/trailing or doubled colons,
	// mirroring how PATH-style variables are conventionally handled.
	cleaned := cfg.PrefixPath[:0]
	for _, p := range cfg.PrefixPath {
		if p != "" {
			cleaned = append(cleaned, p)
		}
	}
	cfg.PrefixPath = cleaned
	return cfg, nil
}

// Resolver locates package share directories on a fixed prefix search path.
// It satisfies the launch.ShareResolver interface.
type Resolver struct {
	prefixes []string
}

// NewResolver creates a resolver over the given install prefixes, searched
// in order.
func NewResolver(prefixes []string) *Resolver {
	return &Resolver{prefixes: prefixes}
}

// NewResolverFromEnv creates a resolver seeded from LAUNCH_PREFIX_PATH.
func NewResolverFromEnv() (*Resolver, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return NewResolver(cfg.PrefixPath), nil
}

// SharePath returns the share directory of the named package: the first
// "<prefix>/share/<pkg>" on the search path that exists as a directory.
//
// A missing package returns a CLIError with ExitPackageNotFound so the CLI
// layer can surface the dedicated exit code. Resolution failure here
// corresponds to the launch-time fatal error the host runner would raise.
func (r *Resolver) SharePath(pkg string) (string, error) {
	if pkg == "" {
		return "", model.NewCLIError(model.ExitPackageNotFound, "package name must not be empty")
	}

	for _, prefix := range r.prefixes {
		candidate := filepath.Join(prefix, "share", pkg)
		// os.Stat checks existence without reading contents; the share
		// entry must be a directory, not a stray file.
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}
	}

	return "", model.NewCLIError(
		model.ExitPackageNotFound,
		fmt.Sprintf("package %q not found on prefix path (searched %d prefixes; is LAUNCH_PREFIX_PATH set?)", pkg, len(r.prefixes)),
	)
}
