// context.go implements the resolution-phase state for a launch description.
//
// A Context carries the caller's argument overrides and the registry of
// declared arguments built up as the description is walked in order. It is
// the single source of truth for Configuration lookups: every consumer of a
// shared argument (e.g. use_composition, forwarded to both inclusions)
// resolves through the same registry entry, so a single override fans out
// to all consumers identically.
package launch

import (
	"fmt"
	"sort"
)

// ShareResolver locates the share directory of an installed package.
// It is satisfied by share.Resolver; the interface lives here so the
// framework does not depend on the lookup mechanism.
type ShareResolver interface {
	// SharePath returns the absolute share directory for pkg, or an error
	// if the package cannot be found on the search path.
	SharePath(pkg string) (string, error)
}

// declaredArg is a registry entry for one declared launch argument.
type declaredArg struct {
	defaultValue string
	description  string
}

// Context holds the resolution-phase state: caller overrides, the declared
// argument registry, and an optional package-share resolver.
//
// A Context is not safe for concurrent use. A description resolution is a
// single synchronous walk, so no locking is needed.
type Context struct {
	overrides map[string]string
	declared  map[string]declaredArg
	consumed  map[string]bool
	shares    ShareResolver
}

// NewContext creates a resolution context with the given argument overrides.
// The overrides map may be nil. A share resolver can be attached with
// WithShareResolver; without one, package-share substitutions resolve to
// symbolic placeholders.
func NewContext(overrides map[string]string) *Context {
	ctx := &Context{
		overrides: make(map[string]string, len(overrides)),
		declared:  make(map[string]declaredArg),
		consumed:  make(map[string]bool),
	}
	for name, value := range overrides {
		ctx.overrides[name] = value
	}
	return ctx
}

// WithShareResolver attaches a package-share resolver and returns the
// context for chaining.
func (ctx *Context) WithShareResolver(r ShareResolver) *Context {
	ctx.shares = r
	return ctx
}

// Declare registers a launch argument with its resolved default value.
// Each argument must be declared exactly once: a duplicate name is an
// error, matching the uniqueness invariant of launch descriptions.
func (ctx *Context) Declare(name, defaultValue, description string) error {
	if _, exists := ctx.declared[name]; exists {
		return fmt.Errorf("launch argument %q declared more than once", name)
	}
	ctx.declared[name] = declaredArg{defaultValue: defaultValue, description: description}
	if _, ok := ctx.overrides[name]; ok {
		ctx.consumed[name] = true
	}
	return nil
}

// Value returns the current value of a declared launch argument: the
// caller's override if one was supplied, the declared default otherwise.
// Referencing an undeclared argument is an error — declarations must
// precede the inclusions that reference them.
func (ctx *Context) Value(name string) (string, error) {
	arg, ok := ctx.declared[name]
	if !ok {
		return "", fmt.Errorf("launch configuration %q references an undeclared argument", name)
	}
	if override, ok := ctx.overrides[name]; ok {
		return override, nil
	}
	return arg.defaultValue, nil
}

// Overridden reports whether the caller supplied an override for name.
func (ctx *Context) Overridden(name string) bool {
	_, ok := ctx.overrides[name]
	return ok
}

// UnknownOverrides returns the override names that did not match any
// declared argument, sorted for deterministic error messages. The CLI
// rejects these; the framework itself only reports them.
func (ctx *Context) UnknownOverrides() []string {
	var unknown []string
	for name := range ctx.overrides {
		if !ctx.consumed[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return unknown
}
