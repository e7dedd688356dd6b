// substitution.go defines the Substitution interface and its implementations.
//
// A Substitution is a deferred string value: it is constructed during the
// declaration phase but yields its value only during the resolution phase,
// against a Context. Every Substitution also has a symbolic String() form
// used wherever a value must be displayed (or forwarded) without resolving
// it — the placeholder-token syntax follows the $(var ...) convention.
package launch

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Substitution is a deferred string value resolved against a Context at
// launch time. String returns the symbolic placeholder form, which is what
// gets emitted when resolution is deferred to the host runner.
type Substitution interface {
	// Resolve produces the substitution's value against the given context.
	Resolve(ctx *Context) (string, error)

	// String returns the symbolic placeholder form, e.g. "$(var namespace)".
	String() string
}

// Text is a literal string substitution. It resolves to itself and is the
// degenerate case used for constant defaults and fixed path segments.
type Text string

// Resolve returns the literal text. It never fails.
func (t Text) Resolve(_ *Context) (string, error) {
	return string(t), nil
}

// String returns the literal text — literals have no placeholder form.
func (t Text) String() string {
	return string(t)
}

// Configuration is a reference to a declared launch argument's value.
// The value is looked up at resolution time: an override supplied by the
// caller wins, otherwise the declared default applies. Referencing an
// argument that has not been declared is a resolution error.
type Configuration string

// Resolve looks up the argument's current value in the context.
func (c Configuration) Resolve(ctx *Context) (string, error) {
	return ctx.Value(string(c))
}

// String returns the "$(var name)" placeholder form.
func (c Configuration) String() string {
	return fmt.Sprintf("$(var %s)", string(c))
}

// PackageShare is a package-share lookup substitution: it resolves to the
// share directory of an installed package. When the context has no share
// resolver attached, it resolves to its own symbolic form, deferring the
// lookup to the host runner.
type PackageShare string

// Resolve returns the package's share directory, or the symbolic
// placeholder when the context carries no resolver.
func (p PackageShare) Resolve(ctx *Context) (string, error) {
	if ctx.shares == nil {
		return p.String(), nil
	}
	dir, err := ctx.shares.SharePath(string(p))
	if err != nil {
		return "", fmt.Errorf("find-pkg-share %s: %w", string(p), err)
	}
	return dir, nil
}

// String returns the "$(find-pkg-share pkg)" placeholder form.
func (p PackageShare) String() string {
	return fmt.Sprintf("$(find-pkg-share %s)", string(p))
}

// PathJoin joins the resolved values of its parts with the OS path
// separator. It mirrors filepath.Join semantics except that symbolic
// placeholder segments are preserved verbatim, so a partially resolved
// path like "$(find-pkg-share ros_gz_bridge)/launch/x.yaml" stays intact.
type PathJoin []Substitution

// Resolve resolves every part and joins them into a single path.
func (pj PathJoin) Resolve(ctx *Context) (string, error) {
	parts := make([]string, 0, len(pj))
	for _, sub := range pj {
		val, err := sub.Resolve(ctx)
		if err != nil {
			return "", err
		}
		parts = append(parts, val)
	}
	return joinParts(parts), nil
}

// String joins the symbolic forms of all parts with the path separator.
func (pj PathJoin) String() string {
	parts := make([]string, 0, len(pj))
	for _, sub := range pj {
		parts = append(parts, sub.String())
	}
	return joinParts(parts)
}

// joinParts joins path segments, keeping placeholder segments untouched.
// filepath.Join would call Clean, which mangles "$(...)" prefixes on some
// platforms, so segments containing placeholders are joined manually.
func joinParts(parts []string) string {
	for _, p := range parts {
		if strings.Contains(p, "$(") {
			return strings.Join(parts, string(filepath.Separator))
		}
	}
	return filepath.Join(parts...)
}

// ResolveAll resolves a sequence of substitutions and concatenates the
// results. Inclusion sources are modeled as substitution sequences, so this
// is the canonical way to materialize one into a path string.
func ResolveAll(ctx *Context, subs []Substitution) (string, error) {
	var b strings.Builder
	for _, sub := range subs {
		val, err := sub.Resolve(ctx)
		if err != nil {
			return "", err
		}
		b.WriteString(val)
	}
	return b.String(), nil
}

// SymbolicAll concatenates the symbolic forms of a substitution sequence.
func SymbolicAll(subs []Substitution) string {
	var b strings.Builder
	for _, sub := range subs {
		b.WriteString(sub.String())
	}
	return b.String()
}
