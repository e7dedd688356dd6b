package launch

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeShares is a minimal ShareResolver for tests. It maps package names
// to fixed directories and fails for anything else.
type fakeShares map[string]string

func (f fakeShares) SharePath(pkg string) (string, error) {
	if dir, ok := f[pkg]; ok {
		return dir, nil
	}
	return "", assert.AnError
}

// TestText_ResolvesToItself verifies the literal substitution round-trips
// unchanged and has no placeholder form.
func TestText_ResolvesToItself(t *testing.T) {
	ctx := NewContext(nil)

	val, err := Text("hello").Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, "hello", val)
	assert.Equal(t, "hello", Text("hello").String())

	// The empty literal is valid and resolves to the empty string.
	val, err = Text("").Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", val)
}

// TestConfiguration_UsesOverrideThenDefault verifies the override-wins
// lookup order for declared arguments.
func TestConfiguration_UsesOverrideThenDefault(t *testing.T) {
	ctx := NewContext(map[string]string{"namespace": "robot1"})
	require.NoError(t, ctx.Declare("namespace", "", "Top-level namespace"))
	require.NoError(t, ctx.Declare("log_level", "info", "log level"))

	val, err := Configuration("namespace").Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, "robot1", val)

	// No override supplied — the declared default applies.
	val, err = Configuration("log_level").Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, "info", val)
}

// TestConfiguration_UndeclaredFails verifies that referencing an argument
// before (or without) its declaration is a resolution error.
func TestConfiguration_UndeclaredFails(t *testing.T) {
	ctx := NewContext(nil)

	_, err := Configuration("nonexistent").Resolve(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undeclared")
}

// TestConfiguration_SymbolicForm verifies the $(var ...) placeholder syntax.
func TestConfiguration_SymbolicForm(t *testing.T) {
	assert.Equal(t, "$(var use_composition)", Configuration("use_composition").String())
}

// TestPackageShare_SymbolicWithoutResolver verifies that a package-share
// lookup without a resolver emits its placeholder token instead of failing —
// final resolution is the host runner's job.
func TestPackageShare_SymbolicWithoutResolver(t *testing.T) {
	ctx := NewContext(nil)

	val, err := PackageShare("ros_gz_bridge").Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, "$(find-pkg-share ros_gz_bridge)", val)
}

// TestPackageShare_ResolvesWithResolver verifies lookup through an attached
// resolver, and that an unknown package propagates the lookup error.
func TestPackageShare_ResolvesWithResolver(t *testing.T) {
	shares := fakeShares{"ros_gz_bridge": "/opt/sim/share/ros_gz_bridge"}
	ctx := NewContext(nil).WithShareResolver(shares)

	val, err := PackageShare("ros_gz_bridge").Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/opt/sim/share/ros_gz_bridge", val)

	_, err = PackageShare("no_such_pkg").Resolve(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no_such_pkg")
}

// TestPathJoin_JoinsResolvedParts verifies joining of fully resolved
// segments uses filepath.Join semantics.
func TestPathJoin_JoinsResolvedParts(t *testing.T) {
	ctx := NewContext(nil)

	pj := PathJoin{Text("/opt/sim"), Text("launch"), Text("gz_server.launch.yaml")}
	val, err := pj.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/opt/sim", "launch", "gz_server.launch.yaml"), val)
}

// TestPathJoin_PreservesPlaceholders verifies that symbolic segments stay
// intact when a path is only partially resolvable.
func TestPathJoin_PreservesPlaceholders(t *testing.T) {
	ctx := NewContext(nil)

	pj := PathJoin{PackageShare("ros_gz_sim"), Text("launch"), Text("gz_server.launch.yaml")}
	val, err := pj.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, "$(find-pkg-share ros_gz_sim)/launch/gz_server.launch.yaml", val)

	// The symbolic form is identical regardless of resolver availability.
	assert.Equal(t, "$(find-pkg-share ros_gz_sim)/launch/gz_server.launch.yaml", pj.String())
}

// TestResolveAll_ConcatenatesSequence verifies source sequences resolve to
// one concatenated string.
func TestResolveAll_ConcatenatesSequence(t *testing.T) {
	ctx := NewContext(nil)
	require.NoError(t, ctx.Declare("suffix", ".yaml", ""))

	val, err := ResolveAll(ctx, []Substitution{Text("bridge"), Configuration("suffix")})
	require.NoError(t, err)
	assert.Equal(t, "bridge.yaml", val)

	assert.Equal(t, "bridge$(var suffix)", SymbolicAll([]Substitution{Text("bridge"), Configuration("suffix")}))
}
