// actions.go defines the two action kinds a launch description can contain:
// argument declarations and inclusion requests. Actions are inert data —
// they do nothing until a resolution walk visits them.
package launch

// Action is one entry in a launch description's ordered action list.
// The concrete kinds are DeclareArgument and Include; the unexported
// marker method keeps the set closed.
type Action interface {
	isAction()
}

// DeclareArgument registers a named, externally overridable launch argument
// with a default value and a human-readable description.
//
// The default is itself a Substitution so that defaults can be deferred
// values; plain string defaults use Text.
type DeclareArgument struct {
	// Name is the unique argument name within the description.
	Name string

	// Default supplies the argument's value when the caller provides
	// no override. May resolve to the empty string.
	Default Substitution

	// Description is the human-readable explanation shown by
	// introspection surfaces ("gzlaunch args").
	Description string
}

func (DeclareArgument) isAction() {}

// Binding forwards a value to one parameter of an included description.
// The value is usually a Configuration reference, which is how a single
// declared argument fans out to multiple inclusions.
type Binding struct {
	// Name is the parameter name the included description expects.
	Name string

	// Value supplies the parameter's value at resolution time.
	Value Substitution
}

// Include embeds another launch description, located by its source
// substitution sequence, forwarding a subset of arguments to it.
//
// The include carries no knowledge of the target's contents: an
// unresolvable source or a parameter the target does not accept surfaces
// as a runtime failure inside the host runner, not here.
type Include struct {
	// Source locates the included description. The parts are resolved and
	// concatenated; by convention the sequence is a single PathJoin rooted
	// at a PackageShare lookup.
	Source []Substitution

	// Arguments are the forwarded parameter bindings, in declaration order.
	Arguments []Binding
}

func (Include) isAction() {}
