// description.go implements the root aggregate: an ordered action list and
// its resolution into a summary view.
package launch

import "fmt"

// Description is the root aggregate of a launch configuration: an ordered
// sequence of actions, built once and immutable after construction from
// the caller's perspective. Order is significant — the resolution walk
// requires every argument to be declared before an inclusion references it.
type Description struct {
	actions []Action
}

// New creates an empty launch description.
func New() *Description {
	return &Description{}
}

// Add appends an action to the description. It returns the description so
// builders can chain calls.
func (d *Description) Add(a Action) *Description {
	d.actions = append(d.actions, a)
	return d
}

// Actions returns the ordered action list. The returned slice is the
// description's backing store and must not be mutated by callers.
func (d *Description) Actions() []Action {
	return d.actions
}

// ResolvedArgument is the resolved view of one argument declaration.
type ResolvedArgument struct {
	// Name is the argument name.
	Name string `json:"name"`

	// Value is the effective value: the override if one was supplied,
	// the default otherwise.
	Value string `json:"value"`

	// Default is the resolved default value.
	Default string `json:"default"`

	// Description is the human-readable argument description.
	Description string `json:"description"`

	// Overridden reports whether the caller supplied an override.
	Overridden bool `json:"overridden"`
}

// ResolvedBinding is the resolved view of one forwarded parameter.
type ResolvedBinding struct {
	// Name is the parameter name the included description expects.
	Name string `json:"name"`

	// Value is the forwarded value after resolution.
	Value string `json:"value"`
}

// ResolvedInclude is the resolved view of one inclusion request.
type ResolvedInclude struct {
	// Source is the included description's location: a filesystem path
	// when a share resolver was attached, the symbolic placeholder form
	// otherwise.
	Source string `json:"source"`

	// Arguments are the forwarded bindings, in declaration order.
	Arguments []ResolvedBinding `json:"arguments"`
}

// Resolved is the summary produced by resolving a description: the
// declared arguments and inclusion requests, in action-list order.
type Resolved struct {
	// Arguments lists the declared arguments with their effective values.
	Arguments []ResolvedArgument `json:"arguments"`

	// Includes lists the inclusion requests with forwarded bindings.
	Includes []ResolvedInclude `json:"includes"`
}

// Resolve walks the action list in order against the given context and
// produces the resolved summary.
//
// Declarations register their argument (duplicate names fail the walk) and
// record the effective value; inclusions resolve their source and every
// forwarded binding. Because inclusions resolve through the same context
// registry the declarations populated, a shared Configuration reference
// yields the identical value at every consumer.
func (d *Description) Resolve(ctx *Context) (*Resolved, error) {
	resolved := &Resolved{
		// Empty slices instead of nil so JSON output shows [] rather than
		// null for degenerate descriptions.
		Arguments: []ResolvedArgument{},
		Includes:  []ResolvedInclude{},
	}

	for _, action := range d.actions {
		switch a := action.(type) {
		case DeclareArgument:
			defaultValue, err := a.Default.Resolve(ctx)
			if err != nil {
				return nil, fmt.Errorf("resolving default for argument %q: %w", a.Name, err)
			}
			if err := ctx.Declare(a.Name, defaultValue, a.Description); err != nil {
				return nil, err
			}
			value, err := ctx.Value(a.Name)
			if err != nil {
				return nil, err
			}
			resolved.Arguments = append(resolved.Arguments, ResolvedArgument{
				Name:        a.Name,
				Value:       value,
				Default:     defaultValue,
				Description: a.Description,
				Overridden:  ctx.Overridden(a.Name),
			})

		case Include:
			source, err := ResolveAll(ctx, a.Source)
			if err != nil {
				return nil, fmt.Errorf("resolving include source %q: %w", SymbolicAll(a.Source), err)
			}
			inc := ResolvedInclude{
				Source:    source,
				Arguments: make([]ResolvedBinding, 0, len(a.Arguments)),
			}
			for _, binding := range a.Arguments {
				value, err := binding.Value.Resolve(ctx)
				if err != nil {
					return nil, fmt.Errorf("resolving forwarded argument %q for %s: %w", binding.Name, source, err)
				}
				inc.Arguments = append(inc.Arguments, ResolvedBinding{Name: binding.Name, Value: value})
			}
			resolved.Includes = append(resolved.Includes, inc)

		default:
			return nil, fmt.Errorf("unknown action type %T", action)
		}
	}

	return resolved, nil
}
