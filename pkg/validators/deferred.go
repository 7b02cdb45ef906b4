package validators

import "fmt"

// DerivedValue marks a value which works itself out later instead of being
// validated as ordinary data. A drawing attribute can be set to Inherit, and
// the renderer resolves the real value from its containment hierarchy when it
// is needed. Deferred-aware combinators accept any DerivedValue structurally
// without delegating to their children.
type DerivedValue interface {
	// Resolve produces the concrete value for the named attribute from the
	// resolver-owned context.
	Resolve(ctx ResolveContext, attr string) (any, error)
}

// ResolveContext supplies attribute state during deferred resolution. It is
// owned by the external renderer, which typically backs it with a stack of
// parent nodes.
type ResolveContext interface {
	// StateValue returns the currently resolved value of the named
	// attribute, or false when the context has none.
	StateValue(attr string) (any, bool)
}

type inheritValue struct{}

func (inheritValue) Resolve(ctx ResolveContext, attr string) (any, error) {
	if v, ok := ctx.StateValue(attr); ok {
		return v, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnresolvedAttribute, attr)
}

func (inheritValue) String() string { return "inherit" }

// Inherit is the canonical deferred value: it resolves to the nearest
// ancestor's value for the attribute it is assigned to.
var Inherit DerivedValue = inheritValue{}

// IsDeferred reports whether v is a deferred value that must be resolved
// externally rather than validated directly.
func IsDeferred(v any) bool {
	_, ok := v.(DerivedValue)
	return ok
}
