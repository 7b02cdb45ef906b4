package validators

import (
	"errors"
	"fmt"
)

// Common validator errors. Coercion failures wrap ErrCannotCoerce so callers
// can match them with errors.Is regardless of the validator that produced them.
var (
	// ErrCannotCoerce is returned when no canonical form exists for a value.
	ErrCannotCoerce = errors.New("cannot coerce value")

	// ErrUnresolvedAttribute is returned when a deferred value cannot be
	// resolved from the supplied context.
	ErrUnresolvedAttribute = errors.New("attribute not resolvable from context")
)

// coercionError reports a failed coercion to the named target representation.
func coercionError(target string, v any) error {
	return fmt.Errorf("%w: %v (%T) is not %s", ErrCannotCoerce, v, v, target)
}
