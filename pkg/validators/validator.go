package validators

// Validator is the uniform contract every validator implements. Instances are
// immutable after construction and safe for concurrent use.
type Validator interface {
	// Test reports whether v satisfies the constraint. It is total: invalid
	// or incompatible input yields false, never a panic.
	Test(v any) bool

	// Normalize produces the canonical representation of v, or an error
	// wrapping ErrCannotCoerce when no canonical form exists. Validators
	// without a coercion step return v unchanged.
	Normalize(v any) (any, error)
}

// NormalizeTest reports whether val can coerce v. It suppresses every failure
// kind the coercion path can produce, including panics escaping from external
// adapter code.
func NormalizeTest(val Validator, v any) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	_, err := val.Normalize(v)
	return err == nil
}

// passthrough supplies the identity Normalize for validators without coercion.
type passthrough struct{}

func (passthrough) Normalize(v any) (any, error) { return v, nil }

// ValidatorFunc adapts a plain predicate into a Validator with identity
// normalization.
type ValidatorFunc func(v any) bool

func (f ValidatorFunc) Test(v any) bool            { return f(v) }
func (ValidatorFunc) Normalize(v any) (any, error) { return v, nil }

type anythingValidator struct{ passthrough }

func (anythingValidator) Test(any) bool { return true }

type nothingValidator struct{ passthrough }

func (nothingValidator) Test(any) bool { return false }
