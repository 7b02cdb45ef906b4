package validators

// AutoValue marks an attribute whose concrete value is computed by the
// consumer at use time rather than supplied directly. It is a plain tagged
// marker; validators match on the type, never on object identity.
type AutoValue struct{}

func (AutoValue) String() string { return "auto" }

// Auto is the canonical AutoValue sentinel.
var Auto = AutoValue{}

type autoValidator struct{ passthrough }

func (autoValidator) Test(v any) bool {
	switch v.(type) {
	case AutoValue, *AutoValue:
		return true
	}
	return false
}

// AutoOr accepts the AutoValue sentinel or delegates to the wrapped
// validator.
type AutoOr struct {
	elem Validator
}

// NewAutoOr wraps elem so that the auto sentinel is also part of the accepted
// domain.
func NewAutoOr(elem Validator) *AutoOr {
	return &AutoOr{elem: elem}
}

func (a *AutoOr) Test(v any) bool {
	if IsAuto.Test(v) || IsDeferred(v) {
		return true
	}
	return a.elem.Test(v)
}

func (a *AutoOr) Normalize(v any) (any, error) {
	if IsAuto.Test(v) {
		return v, nil
	}
	return a.elem.Normalize(v)
}
