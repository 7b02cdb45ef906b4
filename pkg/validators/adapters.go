package validators

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/dmitrymomot/drawkit/pkg/normaldate"
	"github.com/dmitrymomot/drawkit/pkg/shapes"
)

// colorValidator checks membership in the external color model. Test accepts
// native color values only; Normalize additionally coerces "#rgb"/"#rrggbb"
// hex strings.
type colorValidator struct{}

func (colorValidator) Test(v any) bool {
	_, ok := v.(color.Color)
	return ok
}

func (colorValidator) Normalize(v any) (any, error) {
	switch x := v.(type) {
	case color.Color:
		return x, nil
	case string:
		c, err := colorful.Hex(x)
		if err != nil {
			return nil, coercionError("a color", v)
		}
		return c, nil
	}
	return nil, coercionError("a color", v)
}

// validChildValidator reports whether a value may be placed in a drawing or
// group, i.e. belongs to either graphics node category.
type validChildValidator struct{ passthrough }

func (validChildValidator) Test(v any) bool {
	switch v.(type) {
	case shapes.Shape, shapes.UserNode:
		return true
	}
	return false
}

// normalDateValidator delegates coercion to the external calendar date type.
type normalDateValidator struct{}

func (n normalDateValidator) Test(v any) bool {
	if _, ok := v.(normaldate.Date); ok {
		return true
	}
	if v == nil {
		return false
	}
	return NormalizeTest(n, v)
}

func (normalDateValidator) Normalize(v any) (any, error) {
	d, err := normaldate.New(v)
	if err != nil {
		return nil, coercionError("a normal date", v)
	}
	return d, nil
}

// codecValidator accepts registered text encoding names. Unknown names fold
// into false at the adapter boundary, never a fault.
type codecValidator struct{ passthrough }

func (codecValidator) Test(v any) bool {
	name, ok := v.(string)
	if !ok {
		return false
	}
	if _, err := htmlindex.Get(name); err == nil {
		return true
	}
	enc, err := ianaindex.IANA.Encoding(name)
	return err == nil && enc != nil
}
