package validators

import (
	"math"
	"reflect"
)

// OneOf accepts exact membership in a fixed set of literal values. No
// coercion is performed.
type OneOf struct {
	passthrough
	allowed []any
}

// NewOneOf constructs a membership validator from either a single slice/array
// of allowed values or the individual values themselves. Mixing a sequence
// with extra values is a construction error and panics.
func NewOneOf(first any, extra ...any) *OneOf {
	if vals, ok := sequenceValues(first); ok {
		if len(extra) > 0 {
			panic("validators: NewOneOf takes either a single sequence or individual values, not both")
		}
		return &OneOf{allowed: vals}
	}
	return &OneOf{allowed: append([]any{first}, extra...)}
}

func (o *OneOf) Test(v any) bool {
	for _, allowed := range o.allowed {
		if reflect.DeepEqual(v, allowed) {
			return true
		}
	}
	return false
}

// SequenceOf accepts homogeneous sequences whose every element satisfies the
// element validator, with optional emptiness, nil, and length constraints.
type SequenceOf struct {
	passthrough
	elem    Validator
	emptyOK bool
	noneOK  bool
	lo, hi  int
}

// SequenceOption configures a SequenceOf validator.
type SequenceOption func(*SequenceOf)

// WithEmptyOK controls whether an empty sequence is accepted, independently
// of the length bounds. Empty is accepted by default.
func WithEmptyOK(ok bool) SequenceOption {
	return func(s *SequenceOf) { s.emptyOK = ok }
}

// WithNoneOK controls whether nil is accepted in place of a sequence.
// Rejected by default.
func WithNoneOK(ok bool) SequenceOption {
	return func(s *SequenceOf) { s.noneOK = ok }
}

// WithLengthBetween constrains non-empty sequences to lo <= len <= hi
// inclusive.
func WithLengthBetween(lo, hi int) SequenceOption {
	return func(s *SequenceOf) { s.lo, s.hi = lo, hi }
}

// NewSequenceOf constructs a sequence validator delegating element checks to
// elem.
func NewSequenceOf(elem Validator, opts ...SequenceOption) *SequenceOf {
	s := &SequenceOf{elem: elem, emptyOK: true, hi: math.MaxInt}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SequenceOf) Test(v any) bool {
	if IsDeferred(v) {
		return true
	}
	if v == nil {
		return s.noneOK
	}
	elems, ok := sequenceValues(v)
	if !ok {
		return false
	}
	if len(elems) == 0 {
		return s.emptyOK
	}
	if len(elems) < s.lo || len(elems) > s.hi {
		return false
	}
	for _, e := range elems {
		if IsDeferred(e) {
			continue
		}
		if !s.elem.Test(e) {
			return false
		}
	}
	return true
}

// EitherOr accepts a value as soon as any child validator does.
type EitherOr struct {
	passthrough
	tests []Validator
}

// NewEitherOr constructs a logical-or over the given validators, tried in
// order with short-circuit on first success.
func NewEitherOr(tests ...Validator) *EitherOr {
	return &EitherOr{tests: tests}
}

func (e *EitherOr) Test(v any) bool {
	if IsDeferred(v) {
		return true
	}
	for _, t := range e.tests {
		if t.Test(v) {
			return true
		}
	}
	return false
}

// NoneOr accepts nil unconditionally and delegates everything else.
type NoneOr struct {
	elem Validator
}

// NewNoneOr wraps elem so that nil is also part of the accepted domain.
func NewNoneOr(elem Validator) *NoneOr {
	return &NoneOr{elem: elem}
}

func (n *NoneOr) Test(v any) bool {
	if v == nil || IsDeferred(v) {
		return true
	}
	return n.elem.Test(v)
}

func (n *NoneOr) Normalize(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	return n.elem.Normalize(v)
}

// sequenceValues flattens v into its elements when it is a slice or array of
// any element type.
func sequenceValues(v any) ([]any, bool) {
	switch s := v.(type) {
	case nil:
		return nil, false
	case []any:
		return s, true
	case string:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
