// Package validators provides composable value validators and coercers for
// dynamically typed drawing attributes.
//
// A Validator decides whether an arbitrary runtime value satisfies a declared
// constraint and, where a canonical representation exists, coerces the value
// into it. Primitive validators (boolean, number, integer, string, callable,
// pattern) compose into higher-order ones (OneOf, SequenceOf, EitherOr,
// NoneOr, AutoOr) while keeping a uniform contract and uniform failure
// semantics, so an attribute-assignment layer can enforce typed contracts on
// objects that carry no static type information.
//
// # Architecture
//
// Every validator implements the two-method Validator interface: Test reports
// whether a value is acceptable (never panics, invalid input is simply false),
// and Normalize produces the canonical form or a coercion error. Validators
// without a coercion step embed an identity Normalize. Combinators own their
// child validators and delegate recursively; all instances are immutable after
// construction and safe for concurrent use.
//
// Deferred values are a special case: any value implementing DerivedValue
// (canonically Inherit) is accepted structurally by the combinators without
// testing, and resolved later by an external, context-aware resolver.
//
// # Usage
//
//	v := validators.NewSequenceOf(validators.IsNumber,
//		validators.WithEmptyOK(false),
//		validators.WithLengthBetween(2, 2))
//	v.Test([]any{1, 2})   // true
//	v.Test([]any{1})      // false
//
//	n, err := validators.IsNumber.Normalize("3.5") // float64(3.5), nil
//
// Named singletons for the common attribute contracts (IsNumber, IsBoolean,
// IsTextAnchor, ...) are constructed once at package initialization and may be
// shared freely; Lookup selects one by name.
//
// # Error Handling
//
// Test reports rejection as false and never raises. Normalize signals an
// unsatisfiable coercion with an error wrapping ErrCannotCoerce, which
// NormalizeTest folds back into a boolean while suppressing every failure
// kind the coercion path can produce. Construction-time misuse (a OneOf given
// both a sequence and extra values, an invalid pattern expression) panics
// immediately rather than surfacing at Test time.
package validators
