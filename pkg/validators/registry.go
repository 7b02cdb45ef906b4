package validators

import (
	"sort"

	"github.com/dmitrymomot/drawkit/pkg/shapes"
)

// Shared validator singletons for the common attribute contracts. All are
// constructed once at package initialization, never mutated afterwards, and
// safe to use concurrently.
var (
	IsAnything Validator = anythingValidator{}
	IsNothing  Validator = nothingValidator{}

	IsBoolean  Validator = booleanValidator{}
	IsString   Validator = stringValidator{}
	IsCodec    Validator = codecValidator{}
	IsNumber   Validator = numberValidator{}
	IsInt      Validator = intValidator{}
	IsCallable Validator = callableValidator{}
	IsAuto     Validator = autoValidator{}

	IsNoneOrInt    = NewNoneOr(IsInt)
	IsNumberOrNone = NewNoneOr(IsNumber)
	IsNoneOrString = NewNoneOr(IsString)

	IsTextAnchor = NewOneOf([]any{"start", "middle", "end", "boxauto"})
	IsBoxAnchor  = NewOneOf([]any{"nw", "n", "ne", "w", "c", "e", "sw", "s", "se", "autox", "autoy"})

	IsListOfNumbers       = NewSequenceOf(IsNumber)
	IsListOfNumbersOrNone = NewSequenceOf(IsNumber, WithNoneOK(true))
	IsListOfStrings       = NewSequenceOf(IsString)
	IsListOfStringsOrNone = NewSequenceOf(IsString, WithNoneOK(true))

	IsNoneOrListOfNoneOrStrings = NewSequenceOf(IsNoneOrString, WithNoneOK(true))
	IsListOfNoneOrString        = NewSequenceOf(IsNoneOrString)
	IsNoneOrListOfNoneOrNumbers = NewSequenceOf(IsNumberOrNone, WithNoneOK(true))

	// An (x, y) coordinate pair and a 6-element affine transform.
	IsXYCoord   = NewSequenceOf(IsNumber, WithEmptyOK(false), WithLengthBetween(2, 2))
	IsTransform = NewSequenceOf(IsNumber, WithEmptyOK(false), WithLengthBetween(6, 6))

	IsColor        Validator = colorValidator{}
	IsColorOrNone            = NewNoneOr(IsColor)
	IsListOfColors           = NewSequenceOf(IsColor)

	IsShape        = NewInstanceOf[shapes.Shape]()
	IsValidChild   Validator = validChildValidator{}
	IsNoneOrShape            = NewNoneOr(IsValidChild)
	IsListOfShapes           = NewSequenceOf(IsShape)

	IsStringOrCallable       = NewEitherOr(IsString, IsCallable)
	IsStringOrCallableOrNone = NewNoneOr(IsStringOrCallable)

	IsNormalDate Validator = normalDateValidator{}

	// IsAlignment accepts the plain text anchors plus a NumericAlign record.
	IsAlignment = NewEitherOr(IsTextAnchor, NewInstanceOf[NumericAlign]())
)

// registry maps attribute-contract names to their shared singletons so a
// consumer can select a validator by name. Built once, read-only afterwards.
var registry = map[string]Validator{
	"isAnything":                  IsAnything,
	"isNothing":                   IsNothing,
	"isBoolean":                   IsBoolean,
	"isString":                    IsString,
	"isCodec":                     IsCodec,
	"isNumber":                    IsNumber,
	"isInt":                       IsInt,
	"isCallable":                  IsCallable,
	"isAuto":                      IsAuto,
	"isNoneOrInt":                 IsNoneOrInt,
	"isNumberOrNone":              IsNumberOrNone,
	"isNoneOrString":              IsNoneOrString,
	"isTextAnchor":                IsTextAnchor,
	"isBoxAnchor":                 IsBoxAnchor,
	"isListOfNumbers":             IsListOfNumbers,
	"isListOfNumbersOrNone":       IsListOfNumbersOrNone,
	"isListOfStrings":             IsListOfStrings,
	"isListOfStringsOrNone":       IsListOfStringsOrNone,
	"isNoneOrListOfNoneOrStrings": IsNoneOrListOfNoneOrStrings,
	"isListOfNoneOrString":        IsListOfNoneOrString,
	"isNoneOrListOfNoneOrNumbers": IsNoneOrListOfNoneOrNumbers,
	"isXYCoord":                   IsXYCoord,
	"isTransform":                 IsTransform,
	"isColor":                     IsColor,
	"isColorOrNone":               IsColorOrNone,
	"isListOfColors":              IsListOfColors,
	"isShape":                     IsShape,
	"isValidChild":                IsValidChild,
	"isNoneOrShape":               IsNoneOrShape,
	"isListOfShapes":              IsListOfShapes,
	"isStringOrCallable":          IsStringOrCallable,
	"isStringOrCallableOrNone":    IsStringOrCallableOrNone,
	"isNormalDate":                IsNormalDate,
	"isAlignment":                 IsAlignment,
}

// Lookup returns the shared validator registered under name.
func Lookup(name string) (Validator, bool) {
	v, ok := registry[name]
	return v, ok
}

// Names returns the sorted names of all registered validators.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
