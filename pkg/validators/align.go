package validators

// NumericAlign configures decimal-point alignment for numeric text anchors.
// It is a plain record, not a flavor of string: consumers match on the type.
type NumericAlign struct {
	// DecimalChar is the character to align on; the last occurrence in the
	// rendered text wins.
	DecimalChar string

	// DecimalLen is the number of characters expected after DecimalChar.
	DecimalLen int
}

// NewNumericAlign returns a NumericAlign with the conventional "." alignment
// character when dp is empty.
func NewNumericAlign(dp string, dpLen int) NumericAlign {
	if dp == "" {
		dp = "."
	}
	return NumericAlign{DecimalChar: dp, DecimalLen: dpLen}
}
