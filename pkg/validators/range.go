package validators

// NumberInRange accepts any value coercible to a number whose coerced value
// falls within an inclusive range.
type NumberInRange struct {
	lo, hi float64
}

// NewNumberInRange constructs a range check over [lo, hi].
func NewNumberInRange(lo, hi float64) *NumberInRange {
	return &NumberInRange{lo: lo, hi: hi}
}

func (r *NumberInRange) Test(v any) bool {
	n, err := r.Normalize(v)
	if err != nil {
		return false
	}
	f, _ := n.(float64)
	return r.lo <= f && f <= r.hi
}

func (r *NumberInRange) Normalize(v any) (any, error) {
	n, err := IsNumber.Normalize(v)
	if err != nil {
		return nil, err
	}
	if i, ok := n.(int64); ok {
		return float64(i), nil
	}
	return n, nil
}
