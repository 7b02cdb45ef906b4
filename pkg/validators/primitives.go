package validators

import (
	"reflect"
	"strconv"
	"strings"
)

type booleanValidator struct{}

func (b booleanValidator) Test(v any) bool {
	switch x := v.(type) {
	case bool:
		return true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		n, _ := toInt64(x)
		return n == 0 || n == 1
	}
	return NormalizeTest(b, v)
}

func (booleanValidator) Normalize(v any) (any, error) {
	switch x := v.(type) {
	case nil:
		return false, nil
	case bool:
		return x, nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		n, _ := toInt64(x)
		switch n {
		case 0:
			return false, nil
		case 1:
			return true, nil
		}
	case string:
		switch strings.ToUpper(x) {
		case "YES", "TRUE":
			return true, nil
		case "NO", "FALSE":
			return false, nil
		}
	}
	return nil, coercionError("boolean", v)
}

type numberValidator struct{}

func (n numberValidator) Test(v any) bool {
	if isNativeNumber(v) {
		return true
	}
	return NormalizeTest(n, v)
}

// Normalize canonicalizes integers to int64 and floats to float64. Strings
// parse as int64 first so "3" stays integer-valued, then fall back to float64.
func (numberValidator) Normalize(v any) (any, error) {
	if n, ok := toInt64(v); ok {
		return n, nil
	}
	switch x := v.(type) {
	case float32:
		return float64(x), nil
	case float64:
		return x, nil
	case string:
		if n, err := strconv.ParseInt(x, 10, 64); err == nil {
			return n, nil
		}
		if f, err := strconv.ParseFloat(x, 64); err == nil {
			return f, nil
		}
	}
	return nil, coercionError("a number", v)
}

type intValidator struct{}

func (i intValidator) Test(v any) bool {
	if _, ok := toInt64(v); ok {
		return true
	}
	if _, ok := v.(string); !ok {
		return false
	}
	return NormalizeTest(i, v)
}

func (intValidator) Normalize(v any) (any, error) {
	if n, ok := toInt64(v); ok {
		return n, nil
	}
	if s, ok := v.(string); ok {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n, nil
		}
	}
	return nil, coercionError("an integer", v)
}

type stringValidator struct{ passthrough }

func (stringValidator) Test(v any) bool {
	_, ok := v.(string)
	return ok
}

type callableValidator struct{ passthrough }

func (callableValidator) Test(v any) bool {
	if v == nil {
		return false
	}
	return reflect.TypeOf(v).Kind() == reflect.Func
}

// InstanceOf accepts any value assertable to T, which may be a concrete or an
// interface type.
type InstanceOf[T any] struct{ passthrough }

// NewInstanceOf constructs an instance check against the type descriptor T.
func NewInstanceOf[T any]() InstanceOf[T] { return InstanceOf[T]{} }

func (InstanceOf[T]) Test(v any) bool {
	_, ok := v.(T)
	return ok
}

// toInt64 reports v as an int64 when it is any native integer kind.
func toInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint:
		return int64(x), true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		return int64(x), true
	}
	return 0, false
}

func isNativeNumber(v any) bool {
	if _, ok := toInt64(v); ok {
		return true
	}
	switch v.(type) {
	case float32, float64:
		return true
	}
	return false
}
