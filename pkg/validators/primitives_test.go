package validators_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/drawkit/pkg/validators"
)

func TestIsBoolean(t *testing.T) {
	t.Run("accepts native booleans and 0/1 integers", func(t *testing.T) {
		assert.True(t, validators.IsBoolean.Test(true))
		assert.True(t, validators.IsBoolean.Test(false))
		assert.True(t, validators.IsBoolean.Test(0))
		assert.True(t, validators.IsBoolean.Test(1))
		assert.False(t, validators.IsBoolean.Test(2))
		assert.False(t, validators.IsBoolean.Test(-1))
	})

	t.Run("accepts coercible strings case-insensitively", func(t *testing.T) {
		for _, s := range []string{"YES", "yes", "TRUE", "true", "No", "FALSE", "false"} {
			assert.True(t, validators.IsBoolean.Test(s), "string %q", s)
		}
		assert.False(t, validators.IsBoolean.Test("maybe"))
	})

	t.Run("normalize maps to canonical booleans", func(t *testing.T) {
		v, err := validators.IsBoolean.Normalize("YES")
		require.NoError(t, err)
		assert.Equal(t, true, v)

		v, err = validators.IsBoolean.Normalize("true")
		require.NoError(t, err)
		assert.Equal(t, true, v)

		v, err = validators.IsBoolean.Normalize("NO")
		require.NoError(t, err)
		assert.Equal(t, false, v)

		v, err = validators.IsBoolean.Normalize(nil)
		require.NoError(t, err)
		assert.Equal(t, false, v)

		v, err = validators.IsBoolean.Normalize(1)
		require.NoError(t, err)
		assert.Equal(t, true, v)
	})

	t.Run("normalize fails on unrecognized input", func(t *testing.T) {
		_, err := validators.IsBoolean.Normalize("maybe")
		require.ErrorIs(t, err, validators.ErrCannotCoerce)

		_, err = validators.IsBoolean.Normalize(3.5)
		require.ErrorIs(t, err, validators.ErrCannotCoerce)
	})
}

func TestIsNumber(t *testing.T) {
	t.Run("accepts every native numeric kind", func(t *testing.T) {
		for _, v := range []any{0, -7, int8(1), int16(2), int32(3), int64(4), uint(5), uint8(6), uint16(7), uint32(8), uint64(9), float32(1.5), 3.5} {
			assert.True(t, validators.IsNumber.Test(v), "value %v (%T)", v, v)
		}
	})

	t.Run("accepts numeric strings via coercion", func(t *testing.T) {
		assert.True(t, validators.IsNumber.Test("3.5"))
		assert.True(t, validators.IsNumber.Test("3"))
		assert.True(t, validators.IsNumber.Test("-2e3"))
		assert.False(t, validators.IsNumber.Test("abc"))
		assert.False(t, validators.IsNumber.Test(nil))
		assert.False(t, validators.IsNumber.Test(true))
	})

	t.Run("normalize parses floats and keeps integers integer-valued", func(t *testing.T) {
		v, err := validators.IsNumber.Normalize("3.5")
		require.NoError(t, err)
		assert.Equal(t, 3.5, v)

		v, err = validators.IsNumber.Normalize("3")
		require.NoError(t, err)
		assert.Equal(t, int64(3), v)

		v, err = validators.IsNumber.Normalize(float32(2))
		require.NoError(t, err)
		assert.Equal(t, float64(2), v)

		_, err = validators.IsNumber.Normalize("abc")
		require.ErrorIs(t, err, validators.ErrCannotCoerce)
	})

	t.Run("normalize is idempotent", func(t *testing.T) {
		for _, in := range []any{"3", "3.5", 7, 2.25} {
			once, err := validators.IsNumber.Normalize(in)
			require.NoError(t, err)
			twice, err := validators.IsNumber.Normalize(once)
			require.NoError(t, err)
			assert.Equal(t, once, twice, "input %v", in)
		}
	})
}

func TestIsInt(t *testing.T) {
	t.Run("accepts native integers and integer strings", func(t *testing.T) {
		assert.True(t, validators.IsInt.Test(42))
		assert.True(t, validators.IsInt.Test(int64(-1)))
		assert.True(t, validators.IsInt.Test(uint16(9)))
		assert.True(t, validators.IsInt.Test("42"))
		assert.True(t, validators.IsInt.Test("-7"))
	})

	t.Run("rejects floats and non-integer strings", func(t *testing.T) {
		assert.False(t, validators.IsInt.Test(3.5))
		assert.False(t, validators.IsInt.Test("3.5"))
		assert.False(t, validators.IsInt.Test("abc"))
		assert.False(t, validators.IsInt.Test(nil))
	})

	t.Run("normalize parses base-10 integers", func(t *testing.T) {
		v, err := validators.IsInt.Normalize("42")
		require.NoError(t, err)
		assert.Equal(t, int64(42), v)

		_, err = validators.IsInt.Normalize("3.5")
		require.ErrorIs(t, err, validators.ErrCannotCoerce)
	})
}

func TestIsString(t *testing.T) {
	t.Run("accepts native strings only", func(t *testing.T) {
		assert.True(t, validators.IsString.Test("x"))
		assert.True(t, validators.IsString.Test(""))
		assert.False(t, validators.IsString.Test(42))
		assert.False(t, validators.IsString.Test([]byte("x")))
		assert.False(t, validators.IsString.Test(nil))
	})
}

func TestIsCallable(t *testing.T) {
	t.Run("accepts funcs and closures", func(t *testing.T) {
		assert.True(t, validators.IsCallable.Test(func() {}))
		assert.True(t, validators.IsCallable.Test(strings.ToUpper))
		n := 0
		assert.True(t, validators.IsCallable.Test(func() int { n++; return n }))
	})

	t.Run("rejects non-callable values", func(t *testing.T) {
		assert.False(t, validators.IsCallable.Test("func"))
		assert.False(t, validators.IsCallable.Test(42))
		assert.False(t, validators.IsCallable.Test(nil))
	})
}

type stringerValue struct{}

func (stringerValue) String() string { return "stringer" }

func TestNewInstanceOf(t *testing.T) {
	t.Run("matches concrete types", func(t *testing.T) {
		v := validators.NewInstanceOf[validators.NumericAlign]()
		assert.True(t, v.Test(validators.NewNumericAlign(".", 2)))
		assert.False(t, v.Test("numeric"))
	})

	t.Run("matches interface types", func(t *testing.T) {
		v := validators.NewInstanceOf[interface{ String() string }]()
		assert.True(t, v.Test(stringerValue{}))
		assert.False(t, v.Test(42))
		assert.False(t, v.Test(nil))
	})
}

func TestNewNumberInRange(t *testing.T) {
	v := validators.NewNumberInRange(0, 10)

	t.Run("accepts numbers inside the inclusive range", func(t *testing.T) {
		assert.True(t, v.Test(0))
		assert.True(t, v.Test(10))
		assert.True(t, v.Test(5.5))
		assert.True(t, v.Test("7"))
	})

	t.Run("rejects numbers outside the range and non-numbers", func(t *testing.T) {
		assert.False(t, v.Test(-0.5))
		assert.False(t, v.Test(11))
		assert.False(t, v.Test("abc"))
		assert.False(t, v.Test(nil))
	})
}
