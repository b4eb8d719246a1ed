package decode

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestScalarDecoders(t *testing.T) {
	t.Parallel()

	t.Run("string", func(t *testing.T) {
		t.Parallel()
		out, err := String(cty.StringVal("iron-plate"), nil)
		require.NoError(t, err)
		assert.Equal(t, "iron-plate", out)
	})

	t.Run("bool", func(t *testing.T) {
		t.Parallel()
		out, err := Bool(cty.True, nil)
		require.NoError(t, err)
		assert.True(t, out)
	})

	t.Run("float64", func(t *testing.T) {
		t.Parallel()
		out, err := Float64(cty.NumberFloatVal(0.5), nil)
		require.NoError(t, err)
		assert.Equal(t, 0.5, out)
	})

	t.Run("int64", func(t *testing.T) {
		t.Parallel()
		out, err := Int64(cty.NumberIntVal(-42), nil)
		require.NoError(t, err)
		assert.Equal(t, int64(-42), out)
	})

	t.Run("uint8", func(t *testing.T) {
		t.Parallel()
		out, err := Uint8(cty.NumberIntVal(255), nil)
		require.NoError(t, err)
		assert.Equal(t, uint8(255), out)
	})

	t.Run("number-shaped string coerces", func(t *testing.T) {
		t.Parallel()
		out, err := Int64(cty.StringVal("7"), nil)
		require.NoError(t, err)
		assert.Equal(t, int64(7), out)
	})
}

func TestScalarDecoders_ShapeErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		decode     func(cty.Value) error
		input      cty.Value
		expectWant string
		expectGot  string
	}{
		{
			name:       "sequence is not a string",
			decode:     func(v cty.Value) error { _, err := String(v, nil); return err },
			input:      cty.TupleVal([]cty.Value{cty.NumberIntVal(1)}),
			expectWant: "string",
			expectGot:  "tuple",
		},
		{
			name:       "text is not a number",
			decode:     func(v cty.Value) error { _, err := Float64(v, nil); return err },
			input:      cty.StringVal("plenty"),
			expectWant: "number",
			expectGot:  "string",
		},
		{
			name:       "text is not a bool",
			decode:     func(v cty.Value) error { _, err := Bool(v, nil); return err },
			input:      cty.StringVal("yes"),
			expectWant: "bool",
			expectGot:  "string",
		},
		{
			name:       "null is not an integer",
			decode:     func(v cty.Value) error { _, err := Int64(v, nil); return err },
			input:      cty.NullVal(cty.Number),
			expectWant: "integer",
			expectGot:  "null",
		},
		{
			name:       "absent value",
			decode:     func(v cty.Value) error { _, err := String(v, nil); return err },
			input:      cty.NilVal,
			expectWant: "string",
			expectGot:  "null",
		},
		{
			name:       "negative is not unsigned",
			decode:     func(v cty.Value) error { _, err := Uint16(v, nil); return err },
			input:      cty.NumberIntVal(-1),
			expectWant: "unsigned integer",
			expectGot:  "number",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.decode(tc.input)

			var shapeErr *ShapeError
			require.ErrorAs(t, err, &shapeErr)
			assert.Equal(t, tc.expectWant, shapeErr.Want)
			assert.Equal(t, tc.expectGot, shapeErr.Got)
			assert.Equal(t, "type mismatch: expected "+tc.expectWant+", got "+tc.expectGot, err.Error())
		})
	}
}

func TestFromString(t *testing.T) {
	t.Parallel()

	parseHex := FromString(func(s string) (int64, error) {
		return strconv.ParseInt(s, 16, 64)
	})

	out, err := parseHex(cty.StringVal("ff"), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(255), out)

	_, err = parseHex(cty.StringVal("zz"), nil)
	require.Error(t, err)

	_, err = parseHex(cty.TupleVal([]cty.Value{cty.True}), nil)
	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
}
