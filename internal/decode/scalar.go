package decode

import (
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/datastage/internal/datatable"
)

// Func is the conversion protocol: produce a T from an untyped value, given
// a mutable handle to the session's data table.
type Func[T any] func(v cty.Value, tbl *datatable.Table) (T, error)

// friendly names the value's shape for error messages without tripping over
// the nil value.
func friendly(v cty.Value) string {
	if v == cty.NilVal {
		return "null"
	}
	if v.IsNull() {
		return "null"
	}
	return v.Type().FriendlyName()
}

// isNull treats both the absent value and a typed null as null input.
func isNull(v cty.Value) bool {
	return v == cty.NilVal || v.IsNull()
}

// scalar builds the Func for one scalar Go type. It goes through cty's
// conversion machinery, which keeps the scripting runtime's loose scalar
// coercions (a number-shaped string converts to a number); anything
// genuinely unconvertible reports a shape error naming both sides.
func scalar[T any](want cty.Type, name string) Func[T] {
	return func(v cty.Value, _ *datatable.Table) (T, error) {
		var out T
		if isNull(v) {
			return out, &ShapeError{Want: name, Got: "null"}
		}
		conv, err := convert.Convert(v, want)
		if err != nil {
			return out, &ShapeError{Want: name, Got: friendly(v)}
		}
		if err := gocty.FromCtyValue(conv, &out); err != nil {
			return out, &ShapeError{Want: name, Got: friendly(v)}
		}
		return out, nil
	}
}

// Scalar decoders for the supported primitive shapes.
var (
	String  = scalar[string](cty.String, "string")
	Bool    = scalar[bool](cty.Bool, "bool")
	Float64 = scalar[float64](cty.Number, "number")
	Float32 = scalar[float32](cty.Number, "number")
	Int64   = scalar[int64](cty.Number, "integer")
	Int32   = scalar[int32](cty.Number, "integer")
	Int16   = scalar[int16](cty.Number, "integer")
	Int8    = scalar[int8](cty.Number, "integer")
	Uint64  = scalar[uint64](cty.Number, "unsigned integer")
	Uint32  = scalar[uint32](cty.Number, "unsigned integer")
	Uint16  = scalar[uint16](cty.Number, "unsigned integer")
	Uint8   = scalar[uint8](cty.Number, "unsigned integer")
)

// FromString decodes a string and parses it into T, for enum-like fields
// declared as text in the input.
func FromString[T any](parse func(string) (T, error)) Func[T] {
	return func(v cty.Value, tbl *datatable.Table) (T, error) {
		var zero T
		s, err := String(v, tbl)
		if err != nil {
			return zero, err
		}
		return parse(s)
	}
}
