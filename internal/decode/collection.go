package decode

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/datastage/internal/datatable"
)

// Optional wraps an element decoder: null input maps to nil, anything else
// recurses into the element decoder.
func Optional[T any](elem Func[T]) Func[*T] {
	return func(v cty.Value, tbl *datatable.Table) (*T, error) {
		if isNull(v) {
			return nil, nil
		}
		out, err := elem(v, tbl)
		if err != nil {
			return nil, err
		}
		return &out, nil
	}
}

// Slice decodes an ordered sequence. Any element failure aborts the whole
// conversion; no partial result is returned.
func Slice[T any](elem Func[T]) Func[[]T] {
	return func(v cty.Value, tbl *datatable.Table) ([]T, error) {
		if isNull(v) || !(v.Type().IsListType() || v.Type().IsTupleType()) {
			return nil, &ShapeError{Want: "sequence", Got: friendly(v)}
		}
		out := make([]T, 0, v.LengthInt())
		for it, i := v.ElementIterator(), 0; it.Next(); i++ {
			_, ev := it.Element()
			dec, err := elem(ev, tbl)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out = append(out, dec)
		}
		return out, nil
	}
}

// MapOf decodes an associative container with string keys. Duplicate keys in
// the source collapse to the last value written; insertion order is
// irrelevant.
func MapOf[V any](elem Func[V]) Func[map[string]V] {
	return func(v cty.Value, tbl *datatable.Table) (map[string]V, error) {
		if isNull(v) || !(v.Type().IsMapType() || v.Type().IsObjectType()) {
			return nil, &ShapeError{Want: "mapping", Got: friendly(v)}
		}
		out := make(map[string]V, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			kv, ev := it.Element()
			key, err := String(kv, tbl)
			if err != nil {
				return nil, fmt.Errorf("map key: %w", err)
			}
			dec, err := elem(ev, tbl)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", key, err)
			}
			out[key] = dec
		}
		return out, nil
	}
}

// Array decodes a fixed-size array of exactly n positional values.
func Array[T any](n int, elem Func[T]) Func[[]T] {
	seq := Slice(elem)
	return func(v cty.Value, tbl *datatable.Table) ([]T, error) {
		if isNull(v) || !(v.Type().IsListType() || v.Type().IsTupleType()) {
			return nil, &ShapeError{Want: "sequence", Got: friendly(v)}
		}
		if got := v.LengthInt(); got != n {
			return nil, &ArityError{Want: n, Got: got}
		}
		return seq(v, tbl)
	}
}
