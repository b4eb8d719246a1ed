package decode

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/datastage/internal/datatable"
)

// Object is the attribute view of a record-shaped input value, used by
// per-kind decoders. It keeps the table handle so attribute decoders can
// issue references and file resource claims.
type Object struct {
	attrs map[string]cty.Value
	tbl   *datatable.Table
}

// AsObject requires an associative input value and returns its attribute
// view.
func AsObject(v cty.Value, tbl *datatable.Table) (*Object, error) {
	if isNull(v) || !(v.Type().IsObjectType() || v.Type().IsMapType()) {
		return nil, &ShapeError{Want: "record table", Got: friendly(v)}
	}
	return &Object{attrs: v.AsValueMap(), tbl: tbl}, nil
}

// Table exposes the underlying table handle for decoders with direct side
// effects.
func (o *Object) Table() *datatable.Table { return o.tbl }

// Has reports whether the attribute is present and non-null.
func (o *Object) Has(name string) bool {
	v, ok := o.attrs[name]
	return ok && !isNull(v)
}

// get returns the attribute value, or cty.NilVal when absent.
func (o *Object) get(name string) cty.Value {
	v, ok := o.attrs[name]
	if !ok {
		return cty.NilVal
	}
	return v
}

// Attr decodes a required attribute.
func Attr[T any](o *Object, name string, fn Func[T]) (T, error) {
	var zero T
	if !o.Has(name) {
		return zero, &MissingAttrError{Name: name}
	}
	out, err := fn(o.get(name), o.tbl)
	if err != nil {
		return zero, fmt.Errorf("attribute %q: %w", name, err)
	}
	return out, nil
}

// AttrOr decodes an attribute, substituting the default when it is absent.
func AttrOr[T any](o *Object, name string, fn Func[T], def T) (T, error) {
	if !o.Has(name) {
		return def, nil
	}
	return Attr(o, name, fn)
}

// AttrOrElse decodes an attribute, computing the default lazily when it is
// absent. The default expression runs after any siblings the caller decoded
// earlier, so it sees their converted values.
func AttrOrElse[T any](o *Object, name string, fn Func[T], def func() T) (T, error) {
	if !o.Has(name) {
		return def(), nil
	}
	return Attr(o, name, fn)
}

// AttrOpt decodes an optional attribute; absent or null input yields nil.
func AttrOpt[T any](o *Object, name string, fn Func[T]) (*T, error) {
	if !o.Has(name) {
		return nil, nil
	}
	out, err := Attr(o, name, fn)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// MandatoryIf enforces a "mandatory if predicate over siblings" constraint
// after the fields involved have been decoded.
func MandatoryIf(cond bool, attr string, present bool, why string) error {
	if cond && !present {
		return Constraintf("attribute %q is mandatory when %s", attr, why)
	}
	return nil
}
