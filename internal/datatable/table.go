package datatable

import (
	"fmt"
	"reflect"
)

// Kind identifies one record schema, e.g. "bool-setting" or "sprite".
type Kind string

// Registrable is the capability a record needs to live in a Table.
// Kind must be callable on a nil receiver; it identifies the type, not the
// instance.
type Registrable interface {
	Name() string
	Kind() Kind
}

// View marks records that belong to an abstract kind's consolidated
// category. Views are never registered directly; they are projected from
// concrete records at registration time.
type View interface {
	Registrable
	AbstractRecord()
}

// Projector is implemented by concrete records that also belong to one or
// more abstract kinds. Each projection is a consolidated common view stored
// under the abstract kind's category alongside the concrete record.
type Projector interface {
	Projections() []View
}

// Table is the registry for one load session.
type Table struct {
	categories map[Kind]map[string]Registrable
	references []trackedRef
	resources  []ResourceRecord
}

// New returns an empty Table.
func New() *Table {
	return &Table{categories: make(map[Kind]map[string]Registrable)}
}

// Extend registers a concrete record under its kind and name, overwriting
// any existing entry with the same name. If the record projects views into
// abstract categories, those are registered too.
func (t *Table) Extend(rec Registrable) {
	t.insert(rec)
	if p, ok := rec.(Projector); ok {
		for _, view := range p.Projections() {
			t.insert(view)
		}
	}
}

func (t *Table) insert(rec Registrable) {
	cat, ok := t.categories[rec.Kind()]
	if !ok {
		cat = make(map[string]Registrable)
		t.categories[rec.Kind()] = cat
	}
	cat[rec.Name()] = rec
}

// Len reports how many records are registered under the given kind.
func (t *Table) Len(kind Kind) int {
	return len(t.categories[kind])
}

// Counts reports the number of registered records per non-empty kind.
func (t *Table) Counts() map[Kind]int {
	counts := make(map[Kind]int, len(t.categories))
	for kind, cat := range t.categories {
		if len(cat) > 0 {
			counts[kind] = len(cat)
		}
	}
	return counts
}

// contains reports whether a record of the given kind and name exists,
// including projected abstract views.
func (t *Table) contains(kind Kind, name string) bool {
	_, ok := t.categories[kind][name]
	return ok
}

// Find looks up a record by name in the category for T and returns the
// stored record itself. Abstract kinds never answer direct lookups; use
// FindCloned for those.
func Find[T Registrable](t *Table, name string) (T, error) {
	var zero T
	kind := kindOf[T]()
	if _, abstract := any(zero).(View); abstract {
		return zero, fmt.Errorf("%w: %q holds projected views only", ErrAbstractKind, kind)
	}
	return lookup[T](t, kind, name)
}

// FindCloned looks up a record by name and returns an owned shallow copy,
// independent of the Table's lifetime. This is the only valid lookup form
// for abstract kinds: their categories hold consolidated views projected at
// registration time, so the lookup is a single map access regardless of how
// many concrete sub-kinds exist.
func FindCloned[T Registrable](t *Table, name string) (T, error) {
	rec, err := lookup[T](t, kindOf[T](), name)
	if err != nil {
		return rec, err
	}
	return shallowClone(rec), nil
}

func lookup[T Registrable](t *Table, kind Kind, name string) (T, error) {
	var zero T
	rec, ok := t.categories[kind][name]
	if !ok {
		return zero, &NotFoundError{Kind: kind, Name: name}
	}
	typed, ok := rec.(T)
	if !ok {
		return zero, fmt.Errorf("record %q of kind %q has unexpected type %T", name, kind, rec)
	}
	return typed, nil
}

// kindOf reads the kind tag off T's nil value. Registrable implementations
// keep Kind a constant method for exactly this reason.
func kindOf[T Registrable]() Kind {
	var zero T
	return zero.Kind()
}

// shallowClone copies the pointed-to record so the caller owns it.
func shallowClone[T Registrable](rec T) T {
	rv := reflect.ValueOf(rec)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return rec
	}
	cp := reflect.New(rv.Type().Elem())
	cp.Elem().Set(rv.Elem())
	return cp.Interface().(T)
}
