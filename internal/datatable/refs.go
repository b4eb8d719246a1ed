package datatable

import "weak"

// Ref is a non-owning handle to a record of kind T, held by name. It may be
// created before its target is registered; whether it resolves is checked on
// demand or during the table's validation pass.
type Ref[T Registrable] struct {
	name string
}

// Name returns the referenced record's name.
func (r *Ref[T]) Name() string { return r.name }

// Resolve looks the reference up in the table. Abstract references resolve
// against the consolidated view category and return an owned copy; concrete
// references return the stored record.
func (r *Ref[T]) Resolve(t *Table) (T, error) {
	var zero T
	if _, abstract := any(zero).(View); abstract {
		return FindCloned[T](t, r.name)
	}
	return Find[T](t, r.name)
}

// Valid reports whether the reference currently resolves.
func (r *Ref[T]) Valid(t *Table) bool {
	_, err := r.Resolve(t)
	return err == nil
}

// trackedRef is the table-side bookkeeping entry for one issued reference:
// its target identity plus a liveness probe. The probe goes nil-negative
// once the owning record (and with it the Ref) has been dropped, at which
// point the reference imposes no validation obligation.
type trackedRef struct {
	kind  Kind
	name  string
	alive func() bool
}

// NewReference allocates a reference to a record of kind T, records it in
// the table's outstanding-reference list and returns it. The table keeps
// only a weak pointer: a reference abandoned before validation is skipped,
// not reported.
func NewReference[T Registrable](t *Table, name string) *Ref[T] {
	ref := &Ref[T]{name: name}
	wp := weak.Make(ref)
	t.references = append(t.references, trackedRef{
		kind:  kindOf[T](),
		name:  name,
		alive: func() bool { return wp.Value() != nil },
	})
	return ref
}

// ValidateReferences walks the outstanding-reference list and checks that
// every reference still alive resolves. Failures are collected and reported
// as one batch so the caller gets a full load-session verdict. Dead entries
// are tolerated and skipped; running ReferencesCleanup first is optional.
func (t *Table) ValidateReferences() error {
	var dangling []DanglingRef
	for _, ref := range t.references {
		if !ref.alive() {
			continue
		}
		if !t.contains(ref.kind, ref.name) {
			dangling = append(dangling, DanglingRef{Kind: ref.kind, Name: ref.name})
		}
	}
	if len(dangling) > 0 {
		return &ValidationError{Dangling: dangling}
	}
	return nil
}

// ReferencesCleanup drops list entries whose owner has been collected. It is
// a housekeeping step decoupled from validation.
func (t *Table) ReferencesCleanup() {
	kept := t.references[:0]
	for _, ref := range t.references {
		if ref.alive() {
			kept = append(kept, ref)
		}
	}
	t.references = kept
}
