package datatable

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAbstractKind is returned by Find when T is an abstract kind: abstract
// categories hold projected views and never answer borrowed lookups.
var ErrAbstractKind = errors.New("abstract kind cannot be looked up directly")

// NotFoundError reports a failed immediate lookup.
type NotFoundError struct {
	Kind Kind
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no record named %q of kind %q", e.Name, e.Kind)
}

// DanglingRef identifies one reference whose target was never registered.
type DanglingRef struct {
	Kind Kind
	Name string
}

// ValidationError is the batch verdict of ValidateReferences: every live
// reference that failed to resolve, in issue order.
type ValidationError struct {
	Dangling []DanglingRef
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Dangling))
	for i, d := range e.Dangling {
		msgs[i] = fmt.Sprintf("dangling reference to %q of kind %q", d.Name, d.Kind)
	}
	return fmt.Sprintf("reference validation failed:\n- %s", strings.Join(msgs, "\n- "))
}
