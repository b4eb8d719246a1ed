package decode

import "fmt"

// ShapeError reports a conversion-time type mismatch, naming the expected
// and actual shapes.
type ShapeError struct {
	Want string
	Got  string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("type mismatch: expected %s, got %s", e.Want, e.Got)
}

// ArityError reports a fixed-size array conversion with the wrong number of
// positional values.
type ArityError struct {
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("arity mismatch: expected %d, got %d", e.Want, e.Got)
}

// MissingAttrError reports a required attribute absent from the input.
type MissingAttrError struct {
	Name string
}

func (e *MissingAttrError) Error() string {
	return fmt.Sprintf("missing required attribute %q", e.Name)
}

// ConstraintError reports a record that decoded cleanly but violates a
// cross-field constraint, either a mandatory-if rule or a post-decode check.
type ConstraintError struct {
	Msg string
}

func (e *ConstraintError) Error() string { return e.Msg }

// Constraintf builds a ConstraintError.
func Constraintf(format string, args ...any) error {
	return &ConstraintError{Msg: fmt.Sprintf(format, args...)}
}
