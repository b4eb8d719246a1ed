package modmeta

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Modifier classifies one dependency declaration.
type Modifier int

const (
	// Required dependencies must be present and load first.
	Required Modifier = iota
	// Optional dependencies load first when present.
	Optional
	// OptionalHidden is Optional without being shown to players.
	OptionalHidden
	// Incompatible forbids the named mod from being enabled at all.
	Incompatible
	// NoLoadOrderConstraint requires the mod but does not order against it.
	NoLoadOrderConstraint
)

var modifierTokens = map[string]Modifier{
	"!":   Incompatible,
	"?":   Optional,
	"(?)": OptionalHidden,
	"~":   NoLoadOrderConstraint,
}

func (m Modifier) String() string {
	switch m {
	case Required:
		return "required"
	case Optional:
		return "optional"
	case OptionalHidden:
		return "hidden-optional"
	case Incompatible:
		return "incompatible"
	case NoLoadOrderConstraint:
		return "no-load-order"
	}
	return fmt.Sprintf("modifier(%d)", int(m))
}

// token renders the modifier back into its wire form; Required is spelled
// by absence.
func (m Modifier) token() string {
	for tok, mod := range modifierTokens {
		if mod == m {
			return tok
		}
	}
	return ""
}

// ordersAfter reports whether this dependency kind implies the declaring mod
// should load after its target.
func (m Modifier) ordersAfter() bool {
	return m == Required || m == Optional || m == OptionalHidden
}

// Dependency parse failures, one sentinel per failure mode.
var (
	ErrInvalidDependency = errors.New("invalid dependency string")
	ErrUnknownModifier   = errors.New("unknown dependency modifier")
	ErrUnparsableName    = errors.New("dependency name could not be parsed")
	ErrInvalidVersion    = errors.New("invalid dependency version requirement")
)

// Dependency is one parsed dependency declaration from a mod's info.json.
// Constraint is nil when the declaration names no version requirement.
type Dependency struct {
	Modifier   Modifier
	Name       string
	Constraint *semver.Constraints

	// constraint is the canonical "cmp version" rendering Constraint was
	// parsed from, kept so String round-trips exactly.
	constraint string
}

// bodyRE matches everything after the optional modifier: a name of
// letters/digits/_/- possibly with internal spaces, then an optional
// comparator and a major.minor[.patch] version.
var bodyRE = regexp.MustCompile(`^([a-zA-Z0-9_-]+(?: +[a-zA-Z0-9_-]+)*) *(?:([<>=]=?) *((?:\d+\.){1,2}\d+))? *$`)

func isNameByte(c byte) bool {
	return c == '_' || c == '-' ||
		('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

// ParseDependency parses one dependency string of the form
// "[modifier ]name[ comparator version]".
func ParseDependency(input string) (Dependency, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return Dependency{}, fmt.Errorf("%w: %q", ErrInvalidDependency, input)
	}

	mod := Required
	body := s
	nameStart := strings.IndexFunc(s, func(r rune) bool {
		return r < 0x80 && isNameByte(byte(r))
	})
	switch {
	case nameStart < 0:
		// Nothing name-like at all; the whole string is a modifier token.
		if _, known := modifierTokens[s]; known {
			return Dependency{}, fmt.Errorf("%w: %q", ErrUnparsableName, input)
		}
		return Dependency{}, fmt.Errorf("%w: %q", ErrUnknownModifier, s)
	case nameStart > 0:
		token := strings.TrimSpace(s[:nameStart])
		known, ok := modifierTokens[token]
		if !ok {
			return Dependency{}, fmt.Errorf("%w: %q", ErrUnknownModifier, token)
		}
		mod = known
		body = s[nameStart:]
	}

	m := bodyRE.FindStringSubmatch(body)
	if m == nil {
		return Dependency{}, fmt.Errorf("%w: %q", ErrInvalidDependency, input)
	}

	dep := Dependency{Modifier: mod, Name: m[1]}
	if m[2] != "" {
		canon, err := canonicalConstraint(m[2], m[3])
		if err != nil {
			return Dependency{}, fmt.Errorf("%w: %q", err, input)
		}
		c, err := semver.NewConstraint(canon)
		if err != nil {
			return Dependency{}, fmt.Errorf("%w: %q", ErrInvalidVersion, canon)
		}
		dep.Constraint = c
		dep.constraint = canon
	}
	return dep, nil
}

// canonicalConstraint re-serializes every numeric version component (so
// leading zeros normalize away) and joins it with the comparator into the
// canonical form handed to the semver constraint parser. "==" folds to "=".
func canonicalConstraint(cmp, version string) (string, error) {
	if cmp == "==" {
		cmp = "="
	}
	parts := strings.Split(version, ".")
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return "", ErrInvalidVersion
		}
		parts[i] = strconv.FormatUint(n, 10)
	}
	return cmp + " " + strings.Join(parts, "."), nil
}

// ParseDependencies parses a mod's whole dependency list, failing on the
// first bad entry.
func ParseDependencies(inputs []string) ([]Dependency, error) {
	deps := make([]Dependency, 0, len(inputs))
	for _, in := range inputs {
		dep, err := ParseDependency(in)
		if err != nil {
			return nil, err
		}
		deps = append(deps, dep)
	}
	return deps, nil
}

// String renders the canonical wire form of the dependency. Parsing the
// result yields an equal Dependency.
func (d Dependency) String() string {
	var b strings.Builder
	if tok := d.Modifier.token(); tok != "" {
		b.WriteString(tok)
		b.WriteByte(' ')
	}
	b.WriteString(d.Name)
	if d.constraint != "" {
		b.WriteByte(' ')
		b.WriteString(d.constraint)
	}
	return b.String()
}

// Satisfies reports whether the given version meets the dependency's
// constraint. A constraint-free dependency is satisfied by any version.
func (d Dependency) Satisfies(v *semver.Version) bool {
	if d.Constraint == nil {
		return true
	}
	return d.Constraint.Check(v)
}
