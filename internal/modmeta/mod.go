package modmeta

import (
	"fmt"
	"sort"

	"github.com/Masterminds/semver/v3"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// EnabledState records how the enablement manifest treats a mod.
type EnabledState int

const (
	// Disabled mods are discovered but take no part in the load session.
	Disabled EnabledState = iota
	// EnabledLatest loads the newest discovered release.
	EnabledLatest
	// EnabledPinned loads the release pinned in Mod.Pinned.
	EnabledPinned
)

// Mod is the descriptor of one loadable unit: its identity, enablement, the
// releases discovered on disk and the one selected for this session.
type Mod struct {
	Name     string
	State    EnabledState
	Pinned   *semver.Version
	Releases []*Release
	Release  *Release
}

// Enabled reports whether the mod participates in the load session.
func (m *Mod) Enabled() bool { return m.State != Disabled }

// SelectRelease picks the release the session should load: the pinned
// version when the enablement manifest pins one, otherwise the best
// discovered release per CompareReleases.
func (m *Mod) SelectRelease() error {
	if m.State == EnabledPinned && m.Pinned != nil {
		for _, r := range m.Releases {
			if r.Version.Equal(m.Pinned) {
				m.Release = r
				return nil
			}
		}
		return fmt.Errorf("mod %q: pinned version %s is not installed", m.Name, m.Pinned)
	}
	m.Release = nil
	for _, r := range m.Releases {
		if m.Release == nil || CompareReleases(r, m.Release) > 0 {
			m.Release = r
		}
	}
	if m.Release == nil {
		return fmt.Errorf("mod %q has no releases", m.Name)
	}
	return nil
}

// dependsOn reports whether the selected release declares a load-order
// dependency on the named mod.
func (m *Mod) dependsOn(name string) bool {
	if m.Release == nil {
		return false
	}
	for _, d := range m.Release.Dependencies {
		if d.Name == name && d.Modifier.ordersAfter() {
			return true
		}
	}
	return false
}

// natural compares names alphanumerically, locale-invariant, with embedded
// numbers compared by value so "mod2" sorts before "mod10". The loader is
// single-threaded, matching the collator's requirements.
var natural = collate.New(language.Und, collate.Numeric)

// Compare defines the load order of two mods. It returns ok=false for two
// descriptors with the same name: those are incomparable, which signals a
// duplicate-mod condition to the caller. Otherwise a mod compares greater
// than (loads after) any mod it declares a required, optional or
// hidden-optional dependency on, and unrelated mods fall back to natural
// name order. This is an ordering hint, not a cycle-safe sort.
func Compare(a, b *Mod) (ord int, ok bool) {
	if a.Name == b.Name {
		return 0, false
	}
	switch {
	case a.dependsOn(b.Name):
		return 1, true
	case b.dependsOn(a.Name):
		return -1, true
	}
	return natural.CompareString(a.Name, b.Name), true
}

// SortMods orders mods for registration using Compare with a stable sort.
// Duplicate names are rejected before sorting.
func SortMods(mods []*Mod) error {
	seen := make(map[string]struct{}, len(mods))
	for _, m := range mods {
		if _, dup := seen[m.Name]; dup {
			return fmt.Errorf("duplicate mod %q", m.Name)
		}
		seen[m.Name] = struct{}{}
	}
	sort.SliceStable(mods, func(i, j int) bool {
		ord, ok := Compare(mods[i], mods[j])
		return ok && ord < 0
	})
	return nil
}
