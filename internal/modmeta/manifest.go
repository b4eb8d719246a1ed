package modmeta

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
)

// InfoJSON is a mod's manifest as persisted in its info.json. Wire format,
// decoded bit-exactly.
type InfoJSON struct {
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	Dependencies []string `json:"dependencies"`
}

// ModListJSON is the enablement manifest of a mods directory: an ordered
// list of (name, enabled) pairs deciding which discovered mods participate
// in a load session.
type ModListJSON struct {
	Mods []ModListEntry `json:"mods"`
}

// ModListEntry is one row of mod-list.json. Version, when present, pins the
// enabled mod to one installed release instead of the newest.
type ModListEntry struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
	Version string `json:"version,omitempty"`
}

// ParseInfo decodes an info.json payload and its embedded version and
// dependency strings.
func ParseInfo(data []byte) (InfoJSON, *semver.Version, []Dependency, error) {
	var info InfoJSON
	if err := json.Unmarshal(data, &info); err != nil {
		return info, nil, nil, fmt.Errorf("decode info.json: %w", err)
	}
	if info.Name == "" {
		return info, nil, nil, fmt.Errorf("info.json declares no name")
	}
	version, err := semver.NewVersion(info.Version)
	if err != nil {
		return info, nil, nil, fmt.Errorf("mod %q version %q: %w", info.Name, info.Version, err)
	}
	deps, err := ParseDependencies(info.Dependencies)
	if err != nil {
		return info, nil, nil, fmt.Errorf("mod %q: %w", info.Name, err)
	}
	return info, version, deps, nil
}

// LoadModList reads a mod-list.json. A missing file is not an error: every
// discovered mod simply stays enabled.
func LoadModList(path string) (*ModListJSON, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list ModListJSON
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &list, nil
}

// ApplyModList flips the enablement of discovered mods according to the
// manifest and re-selects each affected mod's release. Mods absent from the
// list keep their default state.
func ApplyModList(mods []*Mod, list *ModListJSON) error {
	if list == nil {
		return nil
	}
	byName := make(map[string]*Mod, len(mods))
	for _, m := range mods {
		byName[m.Name] = m
	}
	for _, entry := range list.Mods {
		m, ok := byName[entry.Name]
		if !ok {
			continue
		}
		switch {
		case !entry.Enabled:
			m.State = Disabled
			continue
		case entry.Version != "":
			pinned, err := semver.NewVersion(entry.Version)
			if err != nil {
				return fmt.Errorf("mod-list.json: mod %q version %q: %w", entry.Name, entry.Version, err)
			}
			m.State = EnabledPinned
			m.Pinned = pinned
		default:
			m.State = EnabledLatest
			m.Pinned = nil
		}
		if err := m.SelectRelease(); err != nil {
			return err
		}
	}
	return nil
}
