package modmeta

import (
	"fmt"
	"os"
	"path/filepath"
)

// ScanDir discovers the mods installed under dir. Every zip file and every
// folder (or symlink) carrying an info.json becomes a release; other
// entries, such as the mod-list.json itself, are ignored. When several
// releases of one mod are present the best one is selected per
// CompareReleases. Discovered mods default to enabled-latest; apply the
// enablement manifest afterwards.
func ScanDir(dir string) ([]*Mod, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan mods directory: %w", err)
	}

	byName := make(map[string]*Mod)
	var order []string
	for _, entry := range entries {
		entryPath := filepath.Join(dir, entry.Name())
		structure, err := Classify(entryPath, entry)
		if err != nil {
			continue
		}

		release := &Release{Structure: structure, Path: entryPath}
		raw, err := release.ReadFile("info.json")
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}
		info, version, deps, err := ParseInfo(raw)
		if err != nil {
			return nil, err
		}
		release.Version = version
		release.Dependencies = deps

		mod, ok := byName[info.Name]
		if !ok {
			mod = &Mod{Name: info.Name, State: EnabledLatest}
			byName[info.Name] = mod
			order = append(order, info.Name)
		}
		mod.Releases = append(mod.Releases, release)
	}

	mods := make([]*Mod, 0, len(byName))
	for _, name := range order {
		mod := byName[name]
		if err := mod.SelectRelease(); err != nil {
			return nil, err
		}
		mods = append(mods, mod)
	}
	return mods, nil
}
