package modmeta

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInfo(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		payload   string
		expectErr string
	}{
		{
			name:    "full manifest",
			payload: `{"name": "angels", "version": "0.12.1", "dependencies": ["base >= 1.1.0", "? bobs"]}`,
		},
		{
			name:    "no dependencies",
			payload: `{"name": "base", "version": "1.1.0"}`,
		},
		{
			name:      "missing name",
			payload:   `{"version": "1.0.0"}`,
			expectErr: "declares no name",
		},
		{
			name:      "bad version",
			payload:   `{"name": "x", "version": "one"}`,
			expectErr: `version "one"`,
		},
		{
			name:      "bad dependency",
			payload:   `{"name": "x", "version": "1.0.0", "dependencies": ["!!bad"]}`,
			expectErr: "unknown dependency modifier",
		},
		{
			name:      "not json",
			payload:   `{`,
			expectErr: "decode info.json",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			info, version, deps, err := ParseInfo([]byte(tc.payload))
			if tc.expectErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, info.Name)
			assert.NotNil(t, version)
			assert.Len(t, deps, len(info.Dependencies))
		})
	}
}

func TestLoadModList(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	t.Run("missing file is not an error", func(t *testing.T) {
		t.Parallel()
		list, err := LoadModList(filepath.Join(dir, "absent", "mod-list.json"))
		require.NoError(t, err)
		assert.Nil(t, list)
	})

	t.Run("well-formed list", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(dir, "mod-list.json")
		payload := `{"mods": [{"name": "base", "enabled": true}, {"name": "angels", "enabled": false}]}`
		require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

		list, err := LoadModList(path)
		require.NoError(t, err)
		require.NotNil(t, list)
		require.Len(t, list.Mods, 2)
		assert.Equal(t, ModListEntry{Name: "base", Enabled: true}, list.Mods[0])
		assert.Equal(t, ModListEntry{Name: "angels", Enabled: false}, list.Mods[1])
	})

	t.Run("malformed list", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(dir, "broken.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

		_, err := LoadModList(path)
		require.Error(t, err)
	})
}

func TestApplyModList(t *testing.T) {
	t.Parallel()

	release := func(version string) *Release {
		return &Release{Version: semver.MustParse(version), Structure: StructureDirectory}
	}
	mods := []*Mod{
		{Name: "base", State: EnabledLatest, Releases: []*Release{release("1.1.0")}},
		{Name: "angels", State: EnabledLatest, Releases: []*Release{release("0.12.0")}},
		{Name: "bobs", State: EnabledLatest, Releases: []*Release{release("1.0.0")}},
	}
	list := &ModListJSON{Mods: []ModListEntry{
		{Name: "angels", Enabled: false},
		{Name: "ghost", Enabled: true}, // not installed, ignored
	}}

	require.NoError(t, ApplyModList(mods, list))

	assert.True(t, mods[0].Enabled())
	assert.False(t, mods[1].Enabled())
	assert.True(t, mods[2].Enabled(), "mods absent from the list keep their default state")
}

func TestApplyModList_PinnedVersion(t *testing.T) {
	t.Parallel()

	release := func(version string) *Release {
		return &Release{Version: semver.MustParse(version), Structure: StructureDirectory}
	}
	mod := &Mod{
		Name:     "base",
		State:    EnabledLatest,
		Releases: []*Release{release("1.0.0"), release("1.1.0")},
	}
	require.NoError(t, mod.SelectRelease())
	require.Equal(t, "1.1.0", mod.Release.Version.String())

	t.Run("pin an installed release", func(t *testing.T) {
		list := &ModListJSON{Mods: []ModListEntry{
			{Name: "base", Enabled: true, Version: "1.0.0"},
		}}
		require.NoError(t, ApplyModList([]*Mod{mod}, list))
		assert.Equal(t, EnabledPinned, mod.State)
		assert.Equal(t, "1.0.0", mod.Release.Version.String())
	})

	t.Run("pin a release that is not installed", func(t *testing.T) {
		list := &ModListJSON{Mods: []ModListEntry{
			{Name: "base", Enabled: true, Version: "2.0.0"},
		}}
		err := ApplyModList([]*Mod{mod}, list)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "pinned version 2.0.0 is not installed")
	})

	t.Run("re-enabling without a version selects the newest again", func(t *testing.T) {
		list := &ModListJSON{Mods: []ModListEntry{
			{Name: "base", Enabled: true},
		}}
		require.NoError(t, ApplyModList([]*Mod{mod}, list))
		assert.Equal(t, EnabledLatest, mod.State)
		assert.Equal(t, "1.1.0", mod.Release.Version.String())
	})
}

func TestScanDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeDirMod(t, dir, "base", map[string]string{
		"info.json": `{"name": "base", "version": "1.1.0"}`,
	})
	// Two releases of angels: the zip is newer and must win.
	writeDirMod(t, dir, "angels-old", map[string]string{
		"info.json": `{"name": "angels", "version": "0.11.0", "dependencies": ["base"]}`,
	})
	writeZipMod(t, dir, "angels_0.12.0", map[string]string{
		"info.json": `{"name": "angels", "version": "0.12.0", "dependencies": ["base"]}`,
	})
	// Non-mod entry, ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mod-list.json"), []byte("{}"), 0o600))

	mods, err := ScanDir(dir)
	require.NoError(t, err)
	require.Len(t, mods, 2)

	byName := map[string]*Mod{}
	for _, m := range mods {
		byName[m.Name] = m
		assert.True(t, m.Enabled(), "discovered mods default to enabled")
	}
	require.Contains(t, byName, "base")
	require.Contains(t, byName, "angels")
	assert.Equal(t, "0.12.0", byName["angels"].Release.Version.String())
	assert.Equal(t, StructureZip, byName["angels"].Release.Structure)
}

func TestScanDir_BadManifestFails(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeDirMod(t, dir, "broken", map[string]string{
		"info.json": `{"version": "1.0.0"}`,
	})

	_, err := ScanDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "declares no name")
}
