package modmeta

import (
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testMod builds a mod with the given dependency declarations.
func testMod(t *testing.T, name string, deps ...string) *Mod {
	t.Helper()
	parsed, err := ParseDependencies(deps)
	require.NoError(t, err)
	return &Mod{
		Name:  name,
		State: EnabledLatest,
		Release: &Release{
			Version:      semver.MustParse("1.0.0"),
			Dependencies: parsed,
		},
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		a, b      *Mod
		expectOrd int
		expectOK  bool
	}{
		{
			name:      "dependent loads after its target",
			a:         testMod(t, "angels", "base"),
			b:         testMod(t, "base"),
			expectOrd: 1,
			expectOK:  true,
		},
		{
			name:      "target loads before its dependent",
			a:         testMod(t, "base"),
			b:         testMod(t, "angels", "base"),
			expectOrd: -1,
			expectOK:  true,
		},
		{
			name:      "optional dependency still orders",
			a:         testMod(t, "angels", "? base"),
			b:         testMod(t, "base"),
			expectOrd: 1,
			expectOK:  true,
		},
		{
			name:      "hidden optional dependency still orders",
			a:         testMod(t, "angels", "(?) base"),
			b:         testMod(t, "base"),
			expectOrd: 1,
			expectOK:  true,
		},
		{
			name:      "no-order dependency falls back to names",
			a:         testMod(t, "angels", "~ base"),
			b:         testMod(t, "base"),
			expectOrd: -1,
			expectOK:  true,
		},
		{
			name:      "unrelated mods use natural name order",
			a:         testMod(t, "mod2"),
			b:         testMod(t, "mod10"),
			expectOrd: -1,
			expectOK:  true,
		},
		{
			name:     "same name is incomparable",
			a:        testMod(t, "base"),
			b:        testMod(t, "base"),
			expectOK: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ord, ok := Compare(tc.a, tc.b)
			require.Equal(t, tc.expectOK, ok)
			if !tc.expectOK {
				return
			}
			switch {
			case tc.expectOrd < 0:
				assert.Negative(t, ord)
			case tc.expectOrd > 0:
				assert.Positive(t, ord)
			default:
				assert.Zero(t, ord)
			}
		})
	}
}

func TestCompare_IsAntisymmetric(t *testing.T) {
	t.Parallel()

	// The dependency check runs both ways, so swapping the arguments must
	// flip the sign.
	a := testMod(t, "zz-angels", "base")
	b := testMod(t, "base")

	ab, ok := Compare(a, b)
	require.True(t, ok)
	ba, ok := Compare(b, a)
	require.True(t, ok)
	assert.Positive(t, ab)
	assert.Negative(t, ba)
}

func TestSortMods(t *testing.T) {
	t.Parallel()

	mods := []*Mod{
		testMod(t, "mod10"),
		testMod(t, "angels", "base"),
		testMod(t, "mod2"),
		testMod(t, "base"),
	}

	require.NoError(t, SortMods(mods))

	names := make([]string, len(mods))
	for i, m := range mods {
		names[i] = m.Name
	}
	assert.Equal(t, []string{"base", "angels", "mod2", "mod10"}, names)
}

func TestSortMods_DuplicateName(t *testing.T) {
	t.Parallel()

	mods := []*Mod{testMod(t, "base"), testMod(t, "base")}
	err := SortMods(mods)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate mod "base"`)
}
