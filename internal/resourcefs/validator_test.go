package resourcefs

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/datastage/internal/datatable"
)

// writePNG writes a blank PNG of the given dimensions.
func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))))
}

func TestValidator(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writePNG(t, filepath.Join(root, "icons", "iron.png"), 64, 64)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sound"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sound", "hiss.ogg"), []byte("oggish"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sound", "notes.txt"), []byte("not audio"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "icons", "fake.png"), []byte("not a png"), 0o600))

	v := New(root)

	testCases := []struct {
		name      string
		record    datatable.ResourceRecord
		expectErr string
	}{
		{
			name:   "image large enough",
			record: datatable.ResourceRecord{Path: "icons/iron.png", Shape: datatable.ImageShape(64, 64)},
		},
		{
			name:   "image larger than required",
			record: datatable.ResourceRecord{Path: "icons/iron.png", Shape: datatable.ImageShape(32, 32)},
		},
		{
			name:      "image too small",
			record:    datatable.ResourceRecord{Path: "icons/iron.png", Shape: datatable.ImageShape(128, 64)},
			expectErr: "expected at least 128x64, got 64x64",
		},
		{
			name:      "image file is not a png",
			record:    datatable.ResourceRecord{Path: "icons/fake.png", Shape: datatable.ImageShape(8, 8)},
			expectErr: "not a readable image",
		},
		{
			name:   "audio with a known extension",
			record: datatable.ResourceRecord{Path: "sound/hiss.ogg", Shape: datatable.AudioShape()},
		},
		{
			name:      "audio with a foreign extension",
			record:    datatable.ResourceRecord{Path: "sound/notes.txt", Shape: datatable.AudioShape()},
			expectErr: "not an audio file",
		},
		{
			name:      "missing file",
			record:    datatable.ResourceRecord{Path: "icons/ghost.png", Shape: datatable.ImageShape(8, 8)},
			expectErr: `file not found: "icons/ghost.png"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := v.Validate([]datatable.ResourceRecord{tc.record})
			if tc.expectErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidator_StopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writePNG(t, filepath.Join(root, "ok.png"), 8, 8)

	v := New(root)
	err := v.Validate([]datatable.ResourceRecord{
		{Path: "ok.png", Shape: datatable.ImageShape(8, 8)},
		{Path: "missing.png", Shape: datatable.ImageShape(8, 8)},
		{Path: "also-missing.png", Shape: datatable.ImageShape(8, 8)},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"missing.png"`)
	assert.NotContains(t, err.Error(), "also-missing")
}
