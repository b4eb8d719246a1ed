package datatable

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterResource(t *testing.T) {
	t.Parallel()

	tbl := New()
	tbl.RegisterResource("sound/hiss.ogg", AudioShape())
	tbl.RegisterResource("icons/iron.png", ImageShape(64, 64))
	tbl.RegisterResource("icons/iron.png", ImageShape(32, 32)) // duplicate path, kept

	records := tbl.Resources()
	require.Len(t, records, 3)
	assert.Equal(t, ResourceRecord{Path: "sound/hiss.ogg", Shape: AudioShape()}, records[0])
	assert.Equal(t, ResourceRecord{Path: "icons/iron.png", Shape: ImageShape(64, 64)}, records[1])
	assert.Equal(t, ResourceRecord{Path: "icons/iron.png", Shape: ImageShape(32, 32)}, records[2])
}

func TestValidateResources(t *testing.T) {
	t.Parallel()

	tbl := New()
	tbl.RegisterResource("a.png", ImageShape(8, 8))
	tbl.RegisterResource("b.ogg", AudioShape())

	var seen []string
	ok := ResourceValidatorFunc(func(records []ResourceRecord) error {
		for _, r := range records {
			seen = append(seen, r.Path)
		}
		return nil
	})
	require.NoError(t, tbl.ValidateResources(ok))
	assert.Equal(t, []string{"a.png", "b.ogg"}, seen, "claims arrive in filing order")

	boom := errors.New("boom")
	bad := ResourceValidatorFunc(func([]ResourceRecord) error { return boom })
	assert.ErrorIs(t, tbl.ValidateResources(bad), boom)
}

func TestShapeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "audio", AudioShape().String())
	assert.Equal(t, "image >= 64x32", ImageShape(64, 32).String())
}
