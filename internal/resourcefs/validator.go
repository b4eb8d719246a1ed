// Package resourcefs is the filesystem implementation of the resource
// validator collaborator: it checks accumulated resource claims against
// files under a root directory. Hosts with other storage (archives, remote
// caches) supply their own validator instead.
package resourcefs

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/datastage/internal/datatable"
)

// audioExtensions lists the codec-compatible audio containers.
var audioExtensions = map[string]struct{}{
	".ogg": {},
	".wav": {},
	".voc": {},
}

// Validator checks resource claims against files under Root. Claim paths
// are slash-separated and resolved relative to Root.
type Validator struct {
	Root string
}

// New returns a Validator rooted at dir.
func New(dir string) *Validator {
	return &Validator{Root: dir}
}

// Validate checks every claim in filing order and stops at the first
// failure.
func (v *Validator) Validate(records []datatable.ResourceRecord) error {
	for _, rec := range records {
		if err := v.check(rec); err != nil {
			return err
		}
	}
	return nil
}

func (v *Validator) check(rec datatable.ResourceRecord) error {
	full := filepath.Join(v.Root, filepath.FromSlash(rec.Path))
	if _, err := os.Stat(full); err != nil {
		return fmt.Errorf("file not found: %q", rec.Path)
	}

	switch rec.Shape.Kind {
	case datatable.ShapeAudio:
		ext := strings.ToLower(filepath.Ext(rec.Path))
		if _, ok := audioExtensions[ext]; !ok {
			return fmt.Errorf("%q: not an audio file (want .ogg, .wav or .voc)", rec.Path)
		}
	case datatable.ShapeImage:
		f, err := os.Open(full)
		if err != nil {
			return fmt.Errorf("open %q: %w", rec.Path, err)
		}
		defer f.Close()
		cfg, err := png.DecodeConfig(f)
		if err != nil {
			return fmt.Errorf("%q: not a readable image: %w", rec.Path, err)
		}
		if cfg.Width < rec.Shape.MinWidth || cfg.Height < rec.Shape.MinHeight {
			return fmt.Errorf("%q: image size incorrect: expected at least %dx%d, got %dx%d",
				rec.Path, rec.Shape.MinWidth, rec.Shape.MinHeight, cfg.Width, cfg.Height)
		}
	}
	return nil
}
