package proto

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/datastage/internal/datatable"
	"github.com/vk/datastage/internal/decode"
)

// SoundPrototype is a named, reusable sound.
type SoundPrototype struct {
	header
	Sound Sound
}

func (*SoundPrototype) Kind() datatable.Kind { return KindSound }

func decodeSoundPrototype(name string, v cty.Value, tbl *datatable.Table) error {
	o, err := decode.AsObject(v, tbl)
	if err != nil {
		return err
	}
	s := &SoundPrototype{header: header{name: name}}
	if s.Sound, err = decode.Attr(o, "sound", DecodeSound); err != nil {
		return err
	}
	tbl.Extend(s)
	return nil
}

// AmbientSound is one soundtrack entry.
type AmbientSound struct {
	header
	Sound     Sound
	TrackType TrackType
	Weight    float64
}

func (*AmbientSound) Kind() datatable.Kind { return KindAmbientSound }

func decodeAmbientSound(name string, v cty.Value, tbl *datatable.Table) error {
	o, err := decode.AsObject(v, tbl)
	if err != nil {
		return err
	}
	s := &AmbientSound{header: header{name: name}}
	if s.Sound, err = decode.Attr(o, "sound", DecodeSound); err != nil {
		return err
	}
	if s.TrackType, err = decode.Attr(o, "track_type", decode.FromString(ParseTrackType)); err != nil {
		return err
	}
	if s.Weight, err = decode.AttrOr(o, "weight", decode.Float64, 1.0); err != nil {
		return err
	}
	tbl.Extend(s)
	return nil
}
