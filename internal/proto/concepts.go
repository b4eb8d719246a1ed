package proto

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/datastage/internal/datatable"
	"github.com/vk/datastage/internal/decode"
)

// Color is an RGBA color. Input is either a table with r/g/b/a components
// (missing components are 0, alpha 1) or a 3- or 4-element tuple.
type Color struct {
	R, G, B, A float64
}

// DecodeColor is the decode.Func for Color.
func DecodeColor(v cty.Value, tbl *datatable.Table) (Color, error) {
	if v != cty.NilVal && !v.IsNull() && (v.Type().IsTupleType() || v.Type().IsListType()) {
		parts, err := decode.Slice(decode.Float64)(v, tbl)
		if err != nil {
			return Color{}, err
		}
		switch len(parts) {
		case 3:
			return Color{R: parts[0], G: parts[1], B: parts[2], A: 1}, nil
		case 4:
			return Color{R: parts[0], G: parts[1], B: parts[2], A: parts[3]}, nil
		}
		return Color{}, &decode.ArityError{Want: 4, Got: len(parts)}
	}

	o, err := decode.AsObject(v, tbl)
	if err != nil {
		return Color{}, err
	}
	var c Color
	if c.R, err = decode.AttrOr(o, "r", decode.Float64, 0); err != nil {
		return Color{}, err
	}
	if c.G, err = decode.AttrOr(o, "g", decode.Float64, 0); err != nil {
		return Color{}, err
	}
	if c.B, err = decode.AttrOr(o, "b", decode.Float64, 0); err != nil {
		return Color{}, err
	}
	if c.A, err = decode.AttrOr(o, "a", decode.Float64, 1); err != nil {
		return Color{}, err
	}
	return c, nil
}

// Vector is a 2D offset, written as a 2-element tuple.
type Vector struct {
	X, Y float64
}

// DecodeVector is the decode.Func for Vector.
func DecodeVector(v cty.Value, tbl *datatable.Table) (Vector, error) {
	parts, err := decode.Array(2, decode.Float64)(v, tbl)
	if err != nil {
		return Vector{}, err
	}
	return Vector{X: parts[0], Y: parts[1]}, nil
}

// Sound is the reusable audio concept: a codec-compatible file plus
// playback volume. Decoding it claims the file as an audio resource.
type Sound struct {
	Filename string
	Volume   float64
}

// DecodeSound is the decode.Func for Sound.
func DecodeSound(v cty.Value, tbl *datatable.Table) (Sound, error) {
	o, err := decode.AsObject(v, tbl)
	if err != nil {
		return Sound{}, err
	}
	var s Sound
	if s.Filename, err = decode.Attr(o, "filename", decode.AudioPath); err != nil {
		return Sound{}, err
	}
	if s.Volume, err = decode.AttrOr(o, "volume", decode.Float64, 1.0); err != nil {
		return Sound{}, err
	}
	return s, nil
}

// SettingType tells which stage a mod setting belongs to.
type SettingType int

const (
	SettingStartup SettingType = iota
	SettingRuntimeGlobal
	SettingRuntimePerUser
)

// ParseSettingType parses the wire spelling of a SettingType.
func ParseSettingType(s string) (SettingType, error) {
	switch s {
	case "startup":
		return SettingStartup, nil
	case "runtime-global":
		return SettingRuntimeGlobal, nil
	case "runtime-per-user":
		return SettingRuntimePerUser, nil
	}
	return 0, fmt.Errorf("unknown setting type %q", s)
}

func (t SettingType) String() string {
	switch t {
	case SettingStartup:
		return "startup"
	case SettingRuntimeGlobal:
		return "runtime-global"
	case SettingRuntimePerUser:
		return "runtime-per-user"
	}
	return fmt.Sprintf("setting-type(%d)", int(t))
}

// TrackType classifies an ambient sound track.
type TrackType int

const (
	TrackMenu TrackType = iota
	TrackMain
	TrackInterlude
)

// ParseTrackType parses the wire spelling of a TrackType.
func ParseTrackType(s string) (TrackType, error) {
	switch s {
	case "menu-track":
		return TrackMenu, nil
	case "main-track":
		return TrackMain, nil
	case "interlude":
		return TrackInterlude, nil
	}
	return 0, fmt.Errorf("unknown track type %q", s)
}

func (t TrackType) String() string {
	switch t {
	case TrackMenu:
		return "menu-track"
	case TrackMain:
		return "main-track"
	case TrackInterlude:
		return "interlude"
	}
	return fmt.Sprintf("track-type(%d)", int(t))
}
