package proto

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/datastage/internal/datatable"
	"github.com/vk/datastage/internal/decode"
)

// Sprite is a named image region. Dimensions come from either a square
// "size" or explicit width/height; width and height default to size, so a
// sprite may declare any mix of the three.
type Sprite struct {
	header
	Filename string
	Width    int64
	Height   int64
	Tint     *Color
	Shift    *Vector
}

func (*Sprite) Kind() datatable.Kind { return KindSprite }

func decodeSprite(name string, v cty.Value, tbl *datatable.Table) error {
	o, err := decode.AsObject(v, tbl)
	if err != nil {
		return err
	}
	s := &Sprite{header: header{name: name}}

	// size is decoded first so the width/height defaults can see it.
	size, err := decode.AttrOr(o, "size", decode.Int64, 0)
	if err != nil {
		return err
	}
	if s.Width, err = decode.AttrOrElse(o, "width", decode.Int64, func() int64 { return size }); err != nil {
		return err
	}
	if s.Height, err = decode.AttrOrElse(o, "height", decode.Int64, func() int64 { return size }); err != nil {
		return err
	}
	if s.Width <= 0 || s.Height <= 0 {
		return decode.Constraintf("sprite %q: needs size, or width and height", s.Name())
	}

	// The image claim uses the converted dimensions, not the raw input.
	if s.Filename, err = decode.Attr(o, "filename", decode.ImagePath(int(s.Width), int(s.Height))); err != nil {
		return err
	}
	if s.Tint, err = decode.AttrOpt(o, "tint", DecodeColor); err != nil {
		return err
	}
	if s.Shift, err = decode.AttrOpt(o, "shift", DecodeVector); err != nil {
		return err
	}
	tbl.Extend(s)
	return nil
}
