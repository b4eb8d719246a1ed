package proto

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/datastage/internal/datatable"
	"github.com/vk/datastage/internal/decode"
)

// TipsAndTricksItem is one entry of the in-game tips list. Its dependency
// list references other tips by name, possibly ones registered later in the
// session or by another mod; related_setting references the abstract
// setting kind, satisfied by a setting of any concrete type.
type TipsAndTricksItem struct {
	header
	Order          string
	Icon           string
	Dependencies   []*datatable.Ref[*TipsAndTricksItem]
	RelatedSetting *datatable.Ref[*AnySetting]
}

func (*TipsAndTricksItem) Kind() datatable.Kind { return KindTipsItem }

func decodeTipsItem(name string, v cty.Value, tbl *datatable.Table) error {
	o, err := decode.AsObject(v, tbl)
	if err != nil {
		return err
	}
	t := &TipsAndTricksItem{header: header{name: name}}
	if t.Order, err = decode.AttrOr(o, "order", decode.String, ""); err != nil {
		return err
	}

	iconSize, err := decode.AttrOr(o, "icon_size", decode.Int64, 64)
	if err != nil {
		return err
	}
	if t.Icon, err = decode.AttrOr(o, "icon", decode.ImagePath(int(iconSize), int(iconSize)), ""); err != nil {
		return err
	}

	deps := decode.Slice(decode.Reference[*TipsAndTricksItem])
	if t.Dependencies, err = decode.AttrOr(o, "dependencies", deps, nil); err != nil {
		return err
	}
	if t.RelatedSetting, err = decode.AttrOr(o, "related_setting", decode.Reference[*AnySetting], nil); err != nil {
		return err
	}
	tbl.Extend(t)
	return nil
}
