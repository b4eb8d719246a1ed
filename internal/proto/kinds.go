package proto

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/datastage/internal/datatable"
)

// Record kind tags. KindSetting is abstract: its category holds AnySetting
// views projected from the four concrete setting kinds.
const (
	KindBoolSetting   datatable.Kind = "bool-setting"
	KindIntSetting    datatable.Kind = "int-setting"
	KindDoubleSetting datatable.Kind = "double-setting"
	KindStringSetting datatable.Kind = "string-setting"
	KindSetting       datatable.Kind = "setting"
	KindSound         datatable.Kind = "sound"
	KindAmbientSound  datatable.Kind = "ambient-sound"
	KindSprite        datatable.Kind = "sprite"
	KindTipsItem      datatable.Kind = "tips-and-tricks-item"
)

// header carries the one field every record shares.
type header struct {
	name string
}

// Name returns the record's name, unique within its kind.
func (h header) Name() string { return h.name }

// RecordDecoder converts one raw record value and registers the result.
type RecordDecoder func(name string, v cty.Value, tbl *datatable.Table) error

// Decoders maps every known kind to its record decoder. The loader indexes
// this by the kind label of each evaluated data block.
func Decoders() map[datatable.Kind]RecordDecoder {
	return map[datatable.Kind]RecordDecoder{
		KindBoolSetting:   decodeBoolSetting,
		KindIntSetting:    decodeIntSetting,
		KindDoubleSetting: decodeDoubleSetting,
		KindStringSetting: decodeStringSetting,
		KindSound:         decodeSoundPrototype,
		KindAmbientSound:  decodeAmbientSound,
		KindSprite:        decodeSprite,
		KindTipsItem:      decodeTipsItem,
	}
}
