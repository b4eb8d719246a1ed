package proto

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/datastage/internal/datatable"
	"github.com/vk/datastage/internal/decode"
)

// settingCommon holds the fields shared by every concrete setting kind.
type settingCommon struct {
	header
	LocalisedName        *string
	LocalisedDescription *string
	Order                *string
	Hidden               bool
	SettingType          SettingType
}

func decodeSettingCommon(o *decode.Object, name string) (settingCommon, error) {
	c := settingCommon{header: header{name: name}}
	var err error
	if c.LocalisedName, err = decode.AttrOpt(o, "localised_name", decode.String); err != nil {
		return c, err
	}
	if c.LocalisedDescription, err = decode.AttrOpt(o, "localised_description", decode.String); err != nil {
		return c, err
	}
	if c.Order, err = decode.AttrOpt(o, "order", decode.String); err != nil {
		return c, err
	}
	if c.Hidden, err = decode.AttrOr(o, "hidden", decode.Bool, false); err != nil {
		return c, err
	}
	if c.SettingType, err = decode.Attr(o, "setting_type", decode.FromString(ParseSettingType)); err != nil {
		return c, err
	}
	return c, nil
}

// view projects the consolidated common view stored under the abstract
// setting kind.
func (c settingCommon) view(concrete datatable.Kind) *AnySetting {
	return &AnySetting{
		header:      c.header,
		Concrete:    concrete,
		SettingType: c.SettingType,
		Hidden:      c.Hidden,
	}
}

// AnySetting is the consolidated view of the abstract "setting" kind: the
// fields common to every concrete setting, plus a tag naming the concrete
// kind it was projected from. It is never registered directly.
type AnySetting struct {
	header
	Concrete    datatable.Kind
	SettingType SettingType
	Hidden      bool
}

func (*AnySetting) Kind() datatable.Kind { return KindSetting }

// AbstractRecord marks AnySetting as a projected view.
func (*AnySetting) AbstractRecord() {}

// BoolSetting is a startup or runtime toggle.
type BoolSetting struct {
	settingCommon
	DefaultValue bool
	ForcedValue  *bool
}

func (*BoolSetting) Kind() datatable.Kind { return KindBoolSetting }

func (s *BoolSetting) Projections() []datatable.View {
	return []datatable.View{s.view(KindBoolSetting)}
}

func decodeBoolSetting(name string, v cty.Value, tbl *datatable.Table) error {
	o, err := decode.AsObject(v, tbl)
	if err != nil {
		return err
	}
	common, err := decodeSettingCommon(o, name)
	if err != nil {
		return err
	}
	s := &BoolSetting{settingCommon: common}
	if s.DefaultValue, err = decode.Attr(o, "default_value", decode.Bool); err != nil {
		return err
	}
	if s.ForcedValue, err = decode.AttrOpt(o, "forced_value", decode.Bool); err != nil {
		return err
	}
	if err := decode.MandatoryIf(s.Hidden, "forced_value", s.ForcedValue != nil, "the setting is hidden"); err != nil {
		return err
	}
	tbl.Extend(s)
	return nil
}

// IntSetting is an integer-valued setting with optional bounds.
type IntSetting struct {
	settingCommon
	DefaultValue  int64
	MinimumValue  *int64
	MaximumValue  *int64
	AllowedValues []int64
}

func (*IntSetting) Kind() datatable.Kind { return KindIntSetting }

func (s *IntSetting) Projections() []datatable.View {
	return []datatable.View{s.view(KindIntSetting)}
}

func decodeIntSetting(name string, v cty.Value, tbl *datatable.Table) error {
	o, err := decode.AsObject(v, tbl)
	if err != nil {
		return err
	}
	common, err := decodeSettingCommon(o, name)
	if err != nil {
		return err
	}
	s := &IntSetting{settingCommon: common}
	if s.DefaultValue, err = decode.Attr(o, "default_value", decode.Int64); err != nil {
		return err
	}
	if s.MinimumValue, err = decode.AttrOpt(o, "minimum_value", decode.Int64); err != nil {
		return err
	}
	if s.MaximumValue, err = decode.AttrOpt(o, "maximum_value", decode.Int64); err != nil {
		return err
	}
	if s.AllowedValues, err = decode.AttrOr(o, "allowed_values", decode.Slice(decode.Int64), nil); err != nil {
		return err
	}
	if err := s.check(); err != nil {
		return err
	}
	tbl.Extend(s)
	return nil
}

// check is the post-decode hook: it sees the fully constructed record.
func (s *IntSetting) check() error {
	if s.MinimumValue != nil && s.MaximumValue != nil && *s.MinimumValue > *s.MaximumValue {
		return decode.Constraintf("setting %q: minimum_value %d exceeds maximum_value %d", s.Name(), *s.MinimumValue, *s.MaximumValue)
	}
	if s.MinimumValue != nil && s.DefaultValue < *s.MinimumValue {
		return decode.Constraintf("setting %q: default_value %d below minimum_value %d", s.Name(), s.DefaultValue, *s.MinimumValue)
	}
	if s.MaximumValue != nil && s.DefaultValue > *s.MaximumValue {
		return decode.Constraintf("setting %q: default_value %d above maximum_value %d", s.Name(), s.DefaultValue, *s.MaximumValue)
	}
	return nil
}

// DoubleSetting is a float-valued setting with optional bounds.
type DoubleSetting struct {
	settingCommon
	DefaultValue  float64
	MinimumValue  *float64
	MaximumValue  *float64
	AllowedValues []float64
}

func (*DoubleSetting) Kind() datatable.Kind { return KindDoubleSetting }

func (s *DoubleSetting) Projections() []datatable.View {
	return []datatable.View{s.view(KindDoubleSetting)}
}

func decodeDoubleSetting(name string, v cty.Value, tbl *datatable.Table) error {
	o, err := decode.AsObject(v, tbl)
	if err != nil {
		return err
	}
	common, err := decodeSettingCommon(o, name)
	if err != nil {
		return err
	}
	s := &DoubleSetting{settingCommon: common}
	if s.DefaultValue, err = decode.Attr(o, "default_value", decode.Float64); err != nil {
		return err
	}
	if s.MinimumValue, err = decode.AttrOpt(o, "minimum_value", decode.Float64); err != nil {
		return err
	}
	if s.MaximumValue, err = decode.AttrOpt(o, "maximum_value", decode.Float64); err != nil {
		return err
	}
	if s.AllowedValues, err = decode.AttrOr(o, "allowed_values", decode.Slice(decode.Float64), nil); err != nil {
		return err
	}
	if s.MinimumValue != nil && s.MaximumValue != nil && *s.MinimumValue > *s.MaximumValue {
		return decode.Constraintf("setting %q: minimum_value exceeds maximum_value", s.Name())
	}
	tbl.Extend(s)
	return nil
}

// StringSetting is a text-valued setting.
type StringSetting struct {
	settingCommon
	DefaultValue  string
	AllowBlank    bool
	AutoTrim      bool
	AllowedValues []string
}

func (*StringSetting) Kind() datatable.Kind { return KindStringSetting }

func (s *StringSetting) Projections() []datatable.View {
	return []datatable.View{s.view(KindStringSetting)}
}

func decodeStringSetting(name string, v cty.Value, tbl *datatable.Table) error {
	o, err := decode.AsObject(v, tbl)
	if err != nil {
		return err
	}
	common, err := decodeSettingCommon(o, name)
	if err != nil {
		return err
	}
	s := &StringSetting{settingCommon: common}
	if s.DefaultValue, err = decode.Attr(o, "default_value", decode.String); err != nil {
		return err
	}
	if s.AllowBlank, err = decode.AttrOr(o, "allow_blank", decode.Bool, false); err != nil {
		return err
	}
	if s.AutoTrim, err = decode.AttrOr(o, "auto_trim", decode.Bool, false); err != nil {
		return err
	}
	if s.AllowedValues, err = decode.AttrOr(o, "allowed_values", decode.Slice(decode.String), nil); err != nil {
		return err
	}
	if !s.AllowBlank && s.DefaultValue == "" {
		return decode.Constraintf("setting %q: blank default_value requires allow_blank", s.Name())
	}
	tbl.Extend(s)
	return nil
}
