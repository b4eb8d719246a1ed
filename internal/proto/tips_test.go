package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/datastage/internal/datatable"
)

func TestDecodeTipsItem(t *testing.T) {
	t.Parallel()

	t.Run("forward reference between tips", func(t *testing.T) {
		t.Parallel()
		tbl := datatable.New()

		// "advanced" references "basics" before it is registered.
		err := decodeTipsItem("advanced", cty.ObjectVal(map[string]cty.Value{
			"dependencies": cty.TupleVal([]cty.Value{cty.StringVal("basics")}),
		}), tbl)
		require.NoError(t, err)
		require.Error(t, tbl.ValidateReferences(), "the target is still missing")

		err = decodeTipsItem("basics", cty.EmptyObjectVal, tbl)
		require.NoError(t, err)
		require.NoError(t, tbl.ValidateReferences())

		advanced, err := datatable.Find[*TipsAndTricksItem](tbl, "advanced")
		require.NoError(t, err)
		require.Len(t, advanced.Dependencies, 1)
		target, err := advanced.Dependencies[0].Resolve(tbl)
		require.NoError(t, err)
		assert.Equal(t, "basics", target.Name())
	})

	t.Run("related setting resolves any concrete setting kind", func(t *testing.T) {
		t.Parallel()
		tbl := datatable.New()

		err := decodeTipsItem("research-tip", cty.ObjectVal(map[string]cty.Value{
			"related_setting": cty.StringVal("auto-research"),
		}), tbl)
		require.NoError(t, err)

		require.NoError(t, decodeBoolSetting("auto-research", cty.ObjectVal(map[string]cty.Value{
			"setting_type":  cty.StringVal("runtime-per-user"),
			"default_value": cty.True,
		}), tbl))
		require.NoError(t, tbl.ValidateReferences())

		tip, err := datatable.Find[*TipsAndTricksItem](tbl, "research-tip")
		require.NoError(t, err)
		require.NotNil(t, tip.RelatedSetting)
		view, err := tip.RelatedSetting.Resolve(tbl)
		require.NoError(t, err)
		assert.Equal(t, KindBoolSetting, view.Concrete)
	})

	t.Run("icon claims an image sized by icon_size", func(t *testing.T) {
		t.Parallel()
		tbl := datatable.New()

		err := decodeTipsItem("belt-tip", cty.ObjectVal(map[string]cty.Value{
			"icon":      cty.StringVal("icons/belt.png"),
			"icon_size": cty.NumberIntVal(32),
			"order":     cty.StringVal("a[belts]"),
		}), tbl)
		require.NoError(t, err)

		records := tbl.Resources()
		require.Len(t, records, 1)
		assert.Equal(t, datatable.ImageShape(32, 32), records[0].Shape)

		tip, err := datatable.Find[*TipsAndTricksItem](tbl, "belt-tip")
		require.NoError(t, err)
		assert.Equal(t, "a[belts]", tip.Order)
	})
}
