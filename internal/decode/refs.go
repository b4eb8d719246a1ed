package decode

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/datastage/internal/datatable"
)

// Reference decodes a reference-shaped field: a record name pointing at a
// record of kind T that may not have been registered yet. The reference is
// issued through the table so the final validation pass can confirm it
// resolves.
func Reference[T datatable.Registrable](v cty.Value, tbl *datatable.Table) (*datatable.Ref[T], error) {
	name, err := String(v, tbl)
	if err != nil {
		return nil, err
	}
	return datatable.NewReference[T](tbl, name), nil
}

// ImagePath decodes a resource-shaped field naming an image asset of at
// least w by h pixels, filing the claim with the table as a side effect.
func ImagePath(w, h int) Func[string] {
	return func(v cty.Value, tbl *datatable.Table) (string, error) {
		path, err := String(v, tbl)
		if err != nil {
			return "", err
		}
		tbl.RegisterResource(path, datatable.ImageShape(w, h))
		return path, nil
	}
}

// AudioPath decodes a resource-shaped field naming an audio asset, filing
// the claim with the table as a side effect.
func AudioPath(v cty.Value, tbl *datatable.Table) (string, error) {
	path, err := String(v, tbl)
	if err != nil {
		return "", err
	}
	tbl.RegisterResource(path, datatable.AudioShape())
	return path, nil
}
