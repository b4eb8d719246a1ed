// Package source evaluates mod data files into raw record values.
//
// Data files are HCL: a sequence of `record "<kind>" "<name>" { ... }`
// blocks whose attributes evaluate, with nothing in scope, to the untyped
// tree-shaped values the conversion protocol consumes. This package is the
// reference implementation of the scripting-runtime boundary; the loader
// only ever sees evaluated values, never source text.
package source

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/datastage/internal/datatable"
)

// Raw is one evaluated record: a kind label, a name and the record's value
// tree.
type Raw struct {
	Kind  datatable.Kind
	Name  string
	Value cty.Value
}

var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "record", LabelNames: []string{"kind", "name"}},
	},
}

// EvalBytes evaluates one data file given as bytes. The filename is used in
// diagnostics only.
func EvalBytes(src []byte, filename string) ([]Raw, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %w", filename, diags)
	}

	content, diags := file.Body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("read %s: %w", filename, diags)
	}

	records := make([]Raw, 0, len(content.Blocks))
	for _, block := range content.Blocks {
		value, err := evalBlock(block)
		if err != nil {
			return nil, err
		}
		records = append(records, Raw{
			Kind:  datatable.Kind(block.Labels[0]),
			Name:  block.Labels[1],
			Value: value,
		})
	}
	return records, nil
}

// evalBlock evaluates every attribute of a record block into one object
// value. Expressions see an empty scope: data files describe values, they
// do not compute.
func evalBlock(block *hcl.Block) (cty.Value, error) {
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("record %q %q: %w", block.Labels[0], block.Labels[1], diags)
	}

	values := make(map[string]cty.Value, len(attrs))
	for name, attr := range attrs {
		v, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return cty.NilVal, fmt.Errorf("record %q %q, attribute %q: %w",
				block.Labels[0], block.Labels[1], name, diags)
		}
		values[name] = v
	}
	if len(values) == 0 {
		return cty.EmptyObjectVal, nil
	}
	return cty.ObjectVal(values), nil
}
