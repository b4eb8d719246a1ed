// Package decode implements the generic conversion protocol: turning the
// untyped, tree-shaped values produced at the scripting boundary
// (represented as cty.Value) into typed record fields, while threading a
// mutable handle to the load session's data table.
//
// The protocol is the Func type. Scalars get one Func each; optional values,
// sequences, mappings and fixed-size arrays are generic combinators over an
// element Func. Record kinds build their own decoders out of these plus the
// Object attribute helpers, which cover conditional defaults (including
// defaults computed from sibling fields decoded earlier), mandatory-if
// constraints and post-decode validation.
//
// Decoding a reference-shaped or resource-shaped field has a side effect on
// the table: a named reference is issued, or a resource claim filed. These
// side effects are not rolled back if a later sibling field fails; an
// aborted record conversion may leave claims behind.
package decode
