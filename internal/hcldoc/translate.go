package hcldoc

import (
	"errors"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"

	"github.com/mjcad/mjcad/internal/document"
)

// bodyAttrs evaluates every attribute of a remain body into document values,
// restoring declaration order. JustAttributes hands the set back as a map,
// so the source byte offsets are the only record of where each one appeared.
func bodyAttrs(body hcl.Body) ([]document.Attr, error) {
	if body == nil {
		return nil, nil
	}
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("reading attributes: %w", diags)
	}

	ordered := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		ordered = append(ordered, attr)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Range.Start.Byte < ordered[j].Range.Start.Byte
	})

	out := make([]document.Attr, 0, len(ordered))
	for _, attr := range ordered {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("evaluating attribute %q: %w", attr.Name, diags)
		}
		converted, err := fromCty(val)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", attr.Name, err)
		}
		out = append(out, document.Attr{Key: attr.Name, Value: converted})
	}
	return out, nil
}

// fromCty maps an evaluated HCL value onto the document value union.
// Strings and numbers become scalars, sequences become numeric vectors.
func fromCty(v cty.Value) (document.Value, error) {
	if v.IsNull() {
		return document.Value{}, errors.New("null value")
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return document.String(v.AsString()), nil
	case ty == cty.Number:
		f, _ := v.AsBigFloat().Float64()
		return document.Number(f), nil
	case ty == cty.Bool:
		return document.Bool(v.True()), nil
	case ty.IsTupleType() || ty.IsListType():
		var components []float64
		for it := v.ElementIterator(); it.Next(); {
			_, element := it.Element()
			if element.IsNull() || element.Type() != cty.Number {
				return document.Value{}, fmt.Errorf("vector elements must be numbers, got %s", element.Type().FriendlyName())
			}
			f, _ := element.AsBigFloat().Float64()
			components = append(components, f)
		}
		return document.Vector(components), nil
	default:
		return document.Value{}, fmt.Errorf("unsupported value type %s", ty.FriendlyName())
	}
}
