package markup

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/go-weft/weft/pkg/core"
	weferr "github.com/go-weft/weft/pkg/errors"
)

// ParseHCL parses an HCL document into a description tree. Elements are
// labeled widget blocks, attributes are block arguments, and children are
// nested widget blocks in declaration order:
//
//	widget "panel" {
//	  orientation = ":vertical"
//	  padding     = "16dp"
//
//	  widget "label" { text = "hello" }
//	  widget "button" { text = "OK" }
//	}
//
// The document must hold exactly one top-level widget block. filename is
// used in diagnostics only.
func ParseHCL(src []byte, filename string) (*core.Node, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, weferr.Wrap("markup.ParseHCL", weferr.KindMalformedNode, diags)
	}
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, weferr.New("markup.ParseHCL", weferr.KindMalformedNode,
			"%s: not a native HCL syntax body", filename)
	}

	roots, err := widgetBlocks(body)
	if err != nil {
		return nil, err
	}
	if len(roots) != 1 {
		return nil, weferr.New("markup.ParseHCL", weferr.KindMalformedNode,
			"%s: expected exactly one top-level widget block, found %d", filename, len(roots))
	}
	return hclToNode(roots[0])
}

// widgetBlocks collects a body's widget blocks in declaration order,
// validating the single-label shape.
func widgetBlocks(body *hclsyntax.Body) ([]*hclsyntax.Block, error) {
	var out []*hclsyntax.Block
	for _, block := range body.Blocks {
		if block.Type != "widget" {
			return nil, weferr.New("markup.ParseHCL", weferr.KindMalformedNode,
				"unsupported block %q at %s", block.Type, block.TypeRange.String())
		}
		if len(block.Labels) != 1 || block.Labels[0] == "" {
			return nil, weferr.New("markup.ParseHCL", weferr.KindMalformedNode,
				"widget block at %s needs exactly one keyword label", block.TypeRange.String())
		}
		out = append(out, block)
	}
	return out, nil
}

// hclToNode converts one widget block and its nested blocks.
func hclToNode(block *hclsyntax.Block) (*core.Node, error) {
	attrs := make(core.Attributes, len(block.Body.Attributes))
	for name, attr := range block.Body.Attributes {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, weferr.Wrap("markup.ParseHCL", weferr.KindMalformedNode, diags)
		}
		goVal, err := ctyToGo(val)
		if err != nil {
			return nil, weferr.New("markup.ParseHCL", weferr.KindBadValue,
				"attribute %s at %s: %v", name, attr.SrcRange.String(), err)
		}
		attrs[name] = goVal
	}

	node := core.NewNode(block.Labels[0], attrs)
	children, err := widgetBlocks(block.Body)
	if err != nil {
		return nil, err
	}
	for _, child := range children {
		cn, err := hclToNode(child)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, cn)
	}
	return node, nil
}

// ctyToGo lowers an evaluated cty value to the raw Go shapes the scalar
// conventions operate on. Strings pass through convertString, so symbol
// and dimension spellings work the same as in YAML documents.
func ctyToGo(val cty.Value) (any, error) {
	if val.IsNull() {
		return nil, nil
	}
	ty := val.Type()
	switch {
	case ty == cty.String:
		return convertString(val.AsString()), nil
	case ty == cty.Bool:
		return val.True(), nil
	case ty == cty.Number:
		bf := val.AsBigFloat()
		if n, acc := bf.Int64(); acc == 0 {
			return int(n), nil
		}
		f, _ := bf.Float64()
		return f, nil
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		out := make([]any, 0, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			gv, err := ctyToGo(ev)
			if err != nil {
				return nil, err
			}
			out = append(out, gv)
		}
		return out, nil
	case ty.IsObjectType() || ty.IsMapType():
		out := make(core.Attributes, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			kv, ev := it.Element()
			gv, err := ctyToGo(ev)
			if err != nil {
				return nil, err
			}
			out[kv.AsString()] = gv
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported value type %s", ty.FriendlyName())
	}
}
