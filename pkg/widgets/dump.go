package widgets

import (
	"fmt"
	"strings"
)

// Dump renders a built widget tree as an indented outline, one widget per
// line, for demos and golden tests.
func Dump(root any) string {
	var b strings.Builder
	dumpInto(&b, root, 0)
	return b.String()
}

func dumpInto(b *strings.Builder, w any, depth int) {
	indent := strings.Repeat("  ", depth)
	b.WriteString(indent)
	b.WriteString(describe(w))
	b.WriteByte('\n')
	if p, ok := w.(*Panel); ok {
		for _, kid := range p.Kids {
			dumpInto(b, kid, depth+1)
		}
	}
}

func describe(w any) string {
	switch v := w.(type) {
	case *Panel:
		axis := "horizontal"
		if v.Orientation == Vertical {
			axis = "vertical"
		}
		return fmt.Sprintf("panel[%s] padding=%v children=%d", axis, v.Padding, len(v.Kids))
	case *Button:
		return fmt.Sprintf("button %q", v.Text)
	case *Label:
		return fmt.Sprintf("label %q size=%d align=%d", v.Text, v.TextSize, v.TextAlign)
	case *Field:
		return fmt.Sprintf("field %q hint=%q", v.Text, v.Hint)
	case *Checkbox:
		return fmt.Sprintf("checkbox checked=%v", v.Checked)
	default:
		return fmt.Sprintf("%T", w)
	}
}
