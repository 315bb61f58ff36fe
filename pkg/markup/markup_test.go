package markup

import (
	"reflect"
	"testing"

	"github.com/go-weft/weft/pkg/core"
	weferr "github.com/go-weft/weft/pkg/errors"
)

func TestConvertString(t *testing.T) {
	cases := []struct {
		in   string
		want any
	}{
		{"hello", "hello"},
		{":align-left", core.Symbol("align-left")},
		{"::align-left", ":align-left"},
		{":", ":"},
		{"16dp", core.Dimension{Value: 16, Unit: core.UnitDp}},
		{"9.5sp", core.Dimension{Value: 9.5, Unit: core.UnitSp}},
		{"-4px", core.Dimension{Value: -4, Unit: core.UnitPx}},
		{"16em", "16em"},
		{"dp", "dp"},
	}
	for _, tc := range cases {
		if got := convertString(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("convertString(%q) = %#v, want %#v", tc.in, got, tc.want)
		}
	}
}

const yamlDoc = `
widget: panel
attrs:
  orientation: ":vertical"
  padding: 16dp
children:
  - widget: label
    attrs:
      text: hello
      text-align: ":align-left"
  - ~
  - widget: button
    attrs: {text: OK, text-size: 9.5sp}
`

func TestParseYAML(t *testing.T) {
	root, err := ParseYAML([]byte(yamlDoc))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	checkPanelTree(t, root, true)
}

func TestParseYAML_MissingKeyword(t *testing.T) {
	_, err := ParseYAML([]byte("attrs: {text: x}"))
	if weferr.KindOf(err) != weferr.KindMalformedNode {
		t.Errorf("expected MalformedNode, got %v", err)
	}
}

const hclDoc = `
widget "panel" {
  orientation = ":vertical"
  padding     = "16dp"

  widget "label" {
    text       = "hello"
    text-align = ":align-left"
  }
  widget "button" {
    text      = "OK"
    text-size = "9.5sp"
  }
}
`

func TestParseHCL(t *testing.T) {
	root, err := ParseHCL([]byte(hclDoc), "screen.hcl")
	if err != nil {
		t.Fatalf("ParseHCL: %v", err)
	}
	checkPanelTree(t, root, false)
}

func TestParseHCL_Malformed(t *testing.T) {
	cases := map[string]string{
		"syntax error":    `widget "panel" {`,
		"two roots":       `widget "a" {}` + "\n" + `widget "b" {}`,
		"foreign block":   `screen "a" {}`,
		"unlabeled block": `widget {}`,
	}
	for name, src := range cases {
		if _, err := ParseHCL([]byte(src), name); weferr.KindOf(err) != weferr.KindMalformedNode {
			t.Errorf("%s: expected MalformedNode, got %v", name, err)
		}
	}
}

// checkPanelTree verifies the panel/label/button screen both syntaxes
// describe. YAML documents can carry nil child slots; HCL cannot.
func checkPanelTree(t *testing.T, root *core.Node, withNil bool) {
	t.Helper()
	if root.Keyword != "panel" {
		t.Fatalf("root keyword = %q", root.Keyword)
	}
	if got := root.Attributes["orientation"]; got != core.Symbol("vertical") {
		t.Errorf("orientation = %#v", got)
	}
	if got := root.Attributes["padding"]; got != core.Dp(16) {
		t.Errorf("padding = %#v", got)
	}

	wantLen := 2
	if withNil {
		wantLen = 3
		if root.Children[1] != nil {
			t.Errorf("nil child slot not preserved: %#v", root.Children[1])
		}
	}
	if len(root.Children) != wantLen {
		t.Fatalf("len(children) = %d, want %d", len(root.Children), wantLen)
	}

	kids := root.ChildNodes()
	if len(kids) != 2 {
		t.Fatalf("len(child nodes) = %d", len(kids))
	}
	label, button := kids[0], kids[1]
	if label.Keyword != "label" || label.Attributes["text"] != "hello" {
		t.Errorf("first child = %+v", label)
	}
	if got := label.Attributes["text-align"]; got != core.Symbol("align-left") {
		t.Errorf("text-align = %#v", got)
	}
	if button.Keyword != "button" || button.Attributes["text"] != "OK" {
		t.Errorf("second child = %+v", button)
	}
	if got := button.Attributes["text-size"]; got != (core.Dimension{Value: 9.5, Unit: core.UnitSp}) {
		t.Errorf("text-size = %#v", got)
	}
}
