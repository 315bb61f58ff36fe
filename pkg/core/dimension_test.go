package core

import "testing"

func TestParseUnit(t *testing.T) {
	cases := []struct {
		in   string
		want Unit
		ok   bool
	}{
		{"px", UnitPx, true},
		{"dp", UnitDp, true},
		{"sp", UnitSp, true},
		{"pt", UnitPt, true},
		{"in", UnitIn, true},
		{"mm", UnitMm, true},
		{"em", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseUnit(tc.in)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("ParseUnit(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestDimension_String(t *testing.T) {
	if got := Dp(16).String(); got != "16dp" {
		t.Errorf("expected 16dp, got %q", got)
	}
	if got := (Dimension{Value: 9.5, Unit: UnitSp}).String(); got != "9.5sp" {
		t.Errorf("expected 9.5sp, got %q", got)
	}
}

func TestStaticMetrics(t *testing.T) {
	m := StaticMetrics{Density: 2, ScaledDensity: 2.5, XDPI: 320, YDPI: 320}
	got := m.DisplayMetrics()
	if got.Density != 2 || got.ScaledDensity != 2.5 {
		t.Errorf("unexpected metrics %+v", got)
	}
}

func TestNode_ChildNodes(t *testing.T) {
	leaf := NewNode("leaf", nil)
	tree := NewNode("panel", Attributes{}, leaf, nil, "payload", NewNode("leaf", nil))

	kids := tree.ChildNodes()
	if len(kids) != 2 {
		t.Fatalf("expected 2 child nodes, got %d", len(kids))
	}
	if kids[0] != leaf {
		t.Error("expected first child node preserved in order")
	}
}
