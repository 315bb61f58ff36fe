package testing

import (
	"reflect"
	"testing"

	"github.com/go-weft/weft/pkg/core"
)

func TestBuildTester_RecordsNativeCalls(t *testing.T) {
	bt := NewBuildTester(t)
	bt.RegisterLeaf("container", reflect.TypeOf(&FakeContainer{}))
	bt.RegisterLeaf("leaf", reflect.TypeOf(&FakeLeaf{}))

	root := bt.MustBuild(core.NewNode("container", nil,
		core.NewNode("leaf", core.Attributes{"name": "a"}),
	))

	c := root.(*FakeContainer)
	if len(c.Kids) != 1 || c.Kids[0].(*FakeLeaf).Name != "a" {
		t.Fatalf("tree not built: %+v", c)
	}
	bt.Toolkit.ExpectMethods(t,
		"Construct",   // container
		"Construct",   // leaf
		"Setter",      // leaf name
		"AppendChild", // leaf into container
	)
}

func TestBuildTester_DimensionsUseTestMetrics(t *testing.T) {
	bt := NewBuildTester(t)
	bt.RegisterLeaf("leaf", reflect.TypeOf(&FakeLeaf{}))

	w := bt.MustBuild(core.NewNode("leaf", core.Attributes{"size": core.Dp(10)}))
	if got := w.(*FakeLeaf).Size; got != 20 {
		t.Errorf("size = %d, want 20 at 2x density", got)
	}

	calls := bt.Toolkit.Calls()
	found := false
	for _, c := range calls {
		if c.Method == "ConvertDimension" && c.Detail == "10dp" {
			found = true
		}
	}
	if !found {
		t.Errorf("dimension conversion not recorded: %v", calls)
	}
}

func TestBuildTester_IsolatedRegistries(t *testing.T) {
	a := NewBuildTester(t)
	b := NewBuildTester(t)
	a.RegisterLeaf("leaf", reflect.TypeOf(&FakeLeaf{}))

	if _, err := b.Build(core.NewNode("leaf", nil)); err == nil {
		t.Errorf("keyword registered on tester a leaked into tester b")
	}
}
