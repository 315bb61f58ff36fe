package testing

import (
	"reflect"
	"testing"

	"github.com/go-weft/weft/pkg/build"
	"github.com/go-weft/weft/pkg/core"
	"github.com/go-weft/weft/pkg/registry"
	"github.com/go-weft/weft/pkg/traits"
	"github.com/go-weft/weft/pkg/values"
)

// DefaultTestMetrics is the display the tester resolves dimensions
// against: a 2x panel, so density bugs show up as doubled numbers instead
// of hiding behind a 1:1 mapping.
var DefaultTestMetrics = core.StaticMetrics{Density: 2, ScaledDensity: 2, XDPI: 320, YDPI: 320}

// BuildTester bundles a private pipeline per test: its own registry,
// trait engine, recording toolkit, and resolver, assembled into an
// interpreter on first use.
type BuildTester struct {
	t *testing.T

	Registry *registry.Registry
	Engine   *traits.Engine
	Toolkit  *RecordingToolkit
	Resolver *values.Resolver

	// HostContext, when set before the first Build, is passed through to
	// the interpreter.
	HostContext any

	interp *build.Interpreter
}

// NewBuildTester creates a tester with standard traits installed and
// [DefaultTestMetrics] display metrics.
func NewBuildTester(t *testing.T) *BuildTester {
	t.Helper()
	bt := &BuildTester{
		t:        t,
		Registry: registry.New(),
		Engine:   traits.NewEngine(),
		Toolkit:  NewRecordingToolkit(),
	}
	bt.Resolver = values.New(bt.Registry, bt.Toolkit, DefaultTestMetrics)
	if err := traits.RegisterStandard(bt.Engine); err != nil {
		t.Fatalf("RegisterStandard: %v", err)
	}
	return bt
}

// RegisterLeaf declares a keyword for a plain widget type with no traits
// beyond the inherited ones, a shorthand for fixture setup.
func (bt *BuildTester) RegisterLeaf(keyword string, class reflect.Type) {
	bt.t.Helper()
	if err := bt.Registry.Register(keyword, &registry.Descriptor{Class: class}); err != nil {
		bt.t.Fatalf("Register(%q): %v", keyword, err)
	}
}

// Interpreter returns the tester's interpreter, building it on first use.
// Collaborators must be fully registered before the first call.
func (bt *BuildTester) Interpreter() *build.Interpreter {
	if bt.interp == nil {
		bt.interp = build.New(build.Config{
			Registry:    bt.Registry,
			Engine:      bt.Engine,
			Toolkit:     bt.Toolkit,
			Resolver:    bt.Resolver,
			HostContext: bt.HostContext,
		})
	}
	return bt.interp
}

// Build runs one build with empty root options.
func (bt *BuildTester) Build(node any) (any, error) {
	return bt.Interpreter().Build(node)
}

// MustBuild runs one build and fails the test on error.
func (bt *BuildTester) MustBuild(node any) any {
	bt.t.Helper()
	w, err := bt.Build(node)
	if err != nil {
		bt.t.Fatalf("Build: %v", err)
	}
	return w
}
