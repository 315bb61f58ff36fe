// Package testing provides build-pipeline test support: a recording
// toolkit that captures every native call a build makes, and a
// [BuildTester] that wires a private registry, trait engine, and
// interpreter per test.
//
// # Quick Start
//
//	func TestMyScreen(t *testing.T) {
//	    bt := wefttest.NewBuildTester(t)
//	    widgets.Register(bt.Registry, bt.Engine, bt.Toolkit.ReflectToolkit, bt.Resolver)
//
//	    root := bt.MustBuild(core.NewNode("panel", nil,
//	        core.NewNode("label", core.Attributes{"text": "hi"}),
//	    ))
//
//	    bt.Toolkit.ExpectMethods(t, "Construct", "Construct", "Setter", "AppendChild")
//	    _ = root
//	}
//
// Everything is instance-scoped; parallel tests never share registry
// state.
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import wefttest "github.com/go-weft/weft/pkg/testing"
package testing
