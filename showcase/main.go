// Package main builds the same settings screen from a YAML document and
// an HCL document, through one shared registry and widget set, and prints
// both widget trees. It is the end-to-end wiring example for the weft
// build pipeline.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/go-weft/weft/pkg/build"
	"github.com/go-weft/weft/pkg/core"
	"github.com/go-weft/weft/pkg/markup"
	"github.com/go-weft/weft/pkg/native"
	"github.com/go-weft/weft/pkg/registry"
	"github.com/go-weft/weft/pkg/traits"
	"github.com/go-weft/weft/pkg/values"
	"github.com/go-weft/weft/pkg/widgets"
)

const yamlScreen = `
widget: panel
attrs:
  id-holder: true
  orientation: ":vertical"
  padding: 12dp
children:
  - widget: label
    attrs:
      id: title
      text: Settings
      text-size: 20sp
      text-align: ":align-center"
      text-color: ":steelblue"
  - ~
  - widget: field
    attrs: {id: name, hint: Display name}
  - widget: checkbox
    attrs: {id: sounds, checked: true}
  - widget: button
    attrs: {id: save, text: Save}
`

const hclScreen = `
widget "panel" {
  id-holder   = true
  orientation = ":vertical"
  padding     = "12dp"

  widget "label" {
    id         = "title"
    text       = "Settings"
    text-size  = "20sp"
    text-align = ":align-center"
    text-color = ":steelblue"
  }
  widget "field" {
    id   = "name"
    hint = "Display name"
  }
  widget "checkbox" {
    id      = "sounds"
    checked = true
  }
  widget "button" {
    id   = "save"
    text = "Save"
  }
}
`

func main() {
	if os.Getenv("WEFT_DEBUG") != "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	reg := registry.New()
	eng := traits.NewEngine()
	tk := native.NewReflectToolkit()
	resolver := values.New(reg, tk, core.StaticMetrics{
		Density: 2, ScaledDensity: 2, XDPI: 320, YDPI: 320,
	})
	if err := widgets.Register(reg, eng, tk, resolver); err != nil {
		log.Fatalf("register widget set: %v", err)
	}
	interp := build.New(build.Config{
		Registry: reg,
		Engine:   eng,
		Toolkit:  tk,
		Resolver: resolver,
	})

	yamlTree, err := markup.ParseYAML([]byte(yamlScreen))
	if err != nil {
		log.Fatalf("parse yaml: %v", err)
	}
	hclTree, err := markup.ParseHCL([]byte(hclScreen), "screen.hcl")
	if err != nil {
		log.Fatalf("parse hcl: %v", err)
	}

	fmt.Println("=== from YAML ===")
	show(interp, yamlTree)
	fmt.Println("=== from HCL ===")
	show(interp, hclTree)
}

func show(interp *build.Interpreter, tree *core.Node) {
	root, err := interp.Build(tree)
	if err != nil {
		log.Fatalf("build: %v", err)
	}
	fmt.Print(widgets.Dump(root))

	// The id-holder panel can hand widgets back by id.
	panel := root.(*widgets.Panel)
	if w, ok := panel.WidgetByID("save"); ok {
		w.(*widgets.Button).SetOnClick(func() { fmt.Println("saved") })
		w.(*widgets.Button).Click()
	}
}
