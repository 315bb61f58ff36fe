package main

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"

	"github.com/go-weft/weft/pkg/values"
)

// emit renders the registration source for a scanned package and formats
// it with go/format, so a broken template fails generation instead of
// producing unbuildable output.
func emit(s *Scanned, cfg *Config) ([]byte, error) {
	var b bytes.Buffer

	fmt.Fprintf(&b, "// Code generated by weftgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", s.PkgName)

	b.WriteString("import (\n")
	b.WriteString("\t\"reflect\"\n\n")
	for _, path := range sortedKeys(s.Imports) {
		fmt.Fprintf(&b, "\t%q\n", path)
	}
	if len(s.Imports) > 0 {
		b.WriteString("\n")
	}
	b.WriteString("\t\"github.com/go-weft/weft/pkg/native\"\n")
	b.WriteString("\t\"github.com/go-weft/weft/pkg/registry\"\n")
	b.WriteString(")\n\n")

	b.WriteString("// RegisterGenerated installs the scanned widget types: element\n")
	b.WriteString("// descriptors, setter tables, constructor overloads, and constant\n")
	b.WriteString("// tables.\n")
	b.WriteString("func RegisterGenerated(reg *registry.Registry, tk *native.ReflectToolkit) error {\n")

	for _, w := range s.Widgets {
		fmt.Fprintf(&b, "\t%s := reflect.TypeOf(&%s{})\n", typeVar(w), w.Name)
	}
	b.WriteString("\n")

	for _, w := range s.Widgets {
		fmt.Fprintf(&b, "\tif err := reg.Register(%q, &registry.Descriptor{Class: %s", w.Keyword, typeVar(w))
		if w.Inherits != "" {
			fmt.Fprintf(&b, ", Inherits: %q", w.Inherits)
		}
		b.WriteString("}); err != nil {\n\t\treturn err\n\t}\n")
	}
	b.WriteString("\n")

	for _, w := range s.Widgets {
		if w.Constructor != "" {
			fmt.Fprintf(&b, "\tif err := tk.RegisterConstructor(%s, %s); err != nil {\n\t\treturn err\n\t}\n",
				typeVar(w), w.Constructor)
		}
		for _, st := range w.Setters {
			emitSetter(&b, w, st)
		}
	}

	for _, e := range s.Enums {
		fmt.Fprintf(&b, "\n\ttk.RegisterConstants(reflect.TypeOf(%s(0)), map[string]any{\n", e.TypeName)
		for _, c := range e.Constants {
			fmt.Fprintf(&b, "\t\t%q: %s,\n", values.ConstantName(values.KeywordName(c)), c)
		}
		b.WriteString("\t})\n")
	}

	b.WriteString("\n\treturn nil\n}\n")

	return format.Source(b.Bytes())
}

// emitSetter renders one explicit setter-table entry: the parameter type
// and a typed thunk around the method call.
func emitSetter(b *bytes.Buffer, w Widget, st Setter) {
	fmt.Fprintf(b, "\tif err := tk.RegisterSetter(%s, %q, reflect.TypeOf((*%s)(nil)).Elem(), func(w, v any) error {\n",
		typeVar(w), st.Name, st.ParamExpr)
	if st.ReturnsErr {
		fmt.Fprintf(b, "\t\treturn w.(*%s).%s(v.(%s))\n", w.Name, st.Name, st.ParamExpr)
	} else {
		fmt.Fprintf(b, "\t\tw.(*%s).%s(v.(%s))\n\t\treturn nil\n", w.Name, st.Name, st.ParamExpr)
	}
	b.WriteString("\t}); err != nil {\n\t\treturn err\n\t}\n")
}

func typeVar(w Widget) string {
	return "type" + w.Name
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
