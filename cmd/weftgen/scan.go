package main

import (
	"fmt"
	"go/types"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/go-weft/weft/pkg/values"
)

// Setter is one scanned single-parameter Set* method.
type Setter struct {
	Name       string
	ParamExpr  string // the parameter type, rendered relative to the package
	ReturnsErr bool
}

// Widget is one scanned widget type.
type Widget struct {
	Name        string
	Keyword     string
	Inherits    string
	Setters     []Setter
	Constructor string   // New<Name> function, when present
	embedded    []string // embedded struct type names, for inheritance inference
}

// Enum is a named integer type with package-level constants: the raw
// material of a constant table.
type Enum struct {
	TypeName  string
	Constants []string
}

// Scanned is everything the emitter needs about one package.
type Scanned struct {
	PkgName string
	PkgDir  string
	ModPath string
	Widgets []Widget
	Enums   []Enum
	Imports map[string]string // import path -> package name
}

// FileInPackage resolves an output filename against the scanned package
// directory.
func (s *Scanned) FileInPackage(name string) string {
	return filepath.Join(s.PkgDir, name)
}

// SetterCount totals the scanned setters across widgets.
func (s *Scanned) SetterCount() int {
	n := 0
	for _, w := range s.Widgets {
		n += len(w.Setters)
	}
	return n
}

var errorType = types.Universe.Lookup("error").Type()

// scanPackage loads one package and collects its widget types, setter
// methods, constructors, and enum constant groups.
func scanPackage(pattern string, cfg *Config, diag *diagnostics) (*Scanned, error) {
	pkgs, err := packages.Load(&packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedTypes | packages.NeedTypesInfo,
	}, pattern)
	if err != nil {
		return nil, err
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("pattern %q matched %d packages, want 1", pattern, len(pkgs))
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, fmt.Errorf("%s: %v", pkg.PkgPath, pkg.Errors[0])
	}
	if len(pkg.GoFiles) == 0 {
		return nil, fmt.Errorf("%s has no Go files", pkg.PkgPath)
	}

	s := &Scanned{
		PkgName: pkg.Name,
		PkgDir:  filepath.Dir(pkg.GoFiles[0]),
		Imports: make(map[string]string),
	}
	if s.ModPath, err = modulePath(s.PkgDir); err != nil {
		diag.warnf("module path: %v", err)
	}

	qualify := func(p *types.Package) string {
		if p == pkg.Types {
			return ""
		}
		s.Imports[p.Path()] = p.Name()
		return p.Name()
	}

	scope := pkg.Types.Scope()
	widgetNames := make(map[string]bool)
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !tn.Exported() {
			continue
		}
		named, ok := tn.Type().(*types.Named)
		if !ok {
			continue
		}
		switch named.Underlying().(type) {
		case *types.Struct:
			if w, ok := scanWidget(named, scope, cfg, qualify); ok {
				s.Widgets = append(s.Widgets, w)
				widgetNames[name] = true
			}
		case *types.Basic:
			if e, ok := scanEnum(named, scope); ok {
				s.Enums = append(s.Enums, e)
			}
		}
	}

	resolveInheritance(s.Widgets, widgetNames, cfg)
	sort.Slice(s.Widgets, func(i, j int) bool { return s.Widgets[i].Name < s.Widgets[j].Name })
	sort.Slice(s.Enums, func(i, j int) bool { return s.Enums[i].TypeName < s.Enums[j].TypeName })
	return s, nil
}

// scanWidget collects the Set* surface of one struct type. Types with no
// setters are skipped: they are helpers, not widgets.
func scanWidget(named *types.Named, scope *types.Scope, cfg *Config, qualify types.Qualifier) (Widget, bool) {
	name := named.Obj().Name()
	if !cfg.wants(name) {
		return Widget{}, false
	}

	w := Widget{Name: name, Keyword: values.KeywordName(name)}
	if kw, ok := cfg.Keywords[name]; ok {
		w.Keyword = kw
	}

	st := named.Underlying().(*types.Struct)
	for i := 0; i < st.NumFields(); i++ {
		if f := st.Field(i); f.Embedded() {
			if ft, ok := f.Type().(*types.Named); ok {
				w.embedded = append(w.embedded, ft.Obj().Name())
			}
		}
	}

	// Promoted setters stay off the subtype's table: the parent keyword
	// carries them, and setter lookup falls back to method reflection for
	// anything a table omits.
	anySetters := false
	ms := types.NewMethodSet(types.NewPointer(named))
	for i := 0; i < ms.Len(); i++ {
		fn, ok := ms.At(i).Obj().(*types.Func)
		if !ok || !fn.Exported() || !strings.HasPrefix(fn.Name(), "Set") || fn.Name() == "Set" {
			continue
		}
		sig := fn.Type().(*types.Signature)
		if sig.Params().Len() != 1 || sig.Variadic() {
			continue
		}
		returnsErr := false
		switch sig.Results().Len() {
		case 0:
		case 1:
			if !types.Identical(sig.Results().At(0).Type(), errorType) {
				continue
			}
			returnsErr = true
		default:
			continue
		}
		anySetters = true
		if receiverBase(sig) != named.Origin() {
			continue
		}
		w.Setters = append(w.Setters, Setter{
			Name:       fn.Name(),
			ParamExpr:  types.TypeString(sig.Params().At(0).Type(), qualify),
			ReturnsErr: returnsErr,
		})
	}
	if !anySetters {
		return Widget{}, false
	}

	// A New<Name> function taking one string or nothing and returning
	// *Name registers as a constructor overload.
	if fn, ok := scope.Lookup("New" + name).(*types.Func); ok {
		sig := fn.Type().(*types.Signature)
		if sig.Results().Len() >= 1 {
			if ptr, ok := sig.Results().At(0).Type().(*types.Pointer); ok && ptr.Elem() == named.Origin() {
				w.Constructor = fn.Name()
			}
		}
	}
	return w, true
}

// receiverBase returns the named type a method's receiver points at.
func receiverBase(sig *types.Signature) types.Type {
	recv := sig.Recv().Type()
	if ptr, ok := recv.(*types.Pointer); ok {
		recv = ptr.Elem()
	}
	if named, ok := recv.(*types.Named); ok {
		return named.Origin()
	}
	return recv
}

// scanEnum collects the package constants typed as named.
func scanEnum(named *types.Named, scope *types.Scope) (Enum, bool) {
	if b, ok := named.Underlying().(*types.Basic); !ok || b.Info()&types.IsInteger == 0 {
		return Enum{}, false
	}
	e := Enum{TypeName: named.Obj().Name()}
	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if ok && c.Exported() && c.Type() == named.Origin() {
			e.Constants = append(e.Constants, name)
		}
	}
	return e, len(e.Constants) > 0
}

// resolveInheritance infers inherits links from embedded widget fields —
// Go's embedding is how these toolkits spell subtyping — with explicit
// config entries winning.
func resolveInheritance(widgets []Widget, widgetNames map[string]bool, cfg *Config) {
	byName := make(map[string]*Widget, len(widgets))
	for i := range widgets {
		byName[widgets[i].Name] = &widgets[i]
	}
	for i := range widgets {
		w := &widgets[i]
		if parent, ok := cfg.Inherits[w.Name]; ok {
			w.Inherits = parent
			continue
		}
		for _, emb := range w.embedded {
			if widgetNames[emb] {
				w.Inherits = byName[emb].Keyword
				break
			}
		}
	}
}
