package native

import (
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"github.com/go-weft/weft/pkg/core"
	weferr "github.com/go-weft/weft/pkg/errors"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// constructor is one registered construction overload.
type constructor struct {
	fn     reflect.Value
	params []reflect.Type
	hasErr bool
}

// setterEntry is one registered setter overload for a setter name.
type setterEntry struct {
	param reflect.Type
	fn    Setter
}

// ReflectToolkit is the default Toolkit for in-process Go widget types.
//
// Constructors, setters, and constants are registered into per-type tables,
// validated up front. Setter resolution additionally falls back to method
// reflection: a method named after the attribute's conventional setter with
// exactly one parameter. Registered tables always win over reflection so a
// generated or hand-declared table can correct what convention would pick.
type ReflectToolkit struct {
	mu           sync.RWMutex
	constructors map[reflect.Type][]constructor
	setters      map[reflect.Type]map[string][]setterEntry
	constants    map[reflect.Type]map[string]any
	logger       *slog.Logger
}

// NewReflectToolkit creates an empty toolkit.
func NewReflectToolkit() *ReflectToolkit {
	return &ReflectToolkit{
		constructors: make(map[reflect.Type][]constructor),
		setters:      make(map[reflect.Type]map[string][]setterEntry),
		constants:    make(map[reflect.Type]map[string]any),
		logger:       slog.Default(),
	}
}

// SetLogger replaces the toolkit's logger.
func (tk *ReflectToolkit) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	tk.mu.Lock()
	tk.logger = logger
	tk.mu.Unlock()
}

// RegisterConstructor adds a construction overload for t. fn must be a
// non-variadic func returning t, or t and error. Overloads are resolved in
// registration order against runtime argument types.
func (tk *ReflectToolkit) RegisterConstructor(t reflect.Type, fn any) error {
	fv := reflect.ValueOf(fn)
	if !fv.IsValid() || fv.Kind() != reflect.Func {
		return weferr.New("native.RegisterConstructor", weferr.KindBadValue,
			"constructor for %v must be a func, got %T", t, fn)
	}
	ft := fv.Type()
	if ft.IsVariadic() {
		return weferr.New("native.RegisterConstructor", weferr.KindBadValue,
			"variadic constructor for %v not supported", t)
	}
	switch ft.NumOut() {
	case 1:
		// instance only
	case 2:
		if ft.Out(1) != errorType {
			return weferr.New("native.RegisterConstructor", weferr.KindBadValue,
				"second result of constructor for %v must be error", t)
		}
	default:
		return weferr.New("native.RegisterConstructor", weferr.KindBadValue,
			"constructor for %v must return the instance and an optional error", t)
	}
	if !ft.Out(0).AssignableTo(t) {
		return weferr.New("native.RegisterConstructor", weferr.KindBadValue,
			"constructor returns %v, not assignable to %v", ft.Out(0), t)
	}

	c := constructor{fn: fv, hasErr: ft.NumOut() == 2}
	for i := 0; i < ft.NumIn(); i++ {
		c.params = append(c.params, ft.In(i))
	}

	tk.mu.Lock()
	tk.constructors[t] = append(tk.constructors[t], c)
	tk.logger.Debug("registered constructor", "type", t.String(), "params", len(c.params))
	tk.mu.Unlock()
	return nil
}

// RegisterSetter adds a setter overload under a conventional setter name,
// e.g. ("SetTextSize", int). Multiple entries may share a name with
// different parameter types; resolution picks the one matching the value
// type and reports ambiguity when more than one fits equally well.
func (tk *ReflectToolkit) RegisterSetter(t reflect.Type, name string, param reflect.Type, fn Setter) error {
	if name == "" || param == nil || fn == nil {
		return weferr.New("native.RegisterSetter", weferr.KindBadValue,
			"setter registration for %v needs a name, a parameter type, and a func", t)
	}
	tk.mu.Lock()
	byName := tk.setters[t]
	if byName == nil {
		byName = make(map[string][]setterEntry)
		tk.setters[t] = byName
	}
	byName[name] = append(byName[name], setterEntry{param: param, fn: fn})
	tk.logger.Debug("registered setter", "type", t.String(), "name", name, "param", param.String())
	tk.mu.Unlock()
	return nil
}

// RegisterConstants merges a table of named constants for t, typically
// filled from an enum declaration at load time.
func (tk *ReflectToolkit) RegisterConstants(t reflect.Type, table map[string]any) {
	tk.mu.Lock()
	existing := tk.constants[t]
	if existing == nil {
		existing = make(map[string]any, len(table))
		tk.constants[t] = existing
	}
	for k, v := range table {
		existing[k] = v
	}
	tk.logger.Debug("registered constants", "type", t.String(), "count", len(table))
	tk.mu.Unlock()
}

// Construct builds an instance of t. Registered overloads are tried in
// order against the runtime argument types; types with no registered
// constructor fall back to zero-value construction when called without
// arguments.
func (tk *ReflectToolkit) Construct(t reflect.Type, args []any) (any, error) {
	tk.mu.RLock()
	cands := tk.constructors[t]
	tk.mu.RUnlock()

	if len(cands) == 0 {
		if len(args) == 0 {
			return zeroConstruct(t)
		}
		return nil, noConstructor(t, args)
	}

	for _, c := range cands {
		if len(c.params) != len(args) {
			continue
		}
		ok := true
		for i, p := range c.params {
			if !argMatches(p, args[i]) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		in := make([]reflect.Value, len(args))
		for i, p := range c.params {
			in[i] = argValue(p, args[i])
		}
		out := c.fn.Call(in)
		if c.hasErr && !out[1].IsNil() {
			return nil, out[1].Interface().(error)
		}
		return out[0].Interface(), nil
	}
	// No overload took zero arguments; zero-value construction still
	// applies, so registering extra overloads never breaks plain nodes.
	if len(args) == 0 {
		return zeroConstruct(t)
	}
	return nil, noConstructor(t, args)
}

func zeroConstruct(t reflect.Type) (any, error) {
	switch t.Kind() {
	case reflect.Ptr:
		if t.Elem().Kind() == reflect.Struct {
			return reflect.New(t.Elem()).Interface(), nil
		}
	case reflect.Struct:
		return reflect.New(t).Elem().Interface(), nil
	}
	return nil, &weferr.Error{
		Op:   "native.Construct",
		Kind: weferr.KindNoConstructor,
		Err:  fmt.Errorf("cannot zero-construct %v", t),
	}
}

func noConstructor(t reflect.Type, args []any) error {
	return &weferr.Error{
		Op:   "native.Construct",
		Kind: weferr.KindNoConstructor,
		Err:  fmt.Errorf("no constructor for %v accepting %s", t, argTypeList(args)),
	}
}

func argTypeList(args []any) string {
	if len(args) == 0 {
		return "()"
	}
	s := "("
	for i, a := range args {
		if i > 0 {
			s += ", "
		}
		if a == nil {
			s += "nil"
			continue
		}
		s += reflect.TypeOf(a).String()
	}
	return s + ")"
}

// Setter resolves the named setter on t for a value of type param. A nil
// param stands for an untyped nil value and matches nillable parameters.
// Registered table entries are consulted first; method reflection is the
// fallback. Within the table, direct assignability outranks numeric
// conversion, and two equally ranked entries are an ambiguity error.
func (tk *ReflectToolkit) Setter(t reflect.Type, name string, param reflect.Type) (Setter, error) {
	tk.mu.RLock()
	entries := tk.setters[t][name]
	tk.mu.RUnlock()

	if s, err, done := pickSetter(t, name, param, entries); done {
		return s, err
	}

	if m, ok := t.MethodByName(name); ok && m.Type.NumIn() == 2 {
		mp := m.Type.In(1)
		if paramFits(mp, param) {
			return methodSetter(name, mp), nil
		}
	}
	return nil, &weferr.Error{
		Op:   "native.Setter",
		Kind: weferr.KindNoSetter,
		Err:  fmt.Errorf("no setter %s(%s) on %v", name, typeName(param), t),
	}
}

// pickSetter filters table entries by parameter fit. done is false when the
// table holds nothing usable and reflection should take over.
func pickSetter(t reflect.Type, name string, param reflect.Type, entries []setterEntry) (Setter, error, bool) {
	var direct, converted []setterEntry
	for _, e := range entries {
		switch {
		case param == nil && nillable(e.param):
			direct = append(direct, e)
		case param != nil && param.AssignableTo(e.param):
			direct = append(direct, e)
		case param != nil && isNumeric(param.Kind()) && isNumeric(e.param.Kind()):
			converted = append(converted, e)
		}
	}
	matched := direct
	if len(matched) == 0 {
		matched = converted
	}
	switch len(matched) {
	case 0:
		return nil, nil, false
	case 1:
		return matched[0].fn, nil, true
	default:
		return nil, &weferr.Error{
			Op:   "native.Setter",
			Kind: weferr.KindAmbiguousSetter,
			Err:  fmt.Errorf("%d setters %s(%s) registered for %v", len(matched), name, typeName(param), t),
		}, true
	}
}

// paramFits reports whether a value of type param can feed a method
// parameter of type mp.
func paramFits(mp, param reflect.Type) bool {
	if param == nil {
		return nillable(mp)
	}
	if param.AssignableTo(mp) {
		return true
	}
	return isNumeric(param.Kind()) && isNumeric(mp.Kind())
}

// methodSetter wraps a reflected single-parameter method as a Setter.
func methodSetter(name string, mp reflect.Type) Setter {
	return func(widget, value any) error {
		m := reflect.ValueOf(widget).MethodByName(name)
		if !m.IsValid() {
			return &weferr.Error{
				Op:   "native.Setter",
				Kind: weferr.KindNoSetter,
				Err:  fmt.Errorf("widget %T has no method %s", widget, name),
			}
		}
		return resultError(m.Call([]reflect.Value{argValue(mp, value)}))
	}
}

// resultError extracts a non-nil error from a reflected call's results.
// Results of non-error types, such as a fluent receiver return, are
// ignored rather than inspected for nilness.
func resultError(out []reflect.Value) error {
	for _, v := range out {
		if v.Type().Implements(errorType) && !v.IsNil() {
			return v.Interface().(error)
		}
	}
	return nil
}

// Constant resolves a named constant scoped to t. When t is a pointer type
// with no table of its own, the element type's table is consulted, so
// registrations can use either form.
func (tk *ReflectToolkit) Constant(t reflect.Type, name string) (any, error) {
	tk.mu.RLock()
	defer tk.mu.RUnlock()
	if v, ok := tk.constants[t][name]; ok {
		return v, nil
	}
	if t != nil && t.Kind() == reflect.Ptr {
		if v, ok := tk.constants[t.Elem()][name]; ok {
			return v, nil
		}
	}
	return nil, &weferr.Error{
		Op:   "native.Constant",
		Kind: weferr.KindUnresolvedSymbol,
		Err:  fmt.Errorf("no constant %s on %v", name, t),
	}
}

// ConvertDimension converts a dimension magnitude to pixels.
func (tk *ReflectToolkit) ConvertDimension(value float64, unit core.Unit, metrics core.DisplayMetrics) (int, error) {
	return PixelSize(value, unit, metrics)
}

// AppendChild attaches child to parent. Parents implementing
// [ChildAppender] are used directly; otherwise a single-parameter
// AppendChild or AddChild method is located reflectively.
func (tk *ReflectToolkit) AppendChild(parent, child any) error {
	if ca, ok := parent.(ChildAppender); ok {
		return ca.AppendChild(child)
	}

	pv := reflect.ValueOf(parent)
	for _, name := range []string{"AppendChild", "AddChild"} {
		m := pv.MethodByName(name)
		if !m.IsValid() || m.Type().NumIn() != 1 {
			continue
		}
		if !argMatches(m.Type().In(0), child) {
			continue
		}
		return resultError(m.Call([]reflect.Value{argValue(m.Type().In(0), child)}))
	}
	return &weferr.Error{
		Op:   "native.AppendChild",
		Kind: weferr.KindNotContainer,
		Err:  fmt.Errorf("%T cannot accept children", parent),
	}
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	return t.String()
}
