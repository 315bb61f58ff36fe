package registry

import (
	"log/slog"
	"reflect"
	"sort"
	"sync"

	"github.com/go-weft/weft/pkg/core"
	weferr "github.com/go-weft/weft/pkg/errors"
)

// Registry holds the keyword→descriptor mapping for one application
// instance, plus the reverse class→keyword index.
type Registry struct {
	mu      sync.RWMutex
	types   map[string]*Descriptor
	byClass map[reflect.Type]string
	logger  *slog.Logger
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		types:   make(map[string]*Descriptor),
		byClass: make(map[reflect.Type]string),
		logger:  slog.Default(),
	}
}

// SetLogger replaces the registry's logger. Registration events are traced
// at Debug level.
func (r *Registry) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	r.mu.Lock()
	r.logger = logger
	r.mu.Unlock()
}

// Register inserts or overwrites the descriptor for keyword. When the
// descriptor declares a class, the reverse index is updated. Registration
// fails with a CyclicInheritance error if the inherits link would close a
// cycle through already-registered keywords.
func (r *Registry) Register(keyword string, d *Descriptor) error {
	if keyword == "" {
		return weferr.New("registry.Register", weferr.KindMalformedNode, "empty element keyword")
	}
	if d == nil {
		d = &Descriptor{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkChain(keyword, d); err != nil {
		return err
	}

	if prev, ok := r.types[keyword]; ok && prev.Class != nil && r.byClass[prev.Class] == keyword {
		delete(r.byClass, prev.Class)
	}

	stored := d.clone()
	r.types[keyword] = stored
	if stored.Class != nil {
		r.byClass[stored.Class] = keyword
	}
	r.logger.Debug("registered element type",
		"keyword", keyword,
		"class", className(stored.Class),
		"inherits", stored.Inherits,
		"traits", len(stored.Traits),
	)
	return nil
}

// checkChain walks the inheritance chain as it would look with d installed
// under keyword, rejecting cycles. Dangling parents are allowed: they may be
// registered later, and registering them is where their own chain is
// checked.
func (r *Registry) checkChain(keyword string, d *Descriptor) error {
	seen := map[string]bool{keyword: true}
	next := d.Inherits
	for next != "" {
		if seen[next] {
			return &weferr.Error{
				Op:      "registry.Register",
				Kind:    weferr.KindCyclicInheritance,
				Keyword: keyword,
			}
		}
		seen[next] = true
		parent, ok := r.types[next]
		if !ok {
			return nil
		}
		next = parent.Inherits
	}
	return nil
}

// AddTrait appends a trait id to the keyword's own trait list.
func (r *Registry) AddTrait(keyword, traitID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.types[keyword]
	if !ok {
		return notRegistered("registry.AddTrait", keyword)
	}
	d.Traits = append(d.Traits, traitID)
	r.logger.Debug("added trait to element type", "keyword", keyword, "trait", traitID)
	return nil
}

// SetValue adds or overwrites one symbolic-value binding on the keyword.
func (r *Registry) SetValue(keyword, value string, native any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.types[keyword]
	if !ok {
		return notRegistered("registry.SetValue", keyword)
	}
	if d.Values == nil {
		d.Values = make(map[string]any)
	}
	d.Values[value] = native
	r.logger.Debug("bound symbolic value", "keyword", keyword, "value", value)
	return nil
}

// Descriptor returns a copy of the keyword's registry entry.
func (r *Registry) Descriptor(keyword string) (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.types[keyword]
	if !ok {
		return nil, false
	}
	return d.clone(), true
}

// Keywords returns every registered keyword in lexical order.
func (r *Registry) Keywords() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.types))
	for k := range r.types {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// ResolveClass maps a keyword or an explicit type to the native type to
// instantiate. Strings are treated as keywords and resolved through the
// inheritance chain to the nearest declared class; a reflect.Type passes
// through unchanged. Anything else is rejected.
func (r *Registry) ResolveClass(v any) (reflect.Type, error) {
	switch key := v.(type) {
	case reflect.Type:
		return key, nil
	case string:
		r.mu.RLock()
		defer r.mu.RUnlock()
		if _, ok := r.types[key]; !ok {
			return nil, notRegistered("registry.ResolveClass", key)
		}
		for _, d := range r.chain(key) {
			if d.Class != nil {
				return d.Class, nil
			}
		}
		return nil, &weferr.Error{
			Op:      "registry.ResolveClass",
			Kind:    weferr.KindNotRegistered,
			Keyword: key,
		}
	case core.Symbol:
		return r.ResolveClass(string(key))
	default:
		return nil, weferr.New("registry.ResolveClass", weferr.KindMalformedNode,
			"cannot resolve %T to a native type", v)
	}
}

// KeywordForClass is the reverse lookup from a native type to the keyword
// registered for it. The second result is false for unregistered types.
func (r *Registry) KeywordForClass(t reflect.Type) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kw, ok := r.byClass[t]
	return kw, ok
}

// AllTraits returns the keyword's own traits followed by its ancestors',
// walking the inheritance chain until it ends. Duplicates across the chain
// are preserved in order; subtypes get the first chance to consume an
// attribute.
func (r *Registry) AllTraits(keyword string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []string
	for _, d := range r.chain(keyword) {
		out = append(out, d.Traits...)
	}
	return out
}

// DefaultAttributes returns the keyword's default attribute map with every
// ancestor's defaults merged underneath: a key declared by both levels takes
// the child's value, nested maps merge recursively.
func (r *Registry) DefaultAttributes(keyword string) core.Attributes {
	r.mu.RLock()
	defer r.mu.RUnlock()
	chain := r.chain(keyword)
	merged := core.Attributes{}
	for i := len(chain) - 1; i >= 0; i-- {
		merged = merged.Merge(chain[i].Attributes)
	}
	return merged
}

// LookupValue searches the inheritance chain for a symbolic-value binding.
// The nearest binding wins. The second result reports whether any was
// found, so callers can fall back to convention-derived constants.
func (r *Registry) LookupValue(keyword, value string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.chain(keyword) {
		if v, ok := d.Values[value]; ok {
			return v, true
		}
	}
	return nil, false
}

// LookupNamespace searches the inheritance chain for a value-namespace
// entry for the attribute: the lookup type used to derive constants when no
// direct value binding matched.
func (r *Registry) LookupNamespace(keyword, attribute string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.chain(keyword) {
		if v, ok := d.ValueNamespaces[attribute]; ok {
			return v, true
		}
	}
	return nil, false
}

// ContainerType returns the container keyword the element advertises to its
// children: the nearest container-type override on the chain, or the
// keyword itself.
func (r *Registry) ContainerType(keyword string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.chain(keyword) {
		if d.ContainerType != "" {
			return d.ContainerType
		}
	}
	return keyword
}

// chain returns the descriptors from keyword up to the root, most specific
// first. Unknown keywords yield an empty chain. A visited set guards the
// walk so a malformed registry cannot hang a build; registration refuses
// cycles, so the guard is the backstop, not the policy. Callers must hold
// at least a read lock.
func (r *Registry) chain(keyword string) []*Descriptor {
	var out []*Descriptor
	seen := make(map[string]bool)
	for keyword != "" && !seen[keyword] {
		seen[keyword] = true
		d, ok := r.types[keyword]
		if !ok {
			break
		}
		out = append(out, d)
		keyword = d.Inherits
	}
	return out
}

func notRegistered(op, keyword string) error {
	return &weferr.Error{Op: op, Kind: weferr.KindNotRegistered, Keyword: keyword}
}

func className(t reflect.Type) string {
	if t == nil {
		return ""
	}
	return t.String()
}
