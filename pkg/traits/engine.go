package traits

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/go-weft/weft/pkg/core"
	weferr "github.com/go-weft/weft/pkg/errors"
)

// Engine holds the trait registry for one application instance and runs
// the match/apply protocol. Like the element registry, it is populated at
// startup and read during every build.
type Engine struct {
	mu        sync.RWMutex
	traits    map[string]*Trait
	consumers map[string]map[string]bool
	logger    *slog.Logger
}

// NewEngine creates an empty engine.
func NewEngine() *Engine {
	return &Engine{
		traits:    make(map[string]*Trait),
		consumers: make(map[string]map[string]bool),
		logger:    slog.Default(),
	}
}

// SetLogger replaces the engine's logger.
func (e *Engine) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	e.mu.Lock()
	e.logger = logger
	e.mu.Unlock()
}

// Register inserts or overwrites a trait under its id and indexes the
// attributes it can consume. A trait carrying both a custom predicate and
// an attribute list is accepted but logged, since the predicate may match
// elements the list says nothing about.
func (e *Engine) Register(t *Trait) error {
	if t == nil || t.ID == "" {
		return weferr.New("traits.Register", weferr.KindBadValue, "trait needs an id")
	}
	if t.Apply == nil {
		return weferr.New("traits.Register", weferr.KindBadValue, "trait %s needs a body", t.ID)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.traits[t.ID] = t
	for _, attr := range t.consumed() {
		set := e.consumers[attr]
		if set == nil {
			set = make(map[string]bool)
			e.consumers[attr] = set
		}
		set[t.ID] = true
	}
	if t.Match != nil && len(t.Attributes) > 0 {
		e.logger.Debug("trait declares both a predicate and an attribute list; predicate decides matching, list decides consumption",
			"trait", t.ID, "attributes", t.Attributes)
	}
	e.logger.Debug("registered trait", "trait", t.ID, "attributes", t.consumed())
	return nil
}

// Lookup returns the trait registered under id.
func (e *Engine) Lookup(id string) (*Trait, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	t, ok := e.traits[id]
	return t, ok
}

// IDs returns every registered trait id in lexical order.
func (e *Engine) IDs() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]string, 0, len(e.traits))
	for id := range e.traits {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Consumers returns the ids of the traits that can consume the attribute,
// in lexical order. This is introspection metadata for documentation and
// debugging; dispatch never reads it.
func (e *Engine) Consumers(attribute string) []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	set := e.consumers[attribute]
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Apply runs one trait against an element under construction and returns
// the trait's effect.
//
// An unregistered id is an error: the registry said the trait belongs to
// the element's type, so a missing entry is a wiring bug, not a soft miss.
// An unmatched trait returns [Identity] without running its body. A matched
// trait runs its body; the body's [Result] overrides the default updates
// field by field, and a body error propagates unwrapped.
func (e *Engine) Apply(id string, widget any, attrs core.Attributes, opts core.Options) (Update, error) {
	t, ok := e.Lookup(id)
	if !ok {
		return Identity(), &weferr.Error{
			Op:        "traits.Apply",
			Kind:      weferr.KindNotRegistered,
			Attribute: id,
		}
	}

	if !t.matches(attrs, opts) {
		return Identity(), nil
	}

	res, err := t.Apply(widget, attrs, opts)
	if err != nil {
		return Identity(), err
	}

	up := Update{
		Attributes: func(a core.Attributes) core.Attributes {
			return a.Without(t.consumed()...)
		},
		Options: func(o core.Options) core.Options { return o },
	}
	if res != nil {
		if res.UpdateAttributes != nil {
			up.Attributes = res.UpdateAttributes
		}
		if res.UpdateOptions != nil {
			up.Options = res.UpdateOptions
		}
	}
	return up, nil
}
