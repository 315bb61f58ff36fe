// Package build walks a description tree and turns it into a live widget
// tree: for each node it resolves the element type, constructs the native
// widget, runs the type's traits in most-specific-first order, applies
// whatever attributes the traits left behind through setter resolution,
// and recurses into the children with the options the node produced.
//
// A build is synchronous and owns no state between calls. Any failure —
// an unknown keyword, an unresolvable symbol, a setter mismatch, a trait
// body error — aborts the node and every ancestor up to the caller; there
// is no partial-widget recovery.
package build

import (
	"log/slog"
	"reflect"

	"github.com/google/uuid"

	"github.com/go-weft/weft/pkg/core"
	weferr "github.com/go-weft/weft/pkg/errors"
	"github.com/go-weft/weft/pkg/native"
	"github.com/go-weft/weft/pkg/registry"
	"github.com/go-weft/weft/pkg/traits"
	"github.com/go-weft/weft/pkg/values"
)

// Reserved pseudo-attributes, extracted before trait and setter
// processing ever sees the attribute map.
const (
	// AttrCustomConstructor holds a [Constructor] that replaces type-based
	// construction for one node.
	AttrCustomConstructor = "custom-constructor"

	// AttrConstructorArgs holds a []any of extra constructor arguments.
	AttrConstructorArgs = "constructor-args"
)

// Constructor is a caller-supplied factory for one node, receiving the
// interpreter's host context and the node's constructor arguments.
type Constructor func(hostContext any, args []any) (any, error)

// DefaultMaxDepth bounds tree recursion when Config.MaxDepth is unset.
// Description trees are authored by hand or generated from markup; one
// hundred levels is beyond any sane screen and cheap to check.
const DefaultMaxDepth = 100

// Config assembles an interpreter from its collaborators.
type Config struct {
	Registry *registry.Registry
	Engine   *traits.Engine
	Toolkit  native.Toolkit

	// Resolver is optional; when nil one is created over Registry and
	// Toolkit with default display metrics.
	Resolver *values.Resolver

	// HostContext, when non-nil, is prepended to every node's constructor
	// arguments, mirroring toolkits whose widgets are constructed against
	// an application or window handle.
	HostContext any

	// Logger traces builds at Debug level. Defaults to slog.Default().
	Logger *slog.Logger

	// MaxDepth guards against runaway recursion. Defaults to
	// DefaultMaxDepth.
	MaxDepth int
}

// Interpreter builds widget trees from description trees. It is cheap to
// create and safe for concurrent builds once registration has finished.
type Interpreter struct {
	reg      *registry.Registry
	engine   *traits.Engine
	toolkit  native.Toolkit
	resolver *values.Resolver
	hostCtx  any
	logger   *slog.Logger
	maxDepth int
}

// New creates an interpreter from cfg. Registry, Engine, and Toolkit are
// required.
func New(cfg Config) *Interpreter {
	in := &Interpreter{
		reg:      cfg.Registry,
		engine:   cfg.Engine,
		toolkit:  cfg.Toolkit,
		resolver: cfg.Resolver,
		hostCtx:  cfg.HostContext,
		logger:   cfg.Logger,
		maxDepth: cfg.MaxDepth,
	}
	if in.resolver == nil {
		in.resolver = values.New(cfg.Registry, cfg.Toolkit, nil)
	}
	if in.logger == nil {
		in.logger = slog.Default()
	}
	if in.maxDepth <= 0 {
		in.maxDepth = DefaultMaxDepth
	}
	return in
}

// Build constructs the widget tree described by node with empty options.
// Values that are not description nodes are returned unchanged.
func (in *Interpreter) Build(node any) (any, error) {
	return in.BuildWith(node, core.Options{})
}

// BuildWith constructs the widget tree described by node under the given
// root options.
func (in *Interpreter) BuildWith(node any, opts core.Options) (any, error) {
	buildID := uuid.NewString()
	if n, ok := node.(*core.Node); ok && n != nil {
		in.logger.Debug("build started", "build", buildID, "root", n.Keyword)
	}
	w, err := in.buildNode(node, opts.Clone(), 0)
	if err != nil {
		in.logger.Debug("build failed", "build", buildID, "error", err)
		return nil, err
	}
	in.logger.Debug("build finished", "build", buildID)
	return w, nil
}

// buildNode is the recursive step: Pending → TypeResolved → Constructed →
// TraitsApplied → AttributesApplied → ChildrenAttached → Done. opts is
// owned by this call; edits flow only into the subtree.
func (in *Interpreter) buildNode(node any, opts core.Options, depth int) (any, error) {
	n, ok := node.(*core.Node)
	if !ok {
		return node, nil
	}
	if n == nil {
		return nil, weferr.New("build.Node", weferr.KindMalformedNode, "nil description node")
	}
	if n.Keyword == "" {
		return nil, weferr.New("build.Node", weferr.KindMalformedNode, "description node without a keyword")
	}
	if depth > in.maxDepth {
		return nil, &weferr.Error{
			Op:      "build.Node",
			Kind:    weferr.KindDepthExceeded,
			Keyword: n.Keyword,
		}
	}

	attrs := in.reg.DefaultAttributes(n.Keyword).Merge(n.Attributes)

	custom, ctorArgs, attrs, err := extractConstruction(attrs)
	if err != nil {
		return nil, nodeErr(n.Keyword, err)
	}

	widget, err := in.construct(n.Keyword, custom, ctorArgs)
	if err != nil {
		return nil, nodeErr(n.Keyword, err)
	}

	attrs, opts, err = in.applyTraits(n.Keyword, widget, attrs, opts)
	if err != nil {
		return nil, nodeErr(n.Keyword, err)
	}

	if err := in.applyRemaining(n.Keyword, widget, attrs); err != nil {
		return nil, nodeErr(n.Keyword, err)
	}

	childOpts := opts.WithContainerType(in.reg.ContainerType(n.Keyword))
	for _, child := range n.Children {
		if isAbsent(child) {
			continue
		}
		built, err := in.buildNode(child, childOpts.Clone(), depth+1)
		if err != nil {
			return nil, err
		}
		if err := in.toolkit.AppendChild(widget, built); err != nil {
			return nil, nodeErr(n.Keyword, err)
		}
	}

	return widget, nil
}

// extractConstruction pulls the reserved construction pseudo-attributes
// out of the merged map. A custom-constructor value of the wrong type is
// an error, not a fallthrough to type-based construction.
func extractConstruction(attrs core.Attributes) (Constructor, []any, core.Attributes, error) {
	var custom Constructor
	switch fn := attrs[AttrCustomConstructor].(type) {
	case Constructor:
		custom = fn
	case func(hostContext any, args []any) (any, error):
		custom = fn
	case nil:
	default:
		return nil, nil, nil, weferr.New("build.Node", weferr.KindBadValue,
			"%s must be a build.Constructor, got %T", AttrCustomConstructor, fn)
	}
	var args []any
	switch v := attrs[AttrConstructorArgs].(type) {
	case []any:
		args = v
	case nil:
	default:
		args = []any{v}
	}
	return custom, args, attrs.Without(AttrCustomConstructor, AttrConstructorArgs), nil
}

// construct builds the node's native widget, preferring a custom factory.
func (in *Interpreter) construct(keyword string, custom Constructor, args []any) (any, error) {
	if custom != nil {
		return custom(in.hostCtx, args)
	}
	class, err := in.reg.ResolveClass(keyword)
	if err != nil {
		return nil, err
	}
	if in.hostCtx != nil {
		args = append([]any{in.hostCtx}, args...)
	}
	return in.toolkit.Construct(class, args)
}

// applyTraits runs the type's trait chain, threading both update
// functions. The options returned feed this node's remaining traits and
// its children only; the caller's map is never touched.
func (in *Interpreter) applyTraits(keyword string, widget any, attrs core.Attributes, opts core.Options) (core.Attributes, core.Options, error) {
	for _, id := range in.reg.AllTraits(keyword) {
		up, err := in.engine.Apply(id, widget, attrs, opts)
		if err != nil {
			return nil, nil, err
		}
		attrs = up.Attributes(attrs)
		opts = up.Options(opts)
	}
	return attrs, opts, nil
}

// applyRemaining is the generic fall-through: every attribute no trait
// consumed resolves through the value resolver and lands on the widget via
// the conventional single-parameter setter. Keys apply in lexical order so
// failures are deterministic.
func (in *Interpreter) applyRemaining(keyword string, widget any, attrs core.Attributes) error {
	widgetType := reflect.TypeOf(widget)
	for _, name := range attrs.SortedKeys() {
		resolved, err := in.resolver.Resolve(keyword, attrs[name], name)
		if err != nil {
			return attrErr(name, err)
		}
		var paramType reflect.Type
		if resolved != nil {
			paramType = reflect.TypeOf(resolved)
		}
		setter, err := in.toolkit.Setter(widgetType, values.SetterName(name), paramType)
		if err != nil {
			return attrErr(name, err)
		}
		if err := setter(widget, resolved); err != nil {
			return attrErr(name, err)
		}
	}
	return nil
}

// isAbsent reports whether a child slot holds nothing buildable: a nil
// interface or a typed nil node.
func isAbsent(child any) bool {
	if child == nil {
		return true
	}
	n, ok := child.(*core.Node)
	return ok && n == nil
}

// nodeErr stamps the element keyword onto errors bubbling out of a node,
// preserving the cause. Structured errors that already name a keyword pass
// through so the innermost scope wins.
func nodeErr(keyword string, err error) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*weferr.Error); ok {
		if e.Keyword == "" {
			e.Keyword = keyword
		}
		return e
	}
	return &weferr.Error{Op: "build.Node", Keyword: keyword, Err: err}
}

// attrErr stamps the attribute name the same way.
func attrErr(attribute string, err error) error {
	if e, ok := err.(*weferr.Error); ok {
		if e.Attribute == "" {
			e.Attribute = attribute
		}
		return e
	}
	return &weferr.Error{Op: "build.Node", Attribute: attribute, Err: err}
}
