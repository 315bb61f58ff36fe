package core

// Option keys the build pipeline itself reads. Traits are free to publish
// additional keys for their own subtrees.
const (
	// OptContainerType names the kind of container the current element is
	// nested in. Layout-parameter traits match on it.
	OptContainerType = "container-type"

	// OptIDHolder references the nearest ancestor widget that collects
	// descendant ids. Its value should satisfy [IDRegistry].
	OptIDHolder = "id-holder"
)

// Options is the context a parent element passes down to its subtree.
// It is treated as immutable: every edit goes through With or Clone, so a
// node's changes are visible to its own children and never to its siblings.
type Options map[string]any

// Clone returns a shallow copy, never nil.
func (o Options) Clone() Options {
	out := make(Options, len(o)+1)
	for k, v := range o {
		out[k] = v
	}
	return out
}

// With returns a copy with key set to value. The receiver is unchanged.
func (o Options) With(key string, value any) Options {
	out := o.Clone()
	out[key] = value
	return out
}

// ContainerType returns the container-type key, or "" when unset.
func (o Options) ContainerType() string {
	s, _ := o[OptContainerType].(string)
	return s
}

// WithContainerType returns a copy advertising the given container keyword.
func (o Options) WithContainerType(keyword string) Options {
	return o.With(OptContainerType, keyword)
}

// IDHolder returns the id-holder widget, or nil when no ancestor publishes
// one.
func (o Options) IDHolder() any {
	return o[OptIDHolder]
}

// WithIDHolder returns a copy whose subtree files ids with holder.
func (o Options) WithIDHolder(holder any) Options {
	return o.With(OptIDHolder, holder)
}

// IDRegistry is satisfied by widgets that can act as an id-holder: a
// registry of descendant widgets keyed by their declared ids.
type IDRegistry interface {
	// RegisterID files a built widget under an id declared in its
	// attributes. Later registrations overwrite earlier ones.
	RegisterID(id string, widget any)

	// WidgetByID returns the widget filed under id, if any.
	WidgetByID(id string) (any, bool)
}
