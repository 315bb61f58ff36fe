// Package errors provides structured error handling for the weft build
// pipeline. Every failure mode of a build is categorized by an [ErrorKind],
// so callers can distinguish a registry miss from a reflection miss without
// string matching.
//
// Nothing in the pipeline recovers from these errors: a failed node aborts
// its whole subtree and the error travels, wrapped with node context but
// with the cause preserved, to whoever invoked the build.
package errors

import "fmt"

// ErrorKind identifies the category of a build error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindNotRegistered indicates an element keyword or trait id with no
	// registry entry.
	KindNotRegistered
	// KindMalformedNode indicates a description node violating the
	// [keyword, attributes, children...] shape.
	KindMalformedNode
	// KindUnresolvedSymbol indicates a symbolic value with no table binding
	// and no derivable constant.
	KindUnresolvedSymbol
	// KindNoConstructor indicates constructor resolution found no overload
	// matching the argument types.
	KindNoConstructor
	// KindNoSetter indicates setter resolution found no single-parameter
	// setter matching the attribute name and value type.
	KindNoSetter
	// KindAmbiguousSetter indicates setter resolution matched more than one
	// registered setter.
	KindAmbiguousSetter
	// KindCyclicInheritance indicates a registration that would close an
	// inheritance cycle.
	KindCyclicInheritance
	// KindNotContainer indicates a child append on a widget with no
	// child-append capability.
	KindNotContainer
	// KindDepthExceeded indicates tree recursion past the configured guard
	// depth.
	KindDepthExceeded
	// KindBadValue indicates a raw attribute value the resolver cannot
	// interpret, such as a dimension with an unknown unit.
	KindBadValue
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotRegistered:
		return "not registered"
	case KindMalformedNode:
		return "malformed node"
	case KindUnresolvedSymbol:
		return "unresolved symbol"
	case KindNoConstructor:
		return "no matching constructor"
	case KindNoSetter:
		return "no matching setter"
	case KindAmbiguousSetter:
		return "ambiguous setter"
	case KindCyclicInheritance:
		return "cyclic inheritance"
	case KindNotContainer:
		return "not a container"
	case KindDepthExceeded:
		return "depth exceeded"
	case KindBadValue:
		return "bad value"
	default:
		return "unknown"
	}
}

// Error is a structured build error.
type Error struct {
	// Op is the operation that failed (e.g. "registry.ResolveClass").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Keyword is the element keyword in whose scope the error occurred,
	// if any.
	Keyword string
	// Attribute is the attribute being applied when the error occurred,
	// if any.
	Attribute string
	// Err is the underlying error, if any.
	Err error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s [%s]", e.Op, e.Kind)
	if e.Keyword != "" {
		msg += fmt.Sprintf(" keyword=%s", e.Keyword)
	}
	if e.Attribute != "" {
		msg += fmt.Sprintf(" attribute=%s", e.Attribute)
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New builds an Error from an operation, a kind, and a message formatted in
// the fmt style.
func New(op string, kind ErrorKind, format string, args ...any) *Error {
	return &Error{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

// Wrap attaches operation and kind context to an existing error. A nil err
// returns nil.
func Wrap(op string, kind ErrorKind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Kind: kind, Err: err}
}

// KindOf walks the Unwrap chain and returns the kind of the outermost
// *Error, or KindUnknown when none is found.
func KindOf(err error) ErrorKind {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return KindUnknown
		}
		err = u.Unwrap()
	}
	return KindUnknown
}

// IsKind reports whether the error or anything it wraps carries the kind.
func IsKind(err error, kind ErrorKind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Kind == kind {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
