package core

// Symbol is a symbolic attribute value: the name of a constant to be
// resolved against an element type's value table, or failing that, against
// the constants of a lookup type. Markup front-ends spell symbols with a
// leading colon (`:align-left` parses to Symbol("align-left")).
type Symbol string

// String returns the symbol's name without markup decoration.
func (s Symbol) String() string {
	return string(s)
}
