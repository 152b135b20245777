package greibach

import (
	"strings"
)

// --- Symbols ---------------------------------------------------------------

// Kind is the category of a grammar symbol. The alphabet is disjoint by
// construction: a terminal and a variable of the same name are different
// symbols. Helper is the tag for synthetic variables introduced during
// left-recursion elimination; helpers live outside the ordering of the
// original variables.
type Kind int8

// The three symbol categories.
const (
	Terminal Kind = iota
	Variable
	Helper
)

func (k Kind) String() string {
	switch k {
	case Terminal:
		return "terminal"
	case Variable:
		return "variable"
	case Helper:
		return "helper"
	}
	return "<illegal kind>"
}

// Symbol is an entry of a grammar's alphabet. Symbols are pure values:
// two symbols with equal kind, name and order denote the same symbol.
//
// Terminals carry no meaningful order. Variables carry a unique order
// value, defining the sequence A₁ … Aₘ which the GNF construction relies
// on. Helpers carry the serial number of the engine that minted them.
type Symbol struct {
	Name  string
	Kind  Kind
	Order int
}

// T creates a terminal symbol.
func T(name string) Symbol {
	return Symbol{Name: name, Kind: Terminal}
}

// V creates a variable symbol with an ordering index.
func V(name string, order int) Symbol {
	return Symbol{Name: name, Kind: Variable, Order: order}
}

// H creates a helper variable with a serial number. Clients normally do
// not create helpers themselves; the GNF engine does.
func H(name string, serial int) Symbol {
	return Symbol{Name: name, Kind: Helper, Order: serial}
}

// IsTerminal is true for symbols of kind Terminal.
func (s Symbol) IsTerminal() bool {
	return s.Kind == Terminal
}

// IsVariable is true for original variables and for helpers.
func (s Symbol) IsVariable() bool {
	return s.Kind == Variable || s.Kind == Helper
}

// Compare establishes a total order over symbols: kind first, then name,
// then order. It is suitable as a comparator for sets and maps.
func (s Symbol) Compare(other Symbol) int {
	if s.Kind != other.Kind {
		if s.Kind < other.Kind {
			return -1
		}
		return 1
	}
	if c := strings.Compare(s.Name, other.Name); c != 0 {
		return c
	}
	switch {
	case s.Order < other.Order:
		return -1
	case s.Order > other.Order:
		return 1
	}
	return 0
}

func (s Symbol) String() string {
	return s.Name
}

// --- Production bodies -----------------------------------------------------

// Body is the right-hand side of a production: an ordered sequence of
// symbols. Empty bodies (ε) are not supported by this module, except that
// a variable may own an empty *set* of bodies, meaning it derives nothing.
type Body []Symbol

// IsEmpty is true for ε-bodies.
func (b Body) IsEmpty() bool {
	return len(b) == 0
}

// Head returns the leading symbol of a body, or a zero symbol for ε.
func (b Body) Head() Symbol {
	if len(b) == 0 {
		return Symbol{}
	}
	return b[0]
}

// Tail returns the body with its leading symbol stripped.
func (b Body) Tail() Body {
	if len(b) == 0 {
		return nil
	}
	return b[1:]
}

// LeadsWith is true if the body's leading symbol equals s.
func (b Body) LeadsWith(s Symbol) bool {
	return len(b) > 0 && b[0] == s
}

// Compare orders bodies lexicographically by symbol, shorter bodies first
// on a shared prefix. The order is canonical but carries no semantic
// weight; it exists for deterministic reporting.
func (b Body) Compare(other Body) int {
	n := len(b)
	if len(other) < n {
		n = len(other)
	}
	for i := 0; i < n; i++ {
		if c := b[i].Compare(other[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(b) < len(other):
		return -1
	case len(b) > len(other):
		return 1
	}
	return 0
}

// Equals is structural equality of bodies.
func (b Body) Equals(other Body) bool {
	return b.Compare(other) == 0
}

func (b Body) String() string {
	if len(b) == 0 {
		return "ε"
	}
	var sb strings.Builder
	for i, s := range b {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(s.Name)
	}
	return sb.String()
}

// Concat builds a fresh body prefix ++ suffix. The arguments are not
// aliased by the result.
func Concat(prefix, suffix Body) Body {
	r := make(Body, 0, len(prefix)+len(suffix))
	r = append(r, prefix...)
	r = append(r, suffix...)
	return r
}
