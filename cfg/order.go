package cfg

import (
	"errors"
	"fmt"
	"sort"

	"github.com/npillmayer/greibach"
)

// Structural error conditions, detected before the engine runs. None of
// these are recovered silently.
var (
	// ErrDuplicateOrdering flags two variables sharing an ordering index.
	ErrDuplicateOrdering = errors.New("duplicate variable ordering index")
	// ErrEmptyBody flags an ε-production, which is out of scope.
	ErrEmptyBody = errors.New("empty production body")
	// ErrNotAVariable flags a production head of terminal kind.
	ErrNotAVariable = errors.New("not a variable")
)

// Ordering is the sequence A₁ … Aₘ of a grammar's original variables,
// ascending by ordering index. It is computed once per engine run and
// never mutated; helper variables are not part of it.
type Ordering []greibach.Symbol

// Index returns the position of v within the ordering, or -1.
func (ord Ordering) Index(v greibach.Symbol) int {
	for i, a := range ord {
		if a == v {
			return i
		}
	}
	return -1
}

// Ordering computes the variable ordering of the grammar. The sequence
// covers exactly the original (non-helper) variable entries. A shared
// ordering index makes the downstream construction ill-defined and is
// rejected here.
func (g *Grammar) Ordering() (Ordering, error) {
	ord := make(Ordering, 0, len(g.prods))
	for v := range g.prods {
		if v.Kind == greibach.Variable {
			ord = append(ord, v)
		}
	}
	sort.Slice(ord, func(i, j int) bool {
		if ord[i].Order != ord[j].Order {
			return ord[i].Order < ord[j].Order
		}
		return ord[i].Name < ord[j].Name
	})
	for i := 1; i < len(ord); i++ {
		if ord[i].Order == ord[i-1].Order {
			return nil, fmt.Errorf("%w: %s and %s share index %d",
				ErrDuplicateOrdering, ord[i-1].Name, ord[i].Name, ord[i].Order)
		}
	}
	return ord, nil
}

// Check validates the structural invariants of the grammar store: every
// entry key is a variable, and no body is empty. Referential completeness
// is a separate concern, see Dangling.
func (g *Grammar) Check() error {
	for v, p := range g.prods {
		if !v.IsVariable() {
			return fmt.Errorf("%w: grammar entry %s is a %s", ErrNotAVariable, v.Name, v.Kind)
		}
		var err error
		p.Each(func(b greibach.Body) {
			if b.IsEmpty() && err == nil {
				err = fmt.Errorf("%w: rule for %s", ErrEmptyBody, v.Name)
			}
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// Dangling returns all variables referenced in some body but lacking a
// grammar entry, in symbol order. A complete grammar returns an empty
// slice.
func (g *Grammar) Dangling() []greibach.Symbol {
	seen := make(map[greibach.Symbol]bool)
	var missing []greibach.Symbol
	for _, v := range g.Variables() {
		g.prods[v].Each(func(b greibach.Body) {
			for _, s := range b {
				if s.IsVariable() && !g.Has(s) && !seen[s] {
					seen[s] = true
					missing = append(missing, s)
				}
			}
		})
	}
	sort.Slice(missing, func(i, j int) bool {
		return missing[i].Compare(missing[j]) < 0
	})
	return missing
}
