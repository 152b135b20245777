package cfg

import (
	"fmt"
	"sort"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/greibach"
)

// === Production sets =======================================================

// bodyComparator adapts greibach.Body.Compare to gods' comparator contract.
func bodyComparator(a, b interface{}) int {
	return a.(greibach.Body).Compare(b.(greibach.Body))
}

// Productions is the set of production bodies of one variable. Bodies are
// structurally deduplicated. Iteration follows the canonical body order.
type Productions struct {
	set *treeset.Set
}

// NewProductions creates an empty production set.
func NewProductions() *Productions {
	return &Productions{set: treeset.NewWith(bodyComparator)}
}

// Add inserts a body. Returns true if the body was not yet present.
func (p *Productions) Add(b greibach.Body) bool {
	if p.set.Contains(b) {
		return false
	}
	p.set.Add(b)
	return true
}

// Remove deletes a body, if present.
func (p *Productions) Remove(b greibach.Body) {
	p.set.Remove(b)
}

// Contains checks for structural membership.
func (p *Productions) Contains(b greibach.Body) bool {
	return p.set.Contains(b)
}

// Size returns the number of (distinct) bodies.
func (p *Productions) Size() int {
	return p.set.Size()
}

// Empty is true for a variable deriving nothing.
func (p *Productions) Empty() bool {
	return p.set.Empty()
}

// Each walks all bodies in canonical order.
func (p *Productions) Each(f func(b greibach.Body)) {
	it := p.set.Iterator()
	for it.Next() {
		f(it.Value().(greibach.Body))
	}
}

// Bodies returns all bodies in canonical order.
func (p *Productions) Bodies() []greibach.Body {
	bodies := make([]greibach.Body, 0, p.set.Size())
	p.Each(func(b greibach.Body) {
		bodies = append(bodies, b)
	})
	return bodies
}

// Copy clones the set. Bodies are values and shared.
func (p *Productions) Copy() *Productions {
	c := NewProductions()
	p.Each(func(b greibach.Body) {
		c.set.Add(b)
	})
	return c
}

// Equals is structural set equality.
func (p *Productions) Equals(other *Productions) bool {
	if p.Size() != other.Size() {
		return false
	}
	eq := true
	p.Each(func(b greibach.Body) {
		if !other.Contains(b) {
			eq = false
		}
	})
	return eq
}

func (p *Productions) String() string {
	var sb strings.Builder
	first := true
	p.Each(func(b greibach.Body) {
		if !first {
			sb.WriteString(" | ")
		}
		first = false
		sb.WriteString(b.String())
	})
	return sb.String()
}

// === Grammar ===============================================================

// Grammar maps variables to their production sets. Every key has a
// variable kind (original or helper). The GNF engine only ever inserts
// new variable entries or rewrites a variable's set; variables are never
// deleted, and an empty production set is a legitimate state, meaning
// "derives nothing".
type Grammar struct {
	name  string
	start greibach.Symbol
	prods map[greibach.Symbol]*Productions
}

// NewGrammar creates an empty grammar. Most clients will prefer a
// GrammarBuilder or the loader in package syntax.
func NewGrammar(name string) *Grammar {
	return &Grammar{
		name:  name,
		prods: make(map[greibach.Symbol]*Productions),
	}
}

// Name returns the grammar's name.
func (g *Grammar) Name() string {
	return g.name
}

// Start returns the start variable. The builder sets it to the head of
// the first rule, unless overridden.
func (g *Grammar) Start() greibach.Symbol {
	return g.start
}

// SetStart declares the start variable.
func (g *Grammar) SetStart(v greibach.Symbol) error {
	if !v.IsVariable() {
		return fmt.Errorf("%w: %s is a %s", ErrNotAVariable, v.Name, v.Kind)
	}
	g.start = v
	return nil
}

// Declare ensures an entry for a variable, possibly with an empty
// production set.
func (g *Grammar) Declare(v greibach.Symbol) error {
	if !v.IsVariable() {
		return fmt.Errorf("%w: %s is a %s", ErrNotAVariable, v.Name, v.Kind)
	}
	if _, ok := g.prods[v]; !ok {
		g.prods[v] = NewProductions()
	}
	return nil
}

// Add inserts a production body for a variable, declaring the variable
// if necessary.
func (g *Grammar) Add(v greibach.Symbol, b greibach.Body) error {
	if err := g.Declare(v); err != nil {
		return err
	}
	g.prods[v].Add(b)
	return nil
}

// Productions returns the production set of a variable, or nil if the
// variable has no entry.
func (g *Grammar) Productions(v greibach.Symbol) *Productions {
	return g.prods[v]
}

// SetProductions replaces a variable's production set wholesale.
func (g *Grammar) SetProductions(v greibach.Symbol, p *Productions) error {
	if !v.IsVariable() {
		return fmt.Errorf("%w: %s is a %s", ErrNotAVariable, v.Name, v.Kind)
	}
	g.prods[v] = p
	return nil
}

// Has checks whether a variable has an entry.
func (g *Grammar) Has(v greibach.Symbol) bool {
	_, ok := g.prods[v]
	return ok
}

// Size returns the number of variable entries.
func (g *Grammar) Size() int {
	return len(g.prods)
}

// Variables returns all entries: original variables ascending by order,
// then helpers ascending by serial.
func (g *Grammar) Variables() []greibach.Symbol {
	vars := make([]greibach.Symbol, 0, len(g.prods))
	for v := range g.prods {
		vars = append(vars, v)
	}
	sort.Slice(vars, func(i, j int) bool {
		a, b := vars[i], vars[j]
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return a.Name < b.Name
	})
	return vars
}

// Helpers returns the helper entries, ascending by serial.
func (g *Grammar) Helpers() []greibach.Symbol {
	var hs []greibach.Symbol
	for _, v := range g.Variables() {
		if v.Kind == greibach.Helper {
			hs = append(hs, v)
		}
	}
	return hs
}

// Terminals returns all terminals appearing in any body, in symbol order.
func (g *Grammar) Terminals() []greibach.Symbol {
	set := treeset.NewWith(func(a, b interface{}) int {
		return a.(greibach.Symbol).Compare(b.(greibach.Symbol))
	})
	for _, p := range g.prods {
		p.Each(func(b greibach.Body) {
			for _, s := range b {
				if s.IsTerminal() {
					set.Add(s)
				}
			}
		})
	}
	ts := make([]greibach.Symbol, 0, set.Size())
	it := set.Iterator()
	for it.Next() {
		ts = append(ts, it.Value().(greibach.Symbol))
	}
	return ts
}

// Clone deep-copies the grammar.
func (g *Grammar) Clone() *Grammar {
	c := NewGrammar(g.name)
	c.start = g.start
	for v, p := range g.prods {
		c.prods[v] = p.Copy()
	}
	return c
}

// RuleStrings renders the grammar one variable per line, in variable
// order: "A ::= a B | b". The rendering is a pure projection, intended
// for diagnostics and snapshots.
func (g *Grammar) RuleStrings() []string {
	vars := g.Variables()
	lines := make([]string, 0, len(vars))
	for _, v := range vars {
		p := g.prods[v]
		if p.Empty() {
			lines = append(lines, fmt.Sprintf("%s ::= ∅", v.Name))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s ::= %s", v.Name, p))
	}
	return lines
}

func (g *Grammar) String() string {
	return strings.Join(g.RuleStrings(), "\n")
}

// Dump is a debugging helper, tracing the grammar rule by rule.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %s ----------", g.name)
	for _, line := range g.RuleStrings() {
		tracer().Debugf("%s", line)
	}
	tracer().Debugf("-------------------------")
}
