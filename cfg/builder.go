package cfg

import (
	"fmt"

	"github.com/npillmayer/greibach"
)

// GrammarBuilder is a fluent builder for grammars. Clients add rules,
// consisting of variables and terminals:
//
//    b := cfg.NewGrammarBuilder("G")
//    b.LHS("A1").N("A2").N("A3").End()       // A1 → A2 A3
//    b.LHS("A2").N("A3").N("A1").End()       // A2 → A3 A1
//    b.LHS("A2").T("b").End()                // A2 → b
//    g, err := b.Grammar()
//
// Variables receive their ordering index in sequence of first mention,
// unless declared explicitly with Var. Terminals and variables are
// distinguished by the builder calls, not by spelling; case-based
// classification is the business of package syntax.
type GrammarBuilder struct {
	name      string
	g         *Grammar
	vars      map[string]greibach.Symbol
	nextOrder int
	err       error
}

// NewGrammarBuilder creates a builder for a named grammar.
func NewGrammarBuilder(name string) *GrammarBuilder {
	return &GrammarBuilder{
		name:      name,
		g:         NewGrammar(name),
		vars:      make(map[string]greibach.Symbol),
		nextOrder: 1,
	}
}

// Var declares a variable with an explicit ordering index. Declaring the
// same name twice with different indexes is an error, surfaced by
// Grammar(). Uniqueness of indexes across variables is checked by
// Grammar.Ordering().
func (gb *GrammarBuilder) Var(name string, order int) *GrammarBuilder {
	if v, ok := gb.vars[name]; ok {
		if v.Order != order {
			gb.fail(fmt.Errorf("variable %s redeclared with order %d (was %d)",
				name, order, v.Order))
		}
		return gb
	}
	v := greibach.V(name, order)
	gb.vars[name] = v
	if order >= gb.nextOrder {
		gb.nextOrder = order + 1
	}
	if err := gb.g.Declare(v); err != nil {
		gb.fail(err)
	}
	return gb
}

// LHS starts a new rule for the named variable.
func (gb *GrammarBuilder) LHS(name string) *RuleBuilder {
	head := gb.intern(name)
	if gb.g.start == (greibach.Symbol{}) {
		gb.g.start = head
	}
	return &RuleBuilder{gb: gb, head: head}
}

// Grammar finishes building and returns the grammar. Rules with empty
// bodies are rejected; ε-productions are out of scope for this module.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if gb.err != nil {
		return nil, gb.err
	}
	if err := gb.g.Check(); err != nil {
		return nil, err
	}
	gb.g.Dump()
	return gb.g, nil
}

func (gb *GrammarBuilder) intern(name string) greibach.Symbol {
	if v, ok := gb.vars[name]; ok {
		return v
	}
	v := greibach.V(name, gb.nextOrder)
	gb.nextOrder++
	gb.vars[name] = v
	if err := gb.g.Declare(v); err != nil {
		gb.fail(err)
	}
	return v
}

func (gb *GrammarBuilder) fail(err error) {
	if gb.err == nil { // keep the first error
		gb.err = err
	}
}

// RuleBuilder accumulates the body of one rule.
type RuleBuilder struct {
	gb   *GrammarBuilder
	head greibach.Symbol
	body greibach.Body
}

// N appends a variable to the rule's body.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.body = append(rb.body, rb.gb.intern(name))
	return rb
}

// T appends a terminal to the rule's body.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	rb.body = append(rb.body, greibach.T(name))
	return rb
}

// End finishes the rule and hands back the grammar builder.
func (rb *RuleBuilder) End() *GrammarBuilder {
	if rb.body.IsEmpty() {
		rb.gb.fail(fmt.Errorf("%w: rule for %s", ErrEmptyBody, rb.head.Name))
		return rb.gb
	}
	if err := rb.gb.g.Add(rb.head, rb.body); err != nil {
		rb.gb.fail(err)
	}
	return rb.gb
}
