package cfg

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/greibach"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBuilder1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "greibach.cfg")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("A1").N("A2").N("A3").End()
	b.LHS("A2").N("A3").N("A1").End()
	b.LHS("A2").T("b").End()
	b.LHS("A3").N("A1").N("A2").End()
	b.LHS("A3").T("a").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != 3 {
		t.Errorf("expected 3 variables, got %d", g.Size())
	}
	if g.Start().Name != "A1" {
		t.Errorf("expected start variable A1, got %s", g.Start().Name)
	}
	ord, err := g.Ordering()
	if err != nil {
		t.Fatal(err)
	}
	if len(ord) != 3 || ord[0].Name != "A1" || ord[1].Name != "A2" || ord[2].Name != "A3" {
		t.Errorf("expected ordering A1 A2 A3, got %v", ord)
	}
}

func TestBuilderExplicitOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "greibach.cfg")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.Var("B", 1)
	b.Var("A", 2)
	b.LHS("A").T("a").N("B").End()
	b.LHS("B").T("b").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	ord, err := g.Ordering()
	if err != nil {
		t.Fatal(err)
	}
	if ord[0].Name != "B" || ord[1].Name != "A" {
		t.Errorf("expected declared ordering B A, got %v", ord)
	}
	if g.Start().Name != "A" {
		t.Errorf("expected start variable A (first rule head), got %s", g.Start().Name)
	}
	// redeclaration with a conflicting index is an error
	b = NewGrammarBuilder("G2")
	b.Var("A", 1).Var("A", 2)
	b.LHS("A").T("a").End()
	if _, err := b.Grammar(); err == nil {
		t.Errorf("expected conflicting redeclaration of A to fail")
	}
}

func TestProductionsDedup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "greibach.cfg")
	defer teardown()
	//
	p := NewProductions()
	body := greibach.Body{greibach.T("a"), greibach.V("B", 2)}
	if !p.Add(body) {
		t.Errorf("expected first Add to report insertion")
	}
	if p.Add(greibach.Body{greibach.T("a"), greibach.V("B", 2)}) {
		t.Errorf("expected structural duplicate to be rejected")
	}
	p.Add(greibach.Body{greibach.T("a")})
	if p.Size() != 2 {
		t.Errorf("expected 2 distinct bodies, got %d", p.Size())
	}
	bodies := p.Bodies()
	if !bodies[0].Equals(greibach.Body{greibach.T("a")}) {
		t.Errorf("expected canonical order to put 'a' first, got %v", bodies)
	}
}

func TestRuleStrings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "greibach.cfg")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("A").T("a").N("B").End()
	b.LHS("A").T("b").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	lines := g.RuleStrings()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != "A ::= a B | b" {
		t.Errorf("unexpected rendering: %q", lines[0])
	}
	if !strings.Contains(lines[1], "∅") {
		t.Errorf("expected referenced-only variable B to render as deriving nothing, got %q", lines[1])
	}
}

func TestDuplicateOrdering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "greibach.cfg")
	defer teardown()
	//
	g := NewGrammar("G")
	g.Add(greibach.V("A", 1), greibach.Body{greibach.T("a")})
	g.Add(greibach.V("B", 1), greibach.Body{greibach.T("b")})
	if _, err := g.Ordering(); !errors.Is(err, ErrDuplicateOrdering) {
		t.Errorf("expected ErrDuplicateOrdering, got %v", err)
	}
}

func TestCheckEmptyBody(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "greibach.cfg")
	defer teardown()
	//
	g := NewGrammar("G")
	g.Add(greibach.V("A", 1), greibach.Body{})
	if err := g.Check(); !errors.Is(err, ErrEmptyBody) {
		t.Errorf("expected ErrEmptyBody, got %v", err)
	}
}

func TestDangling(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "greibach.cfg")
	defer teardown()
	//
	g := NewGrammar("G")
	g.Add(greibach.V("A", 1), greibach.Body{greibach.V("B", 2), greibach.T("c")})
	missing := g.Dangling()
	if len(missing) != 1 || missing[0].Name != "B" {
		t.Errorf("expected dangling reference to B, got %v", missing)
	}
	g.Declare(greibach.V("B", 2))
	if missing = g.Dangling(); len(missing) != 0 {
		t.Errorf("expected no dangling references after declaring B, got %v", missing)
	}
}

func TestClone(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "greibach.cfg")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("A").T("a").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	c := g.Clone()
	c.Add(greibach.V("A", 1), greibach.Body{greibach.T("b")})
	if g.Productions(greibach.V("A", 1)).Size() != 1 {
		t.Errorf("expected clone mutation to leave the original untouched")
	}
	if c.Start() != g.Start() {
		t.Errorf("expected clone to keep the start variable")
	}
}
