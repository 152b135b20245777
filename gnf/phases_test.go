package gnf

import (
	"testing"

	"github.com/npillmayer/greibach"
	"github.com/npillmayer/greibach/cfg"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLeftRecursionElimination(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "greibach.gnf")
	defer teardown()
	//
	// A → A a | A b | c   must become   A → c | c Z,  Z → a | a Z | b | b Z
	b := cfg.NewGrammarBuilder("G")
	b.LHS("A").N("A").T("a").End()
	b.LHS("A").N("A").T("b").End()
	b.LHS("A").T("c").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	engine := NewEngine()
	if err := engine.Normalize(g); err != nil {
		t.Fatal(err)
	}
	if len(engine.Helpers()) != 1 {
		t.Fatalf("expected exactly one helper, got %v", engine.Helpers())
	}
	z := engine.Helpers()[0]
	a, c := greibach.T("a"), greibach.T("c")
	bb := greibach.T("b")
	expectedA := cfg.NewProductions()
	expectedA.Add(greibach.Body{c})
	expectedA.Add(greibach.Body{c, z})
	expectedZ := cfg.NewProductions()
	expectedZ.Add(greibach.Body{a})
	expectedZ.Add(greibach.Body{a, z})
	expectedZ.Add(greibach.Body{bb})
	expectedZ.Add(greibach.Body{bb, z})
	if !g.Productions(greibach.V("A", 1)).Equals(expectedA) {
		t.Errorf("unexpected productions for A:\n%s", g)
	}
	if !g.Productions(z).Equals(expectedZ) {
		t.Errorf("unexpected productions for %s:\n%s", z.Name, g)
	}
}

func TestLeftRecursionEliminationNoop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "greibach.gnf")
	defer teardown()
	//
	b := cfg.NewGrammarBuilder("G")
	b.LHS("A").T("c").N("A").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	engine := NewEngine()
	a := greibach.V("A", 1)
	before := g.Productions(a).Copy()
	engine.eliminateLeftRecursion(g, a)
	if len(engine.Helpers()) != 0 {
		t.Errorf("right recursion is not left recursion; no helper expected")
	}
	if !g.Productions(a).Equals(before) {
		t.Errorf("expected a left-recursion-free variable to stay untouched")
	}
}

// ascend runs the first half of the pipeline: forward substitution with
// interleaved left-recursion elimination, in increasing variable order.
func ascend(t *testing.T, e *Engine, g *cfg.Grammar) cfg.Ordering {
	ord, err := g.Ordering()
	if err != nil {
		t.Fatal(err)
	}
	for i, ai := range ord {
		for j := 0; j < i; j++ {
			if err := e.forwardSubstitute(g, ai, ord[j]); err != nil {
				t.Fatal(err)
			}
		}
		if err := e.dropDanglingLeading(g, ai, StageForward); err != nil {
			t.Fatal(err)
		}
		e.eliminateLeftRecursion(g, ai)
	}
	return ord
}

func TestForwardSubstitutionMonotonicity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "greibach.gnf")
	defer teardown()
	//
	// After the ascending pass, no body of Aᵢ may lead with Aⱼ for j ≤ i.
	b := cfg.NewGrammarBuilder("worked")
	b.LHS("A1").N("A2").N("A3").End()
	b.LHS("A2").N("A3").N("A1").End()
	b.LHS("A2").T("b").End()
	b.LHS("A3").N("A1").N("A2").End()
	b.LHS("A3").T("a").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	engine := NewEngine()
	ord := ascend(t, engine, g)
	for i, ai := range ord {
		g.Productions(ai).Each(func(body greibach.Body) {
			h := body.Head()
			if h.Kind != greibach.Variable {
				return
			}
			if k := ord.Index(h); k >= 0 && k <= i {
				t.Errorf("%s still leads with %s after the ascending pass: %s",
					ai.Name, h.Name, body)
			}
		})
	}
}

func TestForwardSubstitutionInlinesCurrentSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "greibach.gnf")
	defer teardown()
	//
	// B → A c with A → a | b must become B → a c | b c.
	b := cfg.NewGrammarBuilder("G")
	b.LHS("A").T("a").End()
	b.LHS("A").T("b").End()
	b.LHS("B").N("A").T("c").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	a, bv := greibach.V("A", 1), greibach.V("B", 2)
	engine := NewEngine()
	if err := engine.forwardSubstitute(g, bv, a); err != nil {
		t.Fatal(err)
	}
	expected := cfg.NewProductions()
	expected.Add(greibach.Body{greibach.T("a"), greibach.T("c")})
	expected.Add(greibach.Body{greibach.T("b"), greibach.T("c")})
	if !g.Productions(bv).Equals(expected) {
		t.Errorf("unexpected productions for B:\n%s", g)
	}
}

func TestBackSubstitutionExpandsToTerminalLeading(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "greibach.gnf")
	defer teardown()
	//
	// A1 → A2 b with A2 → a reduces in one expansion round.
	b := cfg.NewGrammarBuilder("G")
	b.LHS("A1").N("A2").T("b").End()
	b.LHS("A2").T("a").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	a1 := greibach.V("A1", 1)
	engine := NewEngine()
	if err := engine.backSubstitute(g, a1, StageBackVariables); err != nil {
		t.Fatal(err)
	}
	expected := cfg.NewProductions()
	expected.Add(greibach.Body{greibach.T("a"), greibach.T("b")})
	if !g.Productions(a1).Equals(expected) {
		t.Errorf("unexpected productions for A1:\n%s", g)
	}
}
