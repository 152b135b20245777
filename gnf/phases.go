package gnf

import (
	"github.com/npillmayer/greibach"
	"github.com/npillmayer/greibach/cfg"
)

// The three rewrite phases. All of them follow the same two-phase scan
// discipline: collect removals and insertions over a stable view of a
// production set first, then apply them. The scanned set is never mutated
// while being iterated, which keeps the "substitution sources are already
// fully reduced" precondition auditable.

// === Forward substitution ==================================================

// forwardSubstitute removes every body of ai leading with aj, inserting
// β ++ tail for every β in aj's current production set. Substituting the
// complete one-step expansion set of aj preserves ai's language exactly.
// aj stems from the ordering, so it always has an entry; an empty entry
// legitimately contributes nothing.
func (e *Engine) forwardSubstitute(g *cfg.Grammar, ai, aj greibach.Symbol) error {
	prods := g.Productions(ai)
	var remove, insert []greibach.Body
	src := g.Productions(aj)
	prods.Each(func(b greibach.Body) {
		if !b.LeadsWith(aj) {
			return
		}
		remove = append(remove, b)
		tail := b.Tail()
		src.Each(func(beta greibach.Body) {
			insert = append(insert, greibach.Concat(beta, tail))
		})
	})
	if len(remove) > 0 {
		tracer().Debugf("substituting %s into %s: -%d +%d bodies",
			aj.Name, ai.Name, len(remove), len(insert))
	}
	apply(prods, remove, insert)
	return nil
}

// dropDanglingLeading enforces the dangling-reference policy during the
// forward stage: bodies of v leading with a variable that has no grammar
// entry are removed with no replacement.
func (e *Engine) dropDanglingLeading(g *cfg.Grammar, v greibach.Symbol, stage Stage) error {
	prods := g.Productions(v)
	var remove []greibach.Body
	var derr error
	prods.Each(func(b greibach.Body) {
		if derr != nil {
			return
		}
		h := b.Head()
		if !h.IsVariable() || g.Has(h) {
			return
		}
		if err := e.dropBody(v, b, h, stage); err != nil {
			derr = err
			return
		}
		remove = append(remove, b)
	})
	if derr != nil {
		return derr
	}
	apply(prods, remove, nil)
	return nil
}

// === Left-recursion elimination ============================================

// eliminateLeftRecursion removes immediate left recursion of a. Bodies
// are partitioned into recursive ones (leading with a itself) and betas.
// With a fresh helper Z, the rewrite
//
//    a → β₁ | … | βₙ | β₁ Z | … | βₙ Z
//    Z → α₁ | … | αₖ | α₁ Z | … | αₖ Z
//
// encodes a ⇒* β α… with any number of α repetitions, which is exactly
// the language a derived through its left recursion. The αs contain only
// pre-existing symbols, so no Z body leads with Z.
func (e *Engine) eliminateLeftRecursion(g *cfg.Grammar, a greibach.Symbol) {
	prods := g.Productions(a)
	var alphas, betas []greibach.Body
	prods.Each(func(b greibach.Body) {
		if b.LeadsWith(a) {
			alphas = append(alphas, b.Tail())
		} else {
			betas = append(betas, b)
		}
	})
	if len(alphas) == 0 {
		return // a is left-recursion-free, leave untouched
	}
	z := e.newHelper()
	tracer().Debugf("eliminating left recursion of %s, helper %s", a.Name, z.Name)
	rewritten := cfg.NewProductions()
	for _, beta := range betas {
		rewritten.Add(beta)
		rewritten.Add(greibach.Concat(beta, greibach.Body{z}))
	}
	zp := cfg.NewProductions()
	for _, alpha := range alphas {
		zp.Add(alpha)
		zp.Add(greibach.Concat(alpha, greibach.Body{z}))
	}
	g.SetProductions(a, rewritten)
	g.SetProductions(z, zp)
}

// === Back substitution =====================================================

// backSubstitute expands variable-leading bodies of v until every body
// leads with a terminal. The processing order of Normalize guarantees
// that every leading variable encountered here is already fully reduced,
// so the loop terminates; bodies leading with an absent variable fall
// under the dangling-reference policy.
func (e *Engine) backSubstitute(g *cfg.Grammar, v greibach.Symbol, stage Stage) error {
	prods := g.Productions(v)
	for round := 1; ; round++ {
		var remove, insert []greibach.Body
		var derr error
		prods.Each(func(b greibach.Body) {
			if derr != nil {
				return
			}
			h := b.Head()
			if !h.IsVariable() {
				return
			}
			src := g.Productions(h)
			if src == nil {
				if err := e.dropBody(v, b, h, stage); err != nil {
					derr = err
					return
				}
				remove = append(remove, b)
				return
			}
			remove = append(remove, b)
			tail := b.Tail()
			src.Each(func(rho greibach.Body) {
				insert = append(insert, greibach.Concat(rho, tail))
			})
		})
		if derr != nil {
			return derr
		}
		if len(remove) == 0 {
			return nil
		}
		tracer().Debugf("back substitution of %s, round %d: -%d +%d bodies",
			v.Name, round, len(remove), len(insert))
		apply(prods, remove, insert)
	}
}

// apply commits a two-phase scan: removals first, then insertions.
func apply(prods *cfg.Productions, remove, insert []greibach.Body) {
	for _, b := range remove {
		prods.Remove(b)
	}
	for _, b := range insert {
		prods.Add(b)
	}
}
