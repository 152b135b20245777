package cfg

import (
	"github.com/npillmayer/greibach"
)

// Shape validators for the two classic normal forms. These are plain
// pattern checks on rule shapes; the actual GNF construction lives in
// package gnf.

// IsGNF reports whether the grammar is in Greibach Normal Form: every
// body is a single terminal followed by zero or more variables.
func IsGNF(g *Grammar) bool {
	ok := true
	for _, v := range g.Variables() {
		g.Productions(v).Each(func(b greibach.Body) {
			if b.IsEmpty() || !b.Head().IsTerminal() {
				ok = false
				return
			}
			for _, s := range b.Tail() {
				if !s.IsVariable() {
					ok = false
					return
				}
			}
		})
	}
	return ok
}

// IsCNF reports whether the grammar is in Chomsky Normal Form: every
// body is either a single terminal or exactly two variables.
func IsCNF(g *Grammar) bool {
	ok := true
	for _, v := range g.Variables() {
		g.Productions(v).Each(func(b greibach.Body) {
			switch len(b) {
			case 1:
				if !b[0].IsTerminal() {
					ok = false
				}
			case 2:
				if !b[0].IsVariable() || !b[1].IsVariable() {
					ok = false
				}
			default:
				ok = false
			}
		})
	}
	return ok
}
