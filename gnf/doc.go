/*
Package gnf constructs Greibach Normal Form grammars.

Given a context-free grammar whose variables carry a fixed total order,
the engine rewrites it in place into an equivalent grammar in which every
production body begins with exactly one terminal, followed by zero or
more variables. The construction is the classic four-phase rewrite:

1. Compute the variable ordering A₁ … Aₘ.

2. For each Aᵢ in increasing order, forward-substitute every Aⱼ (j < i)
out of leading positions, then eliminate Aᵢ's immediate left recursion by
introducing a fresh helper variable.

3. Back-substitute the original variables in decreasing order, until
every body leads with a terminal.

4. Back-substitute the helper variables.

The engine is a single-threaded, synchronous, purely CPU-bound in-place
rewrite; an Engine value holds no shared mutable state beyond its helper
counter, diagnostics and snapshots, so distinct Engine values may run
concurrently on independent grammars.

Grammars with ε-productions are out of scope, as are mutually
left-recursive cycles beyond the ordering-based scheme above.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gnf

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'greibach.gnf'.
func tracer() tracing.Trace {
	return tracing.Select("greibach.gnf")
}
