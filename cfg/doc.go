/*
Package cfg holds an in-memory store for context-free grammars.

A grammar maps each variable to its set of production bodies. Production
sets are structurally deduplicated and kept in a canonical order, purely
for deterministic reporting. Grammars are created fully-formed, either
through a GrammarBuilder or by a loader such as package syntax, and are
then handed to the GNF engine in package gnf, which rewrites them in
place.

Besides the store, the package provides variable orderings (the A₁ … Aₘ
sequence the engine's substitution phases rely on), structural validation,
shape validators for Greibach and Chomsky Normal Form, and a bounded
derivation enumerator for checking language preservation on short strings.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cfg

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'greibach.cfg'.
func tracer() tracing.Trace {
	return tracing.Select("greibach.cfg")
}
