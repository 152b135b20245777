/*
Package greibach is a toolbox for bringing context-free grammars into
Greibach Normal Form (GNF).

A grammar is in GNF if every production body starts with exactly one
terminal symbol, followed by zero or more variables. Package structure is
as follows:

■ cfg: Package cfg holds the grammar store, a grammar builder, variable
orderings, shape validators for GNF and CNF, and a bounded derivation
enumerator.

■ gnf: Package gnf implements the construction engine, a four-phase
symbolic rewrite: variable ordering, forward substitution, immediate
left-recursion elimination and back substitution.

■ syntax: Package syntax reads a small textual rule notation, where
uppercase letters denote variables and lowercase letters denote terminals.

The base package contains the symbol model, which is used throughout all
the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package greibach
