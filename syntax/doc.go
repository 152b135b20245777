/*
Package syntax reads a small textual notation for context-free grammars.

One rule per line, alternatives separated by '|':

    A1 -> A2 A3
    A2 -> A3 A1 | b
    A3 -> A1 A2 | a

Uppercase names denote variables (an uppercase letter, optionally
followed by digits), lowercase letters denote terminals. Whitespace
between symbols is optional, so "aB" and "a B" read the same. '#' starts
a comment running to the end of the line. Variables receive their
ordering index in sequence of first mention.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package syntax

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'greibach.syntax'.
func tracer() tracing.Trace {
	return tracing.Select("greibach.syntax")
}
