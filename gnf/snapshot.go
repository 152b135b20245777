package gnf

import (
	"fmt"

	"github.com/cnf/structhash"
	"github.com/npillmayer/greibach/cfg"
)

// Stage identifies the four stations of the construction pipeline, in
// execution order. Forward substitution and left-recursion elimination
// interleave per variable, so they share a single stage boundary.
type Stage int8

const (
	// StageInput is the validated grammar before any rewrite.
	StageInput Stage = iota
	// StageForward is the grammar after the ascending pass of forward
	// substitution and left-recursion elimination over all variables.
	StageForward
	// StageBackVariables is the grammar after back substitution of the
	// original variables, in descending order.
	StageBackVariables
	// StageBackHelpers is the final grammar, after back substitution of
	// the helper variables.
	StageBackHelpers
)

func (s Stage) String() string {
	switch s {
	case StageInput:
		return "input"
	case StageForward:
		return "forward substitution"
	case StageBackVariables:
		return "back substitution (variables)"
	case StageBackHelpers:
		return "back substitution (helpers)"
	}
	return "<illegal stage>"
}

// Snapshot is a rendering of the grammar at a stage boundary, for
// diagnostic purposes. It is a pure projection and not part of the
// algorithm's contract.
type Snapshot struct {
	Stage       Stage
	Rules       []string // one line per variable: "A ::= a B | b"
	Fingerprint string   // content hash over the rules
}

func (s Snapshot) String() string {
	return fmt.Sprintf("(%s | %d rules | %s)", s.Stage, len(s.Rules), s.Fingerprint)
}

// snapshot records the grammar at a stage boundary, if enabled.
func (e *Engine) snapshot(stage Stage, g *cfg.Grammar) {
	if !e.snapshots {
		return
	}
	rules := g.RuleStrings()
	hashable := struct {
		Name  string
		Rules []string
	}{Name: g.Name(), Rules: rules}
	e.stages = append(e.stages, Snapshot{
		Stage:       stage,
		Rules:       rules,
		Fingerprint: fmt.Sprintf("%x", structhash.Md5(hashable, 1)),
	})
	tracer().Debugf("snapshot %s", e.stages[len(e.stages)-1])
}
