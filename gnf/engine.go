package gnf

import (
	"errors"
	"fmt"

	"github.com/npillmayer/greibach"
	"github.com/npillmayer/greibach/cfg"
)

// Error conditions of an engine run. Structural problems are detected up
// front, never discovered via infinite loop.
var (
	// ErrDanglingReference flags a body leading with a variable that has
	// no grammar entry, under the error or reject policies.
	ErrDanglingReference = errors.New("dangling variable reference")
	// ErrNonTerminating flags helper-variable structures the substitution
	// phases cannot reduce (helper cycles, helper-leading originals).
	ErrNonTerminating = errors.New("input would not terminate")
	// ErrNoGrammar flags a nil grammar argument.
	ErrNoGrammar = errors.New("no grammar given")
)

// DanglingPolicy decides what happens when a production body leads with a
// variable lacking a grammar entry. The drop policy is inherited from the
// classic construction: the body is removed with no replacement, which
// silently shrinks the language. It is therefore never purely silent
// here: dropped bodies are recorded in the engine's Diagnostics.
type DanglingPolicy int8

const (
	// DanglingDrop removes the offending body and records it. Default.
	DanglingDrop DanglingPolicy = iota
	// DanglingError aborts the run when a dangling reference is hit.
	DanglingError
	// DanglingReject refuses to run on referentially incomplete grammars.
	DanglingReject
)

func (p DanglingPolicy) String() string {
	switch p {
	case DanglingDrop:
		return "drop"
	case DanglingError:
		return "error"
	case DanglingReject:
		return "reject"
	}
	return "<illegal policy>"
}

// Dropped records one body removed under the drop policy.
type Dropped struct {
	Head    greibach.Symbol // variable owning the body
	Body    greibach.Body   // the removed body
	Missing greibach.Symbol // the dangling leading variable
	Stage   Stage           // stage during which the drop happened
}

// Diagnostics collects correctness-relevant observations of a run.
type Diagnostics struct {
	Dropped []Dropped
}

// Engine performs the GNF construction. The zero value is not usable;
// create engines with NewEngine. Engines may be reused for several runs;
// diagnostics and snapshots are reset per run, while the helper counter
// keeps increasing, so helper names stay unique across runs of one
// engine.
type Engine struct {
	policy    DanglingPolicy
	snapshots bool
	serial    int // helper counter, owned by the engine, never global
	helpers   []greibach.Symbol
	diag      Diagnostics
	stages    []Snapshot
}

// Option configures an engine.
type Option func(e *Engine)

// WithDanglingPolicy selects the dangling-reference policy.
func WithDanglingPolicy(p DanglingPolicy) Option {
	return func(e *Engine) {
		e.policy = p
	}
}

// WithSnapshots lets the engine record a rendering and fingerprint of the
// grammar after each stage.
func WithSnapshots(on bool) Option {
	return func(e *Engine) {
		e.snapshots = on
	}
}

// NewEngine creates an engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Diagnostics returns the observations of the last run.
func (e *Engine) Diagnostics() Diagnostics {
	return e.diag
}

// Snapshots returns the per-stage snapshots of the last run, if enabled.
func (e *Engine) Snapshots() []Snapshot {
	return e.stages
}

// Helpers returns the helper variables minted during the last run, in
// creation order.
func (e *Engine) Helpers() []greibach.Symbol {
	return e.helpers
}

// Normalize rewrites g into Greibach Normal Form, in place. Variables are
// never deleted: a variable whose production set ends up empty stays in
// the grammar, meaning "derives nothing". On error the grammar may be
// left partially rewritten.
func (e *Engine) Normalize(g *cfg.Grammar) error {
	if g == nil {
		return ErrNoGrammar
	}
	e.diag = Diagnostics{}
	e.stages = nil
	e.helpers = nil
	if err := g.Check(); err != nil {
		return err
	}
	ord, err := g.Ordering()
	if err != nil {
		return err
	}
	if err := checkReducible(g, ord); err != nil {
		return err
	}
	if e.policy == DanglingReject {
		if missing := g.Dangling(); len(missing) > 0 {
			return fmt.Errorf("%w: no entry for %v", ErrDanglingReference, missing)
		}
	}
	e.seedSerial(g)
	tracer().Infof("normalizing grammar %s, %d variables", g.Name(), len(ord))
	e.snapshot(StageInput, g)
	for i, ai := range ord {
		for j := 0; j < i; j++ {
			if err := e.forwardSubstitute(g, ai, ord[j]); err != nil {
				return err
			}
		}
		if err := e.dropDanglingLeading(g, ai, StageForward); err != nil {
			return err
		}
		e.eliminateLeftRecursion(g, ai)
	}
	e.snapshot(StageForward, g)
	for i := len(ord) - 1; i >= 0; i-- {
		if err := e.backSubstitute(g, ord[i], StageBackVariables); err != nil {
			return err
		}
	}
	e.snapshot(StageBackVariables, g)
	for _, z := range g.Helpers() {
		if err := e.backSubstitute(g, z, StageBackHelpers); err != nil {
			return err
		}
	}
	e.snapshot(StageBackHelpers, g)
	if n := len(e.diag.Dropped); n > 0 {
		tracer().Infof("dropped %d bodies with dangling references", n)
	}
	return nil
}

// seedSerial moves the helper counter past any helper already present, so
// re-runs on an engine's own output mint fresh names.
func (e *Engine) seedSerial(g *cfg.Grammar) {
	for _, z := range g.Helpers() {
		if z.Order > e.serial {
			e.serial = z.Order
		}
	}
}

// newHelper mints a fresh helper variable. Freshness is guaranteed by
// kind and serial: a helper never collides with an original variable,
// whatever the original's name or ordering index.
func (e *Engine) newHelper() greibach.Symbol {
	e.serial++
	z := greibach.H(fmt.Sprintf("Z%d", e.serial), e.serial)
	e.helpers = append(e.helpers, z)
	return z
}

// checkReducible rejects inputs the substitution phases could loop on.
// Original variables must not lead with helpers (back substitution would
// need the helper before the helper pass), and a helper may lead with
// another helper only if that one was minted earlier. Both hold for every
// grammar this engine produces, so its output is always accepted again.
func checkReducible(g *cfg.Grammar, ord cfg.Ordering) error {
	var err error
	for _, v := range ord {
		g.Productions(v).Each(func(b greibach.Body) {
			if err == nil && b.Head().Kind == greibach.Helper {
				err = fmt.Errorf("%w: %s leads with helper %s", ErrNonTerminating, v.Name, b.Head().Name)
			}
		})
		if err != nil {
			return err
		}
	}
	for _, z := range g.Helpers() {
		g.Productions(z).Each(func(b greibach.Body) {
			h := b.Head()
			if err == nil && h.Kind == greibach.Helper && h.Order >= z.Order {
				err = fmt.Errorf("%w: helper %s leads with %s", ErrNonTerminating, z.Name, h.Name)
			}
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// dropBody enforces the dangling-reference policy for one body. Under the
// drop policy the removal is recorded and the run continues; under the
// error policy the run aborts.
func (e *Engine) dropBody(head greibach.Symbol, b greibach.Body, missing greibach.Symbol, stage Stage) error {
	if e.policy == DanglingError {
		return fmt.Errorf("%w: %s → %s references %s", ErrDanglingReference,
			head.Name, b, missing.Name)
	}
	tracer().Infof("dropping %s → %s, no entry for %s", head.Name, b, missing.Name)
	e.diag.Dropped = append(e.diag.Dropped, Dropped{
		Head:    head,
		Body:    b,
		Missing: missing,
		Stage:   stage,
	})
	return nil
}
