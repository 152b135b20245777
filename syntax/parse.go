package syntax

import (
	"errors"
	"fmt"

	"github.com/npillmayer/greibach/cfg"
)

// ErrSyntax flags a malformed rule line.
var ErrSyntax = errors.New("grammar syntax error")

// Parse reads the rule notation and builds a grammar from it. The head
// of the first rule becomes the start variable.
func Parse(name, input string) (*cfg.Grammar, error) {
	tokens, err := scan(input)
	if err != nil {
		return nil, err
	}
	b := cfg.NewGrammarBuilder(name)
	p := &parser{tokens: tokens}
	for !p.done() {
		if p.at(tokNewline) {
			p.next()
			continue
		}
		if err := p.rule(b); err != nil {
			return nil, err
		}
	}
	return b.Grammar()
}

// parser is a recursive-descent reader over the token stream. The
// notation is regular, one lookahead suffices.
type parser struct {
	tokens []token
	pos    int
}

func (p *parser) done() bool {
	return p.pos >= len(p.tokens)
}

func (p *parser) at(typ int) bool {
	return !p.done() && p.tokens[p.pos].typ == typ
}

func (p *parser) next() token {
	t := p.tokens[p.pos]
	p.pos++
	return t
}

// rule reads one line:  VARIABLE '->' body ( '|' body )*
func (p *parser) rule(b *cfg.GrammarBuilder) error {
	if !p.at(tokVariable) {
		return p.errorf("rule must start with a variable")
	}
	head := p.next()
	if !p.at(tokArrow) {
		return p.errorf("expected '->' after %s", head.lexeme)
	}
	p.next()
	for {
		if err := p.body(b, head.lexeme); err != nil {
			return err
		}
		if !p.at(tokPipe) {
			break
		}
		p.next()
	}
	if !p.done() && !p.at(tokNewline) {
		return p.errorf("unexpected %q in rule for %s", p.tokens[p.pos].lexeme, head.lexeme)
	}
	return nil
}

// body reads one alternative: a non-empty run of symbols.
func (p *parser) body(b *cfg.GrammarBuilder, head string) error {
	rb := b.LHS(head)
	n := 0
	for {
		switch {
		case p.at(tokVariable):
			rb.N(p.next().lexeme)
		case p.at(tokTerminal):
			rb.T(p.next().lexeme)
		default:
			if n == 0 {
				return p.errorf("empty body in rule for %s", head)
			}
			rb.End()
			return nil
		}
		n++
	}
}

func (p *parser) errorf(format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	if p.done() {
		return fmt.Errorf("%w: %s at end of input", ErrSyntax, msg)
	}
	t := p.tokens[p.pos]
	return fmt.Errorf("%w: %s at %d:%d", ErrSyntax, msg, t.line, t.col)
}
