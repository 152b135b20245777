package syntax

import (
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types of the rule notation.
const (
	tokVariable = iota + 1
	tokTerminal
	tokArrow
	tokPipe
	tokNewline
)

// token is a scanned symbol of the rule notation, with its position for
// error reporting.
type token struct {
	typ    int
	lexeme string
	line   int
	col    int
}

// newLexer compiles the DFA for the rule notation.
func newLexer() (*lexmachine.Lexer, error) {
	lexer := lexmachine.NewLexer()
	lexer.Add([]byte(`[A-Z][0-9]*`), emit(tokVariable))
	lexer.Add([]byte(`[a-z]`), emit(tokTerminal))
	lexer.Add([]byte(`->`), emit(tokArrow))
	lexer.Add([]byte(`\|`), emit(tokPipe))
	lexer.Add([]byte(`(\n|;)+`), emit(tokNewline))
	lexer.Add([]byte(`[ \t\r]+`), skip)
	lexer.Add([]byte(`#[^\n]*`), skip)
	if err := lexer.Compile(); err != nil {
		tracer().Errorf("error compiling DFA: %v", err)
		return nil, err
	}
	return lexer, nil
}

// skip ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// emit wraps a scanned match into a token.
func emit(typ int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return token{
			typ:    typ,
			lexeme: string(m.Bytes),
			line:   m.StartLine,
			col:    m.StartColumn,
		}, nil
	}
}

// scan tokenizes the complete input.
func scan(input string) ([]token, error) {
	lexer, err := newLexer()
	if err != nil {
		return nil, err
	}
	s, err := lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	var tokens []token
	for {
		tok, err, eof := s.Next()
		if eof {
			break
		}
		if err != nil {
			return nil, err
		}
		if tok == nil {
			continue
		}
		t := tok.(token)
		tracer().Debugf("token %d %q @%d:%d", t.typ, t.lexeme, t.line, t.col)
		tokens = append(tokens, t)
	}
	return tokens, nil
}
