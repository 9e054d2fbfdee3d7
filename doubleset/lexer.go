package doubleset

import (
	"strings"
	"sync"
	"unicode"

	"github.com/pkg/errors"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokLBrace
	tokRBrace
	tokColon
	tokComma
	tokInt
)

func (k tokenKind) String() string {
	switch k {
	case tokLBrace:
		return "'{'"
	case tokRBrace:
		return "'}'"
	case tokColon:
		return "':'"
	case tokComma:
		return "','"
	case tokInt:
		return "integer"
	default:
		return "end of input"
	}
}

type token struct {
	kind   tokenKind
	lexeme string
	offset int
}

var (
	lexerOnce sync.Once
	lexer     *lexmachine.Lexer
	lexerErr  error
)

func makeToken(kind tokenKind) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(kind), string(m.Bytes), m), nil
	}
}

// compiledLexer builds the DFA once; it is read only afterwards.
func compiledLexer() (*lexmachine.Lexer, error) {
	lexerOnce.Do(func() {
		l := lexmachine.NewLexer()
		l.Add([]byte(`\{`), makeToken(tokLBrace))
		l.Add([]byte(`\}`), makeToken(tokRBrace))
		l.Add([]byte(`:`), makeToken(tokColon))
		l.Add([]byte(`\,`), makeToken(tokComma))
		l.Add([]byte(`0|\-?[1-9][0-9]*`), makeToken(tokInt))
		if err := l.Compile(); err != nil {
			lexerErr = errors.Wrap(err, "could not compile double set lexer")
			return
		}
		lexer = l
	})
	return lexer, lexerErr
}

func stripSpace(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
}

// tokenize splits whitespace free text into tokens, the last one is always tokEOF.
func tokenize(text string) ([]token, error) {
	l, err := compiledLexer()
	if err != nil {
		return nil, err
	}

	scanner, err := l.Scanner([]byte(text))
	if err != nil {
		return nil, errors.Wrap(err, "could not create double set scanner")
	}

	var tokens []token
	for tok, err, eos := scanner.Next(); !eos; tok, err, eos = scanner.Next() {
		if err != nil {
			if ui, ok := err.(*machines.UnconsumedInput); ok {
				return nil, errors.Wrapf(ErrParse, "unexpected input %q at column %d", rest(text, ui.StartTC), ui.StartTC+1)
			}
			return nil, errors.Wrapf(ErrParse, "%v", err)
		}

		lt := tok.(*lexmachine.Token)
		tokens = append(tokens, token{
			kind:   tokenKind(lt.Type),
			lexeme: string(lt.Lexeme),
			offset: lt.TC,
		})
	}

	return append(tokens, token{kind: tokEOF, offset: len(text)}), nil
}

func rest(text string, offset int) string {
	if offset >= len(text) {
		return ""
	}
	if offset < 0 {
		offset = 0
	}
	if len(text)-offset > 8 {
		return text[offset:offset+8] + "..."
	}
	return text[offset:]
}
