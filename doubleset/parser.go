package doubleset

import (
	"strconv"

	"github.com/pkg/errors"
)

// Parse reads a set written as {{m1: c1}, {m2: c2}, ...}. Whitespace is
// ignored anywhere. Members keep the order in which they appear; a member
// listed twice takes the later count.
func Parse(text string) (*DoubleSet, error) {
	tokens, err := tokenize(stripSpace(text))
	if err != nil {
		return nil, err
	}

	p := parser{tokens: tokens, ds: New()}
	if err := p.parseSet(); err != nil {
		return nil, err
	}

	return p.ds, nil
}

func MustParse(text string) *DoubleSet {
	ds, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return ds
}

type parser struct {
	tokens []token
	pos    int
	ds     *DoubleSet
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) expect(kind tokenKind) (token, error) {
	tok := p.peek()
	if tok.kind != kind {
		return tok, unexpected(tok, kind)
	}
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok, nil
}

// Set ::= "{" [ Entry { "," Entry } ] "}"
func (p *parser) parseSet() error {
	if _, err := p.expect(tokLBrace); err != nil {
		return err
	}

	if p.peek().kind == tokRBrace {
		p.pos++
		_, err := p.expect(tokEOF)
		return err
	}

	for {
		if err := p.parseEntry(); err != nil {
			return err
		}

		tok := p.peek()
		if tok.kind == tokComma {
			p.pos++
			continue
		}
		if tok.kind != tokRBrace {
			return unexpected(tok, tokComma, tokRBrace)
		}
		p.pos++
		break
	}

	_, err := p.expect(tokEOF)
	return err
}

// Entry ::= "{" Integer ":" Count "}"
func (p *parser) parseEntry() error {
	if _, err := p.expect(tokLBrace); err != nil {
		return err
	}

	memberTok, err := p.expect(tokInt)
	if err != nil {
		return err
	}
	member, err := strconv.ParseInt(memberTok.lexeme, 10, 64)
	if err != nil {
		return errors.Wrapf(ErrParse, "member %s at column %d is out of range", memberTok.lexeme, memberTok.offset+1)
	}

	if _, err := p.expect(tokColon); err != nil {
		return err
	}

	countTok, err := p.expect(tokInt)
	if err != nil {
		return err
	}
	if countTok.lexeme != "1" && countTok.lexeme != "2" {
		return errors.Wrapf(ErrParse, "count at column %d must be 1 or 2, got %s", countTok.offset+1, countTok.lexeme)
	}

	if _, err := p.expect(tokRBrace); err != nil {
		return err
	}

	count, _ := strconv.Atoi(countTok.lexeme)
	p.ds.members.Set(member, count)
	return nil
}

func unexpected(tok token, want ...tokenKind) error {
	found := tok.kind.String()
	if tok.kind != tokEOF {
		found = strconv.Quote(tok.lexeme)
	}

	expected := ""
	for i, k := range want {
		if i > 0 {
			expected += " or "
		}
		expected += k.String()
	}

	return errors.Wrapf(ErrParse, "expected %s at column %d, found %s", expected, tok.offset+1, found)
}
