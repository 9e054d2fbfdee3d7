package cli

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/allxie/aspiration-takehome/capitalize"
	"github.com/allxie/aspiration-takehome/doubleset"
	"github.com/allxie/aspiration-takehome/orderedmap"
	"github.com/pkg/errors"
)

var (
	ErrSyntax      = errors.New("syntax error")
	ErrUnknownName = errors.New("unknown name")
)

// Session evaluates calculator lines and remembers named sets.
//
//	a = {{1: 2}, {2: 1}}
//	b = {{1: 1}, {-3: 1}}
//	a + b - {{2: 1}}
//	:cap 3 hello, Dave
//	:vars
type Session struct {
	vars *orderedmap.OrderedMap[string, *doubleset.DoubleSet]
}

func NewSession() *Session {
	return &Session{
		vars: orderedmap.NewOrderedMap[string, *doubleset.DoubleSet](),
	}
}

// Eval runs one line and returns what should be shown to the user.
func (s *Session) Eval(line string) (string, error) {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return "", nil
	case strings.HasPrefix(line, ":"):
		return s.command(line[1:])
	}

	name, expr, assign := strings.Cut(line, "=")
	if !assign {
		ds, err := s.eval(line)
		if err != nil {
			return "", err
		}
		return ds.String(), nil
	}

	name = strings.TrimSpace(name)
	if !isName(name) {
		return "", errors.Wrapf(ErrSyntax, "%q is not a valid name", name)
	}

	ds, err := s.eval(expr)
	if err != nil {
		return "", err
	}

	s.vars.Set(name, ds)
	return ds.String(), nil
}

// Lookup returns a copy of the set bound to name.
func (s *Session) Lookup(name string) (*doubleset.DoubleSet, bool) {
	ds, ok := s.vars.HasGet(name)
	if !ok {
		return nil, false
	}
	return ds.Clone(), true
}

func (s *Session) command(line string) (string, error) {
	cmd, rest, _ := strings.Cut(line, " ")
	switch cmd {
	case "vars":
		var b strings.Builder
		s.vars.ForEach(func(name string, ds *doubleset.DoubleSet, order int) {
			if order > 0 {
				b.WriteByte('\n')
			}
			fmt.Fprintf(&b, "%s = %s", name, ds)
		})
		return b.String(), nil
	case "cap":
		nth, text, _ := strings.Cut(strings.TrimSpace(rest), " ")
		n, err := strconv.Atoi(nth)
		if err != nil {
			return "", errors.Wrapf(ErrSyntax, "usage :cap N TEXT, %q is not a number", nth)
		}
		return capitalize.Nth(text, n), nil
	default:
		return "", errors.Wrapf(ErrSyntax, "unknown command :%s", cmd)
	}
}

// eval folds OPERAND { ("+" | "-") OPERAND } from the left.
func (s *Session) eval(expr string) (*doubleset.DoubleSet, error) {
	operands, ops, err := splitExpr(expr)
	if err != nil {
		return nil, err
	}

	acc, err := s.operand(operands[0])
	if err != nil {
		return nil, err
	}

	for i, op := range ops {
		next, err := s.operand(operands[i+1])
		if err != nil {
			return nil, err
		}

		if op == '+' {
			acc, err = doubleset.Add(acc, next)
		} else {
			acc, err = doubleset.Subtract(acc, next)
		}
		if err != nil {
			return nil, err
		}
	}

	return acc, nil
}

func (s *Session) operand(text string) (*doubleset.DoubleSet, error) {
	text = strings.TrimSpace(text)
	switch {
	case text == "":
		return nil, errors.Wrap(ErrSyntax, "missing operand")
	case strings.HasPrefix(text, "{"):
		return doubleset.Parse(text)
	case isName(text):
		ds, ok := s.vars.HasGet(text)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownName, "%q", text)
		}
		return ds, nil
	default:
		return nil, errors.Wrapf(ErrSyntax, "unexpected operand %q", text)
	}
}

// splitExpr cuts expr at + and - signs outside of braces.
func splitExpr(expr string) (operands []string, ops []rune, err error) {
	depth, start := 0, 0
	for i, r := range expr {
		switch r {
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return nil, nil, errors.Wrapf(ErrSyntax, "unbalanced '}' at column %d", i+1)
			}
		case '+', '-':
			if depth == 0 {
				operands = append(operands, expr[start:i])
				ops = append(ops, r)
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, nil, errors.Wrap(ErrSyntax, "unbalanced '{'")
	}

	return append(operands, expr[start:]), ops, nil
}

func isName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || (r < unicode.MaxASCII && unicode.IsLetter(r)) {
			continue
		}
		if i > 0 && r >= '0' && r <= '9' {
			continue
		}
		return false
	}
	return true
}
