// Package eval evaluates arithmetic expressions over arbitrary-precision
// decimals.
//
// The grammar, with the usual precedence and left associativity, is:
//
//	expression := term (('+' | '-') term)*
//	term       := factor (('*' | '/' | '%') factor)*
//	factor     := number | '(' expression ')'
//	number     := ['-'] digit+ ['.' digit*] | '-' '.' digit+
//
// Evaluation is a recursive descent over the input bytes with one byte of
// lookahead. Each rule computes its value as soon as it is parsed; there is no
// token stream or syntax tree. Whitespace is not skipped.
package eval

import (
	"fmt"

	"github.com/mpcalc/bignum"
	"github.com/pkg/errors"
)

// DefaultMaxDepth is the parenthesis nesting limit used when
// Evaluator.MaxDepth is zero.
const DefaultMaxDepth = 1000

var (
	// ErrInvalidNumber is returned for a number literal without digits, such as
	// a lone '-'.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrInvalidExpression is returned for an unexpected character, or when
	// input remains after a complete expression.
	ErrInvalidExpression = errors.New("invalid expression")
	// ErrMismatchedParentheses is returned when a '(' is not closed.
	ErrMismatchedParentheses = errors.New("mismatched parentheses")
	// ErrTooDeep is returned when parentheses nest deeper than the
	// Evaluator's MaxDepth.
	ErrTooDeep = errors.New("expression nested too deeply")
)

// SyntaxError records where in the input a syntax error was detected. Err is
// one of ErrInvalidNumber, ErrInvalidExpression, ErrMismatchedParentheses or
// ErrTooDeep.
type SyntaxError struct {
	Err    error
	Offset int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Err, e.Offset)
}

// Cause returns the underlying sentinel error.
func (e *SyntaxError) Cause() error { return e.Err }

// Unwrap returns the underlying sentinel error.
func (e *SyntaxError) Unwrap() error { return e.Err }

// Evaluator evaluates expressions. The zero value is ready to use and
// evaluates with bignum.BaseContext and DefaultMaxDepth. An Evaluator holds
// no state between calls and is safe for concurrent use.
type Evaluator struct {
	// Ctx is the context used for arithmetic. bignum.BaseContext is used if
	// nil.
	Ctx *bignum.Context
	// MaxDepth limits parenthesis nesting. DefaultMaxDepth is used if zero.
	MaxDepth int
}

// Evaluate evaluates s with a zero Evaluator.
func Evaluate(s string) (*bignum.Decimal, error) {
	var e Evaluator
	return e.Evaluate(s)
}

// Evaluate parses and evaluates s. Syntax errors are returned as
// *SyntaxError; arithmetic errors, such as bignum.ErrDivisionByZero, are
// returned unchanged.
func (e *Evaluator) Evaluate(s string) (*bignum.Decimal, error) {
	p := parser{
		input:    s,
		ctx:      e.Ctx,
		maxDepth: e.MaxDepth,
	}
	if p.ctx == nil {
		p.ctx = &bignum.BaseContext
	}
	if p.maxDepth <= 0 {
		p.maxDepth = DefaultMaxDepth
	}
	return p.evaluate()
}

type parser struct {
	input    string
	pos      int
	depth    int
	maxDepth int
	ctx      *bignum.Context
}

// peek returns the current byte, or 0 at the end of input.
func (p *parser) peek() byte {
	if p.pos < len(p.input) {
		return p.input[p.pos]
	}
	return 0
}

// next consumes and returns the current byte, or 0 at the end of input.
func (p *parser) next() byte {
	c := p.peek()
	if p.pos < len(p.input) {
		p.pos++
	}
	return c
}

func (p *parser) errorf(err error, offset int) error {
	return &SyntaxError{Err: err, Offset: offset}
}

func (p *parser) evaluate() (*bignum.Decimal, error) {
	p.pos = 0
	p.depth = 0
	d, err := p.expression()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.input) {
		return nil, p.errorf(ErrInvalidExpression, p.pos)
	}
	return d, nil
}

func (p *parser) expression() (*bignum.Decimal, error) {
	d, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek()
		if op != '+' && op != '-' {
			return d, nil
		}
		p.next()
		y, err := p.term()
		if err != nil {
			return nil, err
		}
		if op == '+' {
			err = p.ctx.Add(d, d, y)
		} else {
			err = p.ctx.Sub(d, d, y)
		}
		if err != nil {
			return nil, err
		}
	}
}

func (p *parser) term() (*bignum.Decimal, error) {
	d, err := p.factor()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek()
		if op != '*' && op != '/' && op != '%' {
			return d, nil
		}
		p.next()
		y, err := p.factor()
		if err != nil {
			return nil, err
		}
		switch op {
		case '*':
			err = p.ctx.Mul(d, d, y)
		case '/':
			err = p.ctx.Quo(d, d, y)
		default:
			err = p.ctx.Rem(d, d, y)
		}
		if err != nil {
			return nil, err
		}
	}
}

func (p *parser) factor() (*bignum.Decimal, error) {
	switch c := p.peek(); {
	case isDigit(c) || c == '-':
		return p.number()
	case c == '(':
		open := p.pos
		p.next()
		p.depth++
		if p.depth > p.maxDepth {
			return nil, p.errorf(ErrTooDeep, open)
		}
		d, err := p.expression()
		if err != nil {
			return nil, err
		}
		if p.next() != ')' {
			return nil, p.errorf(ErrMismatchedParentheses, open)
		}
		p.depth--
		return d, nil
	default:
		return nil, p.errorf(ErrInvalidExpression, p.pos)
	}
}

func (p *parser) number() (*bignum.Decimal, error) {
	start := p.pos
	if p.peek() == '-' {
		p.next()
	}
	digits := 0
	for isDigit(p.peek()) {
		p.next()
		digits++
	}
	if p.peek() == '.' {
		p.next()
		for isDigit(p.peek()) {
			p.next()
			digits++
		}
	}
	if digits == 0 {
		return nil, p.errorf(ErrInvalidNumber, start)
	}
	return bignum.NewFromString(p.input[start:p.pos]), nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
