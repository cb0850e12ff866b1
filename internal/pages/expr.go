package pages

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// nFuncAlphabet is the full set of characters an n-function may contain.
var nFuncAlphabet = regexp.MustCompile(`^[0-9n+\-*/() ]+$`)

// nFunc is a parsed page expression in the variable n, such as "4n-1" or
// "(n-1)(n-2)". Adjacent operands multiply.
type nFunc struct {
	root node
}

type node interface {
	eval(n float64) float64
}

type number float64

func (c number) eval(float64) float64 { return float64(c) }

type variable struct{}

func (variable) eval(n float64) float64 { return n }

type negate struct{ x node }

func (u negate) eval(n float64) float64 { return -u.x.eval(n) }

type binary struct {
	op   byte
	l, r node
}

func (b binary) eval(n float64) float64 {
	l, r := b.l.eval(n), b.r.eval(n)
	switch b.op {
	case '+':
		return l + r
	case '-':
		return l - r
	case '*':
		return l * r
	default:
		return l / r
	}
}

func parseNFunc(expr string) (*nFunc, error) {
	if !nFuncAlphabet.MatchString(expr) {
		return nil, fmt.Errorf("%w: invalid expression %q", ErrInvalidArgument, expr)
	}
	p := &exprParser{src: strings.ReplaceAll(expr, " ", "")}
	root, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("%w: unexpected %q in expression %q", ErrInvalidArgument, p.src[p.pos], expr)
	}
	return &nFunc{root: root}, nil
}

// Values evaluates f for n = 1..max and keeps the truncated results that
// fall inside 1..max, in evaluation order.
func (f *nFunc) Values(max int) []int {
	var out []int
	for n := 1; n <= max; n++ {
		v := f.root.eval(float64(n))
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		iv := int(v)
		if iv > 0 && iv <= max {
			out = append(out, iv)
		}
	}
	return out
}

type exprParser struct {
	src string
	pos int
}

func (p *exprParser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *exprParser) parseSum() (node, error) {
	l, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek()
		if op != '+' && op != '-' {
			return l, nil
		}
		p.pos++
		r, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		l = binary{op: op, l: l, r: r}
	}
}

func (p *exprParser) parseProduct() (node, error) {
	l, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		switch c := p.peek(); {
		case c == '*' || c == '/':
			p.pos++
			r, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			l = binary{op: c, l: l, r: r}
		case c == 'n' || c == '(' || isDigit(c):
			// implicit multiplication: 4n, nn, n(n-1), (n-1)2
			r, err := p.parsePrimary()
			if err != nil {
				return nil, err
			}
			l = binary{op: '*', l: l, r: r}
		default:
			return l, nil
		}
	}
}

func (p *exprParser) parseUnary() (node, error) {
	switch p.peek() {
	case '-':
		p.pos++
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return negate{x: x}, nil
	case '+':
		p.pos++
		return p.parseUnary()
	}
	return p.parsePrimary()
}

func (p *exprParser) parsePrimary() (node, error) {
	c := p.peek()
	switch {
	case c == 'n':
		p.pos++
		return variable{}, nil
	case c == '(':
		p.pos++
		x, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if p.peek() != ')' {
			return nil, fmt.Errorf("%w: missing ')' in expression %q", ErrInvalidArgument, p.src)
		}
		p.pos++
		return x, nil
	case isDigit(c):
		start := p.pos
		for isDigit(p.peek()) {
			p.pos++
		}
		v, err := strconv.ParseFloat(p.src[start:p.pos], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
		return number(v), nil
	case c == 0:
		return nil, fmt.Errorf("%w: unexpected end of expression %q", ErrInvalidArgument, p.src)
	}
	return nil, fmt.Errorf("%w: unexpected %q in expression %q", ErrInvalidArgument, c, p.src)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
