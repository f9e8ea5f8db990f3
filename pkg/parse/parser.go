package parse

import (
	"bytes"
	"errors"
	"math"
	"strconv"
	"unicode/utf8"

	"src.tvk.sh/pkg/diag"
)

// parser maintains some mutable states of parsing.
//
// NOTE: The src member is assumed to be valid UTF-8.
type parser struct {
	srcName string
	src     string
	pos     int
	errors  []*Error

	// Failure of the most recent unsuccessful parse attempt.
	failPos int
	failErr error
}

// Error is a parse error.
type Error = diag.Error[ErrorTag]

// ErrorTag parameterizes [diag.Error] to define [Error].
type ErrorTag struct{}

func (ErrorTag) ErrorTag() string { return "parse error" }

// UnpackErrors returns the constituent parse errors if the given error contains
// one or more parse errors. Otherwise it returns nil.
func UnpackErrors(e error) []*Error {
	if errs := diag.UnpackErrors[ErrorTag](e); len(errs) > 0 {
		return errs
	}
	return nil
}

const eof rune = -1

func (ps *parser) peek() rune {
	if ps.pos == len(ps.src) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(ps.src[ps.pos:])
	return r
}

func (ps *parser) next() rune {
	if ps.pos == len(ps.src) {
		return eof
	}
	r, s := utf8.DecodeRuneInString(ps.src[ps.pos:])
	ps.pos += s
	return r
}

func (ps *parser) fail(e error) {
	ps.failPos = ps.pos
	ps.failErr = e
}

// parseTopLevel parses S-expressions until the source is exhausted. When an
// attempt fails, one character is skipped and the attempt is retried at the
// next position.
func (ps *parser) parseTopLevel() []Node {
	var forms []Node
	// Error covering the current run of skipped characters, if any.
	var skipping *Error
	for {
		ps.skipWhitespace()
		if ps.pos == len(ps.src) {
			return forms
		}
		begin := ps.pos
		if n, ok := ps.parseSExpr(); ok {
			forms = append(forms, n)
			skipping = nil
			continue
		}
		ps.pos = begin
		ps.next()
		if skipping != nil {
			skipping.Context.To = ps.pos
			continue
		}
		skipping = &Error{
			Message: ps.failErr.Error(),
			Context: *diag.NewContext(ps.srcName, ps.src,
				diag.Ranging{From: begin, To: ps.pos}),
			Partial: ps.failPos == len(ps.src),
		}
		ps.errors = append(ps.errors, skipping)
	}
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// skipWhitespace skips whitespace and returns the number of bytes skipped.
func (ps *parser) skipWhitespace() int {
	begin := ps.pos
	for ps.pos < len(ps.src) && isWhitespace(rune(ps.src[ps.pos])) {
		ps.pos++
	}
	return ps.pos - begin
}

// sexpr := list | color | uint | float | atom
func (ps *parser) parseSExpr() (Node, bool) {
	switch ps.peek() {
	case '(':
		return ps.parseList()
	case '#':
		return ps.parseColor()
	}
	if n, ok := ps.parseUInt(); ok {
		return n, true
	}
	if n, ok := ps.parseFloat(); ok {
		return n, true
	}
	if n, ok := ps.parseAtom(); ok {
		return n, true
	}
	ps.fail(errShouldBeSExpr)
	return nil, false
}

// list := '(' ws* sexpr (ws+ sexpr)* ws* ')'
func (ps *parser) parseList() (Node, bool) {
	begin := ps.pos
	ps.next()
	ps.skipWhitespace()
	if ps.peek() == ')' {
		ps.fail(errEmptyList)
		return nil, false
	}
	var elems []Node
	for {
		n, ok := ps.parseSExpr()
		if !ok {
			return nil, false
		}
		elems = append(elems, n)
		spaced := ps.skipWhitespace() > 0
		switch {
		case ps.peek() == ')':
			ps.next()
			return &List{node{diag.Ranging{From: begin, To: ps.pos}}, elems}, true
		case ps.peek() == eof:
			ps.fail(errShouldBeRParen)
			return nil, false
		case !spaced:
			ps.fail(errShouldBeSpaceRParen)
			return nil, false
		}
	}
}

func isHex(r rune) bool {
	return '0' <= r && r <= '9' || 'a' <= r && r <= 'f' || 'A' <= r && r <= 'F'
}

// color := '#' hex{8}
func (ps *parser) parseColor() (Node, bool) {
	begin := ps.pos
	ps.next()
	for i := 0; i < 8; i++ {
		if !isHex(ps.peek()) {
			ps.fail(errShouldBeHexDigit)
			return nil, false
		}
		ps.next()
	}
	var c Color
	c.From, c.To = begin, ps.pos
	for i := range c.Value {
		b, _ := strconv.ParseUint(ps.src[begin+1+2*i:begin+3+2*i], 16, 8)
		c.Value[i] = float32(b) / 255
	}
	return &c, true
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }

// uint := digits, not followed by '.' or an exponent
func (ps *parser) parseUInt() (Node, bool) {
	begin := ps.pos
	for isDigit(ps.peek()) {
		ps.next()
	}
	if r := ps.peek(); ps.pos == begin || r == '.' || r == 'e' || r == 'E' {
		ps.pos = begin
		return nil, false
	}
	v, err := strconv.ParseUint(ps.src[begin:ps.pos], 10, 32)
	if err != nil {
		// Too large for a uint; let the float alternative have it.
		ps.pos = begin
		return nil, false
	}
	return &UInt{node{diag.Ranging{From: begin, To: ps.pos}}, uint32(v)}, true
}

// float := [+-]? (digits ('.' digits?)? | '.' digits) ([eE] [+-]? digits)?
func (ps *parser) parseFloat() (Node, bool) {
	begin := ps.pos
	if r := ps.peek(); r == '+' || r == '-' {
		ps.next()
	}
	intDigits := ps.skipDigits()
	fracDigits := 0
	if ps.peek() == '.' {
		ps.next()
		fracDigits = ps.skipDigits()
	}
	if intDigits == 0 && fracDigits == 0 {
		ps.pos = begin
		return nil, false
	}
	if r := ps.peek(); r == 'e' || r == 'E' {
		mantissaEnd := ps.pos
		ps.next()
		if r := ps.peek(); r == '+' || r == '-' {
			ps.next()
		}
		if ps.skipDigits() == 0 {
			// Not an exponent after all.
			ps.pos = mantissaEnd
		}
	}
	v, err := strconv.ParseFloat(ps.src[begin:ps.pos], 32)
	if err != nil || math.IsInf(v, 0) {
		ps.pos = begin
		return nil, false
	}
	return &Float{node{diag.Ranging{From: begin, To: ps.pos}}, float32(v)}, true
}

func (ps *parser) skipDigits() int {
	begin := ps.pos
	for isDigit(ps.peek()) {
		ps.next()
	}
	return ps.pos - begin
}

// IsAtomRune returns whether r may appear in an atom.
func IsAtomRune(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || isDigit(r) ||
		r == '-' || r == '_'
}

// atom := (alnum | '-' | '_')+
func (ps *parser) parseAtom() (Node, bool) {
	begin := ps.pos
	for IsAtomRune(ps.peek()) {
		ps.next()
	}
	if ps.pos == begin {
		return nil, false
	}
	name := ps.src[begin:ps.pos]
	return &Atom{node{diag.Ranging{From: begin, To: ps.pos}}, name, LookupKeyword(name)}, true
}

func newError(text string, shouldbe ...string) error {
	if len(shouldbe) == 0 {
		return errors.New(text)
	}
	var buf bytes.Buffer
	if len(text) > 0 {
		buf.WriteString(text + ", ")
	}
	buf.WriteString("should be " + shouldbe[0])
	for i, opt := range shouldbe[1:] {
		if i == len(shouldbe)-2 {
			buf.WriteString(" or ")
		} else {
			buf.WriteString(", ")
		}
		buf.WriteString(opt)
	}
	return errors.New(buf.String())
}
