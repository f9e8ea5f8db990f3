package parse

import "src.tvk.sh/pkg/diag"

// Node represents a parsed S-expression. It is implemented by [*Atom],
// [*UInt], [*Float], [*Color] and [*List].
type Node interface {
	diag.Ranger
	isNode()
}

type node struct {
	diag.Ranging
}

func (*node) isNode() {}

// Atom is an identifier. Atoms naming a form keyword have a Keyword other than
// [KwNone].
type Atom struct {
	node
	Name    string
	Keyword Keyword
}

// UInt is an unsigned integer literal.
type UInt struct {
	node
	Value uint32
}

// Float is a floating-point literal.
type Float struct {
	node
	Value float32
}

// Color is an RGBA color literal. Each channel is in [0, 1].
type Color struct {
	node
	Value [4]float32
}

// List is a parenthesized sequence of one or more S-expressions.
type List struct {
	node
	Elems []Node
}

// Head returns the keyword of the list's first element, or KwNone if the first
// element is not a keyword atom.
func (l *List) Head() Keyword {
	if a, ok := l.Elems[0].(*Atom); ok {
		return a.Keyword
	}
	return KwNone
}

// Args returns all elements after the first one.
func (l *List) Args() []Node { return l.Elems[1:] }

// Find returns the innermost node in n whose range contains the byte offset p,
// or nil if p lies outside n.
func Find(n Node, p int) Node {
	r := n.Range()
	if p < r.From || p > r.To {
		return nil
	}
	if l, ok := n.(*List); ok {
		for _, elem := range l.Elems {
			if found := Find(elem, p); found != nil {
				return found
			}
		}
	}
	return n
}
