// Package parse implements the parser of scene descriptions.
//
// A scene description is a sequence of S-expressions. Each S-expression is one
// of a list, a color literal, an unsigned integer, a float or an atom. The
// parser never aborts: when a top-level form cannot be parsed, one character
// is skipped and parsing resumes at the next position. Skipped text is
// reported as [*Error] values, which callers can unpack with [UnpackErrors].
package parse

import (
	"src.tvk.sh/pkg/diag"
)

// Source describes a piece of source code.
type Source struct {
	Name string
	Code string
}

// SourceForTest returns a Source used for testing.
func SourceForTest(code string) Source {
	return Source{Name: "[test]", Code: code}
}

// Tree represents a parsed scene description.
type Tree struct {
	Forms  []Node
	Source Source
}

// SourceText returns the part of the source text that n was parsed from.
func (t Tree) SourceText(n Node) string {
	r := n.Range()
	return t.Source.Code[r.From:r.To]
}

// Parse parses the given source. Well-formed top-level forms are always
// returned in source order, even when err is non-nil. The error is non-nil iff
// some part of the source had to be skipped; it always unpacks into one or
// more [*Error] values.
func Parse(src Source) (Tree, error) {
	ps := &parser{srcName: src.Name, src: src.Code}
	forms := ps.parseTopLevel()
	return Tree{forms, src}, diag.PackErrors(ps.errors)
}

// ParseForms is like [Parse], but returns only the forms. It is used when
// skipped text is not interesting.
func ParseForms(code string) []Node {
	tree, _ := Parse(Source{Name: "[forms]", Code: code})
	return tree.Forms
}

// Errors.
var (
	errShouldBeSExpr       = newError("", "'('", "color literal", "number", "atom")
	errEmptyList           = newError("empty list")
	errShouldBeRParen      = newError("", "')'")
	errShouldBeSpaceRParen = newError("", "whitespace", "')'")
	errShouldBeHexDigit    = newError("bad color literal", "8 hex digits")
)
