package diag

import (
	"strings"
	"testing"
)

var contextTests = []struct {
	Name    string
	Context *Context
	Indent  string

	WantShow        string
	WantShowCompact string
}{
	{
		Name:    "single-line culprit",
		Context: contextInParen("[test]", "draw (bad)"),
		Indent:  "_",

		WantShow: lines(
			"[test], line 1:",
			"_draw <(bad)>",
		),
		WantShowCompact: "[test], line 1: draw <(bad)>",
	},
	{
		Name:    "multi-line culprit",
		Context: contextInParen("[test]", "draw (bad\nbad)\nmore"),
		Indent:  "_",

		WantShow: lines(
			"[test], line 1-2:",
			"_draw <(bad>",
			"_<bad)>",
		),
		WantShowCompact: lines(
			"[test], line 1-2: draw <(bad>",
			"_                  <bad)>",
		),
	},
	{
		Name: "trailing newline in culprit is removed",
		//                             012345678 9
		Context: NewContext("[test]", "draw bad\n", Ranging{5, 9}),
		Indent:  "_",

		WantShow: lines(
			"[test], line 1:",
			"_draw <bad>",
		),
		WantShowCompact: "[test], line 1: draw <bad>",
	},
	{
		Name: "empty culprit",
		//                             012345
		Context: NewContext("[test]", "draw x", Ranging{5, 5}),

		WantShow: lines(
			"[test], line 1:",
			"draw <^>x",
		),
		WantShowCompact: "[test], line 1: draw <^>x",
	},
	{
		Name:            "unknown culprit range",
		Context:         NewContext("[test]", "draw", Ranging{-1, -1}),
		WantShow:        "[test], unknown position",
		WantShowCompact: "[test], unknown position",
	},
	{
		Name:            "invalid culprit range",
		Context:         NewContext("[test]", "draw", Ranging{2, 1}),
		WantShow:        "[test], invalid position 2-1",
		WantShowCompact: "[test], invalid position 2-1",
	},
}

func TestContext(t *testing.T) {
	setCulpritMarkers(t, "<", ">")
	for _, test := range contextTests {
		t.Run(test.Name, func(t *testing.T) {
			gotShow := test.Context.Show(test.Indent)
			if gotShow != test.WantShow {
				t.Errorf("Show() -> %q, want %q", gotShow, test.WantShow)
			}
			gotShowCompact := test.Context.ShowCompact(test.Indent)
			if gotShowCompact != test.WantShowCompact {
				t.Errorf("ShowCompact() -> %q, want %q",
					gotShowCompact, test.WantShowCompact)
			}
		})
	}
}

func TestContext_Position(t *testing.T) {
	c := NewContext("[test]", "(def a\n  (color b))", Ranging{9, 10})
	line, col := c.Position()
	if line != 2 || col != 3 {
		t.Errorf("Position() -> (%d, %d), want (2, 3)", line, col)
	}
}

// Returns a Context with the given name and source, and a range for the part
// between ( and ).
func contextInParen(name, src string) *Context {
	return NewContext(name, src,
		Ranging{strings.Index(src, "("), strings.Index(src, ")") + 1})
}

func lines(lines ...string) string {
	return strings.Join(lines, "\n")
}
