package lsp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	lsp "github.com/sourcegraph/go-lsp"
	"github.com/sourcegraph/jsonrpc2"

	"src.tvk.sh/pkg/parse"
)

const testURI = lsp.DocumentURI("file:///scene.tvk")

var bgCtx = context.Background()

func pos(line, char int) lsp.Position { return lsp.Position{Line: line, Character: char} }

func rng(l1, c1, l2, c2 int) lsp.Range { return lsp.Range{Start: pos(l1, c1), End: pos(l2, c2)} }

func TestDiagnostics(t *testing.T) {
	content := "(def a (vec3 (1 2 3)))\n(draw a)\n(b"
	want := []lsp.Diagnostic{
		{Range: rng(2, 0, 2, 1), Severity: lsp.Error, Source: "parse",
			Message: "should be ')'"},
		{Range: rng(1, 6, 1, 7), Severity: lsp.Warning, Source: "eval",
			Message: "wrong type: argument 1 of draw must be model or vertex-buffer, but is vec3"},
	}
	if diff := cmp.Diff(want, diagnostics(testURI, content)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDiagnostics_Clean(t *testing.T) {
	got := diagnostics(testURI, "(def a 1)\na")
	if got == nil || len(got) != 0 {
		t.Errorf("got %v, want empty non-nil slice", got)
	}
}

func call(t *testing.T, m method, params any) any {
	t.Helper()
	raw, err := json.Marshal(params)
	if err != nil {
		t.Fatal(err)
	}
	result, err := m(bgCtx, nil, raw)
	if err != nil {
		t.Fatalf("got error %v", err)
	}
	return result
}

func docPos(line, char int) lsp.TextDocumentPositionParams {
	return lsp.TextDocumentPositionParams{
		TextDocument: lsp.TextDocumentIdentifier{URI: testURI},
		Position:     pos(line, char),
	}
}

func TestHover(t *testing.T) {
	s := newServer()
	s.content[testURI] = "(def red (color #FF0000FF))\n(draw red nope)"

	// On a keyword.
	h := call(t, s.hover, docPos(0, 2)).(lsp.Hover)
	if len(h.Contents) != 1 || h.Contents[0].Value != keywordDocs[parse.KwDef] {
		t.Errorf("hover on def: got %v", h.Contents)
	}
	if h.Range == nil || *h.Range != rng(0, 1, 0, 4) {
		t.Errorf("hover on def: got range %v", h.Range)
	}

	// On a bound name.
	h = call(t, s.hover, docPos(1, 7)).(lsp.Hover)
	if len(h.Contents) != 1 || h.Contents[0].Value != "red = (color #FF0000FF)" {
		t.Errorf("hover on red: got %v", h.Contents)
	}

	// On an unbound name, and on a number.
	for _, p := range []lsp.TextDocumentPositionParams{docPos(1, 11), docPos(0, 18)} {
		h = call(t, s.hover, p).(lsp.Hover)
		if len(h.Contents) != 0 {
			t.Errorf("hover at %v: got %v, want nothing", p.Position, h.Contents)
		}
	}
}

func TestHover_InvalidParams(t *testing.T) {
	s := newServer()
	if _, err := s.hover(bgCtx, nil, json.RawMessage("[")); err != errInvalidParams {
		t.Errorf("got error %v, want errInvalidParams", err)
	}
}

func TestCompletion(t *testing.T) {
	s := newServer()
	s.content[testURI] = "(def vb1 1)\n(def vb2 2)\n(def vb1 3)\n(draw v"

	params := lsp.CompletionParams{TextDocumentPositionParams: docPos(3, 7)}
	items := call(t, s.completion, params).([]lsp.CompletionItem)

	var labels []string
	for _, item := range items {
		labels = append(labels, item.Label)
		if item.TextEdit == nil || item.TextEdit.Range != rng(3, 6, 3, 7) {
			t.Errorf("item %s has text edit %v", item.Label, item.TextEdit)
		}
	}
	want := []string{"vec3", "vertex", "vertex-buffer", "vb1", "vb2"}
	if diff := cmp.Diff(want, labels); diff != "" {
		t.Errorf("labels (-want +got):\n%s", diff)
	}
	if items[0].Kind != lsp.CIKKeyword || items[3].Kind != lsp.CIKVariable {
		t.Errorf("got kinds %v and %v", items[0].Kind, items[3].Kind)
	}
}

func TestDidOpenAndClose(t *testing.T) {
	s := newServer()
	conn := &recordingConn{notified: make(chan lsp.PublishDiagnosticsParams, 2)}
	open := lsp.DidOpenTextDocumentParams{
		TextDocument: lsp.TextDocumentItem{URI: testURI, Text: "(cube)"}}
	raw, _ := json.Marshal(open)
	if _, err := s.didOpen(bgCtx, conn, raw); err != nil {
		t.Fatal(err)
	}
	if s.content[testURI] != "(cube)" {
		t.Errorf("content not stored")
	}
	if p := <-conn.notified; len(p.Diagnostics) != 1 || p.Diagnostics[0].Message != "unknown form: cube" {
		t.Errorf("got diagnostics %v", p.Diagnostics)
	}

	closeParams := lsp.DidCloseTextDocumentParams{
		TextDocument: lsp.TextDocumentIdentifier{URI: testURI}}
	raw, _ = json.Marshal(closeParams)
	if _, err := s.didClose(bgCtx, conn, raw); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.content[testURI]; ok {
		t.Errorf("content not dropped")
	}
	if p := <-conn.notified; len(p.Diagnostics) != 0 {
		t.Errorf("diagnostics not cleared: %v", p.Diagnostics)
	}
}

var positionTests = []struct {
	s   string
	idx int
	pos lsp.Position
}{
	{"foo", 0, pos(0, 0)},
	{"foo", 3, pos(0, 3)},
	{"a\nb", 2, pos(1, 0)},
	{"a\r\nb", 2, pos(1, 0)},
	{"a\rb", 2, pos(1, 0)},
}

func TestPositions(t *testing.T) {
	for _, test := range positionTests {
		if got := lspPositionFromIdx(test.s, test.idx); got != test.pos {
			t.Errorf("lspPositionFromIdx(%q, %d) = %v, want %v", test.s, test.idx, got, test.pos)
		}
		if got := lspPositionToIdx(test.s, test.pos); got != test.idx {
			t.Errorf("lspPositionToIdx(%q, %v) = %d, want %d", test.s, test.pos, got, test.idx)
		}
	}
}

type recordingConn struct {
	notified chan lsp.PublishDiagnosticsParams
}

func (c *recordingConn) Call(context.Context, string, any, any, ...jsonrpc2.CallOption) error {
	return nil
}

func (c *recordingConn) Notify(_ context.Context, method string, params any, _ ...jsonrpc2.CallOption) error {
	if method == "textDocument/publishDiagnostics" {
		c.notified <- params.(lsp.PublishDiagnosticsParams)
	}
	return nil
}

func (c *recordingConn) Close() error { return nil }
