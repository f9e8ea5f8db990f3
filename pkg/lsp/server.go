package lsp

import (
	"context"
	"encoding/json"
	"strings"

	lsp "github.com/sourcegraph/go-lsp"
	"github.com/sourcegraph/jsonrpc2"

	"src.tvk.sh/pkg/diag"
	"src.tvk.sh/pkg/eval"
	"src.tvk.sh/pkg/parse"
)

var (
	errMethodNotFound = &jsonrpc2.Error{
		Code: jsonrpc2.CodeMethodNotFound, Message: "method not found"}
	errInvalidParams = &jsonrpc2.Error{
		Code: jsonrpc2.CodeInvalidParams, Message: "invalid params"}
)

type server struct {
	content map[lsp.DocumentURI]string
}

func newServer() *server {
	return &server{make(map[lsp.DocumentURI]string)}
}

func handler(s *server) jsonrpc2.Handler {
	return routingHandler(map[string]method{
		"initialize":              s.initialize,
		"textDocument/didOpen":    s.didOpen,
		"textDocument/didChange":  s.didChange,
		"textDocument/didClose":   s.didClose,
		"textDocument/hover":      s.hover,
		"textDocument/completion": s.completion,
		"shutdown":                noop,
		"exit":                    exit,

		// Required by the protocol.
		"initialized": noop,
		// Called by clients even when server doesn't advertise support:
		// https://microsoft.github.io/language-server-protocol/specification#workspace_didChangeWatchedFiles
		"workspace/didChangeWatchedFiles": noop,
	})
}

type method func(context.Context, jsonrpc2.JSONRPC2, json.RawMessage) (any, error)

func noop(_ context.Context, _ jsonrpc2.JSONRPC2, _ json.RawMessage) (any, error) {
	return nil, nil
}

func exit(_ context.Context, conn jsonrpc2.JSONRPC2, _ json.RawMessage) (any, error) {
	return nil, conn.Close()
}

func routingHandler(methods map[string]method) jsonrpc2.Handler {
	return jsonrpc2.HandlerWithError(func(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
		logger.Println("request:", req.Method)
		fn, ok := methods[req.Method]
		if !ok {
			return nil, errMethodNotFound
		}
		var params json.RawMessage
		if req.Params != nil {
			params = *req.Params
		}
		return fn(ctx, conn, params)
	})
}

// Handler implementations. These are all called synchronously.

func (s *server) initialize(_ context.Context, _ jsonrpc2.JSONRPC2, _ json.RawMessage) (any, error) {
	return &lsp.InitializeResult{
		Capabilities: lsp.ServerCapabilities{
			TextDocumentSync: &lsp.TextDocumentSyncOptionsOrKind{
				Options: &lsp.TextDocumentSyncOptions{
					OpenClose: true,
					Change:    lsp.TDSKFull,
				},
			},
			HoverProvider:      true,
			CompletionProvider: &lsp.CompletionOptions{},
		},
	}, nil
}

func (s *server) didOpen(ctx context.Context, conn jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.DidOpenTextDocumentParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}

	uri, content := params.TextDocument.URI, params.TextDocument.Text
	s.content[uri] = content
	go publishDiagnostics(ctx, conn, uri, content)
	return nil, nil
}

func (s *server) didChange(ctx context.Context, conn jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.DidChangeTextDocumentParams
	if json.Unmarshal(rawParams, &params) != nil || len(params.ContentChanges) == 0 {
		return nil, errInvalidParams
	}

	// ContentChanges includes full text since the server is only advertised to
	// support that; see the initialize method.
	uri, content := params.TextDocument.URI, params.ContentChanges[0].Text
	s.content[uri] = content
	go publishDiagnostics(ctx, conn, uri, content)
	return nil, nil
}

func (s *server) didClose(ctx context.Context, conn jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.DidCloseTextDocumentParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}
	uri := params.TextDocument.URI
	delete(s.content, uri)
	// Clear the diagnostics of the closed document.
	go conn.Notify(ctx, "textDocument/publishDiagnostics",
		lsp.PublishDiagnosticsParams{URI: uri, Diagnostics: []lsp.Diagnostic{}})
	return nil, nil
}

func (s *server) hover(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.TextDocumentPositionParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}
	uri := params.TextDocument.URI
	content := s.content[uri]
	idx := lspPositionToIdx(content, params.Position)

	tree, _ := parse.Parse(parse.Source{Name: string(uri), Code: content})
	atom := findAtom(tree, idx)
	if atom == nil {
		return lsp.Hover{}, nil
	}
	var text string
	if atom.Keyword != parse.KwNone {
		text = keywordDocs[atom.Keyword]
	} else {
		ev := eval.NewEvaler(eval.Discard)
		ev.EvalTree(tree)
		if v, ok := ev.Env().Lookup(atom.Name); ok {
			text = atom.Name + " = " + v.Repr()
		}
	}
	if text == "" {
		return lsp.Hover{}, nil
	}
	rg := lspRangeFromRange(content, atom)
	return lsp.Hover{Contents: []lsp.MarkedString{lsp.RawMarkedString(text)}, Range: &rg}, nil
}

func findAtom(tree parse.Tree, idx int) *parse.Atom {
	for _, form := range tree.Forms {
		if n := parse.Find(form, idx); n != nil {
			atom, _ := n.(*parse.Atom)
			return atom
		}
	}
	return nil
}

func (s *server) completion(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.CompletionParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}

	content := s.content[params.TextDocument.URI]
	dot := lspPositionToIdx(content, params.Position)
	start := dot
	for start > 0 && parse.IsAtomRune(rune(content[start-1])) {
		start--
	}
	prefix := content[start:dot]
	lspRange := lspRangeFromRange(content, diag.Ranging{From: start, To: dot})

	items := []lsp.CompletionItem{}
	add := func(label string, kind lsp.CompletionItemKind) {
		if strings.HasPrefix(label, prefix) {
			items = append(items, lsp.CompletionItem{
				Label: label,
				Kind:  kind,
				TextEdit: &lsp.TextEdit{
					Range:   lspRange,
					NewText: label,
				},
			})
		}
	}
	for _, kw := range parse.Keywords() {
		add(kw.String(), lsp.CIKKeyword)
	}
	for _, name := range definedNames(content) {
		add(name, lsp.CIKVariable)
	}
	return items, nil
}

// Returns the names defined by top-level def forms, in order of first
// definition.
func definedNames(content string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, form := range parse.ParseForms(content) {
		l, ok := form.(*parse.List)
		if !ok || l.Head() != parse.KwDef || len(l.Elems) < 2 {
			continue
		}
		if a, ok := l.Elems[1].(*parse.Atom); ok && !seen[a.Name] {
			seen[a.Name] = true
			names = append(names, a.Name)
		}
	}
	return names
}

func publishDiagnostics(ctx context.Context, conn jsonrpc2.JSONRPC2, uri lsp.DocumentURI, content string) {
	conn.Notify(ctx, "textDocument/publishDiagnostics",
		lsp.PublishDiagnosticsParams{URI: uri, Diagnostics: diagnostics(uri, content)})
}

// Parse errors are reported as errors, and evaluation diagnostics as warnings.
func diagnostics(uri lsp.DocumentURI, content string) []lsp.Diagnostic {
	tree, err := parse.Parse(parse.Source{Name: string(uri), Code: content})
	diags := []lsp.Diagnostic{}
	for _, err := range parse.UnpackErrors(err) {
		diags = append(diags, lsp.Diagnostic{
			Range:    lspRangeFromRange(content, err),
			Severity: lsp.Error,
			Source:   "parse",
			Message:  err.Message,
		})
	}

	ev := eval.NewEvaler(eval.Discard)
	if err := ev.EvalTree(tree); err != nil {
		if fatal, ok := err.(*eval.FatalError); ok {
			diags = append(diags, lsp.Diagnostic{
				Range:    lspRangeFromRange(content, fatal.Context),
				Severity: lsp.Error,
				Source:   "eval",
				Message:  fatal.Err.Error(),
			})
		}
	}
	for _, d := range ev.Diagnostics() {
		diags = append(diags, lsp.Diagnostic{
			Range:    lspRangeFromRange(content, d),
			Severity: lsp.Warning,
			Source:   "eval",
			Message:  d.Message,
		})
	}
	return diags
}

func lspRangeFromRange(s string, r diag.Ranger) lsp.Range {
	rg := r.Range()
	return lsp.Range{
		Start: lspPositionFromIdx(s, rg.From),
		End:   lspPositionFromIdx(s, rg.To),
	}
}

func lspPositionToIdx(s string, pos lsp.Position) int {
	var idx int
	walkString(s, func(i int, p lsp.Position) bool {
		idx = i
		return p.Line < pos.Line || (p.Line == pos.Line && p.Character < pos.Character)
	})
	return idx
}

func lspPositionFromIdx(s string, idx int) lsp.Position {
	var pos lsp.Position
	walkString(s, func(i int, p lsp.Position) bool {
		pos = p
		return i < idx
	})
	return pos
}

// Generates (index, lspPosition) pairs in s, stopping if f returns false.
func walkString(s string, f func(i int, p lsp.Position) bool) {
	var p lsp.Position
	lastCR := false

	for i, r := range s {
		if !f(i, p) {
			return
		}
		switch {
		case r == '\r':
			p.Line++
			p.Character = 0
		case r == '\n':
			if lastCR {
				// Ignore \n if it's part of a \r\n sequence
			} else {
				p.Line++
				p.Character = 0
			}
		case r <= 0xFFFF:
			// Encoded in UTF-16 with one unit
			p.Character++
		default:
			// Encoded in UTF-16 with two units
			p.Character += 2
		}
		lastCR = r == '\r'
	}
	f(len(s), p)
}
