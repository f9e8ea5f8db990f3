package lsp

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	lsp "github.com/sourcegraph/go-lsp"
	"github.com/sourcegraph/jsonrpc2"

	"src.tvk.sh/pkg/must"
	"src.tvk.sh/pkg/testutil"
)

func TestProgram(t *testing.T) {
	r0, w0 := must.Pipe()
	r1, w1 := must.Pipe()
	p := &Program{run: true}
	done := make(chan error)
	go func() { done <- p.Run([3]*os.File{r0, w1, nil}, nil) }()

	notified := make(chan lsp.PublishDiagnosticsParams, 1)
	ctx := context.Background()
	client := jsonrpc2.NewConn(ctx,
		jsonrpc2.NewBufferedStream(transport{r1, w0}, jsonrpc2.VSCodeObjectCodec{}),
		jsonrpc2.HandlerWithError(func(_ context.Context, _ *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
			if req.Method == "textDocument/publishDiagnostics" && req.Params != nil {
				var params lsp.PublishDiagnosticsParams
				if json.Unmarshal(*req.Params, &params) == nil {
					notified <- params
				}
			}
			return nil, nil
		}))
	defer client.Close()

	var init lsp.InitializeResult
	if err := client.Call(ctx, "initialize", lsp.InitializeParams{}, &init); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if !init.Capabilities.HoverProvider || init.Capabilities.CompletionProvider == nil {
		t.Errorf("got capabilities %+v", init.Capabilities)
	}

	client.Notify(ctx, "textDocument/didOpen", lsp.DidOpenTextDocumentParams{
		TextDocument: lsp.TextDocumentItem{URI: testURI, Text: "(draw nope)"}})
	select {
	case params := <-notified:
		if len(params.Diagnostics) != 1 ||
			params.Diagnostics[0].Message != "unbound identifier: nope" {
			t.Errorf("got diagnostics %v", params.Diagnostics)
		}
	case <-time.After(testutil.Scaled(5 * time.Second)):
		t.Fatalf("timed out waiting for diagnostics")
	}

	var items []lsp.CompletionItem
	err := client.Call(ctx, "textDocument/completion",
		lsp.CompletionParams{TextDocumentPositionParams: docPos(0, 3)}, &items)
	if err != nil || len(items) != 1 || items[0].Label != "draw" {
		t.Errorf("completion -> %v, %v", items, err)
	}

	err = client.Call(ctx, "no-such-method", nil, nil)
	if rpcErr, ok := err.(*jsonrpc2.Error); !ok || rpcErr.Code != jsonrpc2.CodeMethodNotFound {
		t.Errorf("got error %v for unknown method", err)
	}

	if err := client.Call(ctx, "shutdown", nil, nil); err != nil {
		t.Errorf("shutdown: %v", err)
	}
	client.Notify(ctx, "exit", nil)
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(testutil.Scaled(5 * time.Second)):
		t.Fatalf("server did not exit")
	}
}
