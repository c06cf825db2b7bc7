package main

import (
	"context"
	"testing"

	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/parse"
	"github.com/jot-format/go-jot/token"

	"github.com/google/go-cmp/cmp"
	"go.lsp.dev/protocol"
)

func TestPutMultiDocument(t *testing.T) {
	ds := &documentStore{docs: make(map[string]*document)}
	ds.put("file:///t.jot", "{\"a\": 1}\n---\n{\"b\" 2}", 1)

	doc := ds.get("file:///t.jot")
	if doc == nil {
		t.Fatal("document not stored")
	}
	if len(doc.parts) != 2 {
		t.Fatalf("got %d parts, want 2", len(doc.parts))
	}
	if doc.parts[1].lineOff != 2 {
		t.Errorf("second part starts at line %d, want 2", doc.parts[1].lineOff)
	}
	if len(doc.parts[0].errs) != 0 {
		t.Errorf("first part has problems: %v", doc.parts[0].errs)
	}
	if len(doc.parts[1].errs) == 0 {
		t.Error("second part is missing its colon and should have a problem")
	}

	if p := doc.partAt(0); p != doc.parts[0] {
		t.Error("line 0 is in the first part")
	}
	if p := doc.partAt(2); p != doc.parts[1] {
		t.Error("line 2 is in the second part")
	}
	if p := doc.partAt(99); p != doc.parts[1] {
		t.Error("past-the-end lines fall in the last part")
	}
}

func TestValidateDocument(t *testing.T) {
	ds := &documentStore{docs: make(map[string]*document)}
	ds.put("file:///t.jot", "{\"a\": 1}\n---\n{\"b\" 2}", 1)

	diags := validateDocument(ds.get("file:///t.jot"))
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %v", len(diags), diags)
	}
	d := diags[0]
	if d.Message != "expected ':'" {
		t.Errorf("got message %q", d.Message)
	}
	// the broken key sits on line 2 of the file, after the separator
	want := protocol.Range{
		Start: protocol.Position{Line: 2, Character: 5},
		End:   protocol.Position{Line: 2, Character: 6},
	}
	if d.Range != want {
		t.Errorf("got range %+v, want %+v", d.Range, want)
	}
	if d.Severity != protocol.DiagnosticSeverityError {
		t.Errorf("got severity %v", d.Severity)
	}
}

func TestNodeAtAndHoverText(t *testing.T) {
	part := parsePart(t, `{"hp": 4, "name": "imp"}`, "app.jot")

	n := part.nodeAt(0, 7)
	if n == nil {
		t.Fatal("no node at the integer")
	}
	got := hoverText(n)
	want := "**Type:** Integer\n\n**Value:** `4`\n\n**Source:** app.jot"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if n := part.nodeAt(0, 19); hoverText(n) != "**Type:** String\n\n**Value:** `imp`\n\n**Source:** app.jot" {
		t.Errorf("string hover: got %q", hoverText(n))
	}
	if n := part.nodeAt(0, 0); hoverText(n) != "**Type:** Object\n\n**Value:** object with 2 keys\n\n**Source:** app.jot" {
		t.Errorf("object hover: got %q", hoverText(n))
	}
	if n := part.nodeAt(3, 0); n != nil {
		t.Errorf("no nodes on line 3, got %v", n)
	}
}

func parsePart(t *testing.T, src, label string) *docPart {
	t.Helper()
	positions := make(map[*ir.Node]token.Pos)
	node, err := parse.Parse([]byte(src), parse.Positions(positions), parse.Source(label))
	if err != nil {
		t.Fatal(err)
	}
	return &docPart{node: node, positions: positions}
}

func TestFormatDocument(t *testing.T) {
	got, err := formatDocument("{\"b\":2,\"a\":1}\n---\n[1,  2]")
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n\t\"a\" : 1,\n\t\"b\" : 2\n}\n\n---\n[ 1, 2 ]\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// formatting formatted text changes nothing
	again, err := formatDocument(got)
	if err != nil {
		t.Fatal(err)
	}
	if again != got {
		t.Errorf("not idempotent: %q then %q", got, again)
	}

	if _, err := formatDocument(`{"a" 1}`); err == nil {
		t.Error("malformed input should refuse to format")
	}
}

func TestCollectSemanticTokens(t *testing.T) {
	got := collectSemanticTokens("// hp\n{\"hp\": 4}")
	want := []uint32{
		0, 0, 5, 0, 0, // the comment
		1, 0, 1, 4, 0, // {
		0, 1, 4, 5, 0, // "hp" as a property
		0, 4, 1, 4, 0, // :
		0, 2, 1, 3, 0, // 4
		0, 1, 1, 4, 0, // }
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("token data (-want +got):\n%s", d)
	}
}

func TestLineColToOffset(t *testing.T) {
	content := "ab\ncd\ne"
	for i, tc := range []struct {
		line, col int
		want      int
	}{
		{0, 0, 0},
		{0, 2, 2},
		{1, 1, 4},
		{0, 99, 2},
		{2, 5, 7},
		{5, 0, 7},
	} {
		if got := lineColToOffset(content, tc.line, tc.col); got != tc.want {
			t.Errorf("%d: lineColToOffset(%d, %d) = %d, want %d", i, tc.line, tc.col, got, tc.want)
		}
	}
}

func TestDidChange(t *testing.T) {
	s := &Server{docs: &documentStore{docs: make(map[string]*document)}}
	ctx := context.Background()

	err := s.DidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:     "file:///t.jot",
			Text:    `{"a": 1}`,
			Version: 1,
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	err = s.DidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: "file:///t.jot"},
			Version:                2,
		},
		ContentChanges: []protocol.TextDocumentContentChangeEvent{
			{
				Range: protocol.Range{
					Start: protocol.Position{Line: 0, Character: 6},
					End:   protocol.Position{Line: 0, Character: 7},
				},
				Text: "2",
			},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	doc := s.docs.get("file:///t.jot")
	if doc.content != `{"a": 2}` {
		t.Fatalf("got content %q", doc.content)
	}
	n, err := doc.parts[0].node.Lookup("/a")
	if err != nil {
		t.Fatal(err)
	}
	if *n.Integer() != 2 {
		t.Errorf("got %d, want 2", *n.Integer())
	}

	if err := s.DidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file:///t.jot"},
	}); err != nil {
		t.Fatal(err)
	}
	if s.docs.get("file:///t.jot") != nil {
		t.Error("document not removed on close")
	}
}
