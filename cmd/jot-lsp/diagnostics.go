package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/parse"
	"github.com/jot-format/go-jot/token"
	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	content string
	version int32
	parts   []*docPart
}

// docPart is one document of a multi-document file. The parse never
// gives up, so a part always has a tree; its problems live in errs
// with their positions. lineOff is the line the part starts on.
type docPart struct {
	lineOff   int
	node      *ir.Node
	errs      []*parse.SyntaxErr
	positions map[*ir.Node]token.Pos
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	var parts []*docPart
	lineOff := 0
	for _, d := range bytes.Split([]byte(content), []byte("\n---\n")) {
		positions := make(map[*ir.Node]token.Pos)
		node, err := parse.Parse(d, parse.Positions(positions))
		parts = append(parts, &docPart{
			lineOff:   lineOff,
			node:      node,
			errs:      syntaxErrs(err),
			positions: positions,
		})
		// the separator spends two lines: the one its leading newline
		// ends and the --- line itself
		lineOff += bytes.Count(d, []byte("\n")) + 2
	}

	ds.docs[uri] = &document{
		uri:     uri,
		content: content,
		version: version,
		parts:   parts,
	}
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

// partAt finds the part covering a document line.
func (d *document) partAt(line int) *docPart {
	var res *docPart
	for _, p := range d.parts {
		if p.lineOff > line {
			break
		}
		res = p
	}
	return res
}

// syntaxErrs unpacks the joined error from Parse into its per-problem
// records.
func syntaxErrs(err error) []*parse.SyntaxErr {
	if err == nil {
		return nil
	}
	if se, ok := err.(*parse.SyntaxErr); ok {
		return []*parse.SyntaxErr{se}
	}
	u, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return nil
	}
	var res []*parse.SyntaxErr
	for _, e := range u.Unwrap() {
		res = append(res, syntaxErrs(e)...)
	}
	return res
}

// diagMessage strips the position dump from a problem's text; the
// diagnostic range already carries where it is.
func diagMessage(se *parse.SyntaxErr) string {
	var te *token.TokenizeErr
	if errors.As(se.Err, &te) {
		return te.Err.Error()
	}
	return se.Err.Error()
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := validateDocument(doc)

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	for _, part := range doc.parts {
		for _, se := range part.errs {
			line, col := se.Pos.LineCol()
			line += part.lineOff
			diagnostics = append(diagnostics, protocol.Diagnostic{
				Range: protocol.Range{
					Start: protocol.Position{Line: uint32(line), Character: uint32(col)},
					End:   protocol.Position{Line: uint32(line), Character: uint32(col + 1)},
				},
				Severity: protocol.DiagnosticSeverityError,
				Message:  diagMessage(se),
				Source:   "jot",
			})
		}
	}
	return diagnostics
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}

	content := doc.content
	for _, change := range params.ContentChanges {
		r := change.Range
		if r.Start.Line == 0 && r.Start.Character == 0 && r.End.Line == 0 && r.End.Character == 0 {
			// zero range means the client replaced the whole document
			content = change.Text
			continue
		}
		start := lineColToOffset(content, int(r.Start.Line), int(r.Start.Character))
		end := lineColToOffset(content, int(r.End.Line), int(r.End.Character))
		if start <= end {
			content = content[:start] + change.Text + content[end:]
		}
	}

	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

// lineColToOffset converts a line and column to a byte offset,
// clamping past-the-end positions to the document end.
func lineColToOffset(content string, line, col int) int {
	off := 0
	for ; line > 0 && off < len(content); off++ {
		if content[off] == '\n' {
			line--
		}
	}
	if rest := len(content) - off; col > rest {
		col = rest
	}
	if nl := strings.IndexByte(content[off:], '\n'); nl >= 0 && col > nl {
		col = nl
	}
	return off + col
}
