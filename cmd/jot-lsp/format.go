package main

import (
	"bytes"
	"context"
	"strings"

	"github.com/jot-format/go-jot/encode"
	"github.com/jot-format/go-jot/parse"
	"go.lsp.dev/protocol"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}

	formatted, err := formatDocument(doc.content)
	if err != nil {
		// malformed input: leave the buffer alone
		return nil, nil
	}
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}

	lines := strings.Count(doc.content, "\n")
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}

	// one edit replacing the whole document
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End: protocol.Position{
					Line:      uint32(lines),
					Character: 0,
				},
			},
			NewText: formatted,
		},
	}, nil
}

// formatDocument renders content the way jot fmt does, one document
// per --- separator. Input with syntax problems is refused rather
// than rewritten from the recovered tree.
func formatDocument(content string) (string, error) {
	docs := bytes.Split([]byte(content), []byte("\n---\n"))
	var buf bytes.Buffer
	for i, d := range docs {
		node, err := parse.Parse(d)
		if err != nil {
			return "", err
		}
		if err := encode.Encode(node, &buf, encode.EncodeComments(true)); err != nil {
			return "", err
		}
		if i < len(docs)-1 {
			buf.WriteString("\n---\n")
		}
	}
	return buf.String(), nil
}
