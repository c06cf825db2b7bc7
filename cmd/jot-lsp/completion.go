package main

import (
	"context"
	"strings"

	"go.lsp.dev/protocol"
)

// Completion offers the keyword values where a value can start: after
// a colon, a comma, an array opener, or at the start of a line.
func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}

	off := lineColToOffset(doc.content, int(params.Position.Line), int(params.Position.Character))
	before := strings.TrimRight(doc.content[:off], " \t")
	if before != "" {
		switch before[len(before)-1] {
		case ':', ',', '[', '\n':
		default:
			return nil, nil
		}
	}

	items := []protocol.CompletionItem{
		{
			Label:      "null",
			Kind:       protocol.CompletionItemKindKeyword,
			InsertText: "null",
		},
		{
			Label:      "true",
			Kind:       protocol.CompletionItemKindKeyword,
			InsertText: "true",
		},
		{
			Label:      "false",
			Kind:       protocol.CompletionItemKindKeyword,
			InsertText: "false",
		},
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}
