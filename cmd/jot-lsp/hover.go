package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/jot-format/go-jot/ir"
	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}

	line := int(params.Position.Line)
	col := int(params.Position.Character)
	part := doc.partAt(line)
	if part == nil {
		return nil, nil
	}

	node := part.nodeAt(line-part.lineOff, col)
	if node == nil {
		return nil, nil
	}

	text := hoverText(node)
	if text == "" {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: text,
		},
	}, nil
}

// nodeAt picks the node starting nearest the cursor column on its
// line. Ties go to the later start, which is the inner node when a
// container opens where its first value begins.
func (p *docPart) nodeAt(line, col int) *ir.Node {
	var (
		best  *ir.Node
		bestD int
		bestI int
	)
	for node, pos := range p.positions {
		ln, c := pos.LineCol()
		if ln != line {
			continue
		}
		d := c - col
		if d < 0 {
			d = -d
		}
		if best == nil || d < bestD || (d == bestD && pos.I > bestI) {
			best, bestD, bestI = node, d, pos.I
		}
	}
	return best
}

func hoverText(node *ir.Node) string {
	var parts []string

	parts = append(parts, fmt.Sprintf("**Type:** %s", node.Type()))

	if v := valueInfo(node); v != "" {
		parts = append(parts, fmt.Sprintf("**Value:** %s", v))
	}
	if node.Meta != "" {
		parts = append(parts, fmt.Sprintf("**Source:** %s", node.Meta))
	}
	if flags := node.Flags(); len(flags) != 0 {
		parts = append(parts, fmt.Sprintf("**Flags:** %s", strings.Join(flags, ", ")))
	}

	return strings.Join(parts, "\n\n")
}

func valueInfo(node *ir.Node) string {
	switch node.Type() {
	case ir.NullType:
		return "`null`"
	case ir.BoolType:
		if *node.Bool() {
			return "`true`"
		}
		return "`false`"
	case ir.IntegerType:
		return fmt.Sprintf("`%d`", *node.Integer())
	case ir.FloatType:
		return fmt.Sprintf("`%g`", *node.Float())
	case ir.StringType:
		v := *node.Text()
		if len(v) > 50 {
			v = v[:50] + "..."
		}
		return fmt.Sprintf("`%s`", v)
	case ir.ArrayType:
		return fmt.Sprintf("array with %d elements", node.Len())
	case ir.ObjectType:
		return fmt.Sprintf("object with %d keys", node.Len())
	}
	return ""
}
