package main

import (
	"context"

	"github.com/jot-format/go-jot/encode"
	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/token"
	"go.lsp.dev/protocol"
)

// tokenTypes is the legend order; Initialize advertises the same
// slice.
var tokenTypes = []protocol.SemanticTokenTypes{
	protocol.SemanticTokenComment,
	protocol.SemanticTokenKeyword,
	protocol.SemanticTokenString,
	protocol.SemanticTokenNumber,
	protocol.SemanticTokenOperator,
	protocol.SemanticTokenProperty,
}

func typeIndex(tt protocol.SemanticTokenTypes) uint32 {
	for i, t := range tokenTypes {
		if t == tt {
			return uint32(i)
		}
	}
	return 2
}

// tokenTypeFor maps the encoder's color attributes onto semantic
// token types, so editors shade the classes the CLI colors.
func tokenTypeFor(attr encode.ColorAttr, t ir.Type) protocol.SemanticTokenTypes {
	switch attr {
	case encode.CommentColor:
		return protocol.SemanticTokenComment
	case encode.FieldColor:
		return protocol.SemanticTokenProperty
	case encode.SepColor:
		return protocol.SemanticTokenOperator
	}
	switch t {
	case ir.StringType:
		return protocol.SemanticTokenString
	case ir.IntegerType, ir.FloatType:
		return protocol.SemanticTokenNumber
	default:
		// null and bool read as keywords
		return protocol.SemanticTokenKeyword
	}
}

// classify assigns the i'th lexical token a color attribute and value
// type. A string directly before a colon is an object key.
func classify(toks []token.Token, i int) (encode.ColorAttr, ir.Type) {
	switch toks[i].Type {
	case token.TString:
		if i+1 < len(toks) && toks[i+1].Type == token.TColon {
			return encode.FieldColor, ir.StringType
		}
		return encode.ValueColor, ir.StringType
	case token.TLiteral:
		return encode.ValueColor, ir.StringType
	case token.TInteger:
		return encode.ValueColor, ir.IntegerType
	case token.TFloat:
		return encode.ValueColor, ir.FloatType
	case token.TTrue, token.TFalse:
		return encode.ValueColor, ir.BoolType
	case token.TNull:
		return encode.ValueColor, ir.NullType
	default:
		return encode.SepColor, ir.NullType
	}
}

type span struct {
	line, col, length uint32
	tt                protocol.SemanticTokenTypes
}

// commentSpans finds // comments between two token boundaries. The
// tokenizer drops comments, so the gaps between tokens are the only
// place they live. A comment never crosses a line.
func commentSpans(pd *token.PosDoc, content string, from, to int) []span {
	var res []span
	for i := from; i+1 < to; i++ {
		if content[i] != '/' || content[i+1] != '/' {
			continue
		}
		end := i
		for end < to && content[end] != '\n' {
			end++
		}
		line, col := pd.LineCol(i)
		res = append(res, span{
			line:   uint32(line),
			col:    uint32(col),
			length: uint32(end - i),
			tt:     protocol.SemanticTokenComment,
		})
		i = end
	}
	return res
}

// collectSemanticTokens shades content from its lexical tokens. The
// tree is not needed; malformed input still highlights whatever
// tokenized.
func collectSemanticTokens(content string) []uint32 {
	toks, _ := token.Tokenize(nil, []byte(content))
	pd := token.NewPosDoc([]byte(content))

	spans := []span{}
	prevEnd := 0
	for i := range toks {
		t := &toks[i]
		spans = append(spans, commentSpans(pd, content, prevEnd, t.Pos.I)...)
		attr, vt := classify(toks, i)
		line, col := t.Pos.LineCol()
		spans = append(spans, span{
			line:   uint32(line),
			col:    uint32(col),
			length: uint32(len(t.Bytes)),
			tt:     tokenTypeFor(attr, vt),
		})
		prevEnd = t.Pos.I + len(t.Bytes)
	}
	spans = append(spans, commentSpans(pd, content, prevEnd, len(content))...)

	// delta-encode; spans arrive in document order
	data := []uint32{}
	var prevLine, prevCol uint32
	for _, sp := range spans {
		deltaLine := sp.line - prevLine
		deltaCol := sp.col
		if deltaLine == 0 {
			deltaCol = sp.col - prevCol
		}
		data = append(data, deltaLine, deltaCol, sp.length, typeIndex(sp.tt), 0)
		prevLine, prevCol = sp.line, sp.col
	}
	return data
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{Data: collectSemanticTokens(doc.content)}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	// full data is valid for any range; narrowing is an optimization
	return &protocol.SemanticTokens{Data: collectSemanticTokens(doc.content)}, nil
}
