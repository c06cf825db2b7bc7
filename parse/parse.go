package parse

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/token"
)

// Parse parses jot text into a node tree. It never gives up on the
// input: every syntax problem is recorded and the parse continues, so
// the returned node is always usable and the error, when non-nil,
// joins one SyntaxErr per problem. Duplicate object keys are not a
// problem; the last value wins.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{doc: token.NewPosDoc(d), opts: pOpts}
	var tokErr error
	p.toks, tokErr = token.Tokenize(nil, d)
	p.keepAll(tokErr)

	var res *ir.Node
	if len(p.toks) == 0 {
		p.keep(token.NewTokenizeErr(token.ErrEmptyDoc, p.doc.End()))
		res = ir.Null()
	} else {
		res = p.value(0)
		if p.i < len(p.toks) {
			p.keep(token.UnexpectedErr("trailing content", p.toks[p.i].Pos))
		}
	}
	if pOpts.source != "" {
		res.SetMeta(pOpts.source)
	}
	return res, errors.Join(p.errs...)
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

type parser struct {
	doc  *token.PosDoc
	toks []token.Token
	opts *parseOpts
	i    int
	errs []error
}

func (p *parser) keep(err error) {
	se := &SyntaxErr{Err: err, Source: p.opts.source}
	var te *token.TokenizeErr
	if errors.As(err, &te) {
		se.Pos = te.Pos
	}
	p.errs = append(p.errs, se)
}

// keepAll unpacks a joined tokenizer error into per-problem records.
func (p *parser) keepAll(err error) {
	if err == nil {
		return
	}
	if u, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range u.Unwrap() {
			p.keep(e)
		}
		return
	}
	p.keep(err)
}

func (p *parser) track(n *ir.Node, pos *token.Pos) *ir.Node {
	if p.opts.positions != nil && pos != nil {
		p.opts.positions[n] = *pos
	}
	return n
}

func (p *parser) value(depth int) *ir.Node {
	if depth > p.opts.maxDepth {
		if p.i < len(p.toks) {
			p.keep(token.NewTokenizeErr(ErrMaxDepth, p.toks[p.i].Pos))
		}
		p.skipValue()
		return ir.Null()
	}
	for p.i < len(p.toks) {
		t := &p.toks[p.i]
		switch t.Type {
		case token.TNull:
			p.i++
			return p.track(ir.Null(), t.Pos)
		case token.TTrue:
			p.i++
			return p.track(ir.FromBool(true), t.Pos)
		case token.TFalse:
			p.i++
			return p.track(ir.FromBool(false), t.Pos)
		case token.TInteger:
			p.i++
			return p.track(p.integer(t), t.Pos)
		case token.TFloat:
			p.i++
			f, err := strconv.ParseFloat(string(t.Bytes), 64)
			if err != nil {
				p.keep(token.NewTokenizeErr(token.ErrNumber, t.Pos))
				return p.track(ir.Null(), t.Pos)
			}
			return p.track(ir.FromFloat(f), t.Pos)
		case token.TString:
			p.i++
			// malformed escapes were reported by the tokenizer; the
			// lenient decode still yields the readable text
			return p.track(ir.FromString(t.String()), t.Pos)
		case token.TLiteral:
			// already reported by the tokenizer; recover the word as
			// a string value
			p.i++
			return p.track(ir.FromString(t.String()), t.Pos)
		case token.TLSquare:
			return p.array(t, depth)
		case token.TLCurl:
			return p.object(t, depth)
		case token.TRSquare, token.TRCurl:
			// left for the enclosing container to consume
			p.keep(token.ExpectedErr("a value", t.Pos))
			return p.track(ir.Null(), t.Pos)
		default:
			p.keep(token.UnexpectedErr(fmt.Sprintf("%q", string(t.Bytes)), t.Pos))
			p.i++
		}
	}
	p.keep(token.ExpectedErr("a value", p.doc.End()))
	return ir.Null()
}

// integer converts an integer token, falling back to a float node
// when the value does not fit in int64.
func (p *parser) integer(t *token.Token) *ir.Node {
	n, err := strconv.ParseInt(string(t.Bytes), 10, 64)
	if err == nil {
		return ir.FromInt(n)
	}
	f, err := strconv.ParseFloat(string(t.Bytes), 64)
	if err != nil {
		p.keep(token.NewTokenizeErr(token.ErrNumber, t.Pos))
		return ir.Null()
	}
	return ir.FromFloat(f)
}

func (p *parser) array(open *token.Token, depth int) *ir.Node {
	p.i++
	res := ir.New(ir.ArrayType)
	p.track(res, open.Pos)
	arr := res.Array()
	for n := 0; ; n++ {
		if p.i >= len(p.toks) {
			p.keep(token.ExpectedErr("']'", p.doc.End()))
			return res
		}
		if p.closes(token.TRSquare, "']'") {
			return res
		}
		t := &p.toks[p.i]
		if n > 0 {
			if t.Type == token.TComma {
				p.i++
				if p.i < len(p.toks) && p.closes(token.TRSquare, "']'") {
					p.keep(token.UnexpectedErr("','", t.Pos))
					return res
				}
			} else {
				p.keep(token.ExpectedErr("','", t.Pos))
			}
		}
		*arr = append(*arr, p.value(depth+1))
	}
}

func (p *parser) object(open *token.Token, depth int) *ir.Node {
	p.i++
	res := ir.New(ir.ObjectType)
	p.track(res, open.Pos)
	obj := res.Object()
	for n := 0; ; n++ {
		if p.i >= len(p.toks) {
			p.keep(token.ExpectedErr("'}'", p.doc.End()))
			return res
		}
		if p.closes(token.TRCurl, "'}'") {
			return res
		}
		t := &p.toks[p.i]
		if n > 0 {
			if t.Type == token.TComma {
				p.i++
				if p.i < len(p.toks) && p.closes(token.TRCurl, "'}'") {
					p.keep(token.UnexpectedErr("','", t.Pos))
					return res
				}
			} else {
				p.keep(token.ExpectedErr("','", t.Pos))
			}
		}
		key, ok := p.key()
		if !ok {
			p.skipValue()
			continue
		}
		obj[key] = p.value(depth + 1)
	}
}

// closes reports whether the current token ends the container whose
// closer is want. A mismatched closer ends it too, with a problem
// kept, so one missing bracket cannot cascade.
func (p *parser) closes(want token.TokenType, label string) bool {
	t := &p.toks[p.i]
	if t.Type == want {
		p.i++
		return true
	}
	if t.Type == token.TRSquare || t.Type == token.TRCurl {
		p.keep(token.ExpectedErr(label, t.Pos))
		p.i++
		return true
	}
	return false
}

// key consumes an object key and its colon. Unquoted scalars are
// taken as keys with a problem recorded; anything else fails and the
// caller skips a token to keep moving.
func (p *parser) key() (string, bool) {
	if p.i >= len(p.toks) {
		p.keep(token.ExpectedErr("an object key", p.doc.End()))
		return "", false
	}
	t := &p.toks[p.i]
	var key string
	switch t.Type {
	case token.TString:
		key = t.String()
	case token.TLiteral:
		// already reported by the tokenizer
		key = t.String()
	case token.TNull, token.TTrue, token.TFalse, token.TInteger, token.TFloat:
		p.keep(token.ExpectedErr("a quoted object key", t.Pos))
		key = string(t.Bytes)
	default:
		p.keep(token.ExpectedErr("an object key", t.Pos))
		return "", false
	}
	p.i++
	if p.i >= len(p.toks) {
		p.keep(token.ExpectedErr("':'", p.doc.End()))
		return key, true
	}
	if p.toks[p.i].Type == token.TColon {
		p.i++
	} else {
		p.keep(token.ExpectedErr("':'", p.toks[p.i].Pos))
	}
	return key, true
}

// skipValue consumes one value's worth of tokens without building
// nodes: a scalar, or a balanced container.
func (p *parser) skipValue() {
	depth := 0
	for p.i < len(p.toks) {
		switch p.toks[p.i].Type {
		case token.TLSquare, token.TLCurl:
			depth++
		case token.TRSquare, token.TRCurl:
			depth--
		}
		p.i++
		if depth <= 0 {
			return
		}
	}
}
