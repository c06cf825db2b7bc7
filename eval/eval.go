package eval

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jot-format/go-jot/debug"
	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/parse"

	"github.com/expr-lang/expr"
)

// Env is the variable environment expressions run against.
type Env map[string]any

// Eval evaluates one expression against env alone, with the getenv
// function available. Use Query to evaluate against a document.
func Eval(src string, env Env) (any, error) {
	prg, err := expr.Compile(strings.TrimSpace(src), getenvFunc())
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", src, err)
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return nil, fmt.Errorf("eval %q: %w", src, err)
	}
	return res, nil
}

// Query evaluates an expr-lang expression against doc and returns the
// result as a node. The top-level entries of an object document are
// visible as identifiers, and the get, has, meta and getenv functions
// resolve pointers against doc.
func Query(doc *ir.Node, src string) (*ir.Node, error) {
	prg, err := expr.Compile(src, docFuncs(doc)...)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", src, err)
	}
	res, err := expr.Run(prg, docEnv(doc))
	if err != nil {
		return nil, fmt.Errorf("eval %q: %w", src, err)
	}
	if debug.Eval() {
		debug.Logf("query %q gave %#v\n", src, res)
	}
	return fromResult(res)
}

// docEnv exposes an object document's top-level entries as variables.
// Other document types contribute no variables, only functions.
func docEnv(doc *ir.Node) Env {
	if m, ok := ir.ToAny(doc).(map[string]any); ok {
		return m
	}
	return Env{}
}

// fromResult converts an evaluation result to a node, falling back to
// a JSON round trip for result types FromAny does not cover.
func fromResult(v any) (*ir.Node, error) {
	n, err := ir.FromAny(v)
	if err == nil {
		return n, nil
	}
	d, jerr := json.Marshal(v)
	if jerr != nil {
		return nil, err
	}
	return parse.Parse(d)
}
