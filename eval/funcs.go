package eval

import (
	"os"

	"github.com/jot-format/go-jot/ir"

	"github.com/expr-lang/expr"
)

// docFuncs are the document-aware expression functions. Pointers use
// Resolve syntax and read through Lookup, so evaluation never modifies
// doc.
func docFuncs(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("get", func(params ...any) (any, error) {
			n, err := doc.Lookup(params[0].(string))
			if err != nil {
				return nil, err
			}
			return ir.ToAny(n), nil
		},
			new(func(string) any)),
		expr.Function("has", func(params ...any) (any, error) {
			n, err := doc.Lookup(params[0].(string))
			if err != nil {
				return nil, err
			}
			return !n.IsNull(), nil
		},
			new(func(string) bool)),
		expr.Function("meta", func(params ...any) (any, error) {
			n, err := doc.Lookup(params[0].(string))
			if err != nil {
				return nil, err
			}
			return n.Meta, nil
		},
			new(func(string) string)),
		getenvFunc(),
	}
}

func getenvFunc() expr.Option {
	return expr.Function("getenv", func(params ...any) (any, error) {
		return os.Getenv(params[0].(string)), nil
	},
		new(func(string) string))
}
