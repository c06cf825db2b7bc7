package eval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jot-format/go-jot/debug"
	"github.com/jot-format/go-jot/encode"
	"github.com/jot-format/go-jot/ir"

	"github.com/expr-lang/expr"
)

// Expand rewrites $[expr] spans inside every string of doc, in place.
// Expressions see env plus the document-aware functions, which resolve
// against the doc passed here. Results are spliced back as text, so
// expanded nodes stay strings.
func Expand(doc *ir.Node, env Env) error {
	return expand(doc, doc, env)
}

func expand(root, n *ir.Node, env Env) error {
	switch n.Type() {
	case ir.ObjectType:
		obj, _ := n.AsObject()
		for _, v := range obj {
			if err := expand(root, v, env); err != nil {
				return err
			}
		}
	case ir.ArrayType:
		arr, _ := n.AsArray()
		for _, v := range arr {
			if err := expand(root, v, env); err != nil {
				return err
			}
		}
	case ir.StringType:
		s, _ := n.AsString()
		xs, err := expandString(s, env, docFuncs(root))
		if err != nil {
			return fmt.Errorf("expanding %q: %w", s, err)
		}
		*n.Text() = xs
	}
	return nil
}

// ExpandString rewrites $[expr] spans in one string. Inside a span a
// backslash escapes the next character, so \] does not close the span
// and \\ is a literal backslash. A span with no closing ] is kept as
// literal text.
func ExpandString(v string, env Env) (string, error) {
	return expandString(v, env, []expr.Option{getenvFunc()})
}

func expandString(v string, env Env, opts []expr.Option) (string, error) {
	if len(v) < 3 {
		return v, nil
	}
	exprStart := -1 // position of the $ that opened the span
	i := 0
	n := len(v)
	var outBuf []byte
	var keyBuf []byte

	for i < n-1 {
		c, next := v[i], v[i+1]
		i++
		switch c {
		case '$':
			if exprStart == -1 && next == '[' {
				exprStart = i - 1
				keyBuf = keyBuf[:0]
				i++
				continue
			}
			if exprStart == -1 {
				outBuf = append(outBuf, c)
			} else {
				keyBuf = append(keyBuf, c)
			}
		case '\\':
			if exprStart != -1 {
				keyBuf = append(keyBuf, next)
				i++
				continue
			}
			outBuf = append(outBuf, c)
		case ']':
			if exprStart != -1 {
				text, err := evalSpan(string(keyBuf), env, opts)
				if err != nil {
					return "", err
				}
				outBuf = append(outBuf, text...)
				exprStart = -1
				continue
			}
			outBuf = append(outBuf, c)
		default:
			if exprStart == -1 {
				outBuf = append(outBuf, c)
			} else {
				keyBuf = append(keyBuf, c)
			}
		}
	}

	if exprStart == -1 {
		outBuf = append(outBuf, v[n-1])
		return string(outBuf), nil
	}

	// still inside a span: it closes on the last byte or not at all
	if i >= n || v[n-1] != ']' {
		outBuf = append(outBuf, v[exprStart:]...)
		return string(outBuf), nil
	}
	text, err := evalSpan(string(keyBuf), env, opts)
	if err != nil {
		return "", err
	}
	outBuf = append(outBuf, text...)
	return string(outBuf), nil
}

func evalSpan(src string, env Env, opts []expr.Option) (string, error) {
	key := strings.TrimSpace(src)
	prg, err := expr.Compile(key, opts...)
	if err != nil {
		return "", fmt.Errorf("compile %q: %w", key, err)
	}
	x, err := expr.Run(prg, env)
	if err != nil {
		return "", fmt.Errorf("eval %q: %w", key, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q gave %#v\n", key, x)
	}
	return resultText(x)
}

// resultText renders an evaluation result for splicing into the
// surrounding string.
func resultText(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	default:
		n, err := fromResult(v)
		if err != nil {
			return "", err
		}
		return encode.MustString(n, encode.Compact(true)), nil
	}
}
