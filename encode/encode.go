package encode

import (
	"io"
	"strconv"
	"strings"

	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/token"
)

// EncState is the state of one encoding pass. compact is the caller's
// layout request; compactMode tracks whether output is currently on a
// single line, which it also enters per subtree when IsCompact holds.
type EncState struct {
	compact     bool
	compactMode bool
	comments    bool
	depth       int

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w followed by a newline. The only error
// source is the sink.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		comments: true,
	}
	for _, opt := range opts {
		opt(es)
	}
	es.compactMode = es.compact
	if err := encode(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	wasCompact := es.compactMode
	if !es.compactMode && node.IsCompact() {
		es.compactMode = true
	}
	defer func() { es.compactMode = wasCompact }()

	switch node.Type() {
	case ir.NullType:
		return writeValue(w, es, ir.NullType, "null")
	case ir.BoolType:
		v, _ := node.AsBool()
		return writeValue(w, es, ir.BoolType, strconv.FormatBool(v))
	case ir.IntegerType:
		v, _ := node.AsInteger()
		return writeValue(w, es, ir.IntegerType, strconv.FormatInt(v, 10))
	case ir.FloatType:
		v, _ := node.AsFloat()
		return writeValue(w, es, ir.FloatType, formatFloat(v))
	case ir.StringType:
		v, _ := node.AsString()
		return writeValue(w, es, ir.StringType, token.Quote(v))
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.ObjectType:
		return encodeObject(node, w, es)
	default:
		panic("type")
	}
}

// formatFloat keeps retyping information in the text: a rendering
// that reads back as an integer gets a ".0" suffix.
func formatFloat(f float64) string {
	v := strconv.FormatFloat(f, 'g', -1, 64)
	for i := 0; i < len(v); i++ {
		if c := v[i]; c != '-' && (c < '0' || c > '9') {
			return v
		}
	}
	return v + ".0"
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	entries := node.Entries()
	if err := writeOpen(w, es, "{"); err != nil {
		return err
	}
	for i, e := range entries {
		if i > 0 {
			if err := writeSep(w, es, ir.ObjectType); err != nil {
				return err
			}
		}
		if err := writeEntryComments(e.Node, w, es); err != nil {
			return err
		}
		if err := writeIndent(w, es); err != nil {
			return err
		}
		if err := writeField(w, e.Key, es); err != nil {
			return err
		}
		if err := encode(e.Node, w, es); err != nil {
			return err
		}
	}
	return writeClose(w, es, "}", len(entries))
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	elems, _ := node.AsArray()
	if err := writeOpen(w, es, "["); err != nil {
		return err
	}
	for i, v := range elems {
		if i > 0 {
			if err := writeSep(w, es, ir.ArrayType); err != nil {
				return err
			}
		}
		if err := writeEntryComments(v, w, es); err != nil {
			return err
		}
		if err := writeIndent(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	return writeClose(w, es, "]", len(elems))
}

// Layout helpers

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func indent(es *EncState) string {
	return strings.Repeat("\t", es.depth)
}

func writeOpen(w io.Writer, es *EncState, open string) error {
	if es.compactMode {
		open += " "
	} else {
		open += "\n"
	}
	es.depth++
	return writeString(w, open)
}

func writeClose(w io.Writer, es *EncState, closer string, n int) error {
	es.depth--
	if es.compactMode {
		return writeString(w, " "+closer)
	}
	if n != 0 {
		if err := writeString(w, "\n"); err != nil {
			return err
		}
	}
	return writeString(w, indent(es)+closer)
}

func writeSep(w io.Writer, es *EncState, cType ir.Type) error {
	sep := ","
	if es.Color != nil {
		sep = es.Color(cType, SepColor, sep)
	}
	if es.compactMode {
		sep += " "
	} else {
		sep += "\n"
	}
	return writeString(w, sep)
}

func writeIndent(w io.Writer, es *EncState) error {
	if es.compactMode {
		return nil
	}
	return writeString(w, indent(es))
}

// writeEntryComments renders the comment lines preceding a container
// entry: the node's Meta, then its flags. Pretty output only.
func writeEntryComments(node *ir.Node, w io.Writer, es *EncState) error {
	if es.compactMode || !es.comments {
		return nil
	}
	if node.Meta != "" {
		if err := writeCommentLine(w, es, node.Type(), " // "+node.Meta); err != nil {
			return err
		}
	}
	if flags := node.Flags(); len(flags) != 0 {
		ln := " // flags: " + strings.Join(flags, ", ")
		if err := writeCommentLine(w, es, node.Type(), ln); err != nil {
			return err
		}
	}
	return nil
}

func writeCommentLine(w io.Writer, es *EncState, t ir.Type, ln string) error {
	if es.Color != nil {
		ln = es.Color(t, CommentColor, ln)
	}
	return writeString(w, indent(es)+ln+"\n")
}

func writeField(w io.Writer, key string, es *EncState) error {
	f := token.Quote(key)
	sep := " : "
	if es.Color != nil {
		f = es.Color(ir.ObjectType, FieldColor, f)
		sep = es.Color(ir.ObjectType, SepColor, sep)
	}
	return writeString(w, f+sep)
}

func writeValue(w io.Writer, es *EncState, t ir.Type, v string) error {
	if es.Color != nil {
		v = es.Color(t, ValueColor, v)
	}
	return writeString(w, v)
}
