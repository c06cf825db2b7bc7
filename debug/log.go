package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jot-format/go-jot/encode"
	"github.com/jot-format/go-jot/ir"
)

// Doc wraps a node so it formats as jot text when logged.
type Doc struct{ *ir.Node }

func (y Doc) String() string {
	return encode.MustString(y.Node)
}

// Logf writes to stderr, rendering *ir.Node arguments as jot text and
// generic JSON values indented.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			args[i] = encode.MustString(x)
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
