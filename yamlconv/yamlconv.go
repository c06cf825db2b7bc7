// Package yamlconv converts documents to and from YAML.
//
// The bridge goes through plain Go values, so Meta and flags do not
// survive a YAML trip, and integral floats come back as integers (YAML
// renders 2.0 as 2).
package yamlconv

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/jot-format/go-jot/ir"
)

// FromYAML parses one YAML document into a node. Integer scalars stay
// integers.
func FromYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	return ir.FromAny(v)
}

// ToYAML renders a node as YAML.
func ToYAML(n *ir.Node) ([]byte, error) {
	d, err := yaml.Marshal(ir.ToAny(n))
	if err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	return d, nil
}
