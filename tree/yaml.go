package tree

import (
	"math"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oy3o/sol"
	"github.com/oy3o/sol/amf3"
)

// YAML builds an order-preserving YAML document of pairs under the key root.
// Duplicate keys are emitted as they are, so the result may not load back
// into a Go map.
func YAML(root string, pairs []sol.Pair, opts *Options) (*yaml.Node, error) {
	body := &yaml.Node{Kind: yaml.MappingNode}
	b := &yamlBuilder{stack: []*yaml.Node{body}}
	if _, err := Walk(pairs, b, opts); err != nil {
		return nil, err
	}
	top := &yaml.Node{Kind: yaml.MappingNode}
	top.Content = append(top.Content, yamlString(root), body)
	return &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{top}}, nil
}

type yamlBuilder struct {
	stack []*yaml.Node
}

// attach adds n to the innermost open node, under the key of p when that
// node is a mapping.
func (b *yamlBuilder) attach(p Path, n *yaml.Node) {
	parent := b.stack[len(b.stack)-1]
	if parent.Kind == yaml.SequenceNode {
		parent.Content = append(parent.Content, n)
		return
	}
	step := p.Last()
	key := step.Key
	if !step.Keyed() {
		key = "[" + strconv.Itoa(step.Index) + "]"
	}
	parent.Content = append(parent.Content, yamlString(key), n)
}

func (b *yamlBuilder) Leaf(p Path, v sol.Value) (sol.Value, error) {
	b.attach(p, yamlScalar(v))
	return v, nil
}

func (b *yamlBuilder) Enter(p Path, v sol.Value) error {
	n := &yaml.Node{Kind: yaml.MappingNode}
	switch x := v.(type) {
	case amf3.Array:
		// Mixed arrays keep their dense part under "[i]" keys.
		if len(x.Assoc) == 0 {
			n.Kind = yaml.SequenceNode
		}
	case amf3.Object:
		if x.ClassName != "" {
			n.LineComment = x.ClassName
		}
	}
	b.attach(p, n)
	b.stack = append(b.stack, n)
	return nil
}

func (b *yamlBuilder) Leave(Path, sol.Value) error {
	b.stack = b.stack[:len(b.stack)-1]
	return nil
}

func (b *yamlBuilder) Unsupported(p Path, v sol.Value) error {
	b.attach(p, yamlString(Placeholder(v)))
	return nil
}

func yamlString(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func yamlScalar(v sol.Value) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode}
	switch x := v.(type) {
	case sol.Number:
		n.Tag, n.Value = "!!float", yamlFloat(float64(x))
	case amf3.Double:
		n.Tag, n.Value = "!!float", yamlFloat(float64(x))
	case sol.Boolean:
		n.Tag, n.Value = "!!bool", strconv.FormatBool(bool(x))
	case amf3.Boolean:
		n.Tag, n.Value = "!!bool", strconv.FormatBool(bool(x))
	case sol.String:
		n.Tag, n.Value = "!!str", string(x)
	case amf3.String:
		n.Tag, n.Value = "!!str", string(x)
	case amf3.Integer:
		n.Tag, n.Value = "!!int", strconv.FormatInt(int64(x), 10)
	case amf3.Undefined, amf3.Null:
		n.Tag, n.Value = "!!null", "~"
	case amf3.Date:
		n.Tag, n.Value = "!!timestamp", x.Time().Format(time.RFC3339Nano)
	default:
		n.Tag, n.Value = "!!str", Placeholder(v)
	}
	return n
}

// yamlFloat spells the special values the way YAML does, and keeps whole
// numbers looking like floats so the !!float tag stays implicit.
func yamlFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
