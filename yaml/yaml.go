// Package yaml provides a YAML codec implementation.
//
// Output uses flow style so a value fits on one CSV line:
// {name: test, value: 42}
package yaml

import (
	"bytes"

	"github.com/zoobzio/tabular"
	"gopkg.in/yaml.v3"
)

// yamlCodec implements tabular.Codec for YAML.
type yamlCodec struct{}

// New returns a YAML codec.
func New() tabular.Codec {
	return &yamlCodec{}
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as flow-style YAML.
func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	var node yaml.Node
	if err := node.Encode(v); err != nil {
		return nil, err
	}
	flow(&node)
	data, err := yaml.Marshal(&node)
	if err != nil {
		return nil, err
	}
	return bytes.TrimRight(data, "\n"), nil
}

// Unmarshal decodes YAML data into v.
func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

func flow(n *yaml.Node) {
	if n.Kind == yaml.MappingNode || n.Kind == yaml.SequenceNode {
		n.Style |= yaml.FlowStyle
	}
	for _, child := range n.Content {
		flow(child)
	}
}
