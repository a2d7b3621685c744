package format

import (
	"bytes"
	"fmt"

	"github.com/dshills/confstore/internal/section"
	"gopkg.in/yaml.v3"
)

// YAML maps a top-level mapping of mappings to sections and items. Only
// scalar values are kept; null, sequence and alias values are skipped.
type YAML struct{}

// Name implements Codec.
func (YAML) Name() string { return "yaml" }

// Decode implements Codec.
func (YAML) Decode(data []byte) (section.Layer, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top-level YAML value is not a mapping", ErrMalformed)
	}

	var layer section.Layer
	for i := 0; i+1 < len(root.Content); i += 2 {
		sec := layer.Append(root.Content[i].Value)
		body := root.Content[i+1]
		if body.Kind != yaml.MappingNode {
			continue
		}
		for j := 0; j+1 < len(body.Content); j += 2 {
			v := body.Content[j+1]
			if v.Kind != yaml.ScalarNode || v.ShortTag() == "!!null" {
				continue
			}
			sec.Add(body.Content[j].Value, v.Value)
		}
	}
	return layer, nil
}

// Encode implements Codec. Every scalar is tagged !!str so values such as
// "true" or "10" are quoted and read back as the same text.
func (YAML) Encode(layer section.Layer) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, sec := range objectSections(layer) {
		body := &yaml.Node{Kind: yaml.MappingNode}
		for _, item := range objectItems(sec.Items) {
			body.Content = append(body.Content, yamlString(item.Name), yamlString(item.Value))
		}
		root.Content = append(root.Content, yamlString(sec.Name), body)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(4)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("marshaling YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshaling YAML: %w", err)
	}
	return buf.Bytes(), nil
}

func yamlString(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
