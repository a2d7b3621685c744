package format

import (
	"fmt"
	"strings"

	"github.com/dshills/confstore/internal/section"
	"github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"
)

// TOML maps tables to sections and scalar key/value pairs to items.
//
// Decoding keeps document order. Keys outside any table, array tables,
// arrays and inline tables have no place in a two-level layer and are
// skipped. Encoding goes through go-toml's map marshaling, so the output is
// sorted by name.
type TOML struct{}

// Name implements Codec.
func (TOML) Name() string { return "toml" }

// Decode implements Codec.
func (TOML) Decode(data []byte) (section.Layer, error) {
	var layer section.Layer
	var current *section.Section

	p := unstable.Parser{}
	p.Reset(data)
	for p.NextExpression() {
		expr := p.Expression()
		switch expr.Kind {
		case unstable.Table:
			current = layer.Append(tomlKey(expr.Key()))
		case unstable.ArrayTable:
			current = nil
		case unstable.KeyValue:
			if current == nil {
				continue
			}
			if text, ok := tomlScalar(expr.Value()); ok {
				current.Add(tomlKey(expr.Key()), text)
			}
		}
	}
	if err := p.Error(); err != nil {
		return layer, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return layer, nil
}

// Encode implements Codec.
func (TOML) Encode(layer section.Layer) ([]byte, error) {
	tables := make(map[string]map[string]string, len(layer))
	for _, sec := range objectSections(layer) {
		items := make(map[string]string, len(sec.Items))
		for _, item := range sec.Items {
			items[item.Name] = item.Value
		}
		tables[sec.Name] = items
	}
	data, err := toml.Marshal(tables)
	if err != nil {
		return nil, fmt.Errorf("marshaling TOML: %w", err)
	}
	return data, nil
}

func tomlKey(it unstable.Iterator) string {
	var parts []string
	for it.Next() {
		parts = append(parts, string(it.Node().Data))
	}
	return strings.Join(parts, ".")
}

func tomlScalar(n *unstable.Node) (string, bool) {
	switch n.Kind {
	case unstable.String, unstable.Integer, unstable.Float, unstable.Bool,
		unstable.DateTime, unstable.LocalDateTime, unstable.LocalDate, unstable.LocalTime:
		return string(n.Data), true
	default:
		return "", false
	}
}
