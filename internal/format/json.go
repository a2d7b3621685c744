package format

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/dshills/confstore/internal/section"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// JSON is the object-of-objects format: {"section": {"key": "value"}}.
type JSON struct{}

var jsonPretty = &pretty.Options{Width: 80, Indent: "    "}

// Name implements Codec.
func (JSON) Name() string { return "json" }

// Decode implements Codec. Sections and items keep document order. A key
// repeated within one object keeps its first position and takes its last
// value, the way a JSON object tree holds it. String values are stored
// decoded, numbers and booleans as their literal text, and null, array or
// object values are skipped.
func (JSON) Decode(data []byte) (section.Layer, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformed)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: top-level JSON value is not an object", ErrMalformed)
	}

	var layer section.Layer
	for _, sm := range objectMembers(root) {
		sec := layer.Append(sm.key)
		if !sm.value.IsObject() {
			continue
		}
		for _, im := range objectMembers(sm.value) {
			switch im.value.Type {
			case gjson.String:
				sec.Add(im.key, im.value.Str)
			case gjson.Number, gjson.True, gjson.False:
				sec.Add(im.key, im.value.Raw)
			}
		}
	}
	return layer, nil
}

type member struct {
	key   string
	value gjson.Result
}

// objectMembers lists the members of obj once per key, in first-seen order,
// each with the last value given for it.
func objectMembers(obj gjson.Result) []member {
	index := make(map[string]int)
	var out []member
	obj.ForEach(func(k, v gjson.Result) bool {
		key := k.String()
		if i, ok := index[key]; ok {
			out[i].value = v
			return true
		}
		index[key] = len(out)
		out = append(out, member{key: key, value: v})
		return true
	})
	return out
}

// Encode implements Codec. A repeated section name keeps its first position
// and takes the contents of the last section with that name; repeated item
// names within a section behave the same way. Names are compared exactly.
func (JSON) Encode(layer section.Layer) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, sec := range objectSections(layer) {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(&buf, sec.Name); err != nil {
			return nil, err
		}
		buf.WriteString(":{")
		for j, item := range objectItems(sec.Items) {
			if j > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(&buf, item.Name); err != nil {
				return nil, err
			}
			buf.WriteByte(':')
			if err := writeJSONString(&buf, item.Value); err != nil {
				return nil, err
			}
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return pretty.PrettyOptions(buf.Bytes(), jsonPretty), nil
}

func objectSections(layer section.Layer) []*section.Section {
	index := make(map[string]int, len(layer))
	var out []*section.Section
	for _, sec := range layer {
		if i, ok := index[sec.Name]; ok {
			out[i] = sec
			continue
		}
		index[sec.Name] = len(out)
		out = append(out, sec)
	}
	return out
}

func objectItems(items []section.Item) []section.Item {
	index := make(map[string]int, len(items))
	var out []section.Item
	for _, item := range items {
		if i, ok := index[item.Name]; ok {
			out[i].Value = item.Value
			continue
		}
		index[item.Name] = len(out)
		out = append(out, item)
	}
	return out
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encoding JSON string: %w", err)
	}
	// Encode terminates every value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}
