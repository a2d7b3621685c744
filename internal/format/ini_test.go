package format

import (
	"testing"

	"github.com/dshills/confstore/internal/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseINI_Basic(t *testing.T) {
	text := "stray line before any header\n" +
		"[General]\n" +
		"Name = My Profile \n" +
		"# a comment = not an item\n" +
		"Empty=   \n" +
		"\n" +
		"  [ Video ]  \n" +
		"BaseCX=1920\n" +
		"BaseCY = 1080\n"

	layer := ParseINI(text)
	require.Len(t, layer, 2)

	assert.Equal(t, "General", layer[0].Name)
	assert.Equal(t, []section.Item{{Name: "Name", Value: "My Profile"}}, layer[0].Items)

	assert.Equal(t, "Video", layer[1].Name)
	assert.Equal(t, []section.Item{
		{Name: "BaseCX", Value: "1920"},
		{Name: "BaseCY", Value: "1080"},
	}, layer[1].Items)
}

func TestParseINI_ValueKeepsEqualsAndSymbols(t *testing.T) {
	layer := ParseINI("[A]\nurl=rtmp://host/app?key=abc#frag\n")
	require.Len(t, layer, 1)
	require.Len(t, layer[0].Items, 1)
	assert.Equal(t, "rtmp://host/app?key=abc#frag", layer[0].Items[0].Value)
}

func TestParseINI_LineWithoutEqualsIsSkipped(t *testing.T) {
	layer := ParseINI("[A]\njust words\nkey=v\n")
	require.Len(t, layer, 1)
	assert.Equal(t, []section.Item{{Name: "key", Value: "v"}}, layer[0].Items)
}

func TestParseINI_DuplicatesArePreserved(t *testing.T) {
	layer := ParseINI("[A]\nk=1\nK=2\n[a]\nk=3\n")
	require.Len(t, layer, 2)
	assert.Len(t, layer[0].Items, 2)

	item, ok := layer.Find("a", "k")
	require.True(t, ok)
	assert.Equal(t, "1", item.Value)
}

func TestParseINI_MalformedHeaders(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantNames []string
	}{
		{"unterminated at end of file", "[Good]\nk=v\n[unterminated", []string{"Good"}},
		{"unterminated before newline", "[Good]\nk=v\n[broken\n[Later]\nx=y\n", []string{"Good"}},
		{"empty header name", "[Good]\nk=v\n[   ]\n[Later]\n", []string{"Good"}},
		{"only garbage", "no headers at all\nk=v", nil},
		{"empty input", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layer := ParseINI(tt.text)
			var names []string
			for _, sec := range layer {
				names = append(names, sec.Name)
			}
			assert.Equal(t, tt.wantNames, names)
			if len(layer) > 0 {
				assert.Equal(t, []section.Item{{Name: "k", Value: "v"}}, layer[0].Items)
			}
		})
	}
}

func TestParseINI_CRLF(t *testing.T) {
	layer := ParseINI("[A]\r\nx=1\r\ny = two words \r\n")
	require.Len(t, layer, 1)
	assert.Equal(t, []section.Item{
		{Name: "x", Value: "1"},
		{Name: "y", Value: "two words"},
	}, layer[0].Items)
}

func TestParseINI_CommentAtEndOfFile(t *testing.T) {
	layer := ParseINI("[A]\nx=1\n# trailing")
	require.Len(t, layer, 1)
	assert.Len(t, layer[0].Items, 1)
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`plain`, "plain"},
		{`a\nb`, "a\nb"},
		{`a\rb`, "a\rb"},
		{`a\\b`, `a\b`},
		{`\\n`, `\n`},
		{`\\\n`, "\\\n"},
		{`trailing\`, `trailing\`},
		{`\t stays`, `\t stays`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Unescape(tt.in), "Unescape(%q)", tt.in)
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	values := []string{
		"line1\nline2",
		"cr\r\nlf",
		`C:\path\to\n`,
		"mixed \\\r\n\\n end",
		"",
	}
	for _, v := range values {
		assert.Equal(t, v, Unescape(Escape(v)), "round trip of %q", v)
	}
}

func TestINI_EncodeDecode(t *testing.T) {
	var layer section.Layer
	layer.Set("General", "Name", "multi\nline \\ value")
	layer.Set("General", "Count", "3")
	layer.Set("Video", "FPS", "60")

	data, err := INI{}.Encode(layer)
	require.NoError(t, err)
	assert.Equal(t,
		"[General]\nName=multi\\nline \\\\ value\nCount=3\n\n[Video]\nFPS=60\n",
		string(data))

	decoded, err := INI{}.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, layer, decoded)
}
