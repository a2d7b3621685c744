package format

import (
	"strings"

	"github.com/dshills/confstore/internal/lexer"
	"github.com/dshills/confstore/internal/section"
)

var (
	unescaper = strings.NewReplacer(`\n`, "\n", `\r`, "\r", `\\`, `\`)
	escaper   = strings.NewReplacer(`\`, `\\`, "\r", `\r`, "\n", `\n`)
)

// Unescape decodes \n, \r and \\ in a single left-to-right pass.
func Unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	return unescaper.Replace(s)
}

// Escape is the inverse of [Unescape].
func Escape(s string) string {
	return escaper.Replace(s)
}

// INI is the native line-oriented format.
//
// Parsing never fails. Content before the first section header is ignored,
// and a header without a closing ']' on the same line, or with an empty
// name, ends parsing; the sections read up to that point are kept.
type INI struct{}

// Name implements Codec.
func (INI) Name() string { return "ini" }

// Decode implements Codec. The returned error is always nil.
func (INI) Decode(data []byte) (section.Layer, error) {
	return ParseINI(string(data)), nil
}

// Encode implements Codec.
func (INI) Encode(layer section.Layer) ([]byte, error) {
	var b strings.Builder
	for i, sec := range layer {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("[")
		b.WriteString(sec.Name)
		b.WriteString("]\n")
		for _, item := range sec.Items {
			b.WriteString(item.Name)
			b.WriteString("=")
			b.WriteString(Escape(item.Value))
			b.WriteString("\n")
		}
	}
	return []byte(b.String()), nil
}

// ParseINI parses INI text into a new layer.
func ParseINI(text string) section.Layer {
	var layer section.Layer
	lex := lexer.New(text)

	for {
		tok, ok := lex.NextNonSpace()
		if !ok {
			return layer
		}

		if !tok.Is('[') {
			if !lex.SkipLine() {
				return layer
			}
			continue
		}

		name, closed := scanUntil(lex, ']')
		name = strings.TrimSpace(name)
		if !closed || name == "" {
			return layer
		}

		parseSection(layer.Append(name), lex)
	}
}

func parseSection(sec *section.Section, lex *lexer.Lexer) {
	for {
		tok, ok := lex.NextNonSpace()
		if !ok {
			return
		}

		switch {
		case tok.Is('#'):
			if !lex.SkipLine() {
				return
			}
			continue
		case tok.Is('['):
			lex.Unget()
			return
		}

		rest, found := scanUntil(lex, '=')
		if !found {
			continue
		}
		name := strings.TrimSpace(tok.Text + rest)

		value := strings.TrimSpace(restOfLine(lex))
		if value == "" {
			continue
		}
		sec.Add(name, Unescape(value))
	}
}

// scanUntil collects token text up to the end rune, consuming it. It reports
// false when a line terminator or the end of input comes first.
func scanUntil(lex *lexer.Lexer, end rune) (string, bool) {
	var b strings.Builder
	for {
		tok, ok := lex.Next()
		if !ok || tok.IsNewline() {
			return b.String(), false
		}
		if tok.Is(end) {
			return b.String(), true
		}
		b.WriteString(tok.Text)
	}
}

// restOfLine collects token text up to the next line terminator, consuming it.
func restOfLine(lex *lexer.Lexer) string {
	var b strings.Builder
	for {
		tok, ok := lex.Next()
		if !ok || tok.IsNewline() {
			return b.String()
		}
		b.WriteString(tok.Text)
	}
}
