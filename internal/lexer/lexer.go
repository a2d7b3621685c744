package lexer

import (
	"unicode"
	"unicode/utf8"
)

// Kind classifies a token.
type Kind uint8

const (
	// Whitespace is a run of blanks, or a single line terminator.
	Whitespace Kind = iota
	// Alnum is a maximal run of letters and digits.
	Alnum
	// Other is any single rune that is neither whitespace nor alphanumeric.
	Other
)

func (k Kind) String() string {
	switch k {
	case Whitespace:
		return "whitespace"
	case Alnum:
		return "alnum"
	case Other:
		return "other"
	default:
		return "unknown"
	}
}

// Token is a slice of the input text with its classification.
type Token struct {
	Kind   Kind
	Text   string
	Offset int
}

// IsNewline reports whether the token is a line terminator.
func (t Token) IsNewline() bool {
	return t.Kind == Whitespace && len(t.Text) > 0 && (t.Text[0] == '\n' || t.Text[0] == '\r')
}

// Is reports whether the token is the single rune r.
func (t Token) Is(r rune) bool {
	if t.Kind != Other {
		return false
	}
	c, size := utf8.DecodeRuneInString(t.Text)
	return c == r && size == len(t.Text)
}

// Lexer scans an in-memory string. The zero value is not usable; use [New].
type Lexer struct {
	text string
	pos  int
	prev int // start of the last token returned by Next, -1 if none
}

// New returns a lexer positioned at the start of text.
func New(text string) *Lexer {
	return &Lexer{text: text, prev: -1}
}

// Next consumes and returns the next token. It returns false at end of input.
func (l *Lexer) Next() (Token, bool) {
	tok, ok := l.scan(l.pos)
	if !ok {
		return Token{}, false
	}
	l.prev = l.pos
	l.pos += len(tok.Text)
	return tok, true
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() (Token, bool) {
	return l.scan(l.pos)
}

// Unget steps back over the token most recently returned by Next. Only one
// step is remembered; a second call without an intervening Next is a no-op.
func (l *Lexer) Unget() {
	if l.prev < 0 {
		return
	}
	l.pos = l.prev
	l.prev = -1
}

// NextNonSpace consumes whitespace, including line terminators, and returns
// the first token after it.
func (l *Lexer) NextNonSpace() (Token, bool) {
	for {
		tok, ok := l.Next()
		if !ok || tok.Kind != Whitespace {
			return tok, ok
		}
	}
}

// SkipLine consumes tokens up to and including the next line terminator. It
// returns false if the input ended first.
func (l *Lexer) SkipLine() bool {
	for {
		tok, ok := l.Next()
		if !ok {
			return false
		}
		if tok.IsNewline() {
			return true
		}
	}
}

// Offset returns the byte offset of the next unread token.
func (l *Lexer) Offset() int {
	return l.pos
}

func (l *Lexer) scan(start int) (Token, bool) {
	if start >= len(l.text) {
		return Token{}, false
	}

	r, size := utf8.DecodeRuneInString(l.text[start:])
	end := start + size

	switch {
	case r == '\r':
		if end < len(l.text) && l.text[end] == '\n' {
			end++
		}
		return Token{Kind: Whitespace, Text: l.text[start:end], Offset: start}, true
	case r == '\n':
		return Token{Kind: Whitespace, Text: l.text[start:end], Offset: start}, true
	case unicode.IsSpace(r):
		end = l.span(end, func(c rune) bool {
			return unicode.IsSpace(c) && c != '\n' && c != '\r'
		})
		return Token{Kind: Whitespace, Text: l.text[start:end], Offset: start}, true
	case isAlnum(r):
		end = l.span(end, isAlnum)
		return Token{Kind: Alnum, Text: l.text[start:end], Offset: start}, true
	default:
		return Token{Kind: Other, Text: l.text[start:end], Offset: start}, true
	}
}

// span advances from pos while runes satisfy pred and returns the new offset.
func (l *Lexer) span(pos int, pred func(rune) bool) int {
	for pos < len(l.text) {
		r, size := utf8.DecodeRuneInString(l.text[pos:])
		if !pred(r) {
			break
		}
		pos += size
	}
	return pos
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
