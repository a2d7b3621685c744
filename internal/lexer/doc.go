// Package lexer splits configuration text into a flat stream of tokens.
//
// Tokens are classified as whitespace, alphanumeric runs, or single "other"
// runes (punctuation and symbols). Line terminators are always emitted as
// their own whitespace token so a parser can tell where a line ends. The
// lexer supports one token of look-ahead and a single-step [Lexer.Unget],
// which is enough for the INI grammar to notice a section header and hand it
// back to the caller.
package lexer
