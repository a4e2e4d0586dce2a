// Package token defines lexical token kinds for the Ember front end.
// Invariants:
//   - Token.Text matches Token.Span exactly (source[Start:End]), with one
//     exception: the synthetic EOF token has a degenerate (0,0) span and a
//     NUL-character placeholder text.
//   - Whitespace is an ordinary token kind, not trivia; concatenating the
//     texts of all non-EOF tokens reproduces the source byte for byte.
//   - Number tokens always carry a float value, never an integer type.
package token
