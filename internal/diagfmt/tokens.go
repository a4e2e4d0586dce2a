package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"ember/internal/source"
	"ember/internal/token"
)

type TokenOutput struct {
	Kind  string      `json:"kind"`
	Text  string      `json:"text,omitempty"`
	Span  source.Span `json:"span"`
	Value float64     `json:"value,omitempty"`
}

// FormatTokensPretty writes one line per token: index, kind, text and the
// resolved line:col range.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		fmt.Fprintf(w, "%3d: %-12s", i+1, tok.Kind.String())

		if tok.Kind == token.EOF {
			fmt.Fprintln(w)
			break
		}

		fmt.Fprintf(w, " %q", tok.Text)
		if tok.Kind == token.Number {
			fmt.Fprintf(w, " (%g)", tok.Value)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)
		fmt.Fprintln(w)
	}
	return nil
}

// FormatTokensJSON writes the token stream as a JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	var output []TokenOutput

	for _, tok := range tokens {
		out := TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Span: tok.Span,
		}
		if tok.Kind == token.Number {
			out.Value = tok.Value
		}
		if tok.Kind == token.EOF {
			out.Text = ""
		}
		output = append(output, out)

		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
