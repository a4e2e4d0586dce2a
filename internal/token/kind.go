package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an unrecognized character. The lexer never fails;
	// rejecting Invalid tokens is the parser's job.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Whitespace covers a maximal run of whitespace characters. Whitespace
	// stays in the token stream so that token texts concatenate back to the
	// source; the parser filters it out before parsing.
	Whitespace

	// Number represents a numeric literal token. The parsed value travels
	// in Token.Value; it is always a float even for whole-number spellings.
	Number
	// Ident represents an identifier token.
	Ident

	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwPrint represents the 'print' keyword.
	KwPrint // print

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// SlashSlash represents the two-character integer-divide operator token.
	SlashSlash // //
	// Caret represents the power operator token.
	Caret // ^
	// Assign represents the assign operator token.
	Assign // =
	// Semicolon represents the statement terminator token.
	Semicolon // ;
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Whitespace:
		return "Whitespace"
	case Number:
		return "Number"
	case Ident:
		return "Ident"
	case KwFor:
		return "KwFor"
	case KwVar:
		return "KwVar"
	case KwPrint:
		return "KwPrint"
	case Plus:
		return "Plus"
	case Minus:
		return "Minus"
	case Star:
		return "Star"
	case Slash:
		return "Slash"
	case SlashSlash:
		return "SlashSlash"
	case Caret:
		return "Caret"
	case Assign:
		return "Assign"
	case Semicolon:
		return "Semicolon"
	case LParen:
		return "LParen"
	case RParen:
		return "RParen"
	case LBrace:
		return "LBrace"
	case RBrace:
		return "RBrace"
	}
	return "Unknown"
}
