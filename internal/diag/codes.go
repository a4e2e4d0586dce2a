package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexUnknownChar Code = 1001
	LexBadNumber   Code = 1002

	// Syntax
	SynUnexpectedToken Code = 2001
	SynUnclosedParen   Code = 2002
	SynUnclosedBrace   Code = 2003
	SynUnexpectedEOF   Code = 2004

	// Evaluation
	EvalUnboundVariable Code = 3001
)

var codeTitles = map[Code]string{
	UnknownCode:         "Unknown error",
	LexUnknownChar:      "Unrecognized character",
	LexBadNumber:        "Malformed number literal",
	SynUnexpectedToken:  "Unexpected token",
	SynUnclosedParen:    "Missing closing ')'",
	SynUnclosedBrace:    "Missing closing '}'",
	SynUnexpectedEOF:    "Unexpected end of input",
	EvalUnboundVariable: "Unbound variable",
}

// ID returns the stable textual identifier, e.g. "SYN2001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("EVAL%04d", ic)
	default:
		return fmt.Sprintf("ERR%04d", ic)
	}
}

// Title returns the short human-readable title for the code.
func (c Code) Title() string {
	if t, ok := codeTitles[c]; ok {
		return t
	}
	return "Unknown error"
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
