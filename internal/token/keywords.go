package token

var keywords = map[string]Kind{
	"for":   KwFor,
	"var":   KwVar,
	"print": KwPrint,
}

// LookupKeyword returns the keyword kind for ident, if it is one.
// Keywords are case-sensitive; only lowercase spellings are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
