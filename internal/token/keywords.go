package token

// reserved words, exact spelling only
var keywords = map[string]Kind{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"for":    For,
	"fun":    Fun,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

// LookupKeyword reports the reserved-word kind for name. Lookup is
// case-sensitive; absence means name is an ordinary identifier.
func LookupKeyword(name string) (Kind, bool) {
	kind, ok := keywords[name]
	return kind, ok
}
