package token

var keywords = map[string]TokenType{
	"type":   TType,
	"export": TExport,
	"true":   TTrue,
	"false":  TFalse,
}

// IsKeyword reports whether s cannot be used as an alias name.
func IsKeyword(s string) bool {
	_, ok := keywords[s]
	return ok
}

func isIdentStart(r rune) bool {
	return r == '_' || r == '$' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
