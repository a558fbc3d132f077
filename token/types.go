package token

import "strings"

type TokenType int

const (
	TIdent TokenType = iota
	TType
	TExport
	TString
	TNumber
	TTrue
	TFalse
	TComment
	TEq
	TSemi
	TComma
	TColon
	TQuestion
	TPipe
	TAmp
	TLAngle
	TRAngle
	TLSquare
	TRSquare
	TLCurl
	TRCurl
	// TLExact and TRExact delimit exact objects, {| and |}.
	TLExact
	TRExact
	TLParen
	TRParen
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TIdent:    "TIdent",
		TType:     "TType",
		TExport:   "TExport",
		TString:   "TString",
		TNumber:   "TNumber",
		TTrue:     "TTrue",
		TFalse:    "TFalse",
		TComment:  "TComment",
		TEq:       "TEq",
		TSemi:     "TSemi",
		TComma:    "TComma",
		TColon:    "TColon",
		TQuestion: "TQuestion",
		TPipe:     "TPipe",
		TAmp:      "TAmp",
		TLAngle:   "TLAngle",
		TRAngle:   "TRAngle",
		TLSquare:  "TLSquare",
		TRSquare:  "TRSquare",
		TLCurl:    "TLCurl",
		TRCurl:    "TRCurl",
		TLExact:   "TLExact",
		TRExact:   "TRExact",
		TLParen:   "TLParen",
		TRParen:   "TRParen",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

// String is the value a token denotes: the unquoted text of a string,
// the text of a comment without its delimiters, or the source bytes.
func (t *Token) String() string {
	switch t.Type {
	case TString:
		s, err := Unquote(string(t.Bytes))
		if err != nil {
			return string(t.Bytes)
		}
		return s
	case TComment:
		s := string(t.Bytes)
		if strings.HasPrefix(s, "//") {
			return s[2:]
		}
		return strings.TrimSuffix(strings.TrimPrefix(s, "/*"), "*/")
	default:
		return string(t.Bytes)
	}
}
