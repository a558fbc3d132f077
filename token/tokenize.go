package token

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/signadot/runtype/debug"
)

var punct = map[byte]TokenType{
	'=': TEq,
	';': TSemi,
	',': TComma,
	':': TColon,
	'?': TQuestion,
	'|': TPipe,
	'&': TAmp,
	'<': TLAngle,
	'>': TRAngle,
	'[': TLSquare,
	']': TRSquare,
	'{': TLCurl,
	'}': TRCurl,
	'(': TLParen,
	')': TRParen,
}

// Tokenize appends the tokens of src to dst.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	posDoc := NewPosDoc(src)
	n := len(src)
	i := 0
	for i < n {
		c := src[i]
		switch c {
		case ' ', '\t', '\r', '\n':
			i++
			continue
		}
		start := i
		tok := Token{Pos: posDoc.Pos(start)}
		switch {
		case c == '/' && i+1 < n && src[i+1] == '/':
			end := bytes.IndexByte(src[i:], '\n')
			if end < 0 {
				end = n - i
			}
			i += end
			tok.Type = TComment
		case c == '/' && i+1 < n && src[i+1] == '*':
			end := bytes.Index(src[i+2:], []byte("*/"))
			if end < 0 {
				return nil, NewTokenizeErr(fmt.Errorf("%w comment", ErrUnterminated), posDoc.Pos(start))
			}
			i += end + 4
			tok.Type = TComment
		case c == '{' && i+1 < n && src[i+1] == '|':
			i += 2
			tok.Type = TLExact
		case c == '|' && i+1 < n && src[i+1] == '}':
			i += 2
			tok.Type = TRExact
		case c == '"' || c == '\'':
			off, err := quotedLen(src[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, posDoc.Pos(start))
			}
			i += off
			tok.Type = TString
		case isDigit(rune(c)) || (c == '-' && i+1 < n && isDigit(rune(src[i+1]))) || (c == '.' && i+1 < n && isDigit(rune(src[i+1]))):
			off, err := numberLen(src[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, posDoc.Pos(start))
			}
			i += off
			tok.Type = TNumber
		default:
			if tt, ok := punct[c]; ok {
				i++
				tok.Type = tt
				break
			}
			r, sz := utf8.DecodeRune(src[i:])
			if r == utf8.RuneError {
				return nil, NewTokenizeErr(ErrBadUTF8, posDoc.Pos(start))
			}
			if !isIdentStart(r) {
				return nil, UnexpectedErr(fmt.Sprintf("%q", r), posDoc.Pos(start))
			}
			i += sz
			for i < n {
				r, sz = utf8.DecodeRune(src[i:])
				if !isIdentPart(r) {
					break
				}
				i += sz
			}
			tok.Type = TIdent
			if kw, ok := keywords[string(src[start:i])]; ok {
				tok.Type = kw
			}
		}
		tok.Bytes = src[start:i]
		dst = append(dst, tok)
	}
	if debug.Parse() {
		PrintTokens(dst, "tokenize")
	}
	return dst, nil
}

// numberLen returns the length of the decimal number literal at the
// start of d, with an optional leading minus.
func numberLen(d []byte) (int, error) {
	i, n := 0, len(d)
	if d[0] == '-' {
		i++
	}
	digits := func() int {
		j := i
		for i < n && isDigit(rune(d[i])) {
			i++
		}
		return i - j
	}
	intDigits := digits()
	if intDigits > 1 && d[i-intDigits] == '0' {
		return 0, fmt.Errorf("%w: leading zero", ErrNumber)
	}
	if i < n && d[i] == '.' {
		i++
		if digits() == 0 && intDigits == 0 {
			return 0, ErrNumber
		}
	}
	if i < n && (d[i] == 'e' || d[i] == 'E') {
		i++
		if i < n && (d[i] == '+' || d[i] == '-') {
			i++
		}
		if digits() == 0 {
			return 0, fmt.Errorf("%w: missing exponent", ErrNumber)
		}
	}
	if i < n {
		r, _ := utf8.DecodeRune(d[i:])
		if isIdentPart(r) {
			return 0, fmt.Errorf("%w: trailing %q", ErrNumber, r)
		}
	}
	return i, nil
}
