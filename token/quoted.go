package token

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// quotedLen returns the length of the string literal at the start of d,
// including both quotes.
func quotedLen(d []byte) (int, error) {
	q := d[0]
	esc := false
	for i := 1; i < len(d); i++ {
		c := d[i]
		switch {
		case esc:
			esc = false
		case c == '\\':
			esc = true
		case c == '\n':
			return 0, fmt.Errorf("%w string: newline", ErrUnterminated)
		case c == q:
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("%w string", ErrUnterminated)
}

// Unquote decodes a single or double quoted string literal.
func Unquote(s string) (string, error) {
	if len(s) < 2 || (s[0] != '"' && s[0] != '\'') || s[len(s)-1] != s[0] {
		return "", fmt.Errorf("%w string %s", ErrUnterminated, s)
	}
	body := s[1 : len(s)-1]
	if !strings.Contains(body, `\`) {
		if !utf8.ValidString(body) {
			return "", ErrBadUTF8
		}
		return body, nil
	}
	var b strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i == len(body) {
			return "", ErrBadEscape
		}
		switch c = body[i]; c {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'v':
			b.WriteByte('\v')
		case '0':
			b.WriteByte(0)
		case 'x':
			if i+3 > len(body) {
				return "", ErrBadEscape
			}
			v, err := strconv.ParseUint(body[i+1:i+3], 16, 8)
			if err != nil {
				return "", fmt.Errorf("%w: %w", ErrBadEscape, err)
			}
			b.WriteRune(rune(v))
			i += 2
		case 'u':
			r, off, err := unicodeEscape(body[i+1:])
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
			i += off
		default:
			// \\, \', \" and any other escaped character stand for themselves
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

// unicodeEscape decodes XXXX or {X...} following \u.
func unicodeEscape(s string) (rune, int, error) {
	if strings.HasPrefix(s, "{") {
		end := strings.IndexByte(s, '}')
		if end < 2 {
			return 0, 0, ErrBadUnicode
		}
		v, err := strconv.ParseUint(s[1:end], 16, 32)
		if err != nil || v > utf8.MaxRune {
			return 0, 0, ErrBadUnicode
		}
		return rune(v), end + 1, nil
	}
	if len(s) < 4 {
		return 0, 0, ErrBadUnicode
	}
	v, err := strconv.ParseUint(s[:4], 16, 16)
	if err != nil {
		return 0, 0, ErrBadUnicode
	}
	return rune(v), 4, nil
}

// Quote renders s as a double quoted literal.
func Quote(s string) string {
	return strconv.Quote(s)
}
