package ir

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// MarshalJSON renders y the way a JSON serializer of the dynamic value
// space would: undefined and function members of objects are dropped, and
// appear as null inside arrays. Non finite numbers render as null.
func (y *Node) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := writeJSON(buf, y, true); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes standard JSON into y, keeping object key order.
func (y *Node) UnmarshalJSON(d []byte) error {
	res, err := ParseJSON(d)
	if err != nil {
		return err
	}
	*y = *res
	return nil
}

// ToJSON renders y as compact JSON. Values without a JSON rendering
// (undefined, functions) render as "undefined" and the function name.
func ToJSON(y *Node) string {
	if y == nil {
		return "undefined"
	}
	switch y.Type {
	case UndefinedType:
		return "undefined"
	case FuncType:
		return y.Func.DisplayName()
	}
	d, err := y.MarshalJSON()
	if err != nil {
		return "<" + y.Type.String() + ">"
	}
	return string(d)
}

func writeJSON(buf *bytes.Buffer, y *Node, inArray bool) error {
	if y == nil {
		buf.WriteString("null")
		return nil
	}
	switch y.Type {
	case UndefinedType, NullType, FuncType:
		buf.WriteString("null")
	case BoolType:
		buf.WriteString(strconv.FormatBool(y.Bool))
	case NumberType:
		buf.WriteString(FormatNumber(y.Number))
	case StringType:
		buf.WriteString(Quote(y.String))
	case ArrayType:
		buf.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, v, true); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case ObjectType:
		buf.WriteByte('{')
		n := 0
		for i, f := range y.Fields {
			v := y.Values[i]
			if v == nil || v.Type == UndefinedType || v.Type == FuncType {
				continue
			}
			if n > 0 {
				buf.WriteByte(',')
			}
			n++
			buf.WriteString(Quote(f))
			buf.WriteByte(':')
			if err := writeJSON(buf, v, false); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

// Quote renders s as a JSON string without escaping HTML characters.
func Quote(s string) string {
	buf := bytes.NewBuffer(nil)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return strconv.Quote(s)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// FormatNumber formats f as a JavaScript number literal would print.
func FormatNumber(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	if f == 0 {
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		if exp[0] == '+' || exp[0] == '-' {
			sign := exp[:1]
			exp = strings.TrimLeft(exp[1:], "0")
			return mant + "e" + sign + exp
		}
		return s
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ParseJSON decodes JSON text into a node tree, keeping object key order.
func ParseJSON(d []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	res, err := decodeJSON(dec)
	if err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, ErrTrailingData
	}
	return res, nil
}

func decodeJSON(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch x := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(x), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return nil, err
		}
		return FromFloat(f), nil
	case string:
		return FromString(x), nil
	case json.Delim:
		switch x {
		case '[':
			res := &Node{Type: ArrayType, Values: []*Node{}}
			for dec.More() {
				v, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				res.Values = append(res.Values, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return res, nil
		case '{':
			res := &Node{Type: ObjectType, Fields: []string{}, Values: []*Node{}}
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := kt.(string)
				if !ok {
					return nil, ErrBadKey
				}
				v, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				res.Set(key, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return res, nil
		}
	}
	return nil, ErrUnexpectedToken
}
