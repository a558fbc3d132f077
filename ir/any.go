package ir

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/goccy/go-yaml"
)

// Decode parses a JSON or YAML document into a node tree. Object key order
// is preserved.
func Decode(d []byte) (*Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return FromAny(v)
}

// FromAny converts decoded Go values into a node tree.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x, nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return FromFloat(float64(x)), nil
	case uint8:
		return FromFloat(float64(x)), nil
	case uint16:
		return FromFloat(float64(x)), nil
	case uint32:
		return FromFloat(float64(x)), nil
	case uint64:
		return FromFloat(float64(x)), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
		return FromFloat(f), nil
	case []any:
		res := &Node{Type: ArrayType, Values: make([]*Node, len(x))}
		for i, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			res.Values[i] = n
		}
		return res, nil
	case yaml.MapSlice:
		res := &Node{Type: ObjectType, Fields: []string{}, Values: []*Node{}}
		for _, item := range x {
			key, err := mapKey(item.Key)
			if err != nil {
				return nil, err
			}
			n, err := FromAny(item.Value)
			if err != nil {
				return nil, err
			}
			res.Set(key, n)
		}
		return res, nil
	case map[string]any:
		res := &Node{Type: ObjectType, Fields: []string{}, Values: []*Node{}}
		for _, k := range slices.Sorted(maps.Keys(x)) {
			n, err := FromAny(x[k])
			if err != nil {
				return nil, err
			}
			res.Set(k, n)
		}
		return res, nil
	case map[any]any:
		tmp := make(map[string]any, len(x))
		for k, e := range x {
			key, err := mapKey(k)
			if err != nil {
				return nil, err
			}
			tmp[key] = e
		}
		return FromAny(tmp)
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
}

func mapKey(k any) (string, error) {
	switch x := k.(type) {
	case string:
		return x, nil
	case nil:
		return "null", nil
	case bool, int, int64, uint64, float64:
		n, err := FromAny(x)
		if err != nil {
			return "", err
		}
		return ToJSON(n), nil
	}
	return "", fmt.Errorf("%w: %T", ErrBadKey, k)
}

// ToAny converts y into plain Go values: nil, bool, float64, string, []any
// and map[string]any. Undefined becomes nil, functions become their name.
func ToAny(y *Node) any {
	switch y.Type {
	case BoolType:
		return y.Bool
	case NumberType:
		return y.Number
	case StringType:
		return y.String
	case FuncType:
		return y.Func.DisplayName()
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToAny(v)
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i, f := range y.Fields {
			res[f] = ToAny(y.Values[i])
		}
		return res
	}
	return nil
}
