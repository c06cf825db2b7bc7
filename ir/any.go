package ir

import (
	"fmt"
	"math"
	"strconv"
)

// ToAny converts n to a tree of Go built-in values: nil, bool, int64,
// float64, string, []any, and map[string]any. Meta and flags are not
// represented in the result.
func ToAny(n *Node) any {
	switch n.Type() {
	case NullType:
		return nil
	case BoolType:
		return n.boolV
	case IntegerType:
		return n.intV
	case FloatType:
		return n.fltV
	case StringType:
		return n.strV
	case ArrayType:
		res := make([]any, len(n.arr))
		for i, elt := range n.arr {
			res[i] = ToAny(elt)
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(n.obj))
		for k, v := range n.obj {
			res[k] = ToAny(v)
		}
		return res
	default:
		panic("impossible production")
	}
}

// FromAny converts a tree of Go built-in values to a Node. It accepts
// the types ToAny produces plus the other Go numeric types. *Node
// values are cloned, so the result never aliases the input.
func FromAny(v any) (*Node, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		if t == nil {
			return Null(), nil
		}
		return t.Clone(), nil
	case []*Node:
		return FromSlice(t).Clone(), nil
	case map[string]*Node:
		return FromMap(t).Clone(), nil
	case map[int]*Node:
		m := make(map[string]*Node, len(t))
		for k, v := range t {
			m[strconv.Itoa(k)] = v
		}
		return FromMap(m).Clone(), nil
	case bool:
		return FromBool(t), nil
	case int:
		return FromInt(int64(t)), nil
	case int8:
		return FromInt(int64(t)), nil
	case int16:
		return FromInt(int64(t)), nil
	case int32:
		return FromInt(int64(t)), nil
	case int64:
		return FromInt(t), nil
	case uint:
		return fromUint(uint64(t))
	case uint8:
		return FromInt(int64(t)), nil
	case uint16:
		return FromInt(int64(t)), nil
	case uint32:
		return FromInt(int64(t)), nil
	case uint64:
		return fromUint(t)
	case float32:
		return FromFloat(float64(t)), nil
	case float64:
		return FromFloat(t), nil
	case string:
		return FromString(t), nil
	case []any:
		res := New(ArrayType)
		res.arr = make([]*Node, 0, len(t))
		for _, elt := range t {
			c, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			res.arr = append(res.arr, c)
		}
		return res, nil
	case map[string]any:
		res := New(ObjectType)
		for k, elt := range t {
			c, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			res.obj[k] = c
		}
		return res, nil
	default:
		return nil, fmt.Errorf("cannot convert %T to a node", v)
	}
}

func fromUint(u uint64) (*Node, error) {
	if u > math.MaxInt64 {
		return nil, fmt.Errorf("uint value %d overflows integer node", u)
	}
	return FromInt(int64(u)), nil
}
