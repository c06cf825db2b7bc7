package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	BoolType
	IntegerType
	FloatType
	StringType
	ArrayType
	ObjectType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:    "Null",
		BoolType:    "Bool",
		IntegerType: "Integer",
		FloatType:   "Float",
		StringType:  "String",
		ArrayType:   "Array",
		ObjectType:  "Object",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":    NullType,
		"Bool":    BoolType,
		"Integer": IntegerType,
		"Float":   FloatType,
		"String":  StringType,
		"Array":   ArrayType,
		"Object":  ObjectType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		BoolType,
		IntegerType,
		FloatType,
		StringType,
		ArrayType,
		ObjectType,
	}
}

// IsScalar reports whether t is a non-container type.
func (t Type) IsScalar() bool {
	switch t {
	case ArrayType, ObjectType:
		return false
	default:
		return true
	}
}
