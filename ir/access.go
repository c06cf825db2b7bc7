package ir

// Mutable accessors. Each retypes the node if needed and returns the
// live payload, so assignment through the result mutates the tree:
//
//	*n.Integer() = 7
//	n.Field("name").SetType(ir.StringType)

// Bool coerces n to Bool and returns its payload.
func (n *Node) Bool() *bool {
	n.SetType(BoolType)
	return &n.boolV
}

// Integer coerces n to Integer and returns its payload.
func (n *Node) Integer() *int64 {
	n.SetType(IntegerType)
	return &n.intV
}

// Float coerces n to Float and returns its payload.
func (n *Node) Float() *float64 {
	n.SetType(FloatType)
	return &n.fltV
}

// Text coerces n to String and returns its payload. It is not named
// String to keep that name free of the Stringer convention.
func (n *Node) Text() *string {
	n.SetType(StringType)
	return &n.strV
}

// Array coerces n to Array and returns the live element slice.
func (n *Node) Array() *[]*Node {
	n.SetType(ArrayType)
	return &n.arr
}

// Object coerces n to Object and returns the live entry map.
func (n *Node) Object() map[string]*Node {
	n.SetType(ObjectType)
	if n.obj == nil {
		n.obj = map[string]*Node{}
	}
	return n.obj
}

// Const accessors. None of these mutate. Null reads as the type's
// default with no error; Integer and Float read into each other; any
// other mismatch reports ErrTypeMismatch.

func (n *Node) AsBool() (bool, error) {
	switch n.typ {
	case BoolType:
		return n.boolV, nil
	case NullType:
		return false, nil
	}
	return false, typeMismatch(n.typ, BoolType)
}

// AsInteger reads an integer; Float payloads truncate toward zero.
func (n *Node) AsInteger() (int64, error) {
	switch n.typ {
	case IntegerType:
		return n.intV, nil
	case FloatType:
		return truncInt(n.fltV), nil
	case NullType:
		return 0, nil
	}
	return 0, typeMismatch(n.typ, IntegerType)
}

// AsFloat reads a float; Integer payloads widen.
func (n *Node) AsFloat() (float64, error) {
	switch n.typ {
	case FloatType:
		return n.fltV, nil
	case IntegerType:
		return float64(n.intV), nil
	case NullType:
		return 0, nil
	}
	return 0, typeMismatch(n.typ, FloatType)
}

func (n *Node) AsString() (string, error) {
	switch n.typ {
	case StringType:
		return n.strV, nil
	case NullType:
		return "", nil
	}
	return "", typeMismatch(n.typ, StringType)
}

// AsArray returns the live element slice; callers must not modify it.
func (n *Node) AsArray() ([]*Node, error) {
	switch n.typ {
	case ArrayType:
		return n.arr, nil
	case NullType:
		return nil, nil
	}
	return nil, typeMismatch(n.typ, ArrayType)
}

// AsObject returns the live entry map; callers must not modify it.
func (n *Node) AsObject() (map[string]*Node, error) {
	switch n.typ {
	case ObjectType:
		return n.obj, nil
	case NullType:
		return nil, nil
	}
	return nil, typeMismatch(n.typ, ObjectType)
}

// Field coerces n to Object and returns the value at key, creating a
// null entry when absent.
func (n *Node) Field(key string) *Node {
	obj := n.Object()
	v, ok := obj[key]
	if !ok {
		v = Null()
		obj[key] = v
	}
	return v
}

// Get reads the value at key without mutating. Missing keys and
// non-object nodes read as a fresh null node.
func (n *Node) Get(key string) *Node {
	if n.typ == ObjectType {
		if v, ok := n.obj[key]; ok {
			return v
		}
	}
	return Null()
}

// Elem coerces n to Array and returns the element at i, growing the
// array with null nodes through i. Negative indices panic.
func (n *Node) Elem(i int) *Node {
	if i < 0 {
		panic("ir: negative index")
	}
	n.SetType(ArrayType)
	for len(n.arr) <= i {
		n.arr = append(n.arr, Null())
	}
	return n.arr[i]
}

// At reads the element at i without mutating. Out-of-range indices
// and non-array nodes read as a fresh null node.
func (n *Node) At(i int) *Node {
	if n.typ == ArrayType && i >= 0 && i < len(n.arr) {
		return n.arr[i]
	}
	return Null()
}
