package ir

import (
	"errors"
	"testing"
)

func TestMutableAccessorsCoerce(t *testing.T) {
	n := Null()
	*n.Integer() = 7
	if got, _ := n.AsInteger(); got != 7 {
		t.Fatalf("Integer() write: got %d, want 7", got)
	}

	// retyping through an accessor converts the numeric payload
	if got := *n.Float(); got != 7.0 {
		t.Fatalf("Float() after Integer: got %v, want 7", got)
	}

	*n.Text() = "hello"
	if n.Type() != StringType {
		t.Fatalf("Text() left type %v", n.Type())
	}
	if got, _ := n.AsString(); got != "hello" {
		t.Fatalf("Text() write: got %q", got)
	}

	*n.Bool() = true
	if got, _ := n.AsBool(); !got {
		t.Fatalf("Bool() write lost value")
	}
}

func TestMutableContainerAccessors(t *testing.T) {
	n := Null()
	*n.Array() = append(*n.Array(), FromInt(1))
	if n.Type() != ArrayType || n.Len() != 1 {
		t.Fatalf("Array() append: type %v len %d", n.Type(), n.Len())
	}

	m := Null()
	m.Object()["k"] = FromString("v")
	if got, _ := m.Get("k").AsString(); got != "v" {
		t.Fatalf("Object() insert: got %q", got)
	}
}

func TestConstAccessors(t *testing.T) {
	t.Run("null reads as defaults", func(t *testing.T) {
		n := Null()
		if v, err := n.AsBool(); err != nil || v {
			t.Errorf("AsBool() = (%v, %v)", v, err)
		}
		if v, err := n.AsInteger(); err != nil || v != 0 {
			t.Errorf("AsInteger() = (%v, %v)", v, err)
		}
		if v, err := n.AsFloat(); err != nil || v != 0 {
			t.Errorf("AsFloat() = (%v, %v)", v, err)
		}
		if v, err := n.AsString(); err != nil || v != "" {
			t.Errorf("AsString() = (%q, %v)", v, err)
		}
		if v, err := n.AsArray(); err != nil || v != nil {
			t.Errorf("AsArray() = (%v, %v)", v, err)
		}
		if v, err := n.AsObject(); err != nil || v != nil {
			t.Errorf("AsObject() = (%v, %v)", v, err)
		}
	})

	t.Run("numbers cross-read", func(t *testing.T) {
		if v, err := FromFloat(3.9).AsInteger(); err != nil || v != 3 {
			t.Errorf("Float AsInteger() = (%v, %v), want (3, nil)", v, err)
		}
		if v, err := FromFloat(-3.9).AsInteger(); err != nil || v != -3 {
			t.Errorf("Float AsInteger() = (%v, %v), want (-3, nil)", v, err)
		}
		if v, err := FromInt(5).AsFloat(); err != nil || v != 5.0 {
			t.Errorf("Integer AsFloat() = (%v, %v), want (5, nil)", v, err)
		}
	})

	t.Run("mismatch reports ErrTypeMismatch", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
		}{
			{"string as bool", errOf(FromString("true").AsBool())},
			{"bool as integer", errOf(FromBool(true).AsInteger())},
			{"string as float", errOf(FromString("1.5").AsFloat())},
			{"integer as string", errOf(FromInt(1).AsString())},
			{"object as array", errOf(FromMap(nil).AsArray())},
			{"array as object", errOf(FromSlice(nil).AsObject())},
		}
		for _, c := range cases {
			if !errors.Is(c.err, ErrTypeMismatch) {
				t.Errorf("%s: error %v does not wrap ErrTypeMismatch", c.name, c.err)
			}
		}
	})

	t.Run("mismatch error carries both types", func(t *testing.T) {
		_, err := FromString("x").AsBool()
		var tmErr *TypeMismatchErr
		if !errors.As(err, &tmErr) {
			t.Fatalf("error %v is not a TypeMismatchErr", err)
		}
		if tmErr.Got != StringType || tmErr.Want != BoolType {
			t.Errorf("TypeMismatchErr = %v/%v, want String/Bool", tmErr.Got, tmErr.Want)
		}
	})
}

func errOf[T any](_ T, err error) error { return err }

func TestFieldVivifies(t *testing.T) {
	n := Null()
	*n.Field("a").Field("b").Integer() = 3
	if n.Type() != ObjectType {
		t.Fatalf("Field did not coerce to object: %v", n.Type())
	}
	if got, _ := n.Get("a").Get("b").AsInteger(); got != 3 {
		t.Fatalf("nested Field write: got %d, want 3", got)
	}

	// repeated access returns the same child
	if n.Field("a") != n.Field("a") {
		t.Errorf("Field returned distinct nodes for the same key")
	}
}

func TestGetDoesNotMutate(t *testing.T) {
	n := FromMap(map[string]*Node{"a": FromInt(1)})
	miss := n.Get("missing")
	if !miss.IsNull() {
		t.Fatalf("missing key read as %v", miss.Type())
	}
	if n.Len() != 1 {
		t.Fatalf("Get inserted a key: len %d", n.Len())
	}

	// the returned node is detached: writing it leaves the tree alone
	*miss.Integer() = 99
	if n.Len() != 1 || !n.Get("missing").IsNull() {
		t.Errorf("write through missing-key node leaked into the tree")
	}

	// consecutive misses are independent nodes
	if n.Get("missing") == n.Get("missing") {
		t.Errorf("Get returned a shared sentinel")
	}

	if !FromInt(1).Get("a").IsNull() {
		t.Errorf("Get on a scalar should read as null")
	}
}

func TestElemGrows(t *testing.T) {
	n := Null()
	*n.Elem(2).Text() = "z"
	if n.Type() != ArrayType {
		t.Fatalf("Elem did not coerce to array: %v", n.Type())
	}
	if n.Len() != 3 {
		t.Fatalf("Elem(2) grew to %d elements, want 3", n.Len())
	}
	if !n.At(0).IsNull() || !n.At(1).IsNull() {
		t.Errorf("grown elements are not null")
	}
	if got, _ := n.At(2).AsString(); got != "z" {
		t.Errorf("Elem(2) write: got %q", got)
	}

	// in-range access does not grow
	n.Elem(0)
	if n.Len() != 3 {
		t.Errorf("in-range Elem grew the array")
	}
}

func TestElemNegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Elem(-1) did not panic")
		}
	}()
	Null().Elem(-1)
}

func TestAtDoesNotMutate(t *testing.T) {
	n := FromSlice([]*Node{FromInt(10), FromInt(20)})
	if got, _ := n.At(1).AsInteger(); got != 20 {
		t.Fatalf("At(1) = %d, want 20", got)
	}
	if !n.At(5).IsNull() {
		t.Fatalf("out-of-range At read as %v", n.At(5).Type())
	}
	if n.Len() != 2 {
		t.Fatalf("At grew the array: len %d", n.Len())
	}
	if !FromString("s").At(0).IsNull() {
		t.Errorf("At on a scalar should read as null")
	}
}
