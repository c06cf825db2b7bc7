package ir

import (
	"errors"
	"testing"

	"github.com/jot-format/go-jot/ir/jsonptr"
)

func docTree() *Node {
	return FromMap(map[string]*Node{
		"a": FromSlice([]*Node{FromInt(10), FromInt(20)}),
		"b": FromMap(map[string]*Node{
			"c": FromString("deep"),
		}),
	})
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		ptr  string
		want *Node
	}{
		{"empty pointer is self", "", docTree()},
		{"object key", "/b", FromMap(map[string]*Node{"c": FromString("deep")})},
		{"array element", "/a/0", FromInt(10)},
		{"second element", "/a/1", FromInt(20)},
		{"nested key", "/b/c", FromString("deep")},
		{"missing key reads null", "/nope", Null()},
		{"missing nested path reads null", "/nope/deeper/still", Null()},
		{"out-of-bounds returns the array", "/a/5", FromSlice([]*Node{FromInt(10), FromInt(20)})},
		{"out-of-bounds mid-pointer returns the array", "/a/5/x", FromSlice([]*Node{FromInt(10), FromInt(20)})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := docTree()
			got, err := n.Lookup(tt.ptr)
			if err != nil {
				t.Fatalf("Lookup(%q): %v", tt.ptr, err)
			}
			if !Equal(got, tt.want) {
				t.Errorf("Lookup(%q) = %v, want %v", tt.ptr, got, tt.want)
			}
			if !Equal(n, docTree()) {
				t.Errorf("Lookup(%q) mutated the tree", tt.ptr)
			}
		})
	}
}

func TestLookupSelf(t *testing.T) {
	n := docTree()
	got, err := n.Lookup("")
	if err != nil {
		t.Fatal(err)
	}
	if got != n {
		t.Errorf("Lookup(\"\") returned a different node")
	}
}

func TestLookupOutOfBoundsIdentity(t *testing.T) {
	n := docTree()
	arr, err := n.Lookup("/a")
	if err != nil {
		t.Fatal(err)
	}
	got, err := n.Lookup("/a/5")
	if err != nil {
		t.Fatalf("out-of-bounds index errored: %v", err)
	}
	if got != arr {
		t.Errorf("out-of-bounds lookup did not return the array node itself")
	}
}

func TestPointerErrors(t *testing.T) {
	tests := []struct {
		name string
		ptr  string
	}{
		{"missing leading slash", "a/b"},
		{"leading zero index", "/a/01"},
		{"negative index", "/a/-1"},
		{"non-numeric index", "/a/x"},
		{"trailing junk index", "/a/1x"},
		{"empty index", "/a/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := docTree()
			if _, err := n.Lookup(tt.ptr); !errors.Is(err, jsonptr.ErrInvalidPointer) {
				t.Errorf("Lookup(%q) error = %v, want ErrInvalidPointer", tt.ptr, err)
			}
			if _, err := n.Resolve(tt.ptr); !errors.Is(err, jsonptr.ErrInvalidPointer) {
				t.Errorf("Resolve(%q) error = %v, want ErrInvalidPointer", tt.ptr, err)
			}
		})
	}
}

func TestResolveVivifies(t *testing.T) {
	n := Null()
	got, err := n.Resolve("/x/y")
	if err != nil {
		t.Fatal(err)
	}
	*got.Integer() = 42

	want := FromMap(map[string]*Node{
		"x": FromMap(map[string]*Node{"y": FromInt(42)}),
	})
	if !Equal(n, want) {
		t.Errorf("Resolve did not vivify: got %v, want %v", n, want)
	}
}

func TestResolveThroughArray(t *testing.T) {
	n := FromMap(map[string]*Node{
		"a": FromSlice([]*Node{
			FromMap(map[string]*Node{"b": FromInt(1)}),
		}),
	})
	got, err := n.Resolve("/a/0/b")
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := got.AsInteger(); v != 1 {
		t.Fatalf("Resolve(\"/a/0/b\") = %v, want 1", v)
	}

	// writes through the result land in the tree
	*got.Integer() = 2
	if v, _ := n.Get("a").At(0).Get("b").AsInteger(); v != 2 {
		t.Errorf("write through resolved node did not land: %d", v)
	}
}

func TestResolveOutOfBoundsDoesNotGrow(t *testing.T) {
	n := docTree()
	got, err := n.Resolve("/a/5")
	if err != nil {
		t.Fatalf("out-of-bounds resolve errored: %v", err)
	}
	if got.Type() != ArrayType {
		t.Fatalf("out-of-bounds resolve returned %v, want the array", got.Type())
	}
	if got.Len() != 2 {
		t.Errorf("out-of-bounds resolve grew the array to %d", got.Len())
	}
}

func TestResolveCoercesScalars(t *testing.T) {
	n := FromMap(map[string]*Node{"a": FromInt(1)})
	got, err := n.Resolve("/a/b")
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsNull() {
		t.Fatalf("vivified node is %v, want null", got.Type())
	}
	if n.Get("a").Type() != ObjectType {
		t.Errorf("scalar on the path was not coerced to an object")
	}
}
