package jot

import (
	"testing"

	"github.com/jot-format/go-jot/ir"
)

type patchTest struct {
	Doc   string
	Patch string
	Res   string
	Err   bool
}

func TestPatch(t *testing.T) {
	tests := []patchTest{
		{
			Doc:   `{ "a": 1 }`,
			Patch: `[ { "op": "add", "path": "/b", "value": 2 } ]`,
			Res:   `{ "a": 1, "b": 2 }`,
		},
		{
			Doc:   `{ "a": 1 }`,
			Patch: `[ { "op": "replace", "path": "/a", "value": 5 } ]`,
			Res:   `{ "a": 5 }`,
		},
		{
			Doc:   `{ "a": 1, "b": 2 }`,
			Patch: `[ { "op": "remove", "path": "/b" } ]`,
			Res:   `{ "a": 1 }`,
		},
		{
			Doc:   `{ "a": 1 }`,
			Patch: `[ { "op": "move", "from": "/a", "path": "/b" } ]`,
			Res:   `{ "b": 1 }`,
		},
		{
			Doc:   `{ "a": [ 1 ] }`,
			Patch: `[ { "op": "copy", "from": "/a", "path": "/b" } ]`,
			Res:   `{ "a": [ 1 ], "b": [ 1 ] }`,
		},
		// 5
		{
			Doc:   `{ "xs": [ 1, 3 ] }`,
			Patch: `[ { "op": "add", "path": "/xs/1", "value": 2 } ]`,
			Res:   `{ "xs": [ 1, 2, 3 ] }`,
		},
		{
			Doc:   `{ "xs": [ 1, 2 ] }`,
			Patch: `[ { "op": "add", "path": "/xs/-", "value": 3 } ]`,
			Res:   `{ "xs": [ 1, 2, 3 ] }`,
		},
		{
			Doc: `{ "a": 1 }`,
			Patch: `[
				{ "op": "test", "path": "/a", "value": 1 },
				{ "op": "add", "path": "/b", "value": 2 }
			]`,
			Res: `{ "a": 1, "b": 2 }`,
		},
		{
			Doc:   `{ "a": 1 }`,
			Patch: `[ { "op": "test", "path": "/a", "value": 2 } ]`,
			Err:   true,
		},
		{
			Doc:   `{ "a": 1 }`,
			Patch: `[ { "op": "remove", "path": "/missing" } ]`,
			Err:   true,
		},
		// 10
		{
			Doc: `{ "a": 1 }`,
			Patch: `[
				// promote to a list
				{ "op": "replace", "path": "/a", "value": [ 1 ] }
			]`,
			Res: `{ "a": [ 1 ] }`,
		},
		{
			Doc:   `{ "deep": { "xs": [ { "k": 1 } ] } }`,
			Patch: `[ { "op": "replace", "path": "/deep/xs/0/k", "value": 9 } ]`,
			Res:   `{ "deep": { "xs": [ { "k": 9 } ] } }`,
		},
	}
	for i := range tests {
		test := &tests[i]
		doc := mustParse(t, test.Doc)
		patched, err := Patch(doc, []byte(test.Patch))
		if test.Err {
			if err == nil {
				t.Errorf("test case %d: expected error", i)
			}
			continue
		}
		if err != nil {
			t.Errorf("test case %d: unexpected error %v", i, err)
			continue
		}
		got := ToJSON(patched, true)
		want := ToJSON(mustParse(t, test.Res), true)
		if got != want {
			t.Errorf("test case %d: got %s, want %s", i, got, want)
		}
	}
}

func TestPatchKeepsFloatType(t *testing.T) {
	doc := mustParse(t, `{ "pi": 3.0 }`)
	patched, err := Patch(doc, []byte(`[ { "op": "add", "path": "/e", "value": 2.0 } ]`))
	if err != nil {
		t.Fatal(err)
	}
	for _, ptr := range []string{"/pi", "/e"} {
		n, err := patched.Lookup(ptr)
		if err != nil {
			t.Fatal(err)
		}
		if n.Type() != ir.FloatType {
			t.Errorf("%s: type = %s, want %s", ptr, n.Type(), ir.FloatType)
		}
	}
	if got, want := ToJSON(patched, true), `{ "e" : 2.0, "pi" : 3.0 }`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestPatchLeavesDoc(t *testing.T) {
	doc := mustParse(t, `{ "a": 1 }`)
	keep := doc.Clone()
	if _, err := Patch(doc, []byte(`[ { "op": "replace", "path": "/a", "value": 2 } ]`)); err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(doc, keep) {
		t.Errorf("doc changed: %s", ToJSON(doc, true))
	}
}

func TestMergePatch(t *testing.T) {
	tests := []patchTest{
		{
			Doc:   `{ "a": 1, "b": 2 }`,
			Patch: `{ "b": null, "c": 3 }`,
			Res:   `{ "a": 1, "c": 3 }`,
		},
		{
			Doc:   `{ "o": { "x": 1 } }`,
			Patch: `{ "o": { "y": 2 } }`,
			Res:   `{ "o": { "x": 1, "y": 2 } }`,
		},
		{
			Doc:   `{ "a": 1 }`,
			Patch: `[ 1, 2 ]`,
			Res:   `[ 1, 2 ]`,
		},
	}
	for i := range tests {
		test := &tests[i]
		doc := mustParse(t, test.Doc)
		patched, err := MergePatch(doc, []byte(test.Patch))
		if err != nil {
			t.Errorf("test case %d: unexpected error %v", i, err)
			continue
		}
		got := ToJSON(patched, true)
		want := ToJSON(mustParse(t, test.Res), true)
		if got != want {
			t.Errorf("test case %d: got %s, want %s", i, got, want)
		}
	}
}

func TestCreateMergePatch(t *testing.T) {
	a := mustParse(t, `{ "a": 1, "b": 2 }`)
	b := mustParse(t, `{ "a": 1, "c": 3 }`)

	d, err := CreateMergePatch(a, b)
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, `{ "b": null, "c": 3 }`)
	if got := mustParse(t, string(d)); !ir.Equal(got, want) {
		t.Errorf("patch = %s, want %s", d, ToJSON(want, true))
	}

	// applying the created patch turns a into b
	res, err := MergePatch(a, d)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(res, b) {
		t.Errorf("round trip = %s, want %s", ToJSON(res, true), ToJSON(b, true))
	}
}
