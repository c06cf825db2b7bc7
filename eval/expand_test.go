package eval

import (
	"testing"

	"github.com/jot-format/go-jot/parse"
)

type envTest struct {
	in, out string
}

func TestExpandString(t *testing.T) {
	tests := []envTest{
		{
			in:  "abc",
			out: "abc",
		},
		{
			in:  "$[",
			out: "$[",
		},
		{
			in:  "$[x]",
			out: "X",
		},
		{
			in:  " $[x]",
			out: " X",
		},
		{
			in:  "$[x",
			out: "$[x",
		},
		{
			in:  "some $[stuff] $[here]",
			out: "some STUFF HERE",
		},
		{
			in:  "some $[stuff] $[here] trailing",
			out: "some STUFF HERE trailing",
		},
		{
			in:  "some $[ stuff ] $[here] trailing",
			out: "some STUFF HERE trailing",
		},
		{
			in:  "$abc",
			out: "$abc",
		},
		{
			in:  " $abc",
			out: " $abc",
		},
		{
			in:  "$[n]",
			out: "3",
		},
		{
			in:  "$[n + 1]",
			out: "4",
		},
		{
			in:  "$[f]",
			out: "2.5",
		},
		{
			in:  "$[on]",
			out: "true",
		},
		{
			in:  "$[xs]",
			out: "[ 1, 2 ]",
		},
		{
			in:  `$[x + "\]"]`,
			out: "X]",
		},
		{
			in:  `a\]b`,
			out: `a\]b`,
		},
	}
	env := Env{
		"x":     "X",
		"stuff": "STUFF",
		"here":  "HERE",
		"n":     3,
		"f":     2.5,
		"on":    true,
		"xs":    []any{1, 2},
	}
	for i := range tests {
		tc := &tests[i]
		got, err := ExpandString(tc.in, env)
		if err != nil {
			t.Errorf("test case %d: %v", i, err)
			continue
		}
		if got != tc.out {
			t.Errorf("test case %d: got %q want %q", i, got, tc.out)
		}
	}
}

func TestExpandStringGetenv(t *testing.T) {
	t.Setenv("JOT_EXPAND_HOST", "example.com")
	got, err := ExpandString(`$[getenv("JOT_EXPAND_HOST")]:80`, nil)
	if err != nil {
		t.Fatal(err)
	}
	if want := "example.com:80"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestExpandStringError(t *testing.T) {
	if _, err := ExpandString("$[nosuchfunc()]", Env{}); err == nil {
		t.Error("expected error")
	}
}

func TestExpand(t *testing.T) {
	doc, err := parse.Parse([]byte(`{
		"name": "svc",
		"addr": "$[host]:$[port]",
		"nested": { "label": "$[get(\"/name\")] on $[host]" },
		"ports": [ "$[port + 1]" ],
		"n": 3
	}`))
	if err != nil {
		t.Fatal(err)
	}
	env := Env{"host": "example.com", "port": 8080}
	if err := Expand(doc, env); err != nil {
		t.Fatal(err)
	}
	want := map[string]string{
		"/addr":         "example.com:8080",
		"/nested/label": "svc on example.com",
		"/ports/0":      "8081",
	}
	for ptr, w := range want {
		n, err := doc.Lookup(ptr)
		if err != nil {
			t.Fatal(err)
		}
		s, err := n.AsString()
		if err != nil {
			t.Fatal(err)
		}
		if s != w {
			t.Errorf("%s: got %q want %q", ptr, s, w)
		}
	}
	n, err := doc.Lookup("/n")
	if err != nil {
		t.Fatal(err)
	}
	if v, err := n.AsInteger(); err != nil || v != 3 {
		t.Errorf("/n changed: %d, %v", v, err)
	}
}
