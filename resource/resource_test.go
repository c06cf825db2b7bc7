package resource

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDir(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "config"), 0o755); err != nil {
		t.Fatal(err)
	}
	want := []byte(`{ "hp" : 30 }`)
	if err := os.WriteFile(filepath.Join(root, "config", "creature.jot"), want, 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := Dir(root).Load("config/creature.jot")
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != string(want) {
		t.Errorf("got %q want %q", d, want)
	}

	_, err = Dir(root).Load("config/missing.jot")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v want ErrNotFound", err)
	}
}

func TestMap(t *testing.T) {
	m := Map{"a": []byte("1")}
	d, err := m.Load("a")
	if err != nil || string(d) != "1" {
		t.Errorf("got %q, %v", d, err)
	}
	if _, err := m.Load("b"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v want ErrNotFound", err)
	}
}

func TestSets(t *testing.T) {
	s := &Sets{Default: Map{"a": []byte("1")}}
	s.Register("mods", Map{"a": []byte("2")})

	d, err := s.Load("a")
	if err != nil || string(d) != "1" {
		t.Errorf("default: got %q, %v", d, err)
	}
	d, err = s.LoadFrom("mods", "a")
	if err != nil || string(d) != "2" {
		t.Errorf("mods: got %q, %v", d, err)
	}
	if _, err := s.LoadFrom("nope", "a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown set: got %v want ErrNotFound", err)
	}
	empty := &Sets{}
	if _, err := empty.Load("a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("no default: got %v want ErrNotFound", err)
	}
}
