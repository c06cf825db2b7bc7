package token

import (
	"errors"
	"testing"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `abc`, `"abc"`},
		{"quote", `He said "hi"` + "\n", `"He said \"hi\"\n"`},
		{"slash", `a/b`, `"a\/b"`},
		{"tab", "a\tb", `"a\tb"`},
		{"controls", "\b\f\r", `"\b\f\r"`},
		{"backslash", `a\z`, `"a\\z"`},
		{"pre-escaped quote", `a\"b`, `"a\"b"`},
		{"pre-escaped backslash", `a\\b`, `"a\\b"`},
		{"pre-escaped newline code", `a\nb`, `"a\nb"`},
		{"trailing backslash", `a\`, `"a\\"`},
		{"utf8 passthrough", "héllo", `"héllo"`},
		{"empty", ``, `""`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Quote(tt.in)
			if got != tt.want {
				t.Errorf("Quote(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `"abc"`, "abc"},
		{"escapes", `"a\tb\nc"`, "a\tb\nc"},
		{"quote", `"say \"hi\""`, `say "hi"`},
		{"slash", `"a\/b"`, "a/b"},
		{"bare slash", `"a/b"`, "a/b"},
		{"unicode", `"é"`, "é"},
		{"surrogate pair", `"😀"`, "😀"},
		{"empty", `""`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Unquote([]byte(tt.in))
			if err != nil {
				t.Fatalf("Unquote(%s): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Unquote(%s) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestUnquoteLenient(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{"unterminated", `"abc`, "abc", ErrUnterminated},
		{"bad escape", `"a\zb"`, `a\zb`, ErrBadEscape},
		{"bad unicode", `"a\u12"`, `a\u12`, ErrBadUnicode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Unquote([]byte(tt.in))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Unquote(%s) err = %v, want %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Unquote(%s) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	for _, s := range []string{
		"",
		"plain",
		"with\nnewline",
		`with "quotes"`,
		"tabs\tand\rreturns",
		"héllo ✓ 😀",
		"path/to/thing",
	} {
		got, err := Unquote([]byte(Quote(s)))
		if err != nil {
			t.Fatalf("round trip %q: %v", s, err)
		}
		if got != s {
			t.Errorf("round trip %q gave %q", s, got)
		}
	}
}
