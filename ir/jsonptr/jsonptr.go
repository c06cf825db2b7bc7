// Package jsonptr implements the slash-delimited pointer syntax used
// to address nodes in a document. Unlike RFC 6901 there is no ~0/~1
// escaping, so a key cannot contain '/'.
package jsonptr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPointer is the base error for malformed pointers. Every
// error returned by this package wraps it.
var ErrInvalidPointer = errors.New("invalid pointer")

// InvalidPointerErr reports a malformed pointer or pointer entry.
type InvalidPointerErr struct {
	Ptr    string
	Reason string
}

func (e *InvalidPointerErr) Error() string {
	return fmt.Sprintf("invalid pointer %q: %s", e.Ptr, e.Reason)
}

func (e *InvalidPointerErr) Unwrap() error {
	return ErrInvalidPointer
}

// Split splits a non-empty pointer into its first entry and the
// remaining pointer. The rest keeps its leading '/' so it can be fed
// back to Split; it is "" once the last entry has been taken.
//
//	Split("/a/b") → ("a", "/b", nil)
//	Split("/a")   → ("a", "", nil)
//	Split("/")    → ("", "", nil)
//
// The empty pointer addresses a node directly and has no entries;
// callers are expected to handle it before splitting.
func Split(ptr string) (entry, rest string, err error) {
	if ptr == "" {
		return "", "", &InvalidPointerErr{Ptr: ptr, Reason: "no entries"}
	}
	if ptr[0] != '/' {
		return "", "", &InvalidPointerErr{Ptr: ptr, Reason: "missing leading '/'"}
	}
	if i := strings.IndexByte(ptr[1:], '/'); i != -1 {
		return ptr[1 : 1+i], ptr[1+i:], nil
	}
	return ptr[1:], "", nil
}

// SeqIndex interprets entry as a sequence index: decimal digits with
// no leading zero. "0" is the only index that may begin with '0'.
func SeqIndex(entry string) (int, error) {
	if entry == "" {
		return 0, &InvalidPointerErr{Ptr: entry, Reason: "empty sequence index"}
	}
	for i := 0; i < len(entry); i++ {
		if entry[i] < '0' || entry[i] > '9' {
			return 0, &InvalidPointerErr{Ptr: entry, Reason: "sequence index is not a decimal number"}
		}
	}
	if entry[0] == '0' && len(entry) > 1 {
		return 0, &InvalidPointerErr{Ptr: entry, Reason: "sequence index has a leading zero"}
	}
	i, err := strconv.Atoi(entry)
	if err != nil {
		return 0, &InvalidPointerErr{Ptr: entry, Reason: err.Error()}
	}
	return i, nil
}

// Join builds a pointer from entries: Join("a", "b") is "/a/b" and
// Join() is "", the root pointer.
func Join(entries ...string) string {
	if len(entries) == 0 {
		return ""
	}
	return "/" + strings.Join(entries, "/")
}

// Append extends ptr with one more entry.
func Append(ptr, entry string) string {
	return ptr + "/" + entry
}

// AppendIndex extends ptr with a sequence index entry.
func AppendIndex(ptr string, i int) string {
	return ptr + "/" + strconv.Itoa(i)
}
