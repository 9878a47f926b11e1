package mixedconcat

import (
	"fmt"
	"strconv"
)

// Kind is the active alternative of an Element.
type Kind uint8

const (
	KindInt Kind = iota
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindString:
		return "string"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Element holds either an int or a string.
// The zero value is Int(0).
type Element struct {
	kind Kind
	n    int
	s    string
}

// Int returns an Element holding n.
func Int(n int) Element {
	return Element{kind: KindInt, n: n}
}

// String returns an Element holding s.
func String(s string) Element {
	return Element{kind: KindString, s: s}
}

func (e Element) Kind() Kind {
	return e.kind
}

// Int returns the held int and whether e is an int.
func (e Element) Int() (int, bool) {
	return e.n, e.kind == KindInt
}

// Str returns the held string and whether e is a string.
func (e Element) Str() (string, bool) {
	return e.s, e.kind == KindString
}

// String returns the textual form of e.
// Ints are written in base 10 and strings are returned unchanged.
func (e Element) String() string {
	if e.kind == KindString {
		return e.s
	}
	return strconv.Itoa(e.n)
}

// Len returns the length in bytes of e.String() without building it.
func (e Element) Len() int {
	if e.kind == KindString {
		return len(e.s)
	}
	return intLen(e.n)
}

func intLen(n int) int {
	l := 1
	if n < 0 {
		// the minimum int has no positive counterpart
		if n == minInt {
			return len(strconv.Itoa(n))
		}
		l++
		n = -n
	}
	for n >= 10 {
		n /= 10
		l++
	}
	return l
}

const minInt = -1 << (strconv.IntSize - 1)

// FromAny converts v into an Element.
// v must be an int, a string or an Element.
func FromAny(v any) (Element, error) {
	switch v := v.(type) {
	case int:
		return Int(v), nil
	case string:
		return String(v), nil
	case Element:
		return v, nil
	}
	return Element{}, newErrUnsupportedKind(-1, v)
}

// FromAnySlice converts every value of vs with FromAny.
// It stops at the first value that cannot be converted.
func FromAnySlice(vs []any) ([]Element, error) {
	elems := make([]Element, 0, len(vs))
	for i, v := range vs {
		e, err := FromAny(v)
		if err != nil {
			return nil, newErrUnsupportedKind(i, v)
		}
		elems = append(elems, e)
	}
	return elems, nil
}

type errUnsupportedKind struct {
	// Index is -1 when the value was not taken from a slice.
	Index int
	Type  string
}

func newErrUnsupportedKind(index int, v any) errUnsupportedKind {
	typ := "<nil>"
	if v != nil {
		typ = fmt.Sprintf("%T", v)
	}
	return errUnsupportedKind{
		Index: index,
		Type:  typ,
	}
}

func (e errUnsupportedKind) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s is neither int nor string", e.Type)
	}
	return fmt.Sprintf("element %d: %s is neither int nor string", e.Index, e.Type)
}
