// Package mixedconcat concatenates sequences whose elements are ints or strings.
//
// Concatenate works on []Element, a tagged union that cannot hold anything
// but an int or a string. ConcatenateAny and Join accept the loosely typed
// []any form (see Mixed) and do not check their input at all: a value of
// another kind is written with fmt.Sprint. Run the elemkind analyzer to
// find such values before they reach the program.
package mixedconcat

import (
	"fmt"
	"strconv"
	"strings"
)

// Mixed is a sequence whose elements must be either int or string.
// Nothing enforces that at run time.
type Mixed []any

// Concatenate returns the textual forms of elems joined without a separator.
func Concatenate(elems []Element) string {
	n := 0
	for _, e := range elems {
		n += e.Len()
	}
	var b strings.Builder
	b.Grow(n)
	for _, e := range elems {
		if e.kind == KindString {
			b.WriteString(e.s)
			continue
		}
		b.WriteString(strconv.Itoa(e.n))
	}
	return b.String()
}

// ConcatenateAny is Concatenate for loosely typed elements.
// Values other than int, string and Element are formatted with fmt.Sprint,
// so a nil element becomes "<nil>".
func ConcatenateAny(elems []any) string {
	var b strings.Builder
	for _, v := range elems {
		b.WriteString(textOf(v))
	}
	return b.String()
}

// Join is the variadic form of ConcatenateAny.
// Every argument should be an int or a string.
func Join(elems ...any) string {
	return ConcatenateAny(elems)
}

func textOf(v any) string {
	switch v := v.(type) {
	case int:
		return strconv.Itoa(v)
	case string:
		return v
	case Element:
		return v.String()
	}
	return fmt.Sprint(v)
}
