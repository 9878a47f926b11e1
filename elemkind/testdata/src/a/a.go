package a

import (
	"fmt"
	"time"
)

// elements must be int or string
type Mixed []any

// every element must be int or string
func Join(elems ...any) string { return "" }

// b must be either int or string
func Target(a any, b any, c any) {}

// b can be any type
func Target2(a any, b any, c any) {}

// b must be either int or fmt.Stringer
func Target4(a any, b any) {}

type MyInt int

type Named []any

type Struct struct{}

func (Struct) Scan(v any) {}

func (*Struct) Scan2(v any) {}

func intAndString() (int, string) { return 0, "" }

func intAndAny() (int, any) { return 0, nil }

func calls() {
	// limited
	Target(nil, 2, "3") // ok
	Target(1, "2", 3.3) // ok
	Target(1, 1.1, "3") // want "float64 is not allowed for the 2th arg of a.Target"
	Target(1, nil, "3") // want "untyped nil is not allowed for the 2th arg of a.Target"
	Target(1, 'r', "3") // ok because rune is int32

	// not limited
	Target2(nil, 2, "3") // ok
	Target2(1, 1.1, "3") // ok
	Target2(1, nil, "3") // ok

	// interface
	Target4(nil, 1)          // ok
	Target4(nil, time.Now()) // ok because time.Time implements fmt.Stringer.
	Target4(nil, "s")        // want "string is not allowed for the 2th arg of a.Target4"

	// variadic
	fmt.Println(1)           // want "int is not allowed for the 1th arg of fmt.Println"
	fmt.Println(MyInt(1))    // ok
	fmt.Println(MyInt(1), 1) // want "int is not allowed for the 2th arg of fmt.Println"

	// methods
	var s Struct
	s.Scan(1)        // ok
	s.Scan(MyInt(1)) // ok
	s.Scan("x")      // want `string is not allowed for the 1th arg of \(a.Struct\).Scan`
	(&s).Scan2(true) // ok
	s.Scan2(1)       // want `int is not allowed for the 1th arg of \(\*a.Struct\).Scan2`

	// method expressions take the receiver first
	Struct.Scan(s, 1)         // ok
	Struct.Scan(s, MyInt(1))  // ok
	Struct.Scan(s, "x")       // want `string is not allowed for the 1th arg of \(a.Struct\).Scan`
	(*Struct).Scan2(&s, true) // ok
	(*Struct).Scan2(&s, 1)    // want `int is not allowed for the 1th arg of \(\*a.Struct\).Scan2`
}

func join() {
	Join()             // ok
	Join(1, 2, "asdf") // ok
	Join(1, 2, nil)    // want "untyped nil is not allowed for the 3th arg of a.Join"
	Join("a", 2.5)     // want "float64 is not allowed for the 2th arg of a.Join"
	m := Mixed{1, "a"} // ok
	Join(m...)         // ok
	var xs []any
	Join(xs...) // want "is not allowed for the 1th arg of a.Join"
}

func mixed() {
	m := Mixed{1, 2, "asdf"} // ok
	_ = Mixed{1, nil}        // want "untyped nil is not allowed as an element of a.Mixed"
	_ = Mixed{0: 1, 1: 2.0}  // want "float64 is not allowed as an element of a.Mixed"
	m = append(m, 3, "x")    // ok
	m = append(m, nil)       // want "untyped nil is not allowed as an element of a.Mixed"
	m = append(m, m...)      // ok
	var xs []any
	m = append(m, xs...)       // want "is not allowed as an element of a.Mixed"
	m[0] = true                // want "bool is not allowed as an element of a.Mixed"
	m[0] = "ok"                // ok
	m[1], m[2] = 1, time.Now() // want "time.Time is not allowed as an element of a.Mixed"

	// multi-value assignment
	m[0], m[1] = intAndString() // ok
	m[0], m[1] = intAndAny()    // want "is not allowed as an element of a.Mixed"

	// conversions
	_ = Mixed(nil)           // ok
	_ = Mixed(m)             // ok
	_ = Mixed([]any{1, "a"}) // ok
	_ = Mixed([]any{1, nil}) // want "untyped nil is not allowed as an element of a.Mixed"
	_ = Mixed(xs)            // want "is not allowed as an element of a.Mixed"
	_ = Named(xs)            // ok

	n := Named{nil}    // ok
	n = append(n, 1.5) // ok
	_ = n
	_ = m
}
