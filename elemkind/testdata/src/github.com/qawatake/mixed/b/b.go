package b

import "github.com/qawatake/mixed"

type Mixed = mixed.Mixed

type elem struct{}

func (elem) Elem() {}

func f() {
	m := mixed.Mixed{1, elem{}} // ok
	m = append(m, "x")          // want "string is not allowed as an element of github.com/qawatake/mixed.Mixed"
	m = append(m, elem{}, 2)    // ok
	_ = m
}
