package c

import "github.com/qawatake/mixed/b"

type local struct{}

func (local) Elem() {}

func f() {
	m := b.Mixed{1, local{}} // ok
	m = append(m, 1.5)       // want "float64 is not allowed as an element of github.com/qawatake/mixed.Mixed"
	_ = m
}
