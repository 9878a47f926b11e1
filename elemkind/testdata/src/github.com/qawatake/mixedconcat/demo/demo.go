package demo

import (
	"fmt"

	"github.com/qawatake/mixedconcat"
)

func f() {
	elems := mixedconcat.Mixed{
		1,
		2,
		"asdf",
	}
	fmt.Println(mixedconcat.ConcatenateAny(elems))

	elems = append(elems, nil) // want "untyped nil is not allowed as an element of github.com/qawatake/mixedconcat.Mixed"
	_ = elems

	_ = mixedconcat.Join(1, "a")   // ok
	_ = mixedconcat.Join(1, 2.5)   // want "float64 is not allowed for the 2th arg of github.com/qawatake/mixedconcat.Join"
	_ = mixedconcat.Join(elems...) // ok
}
