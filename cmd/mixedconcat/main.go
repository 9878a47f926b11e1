// Command mixedconcat prints the concatenation of [1, 2, "asdf"].
package main

import (
	"fmt"

	"github.com/qawatake/mixedconcat"
)

func main() {
	// must hold only ints and strings
	elems := mixedconcat.Mixed{
		1,
		2,
		"asdf",
	}
	fmt.Println(mixedconcat.ConcatenateAny(elems)) // 12asdf

	typed := []mixedconcat.Element{
		mixedconcat.Int(1),
		mixedconcat.Int(2),
		mixedconcat.String("asdf"),
	}
	_ = mixedconcat.Concatenate(typed)

	// Compiles and runs. Only elemkind reports it.
	elems = append(elems, nil)
	// typed = append(typed, nil) would not compile.
	_ = elems
}
