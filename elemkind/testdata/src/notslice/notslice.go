package notslice

type Mixed struct {
	elems []any
}

func f() {
	_ = Mixed{elems: []any{nil}}
}
