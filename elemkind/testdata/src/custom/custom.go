package custom

// elems must be int or string
func Concat(sep string, elems ...any) string { return "" }

type Row []any

func f() {
	Concat(",", 1, "a")       // ok
	Concat(",", 1, nil)       // want "untyped nil is not allowed for the 3th arg of custom.Concat"
	r := Row{"id", 1}         // ok
	r = append(r, struct{}{}) // want `struct\{\} is not allowed as an element of custom.Row`
	_ = r
}
