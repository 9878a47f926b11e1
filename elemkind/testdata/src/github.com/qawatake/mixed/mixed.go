package mixed

// Mixed holds ints and values implementing Elem.
type Mixed []any

type Elem interface {
	Elem()
}
