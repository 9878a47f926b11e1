package mixedconcat

// Mixed is a sequence whose elements must be either int or string.
type Mixed []any

func ConcatenateAny(elems []any) string { return "" }

func Join(elems ...any) string { return ConcatenateAny(elems) }
