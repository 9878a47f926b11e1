package oor

func f() {
	OutOfRange(1)
}

func OutOfRange(v any) {}
