package mixedconcat

type ErrUnsupportedKind = errUnsupportedKind

var IntLen = intLen
