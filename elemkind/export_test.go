package elemkind

type ErrArgPosOutOfRange = errArgPosOutOfRange
type ErrInvalidFuncName = errInvalidFuncName
type ErrIdentNotFound = errIdentNotFound
type ErrNotSlice = errNotSlice
