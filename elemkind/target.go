package elemkind

import (
	"fmt"
	"go/types"
	"strings"

	"github.com/qawatake/mixedconcat/internal/analysisutil"
	"golang.org/x/tools/go/analysis"
)

type funcTarget struct {
	Func    *types.Func
	ArgPos  int
	Allowed allowedSet
}

type sliceTarget struct {
	Type    types.Type
	Allowed allowedSet
}

// allowedSet is the resolved form of []Allowed.
type allowedSet []types.Type

func (s allowedSet) allow(t types.Type) bool {
	if t == nil {
		// no type information, e.g. in a file that failed to type-check
		return true
	}
	if b, ok := t.(*types.Basic); ok && b.Kind() == types.UntypedNil {
		return false
	}
	for _, at := range s {
		if types.Identical(t, at) {
			return true
		}
		if i, ok := at.Underlying().(*types.Interface); ok {
			if types.Implements(t, i) {
				return true
			}
		}
	}
	return false
}

var byteType = types.Universe.Lookup("byte").Type()
var runeType = types.Universe.Lookup("rune").Type()

func resolveTargets(pass *analysis.Pass, targets []Target) ([]*funcTarget, error) {
	ret := make([]*funcTarget, 0, len(targets))
	for _, t := range targets {
		obj, err := funcOf(pass, t)
		if err != nil {
			return nil, err
		}
		if obj == nil {
			// not visible from this package
			continue
		}
		allowed, err := resolveAllowed(pass, t.Allowed)
		if err != nil {
			return nil, err
		}
		ft := &funcTarget{
			Func:    obj,
			ArgPos:  t.ArgPos,
			Allowed: allowed,
		}
		if err := ft.validate(); err != nil {
			return nil, err
		}
		ret = append(ret, ft)
	}
	return ret, nil
}

func (t *funcTarget) validate() error {
	sig, ok := t.Func.Type().(*types.Signature)
	if !ok {
		return nil
	}
	if t.ArgPos < 0 || sig.Params().Len() <= t.ArgPos {
		return newErrArgPosOutOfRange(t.Func.Pkg().Path(), t.Func.Name(), t.ArgPos)
	}
	return nil
}

// funcOf returns the function or method named by t.
// FuncName is either F, T.M or *T.M.
func funcOf(pass *analysis.Pass, t Target) (*types.Func, error) {
	if !strings.Contains(t.FuncName, ".") {
		f, _ := analysisutil.ObjectOf(pass, t.PkgPath, t.FuncName).(*types.Func)
		return f, nil
	}
	tt := strings.Split(t.FuncName, ".")
	if len(tt) != 2 || tt[0] == "" || tt[1] == "" {
		return nil, newErrInvalidFuncName(t.FuncName)
	}
	recv, method := tt[0], tt[1]
	recvType := analysisutil.TypeOf(pass, t.PkgPath, recv)
	return analysisutil.MethodOf(recvType, method), nil
}

func resolveSlices(pass *analysis.Pass, slices []SliceTarget) ([]*sliceTarget, error) {
	ret := make([]*sliceTarget, 0, len(slices))
	for _, s := range slices {
		typ := analysisutil.TypeOf(pass, s.PkgPath, s.TypeName)
		if typ == nil {
			typ = analysisutil.TypeOfBFS(pass.Pkg, s.PkgPath, s.TypeName)
		}
		if typ == nil {
			// not visible from this package
			continue
		}
		if _, ok := typ.Underlying().(*types.Slice); !ok {
			return nil, newErrNotSlice(s.PkgPath, s.TypeName)
		}
		allowed, err := resolveAllowed(pass, s.Allowed)
		if err != nil {
			return nil, err
		}
		ret = append(ret, &sliceTarget{
			Type:    typ,
			Allowed: allowed,
		})
	}
	return ret, nil
}

func resolveAllowed(pass *analysis.Pass, allowed []Allowed) (allowedSet, error) {
	ret := make(allowedSet, 0, len(allowed))
	for _, a := range allowed {
		if a.PkgPath == "" {
			tn, ok := types.Universe.Lookup(a.TypeName).(*types.TypeName)
			if !ok {
				return nil, newErrIdentNotFound(pass.Pkg.Path(), a.PkgPath, a.TypeName)
			}
			typ := tn.Type()
			ret = append(ret, typ)
			// byte and rune are distinct objects from uint8 and int32
			switch typ {
			case types.Typ[types.Uint8]:
				ret = append(ret, byteType)
			case types.Typ[types.Int32]:
				ret = append(ret, runeType)
			case byteType:
				ret = append(ret, types.Typ[types.Uint8])
			case runeType:
				ret = append(ret, types.Typ[types.Int32])
			}
			continue
		}
		if t := analysisutil.TypeOf(pass, a.PkgPath, a.TypeName); t != nil {
			ret = append(ret, t)
			continue
		}
		if t := analysisutil.TypeOfBFS(pass.Pkg, a.PkgPath, a.TypeName); t != nil {
			ret = append(ret, t)
			continue
		}
		return nil, newErrIdentNotFound(pass.Pkg.Path(), a.PkgPath, a.TypeName)
	}
	return ret, nil
}

type errArgPosOutOfRange struct {
	PkgPath  string
	FuncName string
	ArgPos   int
}

func newErrArgPosOutOfRange(pkgPath, funcName string, argPos int) errArgPosOutOfRange {
	return errArgPosOutOfRange{
		PkgPath:  pkgPath,
		FuncName: funcName,
		ArgPos:   argPos,
	}
}

func (e errArgPosOutOfRange) Error() string {
	return fmt.Sprintf("ArgPos %d is out of range for %s.%s", e.ArgPos, e.PkgPath, e.FuncName)
}

type errInvalidFuncName struct {
	FuncName string
}

func newErrInvalidFuncName(funcName string) errInvalidFuncName {
	return errInvalidFuncName{
		FuncName: funcName,
	}
}

func (e errInvalidFuncName) Error() string {
	return fmt.Sprintf("invalid FuncName %s", e.FuncName)
}

type errIdentNotFound struct {
	FromPkgPath string
	PkgPath     string
	Name        string
}

func newErrIdentNotFound(fromPkgPath, pkgPath, name string) errIdentNotFound {
	return errIdentNotFound{
		FromPkgPath: fromPkgPath,
		PkgPath:     pkgPath,
		Name:        name,
	}
}

func (e errIdentNotFound) Error() string {
	if e.PkgPath == "" {
		return fmt.Sprintf("%s is not a builtin type", e.Name)
	}
	return fmt.Sprintf("%[1]s.%[2]s is not found from %[3]s or its imports. Import %[1]s to %[3]s", e.PkgPath, e.Name, e.FromPkgPath)
}

type errNotSlice struct {
	PkgPath  string
	TypeName string
}

func newErrNotSlice(pkgPath, typeName string) errNotSlice {
	return errNotSlice{
		PkgPath:  pkgPath,
		TypeName: typeName,
	}
}

func (e errNotSlice) Error() string {
	return fmt.Sprintf("%s.%s is not a slice type", e.PkgPath, e.TypeName)
}
