// Package elemkind defines an analyzer that limits the kinds of values
// passed as any-typed arguments and stored in []any-based slice types.
//
// A Go program can declare
//
//	// elements must be int or string
//	type Mixed []any
//
// but the compiler accepts append(m, nil) all the same. elemkind reports
// such values wherever they are visible statically.
package elemkind

import (
	"go/ast"
	"go/token"
	"go/types"
	"sync"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/ast/inspector"
)

const name = "elemkind"
const doc = "elemkind limits possible types for any-typed arguments and elements"

// Analyzer checks the targets of DefaultConfig.
var Analyzer = NewAnalyzer(DefaultConfig())

// NewAnalyzer returns an analyzer checking the targets of cfg.
// The -config flag names a YAML file whose targets are checked in addition.
func NewAnalyzer(cfg Config) *analysis.Analyzer {
	r := &runner{
		base: cfg,
	}
	a := &analysis.Analyzer{
		Name: name,
		Doc:  doc,
		Run:  r.run,
		Requires: []*analysis.Analyzer{
			inspect.Analyzer,
		},
	}
	a.Flags.StringVar(&r.configPath, "config", "", "YAML file with additional targets")
	return a
}

type runner struct {
	base       Config
	configPath string

	once sync.Once
	cfg  Config
	err  error
}

func (r *runner) config() (Config, error) {
	r.once.Do(func() {
		r.cfg = r.base
		if r.configPath == "" {
			return
		}
		extra, err := LoadConfigFile(r.configPath)
		if err != nil {
			r.err = err
			return
		}
		r.cfg = r.base.Merge(extra)
	})
	return r.cfg, r.err
}

func (r *runner) run(pass *analysis.Pass) (any, error) {
	cfg, err := r.config()
	if err != nil {
		return nil, err
	}
	funcs, err := resolveTargets(pass, cfg.Targets)
	if err != nil {
		return nil, err
	}
	slices, err := resolveSlices(pass, cfg.Slices)
	if err != nil {
		return nil, err
	}
	if len(funcs) == 0 && len(slices) == 0 {
		return nil, nil
	}

	c := &checker{
		pass:   pass,
		funcs:  funcs,
		slices: slices,
	}
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
		(*ast.CompositeLit)(nil),
		(*ast.AssignStmt)(nil),
	}
	inspect.Preorder(nodeFilter, func(n ast.Node) {
		switch n := n.(type) {
		case *ast.CallExpr:
			if result := c.checkAppend(n); result != nil {
				c.reportElem(n.Pos(), result)
				return
			}
			if result := c.checkConversion(n); result != nil {
				c.reportElem(n.Pos(), result)
				return
			}
			if result := c.checkCall(n); result != nil {
				pass.Reportf(n.Pos(), "%s is not allowed for the %dth arg of %s", result.ArgType, result.ArgPos+1, result.Func.FullName())
			}
		case *ast.CompositeLit:
			if result := c.checkCompositeLit(n); result != nil {
				c.reportElem(n.Pos(), result)
			}
		case *ast.AssignStmt:
			for _, result := range c.checkIndexAssign(n) {
				c.reportElem(result.Expr.Pos(), result)
			}
		}
	})

	return nil, nil
}

type checker struct {
	pass   *analysis.Pass
	funcs  []*funcTarget
	slices []*sliceTarget
}

// notAllowed describes an argument that must not be passed.
type notAllowed struct {
	ArgExpr ast.Expr
	ArgType types.Type
	ArgPos  int
	Func    *types.Func
}

// badElem describes a value that must not be stored in a slice target.
type badElem struct {
	Expr  ast.Expr
	Type  types.Type
	Slice *sliceTarget
}

func (c *checker) reportElem(pos token.Pos, e *badElem) {
	c.pass.Reportf(pos, "%s is not allowed as an element of %s", e.Type, e.Slice.Type)
}

func (c *checker) typeOf(e ast.Expr) types.Type {
	return c.pass.TypesInfo.TypeOf(e)
}

// checkCall returns the first argument of n that its target does not allow.
// If nil is returned, n should not be reported.
func (c *checker) checkCall(n *ast.CallExpr) *notAllowed {
	var ident *ast.Ident
	// offset is 1 for method expressions, whose first argument is the receiver.
	offset := 0
	switch f := n.Fun.(type) {
	case *ast.Ident:
		ident = f
	case *ast.SelectorExpr:
		ident = f.Sel
		if sel, ok := c.pass.TypesInfo.Selections[f]; ok && sel.Kind() == types.MethodExpr {
			offset = 1
		}
	default:
		return nil
	}
	obj, ok := c.pass.TypesInfo.ObjectOf(ident).(*types.Func)
	if !ok {
		return nil
	}
	sig, ok := obj.Type().(*types.Signature)
	if !ok {
		return nil
	}
	for _, t := range c.funcs {
		if t.Func != obj {
			continue
		}
		pos := t.ArgPos + offset
		if len(n.Args) <= pos {
			continue
		}
		if !sig.Variadic() {
			arg := n.Args[pos]
			if argType := c.typeOf(arg); !t.Allowed.allow(argType) {
				return &notAllowed{
					ArgExpr: arg,
					ArgType: argType,
					ArgPos:  t.ArgPos,
					Func:    obj,
				}
			}
			continue
		}
		for p := pos; p < len(n.Args); p++ {
			arg := n.Args[p]
			argType := c.typeOf(arg)
			ok := t.Allowed.allow(argType)
			if n.Ellipsis.IsValid() && p == len(n.Args)-1 {
				ok = c.allowSpread(t.Allowed, argType)
			}
			if !ok {
				return &notAllowed{
					ArgExpr: arg,
					ArgType: argType,
					ArgPos:  p - offset,
					Func:    obj,
				}
			}
		}
	}
	return nil
}

// allowSpread reports whether every element of a slice spread with ...
// is allowed. A slice target is trusted because its own elements are checked
// where they are stored.
func (c *checker) allowSpread(allowed allowedSet, typ types.Type) bool {
	if typ == nil || c.sliceTargetOf(typ) != nil {
		return true
	}
	s, ok := typ.Underlying().(*types.Slice)
	if !ok {
		return false
	}
	return allowed.allow(s.Elem())
}

func (c *checker) sliceTargetOf(typ types.Type) *sliceTarget {
	if typ == nil {
		return nil
	}
	for _, s := range c.slices {
		if types.Identical(typ, s.Type) {
			return s
		}
	}
	return nil
}

// checkAppend checks the values appended to a slice target.
func (c *checker) checkAppend(n *ast.CallExpr) *badElem {
	ident, ok := n.Fun.(*ast.Ident)
	if !ok {
		return nil
	}
	if b, ok := c.pass.TypesInfo.Uses[ident].(*types.Builtin); !ok || b.Name() != "append" {
		return nil
	}
	if len(n.Args) < 2 {
		return nil
	}
	s := c.sliceTargetOf(c.typeOf(n.Args[0]))
	if s == nil {
		return nil
	}
	for i, arg := range n.Args[1:] {
		typ := c.typeOf(arg)
		ok := s.Allowed.allow(typ)
		if n.Ellipsis.IsValid() && i == len(n.Args)-2 {
			ok = c.allowSpread(s.Allowed, typ)
		}
		if !ok {
			return &badElem{
				Expr:  arg,
				Type:  typ,
				Slice: s,
			}
		}
	}
	return nil
}

// checkConversion checks conversions to a slice target such as Mixed(xs).
// The elements of a slice literal being converted are checked one by one.
func (c *checker) checkConversion(n *ast.CallExpr) *badElem {
	if len(n.Args) != 1 {
		return nil
	}
	if tv, ok := c.pass.TypesInfo.Types[n.Fun]; !ok || !tv.IsType() {
		return nil
	}
	s := c.sliceTargetOf(c.typeOf(n.Fun))
	if s == nil {
		return nil
	}
	arg := astutil.Unparen(n.Args[0])
	if lit, ok := arg.(*ast.CompositeLit); ok {
		return c.checkElems(s, lit.Elts)
	}
	typ := c.typeOf(arg)
	if b, ok := typ.(*types.Basic); ok && b.Kind() == types.UntypedNil {
		// Mixed(nil) is an empty slice
		return nil
	}
	if !c.allowSpread(s.Allowed, typ) {
		return &badElem{
			Expr:  arg,
			Type:  typ,
			Slice: s,
		}
	}
	return nil
}

// checkCompositeLit checks the elements of a slice target literal.
func (c *checker) checkCompositeLit(n *ast.CompositeLit) *badElem {
	s := c.sliceTargetOf(c.typeOf(n))
	if s == nil {
		return nil
	}
	return c.checkElems(s, n.Elts)
}

func (c *checker) checkElems(s *sliceTarget, elts []ast.Expr) *badElem {
	for _, elt := range elts {
		if kv, ok := elt.(*ast.KeyValueExpr); ok {
			elt = kv.Value
		}
		if typ := c.typeOf(elt); !s.Allowed.allow(typ) {
			return &badElem{
				Expr:  elt,
				Type:  typ,
				Slice: s,
			}
		}
	}
	return nil
}

// checkIndexAssign checks assignments of the form s[i] = v.
func (c *checker) checkIndexAssign(n *ast.AssignStmt) []*badElem {
	if n.Tok != token.ASSIGN {
		return nil
	}
	// m[0], m[1] = f()
	var tuple *types.Tuple
	if len(n.Rhs) == 1 && len(n.Lhs) > 1 {
		tuple, _ = c.typeOf(n.Rhs[0]).(*types.Tuple)
		if tuple == nil || tuple.Len() != len(n.Lhs) {
			return nil
		}
	} else if len(n.Lhs) != len(n.Rhs) {
		return nil
	}
	var ret []*badElem
	for i, lhs := range n.Lhs {
		idx, ok := lhs.(*ast.IndexExpr)
		if !ok {
			continue
		}
		s := c.sliceTargetOf(c.typeOf(idx.X))
		if s == nil {
			continue
		}
		var rhs ast.Expr
		var typ types.Type
		if tuple != nil {
			rhs, typ = n.Rhs[0], tuple.At(i).Type()
		} else {
			rhs = n.Rhs[i]
			typ = c.typeOf(rhs)
		}
		if !s.Allowed.allow(typ) {
			ret = append(ret, &badElem{
				Expr:  rhs,
				Type:  typ,
				Slice: s,
			})
		}
	}
	return ret
}
