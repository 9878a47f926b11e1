// Package analysisutil looks up objects and types by package path and name
// from the point of view of the package being analyzed.
package analysisutil

import (
	"go/types"
	"strings"

	"github.com/gostaticanalysis/analysisutil"
	"golang.org/x/tools/go/analysis"
)

// based on https://github.com/gostaticanalysis/analysisutil/blob/ccfdecf515f47e636ba164ce0e5f26810eaf8747/types.go#L18
// ObjectOf returns the object named name in the package pkg.
// pkg must be the analyzed package or one of its direct imports.
func ObjectOf(pass *analysis.Pass, pkg, name string) types.Object {
	if obj := analysisutil.LookupFromImports(pass.Pkg.Imports(), pkg, name); obj != nil {
		return obj
	}
	if analysisutil.RemoveVendor(pass.Pkg.Path()) != analysisutil.RemoveVendor(pkg) {
		return nil
	}
	return pass.Pkg.Scope().Lookup(name)
}

// TypeOf is like ObjectOf but returns the type of the object.
// A leading '*' in name yields the pointer type.
func TypeOf(pass *analysis.Pass, pkg, name string) types.Type {
	return typeOf(name, func(name string) types.Object {
		return ObjectOf(pass, pkg, name)
	})
}

// TypeOfBFS is like TypeOf but also searches the transitive imports of pkg.
func TypeOfBFS(pkg *types.Package, path, name string) types.Type {
	return typeOf(name, func(name string) types.Object {
		return ObjectOfBFS(pkg, path, name)
	})
}

func typeOf(name string, lookup func(string) types.Object) types.Type {
	if name == "" {
		return nil
	}
	if name[0] == '*' {
		elem := typeOf(name[1:], lookup)
		if elem == nil {
			return nil
		}
		return types.NewPointer(elem)
	}
	obj := lookup(name)
	if obj == nil {
		return nil
	}
	if _, ok := obj.(*types.TypeName); !ok {
		return nil
	}
	return obj.Type()
}

// ObjectOfBFS searches the imports of from breadth first for the package
// path and returns its object named name.
// Standard library packages are not descended into.
func ObjectOfBFS(from *types.Package, path, name string) types.Object {
	path = analysisutil.RemoveVendor(path)
	seen := map[*types.Package]bool{from: true}
	queue := []*types.Package{from}
	for len(queue) > 0 {
		pkg := queue[0]
		queue = queue[1:]
		for _, imp := range pkg.Imports() {
			if seen[imp] {
				continue
			}
			seen[imp] = true
			if analysisutil.RemoveVendor(imp.Path()) == path {
				return imp.Scope().Lookup(name)
			}
			if isStdLib(imp) {
				continue
			}
			queue = append(queue, imp)
		}
	}
	return nil
}

// MethodOf returns the method name of typ, or nil.
func MethodOf(typ types.Type, name string) *types.Func {
	if typ == nil {
		return nil
	}
	return analysisutil.MethodOf(typ, name)
}

// isStdLib reports whether the first element of the import path lacks a dot.
func isStdLib(pkg *types.Package) bool {
	path := pkg.Path()
	i := strings.Index(path, "/")
	if i < 0 {
		i = len(path)
	}
	return !strings.Contains(path[:i], ".")
}
