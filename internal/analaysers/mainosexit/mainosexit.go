// Package mainosexit reports direct os.Exit
// calls inside func main of package main.
package mainosexit

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const msg = "calling os.Exit in main package is not allowed"

// NewCheckAnalayser - return a new object instance.
func NewCheckAnalayser() *analysis.Analyzer {
	return &analysis.Analyzer{
		Name:     "mainosexit",
		Doc:      msg,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
		Run:      run,
	}
}

//nolint:nilnil
func run(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil
	}

	insp, _ := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{(*ast.FuncDecl)(nil)}

	insp.Preorder(nodeFilter, func(n ast.Node) {
		fun, _ := n.(*ast.FuncDecl)
		if fun.Recv != nil || fun.Name.Name != "main" || fun.Body == nil {
			return
		}

		ast.Inspect(fun.Body, func(n ast.Node) bool {
			// closures run outside of main's own frame
			if _, isLit := n.(*ast.FuncLit); isLit {
				return false
			}

			call, isok := n.(*ast.CallExpr)
			if isok && isOsExit(pass, call) {
				pass.Reportf(call.Pos(), msg)
			}

			return true
		})
	})

	return nil, nil
}

// isOsExit resolves the callee through type info,
// so renamed imports of os are caught too.
func isOsExit(pass *analysis.Pass, call *ast.CallExpr) bool {
	sel, isok := call.Fun.(*ast.SelectorExpr)
	if !isok {
		return false
	}

	fn, isok := pass.TypesInfo.Uses[sel.Sel].(*types.Func)
	if !isok || fn.Pkg() == nil {
		return false
	}

	return fn.Pkg().Path() == "os" && fn.Name() == "Exit"
}
