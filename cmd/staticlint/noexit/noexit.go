// Package noexit содержит анализатор, запрещающий прямой вызов
// os.Exit в функции main пакета main: выход в обход defer теряет
// flush логгера и закрытие пула.
package noexit

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

// NewAnalyzer возвращает анализатор noexit.
func NewAnalyzer() *analysis.Analyzer {
	return &analysis.Analyzer{
		Name: "noexit",
		Doc:  "запрещает использовать os.Exit в функции main пакета main",
		Run:  run,
	}
}

func run(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil
	}

	for _, file := range pass.Files {
		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Name.Name != "main" || fn.Recv != nil {
				continue
			}
			checkBody(pass, fn.Body)
		}
	}
	return nil, nil
}

func checkBody(pass *analysis.Pass, body *ast.BlockStmt) {
	ast.Inspect(body, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}

		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok {
			return true
		}

		id, ok := sel.X.(*ast.Ident)
		if !ok || id.Name != "os" || sel.Sel.Name != "Exit" {
			return true
		}

		if fn, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func); ok && fn.FullName() == "os.Exit" {
			pass.Reportf(call.Pos(), "вызов os.Exit в функции main запрещён")
		}
		return true
	})
}
