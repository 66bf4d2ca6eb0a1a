package gen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// exportName upper-cases the first letter of name and keeps the rest.
func exportName(name string) string {
	if name == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(name)
	return cases.Title(language.Und, cases.NoLower).String(name[:size]) + name[size:]
}

// isTypeExpr reports whether s parses as a Go type expression.
func isTypeExpr(s string) bool {
	e, err := parser.ParseExpr(s)
	return err == nil && typeExpr(e)
}

func typeExpr(e ast.Expr) bool {
	switch t := e.(type) {
	case *ast.Ident:
		return true
	case *ast.SelectorExpr:
		_, ok := t.X.(*ast.Ident)
		return ok
	case *ast.StarExpr:
		return typeExpr(t.X)
	case *ast.ParenExpr:
		return typeExpr(t.X)
	case *ast.ArrayType:
		if t.Len != nil {
			if _, ok := t.Len.(*ast.BasicLit); !ok {
				return false
			}
		}
		return typeExpr(t.Elt)
	case *ast.MapType:
		return typeExpr(t.Key) && typeExpr(t.Value)
	case *ast.ChanType:
		return typeExpr(t.Value)
	case *ast.IndexExpr:
		return typeExpr(t.X) && typeExpr(t.Index)
	case *ast.IndexListExpr:
		for _, idx := range t.Indices {
			if !typeExpr(idx) {
				return false
			}
		}
		return typeExpr(t.X)
	case *ast.FuncType, *ast.InterfaceType, *ast.StructType:
		return true
	default:
		return false
	}
}

func isExported(name string) bool {
	return token.IsExported(name)
}
