/*
File : wacc/typing/typeof.go
TypeOf implements the typeof(expr) judgement of spec.md §4.7 by recursive
descent over ast.Expr, the same type-switch-over-node-variant shape the
teacher's eval/evaluator.go uses to dispatch over AST nodes, generalized
from "evaluate" to "infer a type". Errors returned here carry no position;
the semantic walker (checker.walker) is responsible for attaching one as
the error unwinds through the enclosing IdentifiedStatement.
*/
package typing

import (
	"fmt"

	"github.com/wacclang/wacc/ast"
	"github.com/wacclang/wacc/symtab"
)

// StructRegistry maps a struct name to its field declarations, built once
// from a Program's TypeDefs before the walker visits any function body.
type StructRegistry map[string][]ast.Declaration

// FuncRegistry maps a function name to its full function type, built once
// from a Program's FunDefs before any function body is
// walked, so forward and mutually recursive calls resolve.
type FuncRegistry map[string]ast.Type

// TypeOf infers the type of e under the bindings visible in st, consulting
// structs and funcs to resolve struct-field and call-target types.
func TypeOf(e ast.Expr, st *symtab.SymbolTable, structs StructRegistry, funcs FuncRegistry) (ast.Type, error) {
	switch n := e.(type) {
	case *ast.Lit:
		return typeOfLiteral(n.Value, st, structs, funcs)
	case *ast.Ident:
		t, ok := st.Lookup(n.Name)
		if !ok {
			return ast.Type{}, fmt.Errorf("undeclared identifier %q", n.Name)
		}
		return t, nil
	case *ast.ArrElem:
		t, ok := st.Lookup(n.Name)
		if !ok {
			return ast.Type{}, fmt.Errorf("undeclared identifier %q", n.Name)
		}
		for range n.Indices {
			if t.Kind != ast.KindArray {
				return ast.Type{}, fmt.Errorf("%q is not indexable at this depth", n.Name)
			}
			t = *t.Elem
		}
		for _, idx := range n.Indices {
			it, err := TypeOf(idx, st, structs, funcs)
			if err != nil {
				return ast.Type{}, err
			}
			if !Equal(it, ast.TInt()) {
				return ast.Type{}, fmt.Errorf("array index must be int, got %s", it)
			}
		}
		return t, nil
	case *ast.PairElem:
		t, ok := st.Lookup(n.Name)
		if !ok {
			return ast.Type{}, fmt.Errorf("undeclared identifier %q", n.Name)
		}
		if t.Kind != ast.KindPair {
			return ast.Type{}, fmt.Errorf("%q is not a pair", n.Name)
		}
		if n.Side == ast.Fst {
			return *t.Fst, nil
		}
		return *t.Snd, nil
	case *ast.UnApp:
		operand, err := TypeOf(n.Expr, st, structs, funcs)
		if err != nil {
			return ast.Type{}, err
		}
		result, ok := UnaryResult(n.Op, operand)
		if !ok {
			return ast.Type{}, fmt.Errorf("operator %s does not accept operand type %s", n.Op, operand)
		}
		return result, nil
	case *ast.BinApp:
		left, err := TypeOf(n.Left, st, structs, funcs)
		if err != nil {
			return ast.Type{}, err
		}
		right, err := TypeOf(n.Right, st, structs, funcs)
		if err != nil {
			return ast.Type{}, err
		}
		result, ok := BinaryResult(n.Op, left, right)
		if !ok {
			return ast.Type{}, fmt.Errorf("operator %s does not accept operand types %s, %s", n.Op, left, right)
		}
		return result, nil
	case *ast.FunCall:
		ft, ok := funcs[n.Name]
		if !ok {
			return ast.Type{}, fmt.Errorf("call to undeclared function %q", n.Name)
		}
		if len(n.Args) != len(ft.Params) {
			return ast.Type{}, fmt.Errorf("function %q expects %d arguments, got %d", n.Name, len(ft.Params), len(n.Args))
		}
		for i, arg := range n.Args {
			at, err := TypeOf(arg, st, structs, funcs)
			if err != nil {
				return ast.Type{}, err
			}
			if !Equal(at, ft.Params[i].Type) {
				return ast.Type{}, fmt.Errorf("argument %d to %q: expected %s, got %s", i+1, n.Name, ft.Params[i].Type, at)
			}
		}
		return *ft.Ret, nil
	case *ast.NewPair:
		fst, err := TypeOf(n.Fst, st, structs, funcs)
		if err != nil {
			return ast.Type{}, err
		}
		snd, err := TypeOf(n.Snd, st, structs, funcs)
		if err != nil {
			return ast.Type{}, err
		}
		return ast.TPair(fst, snd), nil
	case *ast.NewStruct:
		if _, ok := structs[n.Name]; !ok {
			return ast.Type{}, fmt.Errorf("undeclared struct %q", n.Name)
		}
		return ast.TPtr(ast.TStruct(n.Name)), nil
	default:
		return ast.Type{}, fmt.Errorf("typeof: unhandled expression node %T", e)
	}
}

func typeOfLiteral(l ast.Literal, st *symtab.SymbolTable, structs StructRegistry, funcs FuncRegistry) (ast.Type, error) {
	switch l.Kind {
	case ast.LitInt:
		return ast.TInt(), nil
	case ast.LitBool:
		return ast.TBool(), nil
	case ast.LitChar:
		return ast.TChar(), nil
	case ast.LitStr:
		return ast.TString(), nil
	case ast.LitNull:
		return ast.TPair(ast.TArb(), ast.TArb()), nil
	case ast.LitArray:
		if len(l.Elems) == 0 {
			return ast.TArray(ast.TArb()), nil
		}
		elemType, err := TypeOf(l.Elems[0], st, structs, funcs)
		if err != nil {
			return ast.Type{}, err
		}
		for _, e := range l.Elems[1:] {
			t, err := TypeOf(e, st, structs, funcs)
			if err != nil {
				return ast.Type{}, err
			}
			if !Equal(t, elemType) {
				return ast.Type{}, fmt.Errorf("array literal elements must share a type: %s vs %s", elemType, t)
			}
		}
		return ast.TArray(elemType), nil
	default:
		return ast.Type{}, fmt.Errorf("typeof: unhandled literal kind %v", l.Kind)
	}
}
