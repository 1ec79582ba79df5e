/*
File : wacc/checker/walker.go
The semantic walker (spec.md component C8): a per-statement-kind
dispatch over the AST, following the same type-switch traversal idiom as
ast/printer.go and the teacher's eval/evaluator.go. Two rules it enforces
are easy to get backwards:

  - VarDef initializer ordering: the initializer expression is
    type-checked in the scope as it stood BEFORE the new binding is
    added, so `int x = x` always refers to an outer `x` (or fails to
    resolve) rather than seeing its own not-yet-bound name.
  - Error rewrap at IdentifiedStatement boundaries: an error raised deep
    inside an expression carries no position; as walkStmt's recursion
    unwinds back out through each enclosing IdentifiedStatement, WithPos
    stamps that statement's saved position onto it. Since a statement can
    be nested inside several IdentifiedStatements (spec.md §4.2's for-loop
    desugaring shares one id across several, but a hand-written nested
    block still has distinct ones at each level), the outermost stamp is
    the one left standing when the error finally reaches the caller.
*/
package checker

import (
	"fmt"

	"github.com/wacclang/wacc/ast"
	"github.com/wacclang/wacc/symtab"
	"github.com/wacclang/wacc/typing"
)

type walker struct {
	structs typing.StructRegistry
	funcs   typing.FuncRegistry
}

func (w *walker) walkFunDef(fn *ast.FunDef, st *symtab.SymbolTable) *CheckerError {
	var result *CheckerError
	err := st.Scoped(func() error {
		st.AddSymbol(symtab.ReturnSlot, fn.Decl.Type)
		for _, p := range fn.Params {
			st.AddSymbol(p.Name, p.Type)
		}
		result = w.walkStmt(fn.Body, st)
		if result != nil {
			return result
		}
		return nil
	})
	if err != nil {
		if ce, ok := err.(*CheckerError); ok {
			return ce
		}
		return NewUnlocated(Semantic, err.Error())
	}
	return result
}

// walkStmt type-switches over every statement variant.
func (w *walker) walkStmt(s ast.Stmt, st *symtab.SymbolTable) *CheckerError {
	switch n := s.(type) {
	case *ast.IdentifiedStatement:
		if err := w.walkStmt(n.Inner, st); err != nil {
			return err.WithPos(n.Pos())
		}
		return nil

	case *ast.Noop:
		return nil

	case *ast.Block:
		var result *CheckerError
		err := st.Scoped(func() error {
			for _, inner := range n.Stmts {
				if result = w.walkStmt(inner, st); result != nil {
					return result
				}
			}
			return nil
		})
		if err != nil {
			if ce, ok := err.(*CheckerError); ok {
				return ce
			}
		}
		return result

	case *ast.VarDef:
		valType, err := typing.TypeOf(n.Expr, st, w.structs, w.funcs)
		if err != nil {
			return NewUnlocated(Type, err.Error())
		}
		if !typing.Equal(valType, n.Decl.Type) {
			return NewUnlocated(Type, fmt.Sprintf("cannot initialize %q of type %s with value of type %s", n.Decl.Name, n.Decl.Type, valType))
		}
		if st.DeclaredInCurrentFrame(n.Decl.Name) {
			return NewUnlocated(Semantic, fmt.Sprintf("%q is already declared in this scope", n.Decl.Name))
		}
		st.AddSymbol(n.Decl.Name, n.Decl.Type)
		return nil

	case *ast.Ctrl:
		switch n.Kind {
		case ast.CtrlReturn:
			retType, ok := st.Lookup(symtab.ReturnSlot)
			if !ok {
				return NewUnlocated(Semantic, "return outside a function body")
			}
			valType, err := typing.TypeOf(n.Expr, st, w.structs, w.funcs)
			if err != nil {
				return NewUnlocated(Type, err.Error())
			}
			if !typing.Equal(valType, retType) {
				return NewUnlocated(Type, fmt.Sprintf("return type mismatch: expected %s, got %s", retType, valType))
			}
			return nil
		case ast.CtrlBreak, ast.CtrlContinue:
			// Always valid, even outside a loop (spec.md §4.8).
			return nil
		}
		return nil

	case *ast.Cond:
		// No TBool assertion on the test, unlike Loop below (spec.md §4.8,
		// §9 Open Questions: this mirrors the source's existing behavior).
		if _, err := typing.TypeOf(n.Test, st, w.structs, w.funcs); err != nil {
			return NewUnlocated(Type, err.Error())
		}
		if err := w.walkStmt(n.Then, st); err != nil {
			return err
		}
		return w.walkStmt(n.Else, st)

	case *ast.Loop:
		testType, err := typing.TypeOf(n.Test, st, w.structs, w.funcs)
		if err != nil {
			return NewUnlocated(Type, err.Error())
		}
		if !typing.Equal(testType, ast.TBool()) {
			return NewUnlocated(Type, fmt.Sprintf("while condition must be bool, got %s", testType))
		}
		return w.walkStmt(n.Body, st)

	case *ast.Builtin:
		return w.walkBuiltin(n, st)

	case *ast.ExpStmt:
		if _, err := typing.TypeOf(n.Expr, st, w.structs, w.funcs); err != nil {
			return NewUnlocated(Type, err.Error())
		}
		return nil

	case *ast.ExternDecl:
		return nil // not type-checked (spec.md §9)

	case *ast.InlineAssembly:
		return nil // not type-checked (spec.md §9)

	default:
		return NewUnlocated(Semantic, fmt.Sprintf("walker: unhandled statement node %T", s))
	}
}

func (w *walker) walkBuiltin(n *ast.Builtin, st *symtab.SymbolTable) *CheckerError {
	argType, err := typing.TypeOf(n.Expr, st, w.structs, w.funcs)
	if err != nil {
		return NewUnlocated(Type, err.Error())
	}
	switch n.Op {
	case ast.BuiltinRead:
		switch argType.Kind {
		case ast.KindInt, ast.KindBool, ast.KindChar, ast.KindString:
			return nil
		default:
			return NewUnlocated(Type, fmt.Sprintf("cannot read into a value of type %s", argType))
		}
	case ast.BuiltinFree:
		switch argType.Kind {
		case ast.KindPair, ast.KindPtr, ast.KindArray, ast.KindStruct:
			return nil
		default:
			return NewUnlocated(Type, fmt.Sprintf("cannot free a value of type %s", argType))
		}
	case ast.BuiltinExit:
		if !typing.Equal(argType, ast.TInt()) {
			return NewUnlocated(Type, fmt.Sprintf("exit code must be int, got %s", argType))
		}
		return nil
	case ast.BuiltinPrint, ast.BuiltinPrintLn:
		return nil
	default:
		return NewUnlocated(Semantic, "walker: unhandled builtin operator")
	}
}
