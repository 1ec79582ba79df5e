/*
File : wacc/checker/checker.go
Check is the top-level entry point for semantic analysis (spec.md §4.9):
control-flow checks run first against the raw AST, then every function
signature is registered so forward references and mutual recursion
resolve, then each global is checked and registered in source order (a
global's initializer sees only the globals before it), and finally each
function body is walked for type and scope errors. Check aborts and returns on the first error, consistent
with the parser's first-failure-aborts model (spec.md §7).
*/
package checker

import (
	"fmt"

	"github.com/wacclang/wacc/ast"
	"github.com/wacclang/wacc/symtab"
	"github.com/wacclang/wacc/typing"
)

// Check runs full semantic analysis over prog.
func Check(prog *ast.Program) error {
	structs := typing.StructRegistry{}
	funcs := typing.FuncRegistry{}
	var funDefs []*ast.FunDef

	for _, d := range prog.Defs {
		switch n := d.(type) {
		case *ast.TypeDef:
			structs[n.Name] = n.Fields
		case *ast.FunDef:
			funcs[n.Decl.Name] = ast.TFun(n.Decl.Type, n.Params)
			funDefs = append(funDefs, n)
		}
	}

	main := prog.MainFunc()

	// Control-flow checks run over the raw AST before any scope is built.
	// main is exempt from the return-coverage and unreachable-code checks
	// (it is not required to return at all) but is the only definition
	// the must-not-return check applies to.
	for _, fn := range funDefs {
		if main != nil && fn.Decl.Name == main.Decl.Name {
			continue
		}
		if err := checkCodePathsReturn(fn); err != nil {
			return err
		}
		if err := checkUnreachableCode(fn.Body); err != nil {
			return err
		}
	}
	if main != nil {
		if err := checkMainDoesNotReturn(main); err != nil {
			return err
		}
	}

	st := symtab.New()
	for name, t := range funcs {
		st.AddSymbol(name, t)
	}

	w := &walker{structs: structs, funcs: funcs}

	for _, d := range prog.Defs {
		g, ok := d.(*ast.GlobalDef)
		if !ok {
			continue
		}
		valType, err := typing.TypeOf(g.Expr, st, structs, funcs)
		if err != nil {
			return NewUnlocated(Type, err.Error())
		}
		if !typing.Equal(valType, g.Decl.Type) {
			return NewUnlocated(Type, fmt.Sprintf("global %q: expected %s, got %s", g.Decl.Name, g.Decl.Type, valType))
		}
		st.AddSymbol(g.Decl.Name, g.Decl.Type)
	}

	for _, fn := range funDefs {
		if err := w.walkFunDef(fn, st); err != nil {
			return err
		}
	}
	return nil
}
