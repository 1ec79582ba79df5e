/*
File : wacc/checker/controlflow.go
Control-flow checks (spec.md component C9): every code path through a
function must return, no statement may follow one that unconditionally
diverges, and main must never return. These are deliberately coarse --
a while loop is never considered to guarantee termination through its
body, since its condition might be false on the very first test -- which
keeps the analysis a simple structural walk instead of real dataflow
(spec.md explicitly places whole-program dataflow analysis out of scope).
*/
package checker

import "github.com/wacclang/wacc/ast"

func unwrapStmt(s ast.Stmt) ast.Stmt {
	if is, ok := s.(*ast.IdentifiedStatement); ok {
		return unwrapStmt(is.Inner)
	}
	return s
}

// returnsOnAllPaths reports whether executing s is guaranteed to reach a
// `return` or `exit` before falling off the end.
func returnsOnAllPaths(s ast.Stmt) bool {
	switch n := unwrapStmt(s).(type) {
	case *ast.Ctrl:
		return n.Kind == ast.CtrlReturn
	case *ast.Builtin:
		return n.Op == ast.BuiltinExit
	case *ast.Block:
		for _, st := range n.Stmts {
			if returnsOnAllPaths(st) {
				return true
			}
		}
		return false
	case *ast.Cond:
		return returnsOnAllPaths(n.Then) && returnsOnAllPaths(n.Else)
	default:
		return false
	}
}

// divergesOnAllPaths reports whether executing s is guaranteed to
// transfer control away without falling through -- via return, exit,
// break, or continue. Used for unreachable-code detection, where a
// break/continue makes the rest of its block just as unreachable as a
// return would.
func divergesOnAllPaths(s ast.Stmt) bool {
	switch n := unwrapStmt(s).(type) {
	case *ast.Ctrl:
		return true
	case *ast.Builtin:
		return n.Op == ast.BuiltinExit
	case *ast.Block:
		for _, st := range n.Stmts {
			if divergesOnAllPaths(st) {
				return true
			}
		}
		return false
	case *ast.Cond:
		return divergesOnAllPaths(n.Then) && divergesOnAllPaths(n.Else)
	default:
		return false
	}
}

// containsReturn reports whether a `return` is reachable anywhere inside
// s, including nested inside conditionals and loops.
func containsReturn(s ast.Stmt) bool {
	switch n := unwrapStmt(s).(type) {
	case *ast.Ctrl:
		return n.Kind == ast.CtrlReturn
	case *ast.Block:
		for _, st := range n.Stmts {
			if containsReturn(st) {
				return true
			}
		}
		return false
	case *ast.Cond:
		return containsReturn(n.Then) || containsReturn(n.Else)
	case *ast.Loop:
		return containsReturn(n.Body)
	default:
		return false
	}
}

// checkCodePathsReturn fails unless every path through body returns or
// exits (spec.md §4.9, invariant: a non-void function's body must return
// on every path).
func checkCodePathsReturn(fn *ast.FunDef) *CheckerError {
	if returnsOnAllPaths(fn.Body) {
		return nil
	}
	return New(Semantic, fn.Body.Pos(), "not all code paths return a value")
}

// checkUnreachableCode fails on the first statement found after one that
// unconditionally diverges within the same statement sequence.
func checkUnreachableCode(s ast.Stmt) *CheckerError {
	switch n := unwrapStmt(s).(type) {
	case *ast.Block:
		diverged := false
		for _, st := range n.Stmts {
			if diverged {
				return New(Semantic, st.Pos(), "unreachable code after return statement")
			}
			if err := checkUnreachableCode(st); err != nil {
				return err
			}
			if divergesOnAllPaths(st) {
				diverged = true
			}
		}
		return nil
	case *ast.Cond:
		if err := checkUnreachableCode(n.Then); err != nil {
			return err
		}
		return checkUnreachableCode(n.Else)
	case *ast.Loop:
		return checkUnreachableCode(n.Body)
	default:
		return nil
	}
}

// checkMainDoesNotReturn fails if main contains a reachable return
// statement anywhere; main terminates the program via `exit`, not by
// returning a value to a caller that does not exist (spec.md §4.9).
func checkMainDoesNotReturn(main *ast.FunDef) *CheckerError {
	if containsReturn(main.Body) {
		return New(Semantic, main.Body.Pos(), "cannot return a value from the global scope")
	}
	return nil
}
