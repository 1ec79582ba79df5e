/*
File : wacc/ast/stmt.go
Stmt and its concrete variants (spec.md §3).
*/
package ast

import "github.com/wacclang/wacc/location"

// Stmt is the marker interface implemented by every statement variant.
type Stmt interface {
	Node
	isStmt()
}

// Noop is the `skip` statement.
type Noop struct{ base }

func (*Noop) isStmt() {}

// Block is a semicolon-separated sequence of statements.
type Block struct {
	base
	Stmts []Stmt
}

func (*Block) isStmt() {}

// VarDef is `T name = expr`.
type VarDef struct {
	base
	Decl Declaration
	Expr Expr
}

func (*VarDef) isStmt() {}

// CtrlKind tags the variant of a Ctrl statement.
type CtrlKind int

const (
	CtrlReturn CtrlKind = iota
	CtrlBreak
	CtrlContinue
)

// Ctrl is Return(Expr) | Break | Continue.
type Ctrl struct {
	base
	Kind CtrlKind
	Expr Expr // only meaningful when Kind == CtrlReturn
}

func (*Ctrl) isStmt() {}

// Cond is `if cond then s1 else s2 fi`; Else defaults to *Noop when absent.
type Cond struct {
	base
	Test       Expr
	Then, Else Stmt
}

func (*Cond) isStmt() {}

// Loop is `while cond do body done`.
type Loop struct {
	base
	Test Expr
	Body Stmt
}

func (*Loop) isStmt() {}

// BuiltinOp enumerates the built-in statement operators.
type BuiltinOp int

const (
	BuiltinRead BuiltinOp = iota
	BuiltinFree
	BuiltinExit
	BuiltinPrint
	BuiltinPrintLn
)

// Builtin is one of the built-in statements: read/free/exit/print/println.
type Builtin struct {
	base
	Op   BuiltinOp
	Expr Expr
}

func (*Builtin) isStmt() {}

// ExpStmt is a bare expression used as a statement (e.g. a discarded call).
type ExpStmt struct {
	base
	Expr Expr
}

func (*ExpStmt) isStmt() {}

// ExternDecl declares an externally-defined name; not type-checked (spec.md
// §9: "ExternDecl... parsed but not type-checked in the source").
type ExternDecl struct {
	base
	Name string
}

func (*ExternDecl) isStmt() {}

// InlineAssembly captures the raw lines between `begin inline` and `end`
// verbatim; like ExternDecl it is not type-checked.
type InlineAssembly struct {
	base
	Lines []string
}

func (*InlineAssembly) isStmt() {}

// IdentifiedStatement wraps a statement with the StatementID the location
// tracker allocated for it at parse time (spec.md §4.2/§4.8). The semantic
// walker rewraps any error propagating out of Inner with the position saved
// under ID.
type IdentifiedStatement struct {
	base
	ID    location.StatementID
	Inner Stmt
}

func (*IdentifiedStatement) isStmt() {}
