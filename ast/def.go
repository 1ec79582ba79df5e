/*
File : wacc/ast/def.go
Def and its concrete variants, plus Program (spec.md §3).
*/
package ast

// Def is the marker interface implemented by every top-level definition.
type Def interface {
	Node
	isDef()
}

// FunDef is `T name(params) is body end`.
type FunDef struct {
	base
	Decl Declaration // Decl.Type is the return type; Decl.Name is the function name
	Params []Declaration
	Body   Stmt
}

func (*FunDef) isDef() {}

// TypeDef is `struct name is field; field; ... end`.
type TypeDef struct {
	base
	Name   string
	Fields []Declaration
}

func (*TypeDef) isDef() {}

// GlobalDef is a program-scope `T name = expr`.
type GlobalDef struct {
	base
	Decl Declaration
	Expr Expr
}

func (*GlobalDef) isDef() {}

// Program is the parse result: an ordered list of definitions. By
// convention the first FunDef is named "main" (spec.md §4.4).
type Program struct {
	Defs []Def
}

// MainFunc returns the program's main function definition, if any.
func (p *Program) MainFunc() *FunDef {
	for _, d := range p.Defs {
		if fd, ok := d.(*FunDef); ok && fd.Decl.Name == "main" {
			return fd
		}
	}
	return nil
}
