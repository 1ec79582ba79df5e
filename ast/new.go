/*
File : wacc/ast/new.go
Constructors for every node variant. The `base` embedding that carries a
node's Position is unexported, so code outside this package (chiefly the
parser) builds nodes through these functions rather than struct literals.
*/
package ast

import "github.com/wacclang/wacc/location"

func NewLit(pos location.Position, v Literal) *Lit { return &Lit{base: base{pos}, Value: v} }

func NewIntLiteral(pos location.Position, v int64) Literal {
	return Literal{base: base{pos}, Kind: LitInt, Int: v}
}
func NewCharLiteral(pos location.Position, v byte) Literal {
	return Literal{base: base{pos}, Kind: LitChar, Char: v}
}
func NewBoolLiteral(pos location.Position, v bool) Literal {
	return Literal{base: base{pos}, Kind: LitBool, Bool: v}
}
func NewStrLiteral(pos location.Position, v string) Literal {
	return Literal{base: base{pos}, Kind: LitStr, Str: v}
}
func NewArrayLiteral(pos location.Position, elems []Expr) Literal {
	return Literal{base: base{pos}, Kind: LitArray, Elems: elems}
}
func NewNullLiteral(pos location.Position) Literal {
	return Literal{base: base{pos}, Kind: LitNull}
}

func NewIdent(pos location.Position, name string) *Ident { return &Ident{base{pos}, name} }

func NewArrElem(pos location.Position, name string, idxs []Expr) *ArrElem {
	return &ArrElem{base{pos}, name, idxs}
}

func NewPairElem(pos location.Position, side PairSide, name string) *PairElem {
	return &PairElem{base{pos}, side, name}
}

func NewUnApp(pos location.Position, op UnOp, e Expr) *UnApp { return &UnApp{base{pos}, op, e} }

func NewBinApp(pos location.Position, op BinOp, l, r Expr) *BinApp {
	return &BinApp{base{pos}, op, l, r}
}

func NewFunCall(pos location.Position, name string, args []Expr) *FunCall {
	return &FunCall{base{pos}, name, args}
}

func NewNewPair(pos location.Position, fst, snd Expr) *NewPair { return &NewPair{base{pos}, fst, snd} }

func NewNewStruct(pos location.Position, name string) *NewStruct { return &NewStruct{base{pos}, name} }

func NewNoop(pos location.Position) *Noop { return &Noop{base{pos}} }

func NewBlock(pos location.Position, stmts []Stmt) *Block { return &Block{base{pos}, stmts} }

func NewVarDef(pos location.Position, decl Declaration, e Expr) *VarDef {
	return &VarDef{base{pos}, decl, e}
}

func NewReturn(pos location.Position, e Expr) *Ctrl { return &Ctrl{base{pos}, CtrlReturn, e} }
func NewBreak(pos location.Position) *Ctrl          { return &Ctrl{base{pos}, CtrlBreak, nil} }
func NewContinue(pos location.Position) *Ctrl       { return &Ctrl{base{pos}, CtrlContinue, nil} }

func NewCond(pos location.Position, test Expr, then, els Stmt) *Cond {
	return &Cond{base{pos}, test, then, els}
}

func NewLoop(pos location.Position, test Expr, body Stmt) *Loop {
	return &Loop{base{pos}, test, body}
}

func NewBuiltin(pos location.Position, op BuiltinOp, e Expr) *Builtin {
	return &Builtin{base{pos}, op, e}
}

func NewExpStmt(pos location.Position, e Expr) *ExpStmt { return &ExpStmt{base{pos}, e} }

func NewExternDecl(pos location.Position, name string) *ExternDecl {
	return &ExternDecl{base{pos}, name}
}

func NewInlineAssembly(pos location.Position, lines []string) *InlineAssembly {
	return &InlineAssembly{base{pos}, lines}
}

func NewIdentifiedStatement(pos location.Position, id location.StatementID, inner Stmt) *IdentifiedStatement {
	return &IdentifiedStatement{base{pos}, id, inner}
}

func NewFunDef(pos location.Position, decl Declaration, params []Declaration, body Stmt) *FunDef {
	return &FunDef{base{pos}, decl, params, body}
}

func NewTypeDef(pos location.Position, name string, fields []Declaration) *TypeDef {
	return &TypeDef{base{pos}, name, fields}
}

func NewGlobalDef(pos location.Position, decl Declaration, e Expr) *GlobalDef {
	return &GlobalDef{base{pos}, decl, e}
}
