/*
File : wacc/ast/expr.go
Expr, Literal and their concrete variants (spec.md §3).
*/
package ast

import "github.com/wacclang/wacc/location"

// Node is the base contract every AST node satisfies: a source position
// captured by the parser at the moment the node's first token was seen.
type Node interface {
	Pos() location.Position
}

// Expr is the marker interface implemented by every expression variant.
type Expr interface {
	Node
	isExpr()
}

type base struct {
	P location.Position
}

func (b base) Pos() location.Position { return b.P }

// LiteralKind tags the variant of a Literal value.
type LiteralKind int

const (
	LitChar LiteralKind = iota
	LitInt
	LitBool
	LitStr
	LitArray
	LitNull
)

// Literal is the tagged variant: CHAR(c) | INT(i64) | BOOL(b) | STR(s) |
// ARRAY([Expr]) | NULL.
type Literal struct {
	base
	Kind    LiteralKind
	Int     int64
	Char    byte
	Bool    bool
	Str     string
	Elems   []Expr // ARRAY literal elements
}

func (*Literal) isExpr() {}

// Lit wraps a Literal as an expression (Lit(Literal) in §3).
type Lit struct {
	base
	Value Literal
}

func (*Lit) isExpr() {}

// Ident is a bare identifier reference.
type Ident struct {
	base
	Name string
}

func (*Ident) isExpr() {}

// ArrElem is array-element indexing: name[idx0][idx1]...
type ArrElem struct {
	base
	Name    string
	Indices []Expr
}

func (*ArrElem) isExpr() {}

// PairSide selects which half of a pair a PairElem projects.
type PairSide int

const (
	Fst PairSide = iota
	Snd
)

// PairElem is fst name / snd name.
type PairElem struct {
	base
	Side PairSide
	Name string
}

func (*PairElem) isExpr() {}

// UnOp enumerates unary operators.
type UnOp string

const (
	OpNot   UnOp = "!"
	OpNeg   UnOp = "-"
	OpLen   UnOp = "len"
	OpOrd   UnOp = "ord"
	OpChr   UnOp = "chr"
	OpDeref UnOp = "*"
	OpAddr  UnOp = "&"
)

// UnApp is a unary application.
type UnApp struct {
	base
	Op   UnOp
	Expr Expr
}

func (*UnApp) isExpr() {}

// BinOp enumerates binary operators, tightest to loosest (spec.md §4.3).
type BinOp string

const (
	OpMul    BinOp = "*"
	OpDiv    BinOp = "/"
	OpMod    BinOp = "%"
	OpAdd    BinOp = "+"
	OpSub    BinOp = "-"
	OpShl    BinOp = "<<"
	OpShr    BinOp = ">>"
	OpLt     BinOp = "<"
	OpLe     BinOp = "<="
	OpGt     BinOp = ">"
	OpGe     BinOp = ">="
	OpEq     BinOp = "=="
	OpNe     BinOp = "!="
	OpBitAnd BinOp = "&"
	OpBitXor BinOp = "^"
	OpBitOr  BinOp = "|"
	OpAnd    BinOp = "&&"
	OpOr     BinOp = "||"
)

// BinApp is a binary application, always left-associative.
type BinApp struct {
	base
	Op          BinOp
	Left, Right Expr
}

func (*BinApp) isExpr() {}

// FunCall is a `call name(args)` expression.
type FunCall struct {
	base
	Name string
	Args []Expr
}

func (*FunCall) isExpr() {}

// NewPair is `newpair(fst, snd)`.
type NewPair struct {
	base
	Fst, Snd Expr
}

func (*NewPair) isExpr() {}

// NewStruct is `news Name` (struct allocation).
type NewStruct struct {
	base
	Name string
}

func (*NewStruct) isExpr() {}

// Assignable reports whether e is one of the expression forms the grammar
// accepts as an assignment target / `read` argument: Ident, ArrElem or
// PairElem (spec.md §4.8, Builtin(Read, e)).
func Assignable(e Expr) bool {
	switch e.(type) {
	case *Ident, *ArrElem, *PairElem:
		return true
	default:
		return false
	}
}
