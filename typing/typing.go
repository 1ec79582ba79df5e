/*
File    : wacc/typing/typing.go
Package typing implements WACC's type-equality and typeof rules (spec.md
component C7). Equal is structural equality over ast.Type with TArb acting
as a wildcard in both directions -- the same flags-style structural
comparison guix's Type.Equal uses for its IsSlice/IsPointer/IsFunc
qualifiers, generalized to the Kind-tagged ast.Type here.
*/
package typing

import "github.com/wacclang/wacc/ast"

// Equal reports whether a and b are the same type under spec.md §4.7's
// structural-equality rule, where TArb (the empty-array / null-pair
// wildcard) compares equal to anything.
func Equal(a, b ast.Type) bool {
	if a.Kind == ast.KindArb || b.Kind == ast.KindArb {
		return true
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case ast.KindArray, ast.KindPtr:
		return Equal(*a.Elem, *b.Elem)
	case ast.KindPair:
		return Equal(*a.Fst, *b.Fst) && Equal(*a.Snd, *b.Snd)
	case ast.KindStruct:
		return a.StructName == b.StructName
	case ast.KindFun:
		if !Equal(*a.Ret, *b.Ret) || len(a.Params) != len(b.Params) {
			return false
		}
		for i := range a.Params {
			if !Equal(a.Params[i].Type, b.Params[i].Type) {
				return false
			}
		}
		return true
	default:
		return true // primitive kinds: Kind equality already checked above
	}
}

// unaryResult and binaryResult record a built-in operator's accepted
// operand type(s) and the result type it produces, mirroring the flat
// data-table style the teacher's std package uses for its builtin
// function registrations.
type unaryResult struct {
	operand ast.Type
	result  ast.Type
}

var unarySignatures = map[ast.UnOp][]unaryResult{
	ast.OpNot:   {{ast.TBool(), ast.TBool()}},
	ast.OpNeg:   {{ast.TInt(), ast.TInt()}},
	ast.OpOrd:   {{ast.TChar(), ast.TInt()}},
	ast.OpChr:   {{ast.TInt(), ast.TChar()}},
	ast.OpLen:   {{ast.TArray(ast.TArb()), ast.TInt()}},
	ast.OpDeref: nil, // handled specially: result is the pointer's element type
	ast.OpAddr:  nil, // handled specially: result is a pointer to the operand's type
}

type binaryResult struct {
	left, right ast.Type
	result      ast.Type
}

var binarySignatures = map[ast.BinOp][]binaryResult{
	ast.OpMul: {{ast.TInt(), ast.TInt(), ast.TInt()}},
	ast.OpDiv: {{ast.TInt(), ast.TInt(), ast.TInt()}},
	ast.OpMod: {{ast.TInt(), ast.TInt(), ast.TInt()}},
	ast.OpAdd: {{ast.TInt(), ast.TInt(), ast.TInt()}},
	ast.OpSub: {{ast.TInt(), ast.TInt(), ast.TInt()}},
	ast.OpShl: {{ast.TInt(), ast.TInt(), ast.TInt()}},
	ast.OpShr: {{ast.TInt(), ast.TInt(), ast.TInt()}},
	ast.OpBitAnd: {{ast.TInt(), ast.TInt(), ast.TInt()}},
	ast.OpBitOr:  {{ast.TInt(), ast.TInt(), ast.TInt()}},
	ast.OpBitXor: {{ast.TInt(), ast.TInt(), ast.TInt()}},
	ast.OpLt: {{ast.TInt(), ast.TInt(), ast.TBool()}, {ast.TChar(), ast.TChar(), ast.TBool()}},
	ast.OpLe: {{ast.TInt(), ast.TInt(), ast.TBool()}, {ast.TChar(), ast.TChar(), ast.TBool()}},
	ast.OpGt: {{ast.TInt(), ast.TInt(), ast.TBool()}, {ast.TChar(), ast.TChar(), ast.TBool()}},
	ast.OpGe: {{ast.TInt(), ast.TInt(), ast.TBool()}, {ast.TChar(), ast.TChar(), ast.TBool()}},
	ast.OpAnd: {{ast.TBool(), ast.TBool(), ast.TBool()}},
	ast.OpOr:  {{ast.TBool(), ast.TBool(), ast.TBool()}},
	// OpEq/OpNe are handled specially: any two equal types compare.
}

// UnaryResult looks up the result type of applying op to an operand of
// type operand, reporting false if no signature matches.
func UnaryResult(op ast.UnOp, operand ast.Type) (ast.Type, bool) {
	switch op {
	case ast.OpDeref:
		if operand.Kind != ast.KindPtr {
			return ast.Type{}, false
		}
		return *operand.Elem, true
	case ast.OpAddr:
		return ast.TPtr(operand), true
	}
	for _, sig := range unarySignatures[op] {
		if Equal(sig.operand, operand) {
			return sig.result, true
		}
	}
	return ast.Type{}, false
}

// BinaryResult looks up the result type of applying op to operands of
// type left and right, reporting false if no signature matches. Equality
// operators accept any pair of structurally equal types.
func BinaryResult(op ast.BinOp, left, right ast.Type) (ast.Type, bool) {
	if op == ast.OpEq || op == ast.OpNe {
		if Equal(left, right) {
			return ast.TBool(), true
		}
		return ast.Type{}, false
	}
	for _, sig := range binarySignatures[op] {
		if Equal(sig.left, left) && Equal(sig.right, right) {
			return sig.result, true
		}
	}
	return ast.Type{}, false
}
