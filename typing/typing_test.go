package typing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wacclang/wacc/ast"
	"github.com/wacclang/wacc/location"
	"github.com/wacclang/wacc/symtab"
)

var zeroPos = location.Position{Line: 1, Column: 1}

func TestEqual_PrimitivesAndArb(t *testing.T) {
	assert.True(t, Equal(ast.TInt(), ast.TInt()))
	assert.False(t, Equal(ast.TInt(), ast.TBool()))
	assert.True(t, Equal(ast.TArb(), ast.TInt()))
	assert.True(t, Equal(ast.TArray(ast.TInt()), ast.TArb()))
}

func TestEqual_NestedArraysAndPairs(t *testing.T) {
	a := ast.TArray(ast.TPair(ast.TInt(), ast.TBool()))
	b := ast.TArray(ast.TPair(ast.TInt(), ast.TBool()))
	assert.True(t, Equal(a, b))

	c := ast.TArray(ast.TPair(ast.TInt(), ast.TChar()))
	assert.False(t, Equal(a, c))
}

func TestEqual_ArbInsideNestedTypeMatchesAnything(t *testing.T) {
	emptyArrayPair := ast.TPair(ast.TArray(ast.TArb()), ast.TInt())
	concretePair := ast.TPair(ast.TArray(ast.TBool()), ast.TInt())
	assert.True(t, Equal(emptyArrayPair, concretePair))
}

func TestBinaryResult_ArithmeticAndComparison(t *testing.T) {
	r, ok := BinaryResult(ast.OpAdd, ast.TInt(), ast.TInt())
	require.True(t, ok)
	assert.Equal(t, ast.KindInt, r.Kind)

	r, ok = BinaryResult(ast.OpLt, ast.TChar(), ast.TChar())
	require.True(t, ok)
	assert.Equal(t, ast.KindBool, r.Kind)

	_, ok = BinaryResult(ast.OpAdd, ast.TInt(), ast.TBool())
	assert.False(t, ok)
}

func TestBinaryResult_EqualityAcceptsAnyMatchingTypes(t *testing.T) {
	r, ok := BinaryResult(ast.OpEq, ast.TArray(ast.TInt()), ast.TArray(ast.TInt()))
	require.True(t, ok)
	assert.Equal(t, ast.KindBool, r.Kind)

	_, ok = BinaryResult(ast.OpEq, ast.TInt(), ast.TBool())
	assert.False(t, ok)
}

func TestUnaryResult_DerefAndAddr(t *testing.T) {
	r, ok := UnaryResult(ast.OpAddr, ast.TInt())
	require.True(t, ok)
	assert.Equal(t, ast.KindPtr, r.Kind)

	r, ok = UnaryResult(ast.OpDeref, ast.TPtr(ast.TBool()))
	require.True(t, ok)
	assert.Equal(t, ast.KindBool, r.Kind)

	_, ok = UnaryResult(ast.OpDeref, ast.TInt())
	assert.False(t, ok)
}

func TestTypeOf_Literals(t *testing.T) {
	st := symtab.New()
	typ, err := TypeOf(ast.NewLit(zeroPos, ast.NewIntLiteral(zeroPos, 42)), st, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, ast.KindInt, typ.Kind)

	typ, err = TypeOf(ast.NewLit(zeroPos, ast.NewNullLiteral(zeroPos)), st, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, ast.KindPair, typ.Kind)
}

func TestTypeOf_IdentResolvesThroughScopes(t *testing.T) {
	st := symtab.New()
	st.AddSymbol("x", ast.TBool())
	typ, err := TypeOf(ast.NewIdent(zeroPos, "x"), st, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, ast.KindBool, typ.Kind)

	_, err = TypeOf(ast.NewIdent(zeroPos, "y"), st, nil, nil)
	assert.Error(t, err)
}

func TestTypeOf_ArrayLiteralRequiresUniformElementType(t *testing.T) {
	st := symtab.New()
	lit := ast.NewArrayLiteral(zeroPos, []ast.Expr{
		ast.NewLit(zeroPos, ast.NewIntLiteral(zeroPos, 1)),
		ast.NewLit(zeroPos, ast.NewIntLiteral(zeroPos, 2)),
	})
	typ, err := TypeOf(ast.NewLit(zeroPos, lit), st, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, ast.KindArray, typ.Kind)
	assert.Equal(t, ast.KindInt, typ.Elem.Kind)

	badLit := ast.NewArrayLiteral(zeroPos, []ast.Expr{
		ast.NewLit(zeroPos, ast.NewIntLiteral(zeroPos, 1)),
		ast.NewLit(zeroPos, ast.NewBoolLiteral(zeroPos, true)),
	})
	_, err = TypeOf(ast.NewLit(zeroPos, badLit), st, nil, nil)
	assert.Error(t, err)
}

func TestTypeOf_FunCallChecksArity(t *testing.T) {
	st := symtab.New()
	funcs := FuncRegistry{
		"add": ast.TFun(ast.TInt(), []ast.Declaration{{Name: "a", Type: ast.TInt()}, {Name: "b", Type: ast.TInt()}}),
	}
	call := ast.NewFunCall(zeroPos, "add", []ast.Expr{
		ast.NewLit(zeroPos, ast.NewIntLiteral(zeroPos, 1)),
		ast.NewLit(zeroPos, ast.NewIntLiteral(zeroPos, 2)),
	})
	typ, err := TypeOf(call, st, nil, funcs)
	require.NoError(t, err)
	assert.Equal(t, ast.KindInt, typ.Kind)

	badCall := ast.NewFunCall(zeroPos, "add", []ast.Expr{ast.NewLit(zeroPos, ast.NewIntLiteral(zeroPos, 1))})
	_, err = TypeOf(badCall, st, nil, funcs)
	assert.Error(t, err)
}

func TestTypeOf_NewStructRequiresRegisteredName(t *testing.T) {
	st := symtab.New()
	structs := StructRegistry{"Point": {{Name: "x", Type: ast.TInt()}}}
	typ, err := TypeOf(ast.NewNewStruct(zeroPos, "Point"), st, structs, nil)
	require.NoError(t, err)
	assert.Equal(t, ast.KindPtr, typ.Kind)
	assert.Equal(t, "Point", typ.Elem.StructName)

	_, err = TypeOf(ast.NewNewStruct(zeroPos, "Missing"), st, structs, nil)
	assert.Error(t, err)
}
