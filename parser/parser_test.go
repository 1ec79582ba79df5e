package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wacclang/wacc/ast"
)

func TestParse_MinimalProgram(t *testing.T) {
	src := `begin
int main() is
  skip
end
end`
	prog, loc, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, prog.Defs, 1)

	main := prog.MainFunc()
	require.NotNil(t, main)
	assert.Equal(t, ast.KindInt, main.Decl.Type.Kind)

	body := main.Body.(*ast.Block)
	require.Len(t, body.Stmts, 1)
	is, ok := body.Stmts[0].(*ast.IdentifiedStatement)
	require.True(t, ok)
	_, ok = is.Inner.(*ast.Noop)
	assert.True(t, ok)

	pos, ok := loc.Lookup(is.ID)
	assert.True(t, ok)
	assert.Equal(t, is.Pos(), pos)
}

func TestParse_VarDefAndReturn(t *testing.T) {
	src := `begin
int f() is
  int x = 1 + 2 * 3;
  return x
end
end`
	prog, _, err := Parse(src)
	require.NoError(t, err)

	f := prog.Defs[0].(*ast.FunDef)
	body := f.Body.(*ast.Block)
	require.Len(t, body.Stmts, 2)

	vd := body.Stmts[0].(*ast.IdentifiedStatement).Inner.(*ast.VarDef)
	assert.Equal(t, "x", vd.Decl.Name)
	bin := vd.Expr.(*ast.BinApp)
	assert.Equal(t, ast.OpAdd, bin.Op)
	rhsMul := bin.Right.(*ast.BinApp)
	assert.Equal(t, ast.OpMul, rhsMul.Op)

	ret := body.Stmts[1].(*ast.IdentifiedStatement).Inner.(*ast.Ctrl)
	assert.Equal(t, ast.CtrlReturn, ret.Kind)
}

func TestParse_StructTypedVarDefBacktracks(t *testing.T) {
	src := `begin
struct Point is
  int x;
  int y;
end
int main() is
  Point p = news Point;
  return 0
end
end`
	prog, _, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, prog.Defs, 2)

	td := prog.Defs[0].(*ast.TypeDef)
	assert.Equal(t, "Point", td.Name)
	require.Len(t, td.Fields, 2)

	main := prog.Defs[1].(*ast.FunDef)
	body := main.Body.(*ast.Block)
	vd := body.Stmts[0].(*ast.IdentifiedStatement).Inner.(*ast.VarDef)
	assert.Equal(t, "Point", vd.Decl.Type.StructName)
}

func TestParse_IfElse(t *testing.T) {
	src := `begin
int main() is
  if true then
    skip
  else
    skip
  fi;
  return 0
end
end`
	prog, _, err := Parse(src)
	require.NoError(t, err)
	main := prog.Defs[0].(*ast.FunDef)
	body := main.Body.(*ast.Block)
	cond := body.Stmts[0].(*ast.IdentifiedStatement).Inner.(*ast.Cond)
	assert.NotNil(t, cond.Then)
	assert.NotNil(t, cond.Else)
}

func TestParse_WhileLoop(t *testing.T) {
	src := `begin
int main() is
  while true do
    break
  done;
  return 0
end
end`
	prog, _, err := Parse(src)
	require.NoError(t, err)
	main := prog.Defs[0].(*ast.FunDef)
	body := main.Body.(*ast.Block)
	loop := body.Stmts[0].(*ast.IdentifiedStatement).Inner.(*ast.Loop)
	loopBody := loop.Body.(*ast.Block)
	require.Len(t, loopBody.Stmts, 1)
}

func TestParse_ForLoopSharesStatementID(t *testing.T) {
	src := `begin
int main() is
  for (int i = 0; i < 10; skip) do
    skip
  done;
  return 0
end
end`
	prog, _, err := Parse(src)
	require.NoError(t, err)
	main := prog.Defs[0].(*ast.FunDef)
	outer := main.Body.(*ast.Block).Stmts[0].(*ast.Block)
	require.Len(t, outer.Stmts, 2)

	isInit := outer.Stmts[0].(*ast.IdentifiedStatement)
	isLoop := outer.Stmts[1].(*ast.IdentifiedStatement)
	assert.Equal(t, isInit.ID, isLoop.ID)

	loop := isLoop.Inner.(*ast.Loop)
	inner := loop.Body.(*ast.Block)
	require.Len(t, inner.Stmts, 2)
	isBody := inner.Stmts[0].(*ast.IdentifiedStatement)
	isStep := inner.Stmts[1].(*ast.IdentifiedStatement)
	assert.Equal(t, isInit.ID, isBody.ID)
	assert.Equal(t, isInit.ID, isStep.ID)
}

func TestParse_BuiltinStatements(t *testing.T) {
	src := `begin
int main() is
  int x = 0;
  read x;
  print x;
  println x;
  free x;
  exit x
end
end`
	_, _, err := Parse(src)
	require.NoError(t, err)
}

func TestParse_ReadNonAssignableTargetFails(t *testing.T) {
	src := `begin
int main() is
  read 1 + 1
end
end`
	_, _, err := Parse(src)
	require.Error(t, err)
}

func TestParse_InlineAssemblyCapturedVerbatim(t *testing.T) {
	src := "begin\nint main() is\n  begin inline\nmov r0, #1 # not a comment here\nadd r0, r0, r0\nend\n;\n  return 0\nend\nend"
	prog, _, err := Parse(src)
	require.NoError(t, err)
	main := prog.Defs[0].(*ast.FunDef)
	body := main.Body.(*ast.Block)
	asm := body.Stmts[0].(*ast.IdentifiedStatement).Inner.(*ast.InlineAssembly)
	require.Len(t, asm.Lines, 3)
	assert.Contains(t, asm.Lines[1], "mov r0, #1")
	assert.Contains(t, asm.Lines[2], "add r0, r0, r0")
}

func TestParse_GlobalDefinition(t *testing.T) {
	src := `begin
int counter = 0
int main() is
  return counter
end
end`
	prog, _, err := Parse(src)
	require.NoError(t, err)
	g := prog.Defs[0].(*ast.GlobalDef)
	assert.Equal(t, "counter", g.Decl.Name)
}

func TestParse_FunctionWithParams(t *testing.T) {
	src := `begin
int add(int a, int b) is
  return a + b
end
int main() is
  return call add(1, 2)
end
end`
	prog, _, err := Parse(src)
	require.NoError(t, err)
	add := prog.Defs[0].(*ast.FunDef)
	require.Len(t, add.Params, 2)
	assert.Equal(t, "a", add.Params[0].Name)
	assert.Equal(t, "b", add.Params[1].Name)
}

func TestParse_MissingEndIsSyntaxError(t *testing.T) {
	src := `begin
int main() is
  skip
end`
	_, _, err := Parse(src)
	require.Error(t, err)
}

func TestParse_ArrayAndPairTypes(t *testing.T) {
	src := `begin
pair(int, bool) makePair() is
  return newpair(1, true)
end
int[] makeArray() is
  return [1, 2, 3]
end
end`
	prog, _, err := Parse(src)
	require.NoError(t, err)
	mp := prog.Defs[0].(*ast.FunDef)
	assert.Equal(t, ast.KindPair, mp.Decl.Type.Kind)
	ma := prog.Defs[1].(*ast.FunDef)
	assert.Equal(t, ast.KindArray, ma.Decl.Type.Kind)
}
