package checker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wacclang/wacc/checker"
	"github.com/wacclang/wacc/parser"
)

func check(t *testing.T, src string) error {
	t.Helper()
	prog, _, err := parser.Parse(src)
	require.NoError(t, err, "source must parse cleanly")
	return checker.Check(prog)
}

func TestCheck_ValidProgramPasses(t *testing.T) {
	err := check(t, `begin
int add(int a, int b) is
  return a + b
end
int main() is
  int x = call add(1, 2);
  println x;
  exit 0
end
end`)
	assert.NoError(t, err)
}

func TestCheck_MissingReturnOnSomePathFails(t *testing.T) {
	err := check(t, `begin
int f(bool b) is
  if b then
    return 1
  else
    skip
  fi
end
int main() is
  exit 0
end
end`)
	require.Error(t, err)
	ce := err.(*checker.CheckerError)
	assert.Equal(t, checker.Semantic, ce.Kind)
}

func TestCheck_ReturnOnAllPathsOfConditionalPasses(t *testing.T) {
	err := check(t, `begin
int f(bool b) is
  if b then
    return 1
  else
    return 2
  fi
end
int main() is
  exit 0
end
end`)
	assert.NoError(t, err)
}

func TestCheck_UnreachableCodeAfterReturnFails(t *testing.T) {
	err := check(t, `begin
int f() is
  return 1;
  return 2
end
int main() is
  exit 0
end
end`)
	require.Error(t, err)
	ce := err.(*checker.CheckerError)
	assert.Equal(t, checker.Semantic, ce.Kind)
}

func TestCheck_MainWithReturnFails(t *testing.T) {
	err := check(t, `begin
int main() is
  return 0
end
end`)
	require.Error(t, err)
	ce := err.(*checker.CheckerError)
	assert.Equal(t, checker.Semantic, ce.Kind)
}

func TestCheck_TypeMismatchInVarDefFails(t *testing.T) {
	err := check(t, `begin
int main() is
  bool x = 1;
  exit 0
end
end`)
	require.Error(t, err)
	ce := err.(*checker.CheckerError)
	assert.Equal(t, checker.Type, ce.Kind)
}

func TestCheck_UndeclaredIdentifierFails(t *testing.T) {
	err := check(t, `begin
int main() is
  int x = y;
  exit 0
end
end`)
	require.Error(t, err)
	ce := err.(*checker.CheckerError)
	assert.Equal(t, checker.Type, ce.Kind)
}

func TestCheck_ErrorCarriesEnclosingStatementPosition(t *testing.T) {
	err := check(t, `begin
int main() is
  int x = y;
  exit 0
end
end`)
	require.Error(t, err)
	ce := err.(*checker.CheckerError)
	require.True(t, ce.HasPos)
	assert.Equal(t, 3, ce.Pos.Line)
}

func TestCheck_ShadowingInNestedBlockIsAllowed(t *testing.T) {
	err := check(t, `begin
int main() is
  int x = 1;
  begin
    bool x = true;
    println x
  end;
  exit 0
end
end`)
	assert.NoError(t, err)
}

func TestCheck_RedeclarationInSameScopeFails(t *testing.T) {
	err := check(t, `begin
int main() is
  int x = 1;
  int x = 2;
  exit 0
end
end`)
	require.Error(t, err)
	ce := err.(*checker.CheckerError)
	assert.Equal(t, checker.Semantic, ce.Kind)
}

func TestCheck_BreakOutsideLoopIsAllowed(t *testing.T) {
	err := check(t, `begin
int main() is
  break
end
end`)
	assert.NoError(t, err)
}

func TestCheck_WhileLoopNeverCountsAsGuaranteedReturn(t *testing.T) {
	err := check(t, `begin
int f(bool b) is
  while b do
    return 1
  done
end
int main() is
  exit 0
end
end`)
	require.Error(t, err, "a loop body might execute zero times, so it can never itself satisfy return-coverage")
}

func TestCheck_ExitArgumentMustBeInt(t *testing.T) {
	err := check(t, `begin
int main() is
  exit true
end
end`)
	require.Error(t, err)
	ce := err.(*checker.CheckerError)
	assert.Equal(t, checker.Type, ce.Kind)
}
