/*
File : wacc/lexer/lexer_test.go
Table-driven tests in the teacher's lexer_test.go style (testify/assert
over a slice of {input, expected tokens} cases).
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextToken_Operators(t *testing.T) {
	input := `+ - * / % < <= > >= == != ! && || & | ^ << >> =`
	expected := []TokenType{
		PLUS_OP, MINUS_OP, MUL_OP, DIV_OP, MOD_OP,
		LT_OP, LE_OP, GT_OP, GE_OP, EQ_OP, NE_OP, NOT_OP,
		AND_OP, OR_OP, BIT_AND_OP, BIT_OR_OP, BIT_XOR_OP,
		SHL_OP, SHR_OP, ASSIGN_OP,
	}

	lex := NewLexer(input)
	for i, want := range expected {
		tok := lex.NextToken()
		assert.Equalf(t, want, tok.Type, "token %d", i)
	}
	assert.Equal(t, EOF_TYPE, lex.NextToken().Type)
}

func TestNextToken_KeywordsAndIdentifiers(t *testing.T) {
	input := `int x is begin skip end intake`
	expected := []Token{
		{Type: INT_TYPE_KEY, Literal: "int"},
		{Type: IDENTIFIER, Literal: "x"},
		{Type: IS_KEY, Literal: "is"},
		{Type: BEGIN_KEY, Literal: "begin"},
		{Type: SKIP_KEY, Literal: "skip"},
		{Type: END_KEY, Literal: "end"},
		{Type: IDENTIFIER, Literal: "intake"}, // keyword-prefix, longer identifier
	}

	lex := NewLexer(input)
	for i, want := range expected {
		tok := lex.NextToken()
		assert.Equalf(t, want.Type, tok.Type, "token %d type", i)
		assert.Equalf(t, want.Literal, tok.Literal, "token %d literal", i)
	}
}

func TestNextToken_IntegerLiteral(t *testing.T) {
	lex := NewLexer("42 9223372036854775808")
	tok := lex.NextToken()
	assert.Equal(t, INT_LIT, tok.Type)
	assert.Equal(t, "42", tok.Literal)

	overflow := lex.NextToken()
	assert.Equal(t, INVALID_TYPE, overflow.Type)
}

func TestNextToken_CharLiteralEscapes(t *testing.T) {
	cases := []struct {
		input string
		want  byte
	}{
		{`'a'`, 'a'},
		{`'\n'`, '\n'},
		{`'\0'`, 0},
		{`'\\'`, '\\'},
		{`'\''`, '\''},
	}
	for _, c := range cases {
		lex := NewLexer(c.input)
		tok := lex.NextToken()
		assert.Equal(t, CHAR_LIT, tok.Type, c.input)
		assert.Equal(t, string(c.want), tok.Literal, c.input)
	}
}

func TestNextToken_CharLiteralBadEscapeIsInvalid(t *testing.T) {
	lex := NewLexer(`'\q'`)
	tok := lex.NextToken()
	assert.Equal(t, INVALID_TYPE, tok.Type)
}

func TestNextToken_StringLiteral(t *testing.T) {
	lex := NewLexer(`"hello\nworld"`)
	tok := lex.NextToken()
	assert.Equal(t, STRING_LIT, tok.Type)
	assert.Equal(t, "hello\nworld", tok.Literal)
}

func TestNextToken_StringLiteralUnterminatedIsInvalid(t *testing.T) {
	lex := NewLexer("\"abc")
	tok := lex.NextToken()
	assert.Equal(t, INVALID_TYPE, tok.Type)
}

func TestNextToken_CommentsAndWhitespaceSkipped(t *testing.T) {
	input := "# this is a comment\nint x # trailing\n= 1"
	lex := NewLexer(input)
	assert.Equal(t, INT_TYPE_KEY, lex.NextToken().Type)
	assert.Equal(t, IDENTIFIER, lex.NextToken().Type)
	assert.Equal(t, ASSIGN_OP, lex.NextToken().Type)
	assert.Equal(t, INT_LIT, lex.NextToken().Type)
}

func TestNextToken_LineAndColumnTracking(t *testing.T) {
	input := "int x\nbool y"
	lex := NewLexer(input)
	lex.NextToken() // int
	tokX := lex.NextToken()
	assert.Equal(t, 1, tokX.Line)

	tokBool := lex.NextToken()
	assert.Equal(t, 2, tokBool.Line)
	assert.Equal(t, 1, tokBool.Column)
}

func TestIsReserved(t *testing.T) {
	assert.True(t, IsReserved("int"))
	assert.True(t, IsReserved("while"))
	assert.False(t, IsReserved("counter"))
}

func TestConsumeTokens(t *testing.T) {
	lex := NewLexer("int x = 1 ;")
	toks := lex.ConsumeTokens()
	assert.Len(t, toks, 5)
	assert.Equal(t, SEMI_DELIM, toks[4].Type)
}
