/*
File : wacc/parser/parser_statements.go
Statement grammar (spec.md component C4): an ordered choice of statement
forms, each producing one ast.Stmt immediately wrapped as an
IdentifiedStatement via p.identify. Two forms need backtracking because
they share a leading token with another alternative: a bare identifier
might start a struct-typed VarDef or an ordinary expression statement,
and `begin` might start an inline-assembly block or an ordinary nested
block.
*/
package parser

import (
	"github.com/wacclang/wacc/ast"
	"github.com/wacclang/wacc/checker"
	"github.com/wacclang/wacc/lexer"
	"github.com/wacclang/wacc/location"
)

// parseStmtSeq parses a semicolon-separated run of statements, stopping
// before any of stop (without consuming it), and wraps the whole run in a
// Block. The Block container itself is not separately identified; only
// the statements within it are (each parseStmt call wraps its own result).
func (p *Parser) parseStmtSeq(stop ...lexer.TokenType) (*ast.Block, error) {
	pos := p.curPos()
	var stmts []ast.Stmt
	for {
		if p.atAnyOf(stop...) {
			break
		}
		if p.at(lexer.EOF_TYPE) {
			return nil, checker.New(checker.Syntax, p.curPos(), "unexpected end of input")
		}
		s, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
		if p.at(lexer.SEMI_DELIM) {
			p.advance()
			continue
		}
		break
	}
	return ast.NewBlock(pos, stmts), nil
}

func (p *Parser) atAnyOf(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.at(t) {
			return true
		}
	}
	return false
}

// parseStmt parses a single statement and returns it wrapped with a fresh
// StatementID (spec.md §4.2).
func (p *Parser) parseStmt() (ast.Stmt, error) {
	pos := p.curPos()
	switch p.cur.Type {
	case lexer.SKIP_KEY:
		p.advance()
		return p.identify(ast.NewNoop(pos), pos), nil
	case lexer.BEGIN_KEY:
		return p.parseBeginStmt()
	case lexer.RETURN_KEY:
		p.advance()
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return p.identify(ast.NewReturn(pos, e), pos), nil
	case lexer.BREAK_KEY:
		p.advance()
		return p.identify(ast.NewBreak(pos), pos), nil
	case lexer.CONTINUE_KEY:
		p.advance()
		return p.identify(ast.NewContinue(pos), pos), nil
	case lexer.IF_KEY:
		return p.parseCond()
	case lexer.WHILE_KEY:
		return p.parseWhile()
	case lexer.FOR_KEY:
		return p.parseForStmt()
	case lexer.READ_KEY:
		return p.parseBuiltin(ast.BuiltinRead)
	case lexer.FREE_KEY:
		return p.parseBuiltin(ast.BuiltinFree)
	case lexer.EXIT_KEY:
		return p.parseBuiltin(ast.BuiltinExit)
	case lexer.PRINT_KEY:
		return p.parseBuiltin(ast.BuiltinPrint)
	case lexer.PRINTLN_KEY:
		return p.parseBuiltin(ast.BuiltinPrintLn)
	case lexer.EXTERN_KEY:
		p.advance()
		name, err := p.expect(lexer.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		return p.identify(ast.NewExternDecl(pos, name.Literal), pos), nil
	case lexer.INT_TYPE_KEY, lexer.BOOL_TYPE_KEY, lexer.CHAR_TYPE_KEY, lexer.STRING_TYPE_KEY, lexer.PAIR_KEY:
		return p.parseVarDef(pos)
	case lexer.IDENTIFIER:
		// Could be `StructName x = expr` (VarDef) or a bare expression
		// statement that happens to start with an identifier. Try VarDef
		// first and fall back on failure; try() undoes any partial token
		// consumption. A failed VarDef never reaches identify, so no
		// StatementID is allocated for it.
		if vd, err := try(p, func() (ast.Stmt, error) { return p.parseVarDef(pos) }); err == nil {
			return vd, nil
		}
		return p.parseExpStmt(pos)
	default:
		return p.parseExpStmt(pos)
	}
}

func (p *Parser) parseVarDef(pos location.Position) (ast.Stmt, error) {
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(lexer.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if lexer.IsReserved(nameTok.Literal) {
		return nil, checker.New(checker.Syntax, pos, "'"+nameTok.Literal+"' is a reserved word")
	}
	if _, err := p.expect(lexer.ASSIGN_OP); err != nil {
		return nil, err
	}
	val, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return p.identify(ast.NewVarDef(pos, ast.Declaration{Name: nameTok.Literal, Type: typ}, val), pos), nil
}

func (p *Parser) parseExpStmt(pos location.Position) (ast.Stmt, error) {
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return p.identify(ast.NewExpStmt(pos, e), pos), nil
}

func (p *Parser) parseBuiltin(op ast.BuiltinOp) (ast.Stmt, error) {
	pos := p.curPos()
	p.advance()
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if op == ast.BuiltinRead && !ast.Assignable(e) {
		return nil, checker.New(checker.Syntax, pos, "read target must be an identifier, array element, or pair element")
	}
	return p.identify(ast.NewBuiltin(pos, op, e), pos), nil
}

func (p *Parser) parseCond() (ast.Stmt, error) {
	pos := p.curPos()
	p.advance() // if
	test, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.THEN_KEY); err != nil {
		return nil, err
	}
	thenB, err := p.parseStmtSeq(lexer.ELSE_KEY, lexer.FI_KEY)
	if err != nil {
		return nil, err
	}
	var elseB ast.Stmt = ast.NewNoop(pos)
	if p.at(lexer.ELSE_KEY) {
		p.advance()
		elseB, err = p.parseStmtSeq(lexer.FI_KEY)
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.FI_KEY); err != nil {
		return nil, err
	}
	return p.identify(ast.NewCond(pos, test, thenB, elseB), pos), nil
}

func (p *Parser) parseWhile() (ast.Stmt, error) {
	pos := p.curPos()
	p.advance() // while
	test, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.DO_KEY); err != nil {
		return nil, err
	}
	body, err := p.parseStmtSeq(lexer.DONE_KEY)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.DONE_KEY); err != nil {
		return nil, err
	}
	return p.identify(ast.NewLoop(pos, test, body), pos), nil
}

// parseForStmt desugars `for (init; cond; step) do body done` into
//
//	Block[ IS(i, init), IS(i, Loop(cond, Block[IS(i, body), IS(i, step)])) ]
//
// sharing a single StatementID `i` across init, body, loop and step,
// rather than introducing a dedicated For statement variant.
func (p *Parser) parseForStmt() (ast.Stmt, error) {
	pos := p.curPos()
	p.advance() // for
	if _, err := p.expect(lexer.LEFT_PAREN); err != nil {
		return nil, err
	}
	init, err := p.parseStmt()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMI_DELIM); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMI_DELIM); err != nil {
		return nil, err
	}
	step, err := p.parseStmt()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RIGHT_PAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.DO_KEY); err != nil {
		return nil, err
	}
	body, err := p.parseStmtSeq(lexer.DONE_KEY)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.DONE_KEY); err != nil {
		return nil, err
	}

	id := p.loc.NextID()
	p.loc.Save(id, pos)
	isInit := ast.NewIdentifiedStatement(pos, id, init)
	isBody := ast.NewIdentifiedStatement(pos, id, body)
	isStep := ast.NewIdentifiedStatement(pos, id, step)
	loopBody := ast.NewBlock(pos, []ast.Stmt{isBody, isStep})
	loop := ast.NewLoop(pos, cond, loopBody)
	isLoop := ast.NewIdentifiedStatement(pos, id, loop)
	return ast.NewBlock(pos, []ast.Stmt{isInit, isLoop}), nil
}

// parseBeginStmt resolves the `begin` ordered choice: try inline assembly
// first, and fall back to an ordinary nested block on failure.
func (p *Parser) parseBeginStmt() (ast.Stmt, error) {
	if ia, err := try(p, p.tryInlineAssembly); err == nil {
		return ia, nil
	}
	pos := p.curPos()
	if _, err := p.expect(lexer.BEGIN_KEY); err != nil {
		return nil, err
	}
	body, err := p.parseStmtSeq(lexer.END_KEY)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.END_KEY); err != nil {
		return nil, err
	}
	return p.identify(body, pos), nil
}

// tryInlineAssembly parses `begin inline <raw lines> end`. The lines are
// captured directly off the lexer's raw source, bypassing tokenization,
// so assembly text containing WACC's own comment/operator characters is
// preserved verbatim (spec.md §4.4).
func (p *Parser) tryInlineAssembly() (ast.Stmt, error) {
	pos := p.curPos()
	if _, err := p.expect(lexer.BEGIN_KEY); err != nil {
		return nil, err
	}
	if p.cur.Type != lexer.INLINE_KEY {
		return nil, checker.New(checker.Syntax, pos, "not an inline assembly block")
	}
	lines := p.lex.ReadRawUntilKeyword("end")
	p.advance() // refresh lookahead from the rewound lexer position
	if _, err := p.expect(lexer.END_KEY); err != nil {
		return nil, err
	}
	return p.identify(ast.NewInlineAssembly(pos, lines), pos), nil
}
