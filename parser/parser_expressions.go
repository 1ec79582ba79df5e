/*
File : wacc/parser/parser_expressions.go
Expression grammar (spec.md component C3): prefix unary operators, then
binary operators by precedence climbing. The binOps/unaryOps maps below
are the same dispatch-table idiom as the teacher's UnaryFuncs/BinaryFuncs
in parser/parser.go, keyed by token type instead of by Pratt "led"/"nud"
binding powers, since WACC's operators are already a flat precedence
ladder with no user-definable operators to register.
*/
package parser

import (
	"strconv"

	"github.com/wacclang/wacc/ast"
	"github.com/wacclang/wacc/checker"
	"github.com/wacclang/wacc/lexer"
	"github.com/wacclang/wacc/location"
)

// binOpInfo pairs a binary operator with its precedence: higher binds
// tighter. The ladder (spec.md §4.3, tightest to loosest) is
// mul/div/mod > add/sub > shifts > relational > equality > bitand >
// bitxor > bitor > and > or.
type binOpInfo struct {
	op   ast.BinOp
	prec int
}

var binOps = map[lexer.TokenType]binOpInfo{
	lexer.MUL_OP:     {ast.OpMul, 9},
	lexer.DIV_OP:      {ast.OpDiv, 9},
	lexer.MOD_OP:      {ast.OpMod, 9},
	lexer.PLUS_OP:     {ast.OpAdd, 8},
	lexer.MINUS_OP:    {ast.OpSub, 8},
	lexer.SHL_OP:      {ast.OpShl, 7},
	lexer.SHR_OP:      {ast.OpShr, 7},
	lexer.LT_OP:       {ast.OpLt, 6},
	lexer.LE_OP:       {ast.OpLe, 6},
	lexer.GT_OP:       {ast.OpGt, 6},
	lexer.GE_OP:       {ast.OpGe, 6},
	lexer.EQ_OP:       {ast.OpEq, 5},
	lexer.NE_OP:       {ast.OpNe, 5},
	lexer.BIT_AND_OP:  {ast.OpBitAnd, 4},
	lexer.BIT_XOR_OP:  {ast.OpBitXor, 3},
	lexer.BIT_OR_OP:   {ast.OpBitOr, 2},
	lexer.AND_OP:      {ast.OpAnd, 1},
	lexer.OR_OP:       {ast.OpOr, 0},
}

var unaryOps = map[lexer.TokenType]ast.UnOp{
	lexer.NOT_OP:     ast.OpNot,
	lexer.MINUS_OP:   ast.OpNeg,
	lexer.LEN_KEY:    ast.OpLen,
	lexer.ORD_KEY:    ast.OpOrd,
	lexer.CHR_KEY:    ast.OpChr,
	lexer.MUL_OP:     ast.OpDeref,
	lexer.BIT_AND_OP: ast.OpAddr,
}

func (p *Parser) parseExpr() (ast.Expr, error) { return p.parseBinary(0) }

// parseBinary implements precedence climbing: it parses a unary operand,
// then repeatedly consumes operators whose precedence is >= minPrec,
// recursing with prec+1 on the right-hand side so same-precedence chains
// associate left (spec.md §4.3: "always left-associative").
func (p *Parser) parseBinary(minPrec int) (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		info, ok := binOps[p.cur.Type]
		if !ok || info.prec < minPrec {
			return left, nil
		}
		pos := p.curPos()
		p.advance()
		right, err := p.parseBinary(info.prec + 1)
		if err != nil {
			return nil, err
		}
		left = ast.NewBinApp(pos, info.op, left, right)
	}
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	if op, ok := unaryOps[p.cur.Type]; ok {
		pos := p.curPos()
		p.advance()
		// A '-' directly followed by an integer literal folds its sign into
		// the literal's value instead of producing a negation node.
		if op == ast.OpNeg && p.at(lexer.INT_LIT) {
			v, err := strconv.ParseInt("-"+p.cur.Literal, 10, 64)
			if err != nil {
				return nil, checker.New(checker.Syntax, pos, "integer literal out of range: -"+p.cur.Literal)
			}
			p.advance()
			return ast.NewLit(pos, ast.NewIntLiteral(pos, v)), nil
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnApp(pos, op, operand), nil
	}
	return p.parseAtom()
}

func (p *Parser) parseAtom() (ast.Expr, error) {
	pos := p.curPos()
	switch p.cur.Type {
	case lexer.INT_LIT:
		v, err := strconv.ParseInt(p.cur.Literal, 10, 64)
		if err != nil {
			return nil, checker.New(checker.Syntax, pos, "integer literal out of range: "+p.cur.Literal)
		}
		p.advance()
		return ast.NewLit(pos, ast.NewIntLiteral(pos, v)), nil
	case lexer.CHAR_LIT:
		lit := p.cur.Literal
		p.advance()
		var b byte
		if len(lit) > 0 {
			b = lit[0]
		}
		return ast.NewLit(pos, ast.NewCharLiteral(pos, b)), nil
	case lexer.STRING_LIT:
		s := p.cur.Literal
		p.advance()
		return ast.NewLit(pos, ast.NewStrLiteral(pos, s)), nil
	case lexer.TRUE_KEY:
		p.advance()
		return ast.NewLit(pos, ast.NewBoolLiteral(pos, true)), nil
	case lexer.FALSE_KEY:
		p.advance()
		return ast.NewLit(pos, ast.NewBoolLiteral(pos, false)), nil
	case lexer.NULL_KEY:
		p.advance()
		return ast.NewLit(pos, ast.NewNullLiteral(pos)), nil
	case lexer.LEFT_BRACKET:
		return p.parseArrayLiteral(pos)
	case lexer.LEFT_PAREN:
		p.advance()
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RIGHT_PAREN); err != nil {
			return nil, err
		}
		return e, nil
	case lexer.FST_KEY:
		p.advance()
		name, err := p.expect(lexer.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		return ast.NewPairElem(pos, ast.Fst, name.Literal), nil
	case lexer.SND_KEY:
		p.advance()
		name, err := p.expect(lexer.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		return ast.NewPairElem(pos, ast.Snd, name.Literal), nil
	case lexer.NEWPAIR_KEY:
		p.advance()
		if _, err := p.expect(lexer.LEFT_PAREN); err != nil {
			return nil, err
		}
		fst, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.COMMA_DELIM); err != nil {
			return nil, err
		}
		snd, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RIGHT_PAREN); err != nil {
			return nil, err
		}
		return ast.NewNewPair(pos, fst, snd), nil
	case lexer.NEWS_KEY:
		p.advance()
		name, err := p.expect(lexer.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		return ast.NewNewStruct(pos, name.Literal), nil
	case lexer.CALL_KEY:
		p.advance()
		name, err := p.expect(lexer.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.LEFT_PAREN); err != nil {
			return nil, err
		}
		var args []ast.Expr
		if !p.at(lexer.RIGHT_PAREN) {
			for {
				a, err := p.parseExpr()
				if err != nil {
					return nil, err
				}
				args = append(args, a)
				if p.at(lexer.COMMA_DELIM) {
					p.advance()
					continue
				}
				break
			}
		}
		if _, err := p.expect(lexer.RIGHT_PAREN); err != nil {
			return nil, err
		}
		return ast.NewFunCall(pos, name.Literal, args), nil
	case lexer.IDENTIFIER:
		name := p.cur.Literal
		p.advance()
		if p.at(lexer.LEFT_BRACKET) {
			var indices []ast.Expr
			for p.at(lexer.LEFT_BRACKET) {
				p.advance()
				idx, err := p.parseExpr()
				if err != nil {
					return nil, err
				}
				if _, err := p.expect(lexer.RIGHT_BRACKET); err != nil {
					return nil, err
				}
				indices = append(indices, idx)
			}
			return ast.NewArrElem(pos, name, indices), nil
		}
		return ast.NewIdent(pos, name), nil
	default:
		return nil, checker.New(checker.Syntax, pos,
			"expected an expression, got "+string(p.cur.Type))
	}
}

func (p *Parser) parseArrayLiteral(pos location.Position) (ast.Expr, error) {
	p.advance() // consume '['
	var elems []ast.Expr
	if !p.at(lexer.RIGHT_BRACKET) {
		for {
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
			if p.at(lexer.COMMA_DELIM) {
				p.advance()
				continue
			}
			break
		}
	}
	if _, err := p.expect(lexer.RIGHT_BRACKET); err != nil {
		return nil, err
	}
	return ast.NewLit(pos, ast.NewArrayLiteral(pos, elems)), nil
}
