/*
File : wacc/ast/printer.go
Print renders a Program back to WACC source text. It is adapted from the
teacher's PrintingVisitor (main/print_visitor.go): that visitor walked the
GoMix AST with an indent counter, writing one diagnostic line per node into
a bytes.Buffer. Here the same indent-and-buffer shape is repurposed to
produce *source text* instead of a debug trace, which is what spec.md §8
invariant 5 (parse -> print -> parse round-trip) needs a printer for.
InlineAssembly bodies are not round-trippable through this printer (the
invariant explicitly excludes programs containing one).
*/
package ast

import (
	"bytes"
	"fmt"
	"strings"
)

// Print renders prog as WACC source text, including the top-level
// begin/end wrapper parser.Parse requires (it is pure syntax with no
// node of its own in Program).
func Print(prog *Program) string {
	p := &printer{}
	p.buf.WriteString("begin\n")
	for _, def := range prog.Defs {
		p.def(def)
	}
	p.buf.WriteString("end\n")
	return p.buf.String()
}

type printer struct {
	buf    bytes.Buffer
	indent int
}

func (p *printer) pad() string { return strings.Repeat("  ", p.indent) }

func (p *printer) def(d Def) {
	switch n := d.(type) {
	case *FunDef:
		params := make([]string, len(n.Params))
		for i, decl := range n.Params {
			params[i] = decl.Type.String() + " " + decl.Name
		}
		fmt.Fprintf(&p.buf, "%s %s(%s) is\n", n.Decl.Type.String(), n.Decl.Name, strings.Join(params, ", "))
		p.indent++
		p.stmt(n.Body)
		p.indent--
		p.buf.WriteString("end\n")
	case *TypeDef:
		fmt.Fprintf(&p.buf, "struct %s is\n", n.Name)
		for _, f := range n.Fields {
			fmt.Fprintf(&p.buf, "  %s %s;\n", f.Type.String(), f.Name)
		}
		p.buf.WriteString("end\n")
	case *GlobalDef:
		fmt.Fprintf(&p.buf, "%s %s = %s\n", n.Decl.Type.String(), n.Decl.Name, p.expr(n.Expr))
	}
}

func (p *printer) stmt(s Stmt) {
	switch n := s.(type) {
	case *IdentifiedStatement:
		// A Block reaches here as the Inner of a nested `begin ... end`
		// statement, or as the body of a desugared `for` loop (which the
		// parser wraps in an IdentifiedStatement and which is therefore
		// re-emitted as a nested `begin ... end` inside the `while`). A
		// FunDef's own body and Cond/while branches are bare *Block values
		// reached directly through the *Block case below.
		if b, ok := n.Inner.(*Block); ok {
			fmt.Fprintf(&p.buf, "%sbegin\n", p.pad())
			p.indent++
			p.stmt(b)
			p.indent--
			fmt.Fprintf(&p.buf, "%send\n", p.pad())
			return
		}
		p.stmt(n.Inner)
	case *Noop:
		fmt.Fprintf(&p.buf, "%sskip\n", p.pad())
	case *Block:
		for i, child := range n.Stmts {
			if i != 0 {
				// statements within a block are semicolon separated in source;
				// the previous stmt already wrote its own trailing newline, so
				// back up over it to insert the separator on the same line.
				p.buf.Truncate(p.buf.Len() - 1)
				p.buf.WriteString(";\n")
			}
			p.stmt(child)
		}
	case *VarDef:
		fmt.Fprintf(&p.buf, "%s%s %s = %s\n", p.pad(), n.Decl.Type.String(), n.Decl.Name, p.expr(n.Expr))
	case *Ctrl:
		switch n.Kind {
		case CtrlReturn:
			fmt.Fprintf(&p.buf, "%sreturn %s\n", p.pad(), p.expr(n.Expr))
		case CtrlBreak:
			fmt.Fprintf(&p.buf, "%sbreak\n", p.pad())
		case CtrlContinue:
			fmt.Fprintf(&p.buf, "%scontinue\n", p.pad())
		}
	case *Cond:
		fmt.Fprintf(&p.buf, "%sif %s then\n", p.pad(), p.expr(n.Test))
		p.indent++
		p.stmt(n.Then)
		p.indent--
		fmt.Fprintf(&p.buf, "%selse\n", p.pad())
		p.indent++
		p.stmt(n.Else)
		p.indent--
		fmt.Fprintf(&p.buf, "%sfi\n", p.pad())
	case *Loop:
		fmt.Fprintf(&p.buf, "%swhile %s do\n", p.pad(), p.expr(n.Test))
		p.indent++
		p.stmt(n.Body)
		p.indent--
		fmt.Fprintf(&p.buf, "%sdone\n", p.pad())
	case *Builtin:
		fmt.Fprintf(&p.buf, "%s%s %s\n", p.pad(), builtinKeyword(n.Op), p.expr(n.Expr))
	case *ExpStmt:
		fmt.Fprintf(&p.buf, "%s%s\n", p.pad(), p.expr(n.Expr))
	case *ExternDecl:
		fmt.Fprintf(&p.buf, "%sextern %s\n", p.pad(), n.Name)
	case *InlineAssembly:
		p.buf.WriteString(p.pad() + "begin inline\n")
		for _, line := range n.Lines {
			p.buf.WriteString(line)
		}
		p.buf.WriteString(p.pad() + "end\n")
	}
}

func builtinKeyword(op BuiltinOp) string {
	switch op {
	case BuiltinRead:
		return "read"
	case BuiltinFree:
		return "free"
	case BuiltinExit:
		return "exit"
	case BuiltinPrint:
		return "print"
	case BuiltinPrintLn:
		return "println"
	default:
		return "?"
	}
}

func (p *printer) expr(e Expr) string {
	switch n := e.(type) {
	case *Lit:
		return literalString(n.Value)
	case *Ident:
		return n.Name
	case *ArrElem:
		s := n.Name
		for _, idx := range n.Indices {
			s += "[" + p.expr(idx) + "]"
		}
		return s
	case *PairElem:
		if n.Side == Fst {
			return "fst " + n.Name
		}
		return "snd " + n.Name
	case *UnApp:
		return string(n.Op) + " " + p.expr(n.Expr)
	case *BinApp:
		return "(" + p.expr(n.Left) + " " + string(n.Op) + " " + p.expr(n.Right) + ")"
	case *FunCall:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = p.expr(a)
		}
		return "call " + n.Name + "(" + strings.Join(args, ", ") + ")"
	case *NewPair:
		return "newpair(" + p.expr(n.Fst) + ", " + p.expr(n.Snd) + ")"
	case *NewStruct:
		return "news " + n.Name
	default:
		return "?"
	}
}

func literalString(l Literal) string {
	switch l.Kind {
	case LitInt:
		return fmt.Sprintf("%d", l.Int)
	case LitChar:
		return fmt.Sprintf("'%c'", l.Char)
	case LitBool:
		if l.Bool {
			return "true"
		}
		return "false"
	case LitStr:
		return fmt.Sprintf("%q", l.Str)
	case LitNull:
		return "null"
	case LitArray:
		parts := make([]string, len(l.Elems))
		p := &printer{}
		for i, e := range l.Elems {
			parts[i] = p.expr(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return "?"
	}
}
