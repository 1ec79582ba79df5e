/*
File    : wacc/repl/repl.go
Package repl implements a Read-Eval-Print Loop for the WACC front-end.
Unlike an interpreter's REPL, there is nothing to evaluate: each entered
fragment is parsed and checked, and the REPL reports either the resulting
AST (printed via ast.Print) or the first CheckerError, colored the way
the teacher's REPL colors interpreter results and errors.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/wacclang/wacc/ast"
	"github.com/wacclang/wacc/checker"
	"github.com/wacclang/wacc/parser"
)

// Color definitions for REPL output.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl encapsulates the configuration needed to run an interactive
// parse-and-check session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl creates a new REPL instance.
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to wacc!")
	cyanColor.Fprintf(writer, "%s\n", "Type a WACC program (begin ... end) and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop: it reads one line at a time, and a
// fragment is submitted for parsing/checking once it balances its
// `begin`/`end` keywords, so a program can be typed across several lines.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	var pending strings.Builder
	depth := 0

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		trimmed := strings.Trim(line, " \n\t\r")
		if trimmed == "" {
			continue
		}
		if trimmed == ".exit" && pending.Len() == 0 {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		pending.WriteString(line)
		pending.WriteString("\n")
		depth += countKeyword(trimmed, "begin") - countKeyword(trimmed, "end")

		if depth > 0 {
			continue
		}

		src := pending.String()
		pending.Reset()
		depth = 0

		r.executeWithRecovery(writer, src)
	}
}

// countKeyword counts whole-word occurrences of keyword in line, a cheap
// heuristic good enough to decide when a typed fragment is complete;
// real keyword/identifier disambiguation happens in the lexer once the
// fragment is actually submitted.
func countKeyword(line, keyword string) int {
	count := 0
	for _, word := range strings.Fields(line) {
		if word == keyword {
			count++
		}
	}
	return count
}

// executeWithRecovery parses and checks src, reporting the AST or the
// first error. The REPL continues after an error, unlike file mode.
func (r *Repl) executeWithRecovery(writer io.Writer, src string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	prog, _, err := parser.Parse(src)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}

	if err := checker.Check(prog); err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}

	yellowColor.Fprintf(writer, "%s\n", ast.Print(prog))
}
