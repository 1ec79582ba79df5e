/*
File    : wacc/cmd/wacc/main.go
Package main is the entry point for the wacc front-end checker. It has
two modes of operation:
 1. REPL mode (default): an interactive parse-and-check session
 2. File mode: check a single WACC source file and report the result

There is no evaluator in this front end; a successful file-mode run
prints nothing (silence means "no errors"), matching a type-checker's
usual contract rather than an interpreter's.
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	wacc "github.com/wacclang/wacc"
	"github.com/wacclang/wacc/checker"
	"github.com/wacclang/wacc/repl"
)

var VERSION = "v1.0.0"
var AUTHOR = "wacclang"
var LICENSE = "MIT"
var PROMPT = "wacc >>> "

var BANNER = `
 __      __  _____   _____  _____
 \ \    / / |  _  | |  ___||  ___|
  \ \/\/ /  | |_| | | |     | |
   \_/\_/   |  _  | | |     | |
             |_| |_| |_|     |_|
`

var LINE = "----------------------------------------------------------------"

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(0)
		}
		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(0)
		}

		runFile(arg)
		return
	}

	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("wacc - a WACC front-end (parser + semantic checker)")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	fmt.Println("  wacc                    Start interactive REPL mode")
	fmt.Println("  wacc <path-to-file>     Check a WACC source file (.wacc)")
	fmt.Println("  wacc --help             Display this help message")
	fmt.Println("  wacc --version          Display version information")
	cyanColor.Println("")
	cyanColor.Println("CONFIGURATION:")
	fmt.Println("  a wacc.yaml in the current directory overrides the exit codes")
	fmt.Println("  returned for syntax/semantic/type errors")
}

func showVersion() {
	cyanColor.Println("wacc - a WACC front-end (parser + semantic checker)")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
}

// runFile reads, parses, and checks a single WACC source file, exiting
// with a code selected from wacc.yaml (or the defaults) according to the
// kind of the first error encountered.
func runFile(fileName string) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file %q: %v\n", fileName, err)
		os.Exit(1)
	}

	cfg, err := loadConfig("wacc.yaml")
	if err != nil {
		redColor.Fprintf(os.Stderr, "[CONFIG ERROR] %v\n", err)
		os.Exit(1)
	}

	_, _, err = wacc.Compile(source)
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(checker.ExitCode(err, cfg.SyntaxExitCode, cfg.SemanticExitCode, cfg.TypeExitCode))
	}
}
