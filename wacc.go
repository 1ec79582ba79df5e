/*
File : wacc/wacc.go
Package wacc is the top-level convenience API: Compile runs the whole
front-end pipeline (parse, then check) over a source buffer in one call,
the way a caller embedding this module as a library would want rather
than wiring parser.Parse and checker.Check by hand.
*/
package wacc

import (
	"github.com/wacclang/wacc/ast"
	"github.com/wacclang/wacc/checker"
	"github.com/wacclang/wacc/location"
	"github.com/wacclang/wacc/parser"
)

// Compile parses and semantically checks source, returning the resulting
// AST and location data. The returned error, if non-nil, is always a
// *checker.CheckerError.
func Compile(source []byte) (*ast.Program, *location.LocationData, error) {
	prog, loc, err := parser.Parse(string(source))
	if err != nil {
		return nil, loc, err
	}
	if err := checker.Check(prog); err != nil {
		return nil, loc, err
	}
	return prog, loc, nil
}
