package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer tokenizes a whitespace-free dice specification. A Dice token is a
// whole NdS atom ("2d6", "d20", "3dF") so the multiplicity digits stay
// attached to their die; bare digits become Int constants.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Dice", Pattern: `(?i)\d*d(?:\d+|f)`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Sign", Pattern: `[+-]`},
})

// Build creates the expression parser based on the struct tags in `ast.go`
func Build() *participle.Parser[Expression] {
	return participle.MustBuild[Expression](
		participle.Lexer(Lexer),
	)
}
