package selector

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// exprLexer tokenizes index selection expressions such as "0-3,7,12"
// or "*".
var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[\s]+`},
	{Name: "Number", Pattern: `[0-9]+`},
	{Name: "Dash", Pattern: `-`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Star", Pattern: `\*`},
})
