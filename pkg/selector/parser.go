// Package selector parses index selection expressions used to pick
// channels and sweeps on the command line. An expression is a
// comma-separated list of zero-based indexes and inclusive ranges,
// or "*" for everything:
//
//   - all indexes
//     0          index 0 only
//     0-3,7      indexes 0,1,2,3 and 7
//
// An empty expression selects everything, matching the original
// converter's default channel list.
package selector

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
)

type expr struct {
	Terms []*term `parser:"@@ ( Comma @@ )*"`
}

type term struct {
	All   bool       `parser:"  @Star"`
	Range *indexSpan `parser:"| @@"`
}

type indexSpan struct {
	Start int  `parser:"@Number"`
	End   *int `parser:"( Dash @Number )?"`
}

var exprParser = participle.MustBuild[expr](
	participle.Lexer(exprLexer),
	participle.Elide("Whitespace"),
)

// Parse compiles an expression into a Selection. Empty input selects
// everything.
func Parse(input string) (*Selection, error) {
	if input == "" {
		return &Selection{all: true}, nil
	}
	parsed, err := exprParser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("selector: parse %q: %w", input, err)
	}

	sel := &Selection{}
	for _, t := range parsed.Terms {
		if t.All {
			sel.all = true
			continue
		}
		start := t.Range.Start
		end := start
		if t.Range.End != nil {
			end = *t.Range.End
		}
		if end < start {
			return nil, fmt.Errorf("selector: reversed range %d-%d in %q", start, end, input)
		}
		sel.spans = append(sel.spans, span{start, end})
	}
	return sel, nil
}
