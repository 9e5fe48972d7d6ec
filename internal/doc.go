// Package internal implements the scan engine behind bracecheck.
//
// Engine reads a single file line by line and records three kinds of
// findings:
//
// Extra closing brace: a `}` seen while no `{` is pending. These are
// passed to the caller's ExtraClosingFunc as soon as they are found.
//
// Unclosed brace: a `{` still pending at end of file.
//
// Function declaration: a line matching `function name(`, as detected
// by the lints package.
//
// Matching is purely lexical. Braces inside strings, comments, regular
// expression literals or templates are counted like any other.
//
// Usage:
//
//	engine := internal.NewEngine(logger)
//	report, err := engine.Run("app.js", func(pos types.Position) {
//	    fmt.Printf("Extra closing brace at line %d, pos %d\n", pos.Line, pos.Column)
//	})
//	if err != nil {
//	    // handle error
//	}
//
// Watch re-runs a callback whenever the scanned file changes on disk.
package internal
