package lints

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// Word and space classes follow Python's str rules rather than .NET's:
// letters, numbers (Nd, Nl, No) and underscore are word characters,
// combining marks, connector punctuation and joiners are not, and the
// \x1c-\x1f separators count as whitespace.
const (
	wordClass    = `[\p{L}\p{N}_]`
	spaceClass   = `[\s\x1c-\x1f]`
	wordBoundary = `(?<!` + wordClass + `)`
)

// Both patterns are evaluated independently against the same line.
var (
	functionDeclRegex = regexp2.MustCompile(
		wordBoundary+`function`+spaceClass+`+`+wordClass+`+`+spaceClass+`*\(`, regexp2.None)
	functionNameRegex = regexp2.MustCompile(
		`function`+spaceClass+`+(`+wordClass+`+)`, regexp2.None)
)

// IsFunctionDecl reports whether line contains a `function name(` site.
func IsFunctionDecl(line string) (bool, error) {
	ok, err := functionDeclRegex.MatchString(line)
	if err != nil {
		return false, fmt.Errorf("matching function declaration: %w", err)
	}
	return ok, nil
}

// FunctionName returns the identifier following the first `function`
// keyword in line.
func FunctionName(line string) (string, bool, error) {
	m, err := functionNameRegex.FindStringMatch(line)
	if err != nil {
		return "", false, fmt.Errorf("extracting function name: %w", err)
	}
	if m == nil {
		return "", false, nil
	}
	return m.GroupByNumber(1).String(), true, nil
}

// DetectFunction runs the declaration check and, on a match, extracts
// the function name.
func DetectFunction(line string) (string, bool, error) {
	ok, err := IsFunctionDecl(line)
	if err != nil || !ok {
		return "", false, err
	}
	return FunctionName(line)
}
