package types

// MaxListed is the number of trailing entries shown per report section.
const MaxListed = 10

// BraceKindOpen tags every marker pushed for an opening brace.
const BraceKindOpen = "open"

// Position is a location in the scanned file. Line is 1-indexed,
// Column is the 0-indexed character offset within the line.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// BraceMarker records an opening brace that is still pending.
type BraceMarker struct {
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Kind   string `json:"kind"`
}

// FunctionMarker records a detected function declaration.
type FunctionMarker struct {
	Name string `json:"name"`
	Line int    `json:"line"`
}

// Report holds the findings of a single scan.
type Report struct {
	Filename     string           `json:"filename"`
	ExtraClosing []Position       `json:"extra_closing"`
	Unclosed     []BraceMarker    `json:"unclosed"`
	Functions    []FunctionMarker `json:"functions"`
}

// UnclosedTail returns up to the last n unclosed braces in encounter order.
func (r *Report) UnclosedTail(n int) []BraceMarker {
	return tail(r.Unclosed, n)
}

// FunctionTail returns up to the last n functions in encounter order.
func (r *Report) FunctionTail(n int) []FunctionMarker {
	return tail(r.Functions, n)
}

func tail[T any](s []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
