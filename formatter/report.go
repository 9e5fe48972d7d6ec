package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	tt "github.com/gnolang/bracecheck/internal/types"
)

// ExtraClosingBrace formats the inline diagnostic for a stray `}`.
func ExtraClosingBrace(pos tt.Position) string {
	return fmt.Sprintf("Extra closing brace at line %d, pos %d", pos.Line, pos.Column)
}

// GenerateSummary renders the end-of-scan summary. Totals are never
// capped; only the listings are limited to tt.MaxListed entries.
func GenerateSummary(report *tt.Report) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "Unclosed braces: %d\n", len(report.Unclosed))
	if len(report.Unclosed) > 0 {
		builder.WriteString("Unclosed braces found at:\n")
		for _, m := range report.UnclosedTail(tt.MaxListed) {
			fmt.Fprintf(&builder, "  Line %d, position %d\n", m.Line, m.Column)
		}
	}

	fmt.Fprintf(&builder, "Functions found: %d\n", len(report.Functions))
	if len(report.Functions) > 0 {
		fmt.Fprintf(&builder, "Last %d functions:\n", tt.MaxListed)
		for _, fn := range report.FunctionTail(tt.MaxListed) {
			fmt.Fprintf(&builder, "  %s at line %d\n", fn.Name, fn.Line)
		}
	}

	return builder.String()
}

// WriteReport writes the text summary to w.
func WriteReport(w io.Writer, report *tt.Report) error {
	_, err := io.WriteString(w, GenerateSummary(report))
	return err
}

type jsonReport struct {
	Filename      string              `json:"filename"`
	ExtraClosing  []tt.Position       `json:"extra_closing"`
	UnclosedCount int                 `json:"unclosed_count"`
	Unclosed      []tt.BraceMarker    `json:"unclosed"`
	FunctionCount int                 `json:"function_count"`
	Functions     []tt.FunctionMarker `json:"functions"`
}

// WriteJSON writes report to w as an indented JSON document. The
// listings follow the same trailing-entry limit as the text summary.
func WriteJSON(w io.Writer, report *tt.Report) error {
	out := jsonReport{
		Filename:      report.Filename,
		ExtraClosing:  nonNil(report.ExtraClosing),
		UnclosedCount: len(report.Unclosed),
		Unclosed:      nonNil(report.UnclosedTail(tt.MaxListed)),
		FunctionCount: len(report.Functions),
		Functions:     nonNil(report.FunctionTail(tt.MaxListed)),
	}

	d, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshalling report to JSON: %w", err)
	}
	d = append(d, '\n')
	_, err = w.Write(d)
	return err
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
