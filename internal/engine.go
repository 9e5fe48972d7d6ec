package internal

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/gnolang/bracecheck/internal/lints"
	tt "github.com/gnolang/bracecheck/internal/types"
	"github.com/gnolang/bracecheck/scanner"
)

// ExtraClosingFunc is called as soon as a closing brace without a
// pending opening brace is seen.
type ExtraClosingFunc func(pos tt.Position)

// Engine scans source files for brace imbalances and function declarations.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates a new scan engine. A nil logger disables logging.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// Run scans the named file.
func (e *Engine) Run(filename string, onExtra ExtraClosingFunc) (*tt.Report, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", filename, err)
	}
	defer f.Close()

	return e.RunSource(f, filename, onExtra)
}

// RunSource scans r, reporting findings under filename.
func (e *Engine) RunSource(r io.Reader, filename string, onExtra ExtraClosingFunc) (*tt.Report, error) {
	report := &tt.Report{Filename: filename}
	var braces braceStack

	sc := scanner.New(r)
	for sc.Scan() {
		line, lineNum := sc.Text(), sc.Line()

		name, ok, err := lints.DetectFunction(line)
		if err != nil {
			return nil, fmt.Errorf("error scanning %s line %d: %w", filename, lineNum, err)
		}
		if ok {
			report.Functions = append(report.Functions, tt.FunctionMarker{Name: name, Line: lineNum})
		}

		// columns count characters, not bytes
		col := 0
		for _, ch := range line {
			switch ch {
			case '{':
				braces.push(lineNum, col)
			case '}':
				if !braces.pop() {
					pos := tt.Position{Line: lineNum, Column: col}
					report.ExtraClosing = append(report.ExtraClosing, pos)
					if onExtra != nil {
						onExtra(pos)
					}
				}
			}
			col++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", filename, err)
	}

	report.Unclosed = braces.remaining()

	e.logger.Debug("Scan complete",
		zap.String("file", filename),
		zap.Int("lines", sc.Line()),
		zap.Int("unclosed", braces.len()),
		zap.Int("extra_closing", len(report.ExtraClosing)),
		zap.Int("functions", len(report.Functions)),
	)

	return report, nil
}
