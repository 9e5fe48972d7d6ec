package lint

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/gnolang/bracecheck/formatter"
	"github.com/gnolang/bracecheck/internal"
	tt "github.com/gnolang/bracecheck/internal/types"
)

// DefaultFilename is scanned when no path is given on the command line.
const DefaultFilename = "temp_js_new.js"

// Format selects how a report is written.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// LintEngine scans a file or reader and returns the findings.
type LintEngine interface {
	Run(filename string, onExtra internal.ExtraClosingFunc) (*tt.Report, error)
	RunSource(r io.Reader, filename string, onExtra internal.ExtraClosingFunc) (*tt.Report, error)
}

// New returns the default engine for use outside the internal package.
func New(logger *zap.Logger) *internal.Engine {
	return internal.NewEngine(logger)
}

// ProcessFile scans path and writes the result to out.
//
// In text mode extra closing braces are written as they are found,
// followed by the summary. In JSON mode a single document is written
// once the scan has finished.
func ProcessFile(logger *zap.Logger, engine LintEngine, path string, out io.Writer, format Format) (*tt.Report, error) {
	return process(logger, path, out, format, func(onExtra internal.ExtraClosingFunc) (*tt.Report, error) {
		return engine.Run(path, onExtra)
	})
}

// ProcessSource is like ProcessFile but reads the content from r.
func ProcessSource(logger *zap.Logger, engine LintEngine, r io.Reader, name string, out io.Writer, format Format) (*tt.Report, error) {
	return process(logger, name, out, format, func(onExtra internal.ExtraClosingFunc) (*tt.Report, error) {
		return engine.RunSource(r, name, onExtra)
	})
}

func process(
	logger *zap.Logger,
	name string,
	out io.Writer,
	format Format,
	run func(internal.ExtraClosingFunc) (*tt.Report, error),
) (*tt.Report, error) {
	var (
		onExtra  internal.ExtraClosingFunc
		writeErr error
	)
	if format == FormatText {
		onExtra = func(pos tt.Position) {
			if writeErr != nil {
				return
			}
			_, writeErr = fmt.Fprintln(out, formatter.ExtraClosingBrace(pos))
		}
	}

	report, err := run(onExtra)
	if err != nil {
		if logger != nil {
			logger.Error("Error scanning file", zap.String("file", name), zap.Error(err))
		}
		return nil, err
	}
	if writeErr != nil {
		return nil, fmt.Errorf("error writing report: %w", writeErr)
	}

	switch format {
	case FormatJSON:
		err = formatter.WriteJSON(out, report)
	default:
		err = formatter.WriteReport(out, report)
	}
	if err != nil {
		return nil, fmt.Errorf("error writing report: %w", err)
	}

	return report, nil
}

var _ LintEngine = (*internal.Engine)(nil)
