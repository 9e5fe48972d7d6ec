package cmd

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/gnolang/bracecheck/internal"
	"github.com/gnolang/bracecheck/lint"
)

func runScan(
	ctx context.Context,
	logger *zap.Logger,
	engine lint.LintEngine,
	out io.Writer,
	filename string,
	format lint.Format,
	watch bool,
) error {
	if _, err := lint.ProcessFile(logger, engine, filename, out, format); err != nil {
		return err
	}
	if !watch {
		return nil
	}

	if ctx == nil {
		ctx = context.Background()
	}
	return internal.Watch(ctx, logger, filename, 0, func() {
		fmt.Fprintln(out)
		// the file may be mid-save; keep watching and report on the next change
		if _, err := lint.ProcessFile(logger, engine, filename, out, format); err != nil {
			logger.Warn("Re-scan failed", zap.String("file", filename), zap.Error(err))
		}
	})
}
