package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gnolang/bracecheck/lint"
)

var (
	jsonOutput bool
	watchMode  bool
	debug      bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "bracecheck [filename]",
	Short: "bracecheck - report unbalanced braces and function declarations in a source file",
	Long: `Scans a single file line by line, reporting closing braces without a
matching opening brace, opening braces left unclosed at end of file, and
function declaration sites. Matching is purely lexical: braces inside
strings and comments are counted like any other.

If no filename is given, ` + lint.DefaultFilename + ` is scanned. A filename
starting with "-" must follow "--", as in: bracecheck -- -draft.js`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(debug)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		filename := resolveFilename(logger, args)
		format := lint.FormatText
		if jsonOutput {
			format = lint.FormatJSON
		}

		engine := lint.New(logger)
		if err := runScan(cmd.Context(), logger, engine, cmd.OutOrStdout(), filename, format, watchMode); err != nil {
			logger.Fatal("Failed to scan file", zap.String("file", filename), zap.Error(err))
		}
	},
}

func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report in JSON format")
	rootCmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "Re-scan the file every time it changes")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging on stderr")
}

// newLogger builds a production logger writing to stderr. Only warnings
// and above are shown unless debug is set, so stdout carries nothing
// but the report.
func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// resolveFilename picks the file to scan. Only the first argument is
// used; any further arguments are ignored.
func resolveFilename(logger *zap.Logger, args []string) string {
	if len(args) == 0 {
		return lint.DefaultFilename
	}
	if len(args) > 1 && logger != nil {
		logger.Debug("Ignoring extra arguments", zap.Strings("args", args[1:]))
	}
	return args[0]
}
