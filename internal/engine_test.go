package internal

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	tt "github.com/gnolang/bracecheck/internal/types"
)

// createTempFile writes content to a file in a per-test directory and
// returns its path.
func createTempFile(t testing.TB, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runSource(t *testing.T, src string) (*tt.Report, []tt.Position) {
	t.Helper()
	var extras []tt.Position
	report, err := NewEngine(nil).RunSource(strings.NewReader(src), "test.js", func(pos tt.Position) {
		extras = append(extras, pos)
	})
	require.NoError(t, err)
	return report, extras
}

func TestEngineBalanced(t *testing.T) {
	t.Parallel()

	src := `if (a) {
  while (b) { c(); }
  obj = { k: { v: 1 } };
}
`
	report, extras := runSource(t, src)
	assert.Empty(t, extras)
	assert.Empty(t, report.ExtraClosing)
	assert.Empty(t, report.Unclosed)
}

func TestEngineExtraClosingOnly(t *testing.T) {
	t.Parallel()

	report, extras := runSource(t, "}")
	assert.Equal(t, []tt.Position{{Line: 1, Column: 0}}, extras)
	assert.Equal(t, extras, report.ExtraClosing)
	assert.Empty(t, report.Unclosed)
}

func TestEngineUnclosed(t *testing.T) {
	t.Parallel()

	report, extras := runSource(t, "{{{")
	assert.Empty(t, extras)
	assert.Equal(t, []tt.BraceMarker{
		{Line: 1, Column: 0, Kind: tt.BraceKindOpen},
		{Line: 1, Column: 1, Kind: tt.BraceKindOpen},
		{Line: 1, Column: 2, Kind: tt.BraceKindOpen},
	}, report.Unclosed)
}

func TestEngineFunction(t *testing.T) {
	t.Parallel()

	report, extras := runSource(t, "function foo() {\n}\n")
	assert.Empty(t, extras)
	assert.Empty(t, report.Unclosed)
	assert.Equal(t, []tt.FunctionMarker{{Name: "foo", Line: 1}}, report.Functions)
}

func TestEnginePopsMostRecent(t *testing.T) {
	t.Parallel()

	src := "a {\n  b {\n  }\n"
	report, _ := runSource(t, src)
	assert.Equal(t, []tt.BraceMarker{{Line: 1, Column: 2, Kind: tt.BraceKindOpen}}, report.Unclosed)
}

func TestEngineExtraThenOpen(t *testing.T) {
	t.Parallel()

	// a stray close does not cancel a later open
	report, extras := runSource(t, "} {\n")
	assert.Equal(t, []tt.Position{{Line: 1, Column: 0}}, extras)
	assert.Equal(t, []tt.BraceMarker{{Line: 1, Column: 2, Kind: tt.BraceKindOpen}}, report.Unclosed)
}

func TestEngineLexicalOnly(t *testing.T) {
	t.Parallel()

	// braces in strings and comments are counted like any other
	src := "const s = \"{\"; // }\n/* { */\n"
	report, extras := runSource(t, src)
	assert.Empty(t, extras)
	assert.Equal(t, []tt.BraceMarker{{Line: 2, Column: 3, Kind: tt.BraceKindOpen}}, report.Unclosed)
}

func TestEngineColumnsCountCharacters(t *testing.T) {
	t.Parallel()

	report, _ := runSource(t, "é€{\n")
	require.Len(t, report.Unclosed, 1)
	assert.Equal(t, 2, report.Unclosed[0].Column)
}

func TestEngineColumnsSkipInvalidBytes(t *testing.T) {
	t.Parallel()

	report, _ := runSource(t, "\xff\xfe{\n")
	require.Len(t, report.Unclosed, 1)
	assert.Equal(t, 0, report.Unclosed[0].Column)
}

func TestEngineCarriageReturnLines(t *testing.T) {
	t.Parallel()

	report, extras := runSource(t, "{\r}\r}\r\n")
	assert.Empty(t, report.Unclosed)
	assert.Equal(t, []tt.Position{{Line: 3, Column: 0}}, extras)
}

func TestEngineManyEntries(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	for i := 0; i < 15; i++ {
		b.WriteString("function f")
		b.WriteByte(byte('a' + i))
		b.WriteString("() {\n")
	}
	report, _ := runSource(t, b.String())
	assert.Len(t, report.Unclosed, 15)
	assert.Len(t, report.Functions, 15)
	assert.Equal(t, "fo", report.Functions[14].Name)
	assert.Equal(t, 15, report.Functions[14].Line)
}

func TestEngineNilCallback(t *testing.T) {
	t.Parallel()

	report, err := NewEngine(zap.NewNop()).RunSource(strings.NewReader("}}"), "x.js", nil)
	require.NoError(t, err)
	assert.Len(t, report.ExtraClosing, 2)
}

func TestEngineRun(t *testing.T) {
	t.Parallel()

	path := createTempFile(t, "app.js", "function main() {\n  {\n}\n")
	report, err := NewEngine(nil).Run(path, nil)
	require.NoError(t, err)
	assert.Equal(t, path, report.Filename)
	assert.Equal(t, []tt.BraceMarker{{Line: 1, Column: 16, Kind: tt.BraceKindOpen}}, report.Unclosed)
	assert.Equal(t, []tt.FunctionMarker{{Name: "main", Line: 1}}, report.Functions)
}

func TestEngineRunMissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewEngine(nil).Run(filepath.Join(t.TempDir(), "missing.js"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEngineReadErrorAfterFindings(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk gone")
	r := io.MultiReader(strings.NewReader("}\n"), &failingReader{err: boom})

	var extras []tt.Position
	report, err := NewEngine(nil).RunSource(r, "x.js", func(pos tt.Position) {
		extras = append(extras, pos)
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, report)
	// findings seen before the failure were already emitted
	assert.Equal(t, []tt.Position{{Line: 1, Column: 0}}, extras)
}

type failingReader struct {
	err error
}

func (r *failingReader) Read([]byte) (int, error) { return 0, r.err }
