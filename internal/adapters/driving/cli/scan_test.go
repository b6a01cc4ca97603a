package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/weld-cli/internal/core/domain"
)

func TestScanCmd_ListsDirectives(t *testing.T) {
	_, restore := injectServices(t)
	defer restore()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	content := "intro\n@include a.md\n@include sub/b.md\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	stdout, stderr, err := execute(t, "scan", path)

	require.NoError(t, err)
	assert.Contains(t, stdout, filepath.Join(dir, "a.md"))
	assert.Contains(t, stdout, filepath.Join(dir, "sub", "b.md"))
	assert.Empty(t, stderr)
}

func TestScanCmd_ReportsMalformedDirectives(t *testing.T) {
	_, restore := injectServices(t)
	defer restore()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("@include\n"), 0600))

	_, stderr, err := execute(t, "scan", path)

	require.NoError(t, err)
	assert.Contains(t, stderr, "parse_error")
	assert.Contains(t, stderr, "path cannot be empty")
}

func TestScanCmd_JSON(t *testing.T) {
	_, restore := injectServices(t)
	defer restore()
	defer func() { scanJSON = false }()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("@include x.md\n@include   \n"), 0600))

	stdout, _, err := execute(t, "scan", "--json", path)

	require.NoError(t, err)

	var out struct {
		Directives []domain.Directive `json:"directives"`
		Errors     []domain.ScanError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	require.Len(t, out.Directives, 1)
	assert.Equal(t, filepath.Join(dir, "x.md"), out.Directives[0].ResolvedPath)
	require.Len(t, out.Errors, 1)
	assert.Equal(t, 2, out.Errors[0].LineNumber)
}

func TestScanCmd_FileMissing(t *testing.T) {
	_, restore := injectServices(t)
	defer restore()

	_, _, err := execute(t, "scan", filepath.Join(t.TempDir(), "absent.md"))

	require.Error(t, err)
}
