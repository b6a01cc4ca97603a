package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanContent_NoDirectives(t *testing.T) {
	content := "# Title\n\nPlain prose mentioning @include mid-line.\n"

	result := ScanContent(content, "/docs")

	assert.Empty(t, result.Directives)
	assert.Empty(t, result.Errors)
	assert.Equal(t, content, result.OriginalContent)
}

func TestScanContent_SingleDirective(t *testing.T) {
	result := ScanContent("@include ./shared/header.md", "/docs")

	require.Len(t, result.Directives, 1)
	d := result.Directives[0]
	assert.Equal(t, "@include ./shared/header.md", d.OriginalLine)
	assert.Equal(t, 1, d.LineNumber)
	assert.Equal(t, "./shared/header.md", d.RawPath)
	assert.Equal(t, "/docs/shared/header.md", d.ResolvedPath)
}

func TestScanContent_DirectivesInLineOrder(t *testing.T) {
	content := "intro\n@include a.md\nmiddle\n@include b.md\n@include c.md"

	result := ScanContent(content, "/base")

	require.Len(t, result.Directives, 3)
	assert.Equal(t, []int{2, 4, 5}, []int{
		result.Directives[0].LineNumber,
		result.Directives[1].LineNumber,
		result.Directives[2].LineNumber,
	})
	assert.Equal(t, "/base/a.md", result.Directives[0].ResolvedPath)
	assert.Equal(t, "/base/b.md", result.Directives[1].ResolvedPath)
	assert.Equal(t, "/base/c.md", result.Directives[2].ResolvedPath)
}

func TestScanContent_LeadingWhitespaceAllowed(t *testing.T) {
	result := ScanContent("   @include one.md\n\t@include two.md", "/base")

	require.Len(t, result.Directives, 2)
	assert.Equal(t, "/base/one.md", result.Directives[0].ResolvedPath)
	assert.Equal(t, "/base/two.md", result.Directives[1].ResolvedPath)
}

func TestScanContent_EmptyPathErrors(t *testing.T) {
	// Bare keyword and keyword-plus-whitespace both yield the same error.
	content := "@include\n@include   \n@include ./ok.md"

	result := ScanContent(content, "/base")

	require.Len(t, result.Errors, 2)
	assert.Equal(t, 1, result.Errors[0].LineNumber)
	assert.Equal(t, "@include", result.Errors[0].Line)
	assert.Equal(t, "path cannot be empty", result.Errors[0].Message)
	assert.Equal(t, 2, result.Errors[1].LineNumber)
	assert.Equal(t, "path cannot be empty", result.Errors[1].Message)

	require.Len(t, result.Directives, 1)
	assert.Equal(t, 3, result.Directives[0].LineNumber)
	assert.Equal(t, "/base/ok.md", result.Directives[0].ResolvedPath)
}

func TestScanContent_PathWithSpaces(t *testing.T) {
	result := ScanContent("@include ./my notes/daily plan.md", "/base")

	require.Len(t, result.Directives, 1)
	assert.Equal(t, "./my notes/daily plan.md", result.Directives[0].RawPath)
	assert.Equal(t, "/base/my notes/daily plan.md", result.Directives[0].ResolvedPath)
}

func TestScanContent_UnicodePath(t *testing.T) {
	result := ScanContent("@include ./notas/café ☕.md", "/base")

	require.Len(t, result.Directives, 1)
	assert.Equal(t, "./notas/café ☕.md", result.Directives[0].RawPath)
	assert.Equal(t, "/base/notas/café ☕.md", result.Directives[0].ResolvedPath)
}

func TestScanContent_LegacySyntaxIgnored(t *testing.T) {
	// The single-@ inclusion syntax has no keyword and must never match.
	content := "@./file.md\n@~/config.md\n@/absolute/path.md"

	result := ScanContent(content, "/base")

	assert.Empty(t, result.Directives)
	assert.Empty(t, result.Errors)
}

func TestScanContent_Idempotent(t *testing.T) {
	content := "a\n@include x.md\n@include\nb"

	first := ScanContent(content, "/base")
	second := ScanContent(content, "/base")

	assert.Equal(t, first, second)
	assert.Equal(t, content, first.OriginalContent)
}

func TestScanContent_RelativeClimbsAboveBase(t *testing.T) {
	result := ScanContent("@include ../../shared/common.md", "/a/b/c")

	require.Len(t, result.Directives, 1)
	assert.Equal(t, "/a/shared/common.md", result.Directives[0].ResolvedPath)
}

func TestIsIncludeDirective(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"simple", "@include ./f.md", true},
		{"leading whitespace", "  \t@include ./f.md", true},
		{"absolute path", "@include /etc/fragment.md", true},
		{"home path", "@include ~/fragment.md", true},
		{"uppercase keyword", "@INCLUDE ./f.md", false},
		{"mixed case keyword", "@Include ./f.md", false},
		{"mid-line", "text @include ./f.md", false},
		{"bare keyword", "@include", false},
		{"keyword then whitespace", "@include   ", false},
		{"keyword glued to path", "@include./f.md", false},
		{"longer word", "@includes ./f.md", false},
		{"legacy relative", "@./file.md", false},
		{"legacy home", "@~/config.md", false},
		{"legacy absolute", "@/absolute/path.md", false},
		{"empty line", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsIncludeDirective(tt.line))
		})
	}
}

func TestNormalizePath_Home(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Clean(home), NormalizePath("~", "/base"))
	assert.Equal(t, filepath.Join(home, "x"), NormalizePath("~/x", "/base"))
	assert.Equal(t, filepath.Join(home, "a/b.md"), NormalizePath("~/a/b.md", "/base"))
}

func TestNormalizePath_Absolute(t *testing.T) {
	assert.Equal(t, "/a/c", NormalizePath("/a//b/../c", "/base"))
	assert.Equal(t, "/a/b", NormalizePath("/a/./b", "/anything"))
}

func TestNormalizePath_Relative(t *testing.T) {
	assert.Equal(t, "/base/x.md", NormalizePath("./x.md", "/base"))
	assert.Equal(t, "/base/sub/x.md", NormalizePath("sub/x.md", "/base"))
	assert.Equal(t, "/x.md", NormalizePath("../x.md", "/base"))
}

func TestNormalizePath_TrimsInput(t *testing.T) {
	assert.Equal(t, "/base/x.md", NormalizePath("  ./x.md  ", "/base"))
}

// Tilde prefixes that are not the home indicator resolve like any other
// relative path.
func TestNormalizePath_TildeNotHomeIndicator(t *testing.T) {
	assert.Equal(t, "/base/~backup/x.md", NormalizePath("~backup/x.md", "/base"))
}
