package services

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/custodia-labs/weld-cli/internal/core/domain"
)

// directivePattern matches an @include line. The keyword must start the
// line (leading spaces or tabs allowed) and is case-sensitive; anything
// after the separating whitespace is the raw path. A mid-line @include is
// prose, and the legacy single-@ syntax (@./file.md, @~/config.md) has no
// keyword, so neither ever matches. The optional trailing CR tolerates
// CRLF input.
var directivePattern = regexp.MustCompile(`^[ \t]*@include(?:[ \t]+(.*))?\r?$`)

// scanErrEmptyPath is the message for a directive with no usable path.
// A bare keyword and a keyword followed only by whitespace are
// indistinguishable for error purposes.
const scanErrEmptyPath = "path cannot be empty"

// ScanContent finds include directives in content, resolving relative
// directive paths against basePath. It performs no file I/O and never
// fails: malformed directives are reported in ScanResult.Errors.
//
// Each LF-separated line is classified independently and yields at most
// one of a Directive, a ScanError, or nothing.
func ScanContent(content, basePath string) domain.ScanResult {
	result := domain.ScanResult{OriginalContent: content}

	for i, line := range strings.Split(content, "\n") {
		m := directivePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		rawPath := strings.TrimSpace(m[1])
		if rawPath == "" {
			result.Errors = append(result.Errors, domain.ScanError{
				LineNumber: i + 1,
				Line:       line,
				Message:    scanErrEmptyPath,
			})
			continue
		}

		result.Directives = append(result.Directives, domain.Directive{
			OriginalLine: line,
			LineNumber:   i + 1,
			RawPath:      rawPath,
			ResolvedPath: NormalizePath(rawPath, basePath),
		})
	}

	return result
}

// IsIncludeDirective reports whether line is a well-formed include
// directive carrying a non-empty path.
func IsIncludeDirective(line string) bool {
	m := directivePattern.FindStringSubmatch(line)
	return m != nil && strings.TrimSpace(m[1]) != ""
}

// NormalizePath converts a raw directive path into an absolute,
// separator-normalised path. "~" and "~/..." expand to the invoking
// user's home directory; absolute paths are cleaned in place; anything
// else resolves relative to basePath, with "." and ".." segments
// collapsed even when they climb above it.
func NormalizePath(rawPath, basePath string) string {
	p := strings.TrimSpace(rawPath)

	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			if p == "~" {
				return filepath.Clean(home)
			}
			return filepath.Join(home, p[2:])
		}
		// Home directory unknown - fall through and treat the token
		// as a path relative to basePath.
	}

	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}

	return filepath.Join(basePath, p)
}
