package domain

// Directive represents one recognised @include line in a document.
// It is immutable once produced by the scanner.
type Directive struct {
	// OriginalLine is the line exactly as it appeared in the source.
	OriginalLine string `json:"original_line"`

	// LineNumber is the 1-indexed position within the scanned content.
	LineNumber int `json:"line_number"`

	// RawPath is the path token as written, trimmed of surrounding
	// whitespace but otherwise verbatim. May contain embedded spaces
	// and multi-byte characters; no quoting syntax exists.
	RawPath string `json:"raw_path"`

	// ResolvedPath is the absolute, separator-normalised path the
	// directive points at. The scanner never emits a relative path here.
	ResolvedPath string `json:"resolved_path"`
}

// ScanError reports a line that matched the directive prefix but carried
// no usable path. Scan errors are data, never control flow.
type ScanError struct {
	// LineNumber is the 1-indexed position of the offending line.
	LineNumber int `json:"line_number"`

	// Line is the offending line verbatim.
	Line string `json:"line"`

	// Message describes the problem in user-facing terms.
	Message string `json:"message"`
}

// ScanResult is the output of scanning one block of text.
// A line contributes at most one of: a Directive, a ScanError, or nothing.
type ScanResult struct {
	// OriginalContent is the scanned input, preserved verbatim.
	OriginalContent string

	// Directives lists recognised directives in document line order.
	Directives []Directive

	// Errors lists malformed directive lines in document line order.
	Errors []ScanError
}

// HasDirectives returns true if the scan found at least one directive.
func (r ScanResult) HasDirectives() bool {
	return len(r.Directives) > 0
}
