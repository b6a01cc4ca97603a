package domain

import "fmt"

// ErrorKind classifies a resolution failure. It is the only typed
// discriminator in the system and drives user-facing messaging.
type ErrorKind string

// Resolution failure kinds.
const (
	// ErrorKindFileNotFound indicates an include target does not exist.
	ErrorKindFileNotFound ErrorKind = "file_not_found"

	// ErrorKindCircularInclude indicates a file transitively includes itself.
	ErrorKindCircularInclude ErrorKind = "circular_include"

	// ErrorKindMaxDepth indicates the inclusion chain exceeded the depth limit.
	ErrorKindMaxDepth ErrorKind = "max_depth"

	// ErrorKindReadError indicates an I/O failure other than a missing file.
	ErrorKindReadError ErrorKind = "read_error"

	// ErrorKindParseError indicates a malformed directive line.
	ErrorKindParseError ErrorKind = "parse_error"
)

// IsValid returns true if the error kind is recognised.
func (k ErrorKind) IsValid() bool {
	switch k {
	case ErrorKindFileNotFound, ErrorKindCircularInclude, ErrorKindMaxDepth,
		ErrorKindReadError, ErrorKindParseError:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k ErrorKind) String() string {
	return string(k)
}

// Description returns a human-readable description of the kind.
func (k ErrorKind) Description() string {
	switch k {
	case ErrorKindFileNotFound:
		return "File not found"
	case ErrorKindCircularInclude:
		return "Circular include"
	case ErrorKindMaxDepth:
		return "Maximum include depth exceeded"
	case ErrorKindReadError:
		return "Read error"
	case ErrorKindParseError:
		return "Malformed directive"
	default:
		return "Unknown"
	}
}

// ResolveError reports one failure encountered during recursive resolution.
// Failures are accumulated, never raised; a single bad include does not
// abort the rest of the walk.
type ResolveError struct {
	// FilePath is the path the failure concerns: the include target for
	// resolution failures, the containing file for parse errors.
	FilePath string `json:"file_path"`

	// LineNumber is the 1-indexed line of the directive that failed,
	// or 0 when no line is attributable.
	LineNumber int `json:"line_number,omitempty"`

	// Message describes the failure in user-facing terms.
	Message string `json:"message"`

	// Kind classifies the failure.
	Kind ErrorKind `json:"kind"`
}

// Error implements the error interface so a ResolveError can be wrapped
// or logged like any other error value.
func (e ResolveError) Error() string {
	if e.LineNumber > 0 {
		return fmt.Sprintf("%s: %s (line %d): %s", e.Kind, e.FilePath, e.LineNumber, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.FilePath, e.Message)
}

// ResolveResult is the outcome of one recursive resolution walk.
// There is no success flag; callers inspect Errors.
type ResolveResult struct {
	// Content is the merged document text with directives spliced out.
	Content string

	// IncludedPaths lists every successfully included file in pre-order.
	// The same path appears once per successful expansion, so diamond
	// inclusion yields duplicates.
	IncludedPaths []string

	// Errors lists every failure across the whole inclusion tree, in
	// walk order: a directive's subtree before its next sibling.
	Errors []ResolveError
}
