package domain

import "time"

// ComposedDocument is a fully merged document produced from an entry file.
// It wraps a ResolveResult with identity and provenance for output layers.
type ComposedDocument struct {
	// ID is the unique identifier for this composition.
	ID string `json:"id"`

	// EntryPath is the absolute path of the entry document.
	EntryPath string `json:"entry_path"`

	// Content is the merged document text.
	Content string `json:"content"`

	// IncludedPaths lists every successfully included file in pre-order.
	IncludedPaths []string `json:"included_paths"`

	// Errors lists every failure encountered during resolution.
	Errors []ResolveError `json:"errors,omitempty"`

	// ResolvedAt is when the composition was produced.
	ResolvedAt time.Time `json:"resolved_at"`
}

// Clean returns true if resolution completed without any errors.
func (d ComposedDocument) Clean() bool {
	return len(d.Errors) == 0
}
