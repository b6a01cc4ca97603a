package driving

import (
	"context"

	"github.com/custodia-labs/weld-cli/internal/core/domain"
)

// ResolveOptions tunes one top-level resolution walk.
// The zero value means defaults.
type ResolveOptions struct {
	// MaxDepth overrides the maximum include nesting depth.
	// Zero means the service's configured limit.
	MaxDepth int

	// Visited pre-seeds the ancestor chain with absolute paths that
	// should be treated as already being expanded. Callers resolving
	// the content of a file they read themselves seed it with that
	// file's path so self-inclusion is caught at the top level.
	Visited []string
}

// ResolverService merges @include directives into a single document.
//
// Resolution failures are accumulated in the result, never returned as a
// Go error: a missing or cyclic include must not discard the rest of the
// document. Methods return an error only when the operation itself cannot
// start (e.g. the entry file is unreadable).
type ResolverService interface {
	// Scan finds include directives in content without performing I/O.
	// Relative directive paths resolve against basePath.
	Scan(content, basePath string) domain.ScanResult

	// Resolve recursively expands every include directive in content,
	// resolving relative paths against basePath.
	Resolve(ctx context.Context, content, basePath string) *domain.ResolveResult

	// ResolveWithOptions is Resolve with an explicit depth limit and a
	// pre-seeded ancestor chain.
	ResolveWithOptions(ctx context.Context, content, basePath string, opts ResolveOptions) *domain.ResolveResult

	// ResolveFile reads the entry file and resolves its content with the
	// file's own directory as base. The entry path seeds the ancestor
	// chain. Returns an error only when the entry itself cannot be read.
	ResolveFile(ctx context.Context, path string) (*domain.ComposedDocument, error)
}
