package services

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/weld-cli/internal/core/domain"
	"github.com/custodia-labs/weld-cli/internal/core/ports/driven"
	"github.com/custodia-labs/weld-cli/internal/core/ports/driving"
	"github.com/custodia-labs/weld-cli/internal/logger"
)

// Ensure ResolverService implements the interface.
var _ driving.ResolverService = (*ResolverService)(nil)

// ResolverService recursively expands @include directives, splicing the
// referenced file contents into a single merged document.
//
// The walk is depth-first and sequential so output and error ordering are
// deterministic. Failures never abort the walk: every error is recorded
// in the result and resolution continues with the remaining directives.
// A directive line whose expansion fails (missing file, cycle, depth
// limit, read error) is left verbatim in the output.
//
// Cycle detection uses the ancestor chain - the paths currently being
// expanded on this branch - not a global visited set, so the same file
// included via two independent branches (diamond inclusion) expands both
// times while a file transitively including itself is rejected.
type ResolverService struct {
	reader   driven.FileReader
	maxDepth int
}

// NewResolverService creates a resolver backed by the given read
// capability. A non-positive maxDepth selects domain.DefaultMaxDepth.
func NewResolverService(reader driven.FileReader, maxDepth int) *ResolverService {
	if maxDepth <= 0 {
		maxDepth = domain.DefaultMaxDepth
	}
	return &ResolverService{
		reader:   reader,
		maxDepth: maxDepth,
	}
}

// Scan finds include directives in content without performing I/O.
func (s *ResolverService) Scan(content, basePath string) domain.ScanResult {
	return ScanContent(content, basePath)
}

// Resolve recursively expands every include directive in content.
func (s *ResolverService) Resolve(ctx context.Context, content, basePath string) *domain.ResolveResult {
	return s.ResolveWithOptions(ctx, content, basePath, driving.ResolveOptions{})
}

// ResolveWithOptions is Resolve with an explicit depth limit and a
// pre-seeded ancestor chain.
func (s *ResolverService) ResolveWithOptions(ctx context.Context, content, basePath string, opts driving.ResolveOptions) *domain.ResolveResult {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = s.maxDepth
	}

	ancestors := make(map[string]struct{}, len(opts.Visited))
	for _, p := range opts.Visited {
		ancestors[p] = struct{}{}
	}

	return s.resolve(ctx, content, "", basePath, ancestors, 0, maxDepth)
}

// ResolveFile reads the entry document and resolves its content against
// the file's own directory. The entry path seeds the ancestor chain so a
// document including itself is caught at the first level.
func (s *ResolverService) ResolveFile(ctx context.Context, path string) (*domain.ComposedDocument, error) {
	if s.reader == nil {
		return nil, domain.ErrReaderUnavailable
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve entry path: %w", err)
	}

	content, err := s.reader.ReadFile(ctx, abs)
	if err != nil {
		return nil, fmt.Errorf("read entry document: %w", err)
	}

	logger.Debug("resolving %s (max depth %d)", abs, s.maxDepth)

	ancestors := map[string]struct{}{abs: {}}
	result := s.resolve(ctx, content, abs, filepath.Dir(abs), ancestors, 0, s.maxDepth)

	return &domain.ComposedDocument{
		ID:            uuid.New().String(),
		EntryPath:     abs,
		Content:       result.Content,
		IncludedPaths: result.IncludedPaths,
		Errors:        result.Errors,
		ResolvedAt:    time.Now(),
	}, nil
}

// resolve performs one level of the depth-first walk. sourcePath is the
// file the content came from (empty for a top-level Resolve call) and
// attributes parse errors; ancestors is the chain of paths currently
// being expanded from the top-level call down to here.
func (s *ResolverService) resolve(ctx context.Context, content, sourcePath, basePath string, ancestors map[string]struct{}, depth, maxDepth int) *domain.ResolveResult {
	result := &domain.ResolveResult{}

	scan := ScanContent(content, basePath)
	for _, scanErr := range scan.Errors {
		result.Errors = append(result.Errors, domain.ResolveError{
			FilePath:   sourcePath,
			LineNumber: scanErr.LineNumber,
			Message:    scanErr.Message,
			Kind:       domain.ErrorKindParseError,
		})
	}

	if !scan.HasDirectives() {
		result.Content = content
		return result
	}

	byLine := make(map[int]domain.Directive, len(scan.Directives))
	for _, d := range scan.Directives {
		byLine[d.LineNumber] = d
	}

	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		d, isDirective := byLine[i+1]
		if !isDirective {
			out = append(out, line)
			continue
		}

		replacement, expanded := s.expand(ctx, d, ancestors, depth, maxDepth, result)
		if !expanded {
			// Failed expansions keep the directive line verbatim so the
			// output still shows what was requested.
			out = append(out, line)
			continue
		}
		out = append(out, replacement...)
	}

	result.Content = strings.Join(out, "\n")
	return result
}

// expand resolves a single directive, appending the subtree's paths and
// errors to result. Returns the replacement lines and true on success.
func (s *ResolverService) expand(ctx context.Context, d domain.Directive, ancestors map[string]struct{}, depth, maxDepth int, result *domain.ResolveResult) ([]string, bool) {
	if depth >= maxDepth {
		logger.Debug("depth limit hit at %s (line %d)", d.ResolvedPath, d.LineNumber)
		result.Errors = append(result.Errors, domain.ResolveError{
			FilePath:   d.ResolvedPath,
			LineNumber: d.LineNumber,
			Message:    fmt.Sprintf("maximum include depth (%d) exceeded", maxDepth),
			Kind:       domain.ErrorKindMaxDepth,
		})
		return nil, false
	}

	if _, onBranch := ancestors[d.ResolvedPath]; onBranch {
		logger.Debug("circular include of %s (line %d)", d.ResolvedPath, d.LineNumber)
		result.Errors = append(result.Errors, domain.ResolveError{
			FilePath:   d.ResolvedPath,
			LineNumber: d.LineNumber,
			Message:    "file is already being expanded on this branch",
			Kind:       domain.ErrorKindCircularInclude,
		})
		return nil, false
	}

	if s.reader == nil {
		result.Errors = append(result.Errors, domain.ResolveError{
			FilePath:   d.ResolvedPath,
			LineNumber: d.LineNumber,
			Message:    domain.ErrReaderUnavailable.Error(),
			Kind:       domain.ErrorKindReadError,
		})
		return nil, false
	}

	content, err := s.reader.ReadFile(ctx, d.ResolvedPath)
	if err != nil {
		kind := domain.ErrorKindReadError
		if errors.Is(err, domain.ErrNotFound) {
			kind = domain.ErrorKindFileNotFound
		}
		result.Errors = append(result.Errors, domain.ResolveError{
			FilePath:   d.ResolvedPath,
			LineNumber: d.LineNumber,
			Message:    err.Error(),
			Kind:       kind,
		})
		return nil, false
	}

	result.IncludedPaths = append(result.IncludedPaths, d.ResolvedPath)

	// Extend a copy of the ancestor chain so sibling branches stay
	// independent of this one.
	branch := maps.Clone(ancestors)
	branch[d.ResolvedPath] = struct{}{}

	sub := s.resolve(ctx, content, d.ResolvedPath, filepath.Dir(d.ResolvedPath), branch, depth+1, maxDepth)
	result.IncludedPaths = append(result.IncludedPaths, sub.IncludedPaths...)
	result.Errors = append(result.Errors, sub.Errors...)

	return strings.Split(sub.Content, "\n"), true
}
