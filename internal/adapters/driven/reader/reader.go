// Package reader implements the driven.FileReader port against the local
// filesystem.
package reader

import (
	"context"
	"fmt"
	"os"

	"github.com/custodia-labs/weld-cli/internal/core/domain"
	"github.com/custodia-labs/weld-cli/internal/core/ports/driven"
)

// Ensure FileReader implements the interface.
var _ driven.FileReader = (*FileReader)(nil)

// FileReader reads document text from the local filesystem.
// It is stateless and safe for concurrent use.
type FileReader struct{}

// New creates a new filesystem reader.
func New() *FileReader {
	return &FileReader{}
}

// ReadFile returns the content of the file at path.
// A missing file wraps domain.ErrNotFound so the resolver can classify
// it separately from other I/O failures.
func (r *FileReader) ReadFile(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%s: %w", path, domain.ErrNotFound)
		}
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	return string(data), nil
}
