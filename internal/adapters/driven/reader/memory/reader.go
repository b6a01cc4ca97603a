// Package memory provides an in-memory driven.FileReader for testing the
// resolver without touching the filesystem.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/weld-cli/internal/core/domain"
	"github.com/custodia-labs/weld-cli/internal/core/ports/driven"
)

// Ensure FileReader implements the interface.
var _ driven.FileReader = (*FileReader)(nil)

// FileReader is an in-memory implementation of driven.FileReader.
// Paths are opaque keys; no normalisation happens here.
type FileReader struct {
	mu       sync.RWMutex
	files    map[string]string
	failures map[string]error
}

// NewFileReader creates an empty in-memory reader.
func NewFileReader() *FileReader {
	return &FileReader{
		files:    make(map[string]string),
		failures: make(map[string]error),
	}
}

// Put stores content under path.
func (r *FileReader) Put(path, content string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.files[path] = content
}

// FailWith makes reads of path return err, simulating an I/O failure
// that is not a missing file.
func (r *FileReader) FailWith(path string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures[path] = err
}

// ReadFile returns the stored content for path.
// Unknown paths wrap domain.ErrNotFound.
func (r *FileReader) ReadFile(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if err, ok := r.failures[path]; ok {
		return "", err
	}
	if content, ok := r.files[path]; ok {
		return content, nil
	}
	return "", fmt.Errorf("%s: %w", path, domain.ErrNotFound)
}
