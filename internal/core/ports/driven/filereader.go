package driven

import "context"

// FileReader is the read capability injected into the resolver.
//
// Implementations must distinguish a missing file from other I/O failures
// by wrapping domain.ErrNotFound, so the resolver can classify the two
// cases separately. Implementations are treated as stateless and
// reentrant; the core never serialises access to them.
type FileReader interface {
	// ReadFile returns the text content of the file at the given
	// absolute path. A missing file is reported as an error matching
	// errors.Is(err, domain.ErrNotFound).
	ReadFile(ctx context.Context, path string) (string, error)
}

// FileReaderFunc adapts a plain function to the FileReader interface.
type FileReaderFunc func(ctx context.Context, path string) (string, error)

// ReadFile implements FileReader.
func (f FileReaderFunc) ReadFile(ctx context.Context, path string) (string, error) {
	return f(ctx, path)
}
