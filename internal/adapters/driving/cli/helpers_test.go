package cli

import (
	"testing"

	"github.com/custodia-labs/weld-cli/internal/adapters/driven/reader/memory"
	storagemem "github.com/custodia-labs/weld-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/weld-cli/internal/core/services"
)

// injectFakeServices wires the commands to in-memory services and returns
// the populated reader plus a restore function.
func injectServices(t *testing.T) (*memory.FileReader, func()) {
	t.Helper()

	originalResolver := resolverService
	originalSettings := settingsService

	fileReader := memory.NewFileReader()
	resolverService = services.NewResolverService(fileReader, 0)
	settingsService = services.NewSettingsService(storagemem.NewConfigStore())

	return fileReader, func() {
		resolverService = originalResolver
		settingsService = originalSettings
	}
}

// injectFakeServices is injectServices for tests that don't need the reader.
func injectFakeServices(t *testing.T) func() {
	t.Helper()
	_, restore := injectServices(t)
	return restore
}
