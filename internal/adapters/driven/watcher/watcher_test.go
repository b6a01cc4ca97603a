package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/weld-cli/internal/adapters/driven/reader"
	"github.com/custodia-labs/weld-cli/internal/core/domain"
	"github.com/custodia-labs/weld-cli/internal/core/services"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

// waitForContent drains the channel until a document with the expected
// content arrives or the deadline passes.
func waitForContent(t *testing.T, ch <-chan *domain.ComposedDocument, want string) *domain.ComposedDocument {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case doc, ok := <-ch:
			require.True(t, ok, "channel closed before expected content arrived")
			if doc.Content == want {
				return doc
			}
		case <-deadline:
			t.Fatalf("timed out waiting for content %q", want)
		}
	}
}

func TestTreeWatcher_InitialResolution(t *testing.T) {
	dir := t.TempDir()
	entry := filepath.Join(dir, "entry.md")
	writeFile(t, entry, "hello\n@include frag.md")
	writeFile(t, filepath.Join(dir, "frag.md"), "fragment")

	resolver := services.NewResolverService(reader.New(), 0)
	w := New(resolver, entry)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	docs, err := w.Watch(ctx)
	require.NoError(t, err)

	doc := waitForContent(t, docs, "hello\nfragment")
	assert.Equal(t, entry, doc.EntryPath)
	assert.True(t, doc.Clean())
}

func TestTreeWatcher_ReResolvesOnFragmentChange(t *testing.T) {
	dir := t.TempDir()
	entry := filepath.Join(dir, "entry.md")
	frag := filepath.Join(dir, "frag.md")
	writeFile(t, entry, "@include frag.md")
	writeFile(t, frag, "before")

	resolver := services.NewResolverService(reader.New(), 0)
	w := New(resolver, entry)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	docs, err := w.Watch(ctx)
	require.NoError(t, err)

	waitForContent(t, docs, "before")

	writeFile(t, frag, "after")
	waitForContent(t, docs, "after")
}

func TestTreeWatcher_PicksUpNewInclude(t *testing.T) {
	dir := t.TempDir()
	entry := filepath.Join(dir, "entry.md")
	writeFile(t, entry, "plain")

	resolver := services.NewResolverService(reader.New(), 0)
	w := New(resolver, entry)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	docs, err := w.Watch(ctx)
	require.NoError(t, err)

	waitForContent(t, docs, "plain")

	writeFile(t, filepath.Join(dir, "frag.md"), "added")
	writeFile(t, entry, "@include frag.md")
	doc := waitForContent(t, docs, "added")
	assert.Equal(t, []string{filepath.Join(dir, "frag.md")}, doc.IncludedPaths)
}

func TestTreeWatcher_ClosesOnCancel(t *testing.T) {
	dir := t.TempDir()
	entry := filepath.Join(dir, "entry.md")
	writeFile(t, entry, "content")

	resolver := services.NewResolverService(reader.New(), 0)
	w := New(resolver, entry)

	ctx, cancel := context.WithCancel(context.Background())
	docs, err := w.Watch(ctx)
	require.NoError(t, err)

	waitForContent(t, docs, "content")
	cancel()

	deadline := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-docs:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel not closed after cancel")
		}
	}
}
