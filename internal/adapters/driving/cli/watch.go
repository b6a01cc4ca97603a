package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/weld-cli/internal/adapters/driven/watcher"
)

var watchOutput string

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-resolve a document whenever its fragments change",
	Long: `Watches the document and every file it includes, re-resolving after
each change until interrupted. With --output the merged result is
rewritten on every change, which keeps a composed file continuously in
sync with its fragments.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", "", "rewrite merged content to a file on every change")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if resolverService == nil {
		return errors.New("resolver service not configured")
	}

	abs, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	docs, err := watcher.New(resolverService, abs).Watch(ctx)
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}

	for doc := range docs {
		if watchOutput != "" {
			if err := os.WriteFile(watchOutput, []byte(doc.Content), 0644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			cmd.Printf("wrote %s: %d included file(s), %d error(s)\n",
				watchOutput, len(doc.IncludedPaths), len(doc.Errors))
		} else {
			cmd.Printf("resolved %s: %d included file(s), %d error(s)\n",
				doc.EntryPath, len(doc.IncludedPaths), len(doc.Errors))
		}
		printDiagnostics(cmd, doc.Errors)
	}

	return nil
}
