package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/weld-cli/internal/logger"
)

var (
	resolveOutput string
	resolveJSON   bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [file]",
	Short: "Merge a document and its includes into one output",
	Long: `Recursively expands every @include directive in the given document and
prints the merged result. Failures (missing files, cycles, malformed
directives) are reported on stderr; the merged output still contains
everything that could be resolved.`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveOutput, "output", "o", "", "write merged content to a file instead of stdout")
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "print the full composition as JSON")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	if resolverService == nil {
		return errors.New("resolver service not configured")
	}

	doc, err := resolverService.ResolveFile(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("resolve failed: %w", err)
	}

	logger.Info("included %d file(s), %d error(s)", len(doc.IncludedPaths), len(doc.Errors))

	if resolveJSON {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("encode composition: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if resolveOutput != "" {
		if err := os.WriteFile(resolveOutput, []byte(doc.Content), 0644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	} else {
		cmd.Print(doc.Content)
		if !strings.HasSuffix(doc.Content, "\n") {
			cmd.Println()
		}
	}

	printDiagnostics(cmd, doc.Errors)

	if !doc.Clean() {
		return fmt.Errorf("resolved with %d error(s)", len(doc.Errors))
	}
	return nil
}
