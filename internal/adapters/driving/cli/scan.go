package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/weld-cli/internal/core/domain"
)

var scanJSON bool

var scanCmd = &cobra.Command{
	Use:   "scan [file]",
	Short: "List include directives without resolving them",
	Long: `Scans a document for @include directives and lists the files they
point at, without reading any of them. Malformed directives are
reported as warnings.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "print the scan result as JSON")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	if resolverService == nil {
		return errors.New("resolver service not configured")
	}

	abs, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return fmt.Errorf("read %s: %w", abs, err)
	}

	result := resolverService.Scan(string(data), filepath.Dir(abs))

	if scanJSON {
		out := struct {
			Directives []domain.Directive `json:"directives"`
			Errors     []domain.ScanError `json:"errors,omitempty"`
		}{result.Directives, result.Errors}

		encoded, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("encode scan result: %w", err)
		}
		cmd.Println(string(encoded))
		return nil
	}

	for _, d := range result.Directives {
		cmd.Printf("%4d  %s\n", d.LineNumber, d.ResolvedPath)
	}
	for _, e := range result.Errors {
		fmt.Fprintln(cmd.ErrOrStderr(), formatResolveError(domain.ResolveError{
			FilePath:   abs,
			LineNumber: e.LineNumber,
			Message:    e.Message,
			Kind:       domain.ErrorKindParseError,
		}, useColor()))
	}

	return nil
}
