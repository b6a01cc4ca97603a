// Package cli implements the weld command-line interface.
//
// Commands are package-level cobra commands registered with the root in
// their init functions. Services are wired lazily on first run so tests
// can inject fakes by assigning the service variables directly.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/weld-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/weld-cli/internal/adapters/driven/reader"
	"github.com/custodia-labs/weld-cli/internal/core/ports/driving"
	"github.com/custodia-labs/weld-cli/internal/core/services"
	"github.com/custodia-labs/weld-cli/internal/logger"
)

// version is set via Execute.
var version = "dev"

// Services consumed by the commands. Wired by initServices, replaced
// directly in tests.
var (
	resolverService driving.ResolverService
	settingsService driving.SettingsService
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "weld",
	Short: "Compose documents from @include fragments",
	Long: `Weld merges text documents composed from fragments.

A document pulls in shared fragments with @include directives:

  @include ./shared/style-guide.md
  @include ~/fragments/signature.md
  @include /etc/weld/footer.md

weld resolves every directive recursively, splices the referenced file
contents into a single merged document, and reports missing files,
cycles, and malformed directives without giving up on the rest of the
document.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging to stderr")
}

// initServices wires filesystem adapters into the core services.
// Already-assigned services (tests) are left alone.
func initServices() error {
	if settingsService == nil {
		configStore, err := file.NewConfigStore("")
		if err != nil {
			return fmt.Errorf("open config store: %w", err)
		}
		settingsService = services.NewSettingsService(configStore)
	}

	if resolverService == nil {
		settings, err := settingsService.Get()
		if err != nil {
			return fmt.Errorf("load settings: %w", err)
		}
		resolverService = services.NewResolverService(reader.New(), settings.Resolver.MaxDepth)
	}

	return nil
}

// Execute runs the root command with the given build version.
func Execute(v string) error {
	if v != "" {
		version = v
	}
	return rootCmd.Execute()
}
