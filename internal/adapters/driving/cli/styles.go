package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/weld-cli/internal/core/domain"
)

// Diagnostic styles. Parse and depth problems render as warnings,
// everything else as errors.
var (
	styleErrorKind = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")).Bold(true)
	styleWarnKind  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF")).Bold(true)
	stylePath      = lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4"))
	styleMuted     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
)

// formatResolveError renders one diagnostic line for stderr.
func formatResolveError(e domain.ResolveError, color bool) string {
	location := e.FilePath
	if e.LineNumber > 0 {
		location = fmt.Sprintf("%s:%d", e.FilePath, e.LineNumber)
	}

	if !color {
		return fmt.Sprintf("%s  %s  %s", e.Kind, location, e.Message)
	}

	kindStyle := styleErrorKind
	if e.Kind == domain.ErrorKindParseError || e.Kind == domain.ErrorKindMaxDepth {
		kindStyle = styleWarnKind
	}
	return fmt.Sprintf("%s  %s  %s",
		kindStyle.Render(e.Kind.String()),
		stylePath.Render(location),
		styleMuted.Render(e.Message))
}

// printDiagnostics writes every resolution error to the command's stderr.
func printDiagnostics(cmd *cobra.Command, errs []domain.ResolveError) {
	if len(errs) == 0 {
		return
	}
	color := useColor()
	for _, e := range errs {
		fmt.Fprintln(cmd.ErrOrStderr(), formatResolveError(e, color))
	}
}

// useColor consults the output settings; styling defaults to on.
func useColor() bool {
	if settingsService == nil {
		return true
	}
	settings, err := settingsService.Get()
	if err != nil {
		return true
	}
	return settings.Output.Color
}
