// Package domain defines the core business entities for Weld.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Directive: A recognised @include line requesting substitution
//   - ScanResult: The outcome of scanning one block of text
//   - ResolveResult: The outcome of one recursive resolution walk
//   - ComposedDocument: A fully merged document ready for output
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
