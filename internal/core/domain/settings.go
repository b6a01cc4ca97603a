package domain

// DefaultMaxDepth is the default limit on include nesting.
// A chain of exactly this many nested includes still resolves.
const DefaultMaxDepth = 10

// AppSettings holds user-configurable application settings.
type AppSettings struct {
	Resolver ResolverSettings
	Output   OutputSettings
}

// ResolverSettings configures the include resolution walk.
type ResolverSettings struct {
	// MaxDepth is the maximum include nesting depth.
	MaxDepth int
}

// OutputSettings configures CLI output rendering.
type OutputSettings struct {
	// Color enables styled diagnostics on stderr.
	Color bool
}

// IsValid returns true if the resolver settings are usable.
func (s ResolverSettings) IsValid() bool {
	return s.MaxDepth > 0
}

// DefaultAppSettings returns the default application settings.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Resolver: ResolverSettings{
			MaxDepth: DefaultMaxDepth,
		},
		Output: OutputSettings{
			Color: true,
		},
	}
}
