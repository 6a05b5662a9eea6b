package codegen

import (
	"github.com/realmgen/realmgen/internal/codegen/swift"
)

// DefaultRegistry is the global registry instance with pre-registered generators
var DefaultRegistry = NewRegistry()

func init() {
	// Register Swift generator. The declaration mapping is fixed to Swift's
	// Realm model form, so this is the only registered target.
	DefaultRegistry.Register("swift", func(opts Options) Generator {
		return swift.NewGenerator(swift.Options{
			Namespace:                opts.Namespace,
			PassthroughCustomScalars: opts.PassthroughCustomScalars,
			CustomScalarsPrefix:      opts.CustomScalarsPrefix,
		})
	})
}
