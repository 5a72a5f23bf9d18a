package gokml

import (
	"log/slog"

	"github.com/reoring/gokml/tree"
)

// Verbosity controls how much optional content serialization emits.
type Verbosity int

const (
	// Normal, the default, emits set fields but omits values equal to the
	// registered default, so parse-filled defaults never alter a document.
	Normal Verbosity = iota
	// Verbose also emits registered defaults for unset fields.
	Verbose
)

// DefaultPrecision is the number of decimal places used for coordinate
// output when SerializeOptions.Precision is zero.
const DefaultPrecision = 6

// ParseOptions bundles parsing options. The zero value is lenient parsing
// with the default registry and tree provider.
type ParseOptions struct {
	// Strict surfaces every structural error to the caller and aborts the
	// enclosing parse. Lenient parsing (the default) logs, substitutes the
	// registered default, and continues.
	Strict bool
	// Registry overrides the process-wide registry; tests inject isolated
	// registries here instead of relying on registration side effects.
	Registry *Registry
	// Provider overrides the default XML tree provider.
	Provider tree.Provider
	// Validator, when set together with Strict, validates the document
	// against an XML Schema before any element is interpreted.
	Validator *SchemaValidator
	// Logger receives lenient-mode warnings; defaults to slog.Default().
	Logger *slog.Logger
}

func (o ParseOptions) registry() *Registry {
	if o.Registry != nil {
		return o.Registry
	}
	return defaultRegistry
}

func (o ParseOptions) provider() tree.Provider {
	if o.Provider != nil {
		return o.Provider
	}
	return tree.Default()
}

func (o ParseOptions) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// SerializeOptions bundles serialization options. The zero value emits
// compact output with coordinates at DefaultPrecision.
type SerializeOptions struct {
	Prettyprint bool
	// Precision is the number of decimal places for coordinate output.
	// Zero means DefaultPrecision; negative means full precision.
	Precision int
	Verbosity Verbosity
	Registry  *Registry
	Provider  tree.Provider
}

func (o SerializeOptions) registry() *Registry {
	if o.Registry != nil {
		return o.Registry
	}
	return defaultRegistry
}

func (o SerializeOptions) provider() tree.Provider {
	if o.Provider != nil {
		return o.Provider
	}
	return tree.Default()
}

func (o SerializeOptions) precision() int {
	if o.Precision == 0 {
		return DefaultPrecision
	}
	return o.Precision
}

// Ptr returns a pointer to v; a convenience for optional literal fields.
func Ptr[T any](v T) *T { return &v }
