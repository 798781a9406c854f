package prefab

// LoadOption configures a single Load call. Configuration is
// per-call: nothing persists between loads.
//
// Example:
//
//	scene, err := prefab.Load(text,
//	    prefab.WithImplicitOptional(),
//	    prefab.WithStrictFields(),
//	)
type LoadOption func(*loadOptions)

// loadOptions holds the effective configuration of one load.
type loadOptions struct {
	implicitOptional bool
	failFast         bool
	strictFields     bool
}

// defaultLoadOptions returns the default load configuration:
// explicit optionals, collect-all validation, unknown fields ignored.
func defaultLoadOptions() loadOptions {
	return loadOptions{}
}

// WithImplicitOptional enables implicit-optional mode: optional
// values may be written bare, without a Some wrapper. (Omitting an
// optional field means absent in either mode.) The document's own
// #![enable(implicit_some)] directive enables the same mode for that
// document; the option makes it unconditional.
func WithImplicitOptional() LoadOption {
	return func(o *loadOptions) {
		o.implicitOptional = true
	}
}

// WithFailFast makes validation stop at the first invariant
// violation instead of collecting every violation in the document.
// The violation reported is the first in document order either way.
func WithFailFast() LoadOption {
	return func(o *loadOptions) {
		o.failFast = true
	}
}

// WithStrictFields turns unknown record fields into errors. By
// default unknown fields are skipped, for forward compatibility with
// documents written against a newer schema, and reported at debug
// level through the package logger.
func WithStrictFields() LoadOption {
	return func(o *loadOptions) {
		o.strictFields = true
	}
}
