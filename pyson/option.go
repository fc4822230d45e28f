package pyson

// Option applies a configuration option to a decoder.
type Option func(decoder) decoder

// decoder holds the settings of a single decode call.
type decoder struct {
	uniqueKeys bool
}

// makeDecoder returns the default decoder with opts applied.
func makeDecoder(opts ...Option) decoder {
	var d decoder

	for _, opt := range opts {
		d = opt(d)
	}

	return d
}

// WithUniqueKeys returns an option that controls duplicate key handling.
//
// By default a later record silently replaces an earlier record with the
// same key. When enable is true, a repeated key fails the decode with a
// [ParseError] wrapping [ErrDuplicateKey].
func WithUniqueKeys(enable bool) Option {
	return func(d decoder) decoder {
		d.uniqueKeys = enable

		return d
	}
}
