package codec

// DefaultMaxComponents bounds the component count accepted by Decode.
const DefaultMaxComponents = 1 << 24

type options struct {
	compression   Compression
	maxComponents int
	logger        *Logger
}

func defaultOptions() options {
	return options{
		compression:   CompressionNone,
		maxComponents: DefaultMaxComponents,
		logger:        NoopLogger(),
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Option configures Encode and Decode.
type Option func(*options)

// WithCompression selects the block compression used by Encode.
// Decode reads the algorithm from the header and ignores this option.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithMaxComponents bounds the component count Decode accepts before
// allocating. A negative value removes the bound.
func WithMaxComponents(n int) Option {
	return func(o *options) {
		o.maxComponents = n
	}
}

// WithLogger sets the logger used to report encode and decode operations.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
