package hill

// DefaultMaxKeyLength bounds key strings to 100 runes (a 10×10 key matrix).
// Determinant and inversion are factorial in the key order, so larger keys
// stop completing in interactive time.
const DefaultMaxKeyLength = 100

const panicMaxKeyLengthInvalid = "hill: WithMaxKeyLength: n must be >= 0"

// Option configures a Cipher.
type Option func(*Options)

// Options holds the effective Cipher configuration.
type Options struct {
	maxKeyLength int // 0 disables the limit
}

// MaxKeyLength returns the effective key length limit (0 means unlimited).
func (o Options) MaxKeyLength() int { return o.maxKeyLength }

// WithMaxKeyLength limits the key to n runes. Zero disables the limit.
// Panics when n is negative.
func WithMaxKeyLength(n int) Option {
	if n < 0 {
		panic(panicMaxKeyLengthInvalid)
	}

	return func(o *Options) { o.maxKeyLength = n }
}

// NewOptions resolves opts on top of the defaults.
func NewOptions(opts ...Option) Options {
	o := Options{maxKeyLength: DefaultMaxKeyLength}
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	return o
}
