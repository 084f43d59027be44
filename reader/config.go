package reader

import (
	"github.com/jhosmer/gosmile/errs"
	"github.com/jhosmer/gosmile/internal/options"
)

// Config holds the per-document settings controlling how a Reader parses
// its input. When ExpectHeader is false the Reader never looks for the
// four-byte header and instead starts directly in the value state using
// SharedNames/SharedValues/Raw7Bit as given here, per the wire format's
// documented headerless default (names on, values off, raw off).
type Config struct {
	ExpectHeader bool
	SharedNames  bool
	SharedValues bool
	Raw7Bit      bool
	MaxDepth     int
}

// DefaultConfig matches the headerless defaults the distilled spec
// mandates for a decoder given no header to read feature bits from.
func DefaultConfig() *Config {
	return &Config{
		ExpectHeader: true,
		SharedNames:  true,
		SharedValues: false,
		Raw7Bit:      true,
		MaxDepth:     1024,
	}
}

// Option configures a Reader's Config.
type Option = options.Option[*Config]

// WithExpectHeader controls whether the Reader requires and consumes the
// four-byte document header before decoding the first value.
func WithExpectHeader(enabled bool) Option {
	return options.NoError(func(c *Config) { c.ExpectHeader = enabled })
}

// WithHeaderlessSharedNames sets the assumed shared-names feature bit used
// when ExpectHeader is false.
func WithHeaderlessSharedNames(enabled bool) Option {
	return options.NoError(func(c *Config) { c.SharedNames = enabled })
}

// WithHeaderlessSharedValues sets the assumed shared-values feature bit
// used when ExpectHeader is false.
func WithHeaderlessSharedValues(enabled bool) Option {
	return options.NoError(func(c *Config) { c.SharedValues = enabled })
}

// WithHeaderlessRawBinary sets the assumed raw-binary feature bit used
// when ExpectHeader is false.
func WithHeaderlessRawBinary(enabled bool) Option {
	return options.NoError(func(c *Config) { c.Raw7Bit = !enabled })
}

// WithMaxDepth bounds container nesting during decode.
func WithMaxDepth(depth int) Option {
	return options.New(func(c *Config) error {
		if depth <= 0 {
			return errs.ErrInvalidOption
		}
		c.MaxDepth = depth
		return nil
	})
}
