package writer

import (
	"github.com/jhosmer/gosmile/errs"
	"github.com/jhosmer/gosmile/internal/options"
)

// Config holds the per-document settings that control how a Writer emits
// its header and whether it maintains the two shared-string tables. It is
// exported so the top-level smile package's EncodeOption type can be a thin
// alias over Option[*Config].
type Config struct {
	WriteHeader  bool
	WriteEnd     bool
	SharedNames  bool
	SharedValues bool
	Raw7Bit      bool
	MaxDepth     int
}

// DefaultConfig matches the distilled spec's §6 defaults.
func DefaultConfig() *Config {
	return &Config{
		WriteHeader:  true,
		WriteEnd:     false,
		SharedNames:  true,
		SharedValues: true,
		Raw7Bit:      true,
		MaxDepth:     1024,
	}
}

// Option configures a Writer's Config.
type Option = options.Option[*Config]

// WithHeader controls whether WriteHeader is called implicitly by New.
func WithHeader(enabled bool) Option {
	return options.NoError(func(c *Config) { c.WriteHeader = enabled })
}

// WithEndMarker controls whether smile.Encode appends the optional 0xFF
// framing marker after the value.
func WithEndMarker(enabled bool) Option {
	return options.NoError(func(c *Config) { c.WriteEnd = enabled })
}

// WithSharedNames toggles the names back-reference table.
func WithSharedNames(enabled bool) Option {
	return options.NoError(func(c *Config) { c.SharedNames = enabled })
}

// WithSharedValues toggles the short string-value back-reference table.
func WithSharedValues(enabled bool) Option {
	return options.NoError(func(c *Config) { c.SharedValues = enabled })
}

// WithRaw7Bit controls whether binary payloads default to the 7-bit-safe
// encoding (true) or may use the raw-binary token (false), and whether the
// header advertises the raw-binary feature bit.
func WithRaw7Bit(enabled bool) Option {
	return options.NoError(func(c *Config) { c.Raw7Bit = enabled })
}

// WithMaxDepth bounds container nesting; exceeding it is an encode error.
func WithMaxDepth(depth int) Option {
	return options.New(func(c *Config) error {
		if depth <= 0 {
			return errs.ErrInvalidOption
		}
		c.MaxDepth = depth
		return nil
	})
}
