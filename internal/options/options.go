// Package options implements the generic functional-options plumbing shared
// by smile's EncodeOption, DecodeOption and stream configuration types. It
// has no SMILE-specific knowledge; it only knows how to apply a list of
// Option[T] to a target config struct.
package options

// Option configures a target of type T, returning an error if the
// configuration is invalid (e.g. a negative depth limit).
type Option[T any] interface {
	apply(T) error
}

// fn adapts a plain function into an Option.
type fn[T any] struct {
	apply_ func(T) error
}

func (f *fn[T]) apply(target T) error { return f.apply_(target) }

// New builds an Option from a function that can fail, such as one
// validating a user-supplied max-depth value.
func New[T any](f func(T) error) Option[T] {
	return &fn[T]{apply_: f}
}

// NoError builds an Option from a function that cannot fail, such as one
// flipping a boolean flag on a config struct.
func NoError[T any](f func(T)) Option[T] {
	return &fn[T]{apply_: func(target T) error {
		f(target)
		return nil
	}}
}

// Apply runs every option against target in order, stopping at the first
// error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
