// Package options provides the interface that custom options must implement to be
// applied to a client factory at creation time.
package options

// NewFactoryOption interface contains functions that should be implemented by any
// custom option to qualify as a factory creation option.
// Example:
// ```
//
//	type TimeoutOption struct {
//		timeout time.Duration
//	}
//	func (o *TimeoutOption) Apply(f *aws.Factory) {
//		...
//	}
//	func (o *TimeoutOption) NewFactoryOptionName() string {
//		return "timeout"
//	}
//
// ```
type NewFactoryOption[T any] interface {
	// Apply applies the option to the factory
	Apply(factory *T)

	// NewFactoryOptionName returns the name of the option
	NewFactoryOptionName() string
}

// ApplyOptions applies options to the factory
func ApplyOptions[T any](factory *T, opts ...NewFactoryOption[T]) {
	for _, opt := range opts {
		opt.Apply(factory)
	}
}
