package Go_Collections

// Options shared by the containers of this module.
type Options struct {
	Logger Logger
}

// Option configures a container using the functional options pattern.
type Option func(*Options)

// DefaultOptions discards all logs.
func DefaultOptions() Options {
	return Options{Logger: DiscardLogger{}}
}

// Apply opts on top of DefaultOptions.
func Apply(opts ...Option) Options {
	o := DefaultOptions()
	for _, f := range opts {
		f(&o)
	}
	if o.Logger == nil {
		o.Logger = DiscardLogger{}
	}
	return o
}

// WithLogger sets the logger. Trees log rejected iterators at Warn and
// structural events at Debug.
func WithLogger(l Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
