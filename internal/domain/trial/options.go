package trial

// Option applies a configuration option to the Validator.
type Option func(*Validator)

// WithNegativeLoadAllowed accepts rows whose additional load is negative.
// Some datasets encode assisted jumps (elastic bands) as negative load; the
// default is to reject them as invalid data.
func WithNegativeLoadAllowed(allow bool) Option {
	return func(v *Validator) {
		v.allowNegativeLoad = allow
	}
}
