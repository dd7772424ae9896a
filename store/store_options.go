package store

// Parameters of the Store.
type Parameters struct {
	metrics bool
}

// Option configures Parameters.
type Option func(*Parameters)

// DefaultParameters returns the default configuration values for the Store.
func DefaultParameters() *Parameters {
	return &Parameters{}
}

func (p *Parameters) Validate() error {
	return nil
}

// WithMetrics enables otel metrics of the Store.
func WithMetrics() Option {
	return func(p *Parameters) {
		p.metrics = true
	}
}
