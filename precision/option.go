package precision

import "go.uber.org/zap"

// Option configures an Array.
type Option func(a *Array)

// WithLogger sets the logger used for debug output. The default discards
// everything.
func WithLogger(log *zap.Logger) Option {
	return func(a *Array) {
		if log != nil {
			a.log = log
		}
	}
}
