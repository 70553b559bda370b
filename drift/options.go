package drift

import (
	"github.com/YuminosukeSato/adwin/pkg/errors"
	"github.com/YuminosukeSato/adwin/pkg/log"
)

// Default hyperparameters, from Bifet & Gavalda's reference setting.
const (
	DefaultDelta              = 0.002
	DefaultMaxBuckets         = 5
	DefaultMinClock           = 32
	DefaultMinLengthWindow    = 10
	DefaultMinLengthSubWindow = 5
)

// ADWINOption is an ADWIN configuration option.
type ADWINOption func(*ADWIN)

// WithDelta sets the confidence parameter (target false-positive rate).
// Smaller values demand larger mean differences before declaring a change.
// Must be in (0, 1).
func WithDelta(delta float64) ADWINOption {
	return func(a *ADWIN) {
		a.delta = delta
	}
}

// WithMaxBuckets sets the number of buckets a histogram row may hold
// before a merge into the next row is forced. Must be >= 1.
func WithMaxBuckets(n int) ADWINOption {
	return func(a *ADWIN) {
		a.maxBuckets = n
	}
}

// WithMinClock sets the number of insertions between reduction attempts.
// Must be >= 1.
func WithMinClock(n int) ADWINOption {
	return func(a *ADWIN) {
		a.minClock = n
	}
}

// WithMinLengthWindow sets the minimum window width before reduction runs.
func WithMinLengthWindow(n int) ADWINOption {
	return func(a *ADWIN) {
		a.minLengthWindow = n
	}
}

// WithMinLengthSubWindow sets the minimum sub-window size eligible for a
// cut.
func WithMinLengthSubWindow(n int) ADWINOption {
	return func(a *ADWIN) {
		a.minLengthSubWindow = n
	}
}

// WithLogger sets the structured logger for window events. The default is
// a nop logger.
func WithLogger(logger log.Logger) ADWINOption {
	return func(a *ADWIN) {
		a.logger = logger
	}
}

// WithWarnings enables emitting a DriftWarning through the global warning
// handler whenever a change is detected.
func WithWarnings(enabled bool) ADWINOption {
	return func(a *ADWIN) {
		a.warnOnDrift = enabled
	}
}

// validate rejects degenerate configuration at construction time.
func (a *ADWIN) validate() error {
	if a.delta <= 0 || a.delta >= 1 {
		return errors.NewValidationError("delta", "must be in (0, 1)", a.delta)
	}
	if a.maxBuckets < 1 {
		return errors.NewValidationError("maxBuckets", "must be >= 1", a.maxBuckets)
	}
	if a.minClock < 1 {
		return errors.NewValidationError("minClock", "must be >= 1", a.minClock)
	}
	if a.minLengthWindow < 0 {
		return errors.NewValidationError("minLengthWindow", "must be >= 0", a.minLengthWindow)
	}
	if a.minLengthSubWindow < 0 {
		return errors.NewValidationError("minLengthSubWindow", "must be >= 0", a.minLengthSubWindow)
	}
	if a.logger == nil {
		return errors.NewValidationError("logger", "must not be nil", nil)
	}
	return nil
}
