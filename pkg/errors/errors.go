// Package errors provides structured error handling and the warning system
// for the adwin library. Detector misconfiguration and numerical anomalies
// are surfaced as typed errors carrying stack traces, and non-fatal events
// (drift signals, unstable inputs) are routed through a global warning
// handler that integrates with zerolog.
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================

var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// Default handler logs to standard error.
		log.Printf("adwin-Warning: %v\n", w)
	}
	// zerolog warn func (lazily wired to avoid an import cycle with pkg/log)
	zerologWarnFunc func(warning error)
)

// SetWarningHandler sets the library-wide warning handler.
// It controls how non-fatal events such as DriftWarning are processed.
//
// Example:
//
//	errors.SetWarningHandler(func(w error) {
//	    // ignore warnings
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc sets the zerolog warning function (wired lazily to
// avoid an import cycle).
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn raises a warning. When a zerolog function has been wired it is
// preferred; otherwise the plain handler runs.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	Warning types
//
// ===========================================================================

// DriftWarning is raised when a drift detector reports that the
// distribution of the monitored stream has changed.
type DriftWarning struct {
	Detector string  // detector that fired, e.g. "ADWIN"
	Width    int     // window width after the stale prefix was discarded
	Mean     float64 // window mean after shrinking
	Time     int     // number of values fed when the change fired
}

func (w *DriftWarning) Error() string {
	return fmt.Sprintf("drift detected by %s at t=%d: window shrunk to width=%d (mean=%.6g)",
		w.Detector, w.Time, w.Width, w.Mean)
}

// MarshalZerologObject adds the structured warning fields to a zerolog event.
func (w *DriftWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("detector", w.Detector).
		Int("width", w.Width).
		Float64("mean", w.Mean).
		Int("time", w.Time).
		Str("type", "DriftWarning")
}

// NewDriftWarning creates a new DriftWarning.
func NewDriftWarning(detector string, width int, mean float64, time int) *DriftWarning {
	return &DriftWarning{Detector: detector, Width: width, Mean: mean, Time: time}
}

// ===========================================================================
//
//	Structured error types
//
// ===========================================================================

// ValidationError reports a detector parameter that failed validation at
// construction time. Degenerate configuration fails fast here rather than
// producing silently wrong drift decisions later.
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("adwin: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError creates a new ValidationError with a stack trace.
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// ValueError reports an argument whose value is invalid for an operation.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("adwin: %s: %s", e.Op, e.Message)
}

// NewValueError creates a new ValueError with a stack trace.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// NumericalInstabilityError reports NaN or Inf values observed during a
// numerical operation.
type NumericalInstabilityError struct {
	Operation string    // where it happened, e.g. "ADWIN.Update"
	Values    []float64 // offending values
	Time      int       // stream position when it happened
}

func (e *NumericalInstabilityError) Error() string {
	valStr := ""
	for i, v := range e.Values {
		if i > 0 {
			valStr += ", "
		}
		if i >= 5 {
			valStr += "..."
			break
		}
		valStr += fmt.Sprintf("%.6g", v)
	}
	return fmt.Sprintf("adwin: numerical instability detected in %s at t=%d. Values: [%s]",
		e.Operation, e.Time, valStr)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *NumericalInstabilityError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Operation).
		Floats64("values", e.Values).
		Int("time", e.Time).
		Str("type", "NumericalInstabilityError")
}

// NewNumericalInstabilityError creates a new NumericalInstabilityError with
// a stack trace.
func NewNumericalInstabilityError(operation string, values []float64, time int) error {
	err := &NumericalInstabilityError{Operation: operation, Values: values, Time: time}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As reports whether err can be cast to the target type.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an existing error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an existing error with a format string.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates an error with a stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// GetStacktrace extracts the stack trace recorded by cockroachdb/errors,
// or returns the empty string when none is attached.
func GetStacktrace(err error) string {
	safeDetails := errors.GetSafeDetails(err).SafeDetails
	if len(safeDetails) > 0 {
		return safeDetails[0]
	}
	return ""
}
