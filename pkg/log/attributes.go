// Package log defines standard attribute keys for drift-detection
// operations.
//
// Using these keys consistently enables filtering and analysis of detector
// logs across a fleet of monitored streams. The keys follow a hierarchical
// naming convention (e.g., "detector.name", "window.width").
package log

// Detector and operation context.
const (
	// DetectorNameKey identifies the type of drift detector.
	// Examples: "ADWIN"
	DetectorNameKey = "detector.name"

	// DetectorDeltaKey records the configured confidence parameter.
	DetectorDeltaKey = "detector.delta"

	// OperationKey specifies the detector operation being performed.
	// Standard values: "update", "reduce", "reset"
	OperationKey = "drift.operation"
)

// Window state.
// These attributes describe the adaptive window at the moment of logging.
const (
	// WidthKey is the number of original values currently retained.
	WidthKey = "window.width"

	// MeanKey is the current window mean.
	MeanKey = "window.mean"

	// VarianceKey is the current window variance.
	VarianceKey = "window.variance"

	// BucketsKey is the number of histogram buckets across all rows.
	BucketsKey = "window.buckets"

	// DroppedKey is the number of original values discarded by a cut.
	DroppedKey = "window.dropped"
)

// Stream position.
const (
	// TimeKey is the count of values ever fed to the detector.
	TimeKey = "stream.time"

	// ValueKey is the most recent observation.
	ValueKey = "stream.value"
)

// Error context.
const (
	// ErrAttrKey is the key under which error values are logged.
	ErrAttrKey = "error"

	// StacktraceAttrKey carries the stack trace extracted from
	// cockroachdb/errors values.
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr pairs an error with the standard error key for field lists.
func ErrAttr(err error) []any {
	return []any{ErrAttrKey, err}
}
