package drift

// Detector is the common interface for stream drift detectors.
type Detector interface {
	// Update feeds one observation and reports whether a distribution
	// change was detected.
	Update(value float64) bool

	// Reset restores the detector to its freshly constructed state.
	Reset()
}
