// Package drift provides concept drift detection for numeric data streams.
//
// The core type is ADWIN (Adaptive Windowing), which maintains a
// variable-length sliding window over the stream and reports a change
// whenever the mean of the recent data diverges from the mean of the older
// data by more than a confidence-bounded threshold. On detection the stale
// prefix of the window is discarded, so subsequent statistics reflect only
// fresh data. The window is stored as an exponential histogram, keeping
// both memory and update cost logarithmic in the window width.
package drift

import (
	"math"
	"sync"

	"github.com/YuminosukeSato/adwin/pkg/errors"
	"github.com/YuminosukeSato/adwin/pkg/log"
)

// ADWIN implements adaptive-windowing drift detection.
// A. Bifet, R. Gavalda (2007) "Learning from time-changing data with
// adaptive windowing".
//
// An ADWIN instance monitors exactly one stream fed strictly sequentially;
// to watch several streams, create one detector per stream.
type ADWIN struct {
	// Hyperparameters
	delta              float64 // confidence parameter (smaller = less sensitive)
	maxBuckets         int     // buckets per row before a merge is forced
	minClock           int     // insertions between reduction attempts
	minLengthWindow    int     // minimum width before reduction runs
	minLengthSubWindow int     // minimum sub-window size eligible for a cut

	// Window aggregates. The engine is the sole owner of these scalars;
	// every bucket-level mutation goes through its methods so the
	// aggregates and the histogram never disagree.
	width        int     // original values currently retained
	total        float64 // sum of retained values
	variance     float64 // accumulated sum of squared deviations
	bucketNumber int     // buckets across all rows
	time         int     // values ever fed

	chain *bucketRowChain

	logger      log.Logger
	warnOnDrift bool

	mu sync.RWMutex
}

// NewADWIN creates a new ADWIN detector. Degenerate configuration
// (delta outside (0,1), maxBuckets < 1, minClock < 1, negative window
// minimums) is rejected with a ValidationError.
func NewADWIN(options ...ADWINOption) (*ADWIN, error) {
	a := &ADWIN{
		delta:              DefaultDelta,
		maxBuckets:         DefaultMaxBuckets,
		minClock:           DefaultMinClock,
		minLengthWindow:    DefaultMinLengthWindow,
		minLengthSubWindow: DefaultMinLengthSubWindow,
		logger:             log.NewNopLogger(),
	}

	for _, opt := range options {
		opt(a)
	}

	if err := a.validate(); err != nil {
		return nil, err
	}

	a.chain = newBucketRowChain(a.maxBuckets)
	return a, nil
}

// Update feeds one observation and reports whether a distribution change
// was detected. On detection the window has already been shrunk; read the
// surviving statistics through GetWidth and GetMean.
//
// NaN and Inf inputs violate the caller contract; they are reported
// through the warning handler and then processed deterministically rather
// than corrupting state silently.
func (a *ADWIN) Update(value float64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.time++
	if err := errors.CheckScalar("ADWIN.Update", value, a.time); err != nil {
		errors.Warn(err)
	}

	a.insertElement(value)
	changed := a.reduceWindow()

	if changed {
		a.logger.Info("change detected",
			log.DetectorNameKey, "ADWIN",
			log.TimeKey, a.time,
			log.WidthKey, a.width,
			log.MeanKey, a.mean(),
		)
		if a.warnOnDrift {
			errors.Warn(errors.NewDriftWarning("ADWIN", a.width, a.mean(), a.time))
		}
	}
	return changed
}

// insertElement appends the value as a size-1 bucket at the head row and
// folds it into the running aggregates, then restores the bucket cap.
func (a *ADWIN) insertElement(value float64) {
	a.width++
	a.chain.head().insert(value, 0)
	a.bucketNumber++

	// Incremental variance. The mean must be taken over the previous
	// total, before value is added.
	if a.width > 1 {
		prevMean := a.total / float64(a.width-1)
		a.variance += float64(a.width-1) * (value - prevMean) * (value - prevMean) / float64(a.width)
	}
	a.total += value

	a.compressBuckets()
}

// compressBuckets cascades merges from the head toward the tail until no
// row holds more than maxBuckets buckets. Merging the two oldest buckets
// of row i produces one bucket of 2^(i+1) values in row i+1; the combined
// variance adds the between-bucket term of the parallel combination
// formula, so aggregate statistics are preserved exactly.
func (a *ADWIN) compressBuckets() {
	for i := 0; i < len(a.chain.rows); i++ {
		if a.chain.row(i).size != a.maxBuckets+1 {
			break
		}

		if i == a.chain.last() {
			a.chain.addToTail()
		}
		row := a.chain.row(i)
		next := a.chain.row(i + 1)

		n := float64(int(1) << uint(i)) // values per bucket at this level
		u0 := row.total[0] / n
		u1 := row.total[1] / n
		externalVariance := n * n * (u0 - u1) * (u0 - u1) / (n + n)

		next.insert(row.total[0]+row.total[1], row.variance[0]+row.variance[1]+externalVariance)
		row.drop(2)
		a.bucketNumber--

		if next.size <= a.maxBuckets {
			break
		}
	}
}

// reduceWindow runs the cut test every minClock insertions once the window
// is long enough. The scan walks the histogram from the oldest bucket
// toward the newest, accumulating the candidate prefix (n0, u0); after any
// deletion the whole scan restarts because the aggregates changed.
// Several cuts may fire from a single call.
func (a *ADWIN) reduceWindow() bool {
	if a.time%a.minClock != 0 || a.width <= a.minLengthWindow {
		return false
	}

	changed := false
	reduced := true
	for reduced {
		reduced = false
		exit := false

		n0, n1 := 0, a.width
		u0, u1 := 0.0, a.total

		for i := a.chain.last(); i >= 0 && !exit; i-- {
			row := a.chain.row(i)
			bucketSize := 1 << uint(i)

			for k := 0; k < row.size; k++ {
				// The newest bucket cannot move to the prefix: that
				// would leave n1 == 0.
				if i == 0 && k == row.size-1 {
					exit = true
					break
				}

				n0 += bucketSize
				n1 -= bucketSize
				u0 += row.total[k]
				u1 -= row.total[k]

				if n0 > a.minLengthSubWindow+1 && n1 > a.minLengthSubWindow+1 &&
					a.cutFound(n0, n1, u0/float64(n0)-u1/float64(n1)) {
					reduced = true
					changed = true
					if a.width > 0 {
						dropped := a.deleteElement()
						a.logger.Debug("window reduced",
							log.OperationKey, "reduce",
							log.DroppedKey, dropped,
							log.WidthKey, a.width,
						)
						exit = true
						break
					}
				}
			}
		}
	}
	return changed
}

// cutFound evaluates the Hoeffding-style confidence test for a candidate
// split with prefix count n0 and suffix count n1.
func (a *ADWIN) cutFound(n0, n1 int, diff float64) bool {
	m := 1/float64(n0-a.minLengthSubWindow+1) + 1/float64(n1-a.minLengthSubWindow+1)
	d := math.Log(2 * math.Log(float64(a.width)) / a.delta)
	variance := a.variance / float64(a.width)
	if variance < 0 {
		// Incremental add/subtract can leave a tiny negative residue;
		// clamp before the sqrt.
		variance = 0
	}
	epsilon := math.Sqrt(2*m*variance*d) + 2.0/3.0*m*d
	return math.Abs(diff) > epsilon
}

// deleteElement removes the single oldest bucket and returns the number of
// original values it represented. The bucket's contribution to the window
// variance is removed with the inverse of the parallel combination used by
// compressBuckets.
func (a *ADWIN) deleteElement() int {
	row := a.chain.tail()
	deleted := 1 << uint(a.chain.last())

	a.width -= deleted
	a.total -= row.total[0]
	deletedMean := row.total[0] / float64(deleted)

	incrementalVariance := row.variance[0] + float64(deleted)*float64(a.width)*
		(deletedMean-a.total/float64(a.width))*(deletedMean-a.total/float64(a.width))/
		(float64(deleted)+float64(a.width))
	a.variance -= incrementalVariance

	row.drop(1)
	a.bucketNumber--
	if row.size == 0 {
		a.chain.removeFromTail()
	}
	return deleted
}

// mean returns total/width without locking; callers hold the mutex.
func (a *ADWIN) mean() float64 {
	return errors.SafeDivide(a.total, float64(a.width))
}

// GetWidth returns the number of original values currently retained.
func (a *ADWIN) GetWidth() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.width
}

// GetTotal returns the sum of the retained values.
func (a *ADWIN) GetTotal() float64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.total
}

// GetMean returns the current window mean, or 0 for an empty window.
func (a *ADWIN) GetMean() float64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.mean()
}

// GetVariance returns the variance of the retained values, or 0 for an
// empty window.
func (a *ADWIN) GetVariance() float64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.width == 0 {
		return 0
	}
	return a.variance / float64(a.width)
}

// GetNumberOfBuckets returns the number of histogram buckets across all
// rows. It grows as O(maxBuckets * log(width)) regardless of stream
// length.
func (a *ADWIN) GetNumberOfBuckets() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.bucketNumber
}

// GetTime returns the count of values ever fed to the detector.
func (a *ADWIN) GetTime() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.time
}

// Reset restores the detector to its freshly constructed state, keeping
// the configuration.
func (a *ADWIN) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.width = 0
	a.total = 0
	a.variance = 0
	a.bucketNumber = 0
	a.time = 0
	a.chain = newBucketRowChain(a.maxBuckets)

	a.logger.Debug("detector reset",
		log.DetectorNameKey, "ADWIN",
		log.OperationKey, "reset",
	)
}

// compile-time interface check
var _ Detector = (*ADWIN)(nil)
