package drift

// bucketRow holds the same-sized buckets of one exponential-histogram
// level. Every bucket in row i summarizes exactly 2^i original values; a
// bucket stores only its aggregate total and internal variance, never the
// raw values. Buckets are kept oldest-first in fixed-capacity parallel
// slices so inserting appends at size and dropping shifts left, with no
// per-bucket allocation.
type bucketRow struct {
	total    []float64 // bucket sums, oldest first
	variance []float64 // within-bucket variance contributions
	size     int       // occupied slots, in [0, maxBuckets+1]
}

func newBucketRow(maxBuckets int) bucketRow {
	return bucketRow{
		total:    make([]float64, maxBuckets+1),
		variance: make([]float64, maxBuckets+1),
		size:     0,
	}
}

// insert appends a bucket at the newest end of the row.
func (r *bucketRow) insert(total, variance float64) {
	r.total[r.size] = total
	r.variance[r.size] = variance
	r.size++
}

// drop removes the n oldest buckets, shifting the remainder left and
// zeroing the freed slots.
func (r *bucketRow) drop(n int) {
	for k := n; k < r.size; k++ {
		r.total[k-n] = r.total[k]
		r.variance[k-n] = r.variance[k]
	}
	for k := r.size - n; k < r.size; k++ {
		r.total[k] = 0
		r.variance[k] = 0
	}
	r.size -= n
}

// bucketRowChain is the ordered sequence of histogram rows. The slice
// index is the row level: rows[0] is the head (newest, finest buckets)
// and rows[len-1] is the tail (oldest, coarsest). Rows are appended only
// when compression cascades past the current tail and removed only when a
// deletion empties the tail, so the levels always form the contiguous
// range [0, last]. Addressing rows by index avoids pointer links entirely;
// callers must re-fetch a row after addToTail since append may move the
// backing array.
type bucketRowChain struct {
	rows       []bucketRow
	maxBuckets int
}

func newBucketRowChain(maxBuckets int) *bucketRowChain {
	c := &bucketRowChain{maxBuckets: maxBuckets}
	c.rows = append(c.rows, newBucketRow(maxBuckets))
	return c
}

// row returns the row at level i.
func (c *bucketRowChain) row(i int) *bucketRow {
	return &c.rows[i]
}

// head returns the finest row (level 0).
func (c *bucketRowChain) head() *bucketRow {
	return &c.rows[0]
}

// tail returns the coarsest row (highest level).
func (c *bucketRowChain) tail() *bucketRow {
	return &c.rows[len(c.rows)-1]
}

// last returns the level of the tail row.
func (c *bucketRowChain) last() int {
	return len(c.rows) - 1
}

// addToTail extends the chain with a new empty row one level above the
// current tail.
func (c *bucketRowChain) addToTail() {
	c.rows = append(c.rows, newBucketRow(c.maxBuckets))
}

// removeFromTail drops the tail row. Only called once the row is empty.
func (c *bucketRowChain) removeFromTail() {
	c.rows = c.rows[:len(c.rows)-1]
}
