package ambisonics

// Order limits
const (
	// maxSupportedOrder bounds the requested ambisonics order. The
	// recurrence is numerically sound well past this, but the working
	// array grows as O(L⁴) and practical ambisonics content stops far
	// below it.
	maxSupportedOrder = 64
)
