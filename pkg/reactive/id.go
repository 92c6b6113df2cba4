package reactive

import "sync/atomic"

// globalIDCounter is the source of unique IDs for owners, listeners and
// handles. IDs are monotonically increasing and never reused.
var globalIDCounter uint64

// NextID returns the next unique ID.
func NextID() uint64 {
	return atomic.AddUint64(&globalIDCounter, 1)
}
