package opt

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLineSize is the size of a cache line in bytes.
// It's automatically calculated using the `golang.org/x/sys` package.
// Chain allocations are sized so that a freshly allocated chain fills
// whole cache lines.
const CacheLineSize = unsafe.Sizeof(cpu.CacheLinePad{})
