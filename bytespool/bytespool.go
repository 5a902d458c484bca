// Package bytespool provides size-classed byte slice pools. The framing
// layer uses it for the transient prefix+payload buffer built on every
// send, so steady message traffic does not allocate per message.
package bytespool

import (
	"sync"
)

type (
	poolInfo struct {
		sz int
		p  *sync.Pool
	}
)

func newPoolInfo(sz int) *poolInfo {
	return &poolInfo{
		sz: sz,
		p: &sync.Pool{New: func() interface{} {
			return make([]byte, 0, sz)
		}},
	}
}

var pools = []*poolInfo{
	newPoolInfo(16),
	newPoolInfo(64),
	newPoolInfo(256),
	newPoolInfo(1024),
	newPoolInfo(4 * 1024),
	newPoolInfo(16 * 1024),
	newPoolInfo(64 * 1024),
}

// Alloc returns a slice of length sz from the smallest fitting pool, or
// a fresh allocation when sz exceeds every size class.
func Alloc(sz int) []byte {
	if sz <= 0 {
		return nil
	}

	for _, pi := range pools {
		if sz <= pi.sz {
			return pi.p.Get().([]byte)[:sz]
		}
	}
	return make([]byte, sz)
}

// Free returns p to its pool. Slices not allocated by Alloc are left to
// the garbage collector.
func Free(p []byte) {
	sz := cap(p)
	if sz <= 0 {
		return
	}
	for _, pi := range pools {
		if sz == pi.sz {
			pi.p.Put(p[:0])
			return
		}
	}
}
