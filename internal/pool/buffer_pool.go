package pool

import (
	"sync"
)

// BufferPool implements a pool of byte slices for efficient memory reuse
type BufferPool struct {
	pool sync.Pool
	size int
}

// NewBufferPool creates a new buffer pool with buffers of the specified size
func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				buffer := make([]byte, 0, size)
				return &buffer
			},
		},
		size: size,
	}
}

// Get retrieves a buffer from the pool or creates a new one if none are available
func (bp *BufferPool) Get() *[]byte {
	return bp.pool.Get().(*[]byte)
}

// Put returns a buffer to the pool for reuse
func (bp *BufferPool) Put(buffer *[]byte) {
	// Reset buffer length but keep capacity
	*buffer = (*buffer)[:0]
	bp.pool.Put(buffer)
}

// RowPool implements a pool of int slices used as dynamic-programming rows
type RowPool struct {
	pool sync.Pool
	size int
}

// NewRowPool creates a new pool of int rows with the specified initial capacity
func NewRowPool(size int) *RowPool {
	return &RowPool{
		pool: sync.Pool{
			New: func() interface{} {
				row := make([]int, 0, size)
				return &row
			},
		},
		size: size,
	}
}

// Get retrieves a row of exactly n elements. The contents are unspecified.
func (rp *RowPool) Get(n int) *[]int {
	row := rp.pool.Get().(*[]int)
	if cap(*row) < n {
		*row = make([]int, n)
	} else {
		*row = (*row)[:n]
	}
	return row
}

// Put returns a row to the pool for reuse
func (rp *RowPool) Put(row *[]int) {
	*row = (*row)[:0]
	rp.pool.Put(row)
}
