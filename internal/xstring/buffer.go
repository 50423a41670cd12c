package xstring

import (
	"bytes"
	"sync"
)

type buffer struct {
	bytes.Buffer
}

var buffersPool = sync.Pool{New: func() interface{} {
	return &buffer{}
}}

// Free returns buffer to the pool. Buffer must not be used after Free.
func (b *buffer) Free() {
	b.Reset()
	buffersPool.Put(b)
}

// Buffer returns an empty buffer from the pool.
func Buffer() *buffer {
	val, ok := buffersPool.Get().(*buffer)
	if !ok {
		val = &buffer{}
	}

	return val
}
