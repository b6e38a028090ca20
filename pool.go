package jasonify

import "sync"

// maxPooledWriter bounds the buffer size kept in the pool so one huge
// document does not pin memory forever.
const maxPooledWriter = 64 << 10

var writerPool = sync.Pool{New: func() any { return NewWriter() }}

// AcquireWriter returns a reset Writer from the pool. Hand it back with
// ReleaseWriter once its output has been copied out.
func AcquireWriter() *Writer {
	w := writerPool.Get().(*Writer)
	w.Reset()
	return w
}

// ReleaseWriter returns w to the pool. w must not be used afterwards.
func ReleaseWriter(w *Writer) {
	if w == nil || cap(w.buf) > maxPooledWriter {
		return
	}
	writerPool.Put(w)
}
