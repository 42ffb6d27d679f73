package sol

import "sync"

// writerPool reuses Writers for encoding documents whose bytes are copied
// out immediately (WriteTo, MarshalTo). This reduces GC pressure by avoiding
// a fresh buffer per document.
var writerPool = sync.Pool{
	New: func() any {
		// A 4KB default covers the common small shared object.
		return NewWriter(make([]byte, 0, 4096))
	},
}

func getWriter() *Writer {
	w := writerPool.Get().(*Writer)
	w.Reset()
	return w
}

func putWriter(w *Writer) {
	// Don't keep a huge buffer around because of one huge document.
	if cap(w.b) > 1<<20 {
		return
	}
	writerPool.Put(w)
}
