package handler

import (
	"bytes"
	"sync"
)

// encodeBuffers recycles the scratch buffers respondJSON encodes into, so
// steady-state request handling stays allocation-light.
var encodeBuffers = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

func getBuffer() *bytes.Buffer {
	return encodeBuffers.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	encodeBuffers.Put(buf)
}
