/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package internal

import (
	"bytes"
	"fmt"
)

// BufferStream is an in-memory, closable io.ReadWriteCloser backed by a
// bytes.Buffer. It gives tests of the binio codec (WriteArrayTo,
// ReadArrayFrom) a round-trippable stream without touching the
// filesystem.
type BufferStream struct {
	buf    bytes.Buffer
	closed bool
}

// NewBufferStream creates a BufferStream, optionally seeded with initial
// contents to read back.
func NewBufferStream(initial ...[]byte) *BufferStream {
	bs := &BufferStream{}
	for _, b := range initial {
		bs.buf.Write(b)
	}
	return bs
}

// Write appends b to the stream. Returns an error once the stream has
// been closed.
func (bs *BufferStream) Write(b []byte) (int, error) {
	if bs.closed {
		return 0, fmt.Errorf("internal: write on closed BufferStream")
	}
	return bs.buf.Write(b)
}

// Read drains from the front of the stream. Returns an error once the
// stream has been closed.
func (bs *BufferStream) Read(b []byte) (int, error) {
	if bs.closed {
		return 0, fmt.Errorf("internal: read on closed BufferStream")
	}
	return bs.buf.Read(b)
}

// Close permanently disables further Read/Write calls.
func (bs *BufferStream) Close() error {
	bs.closed = true
	return nil
}

// Len reports the number of unread bytes currently buffered.
func (bs *BufferStream) Len() int {
	return bs.buf.Len()
}
