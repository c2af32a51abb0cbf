// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package transport provides framed.Transport implementations: an in-memory
// queue for tests, and adapters over net.Conn and raw Unix file descriptors
// for production use.
package transport

import (
	"io"
	"sync"

	"code.hybscloud.com/framed"
)

type queue struct {
	mu     sync.Mutex
	buf    []byte
	closed bool
}

func (q *queue) push(p []byte) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return 0, io.ErrClosedPipe
	}
	q.buf = append(q.buf, p...)
	return len(p), nil
}

func (q *queue) pop(p []byte) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.buf) == 0 {
		if q.closed {
			return 0, io.EOF
		}
		return 0, framed.ErrWouldBlock
	}
	n := copy(p, q.buf)
	q.buf = q.buf[n:]
	return n, nil
}

func (q *queue) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
}

// Buffer is a non-blocking, in-memory framed.Transport. Standalone, it is a
// FIFO loopback: whatever is Written becomes Readable. Paired via
// NewBufferPair, two Buffers form a full duplex channel, which is the
// in-memory pipe this module's tests drive FramedRead/FramedWrite with
// instead of a real socket.
type Buffer struct {
	rd, wr *queue
}

// NewBuffer returns a standalone loopback Buffer.
func NewBuffer() *Buffer {
	q := &queue{}
	return &Buffer{rd: q, wr: q}
}

// NewBufferPair returns two Buffers wired to each other: writes to a are
// readable from b, and writes to b are readable from a.
func NewBufferPair() (a, b *Buffer) {
	ab, ba := &queue{}, &queue{}
	return &Buffer{rd: ab, wr: ba}, &Buffer{rd: ba, wr: ab}
}

// Read implements framed.Transport. It returns ErrWouldBlock when the queue
// is empty and still open, or io.EOF once Shutdown has drained it.
func (b *Buffer) Read(p []byte) (int, error) { return b.rd.pop(p) }

// Write implements framed.Transport.
func (b *Buffer) Write(p []byte) (int, error) { return b.wr.push(p) }

// Flush is a no-op: Buffer has no separate write buffering to drain.
func (b *Buffer) Flush() error { return nil }

// Shutdown closes the write side, so the peer's Read observes io.EOF once
// its queue empties.
func (b *Buffer) Shutdown() error {
	b.wr.close()
	return nil
}
