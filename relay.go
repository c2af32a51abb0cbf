// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framed

// Relay forwards decoded frames from a FramedRead to a FramedWrite,
// preserving frame boundaries: whatever the source Decoder recognizes as one
// item, the destination Encoder writes as one item.
//
// RelayOnce is a three-phase step function -- read, encode, flush -- that
// resumes correctly across ErrWouldBlock/ErrMore on either side, since the
// in-flight item is held by the Relay itself rather than requiring the
// caller to keep it. The caller must retry RelayOnce on the same Relay
// instance to complete a message that returned a partial-progress signal.
type Relay[T any] struct {
	src *FramedRead[T]
	dst *FramedWrite[T]

	state   uint8 // 0: read frame, 1: ready+encode, 2: flush
	pending T
}

// NewRelay constructs a Relay that forwards frames from src to dst.
func NewRelay[T any](dst *FramedWrite[T], src *FramedRead[T]) *Relay[T] {
	return &Relay[T]{src: src, dst: dst}
}

// RelayOnce forwards at most one frame. It returns nil once a frame has been
// fully written and flushed to dst, io.EOF once src is exhausted, or any
// other terminal/control-flow error either side reported.
func (r *Relay[T]) RelayOnce() error {
	if r.state == 0 {
		item, err := r.src.ReadFrame()
		if err != nil {
			return err
		}
		r.pending = item
		r.state = 1
	}

	if r.state == 1 {
		if err := r.dst.Ready(); err != nil {
			return err
		}
		if err := r.dst.WriteFrame(r.pending); err != nil {
			var zero T
			r.pending = zero
			r.state = 0
			return err
		}
		r.state = 2
	}

	if err := r.dst.Flush(); err != nil {
		return err
	}
	var zero T
	r.pending = zero
	r.state = 0
	return nil
}
