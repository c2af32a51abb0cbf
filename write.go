// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framed

import (
	"errors"
	"iter"
	"runtime"
	"time"
)

// FramedWrite drives an Encoder over a Transport using a caller-supplied,
// fixed-capacity scratch buffer. It never allocates after construction.
//
// The zero value is not usable; construct with NewFramedWrite.
type FramedWrite[T any] struct {
	transport Transport
	encoder   Encoder[T]
	buf       []byte

	index   int // bytes of buf[:index] encoded but not yet handed to the transport
	flushed int // bytes of buf[:index] already handed to transport.Write

	backpressureBoundary int

	hasErrored bool

	opts  WriteOptions
	trace TraceFunc
}

// NewFramedWrite constructs a FramedWrite. scratch must be non-empty and is
// used as-is. The backpressure boundary defaults to 3/4 of len(scratch);
// override with WithBackpressureBoundary or SetBackpressureBoundary.
func NewFramedWrite[T any](transport Transport, encoder Encoder[T], scratch []byte, opts ...WriteOption) (*FramedWrite[T], error) {
	if transport == nil || encoder == nil || len(scratch) == 0 {
		return nil, ErrInvalidArgument
	}
	o := defaultWriteOptions
	for _, fn := range opts {
		fn(&o)
	}
	boundary := o.BackpressureBoundary
	if boundary <= 0 {
		boundary = len(scratch) * 3 / 4
	}
	return &FramedWrite[T]{
		transport:            transport,
		encoder:              encoder,
		buf:                  scratch,
		backpressureBoundary: boundary,
		opts:                 o,
		trace:                traceOrNoop(o.Trace),
	}, nil
}

// Encoder returns the configured Encoder.
func (w *FramedWrite[T]) Encoder() Encoder[T] { return w.encoder }

// Inner returns the underlying Transport.
func (w *FramedWrite[T]) Inner() Transport { return w.transport }

// Available returns how many bytes of the scratch buffer are free for the
// next WriteFrame call.
func (w *FramedWrite[T]) Available() int { return len(w.buf) - w.index }

// BackpressureBoundary returns the currently configured watermark.
func (w *FramedWrite[T]) BackpressureBoundary() int { return w.backpressureBoundary }

// SetBackpressureBoundary changes the watermark above which Ready flushes
// before reporting readiness.
func (w *FramedWrite[T]) SetBackpressureBoundary(n int) { w.backpressureBoundary = n }

// Ready reports whether the scratch buffer has room for another frame
// without exceeding the backpressure boundary. If the boundary has been
// crossed it flushes first; a non-blocking Transport may cause Ready itself
// to return ErrWouldBlock or ErrMore, in which case the caller should retry
// Ready before calling WriteFrame again.
func (w *FramedWrite[T]) Ready() error {
	if w.hasErrored {
		return ErrClosed
	}
	if w.index < w.backpressureBoundary {
		return nil
	}
	w.trace("backpressure")
	return w.Flush()
}

// WriteFrame encodes item into the scratch buffer. It does not touch the
// transport; call Ready beforehand and Flush (directly, or via Send) to
// actually deliver bytes.
func (w *FramedWrite[T]) WriteFrame(item T) error {
	if w.hasErrored {
		return ErrClosed
	}
	n, err := w.encoder.Encode(item, w.buf[w.index:])
	if err != nil {
		w.trace("encode_error", "err", err)
		return &EncodeError{Err: err}
	}
	if w.opts.EncoderChecks && (n == 0 || n > len(w.buf)-w.index) {
		w.trace("bad_encoder")
		return ErrBadEncoder
	}
	w.index += n
	w.trace("encode", "n", n)
	return nil
}

// Flush drains the scratch buffer to the transport and then flushes the
// transport itself. Partial progress is remembered across calls, so a Flush
// that returns ErrWouldBlock or ErrMore can simply be called again once the
// transport is writable; WriteFrame must not be called again until Flush
// returns nil.
func (w *FramedWrite[T]) Flush() error {
	if w.hasErrored {
		return ErrClosed
	}
	for w.flushed < w.index {
		n, err := w.transport.Write(w.buf[w.flushed:w.index])
		if n > 0 {
			w.flushed += n
			w.trace("transport_write", "n", n)
		}
		if err != nil {
			switch {
			case errors.Is(err, ErrWouldBlock), errors.Is(err, ErrMore):
				return err
			default:
				w.trace("io_error", "err", err)
				w.hasErrored = true
				return &IOError{Err: err}
			}
		}
		if n == 0 {
			w.trace("write_zero")
			w.hasErrored = true
			return ErrWriteZero
		}
	}
	w.index, w.flushed = 0, 0

	if err := w.transport.Flush(); err != nil {
		switch {
		case errors.Is(err, ErrWouldBlock), errors.Is(err, ErrMore):
			return err
		default:
			w.trace("flush_error", "err", err)
			w.hasErrored = true
			return &IOError{Err: err}
		}
	}
	w.trace("flush")
	return nil
}

// Close flushes any buffered bytes and then shuts down the transport.
func (w *FramedWrite[T]) Close() error {
	if err := w.Flush(); err != nil {
		return err
	}
	if err := w.transport.Shutdown(); err != nil {
		w.trace("shutdown_error", "err", err)
		w.hasErrored = true
		return &IOError{Err: err}
	}
	w.trace("shutdown")
	return nil
}

// SendFrame is a single-frame convenience that waits for Ready, encodes
// item, and flushes. An ErrWouldBlock encountered along the way is handled
// per WriteOptions.RetryDelay: negative propagates immediately, zero
// cooperatively yields and retries, positive sleeps and retries. ErrMore is
// always retried at once.
func (w *FramedWrite[T]) SendFrame(item T) error {
	if err := w.readyRetry(); err != nil {
		return err
	}
	if err := w.WriteFrame(item); err != nil {
		return err
	}
	return w.flushRetry()
}

// Send is the sink convenience built over WriteFrame/Ready/Flush: it writes
// every item from items, gating each one on Ready (which flushes once the
// backpressure boundary is crossed), and performs one final Flush once items
// is exhausted. ErrWouldBlock is retried per WriteOptions.RetryDelay and
// ErrMore at once, the same policy SendFrame uses.
func (w *FramedWrite[T]) Send(items iter.Seq[T]) error {
	for item := range items {
		if err := w.readyRetry(); err != nil {
			return err
		}
		if err := w.WriteFrame(item); err != nil {
			return err
		}
	}
	return w.flushRetry()
}

func (w *FramedWrite[T]) readyRetry() error {
	for {
		if err := w.Ready(); err != nil {
			if w.retry(err) {
				continue
			}
			return err
		}
		return nil
	}
}

func (w *FramedWrite[T]) flushRetry() error {
	for {
		err := w.Flush()
		if err == nil {
			return nil
		}
		if w.retry(err) {
			continue
		}
		return err
	}
}

func (w *FramedWrite[T]) retry(err error) bool {
	if !errors.Is(err, ErrWouldBlock) && !errors.Is(err, ErrMore) {
		return false
	}
	if errors.Is(err, ErrMore) {
		return true
	}
	if w.opts.RetryDelay < 0 {
		return false
	}
	if w.opts.RetryDelay == 0 {
		runtime.Gosched()
		return true
	}
	time.Sleep(w.opts.RetryDelay)
	return true
}
