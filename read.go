// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framed

import (
	"errors"
	"io"
	"iter"
	"runtime"
	"time"
)

// FramedRead drives a Decoder over a Transport using a caller-supplied,
// fixed-capacity scratch buffer. It never allocates after construction and
// never blocks: every ReadFrame call either produces a frame, reports
// ErrWouldBlock/ErrMore for the caller to retry later, or reaches a terminal
// state.
//
// The zero value is not usable; construct with NewFramedRead.
type FramedRead[T any] struct {
	transport Transport
	decoder   Decoder[T]
	buf       []byte

	index         int  // bytes read into buf so far
	totalConsumed int  // bytes of buf[:index] already handed to the caller
	eof           bool // transport reported EOF on the most recent read
	isFramable    bool // buf[totalConsumed:index] might contain a frame
	hasErrored    bool // a terminal state has been reached
	terminalIsEOF bool // the terminal state is a clean io.EOF, not an error

	haveFrameSize bool // a Hinter promised an exact size for the pending frame
	frameSize     int

	opts  ReadOptions
	trace TraceFunc
}

// NewFramedRead constructs a FramedRead. scratch must be non-empty and is
// used as-is: FramedRead never reallocates or grows it. A frame that cannot
// fit in scratch is reported as ErrBufferTooSmall.
func NewFramedRead[T any](transport Transport, decoder Decoder[T], scratch []byte, opts ...ReadOption) (*FramedRead[T], error) {
	if transport == nil || decoder == nil || len(scratch) == 0 {
		return nil, ErrInvalidArgument
	}
	o := defaultReadOptions
	for _, fn := range opts {
		fn(&o)
	}
	return &FramedRead[T]{
		transport: transport,
		decoder:   decoder,
		buf:       scratch,
		opts:      o,
		trace:     traceOrNoop(o.Trace),
	}, nil
}

// Decoder returns the configured Decoder.
func (f *FramedRead[T]) Decoder() Decoder[T] { return f.decoder }

// Inner returns the underlying Transport.
func (f *FramedRead[T]) Inner() Transport { return f.transport }

// Buffered returns the bytes currently sitting in the scratch buffer that
// have been read from the transport but not yet handed to the caller as part
// of a decoded frame. It aliases the scratch buffer and is only valid until
// the next ReadFrame call.
func (f *FramedRead[T]) Buffered() []byte { return f.buf[f.totalConsumed:f.index] }

// ReadFrame advances the state machine until it can either produce a frame,
// report a control-flow signal (ErrWouldBlock, ErrMore) that the caller
// should treat as "try again later", or reach a terminal state.
//
// Once a non-EOF terminal is reached, the triggering error is returned
// exactly once; every later call returns ErrClosed. Once a clean end of
// stream is reached, every call, including the first to observe it, returns
// io.EOF.
func (f *FramedRead[T]) ReadFrame() (T, error) {
	var zero T

	if f.hasErrored {
		if f.terminalIsEOF {
			return zero, io.EOF
		}
		return zero, ErrClosed
	}

	for {
		if f.isFramable {
			if f.eof {
				if !f.opts.DecodeEmptyBuffer && f.totalConsumed == f.index {
					f.isFramable = false
					f.trace("eof")
					return zero, f.finish()
				}

				item, consumed, err := f.decodeEOF(f.buf[f.totalConsumed:f.index])
				if err != nil {
					f.trace("decode_eof_error", "err", err)
					return zero, f.fail(&DecodeError{Err: err})
				}
				if consumed == 0 {
					f.isFramable = false
					if f.totalConsumed != f.index {
						f.trace("bytes_remaining_on_stream")
						return zero, f.fail(ErrBytesRemainingOnStream)
					}
					f.trace("eof")
					return zero, f.finish()
				}
				if f.opts.DecoderChecks && f.totalConsumed+consumed > f.index {
					f.trace("bad_decoder_eof")
					return zero, f.fail(ErrBadDecoder)
				}
				f.totalConsumed += consumed
				f.trace("decode_eof", "consumed", consumed)
				return item, nil
			}

			item, consumed, err := f.decoder.Decode(f.buf[f.totalConsumed:f.index])
			if err != nil {
				f.trace("decode_error", "err", err)
				return zero, f.fail(&DecodeError{Err: err})
			}
			if consumed > 0 {
				if f.opts.DecoderChecks && f.totalConsumed+consumed > f.index {
					f.trace("bad_decoder")
					return zero, f.fail(ErrBadDecoder)
				}
				f.totalConsumed += consumed
				f.trace("decode", "consumed", consumed)

				if !f.opts.DecodeEmptyBuffer && f.totalConsumed == f.index {
					f.totalConsumed, f.index = 0, 0
					f.isFramable = false
				}
				return item, nil
			}

			// No frame yet.
			f.isFramable = false
			hint := f.hintAfterNoFrame(f.buf[f.totalConsumed:f.index])
			switch {
			case hint.Known:
				if hint.Size > len(f.buf) {
					f.trace("buffer_too_small", "hint", hint.Size)
					return zero, f.fail(ErrBufferTooSmall)
				}
				if len(f.buf)-f.totalConsumed < hint.Size {
					f.shift()
				}
				f.frameSize, f.haveFrameSize = hint.Size, true
			default:
				if f.index >= len(f.buf) {
					f.shift()
				}
			}
			if f.opts.EarlyShift && f.totalConsumed > 0 {
				f.shift()
			}
		}

		if f.index >= len(f.buf) {
			f.trace("buffer_too_small")
			return zero, f.fail(ErrBufferTooSmall)
		}

		n, err := f.transport.Read(f.buf[f.index:])
		if err != nil {
			switch {
			case errors.Is(err, ErrWouldBlock), errors.Is(err, ErrMore):
				return zero, err
			case errors.Is(err, io.EOF):
				if f.eof {
					f.trace("eof")
					return zero, f.finish()
				}
				f.eof = true
				f.haveFrameSize = false
			default:
				f.trace("io_error", "err", err)
				return zero, f.fail(&IOError{Err: err})
			}
		} else if n == 0 {
			f.trace("no_progress")
			return zero, f.fail(&IOError{Err: io.ErrNoProgress})
		} else {
			f.index += n
			f.eof = false
			f.trace("transport_read", "n", n)
		}

		if f.haveFrameSize {
			if f.index-f.totalConsumed >= f.frameSize {
				f.isFramable, f.haveFrameSize = true, false
			}
		} else {
			f.isFramable = true
		}
	}
}

// Frames returns a single-use iterator over the remaining frames, stopping
// cleanly at io.EOF and yielding any other terminal error as the iterator's
// last pair. It only accepts OwnedDecoder-backed FramedRead values: a
// borrowed item aliases the scratch buffer and would be silently invalidated
// the moment the loop body yields control back to the next ReadFrame call, so
// Frames panics if the configured Decoder does not implement OwnedDecoder.
//
// ErrWouldBlock is handled according to ReadOptions.RetryDelay: negative
// propagates the signal to the caller as the final pair, zero cooperatively
// yields and retries, and positive sleeps for the given duration and
// retries. ErrMore is always retried at once.
func (f *FramedRead[T]) Frames() iter.Seq2[T, error] {
	if _, ok := f.decoder.(OwnedDecoder[T]); !ok {
		panic("framed: Frames requires a Decoder that implements OwnedDecoder")
	}
	return func(yield func(T, error) bool) {
		for {
			item, err := f.ReadFrame()
			switch {
			case err == nil:
				if !yield(item, nil) {
					return
				}
			case errors.Is(err, ErrMore):
				continue
			case errors.Is(err, ErrWouldBlock):
				if !f.waitRetry() {
					yield(item, err)
					return
				}
			case errors.Is(err, io.EOF):
				return
			default:
				yield(item, err)
				return
			}
		}
	}
}

func (f *FramedRead[T]) waitRetry() bool {
	if f.opts.RetryDelay < 0 {
		return false
	}
	if f.opts.RetryDelay == 0 {
		runtime.Gosched()
		return true
	}
	time.Sleep(f.opts.RetryDelay)
	return true
}

func (f *FramedRead[T]) decodeEOF(src []byte) (T, int, error) {
	if d, ok := f.decoder.(EOFDecoder[T]); ok {
		return d.DecodeEOF(src)
	}
	return f.decoder.Decode(src)
}

func (f *FramedRead[T]) hintAfterNoFrame(src []byte) Hint {
	if h, ok := f.decoder.(Hinter); ok {
		return h.Hint(src)
	}
	return Unknown
}

// shift compacts buf by discarding the already-consumed prefix, making room
// at the tail for more transport reads.
func (f *FramedRead[T]) shift() {
	n := copy(f.buf, f.buf[f.totalConsumed:f.index])
	f.index = n
	f.totalConsumed = 0
	f.trace("shift")
}

func (f *FramedRead[T]) fail(err error) error {
	f.hasErrored = true
	f.terminalIsEOF = false
	return err
}

func (f *FramedRead[T]) finish() error {
	f.hasErrored = true
	f.terminalIsEOF = true
	return io.EOF
}
