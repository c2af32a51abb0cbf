// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framed

import "time"

// ReadOptions configures a FramedRead.
type ReadOptions struct {
	// DecoderChecks enforces the Decoder bound consumed <= len(src) and
	// reports ErrBadDecoder on violation instead of trusting the decoder. A
	// zero consumed count is not checked: it means "no frame yet". Default
	// true.
	DecoderChecks bool

	// EarlyShift compacts the read scratch buffer whenever bytes have been
	// consumed, instead of only when the tail is full. Reduces head-of-buffer
	// stalls for decoders that need a lot of runway, at the cost of more
	// copying. Default false (shift only when the buffer is full).
	EarlyShift bool

	// DecodeEmptyBuffer, once EOF is observed, forces one DecodeEOF call on
	// an empty window before reporting io.EOF, so a decoder can fail the
	// stream at that point. That call cannot yield a frame: a zero consumed
	// count ends the stream with io.EOF, and a positive one exceeds the empty
	// window and is reported as ErrBadDecoder when DecoderChecks is on.
	// Default false.
	DecodeEmptyBuffer bool

	// RetryDelay controls how FramedRead.Frames and other convenience loops
	// react to ErrWouldBlock from the transport:
	//   - negative: nonblocking, propagate ErrWouldBlock immediately
	//   - zero: cooperative yield (runtime.Gosched) and retry
	//   - positive: sleep for the duration and retry
	// ReadFrame itself never waits; this only governs the convenience loop.
	RetryDelay time.Duration

	// Trace, when non-nil, is called at each state transition with a short
	// event name and structured fields. Zero cost when nil.
	Trace TraceFunc
}

var defaultReadOptions = ReadOptions{
	DecoderChecks: true,
	RetryDelay:    -1,
}

// ReadOption configures a FramedRead at construction.
type ReadOption func(*ReadOptions)

// WithDecoderChecks toggles decoder contract enforcement. Default on.
func WithDecoderChecks(enabled bool) ReadOption {
	return func(o *ReadOptions) { o.DecoderChecks = enabled }
}

// WithEarlyShift enables eager compaction of the read scratch buffer.
func WithEarlyShift() ReadOption {
	return func(o *ReadOptions) { o.EarlyShift = true }
}

// WithDecodeEmptyBuffer forces a trailing DecodeEOF call on an empty window.
func WithDecodeEmptyBuffer() ReadOption {
	return func(o *ReadOptions) { o.DecodeEmptyBuffer = true }
}

// WithReadRetryDelay sets the retry/wait policy used by FramedRead.Frames.
func WithReadRetryDelay(d time.Duration) ReadOption {
	return func(o *ReadOptions) { o.RetryDelay = d }
}

// WithReadBlock enables cooperative blocking (yield-and-retry) on ErrWouldBlock.
func WithReadBlock() ReadOption {
	return func(o *ReadOptions) { o.RetryDelay = 0 }
}

// WithReadNonblock forces FramedRead.Frames to return ErrWouldBlock immediately.
func WithReadNonblock() ReadOption {
	return func(o *ReadOptions) { o.RetryDelay = -1 }
}

// WithReadTrace installs a tracing hook on a FramedRead.
func WithReadTrace(fn TraceFunc) ReadOption {
	return func(o *ReadOptions) { o.Trace = fn }
}

// WriteOptions configures a FramedWrite.
type WriteOptions struct {
	// EncoderChecks enforces the Encoder contract (0 < n <= available) and
	// reports ErrBadEncoder on violation. Default true.
	EncoderChecks bool

	// BackpressureBoundary overrides the write scratch watermark above which
	// Ready reports not-ready until a Flush drains the buffer. Zero means
	// "use the constructor default of len(scratch)*3/4".
	BackpressureBoundary int

	// RetryDelay controls how Send reacts to ErrWouldBlock, mirroring
	// ReadOptions.RetryDelay.
	RetryDelay time.Duration

	// Trace, when non-nil, is called at each state transition.
	Trace TraceFunc
}

var defaultWriteOptions = WriteOptions{
	EncoderChecks: true,
	RetryDelay:    -1,
}

// WriteOption configures a FramedWrite at construction.
type WriteOption func(*WriteOptions)

// WithEncoderChecks toggles encoder contract enforcement. Default on.
func WithEncoderChecks(enabled bool) WriteOption {
	return func(o *WriteOptions) { o.EncoderChecks = enabled }
}

// WithBackpressureBoundary sets the write scratch watermark at construction
// time. See FramedWrite.SetBackpressureBoundary to change it afterward.
func WithBackpressureBoundary(n int) WriteOption {
	return func(o *WriteOptions) { o.BackpressureBoundary = n }
}

// WithWriteRetryDelay sets the retry/wait policy used by FramedWrite.Send.
func WithWriteRetryDelay(d time.Duration) WriteOption {
	return func(o *WriteOptions) { o.RetryDelay = d }
}

// WithWriteBlock enables cooperative blocking (yield-and-retry) on ErrWouldBlock.
func WithWriteBlock() WriteOption {
	return func(o *WriteOptions) { o.RetryDelay = 0 }
}

// WithWriteNonblock forces FramedWrite.Send to return ErrWouldBlock immediately.
func WithWriteNonblock() WriteOption {
	return func(o *WriteOptions) { o.RetryDelay = -1 }
}

// WithWriteTrace installs a tracing hook on a FramedWrite.
func WithWriteTrace(fn TraceFunc) WriteOption {
	return func(o *WriteOptions) { o.Trace = fn }
}
