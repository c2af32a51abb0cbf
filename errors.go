// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framed

import "errors"

// Error taxonomy for FramedRead. Every terminal outcome of ReadFrame maps to
// exactly one of these (or to io.EOF, which is the stdlib sentinel and not
// redeclared here so that callers can keep using errors.Is(err, io.EOF)).
var (
	// ErrBufferTooSmall reports that a frame (known or promised by a
	// FrameSizeHint) cannot possibly fit in the read or write scratch buffer.
	ErrBufferTooSmall = errors.New("framed: buffer too small for frame")

	// ErrBytesRemainingOnStream reports that the transport reached EOF while
	// bytes were still sitting un-framed in the read scratch buffer, and
	// DecodeEOF declined to turn them into a final frame.
	ErrBytesRemainingOnStream = errors.New("framed: bytes remaining on stream after EOF")

	// ErrBadDecoder reports that a Decoder claimed to consume more bytes than
	// were available. Only surfaced when WithDecoderChecks is enabled (the
	// default). A zero consumed count with a nil error is read as "no frame
	// yet", so it is never reported as ErrBadDecoder.
	ErrBadDecoder = errors.New("framed: decoder consumed more bytes than available")

	// ErrBadEncoder reports that an Encoder violated its contract (wrote
	// zero bytes, or more bytes than the destination slice could hold).
	// Only surfaced when WithEncoderChecks is enabled (the default).
	ErrBadEncoder = errors.New("framed: encoder wrote zero or too many bytes")

	// ErrWriteZero reports that Transport.Write returned (0, nil) for a
	// nonempty buffer while flushing.
	ErrWriteZero = errors.New("framed: write returned zero with no error")

	// ErrClosed is returned by ReadFrame/WriteFrame once the engine has
	// latched a terminal error other than io.EOF and the caller calls again.
	// The original error is only ever observed once; see FramedRead.ReadFrame.
	ErrClosed = errors.New("framed: framer is closed after a prior error")

	// ErrInvalidArgument reports a nil Transport, Decoder, Encoder, or a
	// zero-length scratch buffer passed to a constructor.
	ErrInvalidArgument = errors.New("framed: invalid argument")
)

// DecodeError wraps an error returned by a Decoder's Decode/DecodeEOF method,
// distinguishing grammar failures from transport or engine failures.
type DecodeError struct{ Err error }

func (e *DecodeError) Error() string { return "framed: decode: " + e.Err.Error() }
func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError wraps an error returned by an Encoder's Encode method.
type EncodeError struct{ Err error }

func (e *EncodeError) Error() string { return "framed: encode: " + e.Err.Error() }
func (e *EncodeError) Unwrap() error { return e.Err }

// IOError wraps an error returned by the underlying Transport.
type IOError struct{ Err error }

func (e *IOError) Error() string { return "framed: io: " + e.Err.Error() }
func (e *IOError) Unwrap() error { return e.Err }
