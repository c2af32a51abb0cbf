// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framed

// Decoder turns a prefix of src into one item.
//
// Contract (enforced by FramedRead when WithDecoderChecks is set, the
// default):
//   - "a frame was recognized": return item, consumed > 0, nil, with
//     consumed <= len(src). The bytes src[:consumed] are considered
//     delivered to the caller and will never be presented again.
//   - "no frame yet, call me again once more bytes arrive": return the zero
//     value of T, 0, nil. Decode may be called again with a longer src on a
//     later call once the engine has read more bytes from the transport.
//   - "the grammar is violated": return the zero value of T, 0, a non-nil
//     err. This is terminal; it is surfaced wrapped in a *DecodeError.
//
// A Decoder may borrow: item may alias src. Such an item is only valid until
// the next call that mutates the FramedRead's scratch buffer (the next
// ReadFrame call). Decoders whose Item must survive across calls should copy
// out of src and additionally implement OwnedDecoder.
type Decoder[T any] interface {
	Decode(src []byte) (item T, consumed int, err error)
}

// EOFDecoder is an optional capability of a Decoder: a strategy for decoding
// the final, possibly-unterminated frame once the transport has reported
// EOF. When a Decoder does not implement EOFDecoder, FramedRead falls back
// to calling Decode on the same window, per spec: the default policy is
// strict (a codec that requires a terminator, e.g. length-prefixed, will
// report "no frame" on a partial tail and FramedRead turns that into
// ErrBytesRemainingOnStream if any bytes remain). Permissive codecs (e.g.
// one that accepts an unterminated trailing line) implement this to accept
// the tail.
type EOFDecoder[T any] interface {
	DecodeEOF(src []byte) (item T, consumed int, err error)
}

// Hinter is an optional capability of a Decoder: after a "no frame yet"
// result, FramedRead calls Hint with the same window just passed to Decode,
// to learn whether the decoder can already tell how many total bytes it will
// need (typically because it has seen a complete size prefix but not yet the
// payload it describes). Decoders that have no opinion need not implement
// this; FramedRead treats that as Unknown.
type Hinter interface {
	Hint(src []byte) Hint
}

// OwnedDecoder marks a Decoder whose Item is never a borrow of the buffer
// passed to Decode/DecodeEOF. Only OwnedDecoder implementations may be
// driven through FramedRead.Frames, because an iterator yields across
// suspension points (the loop body runs between calls to the underlying
// ReadFrame) and a borrowed item would be invalidated by the next call
// before the caller could safely use it.
type OwnedDecoder[T any] interface {
	Decoder[T]
	framedOwned()
}

// Owned is embedded by Decoder implementations (typically in package codec)
// to assert, at compile time, that they never borrow from the source slice
// and are therefore safe to drive through FramedRead.Frames.
type Owned struct{}

func (Owned) framedOwned() {}
