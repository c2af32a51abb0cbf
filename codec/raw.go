// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package codec provides stock Decoder/Encoder implementations for
// code.hybscloud.com/framed: byte-oriented framing grammars that need no
// domain knowledge of what they carry.
package codec

import "code.hybscloud.com/framed"

// Raw decodes every currently available byte as one frame, with no framing
// grammar at all: it hands the readable window to the caller on every call
// (capped at MaxChunk, if set), the same way an io.Copy loop would. It is
// mostly useful for testing FramedRead/FramedWrite plumbing, or for
// transports that already preserve message boundaries (e.g. a datagram
// socket) and need no further framing.
//
// Raw borrows: the returned item aliases the scratch buffer and is invalid
// after the next ReadFrame call.
type Raw struct {
	// MaxChunk caps how many bytes a single Decode call hands back. Zero
	// (the default) means no cap: the whole available window is one frame.
	MaxChunk int
}

// Decode implements framed.Decoder.
func (c Raw) Decode(src []byte) ([]byte, int, error) {
	if len(src) == 0 {
		return nil, 0, nil
	}
	n := len(src)
	if c.MaxChunk > 0 && n > c.MaxChunk {
		n = c.MaxChunk
	}
	return src[:n], n, nil
}

// Encode implements framed.Encoder.
func (Raw) Encode(item []byte, dst []byte) (int, error) {
	if len(dst) < len(item) {
		return 0, framed.ErrBufferTooSmall
	}
	return copy(dst, item), nil
}
