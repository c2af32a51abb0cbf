// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec

import (
	"encoding/binary"
	"errors"

	"code.hybscloud.com/framed"
	"code.hybscloud.com/framed/internal/bo"
)

// ErrFrameTooLarge is returned by LengthPrefixed.Encode when item would not
// fit in a uint32 length prefix.
var ErrFrameTooLarge = errors.New("codec: frame exceeds uint32 length prefix")

// LengthPrefixed decodes/encodes frames carrying a 4-byte length prefix
// ahead of the payload. ByteOrder defaults to binary.LittleEndian, matching
// the wire format this codec was ported from; set it explicitly (e.g. to
// binary.BigEndian, or to bo.Native() for a host-only protocol) to talk to a
// different peer.
//
// LengthPrefixed borrows: the decoded item aliases the scratch buffer.
type LengthPrefixed struct {
	ByteOrder binary.ByteOrder
}

// NewLengthPrefixed constructs a LengthPrefixed codec using little-endian
// length prefixes.
func NewLengthPrefixed() *LengthPrefixed {
	return &LengthPrefixed{ByteOrder: binary.LittleEndian}
}

// NewNativeLengthPrefixed constructs a LengthPrefixed codec using the host's
// native byte order, for protocols that never cross a network boundary.
func NewNativeLengthPrefixed() *LengthPrefixed {
	return &LengthPrefixed{ByteOrder: bo.Native()}
}

func (c *LengthPrefixed) order() binary.ByteOrder {
	if c.ByteOrder != nil {
		return c.ByteOrder
	}
	return binary.LittleEndian
}

// Decode implements framed.Decoder.
func (c *LengthPrefixed) Decode(src []byte) ([]byte, int, error) {
	if len(src) < 4 {
		return nil, 0, nil
	}
	n := int(c.order().Uint32(src))
	if len(src) < n+4 {
		return nil, 0, nil
	}
	return src[4 : n+4], n + 4, nil
}

// Hint implements framed.Hinter: once the 4-byte prefix itself is available,
// LengthPrefixed can tell FramedRead exactly how many bytes the whole frame
// needs, letting it pre-emptively reject an oversize frame or compact early.
func (c *LengthPrefixed) Hint(src []byte) framed.Hint {
	if len(src) < 4 {
		return framed.Unknown
	}
	return framed.KnownSize(int(c.order().Uint32(src)) + 4)
}

// Encode implements framed.Encoder.
func (c *LengthPrefixed) Encode(item []byte, dst []byte) (int, error) {
	if uint64(len(item)) > 1<<32-1 {
		return 0, ErrFrameTooLarge
	}
	need := len(item) + 4
	if len(dst) < need {
		return 0, ErrOutputTooSmall
	}
	c.order().PutUint32(dst, uint32(len(item)))
	copy(dst[4:], item)
	return need, nil
}
