// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec

import (
	"encoding/binary"
	"errors"

	"code.hybscloud.com/framed"
)

const (
	compactInlineMax = 1<<8 - 3 // 253: header byte doubles as the length itself
	compactExt16Tag  = compactInlineMax + 1
	compactExt56Tag  = compactInlineMax + 2
	compactMaxLen56  = 1<<56 - 1
)

// ErrFrameTooLarge56 is returned by CompactLength.Encode for a payload that
// does not fit in the 56-bit extended length form.
var ErrFrameTooLarge56 = errors.New("codec: frame exceeds 56-bit length prefix")

// CompactLength is an adaptive-length-prefix codec: a one-byte header
// doubles as the length itself for payloads up to 253 bytes, and escapes to
// a 2-byte or 7-byte extended length for larger payloads. It trades the
// fixed 4-byte overhead of LengthPrefixed for a single byte on small,
// chatty messages, at the cost of a branch per frame.
//
// Header byte values:
//   - 0..253: the payload is exactly that many bytes, no extension follows.
//   - 254: a 2-byte big/little-endian (per ByteOrder) length follows.
//   - 255: a 7-byte big/little-endian length follows, up to 2^56-1.
type CompactLength struct {
	ByteOrder binary.ByteOrder
}

// NewCompactLength constructs a CompactLength codec using big-endian
// extended lengths.
func NewCompactLength() *CompactLength {
	return &CompactLength{ByteOrder: binary.BigEndian}
}

func (c *CompactLength) order() binary.ByteOrder {
	if c.ByteOrder != nil {
		return c.ByteOrder
	}
	return binary.BigEndian
}

func (c *CompactLength) headerLen(hdr byte) int {
	switch hdr {
	case compactExt16Tag:
		return 1 + 2
	case compactExt56Tag:
		return 1 + 7
	default:
		return 1
	}
}

func (c *CompactLength) payloadLen(src []byte, hdr byte) int {
	switch hdr {
	case compactExt16Tag:
		return int(c.order().Uint16(src[1:3]))
	case compactExt56Tag:
		return int(get56(c.order(), src[1:8]))
	default:
		return int(hdr)
	}
}

// Decode implements framed.Decoder.
func (c *CompactLength) Decode(src []byte) ([]byte, int, error) {
	if len(src) < 1 {
		return nil, 0, nil
	}
	hdr := src[0]
	hdrLen := c.headerLen(hdr)
	if len(src) < hdrLen {
		return nil, 0, nil
	}
	payloadLen := c.payloadLen(src, hdr)
	total := hdrLen + payloadLen
	if len(src) < total {
		return nil, 0, nil
	}
	return src[hdrLen:total], total, nil
}

// Hint implements framed.Hinter.
func (c *CompactLength) Hint(src []byte) framed.Hint {
	if len(src) < 1 {
		return framed.Unknown
	}
	hdr := src[0]
	hdrLen := c.headerLen(hdr)
	if len(src) < hdrLen {
		return framed.Unknown
	}
	return framed.KnownSize(hdrLen + c.payloadLen(src, hdr))
}

// Encode implements framed.Encoder.
func (c *CompactLength) Encode(item []byte, dst []byte) (int, error) {
	n := len(item)
	switch {
	case n <= compactInlineMax:
		if len(dst) < 1+n {
			return 0, ErrOutputTooSmall
		}
		dst[0] = byte(n)
		copy(dst[1:], item)
		return 1 + n, nil
	case n <= 1<<16-1:
		if len(dst) < 3+n {
			return 0, ErrOutputTooSmall
		}
		dst[0] = compactExt16Tag
		c.order().PutUint16(dst[1:3], uint16(n))
		copy(dst[3:], item)
		return 3 + n, nil
	case n <= compactMaxLen56:
		if len(dst) < 8+n {
			return 0, ErrOutputTooSmall
		}
		dst[0] = compactExt56Tag
		put56(c.order(), dst[1:8], uint64(n))
		copy(dst[8:], item)
		return 8 + n, nil
	default:
		return 0, ErrFrameTooLarge56
	}
}

func get56(order binary.ByteOrder, b []byte) uint64 {
	var buf [8]byte
	if order == binary.LittleEndian {
		copy(buf[:7], b)
	} else {
		copy(buf[1:], b)
	}
	return order.Uint64(buf[:])
}

func put56(order binary.ByteOrder, dst []byte, v uint64) {
	var buf [8]byte
	order.PutUint64(buf[:], v)
	if order == binary.LittleEndian {
		copy(dst, buf[:7])
	} else {
		copy(dst, buf[1:])
	}
}
