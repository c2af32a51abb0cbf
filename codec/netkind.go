// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec

import (
	"encoding/binary"

	"code.hybscloud.com/framed/internal/bo"
)

// NetKind names a transport family, for the sole purpose of picking a
// sensible default codec and byte order in RecommendDecoder,
// RecommendEncoder and RecommendByteOrder. It carries no
// notion of message-boundary preservation the way the byte-oriented framer
// this module was adapted from did, because FramedRead/FramedWrite frame at
// the Decoder/Encoder level regardless of what kind of Transport delivers
// the bytes.
type NetKind uint8

const (
	NetTCP NetKind = iota
	NetUDP
	NetWebSocket
	NetSCTP
	NetUnixStream
	NetUnixPacket
	NetLocalStream
)

// boundaryPreserving reports whether a transport of this kind already
// delivers whole messages per Read/Write call, making additional length
// framing redundant.
func (k NetKind) boundaryPreserving() bool {
	switch k {
	case NetUDP, NetWebSocket, NetSCTP, NetUnixPacket:
		return true
	default:
		return false
	}
}

// RecommendByteOrder returns the byte order RecommendDecoder and
// RecommendEncoder pick for a length-prefixed codec on this transport kind:
// native byte order for NetLocalStream, and network byte order (big-endian)
// for every other kind, NetUnixStream included.
func (k NetKind) RecommendByteOrder() binary.ByteOrder {
	if k == NetLocalStream {
		return bo.Native()
	}
	return binary.BigEndian
}

// RecommendDecoder returns a ready-to-use Decoder appropriate for this
// transport kind: Raw for boundary-preserving transports (the transport
// already framed the message), a byte-order-matched LengthPrefixed codec
// otherwise.
func RecommendDecoder(kind NetKind) any {
	if kind.boundaryPreserving() {
		return Raw{}
	}
	return &LengthPrefixed{ByteOrder: kind.RecommendByteOrder()}
}

// RecommendEncoder mirrors RecommendDecoder for the write side.
func RecommendEncoder(kind NetKind) any {
	if kind.boundaryPreserving() {
		return Raw{}
	}
	return &LengthPrefixed{ByteOrder: kind.RecommendByteOrder()}
}
