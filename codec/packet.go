// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec

import (
	"encoding/binary"
	"encoding/json"
	"errors"

	"github.com/dchest/siphash"
	"github.com/google/uuid"

	"code.hybscloud.com/framed"
)

// PayloadType discriminates the JSON-encoded payload carried by a Packet.
// It sits in the wire header so a Packet's Go type can be chosen before its
// JSON body is parsed, the way the original protocol discriminates an
// untagged JSON union by an out-of-band type code.
type PayloadType uint16

const (
	PayloadInit PayloadType = iota
	PayloadInitAck
	PayloadHeartbeat
	PayloadHeartbeatAck
	PayloadDeviceConfig
	PayloadDeviceConfigAck
)

// packetHeaderSize is 4 bytes of little-endian packet length, 2 bytes of
// little-endian PayloadType, and 8 bytes of siphash-2-4 checksum.
const packetHeaderSize = 4 + 2 + 8

var (
	// ErrChecksum reports a Packet whose checksum does not match its bytes.
	ErrChecksum = errors.New("codec: packet checksum mismatch")
	// ErrUnknownPayloadType reports a PayloadType this build does not recognize.
	ErrUnknownPayloadType = errors.New("codec: unknown payload type")
)

// Init is the first message of the handshake.
type Init struct {
	SequenceNumber uint32
	Version        string
	CorrelationID  uuid.UUID
}

// InitAck acknowledges Init.
type InitAck struct {
	SequenceNumber uint32
	Version        string
	CorrelationID  uuid.UUID
}

// Heartbeat is a periodic liveness probe.
type Heartbeat struct {
	SequenceNumber uint32
}

// HeartbeatAck acknowledges Heartbeat.
type HeartbeatAck struct {
	SequenceNumber uint32
}

// DeviceConfig pushes a configuration blob to the peer.
type DeviceConfig struct {
	SequenceNumber uint32
	Config         string
}

// DeviceConfigAck acknowledges DeviceConfig.
type DeviceConfigAck struct {
	SequenceNumber uint32
}

// Packet is one structured, checksummed, length-prefixed protocol message.
type Packet struct {
	Type    PayloadType
	Content any // one of Init, InitAck, Heartbeat, HeartbeatAck, DeviceConfig, DeviceConfigAck
}

func newContent(t PayloadType) (any, error) {
	switch t {
	case PayloadInit:
		return &Init{}, nil
	case PayloadInitAck:
		return &InitAck{}, nil
	case PayloadHeartbeat:
		return &Heartbeat{}, nil
	case PayloadHeartbeatAck:
		return &HeartbeatAck{}, nil
	case PayloadDeviceConfig:
		return &DeviceConfig{}, nil
	case PayloadDeviceConfigAck:
		return &DeviceConfigAck{}, nil
	default:
		return nil, ErrUnknownPayloadType
	}
}

func payloadTypeOf(content any) (PayloadType, bool) {
	switch content.(type) {
	case *Init, Init:
		return PayloadInit, true
	case *InitAck, InitAck:
		return PayloadInitAck, true
	case *Heartbeat, Heartbeat:
		return PayloadHeartbeat, true
	case *HeartbeatAck, HeartbeatAck:
		return PayloadHeartbeatAck, true
	case *DeviceConfig, DeviceConfig:
		return PayloadDeviceConfig, true
	case *DeviceConfigAck, DeviceConfigAck:
		return PayloadDeviceConfigAck, true
	default:
		return 0, false
	}
}

// PacketCodec decodes/encodes Packet values: a fixed header (length, type,
// checksum) followed by a JSON body whose shape the type selects. The
// checksum is computed with siphash-2-4 over the full frame with the
// checksum field zeroed, following the same clear-compute-compare sequence
// the wire format it was ported from uses (there with a different hash).
//
// PacketCodec does not borrow: encoding/json copies every scalar and string
// out of the scratch buffer during Unmarshal, so the returned Packet and its
// Content are owned and stay valid after the next ReadFrame call.
type PacketCodec struct {
	framed.Owned
	// Key0, Key1 seed the siphash checksum. The zero key is fine for framing
	// integrity against corruption; set both for protection against a
	// adversary who can also observe other traffic under the same codec.
	Key0, Key1 uint64
}

func (c *PacketCodec) checksum(b []byte) uint64 {
	return siphash.Hash(c.Key0, c.Key1, b)
}

// Decode implements framed.Decoder.
func (c *PacketCodec) Decode(src []byte) (Packet, int, error) {
	var zero Packet
	if len(src) < packetHeaderSize {
		return zero, 0, nil
	}
	packetLength := int(binary.LittleEndian.Uint32(src[0:4]))
	if len(src) < packetLength {
		return zero, 0, nil
	}

	frame := src[:packetLength]
	receivedChecksum := binary.LittleEndian.Uint64(frame[6:14])

	checked := make([]byte, packetLength)
	copy(checked, frame)
	binary.LittleEndian.PutUint64(checked[6:14], 0)
	if c.checksum(checked) != receivedChecksum {
		return zero, 0, ErrChecksum
	}

	payloadType := PayloadType(binary.LittleEndian.Uint16(src[4:6]))
	content, err := newContent(payloadType)
	if err != nil {
		return zero, 0, err
	}
	if err := json.Unmarshal(frame[packetHeaderSize:], content); err != nil {
		return zero, 0, err
	}
	return Packet{Type: payloadType, Content: content}, packetLength, nil
}

// Hint implements framed.Hinter.
func (c *PacketCodec) Hint(src []byte) framed.Hint {
	if len(src) < 4 {
		return framed.Unknown
	}
	return framed.KnownSize(int(binary.LittleEndian.Uint32(src[0:4])))
}

// Encode implements framed.Encoder.
func (c *PacketCodec) Encode(item Packet, dst []byte) (int, error) {
	payloadType, ok := payloadTypeOf(item.Content)
	if !ok {
		return 0, ErrUnknownPayloadType
	}
	body, err := json.Marshal(item.Content)
	if err != nil {
		return 0, err
	}
	packetLength := packetHeaderSize + len(body)
	if len(dst) < packetLength {
		return 0, ErrOutputTooSmall
	}

	binary.LittleEndian.PutUint32(dst[0:4], uint32(packetLength))
	binary.LittleEndian.PutUint16(dst[4:6], uint16(payloadType))
	binary.LittleEndian.PutUint64(dst[6:14], 0)
	copy(dst[packetHeaderSize:packetLength], body)

	checksum := c.checksum(dst[:packetLength])
	binary.LittleEndian.PutUint64(dst[6:14], checksum)
	return packetLength, nil
}
