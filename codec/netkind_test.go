// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/framed/codec"
)

func TestNetKind_RecommendDecoder_BoundaryPreserving(t *testing.T) {
	for _, kind := range []codec.NetKind{codec.NetUDP, codec.NetWebSocket, codec.NetSCTP, codec.NetUnixPacket} {
		_, ok := codec.RecommendDecoder(kind).(codec.Raw)
		require.True(t, ok, "kind %v", kind)
		_, ok = codec.RecommendEncoder(kind).(codec.Raw)
		require.True(t, ok, "kind %v", kind)
	}
}

func TestNetKind_RecommendDecoder_StreamTransports(t *testing.T) {
	for _, kind := range []codec.NetKind{codec.NetTCP, codec.NetUnixStream} {
		dec, ok := codec.RecommendDecoder(kind).(*codec.LengthPrefixed)
		require.True(t, ok, "kind %v", kind)
		require.Equal(t, binary.BigEndian, dec.ByteOrder)
	}
}

func TestNetKind_RecommendByteOrder_LocalStreamIsNative(t *testing.T) {
	dec, ok := codec.RecommendDecoder(codec.NetLocalStream).(*codec.LengthPrefixed)
	require.True(t, ok)
	require.Equal(t, codec.NetLocalStream.RecommendByteOrder(), dec.ByteOrder)
}

func TestNetKind_RecommendByteOrder_RemoteDefaultsBigEndian(t *testing.T) {
	require.Equal(t, binary.BigEndian, codec.NetTCP.RecommendByteOrder())
}
