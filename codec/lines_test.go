// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/framed/codec"
)

func TestLineBytes_Decode(t *testing.T) {
	c := &codec.LineBytes{}

	item, n, err := c.Decode([]byte("1\r\n2\n3\r\nrest"))
	require.NoError(t, err)
	require.Equal(t, []byte("1"), item)
	require.Equal(t, 3, n)

	item, n, err = c.Decode([]byte("2\n3\r\nrest"))
	require.NoError(t, err)
	require.Equal(t, []byte("2"), item)
	require.Equal(t, 2, n)

	item, n, err = c.Decode([]byte("rest"))
	require.NoError(t, err)
	require.Nil(t, item)
	require.Zero(t, n)
}

func TestLineBytes_Decode_AcrossRefills(t *testing.T) {
	c := &codec.LineBytes{}

	item, n, err := c.Decode([]byte("ab"))
	require.NoError(t, err)
	require.Zero(t, n)
	require.Nil(t, item)
	require.Equal(t, 2, c.Seen())

	item, n, err = c.Decode([]byte("abc\n"))
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), item)
	require.Equal(t, 4, n)
}

func TestLineBytes_Encode(t *testing.T) {
	var c codec.LineBytes
	dst := make([]byte, 16)
	n, err := c.Encode([]byte("hi"), dst)
	require.NoError(t, err)
	require.Equal(t, []byte("hi\r\n"), dst[:n])
}

func TestLines_RejectsInvalidUTF8(t *testing.T) {
	c := &codec.Lines{}
	_, _, err := c.Decode([]byte{0xff, 0xfe, '\n'})
	require.ErrorIs(t, err, codec.ErrInvalidUTF8)
}

func TestLines_RoundTrip(t *testing.T) {
	c := &codec.Lines{}
	dst := make([]byte, 16)
	n, err := c.Encode("hello", dst)
	require.NoError(t, err)

	item, consumed, err := c.Decode(dst[:n])
	require.NoError(t, err)
	require.Equal(t, "hello", item)
	require.Equal(t, n, consumed)
}
