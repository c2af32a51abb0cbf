// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/framed"
	"code.hybscloud.com/framed/codec"
)

func TestLengthPrefixed_RoundTrip(t *testing.T) {
	c := codec.NewLengthPrefixed()
	dst := make([]byte, 32)

	n, err := c.Encode([]byte("hello"), dst)
	require.NoError(t, err)
	require.Equal(t, 9, n)

	item, consumed, err := c.Decode(dst[:n])
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), item)
	require.Equal(t, n, consumed)
}

func TestLengthPrefixed_DecodeWaitsForFullFrame(t *testing.T) {
	c := codec.NewLengthPrefixed()
	dst := make([]byte, 32)
	n, err := c.Encode([]byte("hello"), dst)
	require.NoError(t, err)

	_, consumed, err := c.Decode(dst[:3])
	require.NoError(t, err)
	require.Zero(t, consumed)

	_, consumed, err = c.Decode(dst[:n-1])
	require.NoError(t, err)
	require.Zero(t, consumed)
}

func TestLengthPrefixed_Hint(t *testing.T) {
	c := codec.NewLengthPrefixed()
	dst := make([]byte, 32)
	n, err := c.Encode([]byte("hello"), dst)
	require.NoError(t, err)

	require.Equal(t, framed.Unknown, c.Hint(dst[:3]))
	require.Equal(t, framed.KnownSize(n), c.Hint(dst[:4]))
}

func TestNativeLengthPrefixed_RoundTrip(t *testing.T) {
	c := codec.NewNativeLengthPrefixed()
	dst := make([]byte, 32)

	n, err := c.Encode([]byte("native"), dst)
	require.NoError(t, err)

	item, consumed, err := c.Decode(dst[:n])
	require.NoError(t, err)
	require.Equal(t, []byte("native"), item)
	require.Equal(t, n, consumed)
}

func TestLengthPrefixed_OutputTooSmall(t *testing.T) {
	c := codec.NewLengthPrefixed()
	_, err := c.Encode([]byte("hello"), make([]byte, 4))
	require.ErrorIs(t, err, codec.ErrOutputTooSmall)
}
