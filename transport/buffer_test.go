// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transport_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/framed"
	"code.hybscloud.com/framed/transport"
)

func TestBuffer_LoopbackReadWouldBlockUntilWritten(t *testing.T) {
	b := transport.NewBuffer()

	_, err := b.Read(make([]byte, 8))
	require.ErrorIs(t, err, framed.ErrWouldBlock)

	_, err = b.Write([]byte("hi"))
	require.NoError(t, err)

	got := make([]byte, 8)
	n, err := b.Read(got)
	require.NoError(t, err)
	require.Equal(t, "hi", string(got[:n]))
}

func TestBuffer_ShutdownYieldsEOFAfterDrain(t *testing.T) {
	b := transport.NewBuffer()
	_, err := b.Write([]byte("x"))
	require.NoError(t, err)
	require.NoError(t, b.Shutdown())

	got := make([]byte, 8)
	n, err := b.Read(got)
	require.NoError(t, err)
	require.Equal(t, "x", string(got[:n]))

	_, err = b.Read(got)
	require.ErrorIs(t, err, io.EOF)
}

func TestBuffer_WriteAfterShutdown_Fails(t *testing.T) {
	b := transport.NewBuffer()
	require.NoError(t, b.Shutdown())

	_, err := b.Write([]byte("late"))
	require.ErrorIs(t, err, io.ErrClosedPipe)
}

func TestBufferPair_FullDuplex(t *testing.T) {
	a, b := transport.NewBufferPair()

	_, err := a.Write([]byte("from a"))
	require.NoError(t, err)
	_, err = b.Write([]byte("from b"))
	require.NoError(t, err)

	got := make([]byte, 16)
	n, err := b.Read(got)
	require.NoError(t, err)
	require.Equal(t, "from a", string(got[:n]))

	n, err = a.Read(got)
	require.NoError(t, err)
	require.Equal(t, "from b", string(got[:n]))
}
