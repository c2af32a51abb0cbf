// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framed_test

import (
	"bytes"
	"io"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/framed"
	"code.hybscloud.com/framed/codec"
	"code.hybscloud.com/framed/transport"
)

// choppyTransport accepts at most limit bytes per Write call, reporting
// ErrWouldBlock on a short write, the way a non-blocking socket buffer would.
type choppyTransport struct {
	buf    bytes.Buffer
	limit  int
	closed bool
}

func (c *choppyTransport) Read(p []byte) (int, error) { return 0, framed.ErrWouldBlock }

func (c *choppyTransport) Write(p []byte) (int, error) {
	n := c.limit
	if n > len(p) {
		n = len(p)
	}
	if n <= 0 {
		return 0, framed.ErrWouldBlock
	}
	c.buf.Write(p[:n])
	if n < len(p) {
		return n, framed.ErrWouldBlock
	}
	return n, nil
}

func (c *choppyTransport) Flush() error    { return nil }
func (c *choppyTransport) Shutdown() error { c.closed = true; return nil }

func TestFramedWrite_RoundTrip(t *testing.T) {
	buf := transport.NewBuffer()
	fw, err := framed.NewFramedWrite[[]byte](buf, codec.NewLengthPrefixed(), make([]byte, 64))
	require.NoError(t, err)

	require.NoError(t, fw.SendFrame([]byte("hello")))
	require.NoError(t, fw.SendFrame([]byte("world!")))

	fr, err := framed.NewFramedRead[[]byte](buf, codec.NewLengthPrefixed(), make([]byte, 64))
	require.NoError(t, err)

	item, err := fr.ReadFrame()
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), item)

	item, err = fr.ReadFrame()
	require.NoError(t, err)
	require.Equal(t, []byte("world!"), item)
}

func TestFramedWrite_FlushResumesAfterWouldBlock(t *testing.T) {
	tr := &choppyTransport{limit: 3}
	fw, err := framed.NewFramedWrite[[]byte](tr, codec.NewLengthPrefixed(), make([]byte, 64))
	require.NoError(t, err)

	require.NoError(t, fw.WriteFrame([]byte("hello")))

	var flushErr error
	for i := 0; i < 10; i++ {
		flushErr = fw.Flush()
		if flushErr == nil {
			break
		}
		require.ErrorIs(t, flushErr, framed.ErrWouldBlock)
	}
	require.NoError(t, flushErr)

	want := append([]byte{5, 0, 0, 0}, []byte("hello")...)
	require.Equal(t, want, tr.buf.Bytes())
}

func TestFramedWrite_Ready_Backpressure(t *testing.T) {
	buf := transport.NewBuffer()
	fw, err := framed.NewFramedWrite[[]byte](buf, codec.Raw{}, make([]byte, 8), framed.WithBackpressureBoundary(4))
	require.NoError(t, err)

	require.NoError(t, fw.WriteFrame([]byte("ab")))
	require.NoError(t, fw.WriteFrame([]byte("cd")))

	// index (4) has now reached the boundary (4); Ready must flush.
	require.NoError(t, fw.Ready())

	got := make([]byte, 4)
	n, err := buf.Read(got)
	require.NoError(t, err)
	require.Equal(t, "abcd", string(got[:n]))
}

func TestFramedWrite_Send_SinkWritesEveryItemThenFlushesOnce(t *testing.T) {
	buf := transport.NewBuffer()
	fw, err := framed.NewFramedWrite[[]byte](buf, codec.NewLengthPrefixed(), make([]byte, 64))
	require.NoError(t, err)

	items := [][]byte{[]byte("a"), []byte("bb"), []byte("ccc")}
	require.NoError(t, fw.Send(slices.Values(items)))

	fr, err := framed.NewFramedRead[[]byte](buf, codec.NewLengthPrefixed(), make([]byte, 64))
	require.NoError(t, err)

	for _, want := range items {
		got, err := fr.ReadFrame()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestFramedWrite_Send_SinkStopsOnBadEncoder(t *testing.T) {
	fw, err := framed.NewFramedWrite[[]byte](transport.NewBuffer(), badEncoder{}, make([]byte, 16))
	require.NoError(t, err)

	err = fw.Send(slices.Values([][]byte{[]byte("x")}))
	require.ErrorIs(t, err, framed.ErrBadEncoder)
}

type badEncoder struct{}

func (badEncoder) Encode(item []byte, dst []byte) (int, error) { return 0, nil }

func TestFramedWrite_BadEncoder(t *testing.T) {
	fw, err := framed.NewFramedWrite[[]byte](transport.NewBuffer(), badEncoder{}, make([]byte, 16))
	require.NoError(t, err)

	err = fw.WriteFrame([]byte("x"))
	require.ErrorIs(t, err, framed.ErrBadEncoder)
}

func TestFramedWrite_Close(t *testing.T) {
	buf := transport.NewBuffer()
	fw, err := framed.NewFramedWrite[[]byte](buf, codec.NewLengthPrefixed(), make([]byte, 64))
	require.NoError(t, err)

	require.NoError(t, fw.WriteFrame([]byte("bye")))
	require.NoError(t, fw.Close())

	got := make([]byte, 7)
	n, err := buf.Read(got)
	require.NoError(t, err)
	require.Equal(t, 7, n)

	_, err = buf.Read(make([]byte, 1))
	require.ErrorIs(t, err, io.EOF)
}
