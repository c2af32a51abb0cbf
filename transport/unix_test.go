//go:build unix

// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transport_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"code.hybscloud.com/framed"
	"code.hybscloud.com/framed/transport"
)

func socketpair(t *testing.T) (int, int) {
	t.Helper()
	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	require.NoError(t, err)
	require.NoError(t, unix.SetNonblock(fds[0], true))
	require.NoError(t, unix.SetNonblock(fds[1], true))
	t.Cleanup(func() {
		_ = unix.Close(fds[0])
		_ = unix.Close(fds[1])
	})
	return fds[0], fds[1]
}

func TestUnixFD_RoundTrip(t *testing.T) {
	fdA, fdB := socketpair(t)
	a := transport.NewUnixFD(fdA)
	b := transport.NewUnixFD(fdB)

	n, err := a.Write([]byte("ping"))
	require.NoError(t, err)
	require.Equal(t, 4, n)

	got := make([]byte, 8)
	n, err = b.Read(got)
	require.NoError(t, err)
	require.Equal(t, "ping", string(got[:n]))
}

func TestUnixFD_ReadWouldBlockWhenEmpty(t *testing.T) {
	fdA, _ := socketpair(t)
	a := transport.NewUnixFD(fdA)

	_, err := a.Read(make([]byte, 8))
	require.ErrorIs(t, err, framed.ErrWouldBlock)
}

func TestUnixFD_Shutdown(t *testing.T) {
	fdA, fdB := socketpair(t)
	a := transport.NewUnixFD(fdA)
	b := transport.NewUnixFD(fdB)

	require.NoError(t, a.Shutdown())

	got := make([]byte, 8)
	n, err := b.Read(got)
	require.ErrorIs(t, err, io.EOF)
	require.Zero(t, n)
}
