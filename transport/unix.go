//go:build unix

// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"io"

	"golang.org/x/sys/unix"

	"code.hybscloud.com/framed"
)

// UnixFD adapts a raw, non-blocking-mode file descriptor (socket, pipe, tty)
// into a framed.Transport, translating EAGAIN/EWOULDBLOCK into
// framed.ErrWouldBlock. The caller is responsible for putting fd into
// non-blocking mode (unix.SetNonblock) before use.
type UnixFD struct {
	fd int
}

// NewUnixFD wraps fd.
func NewUnixFD(fd int) *UnixFD { return &UnixFD{fd: fd} }

// Read implements framed.Transport.
func (u *UnixFD) Read(p []byte) (int, error) {
	n, err := unix.Read(u.fd, p)
	if err != nil {
		if err == unix.EAGAIN || err == unix.EWOULDBLOCK {
			return 0, framed.ErrWouldBlock
		}
		return 0, err
	}
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

// Write implements framed.Transport.
func (u *UnixFD) Write(p []byte) (int, error) {
	n, err := unix.Write(u.fd, p)
	if err != nil {
		if err == unix.EAGAIN || err == unix.EWOULDBLOCK {
			return n, framed.ErrWouldBlock
		}
		return n, err
	}
	return n, nil
}

// Flush is a no-op: a raw fd has no userspace write buffer to drain.
func (u *UnixFD) Flush() error { return nil }

// Shutdown shuts down both directions of the descriptor.
func (u *UnixFD) Shutdown() error { return unix.Shutdown(u.fd, unix.SHUT_RDWR) }
