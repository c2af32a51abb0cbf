// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"errors"
	"net"

	"code.hybscloud.com/framed"
)

// NetConn adapts a net.Conn into a framed.Transport. Non-blocking operation
// is driven by deadlines in the usual net.Conn style: set a short
// SetReadDeadline/SetWriteDeadline before a call, and a timeout is reported
// as ErrWouldBlock instead of the raw net.Error, so FramedRead/FramedWrite
// treat it as an ordinary retry signal.
type NetConn struct {
	Conn net.Conn
}

// NewNetConn wraps conn.
func NewNetConn(conn net.Conn) *NetConn { return &NetConn{Conn: conn} }

func asWouldBlock(n int, err error) (int, error) {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return n, framed.ErrWouldBlock
	}
	return n, err
}

// Read implements framed.Transport.
func (c *NetConn) Read(p []byte) (int, error) {
	n, err := c.Conn.Read(p)
	if err == nil {
		return n, nil
	}
	return asWouldBlock(n, err)
}

// Write implements framed.Transport.
func (c *NetConn) Write(p []byte) (int, error) {
	n, err := c.Conn.Write(p)
	if err == nil {
		return n, nil
	}
	return asWouldBlock(n, err)
}

// Flush is a no-op: net.Conn has no userspace write buffer to drain.
func (c *NetConn) Flush() error { return nil }

// Shutdown closes the connection.
func (c *NetConn) Shutdown() error { return c.Conn.Close() }
