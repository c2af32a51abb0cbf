// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framed

import "code.hybscloud.com/iox"

// Transport is the minimal async-capable byte channel the engine drives.
// Implementations may be genuinely non-blocking (returning ErrWouldBlock
// when no progress is currently possible) or ordinary blocking io.Reader/
// io.Writer wrappers; FramedRead and FramedWrite do not care which, since
// every operation they perform is a single call that either makes progress
// or reports an error.
//
// Read returning (0, nil) for a nonempty buffer is a contract violation, not
// a valid "no data yet" signal -- use ErrWouldBlock for that. Read returning
// (0, io.EOF) signals a clean end of stream.
type Transport interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	Flush() error
	Shutdown() error
}

// These are re-exported so callers can reference the semantic control-flow
// errors without importing iox directly, following the teacher package's
// own alias pattern.
var (
	// ErrWouldBlock means "no further progress without waiting". It is an
	// expected, non-failure control-flow signal for non-blocking I/O.
	ErrWouldBlock = iox.ErrWouldBlock

	// ErrMore means "this completion is usable and more completions will
	// follow". The operation remains active; call again for the next chunk.
	ErrMore = iox.ErrMore
)
