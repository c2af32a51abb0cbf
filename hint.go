// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framed

// Hint is a Decoder's optional statement of how many bytes, in total, it will
// ultimately need to produce a frame. It is only meaningful immediately after
// a Decode or DecodeEOF call that reported "no frame yet" (consumed == 0,
// err == nil); the engine discards it otherwise.
//
// A Known hint lets FramedRead reject a frame that can never fit the scratch
// buffer (ErrBufferTooSmall) without waiting for the bytes to arrive, and
// lets it decide early whether a compaction is needed. Its absence (the zero
// Hint) must never change the frames produced, only how promptly they arrive.
type Hint struct {
	Known bool
	Size  int
}

// Unknown is the zero Hint: the decoder cannot yet say how many bytes it needs.
var Unknown = Hint{}

// KnownSize returns a Hint declaring that exactly n bytes, from the start of
// the framable window, are required to decode the next frame.
func KnownSize(n int) Hint { return Hint{Known: true, Size: n} }
