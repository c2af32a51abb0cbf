// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package framed

// Encoder serializes one item into dst.
//
// Contract (enforced by FramedWrite when WithEncoderChecks is set, the
// default): on success, 0 < n <= len(dst). A non-nil err is terminal for the
// current WriteFrame call only -- unlike the read side, FramedWrite does not
// latch after an Encode error, since the scratch buffer was not touched.
type Encoder[T any] interface {
	Encode(item T, dst []byte) (n int, err error)
}
