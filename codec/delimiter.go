// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec

import (
	"bytes"
	"errors"

	"code.hybscloud.com/framed"
)

// ErrEmptyDelimiter is returned by NewDelimiter for a zero-length delimiter.
var ErrEmptyDelimiter = errors.New("codec: delimiter must not be empty")

// Delimiter decodes frames separated by an arbitrary, fixed byte sequence,
// generalizing LineBytes to any delimiter instead of hardcoding "\n". Like
// LineBytes, seen only ever advances forward between matches, so repeated
// partial scans are avoided across transport reads.
type Delimiter struct {
	framed.Owned
	delim []byte
	seen  int
}

// NewDelimiter constructs a Delimiter codec. delim is retained, not copied;
// callers must not mutate it afterward.
func NewDelimiter(delim []byte) (*Delimiter, error) {
	if len(delim) == 0 {
		return nil, ErrEmptyDelimiter
	}
	return &Delimiter{delim: delim}, nil
}

// Seen returns how many bytes of the current, still-incomplete frame have
// already been scanned.
func (c *Delimiter) Seen() int { return c.seen }

// Decode implements framed.Decoder.
func (c *Delimiter) Decode(src []byte) ([]byte, int, error) {
	for c.seen+len(c.delim) <= len(src) {
		if !bytes.HasPrefix(src[c.seen:], c.delim) {
			c.seen++
			continue
		}
		item := append([]byte(nil), src[:c.seen]...)
		consumed := c.seen + len(c.delim)
		c.seen = 0
		return item, consumed, nil
	}
	return nil, 0, nil
}

// Encode writes item followed by the delimiter.
func (c *Delimiter) Encode(item []byte, dst []byte) (int, error) {
	need := len(item) + len(c.delim)
	if len(dst) < need {
		return 0, ErrOutputTooSmall
	}
	n := copy(dst, item)
	copy(dst[n:], c.delim)
	return need, nil
}
