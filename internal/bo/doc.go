// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bo resolves the host's native byte order, for codecs that want to
// skip a conversion on a same-host transport (codec.NewNativeLengthPrefixed,
// codec.NetKind.RecommendByteOrder).
//
// Resolution is architecture-specific via build tags for the commonly known
// Go ports, falling back to a runtime probe everywhere else; see
// byteorder_le.go, byteorder_be.go, and byteorder_unknown.go.
package bo

import "encoding/binary"

// Native returns the byte order the host architecture uses natively.
func Native() binary.ByteOrder { return nativeOrder() }
