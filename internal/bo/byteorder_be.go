//go:build s390x || ppc64 || mips || mips64

// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bo

import "encoding/binary"

// nativeOrder reports big-endian for every Go port this build tag lists.
func nativeOrder() binary.ByteOrder { return binary.BigEndian }
