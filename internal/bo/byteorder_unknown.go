//go:build !amd64 && !arm64 && !386 && !riscv64 && !ppc64le && !mips64le && !mipsle && !loong64 && !wasm && !arm && !s390x && !ppc64 && !mips && !mips64

// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bo

import (
	"encoding/binary"
	"sync"
	"unsafe"
)

// probeByteOrder writes a known bit pattern and inspects its first byte to
// tell little- from big-endian at runtime, for ports not covered by the
// static build tags in byteorder_le.go/byteorder_be.go.
func probeByteOrder() binary.ByteOrder {
	x := uint16(0x0102)
	if *(*byte)(unsafe.Pointer(&x)) == 0x01 {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

var nativeOrder = sync.OnceValue(probeByteOrder)
