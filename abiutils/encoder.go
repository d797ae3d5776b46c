// Copyright (c) 2025 fueltools
// SPDX-License-Identifier: Apache-2.0
// This file is part of the dynamic-abi library.

// Package abiutils provides the low-level append-style primitives shared by
// the ABI encoder: big-endian word padding, string padding and zero-fill
// helpers, plus the sentinel errors of the library.
package abiutils

import "encoding/binary"

// WordSize is the base alignment granularity of the wire format in bytes.
const WordSize = 8

// DiscriminantWordWidth is the number of words occupied by an enum
// discriminant on the wire.
const DiscriminantWordWidth = 1

// ---- Word padding functions ----

// PadUint8 appends v right-justified into one big-endian word.
func PadUint8(dst []byte, v uint8) []byte {
	dst = AppendZeroPadding(dst, WordSize-1)
	return append(dst, v)
}

// PadUint16 appends v right-justified into one big-endian word.
func PadUint16(dst []byte, v uint16) []byte {
	dst = AppendZeroPadding(dst, WordSize-2)
	return binary.BigEndian.AppendUint16(dst, v)
}

// PadUint32 appends v right-justified into one big-endian word.
func PadUint32(dst []byte, v uint32) []byte {
	dst = AppendZeroPadding(dst, WordSize-4)
	return binary.BigEndian.AppendUint32(dst, v)
}

// AppendUint64 appends v as one big-endian word, no padding.
func AppendUint64(dst []byte, v uint64) []byte {
	return binary.BigEndian.AppendUint64(dst, v)
}

// PadBool appends b as one word, 1 for true and 0 for false.
func PadBool(dst []byte, b bool) []byte {
	if b {
		return PadUint8(dst, 1)
	}
	return PadUint8(dst, 0)
}

// PadString appends the raw UTF-8 bytes of s followed by zero bytes up to
// the next word boundary.
func PadString(dst []byte, s string) []byte {
	dst = append(dst, s...)
	if pad := len(s) % WordSize; pad != 0 {
		dst = AppendZeroPadding(dst, WordSize-pad)
	}
	return dst
}

// ---- Zero padding ----

var zeroBytes []byte

// ZeroBytes returns a shared all-zero pad buffer.
func ZeroBytes() []byte {
	if len(zeroBytes) == 0 {
		zeroBytes = make([]byte, 1024)
	}
	return zeroBytes
}

// AppendZeroPadding appends the specified number of zero bytes to buf.
func AppendZeroPadding(buf []byte, count int) []byte {
	if len(zeroBytes) == 0 {
		zeroBytes = ZeroBytes()
	}
	for count > 0 {
		toCopy := count
		if toCopy > len(zeroBytes) {
			toCopy = len(zeroBytes)
		}
		buf = append(buf, zeroBytes[:toCopy]...)
		count -= toCopy
	}
	return buf
}
