// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

// CompactU16MaximumBytes - maximum possible number of bytes in CompactU16
const CompactU16MaximumBytes = 3

// ToCompactU16 - convert a 16 bit unsigned integer to the compact
// length prefix used by the transaction wire format
//
// Structure of the result
// byte 1:  ext | B06 | B05 | B04 | B03 | B02 | B01 | B00
// byte 2:  ext | B13 | B12 | B11 | B10 | B09 | B08 | B07
// byte 3:    0 |   0 |   0 |   0 |   0 |   0 | B15 | B14
func ToCompactU16(value uint16) []byte {
	result := make([]byte, 0, CompactU16MaximumBytes)
	v := uint32(value)
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if 0 == v {
			return append(result, b)
		}
		result = append(result, b|0x80)
	}
}

// AppendCompactU16 - append the compact form of value to buffer
func AppendCompactU16(buffer []byte, value uint16) []byte {
	return append(buffer, ToCompactU16(value)...)
}

// FromCompactU16 - convert up to CompactU16MaximumBytes to a uint16
//
// also return the number of bytes used as second value
// returns 0, 0 if the buffer is truncated, overflows 16 bits or is
// not the shortest encoding
func FromCompactU16(buffer []byte) (uint16, int) {
	result := uint32(0)
	shift := uint(0)

	for count := 0; count < CompactU16MaximumBytes && count < len(buffer); count += 1 {
		currByte := buffer[count]
		if count > 0 && 0 == currByte {
			return 0, 0
		}
		if CompactU16MaximumBytes-1 == count && currByte > 0x03 {
			return 0, 0
		}
		result |= uint32(currByte&0x7f) << shift
		if 0 == currByte&0x80 {
			return uint16(result), count + 1
		}
		shift += 7
	}
	return 0, 0
}
