// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package difficulty - the inclusive upper bound a solution digest must meet
package difficulty

import (
	"bytes"
	"encoding/hex"
	"math/bits"

	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/ledgerminer/digest"
	"github.com/bitmark-inc/ledgerminer/fault"
)

// Length - number of bytes in a target
const Length = digest.Length

// Target - 256 bit unsigned big endian bound
// a digest d qualifies when d <= Target
type Target [Length]byte

// Easiest - every digest qualifies
var Easiest = Target{
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
}

// Met - true if the digest is less than or equal to the target,
// comparing byte by byte from the most significant byte
func (target Target) Met(d digest.Digest) bool {
	return bytes.Compare(d[:], target[:]) <= 0
}

// FromLeadingZeroBits - the target that requires n leading zero bits
// n is clamped to [0, 256]
func FromLeadingZeroBits(n int) Target {
	if n < 0 {
		n = 0
	}
	if n > 8*Length {
		n = 8 * Length
	}
	target := Easiest
	for i := 0; i < n/8; i += 1 {
		target[i] = 0
	}
	if r := n % 8; 0 != r && n/8 < Length {
		target[n/8] = 0xff >> uint(r)
	}
	return target
}

// LeadingZeroBits - count of leading zero bits, as a rough strength figure
func (target Target) LeadingZeroBits() int {
	n := 0
	for _, b := range target {
		if 0 == b {
			n += 8
			continue
		}
		return n + bits.LeadingZeros8(b)
	}
	return n
}

// FromBytes - convert and validate a binary byte slice to a target
func FromBytes(target *Target, buffer []byte) error {
	if Length != len(buffer) {
		return fault.ErrWrongDigestLength
	}
	copy(target[:], buffer)
	return nil
}

// String - hex for use by the fmt package (for %s)
func (target Target) String() string {
	return hex.EncodeToString(target[:])
}

// Base58 - the same text form the ledger tooling displays
func (target Target) Base58() string {
	return base58.Encode(target[:])
}

// MarshalText - convert target to hex text
func (target Target) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(Length))
	hex.Encode(buffer, target[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a target
func (target *Target) UnmarshalText(s []byte) error {
	if hex.EncodedLen(Length) != len(s) {
		return fault.ErrWrongDigestLength
	}
	_, err := hex.Decode(target[:], s)
	return err
}
