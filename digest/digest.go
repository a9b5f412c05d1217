// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package digest

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/ledgerminer/fault"
)

// Length - number of bytes in the digest
const Length = 32

// Digest - type for a digest
// represented as base58 for print
// represented as hex text for JSON encoding
type Digest [Length]byte

// NewDigest - Keccak-256 of the concatenation of all parts
func NewDigest(parts ...[]byte) Digest {
	h := sha3.NewLegacyKeccak256()
	for _, p := range parts {
		h.Write(p)
	}
	var digest Digest
	h.Sum(digest[:0])
	return digest
}

// Cmp - compare as unsigned big endian integers
// returns -1, 0, +1 like bytes.Compare
func (digest Digest) Cmp(other Digest) int {
	return bytes.Compare(digest[:], other[:])
}

// IsZero - true if every byte is zero
func (digest Digest) IsZero() bool {
	return Digest{} == digest
}

// String - base58 text for use by the fmt package (for %s)
func (digest Digest) String() string {
	return base58.Encode(digest[:])
}

// GoString - hex text for use by the fmt package (for %#v)
func (digest Digest) GoString() string {
	return "<Keccak256:" + hex.EncodeToString(digest[:]) + ">"
}

// Scan - convert a hex representation to a digest for use by the format package scan routines
func (digest *Digest) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	return digest.UnmarshalText(token)
}

// MarshalText - convert digest to hex text
func (digest Digest) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(Length))
	hex.Encode(buffer, digest[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	if hex.EncodedLen(Length) != len(s) {
		return fault.ErrWrongDigestLength
	}
	_, err := hex.Decode(digest[:], s)
	return err
}

// FromBytes - convert and validate a binary byte slice to a digest
func FromBytes(digest *Digest, buffer []byte) error {
	if Length != len(buffer) {
		return fault.ErrWrongDigestLength
	}
	copy(digest[:], buffer)
	return nil
}

// FromBase58 - convert base58 text to a digest
func FromBase58(s string) (Digest, error) {
	var digest Digest
	buffer, err := base58.Decode(s)
	if nil != err {
		return digest, fault.ErrInvalidBase58
	}
	err = FromBytes(&digest, buffer)
	return digest, err
}
