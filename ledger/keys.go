// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/ledgerminer/fault"
)

// sizes of the fixed length binary items
const (
	PublicKeyLength = 32
	SignatureLength = 64
	BlockhashLength = 32
)

// PublicKey - an account address
type PublicKey [PublicKeyLength]byte

// Signature - ed25519 signature, the first one also identifies a transaction
type Signature [SignatureLength]byte

// Blockhash - recent block hash that anchors a transaction in time
type Blockhash [BlockhashLength]byte

// ParsePublicKey - decode base58 address text
func ParsePublicKey(s string) (PublicKey, error) {
	var key PublicKey
	err := decode58(key[:], s, fault.ErrInvalidKeyLength)
	return key, err
}

// MustParsePublicKey - for compile time constants only
func MustParsePublicKey(s string) PublicKey {
	key, err := ParsePublicKey(s)
	if nil != err {
		panic("invalid public key: " + s)
	}
	return key
}

// ParseSignature - decode base58 signature text
func ParseSignature(s string) (Signature, error) {
	var sig Signature
	err := decode58(sig[:], s, fault.ErrWrongSignatureLength)
	return sig, err
}

// ParseBlockhash - decode base58 blockhash text
func ParseBlockhash(s string) (Blockhash, error) {
	var hash Blockhash
	err := decode58(hash[:], s, fault.ErrWrongBlockhashLength)
	return hash, err
}

func decode58(out []byte, s string, lengthError error) error {
	buffer, err := base58.Decode(s)
	if nil != err || "" == s {
		return fault.ErrInvalidBase58
	}
	if len(out) != len(buffer) {
		return lengthError
	}
	copy(out, buffer)
	return nil
}

// String - base58 text
func (key PublicKey) String() string {
	return base58.Encode(key[:])
}

// MarshalText - base58 text for JSON
func (key PublicKey) MarshalText() ([]byte, error) {
	return []byte(key.String()), nil
}

// UnmarshalText - base58 text from JSON
func (key *PublicKey) UnmarshalText(s []byte) error {
	k, err := ParsePublicKey(string(s))
	if nil != err {
		return err
	}
	*key = k
	return nil
}

// IsZero - true for the all zero key
func (key PublicKey) IsZero() bool {
	return PublicKey{} == key
}

// String - base58 text
func (sig Signature) String() string {
	return base58.Encode(sig[:])
}

// MarshalText - base58 text for JSON
func (sig Signature) MarshalText() ([]byte, error) {
	return []byte(sig.String()), nil
}

// UnmarshalText - base58 text from JSON
func (sig *Signature) UnmarshalText(s []byte) error {
	v, err := ParseSignature(string(s))
	if nil != err {
		return err
	}
	*sig = v
	return nil
}

// IsZero - true for an unsigned slot
func (sig Signature) IsZero() bool {
	return Signature{} == sig
}

// String - base58 text
func (hash Blockhash) String() string {
	return base58.Encode(hash[:])
}
