// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package search

import (
	"encoding/binary"
	"hash"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/ledgerminer/digest"
	"github.com/bitmark-inc/ledgerminer/ledger"
)

// Hasher - per worker digest function for one round
// a Hasher is used by a single goroutine
type Hasher interface {
	Hash(nonce uint64) digest.Digest
}

// HasherFactory - creates a Hasher bound to a round's challenge and identity
type HasherFactory func(challenge digest.Digest, identity ledger.PublicKey) Hasher

// keccak hasher reuses its state and input buffer across nonces
type keccakHasher struct {
	state  hash.Hash
	buffer [digest.Length + ledger.PublicKeyLength + 8]byte
}

// NewKeccakHasher - Keccak-256(challenge ∥ identity ∥ nonce_le64)
func NewKeccakHasher(challenge digest.Digest, identity ledger.PublicKey) Hasher {
	h := &keccakHasher{
		state: sha3.NewLegacyKeccak256(),
	}
	copy(h.buffer[0:], challenge[:])
	copy(h.buffer[digest.Length:], identity[:])
	return h
}

func (h *keccakHasher) Hash(nonce uint64) digest.Digest {
	binary.LittleEndian.PutUint64(h.buffer[digest.Length+ledger.PublicKeyLength:], nonce)
	h.state.Reset()
	h.state.Write(h.buffer[:])
	var d digest.Digest
	h.state.Sum(d[:0])
	return d
}

// Compute - one-shot form of the candidate digest
func Compute(challenge digest.Digest, identity ledger.PublicKey, nonce uint64) digest.Digest {
	var n [8]byte
	binary.LittleEndian.PutUint64(n[:], nonce)
	return digest.NewDigest(challenge[:], identity[:], n[:])
}
