// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/ledgerminer/fault"
	"github.com/bitmark-inc/ledgerminer/ledger"
)

type testSigner struct {
	private ed25519.PrivateKey
}

func newTestSigner(seed byte) *testSigner {
	return &testSigner{
		private: ed25519.NewKeyFromSeed(bytes.Repeat([]byte{seed}, ed25519.SeedSize)),
	}
}

func (s *testSigner) PublicKey() ledger.PublicKey {
	var key ledger.PublicKey
	copy(key[:], s.private.Public().(ed25519.PublicKey))
	return key
}

func (s *testSigner) Sign(message []byte) ledger.Signature {
	var sig ledger.Signature
	copy(sig[:], ed25519.Sign(s.private, message))
	return sig
}

func filled(b byte) ledger.PublicKey {
	var key ledger.PublicKey
	for i := range key {
		key[i] = b
	}
	return key
}

func TestSerializeUnsigned(t *testing.T) {
	payer := filled(1)
	program := filled(2)
	account := filled(3)
	var blockhash ledger.Blockhash
	for i := range blockhash {
		blockhash[i] = 4
	}

	tx := ledger.NewTransaction(payer, ledger.Instruction{
		Program:  program,
		Accounts: []ledger.AccountMeta{{Key: account, Writable: true}},
		Data:     []byte{9},
	})
	tx.Blockhash = blockhash

	expected := []byte{1}
	expected = append(expected, make([]byte, 64)...)
	expected = append(expected, 1, 0, 1, 3)
	expected = append(expected, payer[:]...)
	expected = append(expected, account[:]...)
	expected = append(expected, program[:]...)
	expected = append(expected, blockhash[:]...)
	expected = append(expected, 1, 2, 1, 1, 1, 9)

	actual, err := tx.Serialize()
	assert.Nil(t, err, "serialize")
	assert.Equal(t, expected, actual, "wire bytes")

	text, err := tx.Base64()
	assert.Nil(t, err, "base64")
	assert.Equal(t, base64.StdEncoding.EncodeToString(expected), text, "base64 text")
}

func TestAccountOrdering(t *testing.T) {
	payer := filled(1)
	readonlyUnsigned := filled(5)
	writableUnsigned := filled(6)
	program := filled(7)

	tx := ledger.NewTransaction(payer, ledger.Instruction{
		Program: program,
		Accounts: []ledger.AccountMeta{
			{Key: readonlyUnsigned},
			{Key: writableUnsigned, Writable: true},
			{Key: payer, Signer: true, Writable: true},
		},
	})

	message, err := tx.Message()
	assert.Nil(t, err, "message")
	assert.Equal(t, []byte{1, 0, 2, 4}, message[0:4], "header and key count")

	keys := message[4 : 4+4*32]
	assert.Equal(t, payer[:], keys[0:32], "fee payer first")
	assert.Equal(t, writableUnsigned[:], keys[32:64], "writable next")
	assert.Equal(t, readonlyUnsigned[:], keys[64:96], "read-only after")
	assert.Equal(t, program[:], keys[96:128], "program last")

	rest := message[4+4*32+32:]
	assert.Equal(t, []byte{1, 3, 3, 2, 1, 0, 0}, rest, "compiled instruction")
}

func TestSignAndVerify(t *testing.T) {
	signer := newTestSigner(42)
	tx := ledger.NewTransaction(signer.PublicKey(), ledger.ComputeUnitLimit(1400))

	var blockhash ledger.Blockhash
	blockhash[0] = 0xaa

	err := tx.Sign(blockhash, signer)
	assert.Nil(t, err, "sign")
	assert.False(t, tx.Signature().IsZero(), "signature set")

	message, err := tx.Message()
	assert.Nil(t, err, "message")
	sig := tx.Signature()
	ok := ed25519.Verify(signer.private.Public().(ed25519.PublicKey), message, sig[:])
	assert.True(t, ok, "signature verifies")

	wire, err := tx.Serialize()
	assert.Nil(t, err, "serialize")
	assert.Equal(t, byte(1), wire[0], "one signature")
	assert.Equal(t, sig[:], wire[1:65], "signature on the wire")

	tx.Prepend(ledger.ComputeUnitLimit(2000))
	assert.True(t, tx.Signature().IsZero(), "prepend drops signatures")
}

func TestSignMissingSigner(t *testing.T) {
	payer := newTestSigner(1)
	other := newTestSigner(2)

	tx := ledger.NewTransaction(payer.PublicKey(), ledger.Transfer(other.PublicKey(), payer.PublicKey(), 5))
	err := tx.Sign(ledger.Blockhash{}, payer)
	assert.True(t, errors.Is(err, fault.ErrMissingSigner), "missing signer: %v", err)

	err = tx.Sign(ledger.Blockhash{}, payer, other)
	assert.Nil(t, err, "both signers")
	assert.Equal(t, 2, len(tx.Signatures), "two signatures")
}

func TestMissingFeePayer(t *testing.T) {
	tx := ledger.NewTransaction(ledger.PublicKey{}, ledger.ComputeUnitLimit(1))
	_, err := tx.Serialize()
	assert.Equal(t, fault.ErrMissingFeePayer, err, "zero fee payer")
}
