// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keypair - the miner's signing identity
//
// stored as a JSON array of the 64 private key bytes (seed followed
// by public key), the format written by the ledger's own tooling
package keypair

import (
	"crypto/rand"
	"encoding/json"
	"os"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/ledgerminer/fault"
	"github.com/bitmark-inc/ledgerminer/ledger"
)

// KeyPair - ed25519 keys of the identity
type KeyPair struct {
	private ed25519.PrivateKey
	public  ledger.PublicKey
}

// New - create a new identity from secure random data
func New() (*KeyPair, error) {
	_, private, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, err
	}
	return fromPrivate(private), nil
}

// FromBytes - identity from the 64 private key bytes
// the public half must match the seed
func FromBytes(buffer []byte) (*KeyPair, error) {
	if ed25519.PrivateKeySize != len(buffer) {
		return nil, fault.ErrInvalidKeyLength
	}
	kp := fromPrivate(ed25519.NewKeyFromSeed(buffer[:ed25519.SeedSize]))
	if string(kp.public[:]) != string(buffer[ed25519.SeedSize:]) {
		return nil, fault.ErrInvalidPublicKey
	}
	return kp, nil
}

func fromPrivate(private ed25519.PrivateKey) *KeyPair {
	kp := &KeyPair{
		private: private,
	}
	copy(kp.public[:], private.Public().(ed25519.PublicKey))
	return kp
}

// Load - read an identity file
func Load(fileName string) (*KeyPair, error) {
	data, err := os.ReadFile(fileName)
	if nil != err {
		if os.IsNotExist(err) {
			return nil, fault.ErrFileNotFound
		}
		return nil, err
	}

	var values []int
	if err := json.Unmarshal(data, &values); nil != err {
		return nil, err
	}
	buffer := make([]byte, len(values))
	for i, v := range values {
		if v < 0 || v > 255 {
			return nil, fault.ErrInvalidKeyLength
		}
		buffer[i] = byte(v)
	}
	return FromBytes(buffer)
}

// Save - write a new identity file, never overwriting an existing one
func (kp *KeyPair) Save(fileName string) error {
	values := make([]int, len(kp.private))
	for i, b := range kp.private {
		values[i] = int(b)
	}
	data, err := json.Marshal(values)
	if nil != err {
		return err
	}

	f, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if nil != err {
		if os.IsExist(err) {
			return fault.ErrIdentityExists
		}
		return err
	}
	defer f.Close()

	_, err = f.Write(data)
	return err
}

// PublicKey - the identity's address
func (kp *KeyPair) PublicKey() ledger.PublicKey {
	return kp.public
}

// Sign - ed25519 signature of message
func (kp *KeyPair) Sign(message []byte) ledger.Signature {
	var sig ledger.Signature
	copy(sig[:], ed25519.Sign(kp.private, message))
	return sig
}
