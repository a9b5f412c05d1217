// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared set up for package tests
package fixtures

import (
	"bytes"
	"fmt"
	"os"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerminer/ledger"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// SetupTestLogger - log to a scratch directory below the package
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// Signer - deterministic ed25519 signer for tests
type Signer struct {
	private ed25519.PrivateKey
}

// NewSigner - signer whose seed is 32 copies of b
func NewSigner(b byte) *Signer {
	return &Signer{
		private: ed25519.NewKeyFromSeed(bytes.Repeat([]byte{b}, ed25519.SeedSize)),
	}
}

// PublicKey - the signer's address
func (s *Signer) PublicKey() ledger.PublicKey {
	var key ledger.PublicKey
	copy(key[:], s.private.Public().(ed25519.PublicKey))
	return key
}

// Sign - ed25519 signature of message
func (s *Signer) Sign(message []byte) ledger.Signature {
	var sig ledger.Signature
	copy(sig[:], ed25519.Sign(s.private, message))
	return sig
}
