// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"encoding/binary"
	"math/rand"
	"sync"
	"time"

	"github.com/bitmark-inc/ledgerminer/digest"
	"github.com/bitmark-inc/ledgerminer/fault"
	"github.com/bitmark-inc/ledgerminer/ledger"
	"github.com/bitmark-inc/ledgerminer/search"
)

// instruction tags
const (
	mineTag = 2
)

// SlotHashes - the sysvar the program reads to bind a proof to recent slots
var SlotHashes = ledger.MustParsePublicKey("SysvarS1otHashes111111111111111111111111111")

// Addresses - the program and its fixed accounts
type Addresses struct {
	Program  ledger.PublicKey
	Proof    ledger.PublicKey
	Treasury ledger.PublicKey
	Buses    []ledger.PublicKey
}

// Tip - optional transfer appended to every mine transaction
type Tip struct {
	Lamports uint64
	Accounts []ledger.PublicKey
}

// Builder - produces the instructions for a solution
type Builder struct {
	sync.Mutex
	addresses Addresses
	tip       Tip
	random    *rand.Rand
}

// NewBuilder - create a builder; a nil source is seeded from the clock
func NewBuilder(addresses Addresses, tip Tip, source rand.Source) (*Builder, error) {
	if 0 == len(addresses.Buses) {
		return nil, fault.ErrEmptyBusList
	}
	if nil == source {
		source = rand.NewSource(time.Now().UnixNano())
	}
	return &Builder{
		addresses: addresses,
		tip:       tip,
		random:    rand.New(source),
	}, nil
}

// Mine - the mine instruction for a solution on a random bus,
// followed by a tip transfer to a random tip account if configured
func (b *Builder) Mine(authority ledger.PublicKey, solution search.Solution) []ledger.Instruction {
	b.Lock()
	bus := b.addresses.Buses[b.random.Intn(len(b.addresses.Buses))]
	var tipAccount ledger.PublicKey
	tipping := 0 != b.tip.Lamports && 0 != len(b.tip.Accounts)
	if tipping {
		tipAccount = b.tip.Accounts[b.random.Intn(len(b.tip.Accounts))]
	}
	b.Unlock()

	instructions := []ledger.Instruction{
		MineInstruction(b.addresses, authority, bus, solution.Digest, solution.Nonce),
	}
	if tipping {
		instructions = append(instructions, ledger.Transfer(authority, tipAccount, b.tip.Lamports))
	}
	return instructions
}

// MineInstruction - tag, digest, little endian nonce
func MineInstruction(addresses Addresses, authority ledger.PublicKey, bus ledger.PublicKey, hash digest.Digest, nonce uint64) ledger.Instruction {
	data := make([]byte, 1+digest.Length+8)
	data[0] = mineTag
	copy(data[1:], hash[:])
	binary.LittleEndian.PutUint64(data[1+digest.Length:], nonce)

	return ledger.Instruction{
		Program: addresses.Program,
		Accounts: []ledger.AccountMeta{
			{Key: authority, Signer: true, Writable: true},
			{Key: bus, Writable: true},
			{Key: addresses.Proof, Writable: true},
			{Key: addresses.Treasury},
			{Key: SlotHashes},
		},
		Data: data,
	}
}
