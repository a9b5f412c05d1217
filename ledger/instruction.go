// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"
)

// well known programs
var (
	SystemProgram        = PublicKey{}
	ComputeBudgetProgram = MustParsePublicKey("ComputeBudget111111111111111111111111111111")
)

// instruction tags
const (
	computeBudgetSetUnitLimit = 2
	systemTransfer            = 2
)

// AccountMeta - one account referenced by an instruction
type AccountMeta struct {
	Key      PublicKey
	Signer   bool
	Writable bool
}

// Instruction - a single call to a program
type Instruction struct {
	Program  PublicKey
	Accounts []AccountMeta
	Data     []byte
}

// ComputeUnitLimit - instruction capping the compute units a transaction may use
func ComputeUnitLimit(units uint32) Instruction {
	data := make([]byte, 5)
	data[0] = computeBudgetSetUnitLimit
	binary.LittleEndian.PutUint32(data[1:], units)
	return Instruction{
		Program: ComputeBudgetProgram,
		Data:    data,
	}
}

// Transfer - system transfer of lamports between two accounts
func Transfer(from PublicKey, to PublicKey, lamports uint64) Instruction {
	data := make([]byte, 12)
	binary.LittleEndian.PutUint32(data[0:], systemTransfer)
	binary.LittleEndian.PutUint64(data[4:], lamports)
	return Instruction{
		Program: SystemProgram,
		Accounts: []AccountMeta{
			{Key: from, Signer: true, Writable: true},
			{Key: to, Writable: true},
		},
		Data: data,
	}
}
