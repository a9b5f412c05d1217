// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/base64"
	"fmt"
	"math"

	"github.com/bitmark-inc/ledgerminer/fault"
	"github.com/bitmark-inc/ledgerminer/util"
)

// Signer - holder of a private key
type Signer interface {
	PublicKey() PublicKey
	Sign(message []byte) Signature
}

// Transaction - ordered instructions paid for by a fee payer
type Transaction struct {
	FeePayer     PublicKey
	Instructions []Instruction
	Blockhash    Blockhash
	Signatures   []Signature
}

// NewTransaction - unsigned transaction without a blockhash
func NewTransaction(feePayer PublicKey, instructions ...Instruction) *Transaction {
	ixs := make([]Instruction, len(instructions))
	copy(ixs, instructions)
	return &Transaction{
		FeePayer:     feePayer,
		Instructions: ixs,
	}
}

// Prepend - insert an instruction ahead of all others
// any existing signatures become invalid and are dropped
func (tx *Transaction) Prepend(ix Instruction) {
	tx.Instructions = append([]Instruction{ix}, tx.Instructions...)
	tx.Signatures = nil
}

// Signature - the identifying signature, zero if unsigned
func (tx *Transaction) Signature() Signature {
	if 0 == len(tx.Signatures) {
		return Signature{}
	}
	return tx.Signatures[0]
}

// Sign - set the blockhash and sign with every required signer
func (tx *Transaction) Sign(blockhash Blockhash, signers ...Signer) error {
	tx.Blockhash = blockhash
	compiled, err := tx.compile()
	if nil != err {
		return err
	}
	message := compiled.encode()

	signatures := make([]Signature, compiled.requiredSignatures)
	for i := 0; i < compiled.requiredSignatures; i += 1 {
		key := compiled.keys[i]
		found := false
		for _, s := range signers {
			if s.PublicKey() == key {
				signatures[i] = s.Sign(message)
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("no signer for %s: %w", key, fault.ErrMissingSigner)
		}
	}
	tx.Signatures = signatures
	return nil
}

// Message - the bytes that are signed
func (tx *Transaction) Message() ([]byte, error) {
	compiled, err := tx.compile()
	if nil != err {
		return nil, err
	}
	return compiled.encode(), nil
}

// Serialize - wire form, unsigned slots are filled with zeros
func (tx *Transaction) Serialize() ([]byte, error) {
	compiled, err := tx.compile()
	if nil != err {
		return nil, err
	}
	message := compiled.encode()

	n := compiled.requiredSignatures
	buffer := make([]byte, 0, util.CompactU16MaximumBytes+n*SignatureLength+len(message))
	buffer = util.AppendCompactU16(buffer, uint16(n))
	for i := 0; i < n; i += 1 {
		if i < len(tx.Signatures) {
			buffer = append(buffer, tx.Signatures[i][:]...)
		} else {
			buffer = append(buffer, make([]byte, SignatureLength)...)
		}
	}
	return append(buffer, message...), nil
}

// Base64 - wire form as sent to the remote service
func (tx *Transaction) Base64() (string, error) {
	buffer, err := tx.Serialize()
	if nil != err {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buffer), nil
}

// compiled message
type compiled struct {
	requiredSignatures int
	readonlySigned     int
	readonlyUnsigned   int
	keys               []PublicKey
	blockhash          Blockhash
	instructions       []compiledInstruction
}

type compiledInstruction struct {
	program  byte
	accounts []byte
	data     []byte
}

type keyFlags struct {
	signer   bool
	writable bool
}

func (tx *Transaction) compile() (*compiled, error) {
	if tx.FeePayer.IsZero() {
		return nil, fault.ErrMissingFeePayer
	}

	// first appearance order, fee payer always first
	order := []PublicKey{tx.FeePayer}
	flags := map[PublicKey]*keyFlags{
		tx.FeePayer: {signer: true, writable: true},
	}
	add := func(key PublicKey, signer bool, writable bool) {
		f, ok := flags[key]
		if !ok {
			f = &keyFlags{}
			flags[key] = f
			order = append(order, key)
		}
		f.signer = f.signer || signer
		f.writable = f.writable || writable
	}
	for _, ix := range tx.Instructions {
		for _, a := range ix.Accounts {
			add(a.Key, a.Signer, a.Writable)
		}
		add(ix.Program, false, false)
	}

	if len(order) > math.MaxUint8+1 {
		return nil, fault.ErrTooManyAccounts
	}

	c := &compiled{
		blockhash: tx.Blockhash,
		keys:      make([]PublicKey, 0, len(order)),
	}

	// signed writable, signed read-only, unsigned writable, unsigned read-only
	groups := []keyFlags{
		{signer: true, writable: true},
		{signer: true, writable: false},
		{signer: false, writable: true},
		{signer: false, writable: false},
	}
	for _, g := range groups {
		for _, key := range order {
			f := flags[key]
			if f.signer != g.signer || f.writable != g.writable {
				continue
			}
			c.keys = append(c.keys, key)
			switch {
			case f.signer && f.writable:
				c.requiredSignatures += 1
			case f.signer:
				c.requiredSignatures += 1
				c.readonlySigned += 1
			case !f.writable:
				c.readonlyUnsigned += 1
			}
		}
	}

	index := make(map[PublicKey]byte, len(c.keys))
	for i, key := range c.keys {
		index[key] = byte(i)
	}

	for _, ix := range tx.Instructions {
		if len(ix.Accounts) > math.MaxUint16 || len(ix.Data) > math.MaxUint16 {
			return nil, fault.ErrInstructionTooLarge
		}
		ci := compiledInstruction{
			program:  index[ix.Program],
			accounts: make([]byte, len(ix.Accounts)),
			data:     ix.Data,
		}
		for i, a := range ix.Accounts {
			ci.accounts[i] = index[a.Key]
		}
		c.instructions = append(c.instructions, ci)
	}
	return c, nil
}

func (c *compiled) encode() []byte {
	buffer := make([]byte, 0, 3+util.CompactU16MaximumBytes+len(c.keys)*PublicKeyLength+BlockhashLength+64)
	buffer = append(buffer, byte(c.requiredSignatures), byte(c.readonlySigned), byte(c.readonlyUnsigned))

	buffer = util.AppendCompactU16(buffer, uint16(len(c.keys)))
	for _, key := range c.keys {
		buffer = append(buffer, key[:]...)
	}
	buffer = append(buffer, c.blockhash[:]...)

	buffer = util.AppendCompactU16(buffer, uint16(len(c.instructions)))
	for _, ci := range c.instructions {
		buffer = append(buffer, ci.program)
		buffer = util.AppendCompactU16(buffer, uint16(len(ci.accounts)))
		buffer = append(buffer, ci.accounts...)
		buffer = util.AppendCompactU16(buffer, uint16(len(ci.data)))
		buffer = append(buffer, ci.data...)
	}
	return buffer
}
