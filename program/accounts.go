// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

//go:generate mockgen -source=accounts.go -destination=mocks/accounts.go -package=mocks

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/bitmark-inc/ledgerminer/difficulty"
	"github.com/bitmark-inc/ledgerminer/digest"
	"github.com/bitmark-inc/ledgerminer/fault"
	"github.com/bitmark-inc/ledgerminer/ledger"
)

// AccountReader - raw account access on the remote ledger
type AccountReader interface {
	AccountData(ctx context.Context, key ledger.PublicKey) ([]byte, error)
	TokenBalance(ctx context.Context, key ledger.PublicKey) (string, error)
}

// account data layouts, each prefixed by an 8 byte discriminator
const (
	discriminatorSize = 8

	proofAuthorityOffset    = discriminatorSize
	proofClaimableOffset    = proofAuthorityOffset + ledger.PublicKeyLength
	proofHashOffset         = proofClaimableOffset + 8
	proofTotalHashesOffset  = proofHashOffset + digest.Length
	proofTotalRewardsOffset = proofTotalHashesOffset + 8
	proofSize               = proofTotalRewardsOffset + 8

	treasuryBumpOffset         = discriminatorSize
	treasuryAdminOffset        = treasuryBumpOffset + 8
	treasuryDifficultyOffset   = treasuryAdminOffset + ledger.PublicKeyLength
	treasuryLastResetOffset    = treasuryDifficultyOffset + difficulty.Length
	treasuryRewardRateOffset   = treasuryLastResetOffset + 8
	treasuryTotalClaimedOffset = treasuryRewardRateOffset + 8
	treasurySize               = treasuryTotalClaimedOffset + 8
)

// Proof - a miner's proof account
type Proof struct {
	Authority    ledger.PublicKey
	Claimable    uint64
	Hash         digest.Digest
	TotalHashes  uint64
	TotalRewards uint64
}

// Treasury - the program's global state
type Treasury struct {
	Bump         uint64
	Admin        ledger.PublicKey
	Difficulty   difficulty.Target
	LastResetAt  int64
	RewardRate   uint64
	TotalClaimed uint64
}

// ParseProof - decode proof account data
func ParseProof(data []byte) (*Proof, error) {
	if len(data) < proofSize {
		return nil, fmt.Errorf("proof: %w: %d < %d", fault.ErrAccountDataTooShort, len(data), proofSize)
	}
	p := &Proof{
		Claimable:    binary.LittleEndian.Uint64(data[proofClaimableOffset:]),
		TotalHashes:  binary.LittleEndian.Uint64(data[proofTotalHashesOffset:]),
		TotalRewards: binary.LittleEndian.Uint64(data[proofTotalRewardsOffset:]),
	}
	copy(p.Authority[:], data[proofAuthorityOffset:])
	copy(p.Hash[:], data[proofHashOffset:])
	return p, nil
}

// ParseTreasury - decode treasury account data
func ParseTreasury(data []byte) (*Treasury, error) {
	if len(data) < treasurySize {
		return nil, fmt.Errorf("treasury: %w: %d < %d", fault.ErrAccountDataTooShort, len(data), treasurySize)
	}
	t := &Treasury{
		Bump:         binary.LittleEndian.Uint64(data[treasuryBumpOffset:]),
		LastResetAt:  int64(binary.LittleEndian.Uint64(data[treasuryLastResetOffset:])),
		RewardRate:   binary.LittleEndian.Uint64(data[treasuryRewardRateOffset:]),
		TotalClaimed: binary.LittleEndian.Uint64(data[treasuryTotalClaimedOffset:]),
	}
	copy(t.Admin[:], data[treasuryAdminOffset:])
	copy(t.Difficulty[:], data[treasuryDifficultyOffset:])
	return t, nil
}
