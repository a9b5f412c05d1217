// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"context"
	"strconv"
	"strings"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerminer/difficulty"
	"github.com/bitmark-inc/ledgerminer/digest"
	"github.com/bitmark-inc/ledgerminer/ledger"
)

const (
	// DefaultDecimals - token decimals of the mined token
	DefaultDecimals = 9

	balanceTimeout    = 30 * time.Second
	balanceExpiration = time.Minute
	balanceKey        = "balance"

	// shown when there is no token account
	noBalance = "0.00"
	// shown when the balance cannot be read
	errorBalance = "Err"
)

// State - the inputs to one mining round
type State struct {
	Challenge  digest.Digest
	Difficulty difficulty.Target
	Claimable  uint64
	Decimals   uint8
}

// ClaimableText - claimable reward in whole tokens
func (s State) ClaimableText() string {
	return FormatAmount(s.Claimable, s.Decimals)
}

// Accounts - addresses of the program accounts used by the reader
type Accounts struct {
	Proof        ledger.PublicKey
	Treasury     ledger.PublicKey
	TokenAccount ledger.PublicKey
	Decimals     uint8
}

// Reader - reads the mining state from the ledger
type Reader struct {
	log      *logger.L
	reader   AccountReader
	accounts Accounts
	balances *cache.Cache
}

// NewReader - create a state reader
func NewReader(log *logger.L, reader AccountReader, accounts Accounts) *Reader {
	return &Reader{
		log:      log,
		reader:   reader,
		accounts: accounts,
		balances: cache.New(balanceTimeout, balanceExpiration),
	}
}

// Current - challenge from the proof account, difficulty from the treasury
func (r *Reader) Current(ctx context.Context) (State, error) {
	data, err := r.reader.AccountData(ctx, r.accounts.Proof)
	if nil != err {
		return State{}, err
	}
	proof, err := ParseProof(data)
	if nil != err {
		return State{}, err
	}

	data, err = r.reader.AccountData(ctx, r.accounts.Treasury)
	if nil != err {
		return State{}, err
	}
	treasury, err := ParseTreasury(data)
	if nil != err {
		return State{}, err
	}

	r.log.Debugf("challenge: %s  difficulty: %s  claimable: %d", proof.Hash, treasury.Difficulty, proof.Claimable)

	return State{
		Challenge:  proof.Hash,
		Difficulty: treasury.Difficulty,
		Claimable:  proof.Claimable,
		Decimals:   r.accounts.Decimals,
	}, nil
}

// DisplayBalance - token balance text, cached briefly
// never fails: "0.00" without a token account, "Err" when the read fails
func (r *Reader) DisplayBalance(ctx context.Context) string {
	if r.accounts.TokenAccount.IsZero() {
		return noBalance
	}

	if obj, found := r.balances.Get(balanceKey); found {
		return obj.(string)
	}

	balance, err := r.reader.TokenBalance(ctx, r.accounts.TokenAccount)
	if nil != err {
		r.log.Warnf("token balance: %s  error: %s", r.accounts.TokenAccount, err)
		return errorBalance
	}
	r.balances.Set(balanceKey, balance, cache.DefaultExpiration)
	return balance
}

// FormatAmount - scale an integer amount down by 10^decimals
// exact, trailing fraction zeros removed
func FormatAmount(amount uint64, decimals uint8) string {
	s := strconv.FormatUint(amount, 10)
	if 0 == decimals {
		return s
	}
	d := int(decimals)
	if len(s) <= d {
		s = strings.Repeat("0", d-len(s)+1) + s
	}
	whole := s[:len(s)-d]
	fraction := strings.TrimRight(s[len(s)-d:], "0")
	if "" == fraction {
		return whole
	}
	return whole + "." + fraction
}
