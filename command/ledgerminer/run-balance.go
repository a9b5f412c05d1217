// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/ledgerminer/difficulty"
	"github.com/bitmark-inc/ledgerminer/digest"
	"github.com/bitmark-inc/ledgerminer/keypair"
	"github.com/bitmark-inc/ledgerminer/ledger"
)

type balanceReply struct {
	Identity   ledger.PublicKey  `json:"identity"`
	Lamports   uint64            `json:"lamports"`
	Balance    string            `json:"balance"`
	Claimable  string            `json:"claimable"`
	Challenge  digest.Digest     `json:"challenge"`
	Difficulty difficulty.Target `json:"difficulty"`
}

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	conf, err := m.setup()
	if nil != err {
		return err
	}
	defer logger.Finalise()

	identity, err := keypair.Load(conf.Identity)
	if nil != err {
		return fmt.Errorf("identity: %q  error: %w", conf.Identity, err)
	}

	parts, err := newLedgerParts(conf)
	if nil != err {
		return err
	}

	ctx := context.Background()

	lamports, err := parts.client.Balance(ctx, identity.PublicKey())
	if nil != err {
		return err
	}

	state, err := parts.state.Current(ctx)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "proof: %s\n", parts.accounts.Proof)
		fmt.Fprintf(m.e, "treasury: %s\n", parts.accounts.Treasury)
	}

	response := balanceReply{
		Identity:   identity.PublicKey(),
		Lamports:   lamports,
		Balance:    parts.state.DisplayBalance(ctx),
		Claimable:  state.ClaimableText(),
		Challenge:  state.Challenge,
		Difficulty: state.Difficulty,
	}
	return printJson(m.w, response)
}
