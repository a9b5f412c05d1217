// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/bitmark-inc/ledgerminer/fault"
	"github.com/bitmark-inc/ledgerminer/ledger"
)

// options object
type options map[string]interface{}

type responseContext struct {
	Slot uint64 `json:"slot"`
}

type blockhashReply struct {
	Context responseContext `json:"context"`
	Value   struct {
		Blockhash            string `json:"blockhash"`
		LastValidBlockHeight uint64 `json:"lastValidBlockHeight"`
	} `json:"value"`
}

type balanceReply struct {
	Context responseContext `json:"context"`
	Value   uint64          `json:"value"`
}

type simulateReply struct {
	Context responseContext `json:"context"`
	Value   struct {
		Err           json.RawMessage `json:"err"`
		Logs          []string        `json:"logs"`
		UnitsConsumed *uint64         `json:"unitsConsumed"`
	} `json:"value"`
}

type statusReply struct {
	Context responseContext `json:"context"`
	Value   []*struct {
		Slot               uint64          `json:"slot"`
		Confirmations      *uint64         `json:"confirmations"`
		Err                json.RawMessage `json:"err"`
		ConfirmationStatus string          `json:"confirmationStatus"`
	} `json:"value"`
}

// LatestReference - most recent blockhash at the configured commitment
func (c *Client) LatestReference(ctx context.Context) (ledger.Reference, error) {
	var reply blockhashReply
	err := c.call(ctx, "getLatestBlockhash", []interface{}{
		options{"commitment": c.commitment},
	}, &reply)
	if nil != err {
		return ledger.Reference{}, err
	}

	hash, err := ledger.ParseBlockhash(reply.Value.Blockhash)
	if nil != err {
		return ledger.Reference{}, fmt.Errorf("getLatestBlockhash: %w: %v", fault.ErrInvalidResponse, err)
	}
	return ledger.Reference{
		Blockhash:            hash,
		Slot:                 reply.Context.Slot,
		LastValidBlockHeight: reply.Value.LastValidBlockHeight,
	}, nil
}

// Balance - lamports held by an account
func (c *Client) Balance(ctx context.Context, key ledger.PublicKey) (uint64, error) {
	var reply balanceReply
	err := c.call(ctx, "getBalance", []interface{}{
		key.String(),
		options{"commitment": c.commitment},
	}, &reply)
	if nil != err {
		return 0, err
	}
	return reply.Value, nil
}

// Simulate - dry run without signature verification
func (c *Client) Simulate(ctx context.Context, tx *ledger.Transaction) (ledger.SimulationResult, error) {
	encoded, err := tx.Base64()
	if nil != err {
		return ledger.SimulationResult{}, err
	}

	var reply simulateReply
	err = c.call(ctx, "simulateTransaction", []interface{}{
		encoded,
		options{
			"sigVerify":              false,
			"replaceRecentBlockhash": true,
			"commitment":             c.commitment,
			"encoding":               "base64",
		},
	}, &reply)
	if nil != err {
		return ledger.SimulationResult{}, err
	}

	result := ledger.SimulationResult{
		Logs: reply.Value.Logs,
	}
	if !isNull(reply.Value.Err) {
		result.Err = string(reply.Value.Err)
	}
	if nil != reply.Value.UnitsConsumed {
		result.UnitsConsumed = *reply.Value.UnitsConsumed
		result.UnitsReported = true
	}
	return result, nil
}

// Send - broadcast with preflight skipped and no remote retries
// the transaction must not be processed before ref's slot
func (c *Client) Send(ctx context.Context, tx *ledger.Transaction, ref ledger.Reference) (ledger.Signature, error) {
	encoded, err := tx.Base64()
	if nil != err {
		return ledger.Signature{}, err
	}

	var reply string
	err = c.call(ctx, "sendTransaction", []interface{}{
		encoded,
		options{
			"skipPreflight":       true,
			"preflightCommitment": c.commitment,
			"encoding":            "base64",
			"maxRetries":          0,
			"minContextSlot":      ref.Slot,
		},
	}, &reply)
	if nil != err {
		return ledger.Signature{}, err
	}

	sig, err := ledger.ParseSignature(reply)
	if nil != err {
		return ledger.Signature{}, fmt.Errorf("sendTransaction: %w: %v", fault.ErrInvalidResponse, err)
	}
	if sig != tx.Signature() {
		c.log.Warnf("remote signature: %s  differs from local: %s", sig, tx.Signature())
	}
	return sig, nil
}

// Status - finality of a transaction, Unknown if the ledger has not seen it
// a transaction that executed with an error returns its finality
// together with fault.ErrTransactionFailed
func (c *Client) Status(ctx context.Context, sig ledger.Signature) (ledger.Finality, error) {
	var reply statusReply
	err := c.call(ctx, "getSignatureStatuses", []interface{}{
		[]string{sig.String()},
	}, &reply)
	if nil != err {
		return ledger.Unknown, err
	}

	if 0 == len(reply.Value) || nil == reply.Value[0] {
		return ledger.Unknown, nil
	}
	status := reply.Value[0]
	finality, err := ledger.ParseFinality(status.ConfirmationStatus)
	if nil != err {
		return ledger.Unknown, err
	}
	if !isNull(status.Err) {
		c.log.Warnf("transaction: %s  slot: %d  failed: %s", sig, status.Slot, status.Err)
		return finality, fmt.Errorf("%w: %s", fault.ErrTransactionFailed, status.Err)
	}
	return finality, nil
}

func isNull(raw json.RawMessage) bool {
	return 0 == len(raw) || bytes.Equal(raw, []byte("null"))
}

type accountReply struct {
	Context responseContext `json:"context"`
	Value   *struct {
		Data     []string `json:"data"`
		Lamports uint64   `json:"lamports"`
		Owner    string   `json:"owner"`
	} `json:"value"`
}

type tokenBalanceReply struct {
	Context responseContext `json:"context"`
	Value   struct {
		Amount         string `json:"amount"`
		Decimals       int    `json:"decimals"`
		UIAmountString string `json:"uiAmountString"`
	} `json:"value"`
}

// AccountData - raw data of an account
func (c *Client) AccountData(ctx context.Context, key ledger.PublicKey) ([]byte, error) {
	var reply accountReply
	err := c.call(ctx, "getAccountInfo", []interface{}{
		key.String(),
		options{
			"encoding":   "base64",
			"commitment": c.commitment,
		},
	}, &reply)
	if nil != err {
		return nil, err
	}
	if nil == reply.Value {
		return nil, fmt.Errorf("%s: %w", key, fault.ErrUnknownAccount)
	}
	if 2 != len(reply.Value.Data) || "base64" != reply.Value.Data[1] {
		return nil, fmt.Errorf("getAccountInfo: %w: data encoding", fault.ErrInvalidResponse)
	}
	data, err := base64.StdEncoding.DecodeString(reply.Value.Data[0])
	if nil != err {
		return nil, fmt.Errorf("getAccountInfo: %w: %v", fault.ErrInvalidResponse, err)
	}
	return data, nil
}

// TokenBalance - display text of a token account's balance
func (c *Client) TokenBalance(ctx context.Context, key ledger.PublicKey) (string, error) {
	var reply tokenBalanceReply
	err := c.call(ctx, "getTokenAccountBalance", []interface{}{
		key.String(),
		options{"commitment": c.commitment},
	}, &reply)
	if nil != err {
		return "", err
	}
	return reply.Value.UIAmountString, nil
}
