// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"context"

	"github.com/bitmark-inc/ledgerminer/fault"
)

//go:generate mockgen -source=ledger.go -destination=mocks/ledger.go -package=mocks

// Ledger - the remote ledger service
type Ledger interface {
	// dry run without signature verification, blockhash is replaced remotely
	Simulate(ctx context.Context, tx *Transaction) (SimulationResult, error)

	// broadcast a signed transaction, no preflight and no remote retries
	Send(ctx context.Context, tx *Transaction, ref Reference) (Signature, error)

	// current finality of a transaction, Unknown if not seen
	Status(ctx context.Context, sig Signature) (Finality, error)

	// lamports held by an account
	Balance(ctx context.Context, key PublicKey) (uint64, error)

	// most recent blockhash and the slot it was read at
	LatestReference(ctx context.Context) (Reference, error)
}

// Reference - recent point of the ledger that a transaction is anchored to
type Reference struct {
	Blockhash            Blockhash `json:"blockhash"`
	Slot                 uint64    `json:"slot"`
	LastValidBlockHeight uint64    `json:"lastValidBlockHeight"`
}

// SimulationResult - outcome of a dry run
type SimulationResult struct {
	Err           string   `json:"err,omitempty"` // execution error, empty on success
	UnitsConsumed uint64   `json:"unitsConsumed"`
	UnitsReported bool     `json:"-"`
	Logs          []string `json:"logs,omitempty"`
}

// Succeeded - true if the dry run executed without error
func (r SimulationResult) Succeeded() bool {
	return "" == r.Err
}

// Finality - how settled a transaction is
type Finality int

// finality levels in increasing order
const (
	Unknown Finality = iota
	Processed
	Confirmed
	Finalized
)

// ParseFinality - from the remote confirmation status text
func ParseFinality(s string) (Finality, error) {
	switch s {
	case "":
		return Unknown, nil
	case "processed":
		return Processed, nil
	case "confirmed":
		return Confirmed, nil
	case "finalized":
		return Finalized, nil
	default:
		return Unknown, fault.ErrUnknownFinality
	}
}

// String - the remote text form
func (f Finality) String() string {
	switch f {
	case Processed:
		return "processed"
	case Confirmed:
		return "confirmed"
	case Finalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// MarshalText - the remote text form for JSON
func (f Finality) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText - from the remote text form
func (f *Finality) UnmarshalText(text []byte) error {
	s := string(text)
	if "unknown" == s {
		s = ""
	}
	v, err := ParseFinality(s)
	if nil != err {
		return err
	}
	*f = v
	return nil
}

// IsSettled - confirmed or better
func (f Finality) IsSettled() bool {
	return f >= Confirmed
}
