// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package submit

import (
	"github.com/bitmark-inc/ledgerminer/fault"
	"github.com/bitmark-inc/ledgerminer/ledger"
)

// Status - terminal state of one submission
type Status int

// all terminal states
const (
	Confirmed Status = iota + 1
	Sent
	SendFailed
	SimulationFailed
	ConfirmationTimedOut
	InsufficientBalance
	Aborted
)

var statusNames = map[Status]string{
	Confirmed:            "confirmed",
	Sent:                 "sent",
	SendFailed:           "send-failed",
	SimulationFailed:     "simulation-failed",
	ConfirmationTimedOut: "confirmation-timed-out",
	InsufficientBalance:  "insufficient-balance",
	Aborted:              "aborted",
}

// String - text form used in reports
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// MarshalText - text form for JSON
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText - from the text form
func (s *Status) UnmarshalText(text []byte) error {
	for k, v := range statusNames {
		if v == string(text) {
			*s = k
			return nil
		}
	}
	return fault.ErrInvalidResponse
}

// Outcome - what happened to a submission
type Outcome struct {
	Status       Status           `json:"status"`
	Signature    ledger.Signature `json:"signature"` // zero if nothing was accepted for broadcast
	Finality     ledger.Finality  `json:"finality"`
	ComputeLimit uint32           `json:"computeLimit,omitempty"` // zero if no limit was added
	Simulations  int              `json:"simulations"`
	Sends        int              `json:"sends"`
	Polls        int              `json:"polls"`
	Err          error            `json:"-"` // nil for Sent and Confirmed, unless the ledger reports a failed execution
}

// Succeeded - the transaction reached the ledger as far as was asked
func (o Outcome) Succeeded() bool {
	return Confirmed == o.Status || Sent == o.Status
}
