// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package miner

import (
	"fmt"
	"time"

	"github.com/bitmark-inc/ledgerminer/history"
	"github.com/bitmark-inc/ledgerminer/program"
	"github.com/bitmark-inc/ledgerminer/search"
	"github.com/bitmark-inc/ledgerminer/submit"
)

// Report - everything known about one round
type Report struct {
	Round     uint64
	Timestamp time.Time
	Balance   string
	State     program.State
	Solution  search.Solution
	Stats     search.Stats
	Outcome   submit.Outcome
}

// Record - the stored and published form
func (r *Report) Record() *history.Record {
	record := &history.Record{
		Round:        r.Round,
		Timestamp:    r.Timestamp,
		Challenge:    r.State.Challenge.String(),
		Difficulty:   r.State.Difficulty.String(),
		Nonce:        r.Solution.Nonce,
		Digest:       r.Solution.Digest.String(),
		Workers:      r.Stats.Workers,
		Hashes:       r.Stats.Hashes,
		Elapsed:      r.Stats.Elapsed.String(),
		Status:       r.Outcome.Status.String(),
		ComputeLimit: r.Outcome.ComputeLimit,
		Balance:      r.Balance,
		Claimable:    r.State.ClaimableText(),
	}
	if !r.Outcome.Signature.IsZero() {
		record.Signature = r.Outcome.Signature.String()
	}
	if nil != r.Outcome.Err {
		record.Error = r.Outcome.Err.Error()
	}
	return record
}

// String - one line summary for the console
func (r *Report) String() string {
	s := fmt.Sprintf("round: %d  nonce: %d  hashes: %d  elapsed: %s  rate: %.0f H/s  status: %s",
		r.Round,
		r.Solution.Nonce,
		r.Stats.Hashes,
		r.Stats.Elapsed.Round(time.Millisecond),
		r.Stats.HashRate(),
		r.Outcome.Status,
	)
	if !r.Outcome.Signature.IsZero() {
		s += "  signature: " + r.Outcome.Signature.String()
	}
	if nil != r.Outcome.Err {
		s += "  error: " + r.Outcome.Err.Error()
	}
	return s
}
