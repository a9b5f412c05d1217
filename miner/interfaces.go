// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package miner

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

import (
	"context"
	"time"

	"github.com/bitmark-inc/ledgerminer/history"
	"github.com/bitmark-inc/ledgerminer/ledger"
	"github.com/bitmark-inc/ledgerminer/program"
	"github.com/bitmark-inc/ledgerminer/search"
	"github.com/bitmark-inc/ledgerminer/submit"
)

// StateReader - source of the round inputs
type StateReader interface {
	Current(ctx context.Context) (program.State, error)
	DisplayBalance(ctx context.Context) string
}

// Searcher - proof of work search
type Searcher interface {
	SearchWithStats(request search.Request) (search.Solution, search.Stats)
}

// Builder - instructions for a solution
type Builder interface {
	Mine(authority ledger.PublicKey, solution search.Solution) []ledger.Instruction
}

// Submitter - takes instructions to the ledger
type Submitter interface {
	Submit(ctx context.Context, instructions []ledger.Instruction) submit.Outcome
}

// ThreadCounter - number of search workers for the next round
type ThreadCounter interface {
	OptimalThreadCount() uint32
}

// Calendar - when mining is allowed
type Calendar interface {
	Active(t time.Time) bool
	NextStart(t time.Time) time.Time
}

// Recorder - round history
type Recorder interface {
	Put(record *history.Record) error
}

// Publisher - round report fan out
type Publisher interface {
	Publish(topic string, item interface{}) error
}
