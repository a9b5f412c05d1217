// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package search

import (
	"math"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerminer/counter"
	"github.com/bitmark-inc/ledgerminer/difficulty"
	"github.com/bitmark-inc/ledgerminer/digest"
	"github.com/bitmark-inc/ledgerminer/ledger"
)

// DefaultCheckInterval - iterations between polls of the found flag
const DefaultCheckInterval = 10000

// Solution - a nonce and the digest it produced
type Solution struct {
	Digest digest.Digest `json:"digest"`
	Nonce  uint64        `json:"nonce"`
}

// Request - the inputs of one round
type Request struct {
	Challenge  digest.Digest
	Difficulty difficulty.Target
	Identity   ledger.PublicKey
	Workers    int
}

// Stats - measurements of one round
type Stats struct {
	Workers int           `json:"workers"`
	Winner  int           `json:"winner"`
	Hashes  uint64        `json:"hashes"`
	Elapsed time.Duration `json:"elapsed"`
}

// HashRate - hashes per second
func (s Stats) HashRate() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Hashes) / s.Elapsed.Seconds()
}

// ProgressFunc - receives the latest digest computed by worker 0
type ProgressFunc func(latest digest.Digest)

// Engine - runs one search at a time
type Engine struct {
	log           *logger.L
	newHasher     HasherFactory
	checkInterval uint64
	progress      ProgressFunc
	total         counter.Counter
}

// Option - engine setting
type Option func(*Engine)

// WithHasher - replace the Keccak hasher
func WithHasher(factory HasherFactory) Option {
	return func(e *Engine) {
		e.newHasher = factory
	}
}

// WithCheckInterval - iterations between polls of the found flag
func WithCheckInterval(n uint64) Option {
	return func(e *Engine) {
		if n > 0 {
			e.checkInterval = n
		}
	}
}

// WithProgress - callback for progress display
func WithProgress(progress ProgressFunc) Option {
	return func(e *Engine) {
		e.progress = progress
	}
}

// New - create an engine
func New(log *logger.L, options ...Option) *Engine {
	e := &Engine{
		log:           log,
		newHasher:     NewKeccakHasher,
		checkInterval: DefaultCheckInterval,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// TotalHashes - hashes computed over the engine's lifetime
func (e *Engine) TotalHashes() uint64 {
	return e.total.Uint64()
}

// Search - find a nonce whose digest meets the difficulty
//
// blocks until a solution is found and every worker has exited
func (e *Engine) Search(request Request) Solution {
	solution, _ := e.SearchWithStats(request)
	return solution
}

// SearchWithStats - Search, also returning the round measurements
func (e *Engine) SearchWithStats(request Request) (Solution, Stats) {
	workers := request.Workers
	if workers < 1 {
		workers = 1
	}
	stride := math.MaxUint64 / uint64(workers)

	e.log.Debugf("search: workers: %d  difficulty: %s", workers, request.Difficulty)

	var (
		result slot
		hashes counter.Counter
		wg     sync.WaitGroup
	)
	start := time.Now()

	for i := 0; i < workers; i += 1 {
		wg.Add(1)
		go e.work(i, uint64(i)*stride, request, &result, &hashes, &wg)
	}
	wg.Wait()

	solution, winner := result.result()
	stats := Stats{
		Workers: workers,
		Winner:  winner,
		Hashes:  hashes.Uint64(),
		Elapsed: time.Since(start),
	}
	e.total.Add(stats.Hashes)

	e.log.Infof("found nonce: %d  worker: %d  hashes: %d  rate: %.0f H/s", solution.Nonce, winner, stats.Hashes, stats.HashRate())
	e.log.Debugf("digest: %#v", solution.Digest)

	return solution, stats
}

// one worker of a round
func (e *Engine) work(id int, nonce uint64, request Request, result *slot, hashes *counter.Counter, wg *sync.WaitGroup) {
	defer wg.Done()

	hasher := e.newHasher(request.Challenge, request.Identity)
	target := request.Difficulty
	interval := e.checkInterval
	count := uint64(0)

loop:
	for {
		d := hasher.Hash(nonce)
		count += 1

		if target.Met(d) {
			if !result.offer(id, Solution{Digest: d, Nonce: nonce}) {
				e.log.Tracef("worker: %d  discarded nonce: %d", id, nonce)
			}
			break loop
		}

		if 0 == count%interval {
			if result.isFound() {
				break loop
			}
			if 0 == id && nil != e.progress {
				e.progress(d)
			}
		}
		nonce += 1
	}

	hashes.Add(count)
}
