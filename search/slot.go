// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package search

import (
	"sync"
	"sync/atomic"
)

// shared result of a round
//
// found may be read without the lock, the solution only with it
// the first offer wins and later offers are discarded
type slot struct {
	found atomic.Bool

	sync.Mutex
	solution Solution
	winner   int
}

func (s *slot) isFound() bool {
	return s.found.Load()
}

// offer - store the solution unless one is already held
// returns true if this offer was stored
func (s *slot) offer(worker int, solution Solution) bool {
	s.Lock()
	defer s.Unlock()

	if s.found.Load() {
		return false
	}
	s.solution = solution
	s.winner = worker
	s.found.Store(true)
	return true
}

func (s *slot) result() (Solution, int) {
	s.Lock()
	defer s.Unlock()
	return s.solution, s.winner
}
