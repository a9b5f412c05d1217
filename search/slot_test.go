// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package search

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerminer/difficulty"
	"github.com/bitmark-inc/ledgerminer/digest"
)

// many concurrent offers, exactly one is kept
func TestSlotSingleWinner(t *testing.T) {
	// every writer's digest has at least two leading zero bits
	target := difficulty.FromLeadingZeroBits(2)

	for round := 0; round < 50; round += 1 {
		var s slot
		const writers = 64

		accepted := make([]bool, writers)
		ready := make(chan struct{})
		var wg sync.WaitGroup
		for i := 0; i < writers; i += 1 {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-ready
				var d digest.Digest
				d[0] = byte(i)
				if !target.Met(d) {
					return
				}
				accepted[i] = s.offer(i, Solution{Digest: d, Nonce: uint64(i)})
			}(i)
		}
		close(ready)
		wg.Wait()

		winners := 0
		winner := -1
		for i, ok := range accepted {
			if ok {
				winners += 1
				winner = i
			}
		}
		assert.Equal(t, 1, winners, "round %d: exactly one accepted offer", round)

		solution, id := s.result()
		assert.True(t, s.isFound(), "round %d: found flag", round)
		assert.Equal(t, winner, id, "round %d: winner id", round)
		assert.Equal(t, uint64(winner), solution.Nonce, "round %d: nonce is the winner's", round)
		assert.Equal(t, byte(winner), solution.Digest[0], "round %d: digest is the winner's", round)
		assert.True(t, target.Met(solution.Digest), "round %d: kept digest meets the target", round)
	}
}

func TestSlotKeepsFirst(t *testing.T) {
	var s slot
	assert.False(t, s.isFound(), "empty slot")

	assert.True(t, s.offer(3, Solution{Nonce: 30}), "first offer")
	assert.False(t, s.offer(4, Solution{Nonce: 40}), "second offer")

	solution, id := s.result()
	assert.Equal(t, 3, id, "winner")
	assert.Equal(t, uint64(30), solution.Nonce, "nonce")
}
