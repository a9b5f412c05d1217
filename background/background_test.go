// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerminer/background"
	"github.com/bitmark-inc/ledgerminer/counter"
)

type ticker struct {
	ticks    counter.Counter
	finished bool
}

func (tk *ticker) Run(args interface{}, shutdown <-chan struct{}) {
	step := args.(uint64)
loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}
		tk.ticks.Add(step)
		time.Sleep(time.Millisecond)
	}
	tk.finished = true
}

func TestStartStop(t *testing.T) {
	p1 := &ticker{}
	p2 := &ticker{}

	handle := background.Start(background.Processes{p1, p2}, uint64(3))
	time.Sleep(20 * time.Millisecond)
	handle.Stop()

	assert.True(t, p1.finished, "first process returned")
	assert.True(t, p2.finished, "second process returned")
	assert.False(t, p1.ticks.IsZero(), "first process ran")
	assert.Equal(t, uint64(0), p2.ticks.Uint64()%3, "args passed")

	// stopped processes do not run
	before := p1.ticks.Uint64()
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, before, p1.ticks.Uint64(), "no progress after stop")

	handle.Stop()
}

func TestStopEmpty(t *testing.T) {
	handle := background.Start(nil, nil)
	handle.Stop()
}
