// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestLimitWithinBurst(t *testing.T) {
	limiter := rate.NewLimiter(rate.Limit(1), 2)

	assert.Nil(t, limit(context.Background(), limiter), "first")
	assert.Nil(t, limit(context.Background(), limiter), "second")
}

func TestLimitCancelled(t *testing.T) {
	limiter := rate.NewLimiter(rate.Every(time.Hour), 1)
	assert.Nil(t, limit(context.Background(), limiter), "uses the burst")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := limit(ctx, limiter)
	assert.Equal(t, context.Canceled, err, "cancelled wait")
	assert.True(t, time.Since(start) < time.Second, "returns at once")
}

func TestLimitZeroBurst(t *testing.T) {
	limiter := rate.NewLimiter(rate.Limit(1), 0)

	err := limit(context.Background(), limiter)
	assert.True(t, errors.Is(err, ErrRateLimiting), "rate limiting: %v", err)
}
