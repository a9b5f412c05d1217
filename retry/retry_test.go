// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerminer/retry"
)

var errFlaky = errors.New("flaky")
var errFatal = errors.New("fatal")

type recordingSleeper struct {
	waits []time.Duration
}

func (r *recordingSleeper) sleep(_ context.Context, d time.Duration) error {
	r.waits = append(r.waits, d)
	return nil
}

func noErr(_ int, err error) bool { return nil == err }

func TestSucceedsAfterFailures(t *testing.T) {
	for k := 0; k < 4; k += 1 {
		sleeper := &recordingSleeper{}
		policy := retry.Policy{Attempts: 4, Delay: 2 * time.Second, Sleep: sleeper.sleep}

		calls := 0
		result := retry.Do(context.Background(), policy, retry.Classifier[int]{Success: noErr},
			func(_ context.Context, attempt int) (int, error) {
				calls += 1
				if attempt <= k {
					return 0, errFlaky
				}
				return attempt * 10, nil
			})

		assert.Nil(t, result.Err, "k=%d: error", k)
		assert.Equal(t, k+1, calls, "k=%d: calls", k)
		assert.Equal(t, k+1, result.Attempts, "k=%d: attempts", k)
		assert.Equal(t, (k+1)*10, result.Value, "k=%d: value", k)
		assert.Equal(t, k, len(sleeper.waits), "k=%d: waits only between attempts", k)
	}
}

func TestExhausted(t *testing.T) {
	sleeper := &recordingSleeper{}
	policy := retry.Policy{Attempts: 4, Delay: 2 * time.Second, Sleep: sleeper.sleep}

	calls := 0
	result := retry.Do(context.Background(), policy, retry.Classifier[int]{Success: noErr},
		func(_ context.Context, _ int) (int, error) {
			calls += 1
			return 0, errFlaky
		})

	assert.Equal(t, 4, calls, "exactly four attempts")
	assert.Equal(t, 4, result.Attempts, "attempts")
	assert.True(t, errors.Is(result.Err, retry.ErrExhausted), "exhausted: %v", result.Err)
	assert.Equal(t, []time.Duration{2 * time.Second, 2 * time.Second, 2 * time.Second}, sleeper.waits, "waits")
}

func TestDelayFirst(t *testing.T) {
	sleeper := &recordingSleeper{}
	policy := retry.Policy{Attempts: 3, Delay: time.Second, DelayFirst: true, Sleep: sleeper.sleep}

	result := retry.Do(context.Background(), policy,
		retry.Classifier[bool]{Success: func(v bool, err error) bool { return v }},
		func(_ context.Context, attempt int) (bool, error) {
			return 3 == attempt, nil
		})

	assert.Nil(t, result.Err, "success on the last attempt")
	assert.Equal(t, 3, len(sleeper.waits), "a wait before every attempt")
}

func TestZeroDelayNeverSleeps(t *testing.T) {
	for _, first := range []bool{false, true} {
		sleeper := &recordingSleeper{}
		policy := retry.Policy{Attempts: 4, Delay: 0, DelayFirst: first, Sleep: sleeper.sleep}

		calls := 0
		result := retry.Do(context.Background(), policy, retry.Classifier[int]{Success: noErr},
			func(_ context.Context, _ int) (int, error) {
				calls += 1
				return 0, errFlaky
			})

		assert.Equal(t, 4, calls, "delay first: %t: attempts", first)
		assert.True(t, errors.Is(result.Err, retry.ErrExhausted), "delay first: %t: exhausted: %v", first, result.Err)
		assert.Equal(t, 0, len(sleeper.waits), "delay first: %t: sleeper not called", first)
	}
}

func TestZeroDelayStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	result := retry.Do(ctx, retry.Policy{Attempts: 4}, retry.Classifier[int]{Success: noErr},
		func(_ context.Context, _ int) (int, error) {
			calls += 1
			cancel()
			return 0, errFlaky
		})

	assert.Equal(t, 1, calls, "no attempt after cancel")
	assert.Equal(t, context.Canceled, result.Err, "context error")
}

func TestNotRetryable(t *testing.T) {
	sleeper := &recordingSleeper{}
	policy := retry.Policy{Attempts: 4, Sleep: sleeper.sleep}

	calls := 0
	result := retry.Do(context.Background(), policy,
		retry.Classifier[int]{
			Success:   noErr,
			Retryable: func(_ int, err error) bool { return !errors.Is(err, errFatal) },
		},
		func(_ context.Context, _ int) (int, error) {
			calls += 1
			return 0, errFatal
		})

	assert.Equal(t, 1, calls, "stops at once")
	assert.Equal(t, errFatal, result.Err, "cause kept")
	assert.Equal(t, 0, len(sleeper.waits), "no waits")
}

func TestCancelledSleep(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	result := retry.Do(ctx, retry.Policy{Attempts: 4, Delay: time.Hour}, retry.Classifier[int]{Success: noErr},
		func(_ context.Context, _ int) (int, error) {
			calls += 1
			return 0, errFlaky
		})

	assert.Equal(t, 1, calls, "no attempt after cancel")
	assert.Equal(t, context.Canceled, result.Err, "context error")
}

func TestSleepZero(t *testing.T) {
	start := time.Now()
	err := retry.Sleep(context.Background(), 0)
	assert.Nil(t, err, "zero sleep")
	assert.True(t, time.Since(start) < time.Second, "returns at once")

	err = retry.Sleep(context.Background(), 5*time.Millisecond)
	assert.Nil(t, err, "short sleep")
}
