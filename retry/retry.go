// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package retry - bounded retry of a fallible action
//
// every stage of transaction submission is the same loop: run the
// action, decide whether the result is a success, a failure worth
// another try, or a failure that ends the loop, and wait between
// attempts up to a maximum number of attempts
package retry

import (
	"context"
	"fmt"
	"time"

	"github.com/bitmark-inc/ledgerminer/fault"
)

// ErrExhausted - every permitted attempt was used without success
var ErrExhausted = fault.ProcessError("retry attempts exhausted")

// SleepFunc - wait for a duration, returning early with the context error
type SleepFunc func(ctx context.Context, d time.Duration) error

// Policy - limits of one retry loop
type Policy struct {
	Attempts   int           // maximum number of actions, at least 1
	Delay      time.Duration // wait between attempts
	DelayFirst bool          // also wait before the first attempt
	Sleep      SleepFunc     // nil means Sleep
}

// Classifier - how to read the result of one attempt
type Classifier[T any] struct {
	Success   func(value T, err error) bool
	Retryable func(value T, err error) bool // nil means every failure is retryable
}

// Result - final value and the number of actions taken
type Result[T any] struct {
	Value    T
	Attempts int
	Err      error // nil on success
}

// Do - run action until it succeeds or the policy is used up
//
// the attempt number passed to action counts from 1
func Do[T any](ctx context.Context, policy Policy, classify Classifier[T], action func(ctx context.Context, attempt int) (T, error)) Result[T] {
	sleep := policy.Sleep
	if nil == sleep {
		sleep = Sleep
	}
	attempts := policy.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var result Result[T]
	for attempt := 1; attempt <= attempts; attempt += 1 {
		if attempt > 1 || policy.DelayFirst {
			if err := pause(ctx, sleep, policy.Delay); nil != err {
				result.Err = err
				return result
			}
		}

		value, err := action(ctx, attempt)
		result.Value = value
		result.Attempts = attempt

		if classify.Success(value, err) {
			result.Err = nil
			return result
		}

		if nil != classify.Retryable && !classify.Retryable(value, err) {
			if nil == err {
				err = fault.ErrInvalidResponse
			}
			result.Err = err
			return result
		}

		if nil != err {
			result.Err = fmt.Errorf("%w: %v", ErrExhausted, err)
		} else {
			result.Err = ErrExhausted
		}
	}
	return result
}

// no delay only checks for cancellation
func pause(ctx context.Context, sleep SleepFunc, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	return sleep(ctx, d)
}

// Sleep - context aware sleep
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
