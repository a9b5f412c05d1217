// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// limiting for a single request, the wait ends early if ctx is done
func limit(ctx context.Context, limiter *rate.Limiter) error {
	err := limiter.Wait(ctx)
	if nil == err {
		return nil
	}
	if nil != ctx.Err() {
		return ctx.Err()
	}
	return fmt.Errorf("%w: %v", ErrRateLimiting, err)
}
