// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances for the miner
//
// Every error the miner reports is a single instance of one of the
// error classes below, so callers can test with errors.Is or with
// the IsErrXxx class predicates instead of matching strings
package fault
