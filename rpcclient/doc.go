// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpcclient - JSON-RPC 2.0 over HTTP access to the remote ledger
//
// implements ledger.Ledger for the submission pipeline and the
// account reads used to obtain the mining state, every call paced by
// a token bucket and bounded by a per call timeout
package rpcclient
