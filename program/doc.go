// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package program - the mining program's on-ledger accounts and instructions
//
// The proof account carries the current challenge and the claimable
// reward; the treasury carries the network difficulty. Both are read as
// raw account data through an AccountReader and decoded here.
//
// The builder produces the mine instruction for a solution, optionally
// followed by a tip transfer.
package program
