// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Proof-of-work miner for the on-ledger mining program
//
// Each round reads the current challenge and difficulty from the
// proof and treasury accounts, searches nonces on all configured
// threads for a Keccak-256 digest at or below the difficulty, then
// submits the solution as a signed mine transaction: balance check,
// simulation, broadcast and confirmation.
//
// Rounds only start inside the configured calendar windows. Thread
// count and calendar are re-read whenever the configuration file
// changes.
package main
