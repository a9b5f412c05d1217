// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package miner - the round loop
//
// each round reads the current challenge and difficulty, searches for
// a qualifying nonce, builds the instructions for it and submits them.
// The result of every round is reported to the console, the log, the
// history store and any publish endpoints. Rounds run one after another
// and only inside the mining calendar's windows.
package miner
