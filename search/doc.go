// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package search - parallel proof of work nonce search
//
// N workers each own a contiguous slice of the 64 bit nonce space,
// worker i starting at i × ⌊2⁶⁴-1 / N⌋ and counting up.  For every
// nonce a worker hashes challenge ∥ identity ∥ nonce (little endian)
// and compares the digest with the difficulty target.  The first
// worker to find a qualifying nonce stores it in a shared slot and
// raises a flag; every worker polls the flag at a fixed interval so
// the others stop shortly after, never mid-check.
package search
