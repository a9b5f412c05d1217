// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - types and wire encoding for the remote ledger
//
// The Ledger interface is everything the submission pipeline needs
// from the remote service: dry run, broadcast, status lookup, payer
// balance and the latest reference point (recent blockhash).
//
// Transactions are encoded in the legacy message format:
//
//   signatures:  compact-u16 count, 64 bytes each
//   header:      required signatures, read-only signed, read-only unsigned
//   keys:        compact-u16 count, 32 bytes each, fee payer first
//   blockhash:   32 bytes
//   program:     compact-u16 count of compiled instructions
package ledger
