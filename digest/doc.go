// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package digest - 32 byte Keccak-256 digests
//
// bytes are stored most significant first so that digests order the
// same way as the unsigned big endian integers they represent
package digest
