// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - the miner's Lua configuration file
//
// the file is a Lua chunk returning a table, so most of base Lua is
// available, e.g. os.getenv to pick up an RPC URL or reading key data
// from other files. Relative paths are resolved against data_directory.
package configuration
