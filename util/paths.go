// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"path/filepath"
)

// EnsureAbsolute - relative paths are taken from directory
// the result is always cleaned
func EnsureAbsolute(directory string, filePath string) string {
	if filepath.IsAbs(filePath) {
		return filepath.Clean(filePath)
	}
	return filepath.Join(directory, filePath)
}

// IsPlainFileName - true if name has no directory component
func IsPlainFileName(name string) bool {
	switch name {
	case "", ".", "..":
		return false
	}
	dir := filepath.Dir(name)
	return "." == dir
}
