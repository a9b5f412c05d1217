// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/bitmark-inc/ledgerminer/fault"
	"github.com/bitmark-inc/ledgerminer/util"
)

func TestCanonicalEndpoint(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{"127.0.0.1:2140", "tcp://127.0.0.1:2140"},
		{" 127.0.0.1 : 2140 ", "tcp://127.0.0.1:2140"},
		{"tcp://10.0.0.1:80", "tcp://10.0.0.1:80"},
		{"*:2140", "tcp://*:2140"},
		{"[::1]:2140", "tcp://[::1]:2140"},
		{"[0:0::1]:443", "tcp://[::1]:443"},
		{"[::ffff:192.168.1.1]:22", "tcp://192.168.1.1:22"},
	}

	for i, item := range tests {
		out, err := util.CanonicalEndpoint(item.in)
		if nil != err {
			t.Errorf("%d: %q  error: %s", i, item.in, err)
			continue
		}
		if item.out != out {
			t.Errorf("%d: %q  actual: %q  expected: %q", i, item.in, out, item.out)
		}
	}
}

func TestCanonicalEndpointErrors(t *testing.T) {
	tests := []struct {
		in  string
		err error
	}{
		{"localhost:2140", fault.ErrInvalidIPAddress},
		{"127.0.0.1:0", fault.ErrInvalidPortNumber},
		{"127.0.0.1:65536", fault.ErrInvalidPortNumber},
		{"127.0.0.1:port", fault.ErrInvalidPortNumber},
	}

	for i, item := range tests {
		_, err := util.CanonicalEndpoint(item.in)
		if item.err != err {
			t.Errorf("%d: %q  actual: %v  expected: %v", i, item.in, err, item.err)
		}
	}

	if _, err := util.CanonicalEndpoint("127.0.0.1"); nil == err {
		t.Errorf("missing port accepted")
	}
}
