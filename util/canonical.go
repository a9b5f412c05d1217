// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"net"
	"strconv"
	"strings"

	"github.com/bitmark-inc/ledgerminer/fault"
)

// wildcard host accepted for bind addresses
const anyHost = "*"

// CanonicalEndpoint - "host:port" to "tcp://IP:port"
// IPv6 addresses are bracketed, "*" binds all interfaces
func CanonicalEndpoint(hostPort string) (string, error) {
	host, port, err := net.SplitHostPort(strings.TrimPrefix(strings.TrimSpace(hostPort), "tcp://"))
	if nil != err {
		return "", err
	}

	numericPort, err := strconv.Atoi(strings.TrimSpace(port))
	if nil != err {
		return "", fault.ErrInvalidPortNumber
	}
	if numericPort < 1 || numericPort > 65535 {
		return "", fault.ErrInvalidPortNumber
	}

	host = strings.TrimSpace(host)
	if anyHost == host {
		return "tcp://" + anyHost + ":" + strconv.Itoa(numericPort), nil
	}

	IP := net.ParseIP(host)
	if nil == IP {
		return "", fault.ErrInvalidIPAddress
	}
	if nil != IP.To4() {
		return "tcp://" + IP.String() + ":" + strconv.Itoa(numericPort), nil
	}
	return "tcp://[" + IP.String() + "]:" + strconv.Itoa(numericPort), nil
}
