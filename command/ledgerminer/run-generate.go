// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/ledgerminer/keypair"
	"github.com/bitmark-inc/ledgerminer/ledger"
)

type identityReply struct {
	File     string           `json:"file"`
	Identity ledger.PublicKey `json:"identity"`
}

// FILE argument, otherwise the identity named by the configuration
func runGenerateIdentity(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName := c.Args().Get(0)
	if "" == fileName {
		conf, err := m.setup()
		if nil != err {
			return err
		}
		logger.Finalise()
		fileName = conf.Identity
	}

	if m.verbose {
		fmt.Fprintf(m.e, "identity file: %s\n", fileName)
	}

	kp, err := keypair.New()
	if nil != err {
		return err
	}

	if err := kp.Save(fileName); nil != err {
		return fmt.Errorf("identity: %q  error: %w", fileName, err)
	}

	return printJson(m.w, identityReply{
		File:     fileName,
		Identity: kp.PublicKey(),
	})
}
