// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const (
	defaultConfigurationFile = "ledgerminer.conf"
	defaultHistoryCount      = 20
)

// data passed from Before to each command
type metadata struct {
	file    string
	verbose bool
	quiet   bool
	w       io.Writer // normal output
	e       io.Writer // diagnostics
}

func main() {
	defer exitwithstatus.Handler()

	app := newApp()
	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: error: %s", app.Name, err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "ledgerminer"
	app.Usage = "proof of work miner for the on-ledger mining program"
	app.Version = version
	app.HideVersion = true
	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr
	app.Metadata = map[string]interface{}{}

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config-file, c",
			Value: defaultConfigurationFile,
			Usage: " configuration `FILE`",
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.BoolFlag{
			Name:  "quiet, q",
			Usage: " suppress progress output",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:  "mine",
			Usage: "search for solutions and submit them until interrupted",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "rounds, r",
					Value: 0,
					Usage: " stop after `COUNT` rounds, 0 is unlimited",
				},
			},
			Action: runMine,
		},
		{
			Name:   "balance",
			Usage:  "show identity balance and mining state",
			Action: runBalance,
		},
		{
			Name:  "history",
			Usage: "list recent rounds",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, n",
					Value: defaultHistoryCount,
					Usage: " number of rounds to list",
				},
			},
			Action: runHistory,
		},
		{
			Name:      "generate-identity",
			Usage:     "create a new identity file",
			ArgsUsage: "[FILE]",
			Action:    runGenerateIdentity,
		},
		{
			Name:  "version",
			Usage: "display ledgerminer version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			file:    c.GlobalString("config-file"),
			verbose: c.GlobalBool("verbose"),
			quiet:   c.GlobalBool("quiet"),
			w:       c.App.Writer,
			e:       c.App.ErrWriter,
		}
		return nil
	}

	return app
}
