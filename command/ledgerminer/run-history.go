// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"
)

func runHistory(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("invalid count: %d", count)
	}

	conf, err := m.setup()
	if nil != err {
		return err
	}
	defer logger.Finalise()

	if !conf.History {
		return fmt.Errorf("history is disabled in: %q", m.file)
	}

	if m.verbose {
		fmt.Fprintf(m.e, "history: %s\n", conf.HistoryFile())
		fmt.Fprintf(m.e, "count: %d\n", count)
	}

	store, err := openHistory(conf, true)
	if nil != err {
		return fmt.Errorf("history: %q  error: %w", conf.HistoryFile(), err)
	}
	defer store.Close()

	records, err := store.Recent(count)
	if nil != err {
		return err
	}
	return printJson(m.w, records)
}
