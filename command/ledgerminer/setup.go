// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerminer/configuration"
	"github.com/bitmark-inc/ledgerminer/digest"
	"github.com/bitmark-inc/ledgerminer/history"
	"github.com/bitmark-inc/ledgerminer/keypair"
	"github.com/bitmark-inc/ledgerminer/program"
	"github.com/bitmark-inc/ledgerminer/publish"
	"github.com/bitmark-inc/ledgerminer/rpcclient"
	"github.com/bitmark-inc/ledgerminer/search"
	"github.com/bitmark-inc/ledgerminer/submit"
)

// logger channels
const (
	mainLoggerPrefix    = "main"
	minerLoggerPrefix   = "miner"
	searchLoggerPrefix  = "search"
	submitLoggerPrefix  = "submit"
	rpcLoggerPrefix     = "rpc"
	stateLoggerPrefix   = "state"
	historyLoggerPrefix = "history"
	publishLoggerPrefix = "publish"
	calendarPrefix      = "calendar"
)

// read the configuration file and start logging
// caller must logger.Finalise() on success
func (m *metadata) setup() (*configuration.Configuration, error) {
	if m.verbose {
		fmt.Fprintf(m.e, "reading config file: %s\n", m.file)
	}

	conf, err := configuration.Load(m.file)
	if nil != err {
		return nil, fmt.Errorf("failed to read configuration from: %q  error: %w", m.file, err)
	}

	if m.verbose {
		fmt.Fprintf(m.e, "data directory: %s\n", conf.DataDirectory)
		fmt.Fprintf(m.e, "identity: %s\n", conf.Identity)
		fmt.Fprintf(m.e, "rpc: %s\n", conf.RPC.URL)
	}

	if err := logger.Initialise(conf.Logging); nil != err {
		return nil, fmt.Errorf("logger setup failed with error: %w", err)
	}
	return conf, nil
}

// progress output, discarded by --quiet
func (m *metadata) progress() io.Writer {
	if m.quiet {
		return io.Discard
	}
	return m.w
}

// collaborators shared by the commands that reach the ledger
type ledgerParts struct {
	client   *rpcclient.Client
	state    *program.Reader
	builder  *program.Builder
	accounts program.Accounts
}

func newLedgerParts(conf *configuration.Configuration) (*ledgerParts, error) {
	addresses, accounts, tip, err := conf.ProgramSettings()
	if nil != err {
		return nil, err
	}

	builder, err := program.NewBuilder(addresses, tip, rand.NewSource(time.Now().UnixNano()))
	if nil != err {
		return nil, err
	}

	client := rpcclient.New(logger.New(rpcLoggerPrefix), conf.RPCConfig())

	return &ledgerParts{
		client:   client,
		state:    program.NewReader(logger.New(stateLoggerPrefix), client, accounts),
		builder:  builder,
		accounts: accounts,
	}, nil
}

func newSearchEngine(out io.Writer) *search.Engine {
	return search.New(
		logger.New(searchLoggerPrefix),
		search.WithProgress(func(latest digest.Digest) {
			fmt.Fprintf(out, "\r%s", latest)
		}),
	)
}

func newPipeline(conf *configuration.Configuration, parts *ledgerParts, identity *keypair.KeyPair, out io.Writer) *submit.Pipeline {
	return submit.New(logger.New(submitLoggerPrefix), parts.client, identity, conf.SubmitConfig(), out)
}

// nil store when history is disabled
func openHistory(conf *configuration.Configuration, readOnly bool) (*history.Store, error) {
	if !conf.History {
		return nil, nil
	}
	return history.Open(logger.New(historyLoggerPrefix), conf.HistoryFile(), readOnly)
}

// nil publisher when no endpoints are configured
func openPublisher(conf *configuration.Configuration) (*publish.Publisher, error) {
	if 0 == len(conf.Publish) {
		return nil, nil
	}
	return publish.New(logger.New(publishLoggerPrefix), conf.Publish)
}

func printJson(handle io.Writer, message interface{}) error {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
