// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/ledgerminer/background"
	"github.com/bitmark-inc/ledgerminer/fault"
	"github.com/bitmark-inc/ledgerminer/keypair"
	"github.com/bitmark-inc/ledgerminer/miner"
	"github.com/bitmark-inc/ledgerminer/schedule"
)

func runMine(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	conf, err := m.setup()
	if nil != err {
		return err
	}
	defer logger.Finalise()

	log := logger.New(mainLoggerPrefix)
	log.Info("starting…")
	log.Infof("version: %s", version)

	// one miner per data directory
	if "" != conf.PidFile {
		lockFile, err := os.OpenFile(conf.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if nil != err {
			if os.IsExist(err) {
				return fmt.Errorf("another instance is already running")
			}
			return fmt.Errorf("PID file: %q creation failed, error: %w", conf.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(conf.PidFile)
	}

	identity, err := keypair.Load(conf.Identity)
	if nil != err {
		if fault.ErrFileNotFound == err {
			return fmt.Errorf("identity: %q not found, create one with: %s generate-identity", conf.Identity, c.App.Name)
		}
		return fmt.Errorf("identity: %q  error: %w", conf.Identity, err)
	}
	log.Infof("identity: %s", identity.PublicKey())

	calendar := schedule.New(logger.New(calendarPrefix))

	channels := newWatcherChannel()
	reader, err := newConfigReader(logger.New(readerLoggerPrefix), m.file, conf, calendar, channels)
	if nil != err {
		return err
	}

	watcher, err := newFileWatcher(logger.New(fileWatcherLoggerPrefix), m.file, channels)
	if nil != err {
		return fmt.Errorf("file watcher setup failed with error: %w", err)
	}
	if err := watcher.Start(); nil != err {
		return fmt.Errorf("file watcher start failed with error: %w", err)
	}
	defer watcher.Stop()

	out := m.progress()

	parts, err := newLedgerParts(conf)
	if nil != err {
		return err
	}

	deps := miner.Dependencies{
		State:     parts.state,
		Searcher:  newSearchEngine(out),
		Builder:   parts.builder,
		Submitter: newPipeline(conf, parts, identity, out),
		Threads:   reader,
		Calendar:  calendar,
	}

	store, err := openHistory(conf, false)
	if nil != err {
		return fmt.Errorf("history: %q  error: %w", conf.HistoryFile(), err)
	}
	if nil != store {
		defer store.Close()
		deps.Recorder = store
	}

	publisher, err := openPublisher(conf)
	if nil != err {
		return fmt.Errorf("publish setup failed with error: %w", err)
	}
	if nil != publisher {
		defer publisher.Close()
		deps.Publisher = publisher
		log.Infof("publishing rounds on: %v", publisher.Endpoints())
	}

	minerConfig := miner.Config{
		Identity: identity.PublicKey(),
		Rounds:   c.Uint64("rounds"),
	}
	mn, err := miner.New(logger.New(minerLoggerPrefix), minerConfig, deps, out)
	if nil != err {
		return err
	}

	processes := background.Processes{
		reader,
		mn,
	}
	p := background.Start(processes, nil)

	// wait for the round limit or a signal
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)

	select {
	case sig := <-ch:
		log.Infof("received signal: %v", sig)
		fmt.Fprintf(m.e, "\nstopping after the current search, signal again to exit now\n")
	case <-mn.Finished():
		log.Infof("completed rounds: %d", mn.Rounds())
	}

	stopped := make(chan struct{})
	go func() {
		p.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case sig := <-ch:
		log.Warnf("received signal: %v while stopping, exit now", sig)
		return fmt.Errorf("interrupted by signal: %v", sig)
	}

	log.Info("shutting down…")
	return nil
}
