// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package miner

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerminer/counter"
	"github.com/bitmark-inc/ledgerminer/fault"
	"github.com/bitmark-inc/ledgerminer/ledger"
	"github.com/bitmark-inc/ledgerminer/retry"
	"github.com/bitmark-inc/ledgerminer/search"
)

const (
	// ReportTopic - publish topic of round reports
	ReportTopic = "round"

	// DefaultStateRetryDelay - pause after the mining state could not be read
	DefaultStateRetryDelay = 5 * time.Second

	// calendar changes are picked up at least this often while waiting
	maximumCalendarWait = time.Minute
)

// Config - loop settings
type Config struct {
	Identity        ledger.PublicKey
	StateRetryDelay time.Duration
	Rounds          uint64 // stop after this many rounds, zero is unlimited
}

// Dependencies - collaborators of the loop
// Calendar, Recorder and Publisher are optional
type Dependencies struct {
	State     StateReader
	Searcher  Searcher
	Builder   Builder
	Submitter Submitter
	Threads   ThreadCounter
	Calendar  Calendar
	Recorder  Recorder
	Publisher Publisher
}

// Miner - the round loop, runs as a background process
type Miner struct {
	log      *logger.L
	config   Config
	deps     Dependencies
	out      io.Writer
	now      func() time.Time
	sleep    retry.SleepFunc
	rounds   counter.Counter
	finished chan struct{}
}

// Option - miner setting for tests
type Option func(*Miner)

// WithClock - replace time.Now
func WithClock(now func() time.Time) Option {
	return func(m *Miner) {
		m.now = now
	}
}

// WithSleep - replace retry.Sleep
func WithSleep(sleep retry.SleepFunc) Option {
	return func(m *Miner) {
		m.sleep = sleep
	}
}

// New - create a miner, console lines are written to out
func New(log *logger.L, config Config, deps Dependencies, out io.Writer, options ...Option) (*Miner, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if nil == deps.State || nil == deps.Searcher || nil == deps.Builder || nil == deps.Submitter || nil == deps.Threads {
		return nil, fault.ErrNotInitialised
	}
	if config.StateRetryDelay <= 0 {
		config.StateRetryDelay = DefaultStateRetryDelay
	}
	if nil == out {
		out = io.Discard
	}

	m := &Miner{
		log:      log,
		config:   config,
		deps:     deps,
		out:      out,
		now:      time.Now,
		sleep:    retry.Sleep,
		finished: make(chan struct{}),
	}
	for _, option := range options {
		option(m)
	}
	return m, nil
}

// Finished - closed when Run returns
func (m *Miner) Finished() <-chan struct{} {
	return m.finished
}

// Rounds - number of completed rounds
func (m *Miner) Rounds() uint64 {
	return m.rounds.Uint64()
}

// Run - repeat rounds until shutdown is closed or the round limit is hit
//
// an in-flight search is not interrupted; shutdown takes effect once
// it completes, and shortens every wait in submission
func (m *Miner) Run(args interface{}, shutdown <-chan struct{}) {
	defer close(m.finished)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-shutdown:
			cancel()
		case <-ctx.Done():
		}
	}()

	m.log.Info("starting…")

loop:
	for {
		if nil != ctx.Err() {
			break loop
		}
		if 0 != m.config.Rounds && m.rounds.Uint64() >= m.config.Rounds {
			m.log.Infof("completed: %d rounds", m.rounds.Uint64())
			break loop
		}
		if !m.waitForCalendar(ctx) {
			break loop
		}

		_, err := m.Round(ctx)
		if nil != err {
			m.log.Errorf("read mining state error: %s", err)
			fmt.Fprintf(m.out, "Failed to read mining state: %s, retrying in %s\n", err, m.config.StateRetryDelay)
			if nil != m.sleep(ctx, m.config.StateRetryDelay) {
				break loop
			}
		}
	}

	m.log.Info("stopped")
}

// hold until the calendar allows mining, false on shutdown
func (m *Miner) waitForCalendar(ctx context.Context) bool {
	if nil == m.deps.Calendar {
		return true
	}

	announced := false
	for {
		now := m.now()
		if m.deps.Calendar.Active(now) {
			if announced {
				m.log.Info("calendar window open")
			}
			return true
		}

		next := m.deps.Calendar.NextStart(now)
		if !announced {
			m.log.Infof("outside calendar, next start: %s", next)
			fmt.Fprintf(m.out, "Outside the mining calendar, next start: %s\n", next.Format(time.RFC1123))
			announced = true
		}

		wait := next.Sub(now)
		if wait > maximumCalendarWait {
			wait = maximumCalendarWait
		}
		if wait <= 0 {
			wait = time.Second
		}
		if nil != m.sleep(ctx, wait) {
			return false
		}
	}
}

// Round - one read, search, build, submit and report cycle
//
// an error is returned only if the mining state could not be read, in
// which case nothing was searched or submitted
func (m *Miner) Round(ctx context.Context) (*Report, error) {
	state, err := m.deps.State.Current(ctx)
	if nil != err {
		return nil, err
	}
	balance := m.deps.State.DisplayBalance(ctx)

	fmt.Fprintf(m.out, "Balance: %s, Claimable: %s, Mining for a valid hash...\n", balance, state.ClaimableText())

	workers := int(m.deps.Threads.OptimalThreadCount())
	solution, stats := m.deps.Searcher.SearchWithStats(search.Request{
		Challenge:  state.Challenge,
		Difficulty: state.Difficulty,
		Identity:   m.config.Identity,
		Workers:    workers,
	})
	fmt.Fprintf(m.out, "\nFound: %s  nonce: %d\n", solution.Digest, solution.Nonce)

	instructions := m.deps.Builder.Mine(m.config.Identity, solution)
	outcome := m.deps.Submitter.Submit(ctx, instructions)

	report := &Report{
		Round:     m.rounds.Increment(),
		Timestamp: m.now(),
		Balance:   balance,
		State:     state,
		Solution:  solution,
		Stats:     stats,
		Outcome:   outcome,
	}
	m.report(report)
	return report, nil
}

// console, log, history and publish
func (m *Miner) report(report *Report) {
	fmt.Fprintln(m.out, report)
	if report.Outcome.Succeeded() && nil == report.Outcome.Err {
		m.log.Infof("%s", report)
	} else {
		m.log.Warnf("%s", report)
	}

	if nil == m.deps.Recorder && nil == m.deps.Publisher {
		return
	}

	record := report.Record()
	if nil != m.deps.Recorder {
		if err := m.deps.Recorder.Put(record); nil != err {
			m.log.Errorf("history round: %d  error: %s", report.Round, err)
		}
	}
	if nil != m.deps.Publisher {
		if err := m.deps.Publisher.Publish(ReportTopic, record); nil != err {
			m.log.Errorf("publish round: %d  error: %s", report.Round, err)
		}
	}
}
