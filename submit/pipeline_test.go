// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package submit_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerminer/fault"
	"github.com/bitmark-inc/ledgerminer/fixtures"
	"github.com/bitmark-inc/ledgerminer/ledger"
	"github.com/bitmark-inc/ledgerminer/ledger/mocks"
	"github.com/bitmark-inc/ledgerminer/submit"
)

var errTimeout = fmt.Errorf("post: %w", fault.ErrTransport)

type sleeper struct {
	waits []time.Duration
}

func (s *sleeper) sleep(_ context.Context, d time.Duration) error {
	s.waits = append(s.waits, d)
	return nil
}

type setup struct {
	pipeline *submit.Pipeline
	ledger   *mocks.MockLedger
	sleeper  *sleeper
	out      *bytes.Buffer
	signer   *fixtures.Signer
}

func newSetup(ctl *gomock.Controller, configure func(*submit.Config)) *setup {
	s := &setup{
		ledger:  mocks.NewMockLedger(ctl),
		sleeper: &sleeper{},
		out:     &bytes.Buffer{},
		signer:  fixtures.NewSigner(7),
	}
	config := submit.DefaultConfig()
	config.Simulate = false
	config.Sleep = s.sleeper.sleep
	if nil != configure {
		configure(&config)
	}
	s.pipeline = submit.New(logger.New(fixtures.LogCategory), s.ledger, s.signer, config, s.out)
	return s
}

func testInstructions() []ledger.Instruction {
	var program ledger.PublicKey
	program[0] = 0x42
	return []ledger.Instruction{
		{Program: program, Data: []byte{2, 1, 2, 3}},
	}
}

func testReference(slot uint64) ledger.Reference {
	ref := ledger.Reference{Slot: slot}
	ref.Blockhash[0] = byte(slot)
	return ref
}

func testSignature() ledger.Signature {
	var sig ledger.Signature
	sig[0] = 0x99
	return sig
}

func TestInsufficientBalance(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(ctl, func(c *submit.Config) { c.Simulate = true })
	s.ledger.EXPECT().Balance(gomock.Any(), s.signer.PublicKey()).Return(uint64(0), nil).Times(1)

	outcome := s.pipeline.Submit(context.Background(), testInstructions())

	assert.Equal(t, submit.InsufficientBalance, outcome.Status, "status")
	assert.Equal(t, fault.ErrInsufficientBalance, outcome.Err, "error")
	assert.Equal(t, 0, outcome.Simulations, "no simulation")
	assert.Equal(t, 0, outcome.Sends, "no send")
	assert.False(t, outcome.Succeeded(), "not a success")
}

func TestBalanceUnavailable(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(ctl, nil)
	s.ledger.EXPECT().Balance(gomock.Any(), gomock.Any()).Return(uint64(0), errTimeout).Times(1)

	outcome := s.pipeline.Submit(context.Background(), testInstructions())

	assert.Equal(t, submit.Aborted, outcome.Status, "status")
	assert.True(t, fault.IsErrTransport(outcome.Err), "transport error: %v", outcome.Err)
}

// k failures followed by a success, for every k below the limit
func TestSendRetriesThenSucceeds(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	for k := 0; k < submit.DefaultAttempts; k += 1 {
		ctl := gomock.NewController(t)

		s := newSetup(ctl, func(c *submit.Config) { c.SkipConfirm = true })
		s.ledger.EXPECT().Balance(gomock.Any(), gomock.Any()).Return(uint64(5000), nil).Times(1)
		s.ledger.EXPECT().LatestReference(gomock.Any()).Return(testReference(100), nil).Times(k + 1)

		calls := 0
		s.ledger.EXPECT().Send(gomock.Any(), gomock.Any(), testReference(100)).DoAndReturn(
			func(_ context.Context, tx *ledger.Transaction, _ ledger.Reference) (ledger.Signature, error) {
				calls += 1
				assert.False(t, tx.Signature().IsZero(), "k=%d: transaction is signed", k)
				assert.Equal(t, testReference(100).Blockhash, tx.Blockhash, "k=%d: blockhash", k)
				if calls <= k {
					return ledger.Signature{}, errTimeout
				}
				return testSignature(), nil
			}).Times(k + 1)

		outcome := s.pipeline.Submit(context.Background(), testInstructions())

		assert.Equal(t, submit.Sent, outcome.Status, "k=%d: status", k)
		assert.Nil(t, outcome.Err, "k=%d: error", k)
		assert.Equal(t, k+1, outcome.Sends, "k=%d: sends", k)
		assert.Equal(t, testSignature(), outcome.Signature, "k=%d: signature", k)
		assert.Equal(t, k, len(s.sleeper.waits), "k=%d: waits", k)
		for _, w := range s.sleeper.waits {
			assert.Equal(t, submit.DefaultSendBackoff, w, "k=%d: backoff", k)
		}

		ctl.Finish()
	}
}

func TestSendFailsAfterFourAttempts(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(ctl, nil)
	s.ledger.EXPECT().Balance(gomock.Any(), gomock.Any()).Return(uint64(1), nil).Times(1)
	s.ledger.EXPECT().LatestReference(gomock.Any()).Return(testReference(7), nil).Times(4)
	s.ledger.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(ledger.Signature{}, errTimeout).Times(4)

	outcome := s.pipeline.Submit(context.Background(), testInstructions())

	assert.Equal(t, submit.SendFailed, outcome.Status, "status")
	assert.True(t, errors.Is(outcome.Err, fault.ErrSendFailed), "error: %v", outcome.Err)
	assert.Equal(t, 4, outcome.Sends, "sends")
	assert.Equal(t, 0, outcome.Polls, "no polls")
	assert.True(t, outcome.Signature.IsZero(), "no signature")
}

func TestReferenceFailureCountsAsAttempt(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(ctl, func(c *submit.Config) { c.SkipConfirm = true })
	s.ledger.EXPECT().Balance(gomock.Any(), gomock.Any()).Return(uint64(1), nil).Times(1)
	gomock.InOrder(
		s.ledger.EXPECT().LatestReference(gomock.Any()).Return(ledger.Reference{}, errTimeout),
		s.ledger.EXPECT().LatestReference(gomock.Any()).Return(testReference(8), nil),
	)
	s.ledger.EXPECT().Send(gomock.Any(), gomock.Any(), testReference(8)).Return(testSignature(), nil).Times(1)

	outcome := s.pipeline.Submit(context.Background(), testInstructions())

	assert.Equal(t, submit.Sent, outcome.Status, "status")
	assert.Equal(t, 2, outcome.Sends, "sends")
}

func TestConfirmedOnFourthPoll(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(ctl, nil)
	s.ledger.EXPECT().Balance(gomock.Any(), gomock.Any()).Return(uint64(1), nil).Times(1)
	s.ledger.EXPECT().LatestReference(gomock.Any()).Return(testReference(1), nil).Times(1)
	s.ledger.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(testSignature(), nil).Times(1)
	gomock.InOrder(
		s.ledger.EXPECT().Status(gomock.Any(), testSignature()).Return(ledger.Processed, nil).Times(3),
		s.ledger.EXPECT().Status(gomock.Any(), testSignature()).Return(ledger.Confirmed, nil).Times(1),
	)

	outcome := s.pipeline.Submit(context.Background(), testInstructions())

	assert.Equal(t, submit.Confirmed, outcome.Status, "status")
	assert.Nil(t, outcome.Err, "error")
	assert.Equal(t, 4, outcome.Polls, "polls")
	assert.Equal(t, ledger.Confirmed, outcome.Finality, "finality")
	assert.Equal(t, []time.Duration{
		submit.DefaultConfirmInterval,
		submit.DefaultConfirmInterval,
		submit.DefaultConfirmInterval,
		submit.DefaultConfirmInterval,
	}, s.sleeper.waits, "a wait before every poll")
	assert.True(t, outcome.Succeeded(), "success")
}

func TestConfirmedWithExecutionError(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	failed := fmt.Errorf("%w: {\"InstructionError\":[0,{\"Custom\":1}]}", fault.ErrTransactionFailed)

	s := newSetup(ctl, nil)
	s.ledger.EXPECT().Balance(gomock.Any(), gomock.Any()).Return(uint64(1), nil).Times(1)
	s.ledger.EXPECT().LatestReference(gomock.Any()).Return(testReference(1), nil).Times(1)
	s.ledger.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(testSignature(), nil).Times(1)
	gomock.InOrder(
		s.ledger.EXPECT().Status(gomock.Any(), testSignature()).Return(ledger.Processed, failed).Times(1),
		s.ledger.EXPECT().Status(gomock.Any(), testSignature()).Return(ledger.Confirmed, failed).Times(1),
	)

	outcome := s.pipeline.Submit(context.Background(), testInstructions())

	assert.Equal(t, submit.Confirmed, outcome.Status, "settled")
	assert.Equal(t, 2, outcome.Polls, "stops once settled")
	assert.Equal(t, ledger.Confirmed, outcome.Finality, "finality")
	assert.True(t, errors.Is(outcome.Err, fault.ErrTransactionFailed), "execution error kept: %v", outcome.Err)
	assert.Contains(t, s.out.String(), "InstructionError", "progress shows the error")
}

func TestFinalizedCounts(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(ctl, nil)
	s.ledger.EXPECT().Balance(gomock.Any(), gomock.Any()).Return(uint64(1), nil).Times(1)
	s.ledger.EXPECT().LatestReference(gomock.Any()).Return(testReference(1), nil).Times(1)
	s.ledger.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(testSignature(), nil).Times(1)
	gomock.InOrder(
		s.ledger.EXPECT().Status(gomock.Any(), gomock.Any()).Return(ledger.Unknown, nil),
		s.ledger.EXPECT().Status(gomock.Any(), gomock.Any()).Return(ledger.Unknown, errTimeout),
		s.ledger.EXPECT().Status(gomock.Any(), gomock.Any()).Return(ledger.Finalized, nil),
	)

	outcome := s.pipeline.Submit(context.Background(), testInstructions())

	assert.Equal(t, submit.Confirmed, outcome.Status, "status")
	assert.Equal(t, 3, outcome.Polls, "polls")
	assert.Equal(t, ledger.Finalized, outcome.Finality, "finality")
}

func TestConfirmationTimesOut(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(ctl, nil)
	s.ledger.EXPECT().Balance(gomock.Any(), gomock.Any()).Return(uint64(1), nil).Times(1)
	s.ledger.EXPECT().LatestReference(gomock.Any()).Return(testReference(1), nil).Times(1)
	s.ledger.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(testSignature(), nil).Times(1)
	s.ledger.EXPECT().Status(gomock.Any(), testSignature()).Return(ledger.Processed, nil).Times(4)

	outcome := s.pipeline.Submit(context.Background(), testInstructions())

	assert.Equal(t, submit.ConfirmationTimedOut, outcome.Status, "status")
	assert.True(t, errors.Is(outcome.Err, fault.ErrConfirmationTimedOut), "error: %v", outcome.Err)
	assert.Equal(t, 4, outcome.Polls, "polls")
	assert.Equal(t, testSignature(), outcome.Signature, "signature still reported")
}

// no Status expectation: any status call fails the test
func TestSkipConfirm(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(ctl, func(c *submit.Config) { c.SkipConfirm = true })
	s.ledger.EXPECT().Balance(gomock.Any(), gomock.Any()).Return(uint64(1), nil).Times(1)
	s.ledger.EXPECT().LatestReference(gomock.Any()).Return(testReference(1), nil).Times(1)
	s.ledger.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(testSignature(), nil).Times(1)

	outcome := s.pipeline.Submit(context.Background(), testInstructions())

	assert.Equal(t, submit.Sent, outcome.Status, "status")
	assert.Equal(t, 0, outcome.Polls, "no polls")
	assert.Equal(t, 0, len(s.sleeper.waits), "no waits")
	assert.True(t, outcome.Succeeded(), "success")
}

func TestSimulationAddsComputeLimit(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(ctl, func(c *submit.Config) {
		c.Simulate = true
		c.SkipConfirm = true
	})
	s.ledger.EXPECT().Balance(gomock.Any(), gomock.Any()).Return(uint64(1), nil).Times(1)
	gomock.InOrder(
		s.ledger.EXPECT().Simulate(gomock.Any(), gomock.Any()).Return(ledger.SimulationResult{}, errTimeout),
		s.ledger.EXPECT().Simulate(gomock.Any(), gomock.Any()).Return(ledger.SimulationResult{Err: "custom program error: 0x3"}, nil),
		s.ledger.EXPECT().Simulate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx *ledger.Transaction) (ledger.SimulationResult, error) {
				assert.Equal(t, 1, len(tx.Instructions), "simulated without a limit")
				return ledger.SimulationResult{UnitsConsumed: 5000, UnitsReported: true}, nil
			}),
	)
	s.ledger.EXPECT().LatestReference(gomock.Any()).Return(testReference(1), nil).Times(1)
	s.ledger.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tx *ledger.Transaction, _ ledger.Reference) (ledger.Signature, error) {
			assert.Equal(t, 2, len(tx.Instructions), "limit added")
			assert.Equal(t, ledger.ComputeUnitLimit(6000), tx.Instructions[0], "limit first")
			assert.Equal(t, testInstructions()[0], tx.Instructions[1], "original instruction kept")
			return testSignature(), nil
		}).Times(1)

	outcome := s.pipeline.Submit(context.Background(), testInstructions())

	assert.Equal(t, submit.Sent, outcome.Status, "status")
	assert.Equal(t, 3, outcome.Simulations, "simulations")
	assert.Equal(t, uint32(6000), outcome.ComputeLimit, "limit")
	assert.Equal(t, 0, len(s.sleeper.waits), "no waits between simulations")
}

func TestSimulationWithoutUnits(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(ctl, func(c *submit.Config) {
		c.Simulate = true
		c.SkipConfirm = true
	})
	s.ledger.EXPECT().Balance(gomock.Any(), gomock.Any()).Return(uint64(1), nil).Times(1)
	s.ledger.EXPECT().Simulate(gomock.Any(), gomock.Any()).Return(ledger.SimulationResult{}, nil).Times(1)
	s.ledger.EXPECT().LatestReference(gomock.Any()).Return(testReference(1), nil).Times(1)
	s.ledger.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tx *ledger.Transaction, _ ledger.Reference) (ledger.Signature, error) {
			assert.Equal(t, 1, len(tx.Instructions), "unmodified")
			return testSignature(), nil
		}).Times(1)

	outcome := s.pipeline.Submit(context.Background(), testInstructions())

	assert.Equal(t, submit.Sent, outcome.Status, "status")
	assert.Equal(t, uint32(0), outcome.ComputeLimit, "no limit")
}

// no Send expectation: nothing may be broadcast
func TestSimulationFailed(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newSetup(ctl, func(c *submit.Config) { c.Simulate = true })
	s.ledger.EXPECT().Balance(gomock.Any(), gomock.Any()).Return(uint64(1), nil).Times(1)
	s.ledger.EXPECT().Simulate(gomock.Any(), gomock.Any()).Return(ledger.SimulationResult{Err: "InstructionError"}, nil).Times(4)

	outcome := s.pipeline.Submit(context.Background(), testInstructions())

	assert.Equal(t, submit.SimulationFailed, outcome.Status, "status")
	assert.True(t, errors.Is(outcome.Err, fault.ErrSimulationFailed), "error: %v", outcome.Err)
	assert.Equal(t, 4, outcome.Simulations, "simulations")
	assert.Equal(t, 0, outcome.Sends, "no send")
	assert.Contains(t, s.out.String(), "Simulation failed after 4 attempts", "progress line")
}

func TestStatusText(t *testing.T) {
	for _, status := range []submit.Status{
		submit.Confirmed,
		submit.Sent,
		submit.SendFailed,
		submit.SimulationFailed,
		submit.ConfirmationTimedOut,
		submit.InsufficientBalance,
		submit.Aborted,
	} {
		text, err := status.MarshalText()
		assert.Nil(t, err, "marshal %d", status)

		var back submit.Status
		err = back.UnmarshalText(text)
		assert.Nil(t, err, "unmarshal %s", text)
		assert.Equal(t, status, back, "round trip %s", text)
	}
	assert.Equal(t, "unknown", submit.Status(0).String(), "zero status")
}
