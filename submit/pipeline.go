// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package submit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerminer/fault"
	"github.com/bitmark-inc/ledgerminer/ledger"
	"github.com/bitmark-inc/ledgerminer/retry"
)

// defaults for each stage
const (
	DefaultAttempts        = 4
	DefaultSendBackoff     = 2 * time.Second
	DefaultConfirmInterval = 2 * time.Second
	DefaultComputeMargin   = 1000
)

var errSigning = fault.InvalidError("transaction signing failed")

// Config - stage switches and limits
type Config struct {
	Simulate         bool
	SkipConfirm      bool
	ComputeMargin    uint32
	SimulateAttempts int
	SendAttempts     int
	SendBackoff      time.Duration
	ConfirmAttempts  int
	ConfirmInterval  time.Duration
	Sleep            retry.SleepFunc // nil means retry.Sleep
}

// DefaultConfig - four attempts at every stage, two second waits
func DefaultConfig() Config {
	return Config{
		Simulate:         true,
		SkipConfirm:      false,
		ComputeMargin:    DefaultComputeMargin,
		SimulateAttempts: DefaultAttempts,
		SendAttempts:     DefaultAttempts,
		SendBackoff:      DefaultSendBackoff,
		ConfirmAttempts:  DefaultAttempts,
		ConfirmInterval:  DefaultConfirmInterval,
	}
}

// Pipeline - takes instructions through balance check, simulation,
// broadcast and confirmation
type Pipeline struct {
	log    *logger.L
	ledger ledger.Ledger
	signer ledger.Signer
	config Config
	out    io.Writer
}

// New - create a pipeline, progress lines are written to out
func New(log *logger.L, l ledger.Ledger, signer ledger.Signer, config Config, out io.Writer) *Pipeline {
	if nil == out {
		out = io.Discard
	}
	return &Pipeline{
		log:    log,
		ledger: l,
		signer: signer,
		config: config,
		out:    out,
	}
}

// progress line for the operator and the log
func (p *Pipeline) progress(format string, arguments ...interface{}) {
	s := fmt.Sprintf(format, arguments...)
	fmt.Fprintln(p.out, s)
	p.log.Info(s)
}

// Submit - run the instructions through every stage
//
// never returns an error; every failure is a terminal Outcome
func (p *Pipeline) Submit(ctx context.Context, instructions []ledger.Instruction) Outcome {
	payer := p.signer.PublicKey()

	balance, err := p.ledger.Balance(ctx, payer)
	if nil != err {
		p.log.Errorf("balance of: %s  error: %s", payer, err)
		return Outcome{
			Status: Aborted,
			Err:    fmt.Errorf("read payer balance: %w", err),
		}
	}
	if 0 == balance {
		p.progress("Insufficient balance in %s to pay fees", payer)
		return Outcome{
			Status: InsufficientBalance,
			Err:    fault.ErrInsufficientBalance,
		}
	}
	p.log.Debugf("payer: %s  balance: %d", payer, balance)

	tx := ledger.NewTransaction(payer, instructions...)
	outcome := Outcome{}

	if p.config.Simulate {
		if !p.simulate(ctx, tx, &outcome) {
			return outcome
		}
	}

	if !p.send(ctx, tx, &outcome) {
		return outcome
	}

	if p.config.SkipConfirm {
		outcome.Status = Sent
		return outcome
	}

	p.confirm(ctx, &outcome)
	return outcome
}

// Built → Simulated
func (p *Pipeline) simulate(ctx context.Context, tx *ledger.Transaction, outcome *Outcome) bool {
	policy := retry.Policy{
		Attempts: p.config.SimulateAttempts,
		Sleep:    p.config.Sleep,
	}
	classify := retry.Classifier[ledger.SimulationResult]{
		Success: func(r ledger.SimulationResult, err error) bool {
			return nil == err && r.Succeeded()
		},
	}

	result := retry.Do(ctx, policy, classify, func(ctx context.Context, attempt int) (ledger.SimulationResult, error) {
		r, err := p.ledger.Simulate(ctx, tx)
		if nil != err {
			p.progress("Simulation attempt %d error: %s", attempt, err)
		} else if !r.Succeeded() {
			p.progress("Simulation attempt %d failed: %s", attempt, r.Err)
		}
		return r, err
	})
	outcome.Simulations = result.Attempts

	if nil != result.Err {
		p.progress("Simulation failed after %d attempts", result.Attempts)
		outcome.Status = SimulationFailed
		outcome.Err = fmt.Errorf("%w: %v", fault.ErrSimulationFailed, result.Err)
		return false
	}

	if result.Value.UnitsReported {
		units := uint64(result.Value.UnitsConsumed) + uint64(p.config.ComputeMargin)
		if units > math.MaxUint32 {
			units = math.MaxUint32
		}
		outcome.ComputeLimit = uint32(units)
		tx.Prepend(ledger.ComputeUnitLimit(outcome.ComputeLimit))
		p.log.Debugf("simulation used: %d units  limit: %d", result.Value.UnitsConsumed, outcome.ComputeLimit)
	} else {
		p.log.Warn("simulation did not report units consumed, no compute limit added")
	}
	return true
}

// Simulated → Sent
func (p *Pipeline) send(ctx context.Context, tx *ledger.Transaction, outcome *Outcome) bool {
	policy := retry.Policy{
		Attempts: p.config.SendAttempts,
		Delay:    p.config.SendBackoff,
		Sleep:    p.config.Sleep,
	}
	classify := retry.Classifier[ledger.Signature]{
		Success: func(_ ledger.Signature, err error) bool {
			return nil == err
		},
		Retryable: func(_ ledger.Signature, err error) bool {
			return !errors.Is(err, errSigning)
		},
	}

	result := retry.Do(ctx, policy, classify, func(ctx context.Context, attempt int) (ledger.Signature, error) {
		ref, err := p.ledger.LatestReference(ctx)
		if nil != err {
			p.progress("Send attempt %d: reference point error: %s", attempt, err)
			return ledger.Signature{}, err
		}
		if err := tx.Sign(ref.Blockhash, p.signer); nil != err {
			p.log.Errorf("sign error: %s", err)
			return ledger.Signature{}, fmt.Errorf("%w: %v", errSigning, err)
		}
		sig, err := p.ledger.Send(ctx, tx, ref)
		if nil != err {
			p.progress("Send attempt %d error: %s", attempt, err)
		}
		return sig, err
	})
	outcome.Sends = result.Attempts

	if nil != result.Err {
		p.progress("Send failed after %d attempts", result.Attempts)
		outcome.Status = SendFailed
		outcome.Err = fmt.Errorf("%w: %v", fault.ErrSendFailed, result.Err)
		return false
	}

	outcome.Signature = result.Value
	p.progress("Transaction sent: %s", outcome.Signature)
	return true
}

// Sent → Confirmed
func (p *Pipeline) confirm(ctx context.Context, outcome *Outcome) {
	policy := retry.Policy{
		Attempts:   p.config.ConfirmAttempts,
		Delay:      p.config.ConfirmInterval,
		DelayFirst: true,
		Sleep:      p.config.Sleep,
	}
	classify := retry.Classifier[ledger.Finality]{
		Success: func(f ledger.Finality, err error) bool {
			return f.IsSettled() && (nil == err || errors.Is(err, fault.ErrTransactionFailed))
		},
	}

	// settled but failed on the ledger
	var executionErr error

	result := retry.Do(ctx, policy, classify, func(ctx context.Context, attempt int) (ledger.Finality, error) {
		f, err := p.ledger.Status(ctx, outcome.Signature)
		executionErr = nil
		switch {
		case nil != err && f.IsSettled() && errors.Is(err, fault.ErrTransactionFailed):
			executionErr = err
		case nil != err:
			p.progress("Status poll %d error: %s", attempt, err)
		case ledger.Unknown == f:
			p.progress("Status poll %d: not yet visible", attempt)
		case !f.IsSettled():
			p.progress("Status poll %d: %s", attempt, f)
		}
		return f, err
	})
	outcome.Polls = result.Attempts
	outcome.Finality = result.Value

	if nil != result.Err {
		p.progress("Transaction not confirmed after %d polls", result.Attempts)
		outcome.Status = ConfirmationTimedOut
		outcome.Err = fmt.Errorf("%w: %v", fault.ErrConfirmationTimedOut, result.Err)
		return
	}

	outcome.Status = Confirmed
	if nil != executionErr {
		p.progress("Transaction %s with error: %s", outcome.Finality, executionErr)
		outcome.Err = executionErr
		return
	}
	p.progress("Transaction %s", outcome.Finality)
}
