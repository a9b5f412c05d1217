// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type SubmissionError GenericError
type TransportError GenericError

// common errors - keep in alphabetic order
var (
	ErrAccountDataTooShort       = LengthError("account data too short")
	ErrAlreadyInitialised        = ExistsError("already initialised")
	ErrCalendarPeriod            = InvalidError("calendar time period format error")
	ErrCalendarTime              = InvalidError("calendar clock time out of range")
	ErrConfigurationEmpty        = NotFoundError("configuration is empty")
	ErrConfirmationTimedOut      = SubmissionError("confirmation timed out")
	ErrDataDirectory             = InvalidError("data directory is not valid")
	ErrEmptyBusList              = InvalidError("bus list is empty")
	ErrFileNotFound              = NotFoundError("file not found")
	ErrIdentityExists            = ExistsError("identity file already exists")
	ErrInstructionTooLarge       = LengthError("instruction too large")
	ErrInsufficientBalance       = SubmissionError("insufficient balance")
	ErrInvalidBase58             = InvalidError("invalid base58 text")
	ErrInvalidCount              = InvalidError("invalid count")
	ErrInvalidIPAddress          = InvalidError("invalid IP address")
	ErrInvalidKeyLength          = LengthError("invalid key length")
	ErrInvalidLoggerChannel      = InvalidError("invalid logger channel")
	ErrInvalidPortNumber         = InvalidError("invalid port number")
	ErrInvalidPublicKey          = InvalidError("invalid public key")
	ErrInvalidResponse           = ProcessError("invalid response")
	ErrMissingFeePayer           = InvalidError("missing fee payer")
	ErrMissingSigner             = NotFoundError("missing signer")
	ErrNotAPlainFileName         = InvalidError("not a plain file name")
	ErrNotInitialised            = NotFoundError("not initialised")
	ErrRemoteError               = ProcessError("remote procedure call returned error")
	ErrSendFailed                = SubmissionError("send failed")
	ErrSimulationFailed          = SubmissionError("simulation failed")
	ErrSimulationExecutionFailed = ProcessError("simulation execution failed")
	ErrTooManyAccounts           = LengthError("too many accounts")
	ErrTransactionFailed         = ProcessError("transaction failed on ledger")
	ErrTransport                 = TransportError("transport failure")
	ErrUnknownAccount            = NotFoundError("account not found")
	ErrUnknownFinality           = InvalidError("unknown finality level")
	ErrWrongBlockhashLength      = LengthError("wrong blockhash length")
	ErrWrongDigestLength         = LengthError("wrong digest length")
	ErrWrongSignatureLength      = LengthError("wrong signature length")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e LengthError) Error() string     { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e ProcessError) Error() string    { return string(e) }
func (e SubmissionError) Error() string { return string(e) }
func (e TransportError) Error() string  { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool     { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool    { var x InvalidError; return errors.As(e, &x) }
func IsErrLength(e error) bool     { var x LengthError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool   { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool    { var x ProcessError; return errors.As(e, &x) }
func IsErrSubmission(e error) bool { var x SubmissionError; return errors.As(e, &x) }
func IsErrTransport(e error) bool  { var x TransportError; return errors.As(e, &x) }
