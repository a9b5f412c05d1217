// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerminer/counter"
	"github.com/bitmark-inc/ledgerminer/fault"
)

// errors specific to the client
var (
	ErrRateLimiting = fault.ProcessError("rate limiting")
	ErrHTTPStatus   = fault.TransportError("unexpected HTTP status")
)

// defaults
const (
	DefaultTimeout           = 30 * time.Second
	DefaultRequestsPerSecond = 10
	DefaultBurst             = 5
	DefaultCommitment        = "confirmed"

	maximumResponseSize = 4 * 1024 * 1024
)

// Config - connection settings
type Config struct {
	URL               string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
	Commitment        string
}

// Client - one remote ledger endpoint
type Client struct {
	log        *logger.L
	url        string
	client     *http.Client
	limiter    *rate.Limiter
	commitment string
	nextID     counter.Counter
}

type request struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      uint64        `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *remoteError    `json:"error"`
}

type remoteError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// New - create a client
func New(log *logger.L, config Config) *Client {
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	if config.RequestsPerSecond <= 0 {
		config.RequestsPerSecond = DefaultRequestsPerSecond
	}
	if config.Burst <= 0 {
		config.Burst = DefaultBurst
	}
	if "" == config.Commitment {
		config.Commitment = DefaultCommitment
	}

	return &Client{
		log: log,
		url: config.URL,
		client: &http.Client{
			Timeout: config.Timeout,
		},
		limiter:    rate.NewLimiter(rate.Limit(config.RequestsPerSecond), config.Burst),
		commitment: config.Commitment,
	}
}

// call - one remote procedure call, result is decoded into result
//
// network failures and HTTP errors wrap fault.ErrTransport
// an error object in the reply wraps fault.ErrRemoteError
func (c *Client) call(ctx context.Context, method string, params []interface{}, result interface{}) error {
	if err := limit(ctx, c.limiter); nil != err {
		return err
	}

	id := c.nextID.Increment()
	body, err := json.Marshal(request{
		JSONRPC: "2.0",
		ID:      id,
		Method:  method,
		Params:  params,
	})
	if nil != err {
		return err
	}
	c.log.Tracef("request: %s", body)

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if nil != err {
		return err
	}
	httpRequest.Header.Set("Content-Type", "application/json")

	httpResponse, err := c.client.Do(httpRequest)
	if nil != err {
		c.log.Debugf("%s: error: %s", method, err)
		return fmt.Errorf("%s: %w: %v", method, fault.ErrTransport, err)
	}
	defer httpResponse.Body.Close()

	data, err := io.ReadAll(io.LimitReader(httpResponse.Body, maximumResponseSize))
	if nil != err {
		return fmt.Errorf("%s: %w: %v", method, fault.ErrTransport, err)
	}
	if http.StatusOK != httpResponse.StatusCode {
		c.log.Debugf("%s: status: %d  body: %s", method, httpResponse.StatusCode, data)
		return fmt.Errorf("%s: %w: %d", method, ErrHTTPStatus, httpResponse.StatusCode)
	}
	c.log.Tracef("response: %s", data)

	var reply response
	if err := json.Unmarshal(data, &reply); nil != err {
		return fmt.Errorf("%s: %w: %v", method, fault.ErrInvalidResponse, err)
	}
	if nil != reply.Error {
		return fmt.Errorf("%s: %w: %d %s", method, fault.ErrRemoteError, reply.Error.Code, reply.Error.Message)
	}
	if id != reply.ID {
		return fmt.Errorf("%s: %w: id: %d  expected: %d", method, fault.ErrInvalidResponse, reply.ID, id)
	}
	if nil == result {
		return nil
	}
	if err := json.Unmarshal(reply.Result, result); nil != err {
		return fmt.Errorf("%s: %w: %v", method, fault.ErrInvalidResponse, err)
	}
	return nil
}
