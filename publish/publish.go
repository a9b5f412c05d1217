// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - fan out round reports on ZeroMQ PUB sockets
//
// each message has two frames: the topic and a JSON body
package publish

import (
	"encoding/json"
	"sync"
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerminer/fault"
	"github.com/bitmark-inc/ledgerminer/util"
)

const (
	lingerTime = 500 * time.Millisecond
)

// Publisher - a bound PUB socket
type Publisher struct {
	sync.Mutex
	log    *logger.L
	socket *zmq.Socket
	bound  []string
}

// New - bind a PUB socket to every endpoint
// endpoints are "IP:port" or "*:port"
func New(log *logger.L, endpoints []string) (*Publisher, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	socket, err := zmq.NewSocket(zmq.PUB)
	if nil != err {
		return nil, err
	}

	ok := false
	defer func() {
		if !ok {
			socket.Close()
		}
	}()

	err = socket.SetLinger(lingerTime)
	if nil != err {
		return nil, err
	}

	bound := make([]string, 0, len(endpoints))
	for i, address := range endpoints {
		bindTo, err := util.CanonicalEndpoint(address)
		if nil != err {
			log.Errorf("publish[%d]=%q  error: %s", i, address, err)
			return nil, err
		}
		err = socket.Bind(bindTo)
		if nil != err {
			log.Errorf("publish[%d]=%q  bind error: %s", i, bindTo, err)
			return nil, err
		}
		log.Infof("publish on: %q", bindTo)
		bound = append(bound, bindTo)
	}

	ok = true
	return &Publisher{
		log:    log,
		socket: socket,
		bound:  bound,
	}, nil
}

// Endpoints - the addresses the socket is bound to
func (p *Publisher) Endpoints() []string {
	return p.bound
}

// Publish - send item as JSON under topic
// messages are dropped if no subscriber is connected
func (p *Publisher) Publish(topic string, item interface{}) error {
	data, err := json.Marshal(item)
	if nil != err {
		return err
	}

	p.Lock()
	defer p.Unlock()

	if nil == p.socket {
		return fault.ErrNotInitialised
	}

	_, err = p.socket.SendMessage(topic, data)
	if nil != err {
		p.log.Errorf("send topic: %s  error: %s", topic, err)
		return err
	}
	p.log.Tracef("sent topic: %s  data: %s", topic, data)
	return nil
}

// Close - close the socket, later publishes fail
func (p *Publisher) Close() {
	p.Lock()
	defer p.Unlock()

	if nil != p.socket {
		p.socket.Close()
		p.socket = nil
	}
}
