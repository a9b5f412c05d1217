// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"runtime"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerminer/configuration"
	"github.com/bitmark-inc/ledgerminer/fault"
	"github.com/bitmark-inc/ledgerminer/schedule"
)

const (
	readerLoggerPrefix  = "config-reader"
	defaultRefreshDelay = time.Minute
	minThreadCount      = 1
)

// calendarRefresher - receives the calendar of each configuration read
type calendarRefresher interface {
	Refresh(week schedule.Week) bool
}

// configReader - current configuration, re-read when the file changes
//
// only the thread count and the calendar follow a re-read, both take
// effect on the next round
type configReader struct {
	sync.RWMutex

	log          *logger.L
	fileName     string
	refreshDelay time.Duration
	cpuCount     uint32
	current      *configuration.Configuration
	threadCount  uint32
	calendar     calendarRefresher
	channels     watcherChannel
	load         func(string) (*configuration.Configuration, error)
}

func newConfigReader(log *logger.L, fileName string, current *configuration.Configuration, calendar calendarRefresher, channels watcherChannel) (*configReader, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if nil == current || nil == calendar {
		return nil, fault.ErrNotInitialised
	}

	c := &configReader{
		log:          log,
		fileName:     fileName,
		refreshDelay: defaultRefreshDelay,
		cpuCount:     uint32(runtime.NumCPU()),
		calendar:     calendar,
		channels:     channels,
		load:         configuration.Load,
	}
	c.update(current)
	return c, nil
}

// Configuration - the most recently read configuration
func (c *configReader) Configuration() *configuration.Configuration {
	c.RLock()
	defer c.RUnlock()
	return c.current
}

// OptimalThreadCount - workers for the next round
func (c *configReader) OptimalThreadCount() uint32 {
	c.RLock()
	defer c.RUnlock()
	return c.threadCount
}

// Refresh - read the file again and apply it
// the previous configuration stays in force if the file is invalid
func (c *configReader) Refresh() error {
	conf, err := c.load(c.fileName)
	if nil != err {
		return err
	}
	c.update(conf)
	return nil
}

func (c *configReader) update(conf *configuration.Configuration) {
	c.Lock()
	c.current = conf
	c.threadCount = optimalThreadCount(conf, c.cpuCount)
	threads := c.threadCount
	c.Unlock()

	changed := c.calendar.Refresh(conf.Calendar)
	c.log.Infof("configuration: thread count: %d  calendar changed: %t", threads, changed)
}

// Run - background process applying file change events
func (c *configReader) Run(args interface{}, shutdown <-chan struct{}) {
	c.log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case <-c.channels.change:
			c.log.Debugf("file change event, wait %s to settle", c.refreshDelay)
			select {
			case <-shutdown:
				break loop
			case <-time.After(c.refreshDelay):
			}
			// drop events raised while waiting
			select {
			case <-c.channels.change:
			default:
			}
			if err := c.Refresh(); nil != err {
				c.log.Errorf("failed to read configuration from: %q  error: %s", c.fileName, err)
			}

		case <-c.channels.remove:
			c.log.Warnf("configuration file: %q removed, keeping current settings", c.fileName)
		}
	}

	c.log.Info("stopped")
}

// optimalThreadCount - explicit threads, otherwise max_cpu_usage
// percent of the processors, never less than one
func optimalThreadCount(conf *configuration.Configuration, cpuCount uint32) uint32 {
	if conf.Threads > 0 {
		return uint32(conf.Threads)
	}

	percentage := float32(conf.MaxCPUUsage) / 100
	threadCount := uint32(float32(cpuCount) * percentage)

	if threadCount <= minThreadCount {
		return minThreadCount
	}
	if threadCount > cpuCount {
		return cpuCount
	}
	return threadCount
}
