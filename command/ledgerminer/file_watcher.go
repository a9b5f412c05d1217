// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/ledgerminer/fault"
)

const (
	fileWatcherLoggerPrefix = "file-watcher"
)

// watcherChannel - events for the configuration reader
// both channels hold at most one pending event
type watcherChannel struct {
	change chan struct{}
	remove chan struct{}
}

func newWatcherChannel() watcherChannel {
	return watcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
}

// fileWatcher - reports writes to and removal of one file
//
// the containing directory is watched so that editors which replace
// the file on save are still seen
type fileWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	channels watcherChannel
}

func newFileWatcher(log *logger.L, targetFile string, channels watcherChannel) (*fileWatcher, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(filePath); nil != err {
		if os.IsNotExist(err) {
			return nil, fault.ErrFileNotFound
		}
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}

	return &fileWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		channels: channels,
	}, nil
}

// Start - begin delivering events
func (w *fileWatcher) Start() error {
	err := w.watcher.Add(filepath.Dir(w.filePath))
	if nil != err {
		w.log.Errorf("watcher add error: %s", err)
		return err
	}

	go w.loop()
	return nil
}

// Stop - release the watcher, the event loop ends when its channels close
func (w *fileWatcher) Stop() {
	err := w.watcher.Close()
	if nil != err {
		w.log.Warnf("watcher close error: %s", err)
	}
}

func (w *fileWatcher) loop() {
	base := filepath.Base(w.filePath)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			w.log.Debugf("file event: %v", event)

			if watcherEventFileRemove(event) {
				w.log.Warnf("file: %s removed", w.filePath)
				w.sendEvent(w.channels.remove, "remove")
			} else if watcherEventFileChange(event) {
				w.log.Info("sending configuration change event")
				w.sendEvent(w.channels.change, "change")
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
}

func isChannelFull(ch chan<- struct{}) bool {
	return len(ch) == cap(ch)
}

// a full channel already carries an undelivered event of the same kind
func (w *fileWatcher) sendEvent(ch chan<- struct{}, name string) {
	if isChannelFull(ch) {
		w.log.Debugf("event channel %s full, discard event", name)
		return
	}
	select {
	case ch <- struct{}{}:
	default:
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
