// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package history - persistent record of mining rounds
//
// records are JSON values keyed by a one byte prefix followed by the
// big endian round time in nanoseconds, so a reverse scan yields the
// most recent rounds first
package history

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerminer/fault"
)

const (
	currentVersion = 1
	recordPrefix   = 'R'
	keySize        = 1 + 8
)

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

// Record - one mining round as stored
type Record struct {
	Round        uint64    `json:"round"`
	Timestamp    time.Time `json:"timestamp"`
	Challenge    string    `json:"challenge"`
	Difficulty   string    `json:"difficulty"`
	Nonce        uint64    `json:"nonce"`
	Digest       string    `json:"digest"`
	Workers      int       `json:"workers"`
	Hashes       uint64    `json:"hashes"`
	Elapsed      string    `json:"elapsed"`
	Status       string    `json:"status"`
	Signature    string    `json:"signature,omitempty"`
	ComputeLimit uint32    `json:"computeLimit,omitempty"`
	Balance      string    `json:"balance"`
	Claimable    string    `json:"claimable"`
	Error        string    `json:"error,omitempty"`
}

// Store - round history database
type Store struct {
	sync.Mutex
	log *logger.L
	db  *leveldb.DB
}

// Open - open or create the history database file
func Open(log *logger.L, name string, readOnly bool) (*Store, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, err
	}
	return setup(log, db, readOnly)
}

// New - history on an arbitrary goleveldb storage
func New(log *logger.L, stor storage.Storage) (*Store, error) {
	db, err := leveldb.Open(stor, nil)
	if nil != err {
		return nil, err
	}
	return setup(log, db, false)
}

func setup(log *logger.L, db *leveldb.DB, readOnly bool) (*Store, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		if !readOnly {
			err = putVersion(db, currentVersion)
		} else {
			err = nil
		}
	} else if nil == err {
		if 4 != len(versionValue) {
			err = fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
		} else if version := int(binary.BigEndian.Uint32(versionValue)); version > currentVersion {
			err = fmt.Errorf("history database version: %d > current version: %d", version, currentVersion)
		}
	}
	if nil != err {
		db.Close()
		return nil, err
	}

	return &Store{
		log: log,
		db:  db,
	}, nil
}

func putVersion(db *leveldb.DB, version int) error {
	value := make([]byte, 4)
	binary.BigEndian.PutUint32(value, uint32(version))
	return db.Put(versionKey, value, nil)
}

func recordKey(t time.Time) []byte {
	key := make([]byte, keySize)
	key[0] = recordPrefix
	binary.BigEndian.PutUint64(key[1:], uint64(t.UnixNano()))
	return key
}

// Put - store a round record under its timestamp
func (s *Store) Put(record *Record) error {
	data, err := json.Marshal(record)
	if nil != err {
		return err
	}

	s.Lock()
	defer s.Unlock()

	if nil == s.db {
		return fault.ErrNotInitialised
	}
	err = s.db.Put(recordKey(record.Timestamp), data, nil)
	if nil != err {
		s.log.Errorf("put round: %d  error: %s", record.Round, err)
		return err
	}
	s.log.Debugf("stored round: %d  status: %s", record.Round, record.Status)
	return nil
}

// Recent - up to count records, newest first
func (s *Store) Recent(count int) ([]Record, error) {
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	s.Lock()
	defer s.Unlock()

	if nil == s.db {
		return nil, fault.ErrNotInitialised
	}

	iter := s.db.NewIterator(ldb_util.BytesPrefix([]byte{recordPrefix}), nil)
	defer iter.Release()

	records := make([]Record, 0, count)
	for ok := iter.Last(); ok && len(records) < count; ok = iter.Prev() {
		var r Record
		err := json.Unmarshal(iter.Value(), &r)
		if nil != err {
			s.log.Warnf("skip corrupt record key: %x  error: %s", iter.Key(), err)
			continue
		}
		records = append(records, r)
	}
	return records, iter.Error()
}

// Close - close the database
func (s *Store) Close() {
	s.Lock()
	defer s.Unlock()

	if nil != s.db {
		s.db.Close()
		s.db = nil
	}
}
