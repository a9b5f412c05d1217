// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerminer/fault"
	"github.com/bitmark-inc/ledgerminer/ledger"
	"github.com/bitmark-inc/ledgerminer/program"
	"github.com/bitmark-inc/ledgerminer/rpcclient"
	"github.com/bitmark-inc/ledgerminer/schedule"
	"github.com/bitmark-inc/ledgerminer/submit"
	"github.com/bitmark-inc/ledgerminer/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file
	defaultIdentityFile  = "id.json"
	defaultHistoryFile   = "history.leveldb"
	defaultMaxCPUUsage   = 50

	defaultLogDirectory = "log"
	defaultLogFile      = "ledgerminer.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// RPCType - remote ledger endpoint
type RPCType struct {
	URL               string  `gluamapper:"url" json:"url"`
	Timeout           int     `gluamapper:"timeout" json:"timeout"` // seconds
	RequestsPerSecond float64 `gluamapper:"requests_per_second" json:"requests_per_second"`
	Burst             int     `gluamapper:"burst" json:"burst"`
	Commitment        string  `gluamapper:"commitment" json:"commitment"`
}

// ProgramType - base58 addresses of the mining program and its accounts
type ProgramType struct {
	ProgramID    string   `gluamapper:"program_id" json:"program_id"`
	Proof        string   `gluamapper:"proof" json:"proof"`
	Treasury     string   `gluamapper:"treasury" json:"treasury"`
	Buses        []string `gluamapper:"buses" json:"buses"`
	TokenAccount string   `gluamapper:"token_account" json:"token_account"`
	Decimals     int      `gluamapper:"decimals" json:"decimals"`
}

// TipType - optional transfer added to every mine transaction
type TipType struct {
	Lamports uint64   `gluamapper:"lamports" json:"lamports"`
	Accounts []string `gluamapper:"accounts" json:"accounts"`
}

// SubmitType - submission pipeline switches
type SubmitType struct {
	Simulate      bool   `gluamapper:"simulate" json:"simulate"`
	SkipConfirm   bool   `gluamapper:"skip_confirm" json:"skip_confirm"`
	ComputeMargin uint32 `gluamapper:"compute_margin" json:"compute_margin"`
}

// Configuration - everything read from the configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string               `gluamapper:"pidfile" json:"pidfile"`
	Identity      string               `gluamapper:"identity" json:"identity"`
	MaxCPUUsage   int                  `gluamapper:"max_cpu_usage" json:"max_cpu_usage"`
	Threads       int                  `gluamapper:"threads" json:"threads"`
	RPC           RPCType              `gluamapper:"rpc" json:"rpc"`
	Program       ProgramType          `gluamapper:"program" json:"program"`
	Tip           TipType              `gluamapper:"tip" json:"tip"`
	Submit        SubmitType           `gluamapper:"submit" json:"submit"`
	Calendar      schedule.Week        `gluamapper:"calendar" json:"calendar"`
	Publish       []string             `gluamapper:"publish" json:"publish"`
	History       bool                 `gluamapper:"history" json:"history"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

func defaults() *Configuration {
	return &Configuration{
		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Identity:      defaultIdentityFile,
		MaxCPUUsage:   defaultMaxCPUUsage,
		RPC: RPCType{
			Timeout:           int(rpcclient.DefaultTimeout / time.Second),
			RequestsPerSecond: rpcclient.DefaultRequestsPerSecond,
			Burst:             rpcclient.DefaultBurst,
			Commitment:        rpcclient.DefaultCommitment,
		},
		Program: ProgramType{
			Decimals: program.DefaultDecimals,
		},
		Submit: SubmitType{
			Simulate:      true,
			ComputeMargin: submit.DefaultComputeMargin,
		},
		History: true,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: LoglevelMap{
				logger.DefaultTag: "info",
			},
		},
	}
}

// Load - read, decode and verify the configuration
func Load(configurationFileName string) (*Configuration, error) {
	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := defaults()
	if err := ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	if err := options.verify(dataDirectory); nil != err {
		return nil, err
	}
	return options, nil
}

func (options *Configuration) verify(configurationDirectory string) error {
	if options.MaxCPUUsage <= 0 || options.MaxCPUUsage > 100 {
		options.MaxCPUUsage = defaultMaxCPUUsage
	}
	if options.Threads < 0 {
		options.Threads = 0
	}

	if "" == options.RPC.URL {
		return fmt.Errorf("rpc.url: %w", fault.ErrConfigurationEmpty)
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return fmt.Errorf("path: %q: %w", options.DataDirectory, fault.ErrDataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = configurationDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return err
	} else if !fileInfo.IsDir() {
		return fmt.Errorf("path: %q: %w", options.DataDirectory, fault.ErrDataDirectory)
	}

	if !util.IsPlainFileName(options.Logging.File) {
		return fmt.Errorf("logging.file: %q: %w", options.Logging.File, fault.ErrNotAPlainFileName)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	for _, f := range []*string{
		&options.Identity,
		&options.Logging.Directory,
	} {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	if "" != options.PidFile {
		options.PidFile = util.EnsureAbsolute(options.DataDirectory, options.PidFile)
	}

	// create log directory if it does not already exist
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return err
	}

	// catch key errors before mining starts
	if _, _, _, err := options.ProgramSettings(); nil != err {
		return err
	}
	return nil
}

// HistoryFile - absolute path of the round history database
func (options *Configuration) HistoryFile() string {
	return util.EnsureAbsolute(options.DataDirectory, defaultHistoryFile)
}

// RPCConfig - settings for the ledger client
func (options *Configuration) RPCConfig() rpcclient.Config {
	return rpcclient.Config{
		URL:               options.RPC.URL,
		Timeout:           time.Duration(options.RPC.Timeout) * time.Second,
		RequestsPerSecond: options.RPC.RequestsPerSecond,
		Burst:             options.RPC.Burst,
		Commitment:        options.RPC.Commitment,
	}
}

// SubmitConfig - pipeline settings on top of the default retry limits
func (options *Configuration) SubmitConfig() submit.Config {
	config := submit.DefaultConfig()
	config.Simulate = options.Submit.Simulate
	config.SkipConfirm = options.Submit.SkipConfirm
	config.ComputeMargin = options.Submit.ComputeMargin
	return config
}

// ProgramSettings - decoded program addresses, state accounts and tip
func (options *Configuration) ProgramSettings() (program.Addresses, program.Accounts, program.Tip, error) {
	p := options.Program

	if p.Decimals < 0 || p.Decimals > 19 {
		return program.Addresses{}, program.Accounts{}, program.Tip{}, fmt.Errorf("program.decimals: %d: %w", p.Decimals, fault.ErrInvalidCount)
	}

	addresses := program.Addresses{}
	accounts := program.Accounts{
		Decimals: uint8(p.Decimals),
	}
	tip := program.Tip{
		Lamports: options.Tip.Lamports,
	}

	required := []struct {
		name  string
		value string
		key   *ledger.PublicKey
	}{
		{"program.program_id", p.ProgramID, &addresses.Program},
		{"program.proof", p.Proof, &addresses.Proof},
		{"program.treasury", p.Treasury, &addresses.Treasury},
	}
	for _, r := range required {
		key, err := ledger.ParsePublicKey(r.value)
		if nil != err {
			return program.Addresses{}, program.Accounts{}, program.Tip{}, fmt.Errorf("%s: %q: %w", r.name, r.value, err)
		}
		*r.key = key
	}
	accounts.Proof = addresses.Proof
	accounts.Treasury = addresses.Treasury

	if "" != p.TokenAccount {
		key, err := ledger.ParsePublicKey(p.TokenAccount)
		if nil != err {
			return program.Addresses{}, program.Accounts{}, program.Tip{}, fmt.Errorf("program.token_account: %q: %w", p.TokenAccount, err)
		}
		accounts.TokenAccount = key
	}

	buses, err := parseKeys("program.buses", p.Buses)
	if nil != err {
		return program.Addresses{}, program.Accounts{}, program.Tip{}, err
	}
	if 0 == len(buses) {
		return program.Addresses{}, program.Accounts{}, program.Tip{}, fmt.Errorf("program.buses: %w", fault.ErrEmptyBusList)
	}
	addresses.Buses = buses

	tip.Accounts, err = parseKeys("tip.accounts", options.Tip.Accounts)
	if nil != err {
		return program.Addresses{}, program.Accounts{}, program.Tip{}, err
	}

	return addresses, accounts, tip, nil
}

func parseKeys(name string, values []string) ([]ledger.PublicKey, error) {
	keys := make([]ledger.PublicKey, 0, len(values))
	for i, s := range values {
		key, err := ledger.ParsePublicKey(s)
		if nil != err {
			return nil, fmt.Errorf("%s[%d]: %q: %w", name, i, s, err)
		}
		keys = append(keys, key)
	}
	return keys, nil
}
