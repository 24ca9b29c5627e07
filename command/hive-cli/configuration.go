// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"

	"github.com/mahdiyari/hive-tx-go/chain"
	"github.com/mahdiyari/hive-tx-go/configuration"
	"github.com/mahdiyari/hive-tx-go/fault"
	"github.com/mahdiyari/hive-tx-go/rpc"
)

// basic defaults (the log directory is relative to the configuration file)
const (
	defaultTimeout             = 10 // seconds
	defaultRetry               = rpc.DefaultRetry
	defaultHealthcheckInterval = 30 // seconds

	defaultLogDirectory = "log"
	defaultLogFile      = "hive-cli.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// Configuration - everything read from the Lua file
//
// timeouts and intervals are whole seconds
type Configuration struct {
	Chain               string               `gluamapper:"chain" json:"chain"`
	Nodes               []string             `gluamapper:"nodes" json:"nodes"`
	Timeout             int                  `gluamapper:"timeout" json:"timeout"`
	Retry               int                  `gluamapper:"retry" json:"retry"`
	HealthcheckInterval int                  `gluamapper:"healthcheck_interval" json:"healthcheck_interval"`
	RequestsPerSecond   float64              `gluamapper:"requests_per_second" json:"requests_per_second"`
	AddressPrefix       string               `gluamapper:"address_prefix" json:"address_prefix"`
	ChainID             string               `gluamapper:"chain_id" json:"chain_id"`
	Logging             logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
//
// with no file name the defaults are used and logs go to the
// temporary directory
func getConfiguration(configurationFileName string, network string) (*Configuration, error) {

	options := &Configuration{
		Chain:               chain.Hive,
		Nodes:               append([]string{}, rpc.DefaultNodes...),
		Timeout:             defaultTimeout,
		Retry:               defaultRetry,
		HealthcheckInterval: defaultHealthcheckInterval,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	baseDirectory := filepath.Join(os.TempDir(), "hive-cli")

	if "" != configurationFileName {
		configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}

		// absolute path to the main directory
		baseDirectory, _ = filepath.Split(configurationFileName)

		variables := map[string]string{
			"network": network,
		}
		err = configuration.ParseConfigurationFile(configurationFileName, options, variables)
		if nil != err {
			return nil, err
		}
	}

	// command line overrides the file
	if "" != network {
		options.Chain = network
	}

	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return nil, errors.Wrap(fault.ErrInvalidChain, options.Chain)
	}

	if 0 == len(options.Nodes) {
		return nil, fault.ErrNoNodes
	}

	// force the log directory to be absolute and to exist
	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(baseDirectory, options.Logging.Directory)
	}
	err := os.MkdirAll(options.Logging.Directory, 0o700)
	if nil != err {
		return nil, err
	}

	return options, nil
}

// rpc client settings from the configuration
func (c *Configuration) rpcConfiguration() rpc.Configuration {
	return rpc.Configuration{
		Nodes:               c.Nodes,
		Timeout:             time.Duration(c.Timeout) * time.Second,
		Retry:               c.Retry,
		HealthcheckInterval: time.Duration(c.HealthcheckInterval) * time.Second,
		RequestsPerSecond:   c.RequestsPerSecond,
	}
}
