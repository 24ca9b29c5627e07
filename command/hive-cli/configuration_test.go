// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/mahdiyari/hive-tx-go/fault"
	"github.com/mahdiyari/hive-tx-go/rpc"
)

func writeConfiguration(t *testing.T, text string) string {
	fileName := filepath.Join(t.TempDir(), "hive-cli.conf")
	if err := os.WriteFile(fileName, []byte(text), 0o600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName
}

func TestDefaultConfiguration(t *testing.T) {
	c, err := getConfiguration("", "")
	if nil != err {
		t.Fatalf("configuration error: %s", err)
	}
	assert.Equal(t, "hive", c.Chain)
	assert.Equal(t, rpc.DefaultNodes, c.Nodes)
	assert.Equal(t, filepath.Join(os.TempDir(), "hive-cli", "log"), c.Logging.Directory)

	r := c.rpcConfiguration()
	assert.Equal(t, 10*time.Second, r.Timeout)
	assert.Equal(t, 5, r.Retry)
	assert.Equal(t, 30*time.Second, r.HealthcheckInterval)

	c, err = getConfiguration("", "TESTNET")
	assert.Nil(t, err)
	assert.Equal(t, "testnet", c.Chain)
}

func TestConfigurationFile(t *testing.T) {
	fileName := writeConfiguration(t, `
local M = {}
M.chain = network ~= "" and network or "testnet"
M.nodes = { "https://testnet.example.com" }
M.timeout = 3
M.retry = 2
M.healthcheck_interval = 60
M.requests_per_second = 4
M.address_prefix = "TST"
M.logging = {
    file = "test.log",
    levels = {
        rpc = "info",
    },
}
return M
`)

	c, err := getConfiguration(fileName, "")
	if nil != err {
		t.Fatalf("configuration error: %s", err)
	}
	assert.Equal(t, "testnet", c.Chain)
	assert.Equal(t, []string{"https://testnet.example.com"}, c.Nodes)
	assert.Equal(t, "TST", c.AddressPrefix)
	assert.Equal(t, "test.log", c.Logging.File)
	assert.Equal(t, filepath.Join(filepath.Dir(fileName), "log"), c.Logging.Directory)
	assert.Equal(t, "info", c.Logging.Levels["rpc"])

	r := c.rpcConfiguration()
	assert.Equal(t, 3*time.Second, r.Timeout)
	assert.Equal(t, 2, r.Retry)
	assert.Equal(t, time.Minute, r.HealthcheckInterval)
	assert.Equal(t, 4.0, r.RequestsPerSecond)

	// the network variable is visible to the file
	c, err = getConfiguration(fileName, "hive")
	assert.Nil(t, err)
	assert.Equal(t, "hive", c.Chain)
}

func TestConfigurationErrors(t *testing.T) {
	_, err := getConfiguration("", "bitcoin")
	assert.Equal(t, fault.ErrInvalidChain, errors.Cause(err))

	_, err = getConfiguration(writeConfiguration(t, `return { chain = "mainnet" }`), "")
	assert.Equal(t, fault.ErrInvalidChain, errors.Cause(err))

	_, err = getConfiguration(writeConfiguration(t, `chain = "hive"`), "")
	assert.Equal(t, fault.ErrInvalidConfiguration, err)
}
