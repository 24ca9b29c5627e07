// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mahdiyari/hive-tx-go/configuration"
	"github.com/mahdiyari/hive-tx-go/fault"
)

type logging struct {
	Directory string            `gluamapper:"directory"`
	Count     int               `gluamapper:"count"`
	Levels    map[string]string `gluamapper:"levels"`
}

type options struct {
	Chain    string   `gluamapper:"chain"`
	Nodes    []string `gluamapper:"nodes"`
	Timeout  int      `gluamapper:"timeout"`
	Rate     float64  `gluamapper:"requests_per_second"`
	Variable string   `gluamapper:"variable"`
	Logging  logging  `gluamapper:"logging"`
}

func writeFile(t *testing.T, text string) string {
	fileName := filepath.Join(t.TempDir(), "hive-cli.conf")
	if err := os.WriteFile(fileName, []byte(text), 0o600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName
}

func TestParseConfigurationFile(t *testing.T) {
	fileName := writeFile(t, `
local M = {}
M.chain = "testnet"
M.nodes = {
    "https://one.example.com",
    "https://two.example.com",
}
M.timeout = 2 * 15
M.requests_per_second = 2.5
M.variable = network_name
M.logging = {
    directory = "log",
    levels = {
        rpc = "debug",
    },
}
return M
`)

	o := options{
		Chain:   "hive",
		Timeout: 10,
		Logging: logging{
			Count: 10,
		},
	}
	err := configuration.ParseConfigurationFile(fileName, &o, map[string]string{"network_name": "from variable"})
	if nil != err {
		t.Fatalf("parse error: %s", err)
	}

	assert.Equal(t, "testnet", o.Chain)
	assert.Equal(t, []string{"https://one.example.com", "https://two.example.com"}, o.Nodes)
	assert.Equal(t, 30, o.Timeout)
	assert.Equal(t, 2.5, o.Rate)
	assert.Equal(t, "from variable", o.Variable)
	assert.Equal(t, "log", o.Logging.Directory)
	assert.Equal(t, 10, o.Logging.Count, "default was overwritten")
	assert.Equal(t, map[string]string{"rpc": "debug"}, o.Logging.Levels)
}

func TestParseConfigurationFileErrors(t *testing.T) {
	var o options

	err := configuration.ParseConfigurationFile(writeFile(t, "return {}"), o, nil)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a pointer")

	s := "text"
	err = configuration.ParseConfigurationFile(writeFile(t, "return {}"), &s, nil)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a struct")

	err = configuration.ParseConfigurationFile(writeFile(t, "x = 1"), &o, nil)
	assert.Equal(t, fault.ErrInvalidConfiguration, err, "nothing returned")

	err = configuration.ParseConfigurationFile(writeFile(t, "return {"), &o, nil)
	assert.NotNil(t, err, "syntax error")

	err = configuration.ParseConfigurationFile(filepath.Join(t.TempDir(), "missing.conf"), &o, nil)
	assert.NotNil(t, err, "missing file")
}
