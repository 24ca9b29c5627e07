// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/urfave/cli"

	"github.com/mahdiyari/hive-tx-go/background"
)

func runCall(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	method := c.String("method")
	if "" == method {
		return ErrRequiredMethod
	}

	var params interface{}
	err := json.Unmarshal([]byte(c.String("arguments")), &params)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "node: %s\n", client.Current())
		fmt.Fprintf(m.e, "method: %s\n", method)
	}

	var result json.RawMessage
	err = client.Call(context.Background(), method, params, &result)
	if nil != err {
		return err
	}
	return printJson(m.w, result)
}

func runNodes(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := newClient(m)
	if nil != err {
		return err
	}

	client.CheckNodes(context.Background())

	// optionally continue probing until the duration expires
	if watch := c.Duration("watch"); watch > 0 {
		processes := background.Processes{
			client.Healthcheck(),
		}
		handle := background.Start(processes, nil)
		time.Sleep(watch)
		handle.Stop()
	}

	type status struct {
		Node    string `json:"node"`
		Healthy bool   `json:"healthy"`
	}
	nodes := client.Nodes()
	out := make([]status, 0, len(nodes))
	for _, node := range nodes {
		out = append(out, status{
			Node:    node,
			Healthy: !client.IsBad(node),
		})
	}
	return printJson(m.w, out)
}
