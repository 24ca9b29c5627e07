// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"context"
	"time"

	"github.com/mahdiyari/hive-tx-go/background"
)

// method used to probe a node
const healthcheckMethod = "condenser_api.get_dynamic_global_properties"

type healthcheck struct {
	client *Client
}

// Healthcheck - background process that probes every node each
// healthcheck interval
func (c *Client) Healthcheck() background.Process {
	return &healthcheck{
		client: c,
	}
}

// Run - background processing interface
func (h *healthcheck) Run(_ interface{}, shutdown <-chan struct{}) {
	log := h.client.log
	log.Info("healthcheck starting…")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-shutdown
		cancel()
	}()

	timer := time.After(h.client.interval)
loop:
	for {
		select {
		case <-timer:
			timer = time.After(h.client.interval)
			h.client.CheckNodes(ctx)
		case <-shutdown:
			break loop
		}
	}
	log.Info("healthcheck stopped")
}

// CheckNodes - probe every node once, clearing or setting its bad flag
func (c *Client) CheckNodes(ctx context.Context) {
	for _, node := range c.nodes {
		var result map[string]interface{}
		err := c.post(ctx, node, healthcheckMethod, []interface{}{}, &result)
		if nil != ctx.Err() {
			return
		}
		if nil != err {
			c.log.Warnf("healthcheck: %s error: %s", node, err)
			c.bad.Set(node, true, c.interval)
			continue
		}
		if c.IsBad(node) {
			c.log.Infof("healthcheck: %s recovered", node)
		}
		c.markGood(node)
	}
}
