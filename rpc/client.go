// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	"github.com/mahdiyari/hive-tx-go/counter"
	"github.com/mahdiyari/hive-tx-go/fault"
)

// defaults for zero configuration values
const (
	DefaultTimeout             = 10 * time.Second
	DefaultRetry               = 5
	DefaultHealthcheckInterval = 30 * time.Second

	// limit on the size of a single response
	maximumResponseBytes = 16 * 1024 * 1024
)

// DefaultNodes - public API nodes used when none are configured
var DefaultNodes = []string{
	"https://api.hive.blog",
	"https://api.deathwing.me",
	"https://api.openhive.network",
}

//go:generate mockgen -source=client.go -destination=../mocks/caller.go -package=mocks

// Caller - anything able to make a JSON-RPC call
type Caller interface {
	Call(ctx context.Context, method string, params interface{}, result interface{}) error
}

// Configuration - node list and call policy
type Configuration struct {
	Nodes               []string
	Timeout             time.Duration
	Retry               int
	HealthcheckInterval time.Duration

	// zero means unlimited
	RequestsPerSecond float64
}

// Client - JSON-RPC client that fails over between nodes
type Client struct {
	sync.RWMutex

	log        *logger.L
	nodes      []string
	current    int
	bad        *cache.Cache
	httpClient *http.Client
	limiter    *rate.Limiter
	timeout    time.Duration
	retry      int
	interval   time.Duration
	id         counter.Counter
}

// the request envelope
type request struct {
	JSONRPC string      `json:"jsonrpc"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
	ID      uint64      `json:"id"`
}

// the reply envelope
type response struct {
	ID     uint64          `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *Error          `json:"error"`
}

// New - create a client, zero values are replaced by defaults
func New(configuration Configuration) (*Client, error) {
	nodes := configuration.Nodes
	if 0 == len(nodes) {
		nodes = DefaultNodes
	}
	for _, node := range nodes {
		u, err := url.Parse(node)
		if nil != err || ("http" != u.Scheme && "https" != u.Scheme) || "" == u.Host {
			return nil, errors.Wrap(fault.ErrInvalidNodeURL, node)
		}
	}

	timeout := configuration.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	retry := configuration.Retry
	if retry < 0 {
		retry = 0
	} else if 0 == retry {
		retry = DefaultRetry
	}
	interval := configuration.HealthcheckInterval
	if interval <= 0 {
		interval = DefaultHealthcheckInterval
	}

	limit := rate.Inf
	burst := 1
	if configuration.RequestsPerSecond > 0 {
		limit = rate.Limit(configuration.RequestsPerSecond)
		burst = int(configuration.RequestsPerSecond) + 1
	}

	c := &Client{
		log:        logger.New("rpc"),
		nodes:      append([]string{}, nodes...),
		bad:        cache.New(interval, 2*interval),
		httpClient: &http.Client{},
		limiter:    rate.NewLimiter(limit, burst),
		timeout:    timeout,
		retry:      retry,
		interval:   interval,
	}
	c.log.Infof("nodes: %v  timeout: %s  retry: %d", c.nodes, timeout, retry)
	return c, nil
}

// Nodes - the configured node list
func (c *Client) Nodes() []string {
	return append([]string{}, c.nodes...)
}

// Current - the node the next call starts with
func (c *Client) Current() string {
	c.RLock()
	defer c.RUnlock()
	return c.nodes[c.current]
}

// IsBad - true while a node is in its failure cool-down
func (c *Client) IsBad(node string) bool {
	_, found := c.bad.Get(node)
	return found
}

// Call - make a JSON-RPC call, retrying on the next node after a
// transport failure
//
// errors reported by a node in the JSON-RPC error member are returned
// immediately as *Error
func (c *Client) Call(ctx context.Context, method string, params interface{}, result interface{}) error {
	if nil == params {
		params = []interface{}{}
	}

	var lastErr error
	for attempt := 0; attempt <= c.retry; attempt += 1 {
		if err := c.wait(ctx); nil != err {
			return err
		}

		node := c.selectNode()
		err := c.post(ctx, node, method, params, result)
		if nil == err {
			return nil
		}
		if _, ok := err.(*Error); ok {
			return err
		}
		if nil != ctx.Err() {
			return ctx.Err()
		}

		c.log.Warnf("%s on: %s attempt: %d error: %s", method, node, attempt, err)
		c.markBad(node)
		lastErr = err
	}
	return errors.Wrap(fault.ErrRPCAllNodesFailed, lastErr.Error())
}

// first node, starting at the current one, that is not cooling down
//
// when every node is bad the current one is used anyway
func (c *Client) selectNode() string {
	c.Lock()
	defer c.Unlock()
	n := len(c.nodes)
	for i := 0; i < n; i += 1 {
		j := (c.current + i) % n
		if _, found := c.bad.Get(c.nodes[j]); !found {
			c.current = j
			return c.nodes[j]
		}
	}
	return c.nodes[c.current]
}

// put a node into cool-down and move on to the next
func (c *Client) markBad(node string) {
	c.bad.Set(node, true, c.interval)

	c.Lock()
	defer c.Unlock()
	if c.nodes[c.current] == node {
		c.current = (c.current + 1) % len(c.nodes)
	}
}

func (c *Client) markGood(node string) {
	c.bad.Delete(node)
}

func (c *Client) post(ctx context.Context, node string, method string, params interface{}, result interface{}) error {
	body, err := json.Marshal(request{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      c.id.Increment(),
	})
	if nil != err {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, node, bytes.NewReader(body))
	if nil != err {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if nil != err {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maximumResponseBytes))
	if nil != err {
		return err
	}
	if http.StatusOK != resp.StatusCode {
		return errors.Wrapf(fault.ErrRPCBadStatus, "status: %d", resp.StatusCode)
	}

	var reply response
	if err := json.Unmarshal(data, &reply); nil != err {
		return err
	}
	if nil != reply.Error {
		return reply.Error
	}
	if 0 == len(reply.Result) {
		return fault.ErrRPCEmptyResponse
	}
	if nil == result {
		return nil
	}
	return json.Unmarshal(reply.Result, result)
}
