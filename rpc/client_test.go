// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/mahdiyari/hive-tx-go/background"
	"github.com/mahdiyari/hive-tx-go/fault"
	"github.com/mahdiyari/hive-tx-go/rpc"
)

const testingDirName = "testing"

func TestMain(m *testing.M) {
	_ = os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0o700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	result := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(testingDirName)
	os.Exit(result)
}

// a node that answers every call with a fixed body and status
type node struct {
	server *httptest.Server
	hits   int64
	method atomic.Value
}

func newNode(t *testing.T, status int, body string) *node {
	n := &node{}
	n.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&n.hits, 1)

		data, _ := io.ReadAll(r.Body)
		var req struct {
			JSONRPC string          `json:"jsonrpc"`
			Method  string          `json:"method"`
			Params  json.RawMessage `json:"params"`
		}
		if err := json.Unmarshal(data, &req); nil != err {
			t.Errorf("request is not JSON: %q", data)
		}
		if "2.0" != req.JSONRPC {
			t.Errorf("jsonrpc: %q", req.JSONRPC)
		}
		n.method.Store(req.Method)

		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(n.server.Close)
	return n
}

func (n *node) count() int64 {
	return atomic.LoadInt64(&n.hits)
}

const goodReply = `{"jsonrpc":"2.0","id":1,"result":{"head_block_number":1234}}`

type properties struct {
	HeadBlockNumber uint32 `json:"head_block_number"`
}

func TestCall(t *testing.T) {
	good := newNode(t, http.StatusOK, goodReply)

	client, err := rpc.New(rpc.Configuration{Nodes: []string{good.server.URL}})
	if nil != err {
		t.Fatalf("new error: %s", err)
	}

	var result properties
	err = client.Call(context.Background(), "condenser_api.get_dynamic_global_properties", nil, &result)
	assert.Nil(t, err)
	assert.Equal(t, uint32(1234), result.HeadBlockNumber)
	assert.Equal(t, "condenser_api.get_dynamic_global_properties", good.method.Load())
}

func TestCallFailover(t *testing.T) {
	broken := newNode(t, http.StatusBadGateway, "bad gateway")
	good := newNode(t, http.StatusOK, goodReply)

	client, err := rpc.New(rpc.Configuration{
		Nodes: []string{broken.server.URL, good.server.URL},
		Retry: 3,
	})
	if nil != err {
		t.Fatalf("new error: %s", err)
	}

	var result properties
	err = client.Call(context.Background(), "m", []interface{}{}, &result)
	assert.Nil(t, err)
	assert.Equal(t, uint32(1234), result.HeadBlockNumber)
	assert.Equal(t, int64(1), broken.count())
	assert.Equal(t, int64(1), good.count())
	assert.True(t, client.IsBad(broken.server.URL))
	assert.Equal(t, good.server.URL, client.Current())

	// broken node is skipped while cooling down
	err = client.Call(context.Background(), "m", nil, nil)
	assert.Nil(t, err)
	assert.Equal(t, int64(1), broken.count())
	assert.Equal(t, int64(2), good.count())
}

func TestCallAllNodesFail(t *testing.T) {
	a := newNode(t, http.StatusInternalServerError, "")
	b := newNode(t, http.StatusOK, "not json")

	client, err := rpc.New(rpc.Configuration{
		Nodes: []string{a.server.URL, b.server.URL},
		Retry: 3,
	})
	if nil != err {
		t.Fatalf("new error: %s", err)
	}

	err = client.Call(context.Background(), "m", nil, nil)
	assert.Equal(t, fault.ErrRPCAllNodesFailed, errors.Cause(err))
	assert.Equal(t, int64(4), a.count()+b.count(), "one call and three retries")
}

func TestCallRPCError(t *testing.T) {
	failing := newNode(t, http.StatusOK, `{"jsonrpc":"2.0","id":1,"error":{"code":-32000,"message":"missing required active authority"}}`)
	good := newNode(t, http.StatusOK, goodReply)

	client, err := rpc.New(rpc.Configuration{Nodes: []string{failing.server.URL, good.server.URL}})
	if nil != err {
		t.Fatalf("new error: %s", err)
	}

	err = client.Call(context.Background(), "condenser_api.broadcast_transaction", []interface{}{}, nil)
	rpcErr, ok := err.(*rpc.Error)
	if !ok {
		t.Fatalf("error: %v is not an rpc error", err)
	}
	assert.Equal(t, -32000, rpcErr.Code)
	assert.Equal(t, "rpc error -32000: missing required active authority", rpcErr.Error())
	assert.Equal(t, int64(0), good.count(), "node errors are not retried")
	assert.False(t, client.IsBad(failing.server.URL))
}

func TestCallEmptyResult(t *testing.T) {
	empty := newNode(t, http.StatusOK, `{"jsonrpc":"2.0","id":1}`)

	client, err := rpc.New(rpc.Configuration{Nodes: []string{empty.server.URL}, Retry: -1})
	if nil != err {
		t.Fatalf("new error: %s", err)
	}
	err = client.Call(context.Background(), "m", nil, nil)
	assert.Equal(t, "empty rpc response: all rpc nodes failed", err.Error())
	assert.Equal(t, int64(1), empty.count(), "negative retry means a single attempt")
}

func TestCallCancelled(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer slow.Close()

	client, err := rpc.New(rpc.Configuration{Nodes: []string{slow.URL}})
	if nil != err {
		t.Fatalf("new error: %s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err = client.Call(ctx, "m", nil, nil)
	assert.Equal(t, context.DeadlineExceeded, err)
	assert.False(t, client.IsBad(slow.URL), "caller cancellation is not a node failure")
}

func TestCallTimeout(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer slow.Close()
	good := newNode(t, http.StatusOK, goodReply)

	client, err := rpc.New(rpc.Configuration{
		Nodes:   []string{slow.URL, good.server.URL},
		Timeout: 50 * time.Millisecond,
	})
	if nil != err {
		t.Fatalf("new error: %s", err)
	}

	err = client.Call(context.Background(), "m", nil, nil)
	assert.Nil(t, err)
	assert.True(t, client.IsBad(slow.URL))
}

func TestNewDefaults(t *testing.T) {
	client, err := rpc.New(rpc.Configuration{})
	assert.Nil(t, err)
	assert.Equal(t, rpc.DefaultNodes, client.Nodes())
	assert.Equal(t, rpc.DefaultNodes[0], client.Current())

	items := []string{
		"api.hive.blog",
		"ftp://api.hive.blog",
		"https://",
		"://",
	}
	for i, u := range items {
		_, err := rpc.New(rpc.Configuration{Nodes: []string{u}})
		if fault.ErrInvalidNodeURL != errors.Cause(err) {
			t.Errorf("%d: %q error: %v", i, u, err)
		}
	}
}

func TestRateLimit(t *testing.T) {
	good := newNode(t, http.StatusOK, goodReply)

	client, err := rpc.New(rpc.Configuration{
		Nodes:             []string{good.server.URL},
		RequestsPerSecond: 1,
	})
	if nil != err {
		t.Fatalf("new error: %s", err)
	}

	// burst of two, the third call must wait
	assert.Nil(t, client.Call(context.Background(), "m", nil, nil))
	assert.Nil(t, client.Call(context.Background(), "m", nil, nil))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err = client.Call(ctx, "m", nil, nil)
	assert.Equal(t, context.DeadlineExceeded, err)
	assert.Equal(t, int64(2), good.count())
}

func TestCheckNodes(t *testing.T) {
	broken := newNode(t, http.StatusServiceUnavailable, "")
	good := newNode(t, http.StatusOK, goodReply)

	client, err := rpc.New(rpc.Configuration{
		Nodes: []string{broken.server.URL, good.server.URL},
	})
	if nil != err {
		t.Fatalf("new error: %s", err)
	}

	client.CheckNodes(context.Background())
	assert.True(t, client.IsBad(broken.server.URL))
	assert.False(t, client.IsBad(good.server.URL))
	assert.Equal(t, "condenser_api.get_dynamic_global_properties", good.method.Load())
	assert.Equal(t, int64(1), good.count())
}

func TestHealthcheckProcess(t *testing.T) {
	good := newNode(t, http.StatusOK, goodReply)

	client, err := rpc.New(rpc.Configuration{
		Nodes:               []string{good.server.URL},
		HealthcheckInterval: 10 * time.Millisecond,
	})
	if nil != err {
		t.Fatalf("new error: %s", err)
	}

	handle := background.Start(background.Processes{client.Healthcheck()}, nil)
	deadline := time.Now().Add(2 * time.Second)
	for good.count() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	handle.Stop()
	assert.True(t, good.count() >= 2, "healthcheck did not run")
}
