// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON-RPC client for the chain's API nodes
//
// Calls are made to the current node.  A transport failure puts that
// node into a cool-down for one healthcheck interval and the call is
// retried on the next node.  The healthcheck background process probes
// all nodes and clears the cool-down of those that answer.
package rpc
