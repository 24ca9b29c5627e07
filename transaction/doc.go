// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transaction - life cycle of a transaction
//
// a transaction is created against the current head block of a node,
// signed over sha256(chain id ‖ packed bytes) by one or more keys
// and finally broadcast back through a node
//
//	tx, err := transaction.Create(ctx, client, ops, 0)
//	err = transaction.Sign(tx, key)
//	err = transaction.Broadcast(ctx, client, tx)
//
// the transaction id is the first twenty bytes of sha256 over the
// packed bytes, without the chain id
package transaction
