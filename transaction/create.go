// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/pkg/errors"

	"github.com/mahdiyari/hive-tx-go/account"
	"github.com/mahdiyari/hive-tx-go/fault"
	"github.com/mahdiyari/hive-tx-go/rpc"
	"github.com/mahdiyari/hive-tx-go/transactionrecord"
)

// DefaultExpiration - lifetime of a created transaction when none is given
const DefaultExpiration = 60 * time.Second

const (
	propertiesMethod = "condenser_api.get_dynamic_global_properties"
	broadcastMethod  = "condenser_api.broadcast_transaction"
)

// the reference block prefix is read from these bytes of the head block id
const (
	prefixStart = 4
	prefixEnd   = 8
)

// the part of the dynamic global properties needed to reference a block
type properties struct {
	HeadBlockNumber uint32 `json:"head_block_number"`
	HeadBlockID     string `json:"head_block_id"`
}

var globalData struct {
	once sync.Once
	log  *logger.L
}

func log() *logger.L {
	globalData.once.Do(func() {
		globalData.log = logger.New("transaction")
	})
	return globalData.log
}

// Create - a transaction referencing the current head block
//
// a zero expiration gives DefaultExpiration
func Create(ctx context.Context, caller rpc.Caller, operations []transactionrecord.Operation, expiration time.Duration) (*transactionrecord.Transaction, error) {
	if 0 == len(operations) {
		return nil, fault.ErrMissingOperation
	}
	for _, op := range operations {
		if nil == op {
			return nil, fault.ErrMissingOperation
		}
	}
	if expiration <= 0 {
		expiration = DefaultExpiration
	}

	var props properties
	err := caller.Call(ctx, propertiesMethod, []interface{}{}, &props)
	if nil != err {
		return nil, err
	}

	id, err := hex.DecodeString(props.HeadBlockID)
	if nil != err || len(id) < prefixEnd {
		return nil, errors.Wrap(fault.ErrInvalidHeadBlockID, props.HeadBlockID)
	}

	tx := &transactionrecord.Transaction{
		RefBlockNum:    uint16(props.HeadBlockNumber & 0xffff),
		RefBlockPrefix: binary.LittleEndian.Uint32(id[prefixStart:prefixEnd]),
		Expiration:     transactionrecord.NewDate(time.Now().Add(expiration)),
		Operations:     append(transactionrecord.Operations{}, operations...),
		Extensions:     []string{},
		Signatures:     []account.Signature{},
	}
	return tx, nil
}

// Broadcast - submit a signed transaction and return its id
func Broadcast(ctx context.Context, caller rpc.Caller, tx *transactionrecord.Transaction) (string, error) {
	if nil == tx {
		return "", fault.ErrTransactionNotCreated
	}
	if 0 == len(tx.Signatures) {
		return "", fault.ErrTransactionNotSigned
	}

	// the chain id does not affect the id
	_, txID, err := Digest(tx, nil)
	if nil != err {
		return "", err
	}

	err = caller.Call(ctx, broadcastMethod, []interface{}{tx}, nil)
	if nil != err {
		log().Errorf("broadcast: %s  error: %s", txID, err)
		return "", err
	}
	log().Infof("broadcast: %s  operations: %d  signatures: %d", txID, len(tx.Operations), len(tx.Signatures))
	return txID, nil
}
