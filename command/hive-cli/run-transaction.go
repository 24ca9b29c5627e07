// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/mahdiyari/hive-tx-go/mode"
	"github.com/mahdiyari/hive-tx-go/rpc"
	"github.com/mahdiyari/hive-tx-go/transaction"
	"github.com/mahdiyari/hive-tx-go/transactionrecord"
)

// printed form of a transaction with its derived values
type serialized struct {
	Transaction *transactionrecord.Transaction `json:"transaction"`
	Packed      string                         `json:"packed"`
	Digest      string                         `json:"digest"`
	TxID        string                         `json:"txid"`
}

func newClient(m *metadata) (*rpc.Client, error) {
	return rpc.New(m.config.rpcConfiguration())
}

func runCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName, err := checkFileName(c.String("file"))
	if nil != err {
		return err
	}
	data, err := os.ReadFile(fileName)
	if nil != err {
		return err
	}

	var operations transactionrecord.Operations
	err = json.Unmarshal(data, &operations)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}

	tx, err := transaction.Create(context.Background(), client, operations, c.Duration("expiration"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "ref block: %d  prefix: %d\n", tx.RefBlockNum, tx.RefBlockPrefix)
		fmt.Fprintf(m.e, "expiration: %s\n", tx.Expiration)
	}

	return printJson(m.w, tx)
}

func runSerialize(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tx, err := readTransaction(c.String("file"))
	if nil != err {
		return err
	}

	packed, err := tx.Pack()
	if nil != err {
		return err
	}
	digest, txID, err := transaction.Digest(tx, mode.ChainID())
	if nil != err {
		return err
	}

	return printJson(m.w, serialized{
		Transaction: tx,
		Packed:      hex.EncodeToString(packed),
		Digest:      hex.EncodeToString(digest[:]),
		TxID:        txID,
	})
}

func runSignTransaction(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tx, err := readTransaction(c.String("file"))
	if nil != err {
		return err
	}

	signatures := c.StringSlice("signature")
	for _, s := range signatures {
		err := transaction.AddSignature(tx, s)
		if nil != err {
			return err
		}
	}

	wifs := c.StringSlice("key")
	if 0 == len(wifs) && 0 == len(signatures) {
		return ErrRequiredPrivateKey
	}
	if 0 != len(wifs) {
		keys, err := checkPrivateKeys(wifs)
		if nil != err {
			return err
		}
		err = transaction.Sign(tx, keys...)
		if nil != err {
			return err
		}
	}

	if m.verbose {
		signers, err := transaction.Signers(tx, mode.ChainID())
		if nil != err {
			return err
		}
		for i, signer := range signers {
			fmt.Fprintf(m.e, "signature[%d]: %s\n", i, signer)
		}
	}

	return printJson(m.w, tx)
}

func runBroadcast(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tx, err := readTransaction(c.String("file"))
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}

	txID, err := transaction.Broadcast(context.Background(), client, tx)
	if nil != err {
		return err
	}

	out := struct {
		TxID string `json:"txid"`
	}{
		TxID: txID,
	}
	return printJson(m.w, out)
}
