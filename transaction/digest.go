// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/mahdiyari/hive-tx-go/account"
	"github.com/mahdiyari/hive-tx-go/fault"
	"github.com/mahdiyari/hive-tx-go/transactionrecord"
)

// number of hex characters in a transaction id
const txIDLength = 40

// Digest - the signing digest and the transaction id
func Digest(tx *transactionrecord.Transaction, chainID []byte) ([account.DigestLength]byte, string, error) {
	var digest [account.DigestLength]byte
	if nil == tx {
		return digest, "", fault.ErrTransactionNotCreated
	}

	packed, err := tx.Pack()
	if nil != err {
		return digest, "", err
	}

	h := sha256.New()
	h.Write(chainID)
	h.Write(packed)
	copy(digest[:], h.Sum(nil))

	id := sha256.Sum256(packed)
	txID := hex.EncodeToString(id[:])[:txIDLength]

	return digest, txID, nil
}
