// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/mahdiyari/hive-tx-go/account"
	"github.com/mahdiyari/hive-tx-go/fault"
	"github.com/mahdiyari/hive-tx-go/mode"
	"github.com/mahdiyari/hive-tx-go/transactionrecord"
)

// Sign - append one signature per key for the current chain
func Sign(tx *transactionrecord.Transaction, keys ...*account.PrivateKey) error {
	return SignForChain(tx, mode.ChainID(), keys...)
}

// SignForChain - append one signature per key using an explicit chain id
//
// existing signatures are kept, nothing is appended if any key fails
func SignForChain(tx *transactionrecord.Transaction, chainID []byte, keys ...*account.PrivateKey) error {
	digest, _, err := Digest(tx, chainID)
	if nil != err {
		return err
	}

	signatures := make([]account.Signature, 0, len(keys))
	for _, key := range keys {
		if nil == key {
			return fault.ErrInvalidPrivateKey
		}
		signature, err := key.Sign(digest[:])
		if nil != err {
			return err
		}
		signatures = append(signatures, *signature)
	}

	tx.Signatures = append(tx.Signatures, signatures...)
	return nil
}

// AddSignature - append a signature made elsewhere, given as 130 hex
// characters
func AddSignature(tx *transactionrecord.Transaction, signature string) error {
	if nil == tx {
		return fault.ErrTransactionNotCreated
	}
	if account.SignatureTextLength != len(signature) {
		return fault.ErrInvalidSignatureLength
	}
	s, err := account.SignatureFromString(signature)
	if nil != err {
		return err
	}
	tx.Signatures = append(tx.Signatures, *s)
	return nil
}

// Signers - public keys recovered from every signature
func Signers(tx *transactionrecord.Transaction, chainID []byte) ([]*account.PublicKey, error) {
	digest, _, err := Digest(tx, chainID)
	if nil != err {
		return nil, err
	}

	keys := make([]*account.PublicKey, 0, len(tx.Signatures))
	for i := range tx.Signatures {
		key, err := tx.Signatures[i].RecoverPublicKey(digest[:])
		if nil != err {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}
