// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"os"

	"github.com/mahdiyari/hive-tx-go/account"
	"github.com/mahdiyari/hive-tx-go/fault"
	"github.com/mahdiyari/hive-tx-go/transactionrecord"
)

// common errors - keep in alphabetic order
var (
	ErrRequiredDigest     = fault.InvalidError("digest is required")
	ErrRequiredFileName   = fault.InvalidError("file name is required")
	ErrRequiredMemo       = fault.InvalidError("memo is required")
	ErrRequiredMethod     = fault.InvalidError("method is required")
	ErrRequiredOwner      = fault.InvalidError("owner is required")
	ErrRequiredPassword   = fault.InvalidError("password is required")
	ErrRequiredPrivateKey = fault.InvalidError("private key is required")
	ErrRequiredProperties = fault.InvalidError("witness properties are required")
	ErrRequiredPublicKey  = fault.InvalidError("public key is required")
	ErrRequiredSignature  = fault.InvalidError("signature is required")
	ErrRequiredUsername   = fault.InvalidError("username is required")
)

// check for non-blank file name
func checkFileName(fileName string) (string, error) {
	if "" == fileName {
		return "", ErrRequiredFileName
	}

	return fileName, nil
}

// private key is required, as WIF
func checkPrivateKey(wif string) (*account.PrivateKey, error) {
	if "" == wif {
		return nil, ErrRequiredPrivateKey
	}
	return account.PrivateKeyFromWIF(wif)
}

// all private keys are checked, at least one is required
func checkPrivateKeys(wifs []string) ([]*account.PrivateKey, error) {
	if 0 == len(wifs) {
		return nil, ErrRequiredPrivateKey
	}
	keys := make([]*account.PrivateKey, 0, len(wifs))
	for _, wif := range wifs {
		key, err := checkPrivateKey(wif)
		if nil != err {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// public key is required, with any prefix
func checkPublicKey(key string) (*account.PublicKey, error) {
	if "" == key {
		return nil, ErrRequiredPublicKey
	}
	return account.PublicKeyFromString(key)
}

// digest is required, must be 64 hex chars
func checkDigest(digest string) ([]byte, error) {
	if "" == digest {
		return nil, ErrRequiredDigest
	}
	d, err := hex.DecodeString(digest)
	if nil != err || account.DigestLength != len(d) {
		return nil, fault.ErrInvalidDigest
	}
	return d, nil
}

// signature is required, must be 130 hex chars
func checkSignature(signature string) (*account.Signature, error) {
	if "" == signature {
		return nil, ErrRequiredSignature
	}
	return account.SignatureFromString(signature)
}

// memo is required
func checkMemo(memo string) (string, error) {
	if "" == memo {
		return "", ErrRequiredMemo
	}
	return memo, nil
}

// read a transaction from a JSON file
func readTransaction(fileName string) (*transactionrecord.Transaction, error) {
	fileName, err := checkFileName(fileName)
	if nil != err {
		return nil, err
	}
	data, err := os.ReadFile(fileName)
	if nil != err {
		return nil, err
	}
	return transactionrecord.ParseTransaction(data)
}
