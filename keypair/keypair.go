// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/mahdiyari/hive-tx-go/account"
)

// KeyPair - structure to hold public and private keys
type KeyPair struct {
	PrivateKey *account.PrivateKey
	PublicKey  *account.PublicKey
}

// RawKeyPair - text version of keys
type RawKeyPair struct {
	PrivateKey string `json:"private_key"`
	PublicKey  string `json:"public_key"`
}

// Generate - new private key from secure random data
func Generate() (*account.PrivateKey, error) {
	k, err := btcec.NewPrivateKey()
	if nil != err {
		return nil, err
	}
	return account.PrivateKeyFromBytes(k.Serialize())
}

// MakeRawKeyPair - create a new random key pair
func MakeRawKeyPair() (*RawKeyPair, *KeyPair, error) {
	privateKey, err := Generate()
	if nil != err {
		return nil, nil, err
	}
	raw, keyPair := makeKeyPair(privateKey)
	return raw, keyPair, nil
}

// MakeRawKeyPairFromWIF - key pair from an existing private key
func MakeRawKeyPairFromWIF(wif string) (*RawKeyPair, *KeyPair, error) {
	privateKey, err := account.PrivateKeyFromWIF(wif)
	if nil != err {
		return nil, nil, err
	}
	raw, keyPair := makeKeyPair(privateKey)
	return raw, keyPair, nil
}

// MakeLoginKeyPairs - the deterministic key pair for each role
func MakeLoginKeyPairs(username string, password string, roles []string) (map[string]*RawKeyPair, error) {
	if 0 == len(roles) {
		roles = []string{account.DefaultRole}
	}
	result := make(map[string]*RawKeyPair, len(roles))
	for _, role := range roles {
		privateKey, err := account.PrivateKeyFromLogin(username, password, role)
		if nil != err {
			return nil, err
		}
		raw, _ := makeKeyPair(privateKey)
		result[role] = raw
	}
	return result, nil
}

func makeKeyPair(privateKey *account.PrivateKey) (*RawKeyPair, *KeyPair) {
	keyPair := &KeyPair{
		PrivateKey: privateKey,
		PublicKey:  privateKey.PublicKey(),
	}
	raw := &RawKeyPair{
		PrivateKey: privateKey.String(),
		PublicKey:  keyPair.PublicKey.String(),
	}
	return raw, keyPair
}
