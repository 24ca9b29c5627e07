// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"encoding/hex"
)

// names of all chains
const (
	Hive    = "hive"
	Testnet = "testnet"
)

// Parameters - per network constants used when building transactions
type Parameters struct {
	AddressPrefix string // prefix of textual public keys
	ChainID       []byte // 32 bytes mixed into every signature digest
}

// chain ids as hex
const (
	hiveChainID    = "beeab0de00000000000000000000000000000000000000000000000000000000"
	testnetChainID = "18dcf0a285365fc58b71f18b3d3fec954aa0c141c44e4e5cb4cf777b9eab274e"
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Hive, Testnet:
		return true
	default:
		return false
	}
}

// Get - parameters of a named chain
func Get(name string) (Parameters, bool) {
	switch name {
	case Hive:
		return Parameters{
			AddressPrefix: "STM",
			ChainID:       mustDecode(hiveChainID),
		}, true
	case Testnet:
		return Parameters{
			AddressPrefix: "TST",
			ChainID:       mustDecode(testnetChainID),
		}, true
	default:
		return Parameters{}, false
	}
}

func mustDecode(s string) []byte {
	b, err := hex.DecodeString(s)
	if nil != err {
		panic(err)
	}
	return b
}
