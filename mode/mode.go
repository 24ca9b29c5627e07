// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mode

import (
	"encoding/hex"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/mahdiyari/hive-tx-go/chain"
	"github.com/mahdiyari/hive-tx-go/fault"
)

var globalData struct {
	sync.RWMutex
	log        *logger.L
	testing    bool
	chain      string
	parameters chain.Parameters

	// set once during initialise
	initialised bool
}

// set up the network selection
//
// before this is called the main hive network is assumed
func Initialise(chainName string) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("mode")
	globalData.log.Info("starting…")

	parameters, ok := chain.Get(chainName)
	if !ok {
		globalData.log.Criticalf("mode cannot handle chain: '%s'", chainName)
		return fault.ErrInvalidChain
	}

	globalData.chain = chainName
	globalData.testing = chainName != chain.Hive
	globalData.parameters = parameters

	// all data initialised
	globalData.initialised = true

	globalData.log.Infof("chain: %s  prefix: %s", chainName, parameters.AddressPrefix)

	return nil
}

// Override - replace the address prefix and/or chain id of the
// selected chain, empty values leave the current setting
func Override(addressPrefix string, chainID string) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	if "" != chainID {
		id, err := hex.DecodeString(chainID)
		if nil != err || 32 != len(id) {
			return fault.ErrInvalidChainID
		}
		globalData.parameters.ChainID = id
		globalData.log.Infof("chain id override: %x", id)
	}
	if "" != addressPrefix {
		globalData.parameters.AddressPrefix = addressPrefix
		globalData.log.Infof("address prefix override: %s", addressPrefix)
	}
	return nil
}

// shutdown mode handling
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")

	// finally...
	globalData.initialised = false
	globalData.chain = ""
	globalData.testing = false
	globalData.parameters = chain.Parameters{}

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// special for testing
func IsTesting() bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.testing
}

// name of the current chain
func ChainName() string {
	globalData.RLock()
	defer globalData.RUnlock()
	if !globalData.initialised {
		return chain.Hive
	}
	return globalData.chain
}

// AddressPrefix - prefix for textual public keys on the current chain
func AddressPrefix() string {
	globalData.RLock()
	defer globalData.RUnlock()
	if !globalData.initialised {
		p, _ := chain.Get(chain.Hive)
		return p.AddressPrefix
	}
	return globalData.parameters.AddressPrefix
}

// ChainID - a copy of the 32 byte chain id of the current chain
func ChainID() []byte {
	globalData.RLock()
	defer globalData.RUnlock()
	if !globalData.initialised {
		p, _ := chain.Get(chain.Hive)
		return p.ChainID
	}
	id := make([]byte, len(globalData.parameters.ChainID))
	copy(id, globalData.parameters.ChainID)
	return id
}
