// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mahdiyari/hive-tx-go/account"
	"github.com/mahdiyari/hive-tx-go/keypair"
)

func TestMakeRawKeyPair(t *testing.T) {
	raw, keyPair, err := keypair.MakeRawKeyPair()
	assert.Nil(t, err)
	assert.Equal(t, keyPair.PrivateKey.String(), raw.PrivateKey)
	assert.Equal(t, keyPair.PublicKey.String(), raw.PublicKey)
	assert.Equal(t, "STM", raw.PublicKey[:3])

	raw2, _, err := keypair.MakeRawKeyPairFromWIF(raw.PrivateKey)
	assert.Nil(t, err)
	assert.Equal(t, raw, raw2)

	other, _, err := keypair.MakeRawKeyPair()
	assert.Nil(t, err)
	assert.NotEqual(t, raw.PrivateKey, other.PrivateKey, "random keys repeated")
}

func TestMakeLoginKeyPairs(t *testing.T) {
	pairs, err := keypair.MakeLoginKeyPairs("alice", "secret", account.Roles)
	assert.Nil(t, err)
	assert.Equal(t, len(account.Roles), len(pairs))

	active, err := account.PrivateKeyFromLogin("alice", "secret", "active")
	assert.Nil(t, err)
	assert.Equal(t, active.String(), pairs["active"].PrivateKey)

	single, err := keypair.MakeLoginKeyPairs("alice", "secret", nil)
	assert.Nil(t, err)
	assert.Equal(t, pairs["active"], single["active"])
}
