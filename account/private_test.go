// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"

	"github.com/mahdiyari/hive-tx-go/account"
	"github.com/mahdiyari/hive-tx-go/fault"
)

const knownWIF = "5JdeC9P7Pbd1uGdFVEsJ41EkEnADbbHGq6p1BwFxm6txNBsQnsw"

var testScalars = []string{
	"0000000000000000000000000000000000000000000000000000000000000001",
	"1111111111111111111111111111111111111111111111111111111111111111",
	"9e3a7c3d1f2b4a5c6d7e8f90a1b2c3d4e5f60718293a4b5c6d7e8f9001122334",
	"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140",
}

func TestWIFRoundTrip(t *testing.T) {
	for i, h := range testScalars {
		k, _ := hex.DecodeString(h)
		privateKey, err := account.PrivateKeyFromBytes(k)
		if nil != err {
			t.Errorf("%d: from bytes error: %s", i, err)
			continue
		}
		wif := privateKey.String()
		decoded, err := account.PrivateKeyFromWIF(wif)
		if nil != err {
			t.Errorf("%d: from WIF error: %s", i, err)
			continue
		}
		if !bytes.Equal(decoded.Bytes(), k) {
			t.Errorf("%d: decoded: %x  expected: %x", i, decoded.Bytes(), k)
		}
	}
}

func TestKnownWIF(t *testing.T) {
	privateKey, err := account.PrivateKeyFromWIF(knownWIF)
	if nil != err {
		t.Fatalf("from WIF error: %s", err)
	}
	assert.Equal(t, knownWIF, privateKey.String())
	assert.Equal(t, "<private key>", fmt.Sprintf("%#v", privateKey), "key leaked")
}

func TestWIFByteFlip(t *testing.T) {
	k, _ := hex.DecodeString(testScalars[2])
	privateKey, _ := account.PrivateKeyFromBytes(k)
	raw, err := base58.Decode(privateKey.String())
	if nil != err {
		t.Fatalf("base58 error: %s", err)
	}

	for i := range raw {
		flipped := append([]byte{}, raw...)
		flipped[i] ^= 0x01
		_, err := account.PrivateKeyFromWIF(base58.Encode(flipped))
		expected := fault.ErrPrivateKeyChecksum
		if 0 == i {
			expected = fault.ErrPrivateKeyNetworkID
		}
		if expected != err {
			t.Errorf("%d: error: %v  expected: %s", i, err, expected)
		}
	}
}

func TestPrivateKeyInvalid(t *testing.T) {
	items := []string{
		"",
		"00",
		"0000000000000000000000000000000000000000000000000000000000000000",
		"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141",
		"ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
	}
	for i, h := range items {
		k, _ := hex.DecodeString(h)
		if _, err := account.PrivateKeyFromBytes(k); fault.ErrInvalidPrivateKey != err {
			t.Errorf("%d: error: %v  expected: %s", i, err, fault.ErrInvalidPrivateKey)
		}
	}

	_, err := account.PrivateKeyFromWIF("not;base58")
	assert.Equal(t, fault.ErrCannotDecodePrivateKey, err)

	_, err = account.PrivateKeyFromWIF(knownWIF[:20])
	assert.Equal(t, fault.ErrCannotDecodePrivateKey, err)
}

func TestLogin(t *testing.T) {
	login, err := account.PrivateKeyFromLogin("alice", "secret", "")
	assert.Nil(t, err)
	seed, err := account.PrivateKeyFromSeed("aliceactivesecret")
	assert.Nil(t, err)
	assert.Equal(t, seed.Bytes(), login.Bytes(), "default role")

	posting, err := account.PrivateKeyFromLogin("alice", "secret", "posting")
	assert.Nil(t, err)
	assert.NotEqual(t, login.Bytes(), posting.Bytes(), "role ignored")

	// sha256("") as the scalar
	empty, err := account.PrivateKeyFromSeed("")
	assert.Nil(t, err)
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", hex.EncodeToString(empty.Bytes()))
}

func TestPrivateKeyJSON(t *testing.T) {
	type item struct {
		Key account.PrivateKey `json:"key"`
	}
	var v item
	err := json.Unmarshal([]byte(`{"key":"`+knownWIF+`"}`), &v)
	assert.Nil(t, err)

	b, err := json.Marshal(v)
	assert.Nil(t, err)
	assert.Equal(t, `{"key":"`+knownWIF+`"}`, string(b))
}
