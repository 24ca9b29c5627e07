// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package memo_test

import (
	"strings"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/mahdiyari/hive-tx-go/account"
	"github.com/mahdiyari/hive-tx-go/bytebuffer"
	"github.com/mahdiyari/hive-tx-go/fault"
	"github.com/mahdiyari/hive-tx-go/memo"
	"github.com/mahdiyari/hive-tx-go/transactionrecord"
)

func makeKey(t *testing.T, seed string) *account.PrivateKey {
	k, err := account.PrivateKeyFromSeed(seed)
	if nil != err {
		t.Fatalf("seed: %q  error: %s", seed, err)
	}
	return k
}

func TestMemoRoundTrip(t *testing.T) {
	alice := makeKey(t, "alice")
	bob := makeKey(t, "bob")

	items := []string{
		"#",
		"#hello",
		"#memo爱",
		"#" + strings.Repeat("x", 15),
		"#" + strings.Repeat("y", 16),
		"#" + strings.Repeat("long memo ", 200),
	}

	for i, plain := range items {
		encoded, err := memo.Encode(alice, bob.PublicKey(), plain)
		if nil != err {
			t.Errorf("%d: encode error: %s", i, err)
			continue
		}
		if !strings.HasPrefix(encoded, "#") || encoded == plain {
			t.Errorf("%d: not encrypted: %q", i, encoded)
			continue
		}

		// both parties can read it
		for j, k := range []*account.PrivateKey{bob, alice} {
			decoded, err := memo.Decode(k, encoded)
			if nil != err {
				t.Errorf("%d/%d: decode error: %s", i, j, err)
				continue
			}
			if plain != decoded {
				t.Errorf("%d/%d: decoded: %q  expected: %q", i, j, decoded, plain)
			}
		}
	}
}

func TestMemoStructure(t *testing.T) {
	alice := makeKey(t, "alice")
	bob := makeKey(t, "bob")

	encoded, err := memo.EncodeWithNonce(alice, bob.PublicKey(), "#hi", 1234567)
	if nil != err {
		t.Fatalf("encode error: %s", err)
	}
	packed, err := base58.Decode(encoded[1:])
	if nil != err {
		t.Fatalf("base58 error: %s", err)
	}
	m, err := transactionrecord.UnpackEncryptedMemo(bytebuffer.Wrap(packed, bytebuffer.LittleEndian))
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	assert.True(t, alice.PublicKey().Equal(m.From), "from")
	assert.True(t, bob.PublicKey().Equal(m.To), "to")
	assert.Equal(t, uint64(1234567), m.Nonce)
	assert.Equal(t, 16, len(m.Encrypted), "one block of ciphertext")

	again, err := memo.EncodeWithNonce(alice, bob.PublicKey(), "#hi", 1234567)
	assert.Nil(t, err)
	assert.Equal(t, encoded, again, "same nonce must give the same memo")

	other, err := memo.EncodeWithNonce(alice, bob.PublicKey(), "#hi", 1234568)
	assert.Nil(t, err)
	assert.NotEqual(t, encoded, other, "nonce ignored")
}

func TestMemoUniqueNonce(t *testing.T) {
	alice := makeKey(t, "alice")
	bob := makeKey(t, "bob")

	seen := make(map[string]struct{})
	for i := 0; i < 50; i += 1 {
		encoded, err := memo.Encode(alice, bob.PublicKey(), "#same")
		if nil != err {
			t.Fatalf("%d: encode error: %s", i, err)
		}
		if _, ok := seen[encoded]; ok {
			t.Fatalf("%d: repeated memo: %s", i, encoded)
		}
		seen[encoded] = struct{}{}
	}
}

func TestMemoPassThrough(t *testing.T) {
	alice := makeKey(t, "alice")

	for i, plain := range []string{"", "hello", " #not a memo"} {
		encoded, err := memo.Encode(alice, alice.PublicKey(), plain)
		assert.Nil(t, err, "%d: encode", i)
		assert.Equal(t, plain, encoded, "%d: encode", i)

		decoded, err := memo.Decode(alice, plain)
		assert.Nil(t, err, "%d: decode", i)
		assert.Equal(t, plain, decoded, "%d: decode", i)
	}
}

func TestMemoWrongKey(t *testing.T) {
	alice := makeKey(t, "alice")
	bob := makeKey(t, "bob")
	eve := makeKey(t, "eve")

	encoded, err := memo.Encode(alice, bob.PublicKey(), "#secret")
	if nil != err {
		t.Fatalf("encode error: %s", err)
	}
	_, err = memo.Decode(eve, encoded)
	assert.Equal(t, fault.ErrInvalidKey, err)
}

func TestMemoCorrupt(t *testing.T) {
	alice := makeKey(t, "alice")
	bob := makeKey(t, "bob")

	_, err := memo.Decode(alice, "#0OIl")
	assert.Equal(t, fault.ErrInvalidMemo, err, "not base58")

	_, err = memo.Decode(alice, "#")
	assert.Equal(t, fault.ErrInvalidMemo, err, "empty")

	encoded, err := memo.Encode(alice, bob.PublicKey(), "#secret")
	assert.Nil(t, err)
	packed, _ := base58.Decode(encoded[1:])

	_, err = memo.Decode(bob, "#"+base58.Encode(packed[:50]))
	assert.True(t, fault.IsErrLength(err), "truncated: %v", err)

	// flip a bit of the checksum
	packed[74] ^= 0x01
	_, err = memo.Decode(bob, "#"+base58.Encode(packed))
	assert.Equal(t, fault.ErrInvalidKey, errors.Cause(err))
}
