// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mahdiyari/hive-tx-go/account"
	"github.com/mahdiyari/hive-tx-go/fault"
)

const (
	knownPublicKey = "STM8m5UgaFAAYQRuaNejYdS8FVLVp9Ss3K1qAVk5de6F8s3HnVbvA"
	nullPublicKey  = "STM1111111111111111111111111111111114T1Anm"
)

func TestPublicKeyRoundTrip(t *testing.T) {
	p, err := account.PublicKeyFromString(knownPublicKey)
	if nil != err {
		t.Fatalf("decode error: %s", err)
	}
	assert.Equal(t, "STM", p.Prefix(), "prefix")
	assert.Equal(t, account.PublicKeyLength, len(p.Bytes()), "length")
	assert.False(t, p.IsNull(), "null")
	assert.Equal(t, knownPublicKey, p.String(), "round trip")

	testnet, err := account.PublicKeyFromString("TST" + knownPublicKey[3:])
	if nil != err {
		t.Fatalf("decode error: %s", err)
	}
	assert.Equal(t, "TST", testnet.Prefix(), "prefix preserved")
	assert.True(t, p.Equal(testnet), "same point")
	assert.Equal(t, "TST"+knownPublicKey[3:], testnet.String(), "round trip")

	b, err := account.PublicKeyFromBytes(p.Bytes(), "")
	assert.Nil(t, err)
	assert.Equal(t, knownPublicKey, b.String(), "default prefix")
}

func TestNullPublicKey(t *testing.T) {
	p, err := account.PublicKeyFromString(nullPublicKey)
	assert.Nil(t, err)
	assert.True(t, p.IsNull())
	assert.Equal(t, make([]byte, account.PublicKeyLength), p.Bytes())
	assert.Equal(t, nullPublicKey, account.NullPublicKey("STM").String())
}

func TestPublicKeyInvalid(t *testing.T) {
	items := []string{
		"",
		"STM",
		"STM0OIl",
		"STM8m5UgaFAAYQRuaNejYdS8FVLVp9Ss3K1qAVk5de6F8s3",
	}
	for i, s := range items {
		if _, err := account.PublicKeyFromString(s); fault.ErrCannotDecodePublicKey != err {
			t.Errorf("%d: %q error: %v  expected: %s", i, s, err, fault.ErrCannotDecodePublicKey)
		}
	}

	_, err := account.PublicKeyFromBytes([]byte{0x02}, "STM")
	assert.Equal(t, fault.ErrInvalidPublicKey, err)
}

func TestPublicKeyJSON(t *testing.T) {
	type item struct {
		Key *account.PublicKey `json:"key"`
	}
	var v item
	err := json.Unmarshal([]byte(`{"key":"`+knownPublicKey+`"}`), &v)
	assert.Nil(t, err)

	b, err := json.Marshal(v)
	assert.Nil(t, err)
	assert.Equal(t, `{"key":"`+knownPublicKey+`"}`, string(b))
}

func TestSignRecover(t *testing.T) {
	privateKey := mustPrivateKey(t, "9e3a7c3d1f2b4a5c6d7e8f90a1b2c3d4e5f60718293a4b5c6d7e8f9001122334")
	publicKey := privateKey.PublicKey()

	messages := []string{
		"",
		"hello world",
		"the quick brown fox",
		"0123456789",
		"memo爱",
	}

	for i, m := range messages {
		digest := sha256.Sum256([]byte(m))
		signature, err := privateKey.Sign(digest[:])
		if nil != err {
			t.Errorf("%d: sign error: %s", i, err)
			continue
		}

		if 0 != signature.Data[0]&0x80 || 0 != signature.Data[32]&0x80 {
			t.Errorf("%d: not canonical: %x", i, signature.Data)
		}
		if !publicKey.Verify(digest[:], signature) {
			t.Errorf("%d: verify failed", i)
		}

		text := signature.String()
		if account.SignatureTextLength != len(text) {
			t.Errorf("%d: text length: %d", i, len(text))
		}
		if header := signature.Bytes()[0]; int(header) != 31+signature.Recovery {
			t.Errorf("%d: header: %d  recovery: %d", i, header, signature.Recovery)
		}

		parsed, err := account.SignatureFromString(text)
		if nil != err {
			t.Errorf("%d: parse error: %s", i, err)
			continue
		}
		recovered, err := parsed.RecoverPublicKey(digest[:])
		if nil != err {
			t.Errorf("%d: recover error: %s", i, err)
			continue
		}
		if !recovered.Equal(publicKey) {
			t.Errorf("%d: recovered: %s  expected: %s", i, recovered, publicKey)
		}

		// uncompressed header encoding
		uncompressed := *signature
		uncompressed.Compressed = false
		b := uncompressed.Bytes()
		if int(b[0]) != 27+signature.Recovery {
			t.Errorf("%d: uncompressed header: %d", i, b[0])
		}
		parsed, err = account.SignatureFromBytes(b)
		if nil != err {
			t.Errorf("%d: parse error: %s", i, err)
			continue
		}
		if parsed.Compressed || parsed.Recovery != signature.Recovery {
			t.Errorf("%d: parsed: %#v", i, parsed)
		}
		recovered, err = parsed.RecoverPublicKeyFromHex(hex.EncodeToString(digest[:]))
		if nil != err {
			t.Errorf("%d: recover error: %s", i, err)
			continue
		}
		if !recovered.Equal(publicKey) {
			t.Errorf("%d: recovered: %s  expected: %s", i, recovered, publicKey)
		}
	}
}

func TestSignInvalid(t *testing.T) {
	privateKey := mustPrivateKey(t, "9e3a7c3d1f2b4a5c6d7e8f90a1b2c3d4e5f60718293a4b5c6d7e8f9001122334")

	_, err := privateKey.Sign([]byte("short"))
	assert.Equal(t, fault.ErrInvalidDigest, err)

	digest := sha256.Sum256([]byte("x"))
	signature, err := privateKey.Sign(digest[:])
	assert.Nil(t, err)

	_, err = signature.RecoverPublicKey(digest[:31])
	assert.Equal(t, fault.ErrInvalidDigest, err)

	_, err = signature.RecoverPublicKeyFromHex("abcd")
	assert.Equal(t, fault.ErrInvalidDigest, err)

	_, err = account.SignatureFromString(signature.String()[2:])
	assert.Equal(t, fault.ErrInvalidSignatureLength, err)

	_, err = account.SignatureFromString("zz" + signature.String()[2:])
	assert.Equal(t, fault.ErrCannotDecodeSignature, err)

	b := signature.Bytes()
	b[0] = 35
	_, err = account.SignatureFromBytes(b)
	assert.Equal(t, fault.ErrInvalidRecoveryID, err)

	assert.False(t, privateKey.PublicKey().Verify(digest[:31], signature))

	other := sha256.Sum256([]byte("y"))
	assert.False(t, privateKey.PublicKey().Verify(other[:], signature))
}

func TestSharedSecret(t *testing.T) {
	a := mustPrivateKey(t, "1111111111111111111111111111111111111111111111111111111111111111")
	b := mustPrivateKey(t, "2222222222222222222222222222222222222222222222222222222222222222")

	ab, err := a.SharedSecret(b.PublicKey())
	assert.Nil(t, err)
	ba, err := b.SharedSecret(a.PublicKey())
	assert.Nil(t, err)
	assert.Equal(t, ab, ba, "shared secret not symmetric")
	assert.Equal(t, account.SharedSecretBytes, len(ab))

	_, err = a.SharedSecret(account.NullPublicKey("STM"))
	assert.Equal(t, fault.ErrInvalidPublicKey, err)
}

func mustPrivateKey(t *testing.T, h string) *account.PrivateKey {
	b, err := hex.DecodeString(h)
	if nil != err {
		t.Fatalf("hex error: %s", err)
	}
	p, err := account.PrivateKeyFromBytes(b)
	if nil != err {
		t.Fatalf("private key error: %s", err)
	}
	return p
}
