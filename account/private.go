// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/sha256"
	"crypto/sha512"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/mr-tron/base58"

	"github.com/mahdiyari/hive-tx-go/fault"
)

// WIF constants
const (
	networkID         = 0x80
	PrivateKeyLength  = 32
	wifLength         = 1 + PrivateKeyLength + checksumLength
	SharedSecretBytes = sha512.Size
	DigestLength      = sha256.Size
)

// PrivateKey - a secp256k1 scalar
type PrivateKey struct {
	key *btcec.PrivateKey
}

// PrivateKeyFromBytes - wrap a 32 byte scalar, which must lie in 1..n-1
func PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if PrivateKeyLength != len(b) {
		return nil, fault.ErrInvalidPrivateKey
	}
	var k secp256k1.ModNScalar
	if overflow := k.SetByteSlice(b); overflow || k.IsZero() {
		return nil, fault.ErrInvalidPrivateKey
	}
	return &PrivateKey{
		key: secp256k1.NewPrivateKey(&k),
	}, nil
}

// PrivateKeyFromWIF - decode a wallet import format string
func PrivateKeyFromWIF(wif string) (*PrivateKey, error) {
	decoded, err := base58.Decode(wif)
	if nil != err || wifLength != len(decoded) {
		return nil, fault.ErrCannotDecodePrivateKey
	}
	if networkID != decoded[0] {
		return nil, fault.ErrPrivateKeyNetworkID
	}
	checksumStart := len(decoded) - checksumLength
	if !bytes.Equal(wifChecksum(decoded[:checksumStart]), decoded[checksumStart:]) {
		return nil, fault.ErrPrivateKeyChecksum
	}
	return PrivateKeyFromBytes(decoded[1:checksumStart])
}

// double sha256 truncated
func wifChecksum(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:checksumLength]
}

// Bytes - the 32 byte scalar
func (privateKey *PrivateKey) Bytes() []byte {
	return privateKey.key.Serialize()
}

// String - wallet import format
func (privateKey *PrivateKey) String() string {
	buffer := make([]byte, 0, wifLength)
	buffer = append(buffer, networkID)
	buffer = append(buffer, privateKey.key.Serialize()...)
	buffer = append(buffer, wifChecksum(buffer)...)
	return base58.Encode(buffer)
}

// GoString - for %#v, never shows the key
func (privateKey *PrivateKey) GoString() string {
	return "<private key>"
}

// PublicKey - derive the public key using the current chain prefix
func (privateKey *PrivateKey) PublicKey() *PublicKey {
	return privateKey.PublicKeyWithPrefix("")
}

// PublicKeyWithPrefix - derive the public key with a specific prefix
func (privateKey *PrivateKey) PublicKeyWithPrefix(prefix string) *PublicKey {
	p := &PublicKey{
		prefix: prefix,
	}
	copy(p.key[:], privateKey.key.PubKey().SerializeCompressed())
	return p
}

// SharedSecret - ECDH with another key, the x coordinate of the
// shared point hashed with sha512
func (privateKey *PrivateKey) SharedSecret(publicKey *PublicKey) ([SharedSecretBytes]byte, error) {
	point, err := publicKey.point()
	if nil != err {
		return [SharedSecretBytes]byte{}, err
	}
	x := btcec.GenerateSharedSecret(privateKey.key, point)
	return sha512.Sum512(x), nil
}

// MarshalText - convert private key to WIF
func (privateKey PrivateKey) MarshalText() ([]byte, error) {
	return []byte(privateKey.String()), nil
}

// UnmarshalText - convert WIF into a private key
func (privateKey *PrivateKey) UnmarshalText(s []byte) error {
	p, err := PrivateKeyFromWIF(string(s))
	if nil != err {
		return err
	}
	privateKey.key = p.key
	return nil
}
