// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ripemd160"

	"github.com/mahdiyari/hive-tx-go/fault"
	"github.com/mahdiyari/hive-tx-go/mode"
)

// miscellaneous constants
const (
	checksumLength     = 4
	prefixLength       = 3
	PublicKeyLength    = 33
	nullPublicKeyTail  = "1111111111111111111111111111111114T1Anm"
	publicKeyTextBytes = PublicKeyLength + checksumLength
)

// PublicKey - compressed secp256k1 point with its textual prefix
//
// an empty prefix means the prefix of the current chain
type PublicKey struct {
	key    [PublicKeyLength]byte
	prefix string
}

// PublicKeyFromBytes - wrap 33 compressed point bytes
func PublicKeyFromBytes(key []byte, prefix string) (*PublicKey, error) {
	if PublicKeyLength != len(key) {
		return nil, fault.ErrInvalidPublicKey
	}
	p := &PublicKey{
		prefix: prefix,
	}
	copy(p.key[:], key)
	return p, nil
}

// NullPublicKey - the all zero key that stands for "no key"
func NullPublicKey(prefix string) *PublicKey {
	return &PublicKey{
		prefix: prefix,
	}
}

// PublicKeyFromString - convert "STM…" text to a public key
//
// the first three characters are the prefix, the trailing checksum
// is discarded without being checked
func PublicKeyFromString(s string) (*PublicKey, error) {
	if len(s) <= prefixLength {
		return nil, fault.ErrCannotDecodePublicKey
	}
	prefix := s[:prefixLength]

	if strings.HasSuffix(s, nullPublicKeyTail) {
		return NullPublicKey(prefix), nil
	}

	decoded, err := base58.Decode(s[prefixLength:])
	if nil != err || publicKeyTextBytes != len(decoded) {
		return nil, fault.ErrCannotDecodePublicKey
	}
	return PublicKeyFromBytes(decoded[:PublicKeyLength], prefix)
}

// Bytes - the 33 compressed point bytes
func (publicKey *PublicKey) Bytes() []byte {
	b := make([]byte, PublicKeyLength)
	copy(b, publicKey.key[:])
	return b
}

// Prefix - the textual prefix in effect
func (publicKey *PublicKey) Prefix() string {
	if "" == publicKey.prefix {
		return mode.AddressPrefix()
	}
	return publicKey.prefix
}

// IsNull - true for the all zero placeholder key
func (publicKey *PublicKey) IsNull() bool {
	return publicKey.key == [PublicKeyLength]byte{}
}

// Equal - same point, prefix is ignored
func (publicKey *PublicKey) Equal(other *PublicKey) bool {
	if nil == other {
		return false
	}
	return bytes.Equal(publicKey.key[:], other.key[:])
}

// String - prefix followed by base58 of key and ripemd160 checksum
func (publicKey *PublicKey) String() string {
	h := ripemd160.New()
	h.Write(publicKey.key[:])
	checksum := h.Sum(nil)

	buffer := make([]byte, 0, publicKeyTextBytes)
	buffer = append(buffer, publicKey.key[:]...)
	buffer = append(buffer, checksum[:checksumLength]...)
	return publicKey.Prefix() + base58.Encode(buffer)
}

// GoString - for %#v
func (publicKey *PublicKey) GoString() string {
	return "<public key:" + publicKey.String() + ">"
}

// convert to point
func (publicKey *PublicKey) point() (*btcec.PublicKey, error) {
	key, err := btcec.ParsePubKey(publicKey.key[:])
	if nil != err {
		return nil, fault.ErrInvalidPublicKey
	}
	return key, nil
}

// Verify - check a signature over a 32 byte digest
func (publicKey *PublicKey) Verify(digest []byte, signature *Signature) bool {
	if 32 != len(digest) || nil == signature {
		return false
	}
	key, err := publicKey.point()
	if nil != err {
		return false
	}
	var r, s btcec.ModNScalar
	if r.SetByteSlice(signature.Data[:32]) || s.SetByteSlice(signature.Data[32:]) {
		return false
	}
	return ecdsa.NewSignature(&r, &s).Verify(digest, key)
}

// MarshalText - convert public key to text
func (publicKey PublicKey) MarshalText() ([]byte, error) {
	return []byte(publicKey.String()), nil
}

// UnmarshalText - convert text into a public key
func (publicKey *PublicKey) UnmarshalText(s []byte) error {
	p, err := PublicKeyFromString(string(s))
	if nil != err {
		return err
	}
	*publicKey = *p
	return nil
}
