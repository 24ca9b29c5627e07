// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcec/v2/ecdsa"

	"github.com/mahdiyari/hive-tx-go/fault"
)

// signature sizes
const (
	SignatureLength        = 64
	CompactSignatureLength = SignatureLength + 1
	SignatureTextLength    = 2 * CompactSignatureLength
)

// header byte offsets
const (
	compressedHeader   = 31
	uncompressedHeader = 27
)

// Signature - r ‖ s with the recovery id needed to rebuild the signer
type Signature struct {
	Data       [SignatureLength]byte
	Recovery   int // 0..3
	Compressed bool
}

// SignatureFromBytes - decode the 65 byte header ‖ r ‖ s form
func SignatureFromBytes(b []byte) (*Signature, error) {
	if CompactSignatureLength != len(b) {
		return nil, fault.ErrInvalidSignature
	}
	recovery := int(b[0]) - compressedHeader
	compressed := true
	if recovery < 0 {
		compressed = false
		recovery += 4
	}
	if recovery < 0 || recovery > 3 {
		return nil, fault.ErrInvalidRecoveryID
	}
	signature := &Signature{
		Recovery:   recovery,
		Compressed: compressed,
	}
	copy(signature.Data[:], b[1:])
	return signature, nil
}

// SignatureFromString - decode 130 hex characters
func SignatureFromString(s string) (*Signature, error) {
	if SignatureTextLength != len(s) {
		return nil, fault.ErrInvalidSignatureLength
	}
	b, err := hex.DecodeString(s)
	if nil != err {
		return nil, fault.ErrCannotDecodeSignature
	}
	return SignatureFromBytes(b)
}

// Bytes - header ‖ r ‖ s
func (signature *Signature) Bytes() []byte {
	header := uncompressedHeader
	if signature.Compressed {
		header = compressedHeader
	}
	b := make([]byte, 0, CompactSignatureLength)
	b = append(b, byte(signature.Recovery+header))
	return append(b, signature.Data[:]...)
}

// convert a binary signature to hex string for use by the fmt package (for %s)
func (signature *Signature) String() string {
	return hex.EncodeToString(signature.Bytes())
}

// convert a binary signature to hex string for use by the fmt package (for %#v)
func (signature *Signature) GoString() string {
	return "<signature:" + signature.String() + ">"
}

// RecoverPublicKey - rebuild the signer's key from a 32 byte digest
func (signature *Signature) RecoverPublicKey(digest []byte) (*PublicKey, error) {
	if DigestLength != len(digest) {
		return nil, fault.ErrInvalidDigest
	}

	// compact form always marked compressed, the recovered point
	// is serialised compressed whatever the header said
	compact := make([]byte, 0, CompactSignatureLength)
	compact = append(compact, byte(signature.Recovery+compressedHeader))
	compact = append(compact, signature.Data[:]...)

	key, _, err := ecdsa.RecoverCompact(compact, digest)
	if nil != err {
		return nil, fault.ErrInvalidSignature
	}
	p := &PublicKey{}
	copy(p.key[:], key.SerializeCompressed())
	return p, nil
}

// RecoverPublicKeyFromHex - as RecoverPublicKey with the digest as
// 64 hex characters
func (signature *Signature) RecoverPublicKeyFromHex(digest string) (*PublicKey, error) {
	if 2*DigestLength != len(digest) {
		return nil, fault.ErrInvalidDigest
	}
	b, err := hex.DecodeString(digest)
	if nil != err {
		return nil, fault.ErrInvalidDigest
	}
	return signature.RecoverPublicKey(b)
}

// convert signature to text
func (signature Signature) MarshalText() ([]byte, error) {
	return []byte(signature.String()), nil
}

// convert text into a signature
func (signature *Signature) UnmarshalText(s []byte) error {
	sig, err := SignatureFromString(string(s))
	if nil != err {
		return err
	}
	*signature = *sig
	return nil
}
