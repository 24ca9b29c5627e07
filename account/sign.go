// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/sha256"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/mahdiyari/hive-tx-go/fault"
)

// limit on the search for a canonical signature
const maximumSigningAttempts = 1000

// Sign - recoverable signature over a 32 byte digest
//
// the chain only accepts canonical signatures so each attempt feeds
// sha256(digest ‖ attempt) as extra data to the RFC6979 nonce until
// both r and s have their top bit clear and no redundant zero byte
func (privateKey *PrivateKey) Sign(digest []byte) (*Signature, error) {
	if DigestLength != len(digest) {
		return nil, fault.ErrInvalidDigest
	}

	for attempt := 1; attempt <= maximumSigningAttempts; attempt += 1 {
		h := sha256.New()
		h.Write(digest)
		h.Write([]byte{byte(attempt)})
		extra := h.Sum(nil)

		signature, ok := privateKey.signWithExtra(digest, extra)
		if ok && isCanonical(&signature.Data) {
			return signature, nil
		}
	}
	return nil, fault.ErrSigningFailed
}

// deterministic ECDSA with low S and recovery code
func (privateKey *PrivateKey) signWithExtra(digest []byte, extra []byte) (*Signature, bool) {
	d := &privateKey.key.Key
	var dBytes [32]byte
	d.PutBytes(&dBytes)

	var e secp256k1.ModNScalar
	e.SetByteSlice(digest)

	for iteration := uint32(0); iteration < 8; iteration += 1 {
		k := secp256k1.NonceRFC6979(dBytes[:], digest, extra, nil, iteration)

		var R secp256k1.JacobianPoint
		secp256k1.ScalarBaseMultNonConst(k, &R)
		R.ToAffine()
		R.X.Normalize()
		R.Y.Normalize()

		var r secp256k1.ModNScalar
		overflow := r.SetBytes(R.X.Bytes())
		if r.IsZero() {
			k.Zero()
			continue
		}
		recovery := byte(overflow << 1)
		if R.Y.IsOdd() {
			recovery |= 1
		}

		kInverse := new(secp256k1.ModNScalar).InverseValNonConst(k)
		s := new(secp256k1.ModNScalar).Mul2(d, &r).Add(&e).Mul(kInverse)
		k.Zero()
		if s.IsZero() {
			continue
		}
		if s.IsOverHalfOrder() {
			s.Negate()
			recovery ^= 0x01
		}

		signature := &Signature{
			Recovery:   int(recovery),
			Compressed: true,
		}
		r.PutBytesUnchecked(signature.Data[0:32])
		s.PutBytesUnchecked(signature.Data[32:64])
		return signature, true
	}
	return nil, false
}

// r and s must both be positive as DER integers and minimally encoded
func isCanonical(c *[SignatureLength]byte) bool {
	return 0 == c[0]&0x80 &&
		!(0 == c[0] && 0 == c[1]&0x80) &&
		0 == c[32]&0x80 &&
		!(0 == c[32] && 0 == c[33]&0x80)
}
