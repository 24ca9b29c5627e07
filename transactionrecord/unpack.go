// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/pkg/errors"

	"github.com/mahdiyari/hive-tx-go/account"
	"github.com/mahdiyari/hive-tx-go/bytebuffer"
)

// PackEncryptedMemo - binary form of an encrypted memo
func PackEncryptedMemo(m *EncryptedMemo) (Packed, error) {
	buffer := bytebuffer.New(0, bytebuffer.LittleEndian, false)
	err := packFields(buffer,
		publicKey("from", m.From),
		publicKey("to", m.To),
		u64("nonce", m.Nonce),
		u32("check", m.Check),
		blob("encrypted", m.Encrypted),
	)
	if nil != err {
		return nil, err
	}
	buffer.Flip()
	return buffer.Bytes(), nil
}

// UnpackEncryptedMemo - read an encrypted memo from a buffer in read
// mode
//
// the keys take the prefix of the current chain
func UnpackEncryptedMemo(buffer *bytebuffer.Buffer) (*EncryptedMemo, error) {
	from, err := unpackPublicKey(buffer)
	if nil != err {
		return nil, errors.Wrap(err, "from")
	}
	to, err := unpackPublicKey(buffer)
	if nil != err {
		return nil, errors.Wrap(err, "to")
	}
	nonce, err := buffer.ReadUint64()
	if nil != err {
		return nil, errors.Wrap(err, "nonce")
	}
	check, err := buffer.ReadUint32()
	if nil != err {
		return nil, errors.Wrap(err, "check")
	}
	encrypted, err := unpackBinary(buffer)
	if nil != err {
		return nil, errors.Wrap(err, "encrypted")
	}

	m := &EncryptedMemo{
		From:      from,
		To:        to,
		Nonce:     nonce,
		Check:     check,
		Encrypted: encrypted,
	}
	return m, nil
}

func unpackPublicKey(buffer *bytebuffer.Buffer) (*account.PublicKey, error) {
	key, err := buffer.ReadBytes(account.PublicKeyLength)
	if nil != err {
		return nil, err
	}
	return account.PublicKeyFromBytes(key, "")
}

func unpackBinary(buffer *bytebuffer.Buffer) (Binary, error) {
	n, err := buffer.ReadVarint32()
	if nil != err {
		return nil, err
	}
	return buffer.ReadBytes(int(n))
}
