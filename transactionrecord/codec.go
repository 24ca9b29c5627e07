// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"math"

	"github.com/pkg/errors"

	"github.com/mahdiyari/hive-tx-go/account"
	"github.com/mahdiyari/hive-tx-go/asset"
	"github.com/mahdiyari/hive-tx-go/bytebuffer"
	"github.com/mahdiyari/hive-tx-go/fault"
)

// a named slot of a structure, packs one value
type field struct {
	name string
	pack func(buffer *bytebuffer.Buffer) error
}

// pack fields in order, the first failure is wrapped with its field name
func packFields(buffer *bytebuffer.Buffer, fields ...field) error {
	for _, f := range fields {
		if err := f.pack(buffer); nil != err {
			return errors.Wrap(err, f.name)
		}
	}
	return nil
}

func str(name string, s string) field {
	return field{name, func(buffer *bytebuffer.Buffer) error {
		return buffer.WriteVString(s)
	}}
}

func u8(name string, v uint8) field {
	return field{name, func(buffer *bytebuffer.Buffer) error {
		buffer.WriteUint8(v)
		return nil
	}}
}

func u16(name string, v uint16) field {
	return field{name, func(buffer *bytebuffer.Buffer) error {
		buffer.WriteUint16(v)
		return nil
	}}
}

func u32(name string, v uint32) field {
	return field{name, func(buffer *bytebuffer.Buffer) error {
		buffer.WriteUint32(v)
		return nil
	}}
}

func u64(name string, v uint64) field {
	return field{name, func(buffer *bytebuffer.Buffer) error {
		buffer.WriteUint64(v)
		return nil
	}}
}

func i16(name string, v int16) field {
	return field{name, func(buffer *bytebuffer.Buffer) error {
		buffer.WriteInt16(v)
		return nil
	}}
}

func i32(name string, v int32) field {
	return field{name, func(buffer *bytebuffer.Buffer) error {
		buffer.WriteInt32(v)
		return nil
	}}
}

func boolean(name string, v bool) field {
	return field{name, func(buffer *bytebuffer.Buffer) error {
		packBool(buffer, v)
		return nil
	}}
}

func amount(name string, a asset.Asset) field {
	return field{name, func(buffer *bytebuffer.Buffer) error {
		return packAsset(buffer, a)
	}}
}

func publicKey(name string, key *account.PublicKey) field {
	return field{name, func(buffer *bytebuffer.Buffer) error {
		return packPublicKey(buffer, key)
	}}
}

// a nil key packs as absent
func optionalPublicKey(name string, key *account.PublicKey) field {
	return field{name, func(buffer *bytebuffer.Buffer) error {
		if nil == key {
			buffer.WriteUint8(0)
			return nil
		}
		buffer.WriteUint8(1)
		return packPublicKey(buffer, key)
	}}
}

func date(name string, d Date) field {
	return field{name, func(buffer *bytebuffer.Buffer) error {
		return packDate(buffer, d)
	}}
}

// variable length bytes
func blob(name string, data []byte) field {
	return field{name, func(buffer *bytebuffer.Buffer) error {
		buffer.WriteVarint32(uint32(len(data)))
		buffer.AppendBytes(data)
		return nil
	}}
}

// fixed length bytes, no length prefix
func fixedBinary(name string, size int, data []byte) field {
	return field{name, func(buffer *bytebuffer.Buffer) error {
		return packFixed(buffer, size, data)
	}}
}

func authority(name string, a Authority) field {
	return field{name, func(buffer *bytebuffer.Buffer) error {
		return packAuthority(buffer, a)
	}}
}

// a nil authority packs as absent
func optionalAuthority(name string, a *Authority) field {
	return field{name, func(buffer *bytebuffer.Buffer) error {
		if nil == a {
			buffer.WriteUint8(0)
			return nil
		}
		buffer.WriteUint8(1)
		return packAuthority(buffer, *a)
	}}
}

func price(name string, p Price) field {
	return field{name, func(buffer *bytebuffer.Buffer) error {
		return packPrice(buffer, p)
	}}
}

func chainProperties(name string, p ChainProperties) field {
	return field{name, func(buffer *bytebuffer.Buffer) error {
		return packFields(buffer,
			amount("account_creation_fee", p.AccountCreationFee),
			u32("maximum_block_size", p.MaximumBlockSize),
			u16("hbd_interest_rate", p.HBDInterestRate),
		)
	}}
}

func stringArray(name string, items []string) field {
	return field{name, func(buffer *bytebuffer.Buffer) error {
		return packArray(buffer, items, func(buffer *bytebuffer.Buffer, s string) error {
			return buffer.WriteVString(s)
		})
	}}
}

// reserved extension slots, nothing but an empty list can be packed
func futureExtensions(name string, extensions FutureExtensions) field {
	return field{name, func(buffer *bytebuffer.Buffer) error {
		if 0 != len(extensions) {
			return fault.ErrUnsupportedCodec
		}
		buffer.WriteVarint32(0)
		return nil
	}}
}

// array of any packable item
func array[T any](name string, items []T, packItem func(*bytebuffer.Buffer, T) error) field {
	return field{name, func(buffer *bytebuffer.Buffer) error {
		return packArray(buffer, items, packItem)
	}}
}

// nested structure
func object(name string, pack func(*bytebuffer.Buffer) error) field {
	return field{name, pack}
}

// primitive packers

func packArray[T any](buffer *bytebuffer.Buffer, items []T, packItem func(*bytebuffer.Buffer, T) error) error {
	buffer.WriteVarint32(uint32(len(items)))
	for _, item := range items {
		if err := packItem(buffer, item); nil != err {
			return err
		}
	}
	return nil
}

func packBool(buffer *bytebuffer.Buffer, v bool) {
	if v {
		buffer.WriteUint8(1)
	} else {
		buffer.WriteUint8(0)
	}
}

// amount, precision then the zero padded symbol
func packAsset(buffer *bytebuffer.Buffer, a asset.Asset) error {
	symbol, err := a.SymbolBytes()
	if nil != err {
		return err
	}
	buffer.WriteInt64(a.Amount)
	buffer.WriteUint8(a.Precision)
	buffer.AppendBytes(symbol)
	return nil
}

func packPublicKey(buffer *bytebuffer.Buffer, key *account.PublicKey) error {
	if nil == key {
		return fault.ErrInvalidPublicKey
	}
	buffer.AppendBytes(key.Bytes())
	return nil
}

func packDate(buffer *bytebuffer.Buffer, d Date) error {
	seconds := d.Unix()
	if seconds < 0 || seconds > math.MaxUint32 {
		return fault.ErrInvalidDate
	}
	buffer.WriteUint32(uint32(seconds))
	return nil
}

func packFixed(buffer *bytebuffer.Buffer, size int, data []byte) error {
	if size != len(data) {
		return fault.ErrBinarySizeMismatch
	}
	buffer.AppendBytes(data)
	return nil
}

func packAccountAuth(buffer *bytebuffer.Buffer, a AccountAuth) error {
	if err := buffer.WriteVString(a.Account); nil != err {
		return err
	}
	buffer.WriteUint16(a.Weight)
	return nil
}

func packKeyAuth(buffer *bytebuffer.Buffer, k KeyAuth) error {
	if err := packPublicKey(buffer, k.Key); nil != err {
		return err
	}
	buffer.WriteUint16(k.Weight)
	return nil
}

func packAuthority(buffer *bytebuffer.Buffer, a Authority) error {
	return packFields(buffer,
		u32("weight_threshold", a.WeightThreshold),
		array("account_auths", a.AccountAuths, packAccountAuth),
		array("key_auths", a.KeyAuths, packKeyAuth),
	)
}

func packPrice(buffer *bytebuffer.Buffer, p Price) error {
	return packFields(buffer,
		amount("base", p.Base),
		amount("quote", p.Quote),
	)
}
