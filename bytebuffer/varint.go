// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bytebuffer

import (
	"github.com/mahdiyari/hive-tx-go/fault"
	"github.com/mahdiyari/hive-tx-go/util"
)

// CalculateVarint32 - exact number of bytes a value occupies as a varint
func CalculateVarint32(value uint32) int {
	return util.Varint32Length(value)
}

// WriteVarint32 - append a varint, returns the number of bytes written
func (b *Buffer) WriteVarint32(value uint32) int {
	v := util.ToVarint32(value)
	b.AppendBytes(v)
	return len(v)
}

// WriteVarint32At - write a varint at offset
func (b *Buffer) WriteVarint32At(value uint32, offset int) (int, error) {
	v := util.ToVarint32(value)
	if err := b.AppendBytesAt(v, offset); nil != err {
		return 0, err
	}
	return len(v), nil
}

// ReadVarint32 - consume a varint
func (b *Buffer) ReadVarint32() (uint32, error) {
	value, n, err := b.ReadVarint32At(b.offset)
	if nil != err {
		return 0, err
	}
	b.offset += n
	return value, nil
}

// ReadVarint32At - read a varint at offset, also returning its length
func (b *Buffer) ReadVarint32At(offset int) (uint32, int, error) {
	end := b.limit
	if b.noAssert {
		end = len(b.data)
	} else if offset < 0 || offset > b.limit {
		return 0, 0, fault.ErrIllegalOffset
	}

	available := b.data[offset:end]
	if len(available) > util.Varint32MaximumBytes {
		available = available[:util.Varint32MaximumBytes]
	}

	value, n := util.FromVarint32(available)
	switch {
	case n > 0:
		return value, n, nil
	case n < 0 || len(available) == util.Varint32MaximumBytes:
		return 0, 0, fault.ErrVarint32TooLong
	default:
		return 0, 0, b.truncated(offset, end)
	}
}
