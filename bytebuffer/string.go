// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bytebuffer

import (
	"github.com/mahdiyari/hive-tx-go/fault"
)

// WriteVString - append a varint length prefixed UTF-8 string
func (b *Buffer) WriteVString(s string) error {
	data := []byte(s)
	if !b.noAssert {
		if err := validateUTF8(data); nil != err {
			return err
		}
	}
	b.WriteVarint32(uint32(len(data)))
	b.AppendBytes(data)
	return nil
}

// WriteVStringUTF16 - append a varint length prefixed string given
// as UTF-16 code units, the wire form is always UTF-8
func (b *Buffer) WriteVStringUTF16(units []uint16) error {
	data, err := UTF16ToUTF8(units)
	if nil != err {
		return err
	}
	b.WriteVarint32(uint32(len(data)))
	b.AppendBytes(data)
	return nil
}

// ReadVString - consume a varint length prefixed UTF-8 string
func (b *Buffer) ReadVString() (string, error) {
	data, err := b.readVStringBytes()
	if nil != err {
		return "", err
	}
	return string(data), nil
}

// ReadVStringUTF16 - consume a varint length prefixed string and
// return it as UTF-16 code units
func (b *Buffer) ReadVStringUTF16() ([]uint16, error) {
	data, err := b.readVStringBytes()
	if nil != err {
		return nil, err
	}
	return UTF8ToUTF16(data)
}

func (b *Buffer) readVStringBytes() ([]byte, error) {
	start := b.offset
	length, n, err := b.ReadVarint32At(start)
	if nil != err {
		return nil, err
	}

	body := start + n
	end := b.limit
	if b.noAssert {
		end = len(b.data)
	}
	if uint64(body)+uint64(length) > uint64(end) {
		return nil, b.truncated(body, end)
	}

	data := make([]byte, length)
	copy(data, b.data[body:body+int(length)])
	if !b.noAssert {
		if err := validateUTF8(data); nil != err {
			if t, ok := err.(*fault.TruncatedError); ok {
				t.Offset += body
			}
			return nil, err
		}
	}
	b.offset = body + int(length)
	return data, nil
}
