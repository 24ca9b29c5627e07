// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bytebuffer

// fixed width integers
//
// relative forms operate at the cursor and advance it, the At forms
// take an explicit offset and leave the cursor alone

// WriteUint8 - append an unsigned byte
func (b *Buffer) WriteUint8(value uint8) *Buffer {
	b.put(1, func(p []byte) { p[0] = value })
	return b
}

// WriteUint8At - write an unsigned byte at offset
func (b *Buffer) WriteUint8At(value uint8, offset int) error {
	return b.putAt(offset, 1, func(p []byte) { p[0] = value })
}

// WriteInt8 - append a signed byte
func (b *Buffer) WriteInt8(value int8) *Buffer {
	return b.WriteUint8(uint8(value))
}

// WriteInt8At - write a signed byte at offset
func (b *Buffer) WriteInt8At(value int8, offset int) error {
	return b.WriteUint8At(uint8(value), offset)
}

// ReadUint8 - consume an unsigned byte
func (b *Buffer) ReadUint8() (uint8, error) {
	p, err := b.get(1)
	if nil != err {
		return 0, err
	}
	return p[0], nil
}

// ReadUint8At - read an unsigned byte at offset
func (b *Buffer) ReadUint8At(offset int) (uint8, error) {
	p, err := b.getAt(offset, 1)
	if nil != err {
		return 0, err
	}
	return p[0], nil
}

// ReadInt8 - consume a signed byte
func (b *Buffer) ReadInt8() (int8, error) {
	v, err := b.ReadUint8()
	return int8(v), err
}

// ReadInt8At - read a signed byte at offset
func (b *Buffer) ReadInt8At(offset int) (int8, error) {
	v, err := b.ReadUint8At(offset)
	return int8(v), err
}

// WriteUint16 - append a 16 bit unsigned value
func (b *Buffer) WriteUint16(value uint16) *Buffer {
	b.put(2, func(p []byte) { b.order.PutUint16(p, value) })
	return b
}

// WriteUint16At - write a 16 bit unsigned value at offset
func (b *Buffer) WriteUint16At(value uint16, offset int) error {
	return b.putAt(offset, 2, func(p []byte) { b.order.PutUint16(p, value) })
}

// WriteInt16 - append a 16 bit signed value
func (b *Buffer) WriteInt16(value int16) *Buffer {
	return b.WriteUint16(uint16(value))
}

// WriteInt16At - write a 16 bit signed value at offset
func (b *Buffer) WriteInt16At(value int16, offset int) error {
	return b.WriteUint16At(uint16(value), offset)
}

// ReadUint16 - consume a 16 bit unsigned value
func (b *Buffer) ReadUint16() (uint16, error) {
	p, err := b.get(2)
	if nil != err {
		return 0, err
	}
	return b.order.Uint16(p), nil
}

// ReadUint16At - read a 16 bit unsigned value at offset
func (b *Buffer) ReadUint16At(offset int) (uint16, error) {
	p, err := b.getAt(offset, 2)
	if nil != err {
		return 0, err
	}
	return b.order.Uint16(p), nil
}

// ReadInt16 - consume a 16 bit signed value
func (b *Buffer) ReadInt16() (int16, error) {
	v, err := b.ReadUint16()
	return int16(v), err
}

// ReadInt16At - read a 16 bit signed value at offset
func (b *Buffer) ReadInt16At(offset int) (int16, error) {
	v, err := b.ReadUint16At(offset)
	return int16(v), err
}

// WriteUint32 - append a 32 bit unsigned value
func (b *Buffer) WriteUint32(value uint32) *Buffer {
	b.put(4, func(p []byte) { b.order.PutUint32(p, value) })
	return b
}

// WriteUint32At - write a 32 bit unsigned value at offset
func (b *Buffer) WriteUint32At(value uint32, offset int) error {
	return b.putAt(offset, 4, func(p []byte) { b.order.PutUint32(p, value) })
}

// WriteInt32 - append a 32 bit signed value
func (b *Buffer) WriteInt32(value int32) *Buffer {
	return b.WriteUint32(uint32(value))
}

// WriteInt32At - write a 32 bit signed value at offset
func (b *Buffer) WriteInt32At(value int32, offset int) error {
	return b.WriteUint32At(uint32(value), offset)
}

// ReadUint32 - consume a 32 bit unsigned value
func (b *Buffer) ReadUint32() (uint32, error) {
	p, err := b.get(4)
	if nil != err {
		return 0, err
	}
	return b.order.Uint32(p), nil
}

// ReadUint32At - read a 32 bit unsigned value at offset
func (b *Buffer) ReadUint32At(offset int) (uint32, error) {
	p, err := b.getAt(offset, 4)
	if nil != err {
		return 0, err
	}
	return b.order.Uint32(p), nil
}

// ReadInt32 - consume a 32 bit signed value
func (b *Buffer) ReadInt32() (int32, error) {
	v, err := b.ReadUint32()
	return int32(v), err
}

// ReadInt32At - read a 32 bit signed value at offset
func (b *Buffer) ReadInt32At(offset int) (int32, error) {
	v, err := b.ReadUint32At(offset)
	return int32(v), err
}

// WriteUint64 - append a 64 bit unsigned value
func (b *Buffer) WriteUint64(value uint64) *Buffer {
	b.put(8, func(p []byte) { b.order.PutUint64(p, value) })
	return b
}

// WriteUint64At - write a 64 bit unsigned value at offset
func (b *Buffer) WriteUint64At(value uint64, offset int) error {
	return b.putAt(offset, 8, func(p []byte) { b.order.PutUint64(p, value) })
}

// WriteInt64 - append a 64 bit signed value
func (b *Buffer) WriteInt64(value int64) *Buffer {
	return b.WriteUint64(uint64(value))
}

// WriteInt64At - write a 64 bit signed value at offset
func (b *Buffer) WriteInt64At(value int64, offset int) error {
	return b.WriteUint64At(uint64(value), offset)
}

// ReadUint64 - consume a 64 bit unsigned value
func (b *Buffer) ReadUint64() (uint64, error) {
	p, err := b.get(8)
	if nil != err {
		return 0, err
	}
	return b.order.Uint64(p), nil
}

// ReadUint64At - read a 64 bit unsigned value at offset
func (b *Buffer) ReadUint64At(offset int) (uint64, error) {
	p, err := b.getAt(offset, 8)
	if nil != err {
		return 0, err
	}
	return b.order.Uint64(p), nil
}

// ReadInt64 - consume a 64 bit signed value
func (b *Buffer) ReadInt64() (int64, error) {
	v, err := b.ReadUint64()
	return int64(v), err
}

// ReadInt64At - read a 64 bit signed value at offset
func (b *Buffer) ReadInt64At(offset int) (int64, error) {
	v, err := b.ReadUint64At(offset)
	return int64(v), err
}
