// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bytebuffer

import (
	"encoding/binary"

	"github.com/mahdiyari/hive-tx-go/fault"
)

// DefaultCapacity - capacity used when none is given
const DefaultCapacity = 16

// byte order selection
const (
	LittleEndian = true
	BigEndian    = false
)

// Buffer - growable byte storage with a single cursor used for both
// writing and reading
//
// write mode: valid data is 0..offset
// read mode:  valid data is offset..limit (see Flip)
//
// invariant: 0 <= offset <= limit <= capacity
type Buffer struct {
	data         []byte // len(data) is the capacity
	offset       int
	markedOffset int
	limit        int
	order        binary.ByteOrder
	littleEndian bool
	noAssert     bool
}

// New - create an empty buffer
//
// with noAssert set, offset and value checks are skipped: an illegal
// offset then panics instead of returning a programmer error
func New(capacity int, littleEndian bool, noAssert bool) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	b := &Buffer{
		data:         make([]byte, capacity),
		offset:       0,
		markedOffset: -1,
		limit:        capacity,
		littleEndian: littleEndian,
		noAssert:     noAssert,
	}
	b.setOrder()
	return b
}

// Wrap - create a buffer in read mode over a copy of the given bytes
func Wrap(data []byte, littleEndian bool) *Buffer {
	b := &Buffer{
		data:         make([]byte, len(data)),
		offset:       0,
		markedOffset: -1,
		limit:        len(data),
		littleEndian: littleEndian,
	}
	copy(b.data, data)
	b.setOrder()
	return b
}

func (b *Buffer) setOrder() {
	if b.littleEndian {
		b.order = binary.LittleEndian
	} else {
		b.order = binary.BigEndian
	}
}

// Offset - current cursor position
func (b *Buffer) Offset() int {
	return b.offset
}

// Limit - end of valid data
func (b *Buffer) Limit() int {
	return b.limit
}

// Capacity - size of backing storage
func (b *Buffer) Capacity() int {
	return len(b.data)
}

// Remaining - bytes between the cursor and the limit
func (b *Buffer) Remaining() int {
	return b.limit - b.offset
}

// IsLittleEndian - byte order of fixed width values
func (b *Buffer) IsLittleEndian() bool {
	return b.littleEndian
}

// Resize - grow the backing storage to exactly capacity bytes if it
// is currently smaller, never shrinks
func (b *Buffer) Resize(capacity int) error {
	if !b.noAssert && capacity < 0 {
		return fault.ErrIllegalCapacity
	}
	if len(b.data) < capacity {
		data := make([]byte, capacity)
		copy(data, b.data)
		b.data = data
	}
	return nil
}

// EnsureCapacity - grow by doubling with a floor at the requested size
func (b *Buffer) EnsureCapacity(capacity int) error {
	current := len(b.data)
	if current >= capacity {
		return nil
	}
	current *= 2
	if current < capacity {
		current = capacity
	}
	return b.Resize(current)
}

// Flip - switch from write mode to read mode
func (b *Buffer) Flip() *Buffer {
	b.limit = b.offset
	b.offset = 0
	return b
}

// Mark - remember the current offset
func (b *Buffer) Mark() *Buffer {
	b.markedOffset = b.offset
	return b
}

// Reset - return to the marked offset, or to zero if nothing was marked
func (b *Buffer) Reset() *Buffer {
	if b.markedOffset >= 0 {
		b.offset = b.markedOffset
		b.markedOffset = -1
	} else {
		b.offset = 0
	}
	return b
}

// Skip - advance (or with negative n, rewind) the cursor
func (b *Buffer) Skip(n int) error {
	offset := b.offset + n
	if !b.noAssert && (offset < 0 || offset > len(b.data)) {
		return fault.ErrIllegalOffset
	}
	b.offset = offset
	if b.offset > b.limit {
		b.limit = b.offset
	}
	return nil
}

// Bytes - a copy of the valid region offset..limit
func (b *Buffer) Bytes() []byte {
	if b.offset >= b.limit {
		return []byte{}
	}
	result := make([]byte, b.limit-b.offset)
	copy(result, b.data[b.offset:b.limit])
	return result
}

// Clone - a copy that does not share storage
func (b *Buffer) Clone() *Buffer {
	c := *b
	c.data = make([]byte, len(b.data))
	copy(c.data, b.data)
	return &c
}

// Copy - extract begin..end as a new buffer in read mode without
// consuming anything from the source
func (b *Buffer) Copy(begin int, end int) (*Buffer, error) {
	if begin < 0 || begin > end || end > len(b.data) {
		return nil, fault.ErrIllegalOffset
	}
	c := &Buffer{
		data:         make([]byte, end-begin),
		offset:       0,
		markedOffset: -1,
		limit:        end - begin,
		littleEndian: b.littleEndian,
		noAssert:     b.noAssert,
	}
	copy(c.data, b.data[begin:end])
	c.setOrder()
	return c, nil
}

// Append - write the valid region of another buffer at the cursor
func (b *Buffer) Append(source *Buffer) *Buffer {
	return b.AppendBytes(source.data[source.offset:source.limit])
}

// AppendBytes - write raw bytes at the cursor
func (b *Buffer) AppendBytes(data []byte) *Buffer {
	b.put(len(data), func(p []byte) {
		copy(p, data)
	})
	return b
}

// AppendBytesAt - write raw bytes at an explicit offset, the cursor is not moved
func (b *Buffer) AppendBytesAt(data []byte, offset int) error {
	return b.putAt(offset, len(data), func(p []byte) {
		copy(p, data)
	})
}

// ReadBytes - consume n raw bytes
func (b *Buffer) ReadBytes(n int) ([]byte, error) {
	if !b.noAssert && n < 0 {
		return nil, fault.ErrIllegalValue
	}
	p, err := b.get(n)
	if nil != err {
		return nil, err
	}
	result := make([]byte, n)
	copy(result, p)
	return result, nil
}

// relative write of n bytes, growing as required
func (b *Buffer) put(n int, fill func([]byte)) {
	end := b.offset + n
	_ = b.EnsureCapacity(end)
	fill(b.data[b.offset:end])
	b.offset = end
	if end > b.limit {
		b.limit = end
	}
}

// absolute write of n bytes
func (b *Buffer) putAt(offset int, n int, fill func([]byte)) error {
	if !b.noAssert && (offset < 0 || offset > len(b.data)) {
		return fault.ErrIllegalOffset
	}
	end := offset + n
	if err := b.EnsureCapacity(end); nil != err {
		return err
	}
	fill(b.data[offset:end])
	if end > b.limit {
		b.limit = end
	}
	return nil
}

// relative read of n bytes
func (b *Buffer) get(n int) ([]byte, error) {
	p, err := b.getAt(b.offset, n)
	if nil != err {
		return nil, err
	}
	b.offset += n
	return p, nil
}

// absolute read of n bytes
func (b *Buffer) getAt(offset int, n int) ([]byte, error) {
	if b.noAssert {
		if offset+n > len(b.data) {
			return nil, b.truncated(offset, len(b.data))
		}
		return b.data[offset : offset+n], nil
	}
	if offset < 0 || offset > b.limit {
		return nil, fault.ErrIllegalOffset
	}
	if offset+n > b.limit {
		return nil, b.truncated(offset, b.limit)
	}
	return b.data[offset : offset+n], nil
}

func (b *Buffer) truncated(offset int, end int) error {
	partial := make([]byte, end-offset)
	copy(partial, b.data[offset:end])
	return &fault.TruncatedError{
		Offset:  offset,
		Partial: partial,
	}
}
