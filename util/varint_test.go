// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"bytes"
	"testing"

	"github.com/mahdiyari/hive-tx-go/util"
)

var varint32Tests = []struct {
	value   uint32
	encoded []byte
}{
	{0, []byte{0x00}},
	{1, []byte{0x01}},
	{127, []byte{0x7f}},
	{128, []byte{0x80, 0x01}},
	{137, []byte{0x89, 0x01}},
	{255, []byte{0xff, 0x01}},
	{256, []byte{0x80, 0x02}},
	{16383, []byte{0xff, 0x7f}},
	{16384, []byte{0x80, 0x80, 0x01}},
	{1<<21 - 1, []byte{0xff, 0xff, 0x7f}},
	{1 << 21, []byte{0x80, 0x80, 0x80, 0x01}},
	{1<<28 - 1, []byte{0xff, 0xff, 0xff, 0x7f}},
	{1 << 28, []byte{0x80, 0x80, 0x80, 0x80, 0x01}},
	{0xffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
}

var varint32TruncatedTests = [][]byte{
	{},
	{0x80},
	{0xff},
	{0x80, 0x80},
	{0xff, 0xff, 0xff, 0xff},
}

func TestToVarint32(t *testing.T) {

	for i, item := range varint32Tests {
		if result := util.ToVarint32(item.value); !bytes.Equal(result, item.encoded) {
			t.Errorf("%d: ToVarint32(%x) -> %x  expected: %x", i, item.value, result, item.encoded)
		}
		if n := util.Varint32Length(item.value); n != len(item.encoded) {
			t.Errorf("%d: Varint32Length(%x) -> %d  expected: %d", i, item.value, n, len(item.encoded))
		}
	}
}

func TestFromVarint32(t *testing.T) {

	for i, item := range varint32Tests {
		result1, count1 := util.FromVarint32(item.encoded)
		if result1 != item.value {
			t.Errorf("%d: FromVarint32(%x) -> %d  expected: %d", i, item.encoded, result1, item.value)
		}

		suffix := []byte{0xff, 0x97, 0x23}
		b := append(append([]byte{}, item.encoded...), suffix...)

		result2, count2 := util.FromVarint32(b)
		if result2 != item.value || count1 != count2 {
			t.Errorf("%d: FromVarint32(%x) -> %d  expected: %d", i, b, result2, item.value)
		}
		if !bytes.Equal(suffix, b[count2:]) {
			t.Errorf("%d: suffix: %x  expected: %x", i, b[count2:], suffix)
		}
	}

	for i, item := range varint32TruncatedTests {
		result, count := util.FromVarint32(item)
		if 0 != result || 0 != count {
			t.Errorf("%d: FromVarint32(%x) -> %d, %d  expected: 0, 0", i, item, result, count)
		}
	}

	if _, count := util.FromVarint32([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01}); -1 != count {
		t.Errorf("over long varint: count: %d  expected: -1", count)
	}
}
