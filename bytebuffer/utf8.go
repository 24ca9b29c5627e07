// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bytebuffer

import (
	"github.com/mahdiyari/hive-tx-go/fault"
)

// codepoint limits
const (
	maxCodepoint     = 0x10ffff
	surrogateMinimum = 0xd800
	surrogateHigh    = 0xdbff
	surrogateMaximum = 0xdfff
	surrogateOffset  = 0x10000
)

// UTF8ToUTF16 - convert strict UTF-8 to UTF-16 code units, codepoints
// above U+FFFF become surrogate pairs
func UTF8ToUTF16(data []byte) ([]uint16, error) {
	units := make([]uint16, 0, len(data))
	for offset := 0; offset < len(data); {
		cp, n, err := decodeUTF8(data, offset)
		if nil != err {
			return nil, err
		}
		offset += n
		if cp >= surrogateOffset {
			cp -= surrogateOffset
			units = append(units, uint16(surrogateMinimum+cp>>10), uint16(0xdc00+cp&0x3ff))
		} else {
			units = append(units, uint16(cp))
		}
	}
	return units, nil
}

// UTF16ToUTF8 - convert UTF-16 code units to strict UTF-8
//
// a lone surrogate is an error
func UTF16ToUTF8(units []uint16) ([]byte, error) {
	data := make([]byte, 0, len(units))
	for i := 0; i < len(units); i += 1 {
		cp := rune(units[i])
		if cp >= surrogateMinimum && cp <= surrogateMaximum {
			if cp > surrogateHigh || i+1 >= len(units) {
				return nil, fault.ErrInvalidUTF16
			}
			low := rune(units[i+1])
			if low < 0xdc00 || low > surrogateMaximum {
				return nil, fault.ErrInvalidUTF16
			}
			cp = surrogateOffset + (cp-surrogateMinimum)<<10 + (low - 0xdc00)
			i += 1
		}
		data = encodeUTF8(data, cp)
	}
	return data, nil
}

// CalculateUTF8 - number of UTF-8 bytes needed for a single codepoint
func CalculateUTF8(cp rune) int {
	switch {
	case cp < 0x80:
		return 1
	case cp < 0x800:
		return 2
	case cp < 0x10000:
		return 3
	default:
		return 4
	}
}

func encodeUTF8(data []byte, cp rune) []byte {
	switch CalculateUTF8(cp) {
	case 1:
		return append(data, byte(cp))
	case 2:
		return append(data,
			0xc0|byte(cp>>6),
			0x80|byte(cp)&0x3f)
	case 3:
		return append(data,
			0xe0|byte(cp>>12),
			0x80|byte(cp>>6)&0x3f,
			0x80|byte(cp)&0x3f)
	default:
		return append(data,
			0xf0|byte(cp>>18),
			0x80|byte(cp>>12)&0x3f,
			0x80|byte(cp>>6)&0x3f,
			0x80|byte(cp)&0x3f)
	}
}

// decode one codepoint starting at offset, returning it with its width
//
// a sequence cut short by the end of data is a truncation carrying
// the bytes that were present
func decodeUTF8(data []byte, offset int) (rune, int, error) {
	lead := data[offset]
	n := 0
	cp := rune(0)
	minimum := rune(0)
	switch {
	case lead < 0x80:
		return rune(lead), 1, nil
	case lead&0xe0 == 0xc0:
		n, cp, minimum = 2, rune(lead&0x1f), 0x80
	case lead&0xf0 == 0xe0:
		n, cp, minimum = 3, rune(lead&0x0f), 0x800
	case lead&0xf8 == 0xf0:
		n, cp, minimum = 4, rune(lead&0x07), 0x10000
	default:
		return 0, 0, fault.ErrInvalidUTF8
	}

	if offset+n > len(data) {
		partial := make([]byte, len(data)-offset)
		copy(partial, data[offset:])
		return 0, 0, &fault.TruncatedError{
			Offset:  offset,
			Partial: partial,
		}
	}

	for i := 1; i < n; i += 1 {
		c := data[offset+i]
		if c&0xc0 != 0x80 {
			return 0, 0, fault.ErrInvalidUTF8
		}
		cp = cp<<6 | rune(c&0x3f)
	}

	if cp < minimum || cp > maxCodepoint || (cp >= surrogateMinimum && cp <= surrogateMaximum) {
		return 0, 0, fault.ErrInvalidUTF8
	}
	return cp, n, nil
}

// check that data is strict UTF-8
func validateUTF8(data []byte) error {
	for offset := 0; offset < len(data); {
		_, n, err := decodeUTF8(data, offset)
		if nil != err {
			return err
		}
		offset += n
	}
	return nil
}
