// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

// bits per half of the history filter
const filterHalfBits = 64

// OperationFilter - the operation_filter_low and operation_filter_high
// masks selecting the named operations in account history queries
//
// real and virtual operation names are both accepted
func OperationFilter(names ...string) (low uint64, high uint64, err error) {
	for _, name := range names {
		tag, err := TagFromName(name)
		if nil != err {
			return 0, 0, err
		}
		if tag < filterHalfBits {
			low |= 1 << tag
		} else {
			high |= 1 << (tag - filterHalfBits)
		}
	}
	return low, high, nil
}
