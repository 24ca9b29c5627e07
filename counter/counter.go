// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"encoding/binary"
	"io"
	"sync/atomic"
)

// Counter - 64 bit unsigned integer that is safe to update from
// several goroutines
type Counter uint64

// Seed - set the starting value from a source of random bytes
func (ic *Counter) Seed(random io.Reader) error {
	var b [8]byte
	if _, err := io.ReadFull(random, b[:]); nil != err {
		return err
	}
	atomic.StoreUint64((*uint64)(ic), binary.LittleEndian.Uint64(b[:]))
	return nil
}

// Increment - add 1 to a counter, returns new value
//
// concurrent callers never see the same value until it wraps
func (ic *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1)
}

// Decrement - subtract 1 from a counter, returns new value
func (ic *Counter) Decrement() uint64 {
	return atomic.AddUint64((*uint64)(ic), ^uint64(0))
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}

// IsZero - check if zero
func (ic *Counter) IsZero() bool {
	return 0 == ic.Uint64()
}
